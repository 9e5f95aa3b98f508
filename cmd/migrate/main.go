package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"

	"github.com/YT-Kowshick/Women-Safety-Ai/internal/config"
	"github.com/YT-Kowshick/Women-Safety-Ai/internal/database/migrations"
	"github.com/YT-Kowshick/Women-Safety-Ai/internal/services"
)

func main() {
	csvPath := flag.String("csv", "CrimesOnWomenData.csv", "path to the reference dataset CSV")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	ctx := context.Background()

	// Apply the schema
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close connection: %v", err)
		}
	}()

	if err := db.PingContext(ctx); err != nil {
		log.Fatal("failed to ping database: ", err)
	}
	fmt.Println("✅ Connected to database")

	schemaSQL, err := migrations.Files.ReadFile("schema.sql")
	if err != nil {
		log.Fatal("failed to read embedded schema: ", err)
	}
	if _, err := db.ExecContext(ctx, string(schemaSQL)); err != nil {
		log.Fatal("failed to apply schema: ", err)
	}
	fmt.Println("🚀 Schema applied")

	// Parse the CSV
	f, err := os.Open(*csvPath)
	if err != nil {
		log.Fatal("failed to open CSV: ", err)
	}
	defer f.Close()

	result, err := services.ParseCrimeRecords(f)
	if err != nil {
		log.Fatal("failed to parse CSV: ", err)
	}
	fmt.Printf("📄 Parsed %d records (%d rows skipped)\n", len(result.Records), result.Skipped)

	// Bulk-load via pgx CopyFrom; re-running the import starts from a
	// clean table so the unique (state, year) constraint cannot trip.
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		log.Fatal("failed to create pgx pool: ", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, "TRUNCATE crime_records"); err != nil {
		log.Fatal("failed to truncate crime_records: ", err)
	}

	rows := make([][]interface{}, 0, len(result.Records))
	for _, r := range result.Records {
		rows = append(rows, []interface{}{
			r.State, r.Year, r.Rape, r.Kidnapping, r.DowryDeaths,
			r.AssaultOnWomen, r.AssaultOnMinors, r.DomesticViolence, r.Trafficking,
		})
	}

	copied, err := pool.CopyFrom(
		ctx,
		pgx.Identifier{"crime_records"},
		[]string{
			"state", "year", "rape", "kidnapping", "dowry_deaths",
			"assault_on_women", "assault_on_minors", "domestic_violence", "trafficking",
		},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		log.Fatal("failed to copy records: ", err)
	}

	fmt.Printf("✅ Loaded %d crime records\n", copied)
}
