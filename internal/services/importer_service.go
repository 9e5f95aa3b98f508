package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/YT-Kowshick/Women-Safety-Ai/internal/models"
)

// csvColumns is the expected header of the CrimesOnWomenData export, after
// the optional unnamed index column is stripped.
var csvColumns = []string{"State", "Year", "Rape", "K&A", "DD", "AoW", "AoM", "DV", "WT"}

// ImportResult summarizes a parse run for the migrate command's report.
type ImportResult struct {
	Records []models.CrimeRecord
	Skipped int // rows naming a state outside the canonical set
}

// ParseCrimeRecords reads the reference CSV into crime records. The export
// sometimes carries a leading unnamed index column; it is detected and
// dropped. Rows for states outside the canonical enumeration (e.g. union
// territories) are skipped, not fatal.
func ParseCrimeRecords(r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	offset := 0
	if len(header) > 0 && (header[0] == "" || strings.HasPrefix(header[0], "Unnamed")) {
		offset = 1
	}
	if len(header)-offset != len(csvColumns) {
		return nil, fmt.Errorf("unexpected CSV header %v, want columns %v", header, csvColumns)
	}
	for i, want := range csvColumns {
		if header[i+offset] != want {
			return nil, fmt.Errorf("unexpected CSV column %q at position %d, want %q",
				header[i+offset], i+offset, want)
		}
	}

	result := &ImportResult{}
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV line %d: %w", line+1, err)
		}
		line++

		state := strings.TrimSpace(row[offset])
		if _, ok := models.StateIndex(state); !ok {
			result.Skipped++
			continue
		}

		nums := make([]int, len(csvColumns)-1)
		for i := range nums {
			v, err := parseCount(row[offset+1+i])
			if err != nil {
				return nil, fmt.Errorf("CSV line %d, column %s: %w", line, csvColumns[i+1], err)
			}
			nums[i] = v
		}

		result.Records = append(result.Records, models.CrimeRecord{
			State:            state,
			Year:             nums[0],
			Rape:             nums[1],
			Kidnapping:       nums[2],
			DowryDeaths:      nums[3],
			AssaultOnWomen:   nums[4],
			AssaultOnMinors:  nums[5],
			DomesticViolence: nums[6],
			Trafficking:      nums[7],
		})
	}

	return result, nil
}

// parseCount accepts integers and float-formatted integers ("123.0"),
// which the pandas export produces for count columns.
func parseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		if v < 0 {
			return 0, fmt.Errorf("negative count %d", v)
		}
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid count %q", s)
	}
	if f < 0 {
		return 0, fmt.Errorf("negative count %v", f)
	}
	return int(f), nil
}
