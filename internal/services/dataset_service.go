package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/YT-Kowshick/Women-Safety-Ai/internal/models"
	"gorm.io/gorm"
)

// DatasetService exposes read-only lookups over the reference dataset.
// The data is loaded once and indexed; nothing mutates it afterwards, so
// all methods are safe for concurrent use without locking.
type DatasetService interface {
	// Find returns the record for an exact (state, year) pair.
	Find(state string, year int) (models.CrimeRecord, bool)
	// ByState returns every record for a state, sorted ascending by year.
	ByState(state string) []models.CrimeRecord
	// States returns the states present in the dataset, in canonical
	// enumeration order.
	States() []string
	// HasYear reports whether any record exists for the given year.
	HasYear(year int) bool
}

type datasetService struct {
	byStateYear map[string]map[int]models.CrimeRecord
	byState     map[string][]models.CrimeRecord
	states      []string
	years       map[int]bool
}

// NewDatasetService indexes a slice of records. Used directly by tests and
// by LoadDataset below.
func NewDatasetService(records []models.CrimeRecord) DatasetService {
	ds := &datasetService{
		byStateYear: make(map[string]map[int]models.CrimeRecord),
		byState:     make(map[string][]models.CrimeRecord),
		years:       make(map[int]bool),
	}

	for _, r := range records {
		if ds.byStateYear[r.State] == nil {
			ds.byStateYear[r.State] = make(map[int]models.CrimeRecord)
		}
		ds.byStateYear[r.State][r.Year] = r
		ds.byState[r.State] = append(ds.byState[r.State], r)
		ds.years[r.Year] = true
	}

	for state := range ds.byState {
		recs := ds.byState[state]
		sort.Slice(recs, func(i, j int) bool { return recs[i].Year < recs[j].Year })
	}

	// Canonical enumeration order, restricted to states that have data.
	for _, s := range models.States {
		if _, ok := ds.byState[s]; ok {
			ds.states = append(ds.states, s)
		}
	}

	return ds
}

// LoadDataset reads all crime records from the database and builds the
// in-memory dataset. Called once at server startup.
func LoadDataset(ctx context.Context, db *gorm.DB) (DatasetService, error) {
	var records []models.CrimeRecord
	if err := db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("loading crime records: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("crime_records table is empty; run the migrate command first")
	}
	return NewDatasetService(records), nil
}

func (ds *datasetService) Find(state string, year int) (models.CrimeRecord, bool) {
	r, ok := ds.byStateYear[state][year]
	return r, ok
}

func (ds *datasetService) ByState(state string) []models.CrimeRecord {
	return ds.byState[state]
}

func (ds *datasetService) States() []string {
	return ds.states
}

func (ds *datasetService) HasYear(year int) bool {
	return ds.years[year]
}
