package services

import (
	"strings"
	"testing"
)

// TestParseCrimeRecords_WithIndexColumn covers the pandas-style export with
// a leading unnamed index column and float-formatted counts.
func TestParseCrimeRecords_WithIndexColumn(t *testing.T) {
	csv := strings.Join([]string{
		",State,Year,Rape,K&A,DD,AoW,AoM,DV,WT",
		"0,Andhra Pradesh,2001,871,765,420,3544,2271,5791,7.0",
		"1,Assam,2001,817,1070,59,850,4,1248,0",
	}, "\n")

	result, err := ParseCrimeRecords(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(result.Records) != 2 {
		t.Fatalf("expected 2 records, got: %d", len(result.Records))
	}
	if result.Skipped != 0 {
		t.Errorf("expected no skipped rows, got: %d", result.Skipped)
	}

	first := result.Records[0]
	if first.State != "Andhra Pradesh" || first.Year != 2001 {
		t.Errorf("unexpected first record key: %s/%d", first.State, first.Year)
	}
	if first.Rape != 871 || first.DomesticViolence != 5791 || first.Trafficking != 7 {
		t.Errorf("unexpected counts in first record: %+v", first)
	}
}

// TestParseCrimeRecords_SkipsUnknownStates verifies rows for territories
// outside the canonical set are counted, not fatal.
func TestParseCrimeRecords_SkipsUnknownStates(t *testing.T) {
	csv := strings.Join([]string{
		"State,Year,Rape,K&A,DD,AoW,AoM,DV,WT",
		"Delhi,2012,706,2160,134,653,385,2046,44",
		"A & N Islands,2012,14,10,0,31,3,13,0",
		"Lakshadweep,2012,0,0,0,1,0,0,0",
	}, "\n")

	result, err := ParseCrimeRecords(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(result.Records) != 1 {
		t.Fatalf("expected 1 record, got: %d", len(result.Records))
	}
	if result.Skipped != 2 {
		t.Errorf("expected 2 skipped rows, got: %d", result.Skipped)
	}
	if result.Records[0].State != "Delhi" {
		t.Errorf("expected the Delhi row to survive, got: %s", result.Records[0].State)
	}
}

// TestParseCrimeRecords_BadHeader rejects a file with reordered columns.
func TestParseCrimeRecords_BadHeader(t *testing.T) {
	csv := strings.Join([]string{
		"State,Year,K&A,Rape,DD,AoW,AoM,DV,WT",
		"Delhi,2012,706,2160,134,653,385,2046,44",
	}, "\n")

	if _, err := ParseCrimeRecords(strings.NewReader(csv)); err == nil {
		t.Fatal("expected an error for a reordered header")
	}
}

// TestParseCrimeRecords_NegativeCount rejects corrupt data.
func TestParseCrimeRecords_NegativeCount(t *testing.T) {
	csv := strings.Join([]string{
		"State,Year,Rape,K&A,DD,AoW,AoM,DV,WT",
		"Delhi,2012,-5,2160,134,653,385,2046,44",
	}, "\n")

	if _, err := ParseCrimeRecords(strings.NewReader(csv)); err == nil {
		t.Fatal("expected an error for a negative count")
	}
}
