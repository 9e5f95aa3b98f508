package services

import (
	"context"
	"errors"
	"testing"

	"github.com/YT-Kowshick/Women-Safety-Ai/internal/models"
)

// leaderboardFixtureDataset seeds four states with distinct crime mixes:
// Bihar leans entirely on the most severe category, Haryana on the least
// severe one, and Assam/Goa share an identical mix to exercise the
// tie-break.
func leaderboardFixtureDataset() DatasetService {
	return NewDatasetService([]models.CrimeRecord{
		{State: "Bihar", Year: 2020, Rape: 500},
		{State: "Bihar", Year: 2021, Rape: 700},
		{State: "Haryana", Year: 2020, DomesticViolence: 300},
		{State: "Haryana", Year: 2021, DomesticViolence: 200},
		{State: "Assam", Year: 2021, Rape: 50, DomesticViolence: 50},
		{State: "Goa", Year: 2021, Rape: 20, DomesticViolence: 20},
	})
}

// TestRank_AscendingByScore verifies the ordering for a year filter: the
// all-rape mix scores lowest and comes first, the all-DV mix last.
func TestRank_AscendingByScore(t *testing.T) {
	svc := NewLeaderboardService(leaderboardFixtureDataset())
	year := 2021

	entries, err := svc.Rank(context.Background(), &year)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got: %d", len(entries))
	}

	for i := 1; i < len(entries); i++ {
		if entries[i-1].Score > entries[i].Score {
			t.Errorf("leaderboard not ascending at index %d: %v > %v",
				i, entries[i-1].Score, entries[i].Score)
		}
	}
	if entries[0].State != "Bihar" {
		t.Errorf("expected Bihar (all-rape mix) first, got: %s", entries[0].State)
	}
	if entries[len(entries)-1].State != "Haryana" {
		t.Errorf("expected Haryana (all-DV mix) last, got: %s", entries[len(entries)-1].State)
	}
}

// TestRank_StableTieBreak verifies equal scores keep the canonical state
// enumeration order (Assam before Goa) rather than being re-sorted.
func TestRank_StableTieBreak(t *testing.T) {
	svc := NewLeaderboardService(leaderboardFixtureDataset())
	year := 2021

	entries, err := svc.Rank(context.Background(), &year)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	assamPos, goaPos := -1, -1
	for i, e := range entries {
		switch e.State {
		case "Assam":
			assamPos = i
		case "Goa":
			goaPos = i
		}
	}
	if assamPos == -1 || goaPos == -1 {
		t.Fatalf("expected both Assam and Goa in entries: %+v", entries)
	}
	if entries[assamPos].Score != entries[goaPos].Score {
		t.Fatalf("fixture broken: Assam and Goa should tie, got %v and %v",
			entries[assamPos].Score, entries[goaPos].Score)
	}
	if assamPos > goaPos {
		t.Errorf("tie-break must keep enumeration order: Assam at %d, Goa at %d", assamPos, goaPos)
	}
}

// TestRank_YearFilterExcludesStates verifies states without a record for
// the filtered year are left out instead of failing the whole request.
func TestRank_YearFilterExcludesStates(t *testing.T) {
	svc := NewLeaderboardService(leaderboardFixtureDataset())
	year := 2020

	entries, err := svc.Rank(context.Background(), &year)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries for 2020, got: %d", len(entries))
	}
	for _, e := range entries {
		if e.State == "Assam" || e.State == "Goa" {
			t.Errorf("state %s has no 2020 record and must not appear", e.State)
		}
	}
}

// TestRank_YearWithoutData verifies an empty year filter is NotFound.
func TestRank_YearWithoutData(t *testing.T) {
	svc := NewLeaderboardService(leaderboardFixtureDataset())
	year := 1995

	_, err := svc.Rank(context.Background(), &year)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

// TestRank_AllYearsAggregate verifies the unfiltered leaderboard scores
// from mean counts. Bihar's mix is all rape in both years, so its
// aggregate score equals its per-year score.
func TestRank_AllYearsAggregate(t *testing.T) {
	svc := NewLeaderboardService(leaderboardFixtureDataset())

	entries, err := svc.Rank(context.Background(), nil)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got: %d", len(entries))
	}

	var bihar *models.LeaderboardEntry
	for i := range entries {
		if entries[i].State == "Bihar" {
			bihar = &entries[i]
		}
	}
	if bihar == nil {
		t.Fatalf("Bihar missing from aggregate leaderboard: %+v", entries)
	}
	// 100 - 100*0.90, the pure-rape mix.
	if bihar.Score != 10.0 {
		t.Errorf("expected Bihar aggregate score 10.0, got: %v", bihar.Score)
	}

	for i := 1; i < len(entries); i++ {
		if entries[i-1].Score > entries[i].Score {
			t.Errorf("aggregate leaderboard not ascending at index %d", i)
		}
	}
}
