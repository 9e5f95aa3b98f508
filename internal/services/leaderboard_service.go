package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/YT-Kowshick/Women-Safety-Ai/internal/models"
	gocache "github.com/patrickmn/go-cache"
)

// LeaderboardService ranks every known state by safety score, ascending,
// so the highest-risk states come first. States with equal scores keep the
// canonical enumeration order.
type LeaderboardService interface {
	// Rank builds the leaderboard. A nil year uses each state's mean counts
	// across all years; a non-nil year uses that year's records and returns
	// ErrNotFound when no state has data for it.
	Rank(ctx context.Context, year *int) ([]models.LeaderboardEntry, error)
}

type leaderboardService struct {
	dataset DatasetService
	cache   *gocache.Cache
}

// NewLeaderboardService injects the dataset dependency. Rankings are cached
// per filter key; the reference data never changes after startup.
func NewLeaderboardService(dataset DatasetService) LeaderboardService {
	return &leaderboardService{
		dataset: dataset,
		cache:   gocache.New(gocache.NoExpiration, time.Hour),
	}
}

func (s *leaderboardService) Rank(_ context.Context, year *int) ([]models.LeaderboardEntry, error) {
	key := "leaderboard:all"
	if year != nil {
		key = fmt.Sprintf("leaderboard:%d", *year)
	}
	if cached, found := s.cache.Get(key); found {
		return cached.([]models.LeaderboardEntry), nil
	}

	if year != nil && !s.dataset.HasYear(*year) {
		return nil, fmt.Errorf("no data found for year %d: %w", *year, ErrNotFound)
	}

	// States() is in canonical enumeration order and sort.SliceStable keeps
	// it for equal scores.
	entries := make([]models.LeaderboardEntry, 0, len(s.dataset.States()))
	for _, state := range s.dataset.States() {
		counts, ok := s.stateCounts(state, year)
		if !ok || counts.Total() == 0 {
			continue
		}
		entries = append(entries, models.LeaderboardEntry{
			State: state,
			Score: scoreCounts(counts).Score,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score < entries[j].Score
	})

	s.cache.Set(key, entries, gocache.NoExpiration)
	return entries, nil
}

// stateCounts resolves the count vector to score for one state: the exact
// record when a year filter is set, otherwise the mean of each category
// across every year the state has data for.
func (s *leaderboardService) stateCounts(state string, year *int) (models.CrimeCounts, bool) {
	if year != nil {
		record, ok := s.dataset.Find(state, *year)
		if !ok {
			return models.CrimeCounts{}, false
		}
		return record.Counts(), true
	}

	records := s.dataset.ByState(state)
	if len(records) == 0 {
		return models.CrimeCounts{}, false
	}

	var sum models.CrimeCounts
	for _, r := range records {
		c := r.Counts()
		sum.Rape += c.Rape
		sum.Kidnapping += c.Kidnapping
		sum.DowryDeaths += c.DowryDeaths
		sum.AssaultOnWomen += c.AssaultOnWomen
		sum.AssaultOnMinors += c.AssaultOnMinors
		sum.DomesticViolence += c.DomesticViolence
		sum.Trafficking += c.Trafficking
	}

	n := float64(len(records))
	return models.CrimeCounts{
		Rape:             sum.Rape / n,
		Kidnapping:       sum.Kidnapping / n,
		DowryDeaths:      sum.DowryDeaths / n,
		AssaultOnWomen:   sum.AssaultOnWomen / n,
		AssaultOnMinors:  sum.AssaultOnMinors / n,
		DomesticViolence: sum.DomesticViolence / n,
		Trafficking:      sum.Trafficking / n,
	}, true
}
