package services

import (
	"context"
	"fmt"
	"time"

	"github.com/YT-Kowshick/Women-Safety-Ai/internal/models"
	gocache "github.com/patrickmn/go-cache"
)

// movingAvgWindow is the trailing window of the optional smoothing pass.
// Points with fewer than movingAvgWindow-1 predecessors carry no average.
const movingAvgWindow = 3

// TrendService produces year-ordered crime series for one state and crime
// category, optionally smoothed with a trailing moving average.
type TrendService interface {
	// CrimeTrend returns the full series for (state, code). ErrInvalidInput
	// for an unrecognized crime code, ErrNotFound for an unknown state.
	CrimeTrend(ctx context.Context, state, crime string, smooth bool) (models.TrendResponse, error)
}

type trendService struct {
	dataset DatasetService
	cache   *gocache.Cache
}

// NewTrendService injects the dataset dependency. Series are cached
// indefinitely: the reference data never changes after startup.
func NewTrendService(dataset DatasetService) TrendService {
	return &trendService{
		dataset: dataset,
		cache:   gocache.New(gocache.NoExpiration, time.Hour),
	}
}

func (s *trendService) CrimeTrend(_ context.Context, state, crime string, smooth bool) (models.TrendResponse, error) {
	code, ok := models.ParseCrimeCode(crime)
	if !ok {
		return models.TrendResponse{}, fmt.Errorf(
			"invalid crime type '%s', must be one of: Rape, K&A, DD, AoW, AoM, DV, WT: %w",
			crime, ErrInvalidInput)
	}

	key := fmt.Sprintf("trend:%s:%s:%t", state, code, smooth)
	if cached, found := s.cache.Get(key); found {
		return cached.(models.TrendResponse), nil
	}

	records := s.dataset.ByState(state)
	if len(records) == 0 {
		return models.TrendResponse{}, fmt.Errorf(
			"no data found for state '%s': %w", state, ErrNotFound)
	}

	// Records are already sorted ascending by year.
	points := make([]models.TrendPoint, 0, len(records))
	for _, r := range records {
		points = append(points, models.TrendPoint{
			Year:  r.Year,
			Value: r.CountFor(code),
		})
	}

	if smooth {
		applyMovingAverage(points)
	}

	resp := models.TrendResponse{State: state, Crime: string(code), Data: points}
	s.cache.Set(key, resp, gocache.NoExpiration)
	return resp, nil
}

// applyMovingAverage fills MovingAvg with the trailing 3-year mean. The
// first two points have no value since the window is not yet full.
func applyMovingAverage(points []models.TrendPoint) {
	for i := movingAvgWindow - 1; i < len(points); i++ {
		sum := 0.0
		for j := i - movingAvgWindow + 1; j <= i; j++ {
			sum += points[j].Value
		}
		avg := sum / movingAvgWindow
		points[i].MovingAvg = &avg
	}
}
