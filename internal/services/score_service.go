package services

import (
	"context"
	"fmt"
	"math"

	"github.com/YT-Kowshick/Women-Safety-Ai/internal/models"
)

// Severity weights per crime category. The trained model behind the
// original dashboard is opaque; this fixed linear weighting is the
// documented approximation of it. The score reflects how heavily the
// crime mix leans on the more severe categories, so it is invariant to
// the overall case volume.
const (
	weightRape             = 0.90
	weightKidnapping       = 0.62
	weightDowryDeaths      = 0.85
	weightAssaultOnWomen   = 0.45
	weightAssaultOnMinors  = 0.80
	weightDomesticViolence = 0.42
	weightTrafficking      = 0.70
)

// Risk level thresholds: closed on the lower side.
const (
	riskHighBelow = 40.0
	riskLowFrom   = 70.0
)

// ScoreService computes safety scores, either for a known (state, year)
// record or for a caller-supplied what-if vector of crime counts.
type ScoreService interface {
	// PredictSafety scores an existing record. Returns ErrNotFound when no
	// record matches the (state, year) pair.
	PredictSafety(ctx context.Context, state string, year int) (models.SafetyScore, error)
	// Simulate scores an arbitrary count vector. Returns ErrInvalidInput
	// when every count is zero: a no-crime input carries no signal and is
	// rejected rather than scored as perfectly safe.
	Simulate(ctx context.Context, counts models.CrimeCounts) (models.SafetyScore, error)
}

type scoreService struct {
	dataset DatasetService
}

// NewScoreService injects the dataset dependency and returns a ScoreService
// ready for use.
func NewScoreService(dataset DatasetService) ScoreService {
	return &scoreService{dataset: dataset}
}

func (s *scoreService) PredictSafety(ctx context.Context, state string, year int) (models.SafetyScore, error) {
	record, ok := s.dataset.Find(state, year)
	if !ok {
		return models.SafetyScore{}, fmt.Errorf(
			"no data found for state '%s' and year %d: %w", state, year, ErrNotFound)
	}
	// A record whose seven counts are all zero carries no signal the mix
	// formula can score; treat it like missing data rather than dividing
	// by zero.
	counts := record.Counts()
	if counts.Total() == 0 {
		return models.SafetyScore{}, fmt.Errorf(
			"no crime counts recorded for state '%s' and year %d: %w", state, year, ErrNotFound)
	}
	return scoreCounts(counts), nil
}

func (s *scoreService) Simulate(_ context.Context, counts models.CrimeCounts) (models.SafetyScore, error) {
	if counts.Total() == 0 {
		return models.SafetyScore{}, fmt.Errorf(
			"at least one crime count must be greater than 0: %w", ErrInvalidInput)
	}
	return scoreCounts(counts), nil
}

// scoreCounts applies the weighted linear formula: each category's share of
// the total caseload is multiplied by its severity weight, the weighted sum
// is subtracted from 100 and the result clamped to [0,100]. Deterministic:
// same counts, same score. Callers must guarantee a non-zero total.
func scoreCounts(c models.CrimeCounts) models.SafetyScore {
	total := c.Total()

	penalty := 100 * (weightRape*c.Rape +
		weightKidnapping*c.Kidnapping +
		weightDowryDeaths*c.DowryDeaths +
		weightAssaultOnWomen*c.AssaultOnWomen +
		weightAssaultOnMinors*c.AssaultOnMinors +
		weightDomesticViolence*c.DomesticViolence +
		weightTrafficking*c.Trafficking) / total

	// Round before bucketing so the returned risk level always matches the
	// bracket of the returned score.
	score := roundScore(clampScore(100 - penalty))
	return models.SafetyScore{
		Score:     score,
		RiskLevel: RiskFromScore(score),
	}
}

// RiskFromScore buckets a safety score into its risk level. Total over
// [0,100] and deterministic; boundaries are closed on the lower side.
func RiskFromScore(score float64) string {
	switch {
	case score < riskHighBelow:
		return "High"
	case score < riskLowFrom:
		return "Medium"
	default:
		return "Low"
	}
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// roundScore keeps one decimal, matching the precision the dashboard shows.
func roundScore(v float64) float64 {
	return math.Round(v*10) / 10
}
