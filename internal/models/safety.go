package models

// SafetyRequest is the JSON body of POST /predict/safety.
type SafetyRequest struct {
	State string `json:"state" validate:"required"`
	Year  int    `json:"year" validate:"required,gte=2001,lte=2025"`
}

// SafetyResponse echoes the request key together with the derived score.
type SafetyResponse struct {
	State       string  `json:"state"`
	Year        int     `json:"year"`
	SafetyScore float64 `json:"safety_score"`
	RiskLevel   string  `json:"risk_level"`
}

// SimulateRequest is the JSON body of POST /predict/simulate: a what-if
// vector of crime counts. All counts must be non-negative; the service
// additionally rejects the all-zero vector.
type SimulateRequest struct {
	Year             int `json:"year" validate:"required,gte=2001,lte=2025"`
	Rape             int `json:"rape" validate:"gte=0"`
	Kidnapping       int `json:"kidnapping" validate:"gte=0"`
	DowryDeaths      int `json:"dowry_deaths" validate:"gte=0"`
	AssaultOnWomen   int `json:"assault_on_women" validate:"gte=0"`
	AssaultOnMinors  int `json:"assault_on_minors" validate:"gte=0"`
	DomesticViolence int `json:"domestic_violence" validate:"gte=0"`
	Trafficking      int `json:"trafficking" validate:"gte=0"`
}

// Counts converts the request into the scoring input vector.
func (r SimulateRequest) Counts() CrimeCounts {
	return CrimeCounts{
		Rape:             float64(r.Rape),
		Kidnapping:       float64(r.Kidnapping),
		DowryDeaths:      float64(r.DowryDeaths),
		AssaultOnWomen:   float64(r.AssaultOnWomen),
		AssaultOnMinors:  float64(r.AssaultOnMinors),
		DomesticViolence: float64(r.DomesticViolence),
		Trafficking:      float64(r.Trafficking),
	}
}

// SimulateResponse carries only the derived values.
type SimulateResponse struct {
	SafetyScore float64 `json:"safety_score"`
	RiskLevel   string  `json:"risk_level"`
}

// SafetyScore is the derived (score, risk) pair. Computed on demand, never
// persisted.
type SafetyScore struct {
	Score     float64
	RiskLevel string
}
