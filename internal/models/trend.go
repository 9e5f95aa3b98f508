package models

// TrendPoint is one (year, value) sample of a crime series. MovingAvg is
// only present when smoothing was requested and the point has at least two
// predecessors in the series.
type TrendPoint struct {
	Year      int      `json:"year"`
	Value     float64  `json:"value"`
	MovingAvg *float64 `json:"moving_avg,omitempty"`
}

// TrendResponse is the payload of GET /trends: the full year-ascending
// series for one state and crime category.
type TrendResponse struct {
	State string       `json:"state"`
	Crime string       `json:"crime"`
	Data  []TrendPoint `json:"data"`
}
