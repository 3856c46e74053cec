package model

// Damage is the deterministic point estimate produced by the damage
// formula. Values are never rounded internally; rounding happens only at
// the serialization boundary.
type Damage struct {
	SingleHit float64 `json:"single_hit"`
	DirectDPS float64 `json:"direct_dps"`
	DotDPS    float64 `json:"dot_dps"`
	TotalDPS  float64 `json:"total_dps"`
}

// MetricStats is the min/avg/max of one metric across simulation trials.
type MetricStats struct {
	Min float64 `json:"min"`
	Avg float64 `json:"avg"`
	Max float64 `json:"max"`
}

// SimulationResult aggregates Monte Carlo trial statistics. Created
// fresh per request and discarded after the response is serialized; the
// engine holds no state across requests.
type SimulationResult struct {
	NumSimulations int         `json:"num_simulations"`
	Duration       float64     `json:"duration"`
	DirectDPS      MetricStats `json:"direct_dps"`
	DotDPS         MetricStats `json:"dot_dps"`
	TotalDPS       MetricStats `json:"total_dps"`
}
