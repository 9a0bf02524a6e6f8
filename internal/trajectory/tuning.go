// Package trajectory turns a sparse pointer-event stream into a precomputed,
// randomly-queryable motion curve. Build runs the spring simulation once over
// the densified move stream and caches per-sample checkpoints; At resumes the
// integration from the bracketing checkpoint to answer any timestamp exactly.
package trajectory

import "github.com/xkilldash9x/cursortrace/internal/spring"

// Tuning collects every constant that shapes the simulation. Callers pass it
// into Build explicitly so alternate tunings can be exercised side by side;
// nothing in this package reads hidden globals.
type Tuning struct {
	// TickMs is the integration sub-step, shared by the densifier's gap
	// measure and the integrator.
	TickMs float64 `json:"tickMs" yaml:"tick_ms"`

	// GapTicks and GapDistance gate densification: a move gap is only
	// filled when it spans at least GapTicks sub-steps AND the pointer
	// traveled at least GapDistance (a fraction of the unit-square
	// diagonal, so 0.02 means 2% of the diagonal).
	GapTicks    float64 `json:"gapTicks" yaml:"gap_ticks"`
	GapDistance float64 `json:"gapDistance" yaml:"gap_distance"`

	// MinInserted and MaxInserted clamp how many synthetic samples one gap
	// may receive.
	MinInserted int `json:"minInserted" yaml:"min_inserted"`
	MaxInserted int `json:"maxInserted" yaml:"max_inserted"`

	// ClickWindowMs is the half-width of the click-reaction window: any
	// click within this distance of the current time selects the snappy
	// profile.
	ClickWindowMs float64 `json:"clickWindowMs" yaml:"click_window_ms"`

	Profiles spring.Profiles `json:"profiles" yaml:"profiles"`
}

// DefaultTuning returns the tuning the application ships with.
func DefaultTuning() Tuning {
	return Tuning{
		TickMs:        spring.TickMs,
		GapTicks:      4,
		GapDistance:   0.02,
		MinInserted:   2,
		MaxInserted:   120,
		ClickWindowMs: 160,
		Profiles:      spring.DefaultProfiles(),
	}
}
