package spring

import "math"

// TickMs is the fixed integration sub-step, one frame at 60Hz.
const TickMs = 1000.0 / 60.0

// minMass is the defensive floor applied to Config.Mass so a zero or
// negative mass from a bad tuning file cannot produce infinite acceleration.
const minMass = 0.001

// State is one (position, velocity) pair being integrated.
type State struct {
	Position Vector2D
	Velocity Vector2D
}

// Integrator advances spring states with semi-implicit Euler steps of a
// fixed sub-step length. It holds no per-simulation state, so a single
// instance may be shared by any number of concurrent callers.
type Integrator struct {
	tickMs float64
}

// NewIntegrator returns an integrator with the given sub-step in
// milliseconds. Non-positive values fall back to TickMs.
func NewIntegrator(tickMs float64) Integrator {
	if tickMs <= 0 {
		tickMs = TickMs
	}
	return Integrator{tickMs: tickMs}
}

// TickMs reports the configured sub-step length in milliseconds.
func (in Integrator) TickMs() float64 {
	return in.tickMs
}

// Advance moves `s` toward `target` under `cfg` for `elapsedMs`. An elapsed
// interval longer than one sub-step is split into ceil(elapsed/tick) steps of
// min(remaining, tick) each. The result is a pure function of the declared
// inputs; there are no wall-clock reads, so identical inputs reproduce
// bit-identical output.
func (in Integrator) Advance(s State, target Vector2D, cfg Config, elapsedMs float64) State {
	if elapsedMs <= 0 {
		return s
	}
	mass := math.Max(cfg.Mass, minMass)

	remaining := elapsedMs
	for remaining > 0 {
		stepMs := math.Min(remaining, in.tickMs)
		dt := stepMs / 1000.0

		fx := cfg.Tension*(target.X-s.Position.X) - cfg.Friction*s.Velocity.X
		fy := cfg.Tension*(target.Y-s.Position.Y) - cfg.Friction*s.Velocity.Y

		s.Velocity.X += fx / mass * dt
		s.Velocity.Y += fy / mass * dt
		s.Position.X += s.Velocity.X * dt
		s.Position.Y += s.Velocity.Y * dt

		remaining -= stepMs
	}
	return s
}
