package trajectory

import (
	"github.com/xkilldash9x/cursortrace/internal/recording"
	"github.com/xkilldash9x/cursortrace/internal/spring"
)

// Checkpoint is one cached simulation result: the state the spring reached at
// a sample's timestamp, together with the target and profile that produced
// it. At resumes integration from these fields to answer times between
// checkpoints.
type Checkpoint struct {
	TimeMs   float64
	Target   spring.Vector2D
	Position spring.Vector2D
	Velocity spring.Vector2D
	Profile  spring.Config
}

// Trajectory is the immutable result of one Build pass. It is safe for
// concurrent readers; nothing mutates it after construction.
type Trajectory struct {
	checkpoints []Checkpoint
	integrator  spring.Integrator
}

// Checkpoints exposes the cached list, ordered by non-decreasing TimeMs.
func (t *Trajectory) Checkpoints() []Checkpoint {
	return t.checkpoints
}

// Empty reports whether the recording contained no usable move samples.
func (t *Trajectory) Empty() bool {
	return len(t.checkpoints) == 0
}

// Build runs the simulation forward over the recording exactly once and
// returns the checkpoint cache. The pass densifies the move stream, selects
// the active spring profile per interval, and integrates sample by sample.
//
// Each integration step chases the sample one past the interval being
// crossed. Pursuing the next point instead of the just-arrived one is what
// keeps the spring from oscillating at segment ends; do not "simplify" the
// lookahead away.
func Build(rec *recording.Recording, tuning Tuning) *Trajectory {
	integ := spring.NewIntegrator(tuning.TickMs)
	traj := &Trajectory{integrator: integ}

	moves, clicks := rec.Split()
	moves = densify(moves, tuning)
	if len(moves) == 0 {
		return traj
	}

	selector := newProfileSelector(clicks, tuning)

	// Neutral starting state: resting at the first sample's position.
	state := spring.State{Position: spring.Vector2D{X: moves[0].X, Y: moves[0].Y}}

	first := Checkpoint{
		TimeMs:   moves[0].TimestampMs,
		Target:   lookahead(moves, 0),
		Position: state.Position,
		Profile:  selector.At(moves[0].TimestampMs),
	}
	traj.checkpoints = make([]Checkpoint, 0, len(moves))
	traj.checkpoints = append(traj.checkpoints, first)

	for i := 1; i < len(moves); i++ {
		target := lookahead(moves, i)
		profile := selector.At(moves[i].TimestampMs)
		elapsed := moves[i].TimestampMs - moves[i-1].TimestampMs

		state = integ.Advance(state, target, profile, elapsed)

		traj.checkpoints = append(traj.checkpoints, Checkpoint{
			TimeMs:   moves[i].TimestampMs,
			Target:   target,
			Position: state.Position,
			Velocity: state.Velocity,
			Profile:  profile,
		})
	}
	return traj
}

// lookahead returns the position of the sample after i, or sample i's own
// position for the final sample.
func lookahead(moves []recording.PointerEvent, i int) spring.Vector2D {
	if i+1 < len(moves) {
		return spring.Vector2D{X: moves[i+1].X, Y: moves[i+1].Y}
	}
	return spring.Vector2D{X: moves[i].X, Y: moves[i].Y}
}
