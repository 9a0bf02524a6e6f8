package trajectory

import (
	"sort"

	"github.com/xkilldash9x/cursortrace/internal/spring"
)

// DefaultState is the answer for recordings with no usable move samples:
// resting at the center of the unit square.
var DefaultState = spring.State{Position: spring.Vector2D{X: 0.5, Y: 0.5}}

// At answers an arbitrary timestamp against the checkpoint cache.
//
// Times at or before the first checkpoint return its stored state; times at
// or after the last return the last state. There is no extrapolation in
// either direction. In between, a transient integrator state is seeded from
// the bracketing checkpoint and advanced for the residual sub-interval, so
// any query resolution is exact regardless of the original sample rate.
// Export frame times and scrub positions never align with capture times.
//
// At reads the cache without writing anything, so concurrent and
// out-of-order queries are safe and bit-reproducible.
func (t *Trajectory) At(timeMs float64) spring.State {
	cps := t.checkpoints
	if len(cps) == 0 {
		return DefaultState
	}
	if timeMs <= cps[0].TimeMs {
		return spring.State{Position: cps[0].Position, Velocity: cps[0].Velocity}
	}
	last := cps[len(cps)-1]
	if timeMs >= last.TimeMs {
		return spring.State{Position: last.Position, Velocity: last.Velocity}
	}

	// Largest i with cps[i].TimeMs <= timeMs. The list is time-ordered, so
	// binary search keeps long-recording queries off the O(n) path.
	idx := sort.Search(len(cps), func(i int) bool {
		return cps[i].TimeMs > timeMs
	}) - 1

	curr := cps[idx]
	state := spring.State{Position: curr.Position, Velocity: curr.Velocity}
	return t.integrator.Advance(state, curr.Target, curr.Profile, timeMs-curr.TimeMs)
}
