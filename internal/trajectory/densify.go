package trajectory

import (
	"math"

	"github.com/xkilldash9x/cursortrace/internal/recording"
	"github.com/xkilldash9x/cursortrace/internal/spring"
)

// unitDiagonal is the length of the unit square's diagonal; Tuning.GapDistance
// is expressed as a fraction of it.
const unitDiagonal = math.Sqrt2

// densify inserts linearly-interpolated synthetic samples into gaps of the
// move stream that are both long (in time) and wide (in distance). Without
// this, a throttled or low-rate capture would hand the integrator a single
// huge leap and the cursor would visibly teleport. Tiny high-frequency
// jitter is deliberately left alone so the simulation does not burn steps
// on noise.
//
// The input must contain move samples only, in ascending time order. Fewer
// than two samples pass through unchanged.
func densify(moves []recording.PointerEvent, tuning Tuning) []recording.PointerEvent {
	if len(moves) < 2 {
		return moves
	}

	minGapMs := tuning.GapTicks * tuning.TickMs
	minDist := tuning.GapDistance * unitDiagonal

	out := make([]recording.PointerEvent, 0, len(moves))
	out = append(out, moves[0])

	for i := 1; i < len(moves); i++ {
		prev, curr := moves[i-1], moves[i]
		dtMs := curr.TimestampMs - prev.TimestampMs

		from := spring.Vector2D{X: prev.X, Y: prev.Y}
		to := spring.Vector2D{X: curr.X, Y: curr.Y}

		if dtMs >= minGapMs && from.Dist(to) >= minDist {
			n := int(math.Ceil(dtMs / tuning.TickMs))
			if n < tuning.MinInserted {
				n = tuning.MinInserted
			}
			if n > tuning.MaxInserted {
				n = tuning.MaxInserted
			}
			for k := 1; k <= n; k++ {
				t := float64(k) / float64(n+1)
				p := from.Lerp(to, t)
				out = append(out, recording.PointerEvent{
					TimestampMs: prev.TimestampMs + dtMs*t,
					X:           p.X,
					Y:           p.Y,
					Kind:        recording.KindMove,
				})
			}
		}
		out = append(out, curr)
	}
	return out
}
