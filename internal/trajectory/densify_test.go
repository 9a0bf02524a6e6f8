package trajectory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/cursortrace/internal/recording"
)

func move(tMs, x, y float64) recording.PointerEvent {
	return recording.PointerEvent{TimestampMs: tMs, X: x, Y: y, Kind: recording.KindMove}
}

func TestDensify_FillsLongWideGap(t *testing.T) {
	tuning := DefaultTuning()
	in := []recording.PointerEvent{move(0, 0, 0), move(500, 1, 1)}

	out := densify(in, tuning)

	// Roughly one synthetic sample per tick: ceil(500 / 16.667) = 30, give
	// or take a tick of float rounding.
	require.Greater(t, len(out), 2)
	assert.InDelta(t, 32, len(out), 1)
	assert.Equal(t, in[0], out[0])
	assert.Equal(t, in[1], out[len(out)-1])

	// The synthetic sample nearest the temporal midpoint sits near the
	// spatial midpoint of the straight-line gap.
	nearest := out[0]
	for _, ev := range out {
		if math.Abs(ev.TimestampMs-250) < math.Abs(nearest.TimestampMs-250) {
			nearest = ev
		}
	}
	assert.InDelta(t, 0.5, nearest.X, 0.05)
	assert.InDelta(t, 0.5, nearest.Y, 0.05)

	// Timestamps stay strictly increasing.
	for i := 1; i < len(out); i++ {
		assert.Greater(t, out[i].TimestampMs, out[i-1].TimestampMs)
	}
}

func TestDensify_LeavesSmallFastGapsAlone(t *testing.T) {
	tuning := DefaultTuning()
	in := []recording.PointerEvent{move(0, 0.5, 0.5), move(10, 0.501, 0.5)}

	out := densify(in, tuning)

	assert.Equal(t, in, out)
}

func TestDensify_LongGapSmallDistanceIsUntouched(t *testing.T) {
	// A cursor resting for a second should not be densified: the time gap
	// qualifies but the travel distance does not.
	tuning := DefaultTuning()
	in := []recording.PointerEvent{move(0, 0.5, 0.5), move(1000, 0.5001, 0.5)}

	out := densify(in, tuning)

	assert.Equal(t, in, out)
}

func TestDensify_ClampsInsertionCount(t *testing.T) {
	tuning := DefaultTuning()
	in := []recording.PointerEvent{move(0, 0, 0), move(60_000, 1, 1)}

	out := densify(in, tuning)

	// A one-minute gap would want 3600 samples; the clamp caps it.
	assert.Len(t, out, 2+tuning.MaxInserted)
}

func TestDensify_HonorsMinInserted(t *testing.T) {
	// With a tightened gap gate a sub-tick interval still receives the
	// configured minimum number of samples.
	tuning := DefaultTuning()
	tuning.GapTicks = 0.5
	in := []recording.PointerEvent{move(0, 0, 0), move(10, 1, 1)}

	out := densify(in, tuning)

	assert.Len(t, out, 2+tuning.MinInserted)
}

func TestDensify_FewerThanTwoSamples(t *testing.T) {
	tuning := DefaultTuning()

	assert.Empty(t, densify(nil, tuning))

	single := []recording.PointerEvent{move(100, 0.3, 0.3)}
	assert.Equal(t, single, densify(single, tuning))
}
