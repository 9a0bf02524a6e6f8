package trajectory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xkilldash9x/cursortrace/internal/recording"
	"github.com/xkilldash9x/cursortrace/internal/spring"
)

func TestActiveGlyphAt_LastWriteWins(t *testing.T) {
	rec := &recording.Recording{Events: []recording.PointerEvent{
		{TimestampMs: 0, Kind: recording.KindMove, GlyphID: "A"},
		{TimestampMs: 500, Kind: recording.KindMove, GlyphID: "B"},
	}}

	glyph, ok := ActiveGlyphAt(rec, 300)
	assert.True(t, ok)
	assert.Equal(t, "A", glyph)

	glyph, ok = ActiveGlyphAt(rec, 700)
	assert.True(t, ok)
	assert.Equal(t, "B", glyph)

	// Boundary: an event exactly at the query time counts.
	glyph, _ = ActiveGlyphAt(rec, 500)
	assert.Equal(t, "B", glyph)
}

func TestActiveGlyphAt_FallsBackToGlyphMap(t *testing.T) {
	// Legacy recordings: samples carry no glyph id, but the image map is
	// populated. The smallest id is the deterministic fallback.
	rec := &recording.Recording{
		Events: []recording.PointerEvent{move(0, 0.5, 0.5)},
		Glyphs: map[string]string{
			"pointer": "cursors/pointer.png",
			"arrow":   "cursors/arrow.png",
		},
	}

	glyph, ok := ActiveGlyphAt(rec, 100)
	assert.True(t, ok)
	assert.Equal(t, "arrow", glyph)
}

func TestActiveGlyphAt_NothingToResolve(t *testing.T) {
	rec := &recording.Recording{Events: []recording.PointerEvent{move(0, 0.5, 0.5)}}

	glyph, ok := ActiveGlyphAt(rec, 100)
	assert.False(t, ok)
	assert.Empty(t, glyph)

	// An id set in the future does not leak backward.
	rec.Events = append(rec.Events, recording.PointerEvent{
		TimestampMs: 900, Kind: recording.KindMove, GlyphID: "late",
	})
	_, ok = ActiveGlyphAt(rec, 100)
	assert.False(t, ok)
}

func TestRawAt_SnapsToNearestPrecedingSample(t *testing.T) {
	rec := &recording.Recording{Events: []recording.PointerEvent{
		move(100, 0.1, 0.2),
		move(600, 0.8, 0.9),
	}}

	assert.Equal(t, spring.Vector2D{X: 0.1, Y: 0.2}, RawAt(rec, 599).Position)
	assert.Equal(t, spring.Vector2D{X: 0.8, Y: 0.9}, RawAt(rec, 600).Position)
	assert.Equal(t, spring.Vector2D{X: 0.8, Y: 0.9}, RawAt(rec, 10_000).Position)

	// Before the first sample: clamp, never extrapolate.
	assert.Equal(t, spring.Vector2D{X: 0.1, Y: 0.2}, RawAt(rec, 0).Position)

	// Raw mode always reports zero velocity.
	assert.Equal(t, spring.Vector2D{}, RawAt(rec, 599).Velocity)
}

func TestRawAt_EmptyRecording(t *testing.T) {
	assert.Equal(t, DefaultState, RawAt(&recording.Recording{}, 50))
}
