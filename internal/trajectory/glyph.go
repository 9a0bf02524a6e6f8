package trajectory

import (
	"sort"

	"github.com/xkilldash9x/cursortrace/internal/recording"
	"github.com/xkilldash9x/cursortrace/internal/spring"
)

// ActiveGlyphAt resolves which cursor glyph is active at timeMs: the most
// recent event at or before timeMs that carries a glyph id wins. Recordings
// from older recorders often have no glyph id on their early samples, so
// when nothing matched the recording's glyph map supplies a fallback: the
// smallest id, since Go map order would otherwise change between runs.
//
// The scan runs over the raw event stream; glyph identity is completely
// independent of the spring pipeline.
func ActiveGlyphAt(rec *recording.Recording, timeMs float64) (string, bool) {
	var active string
	for _, ev := range rec.Events {
		if ev.TimestampMs > timeMs {
			break
		}
		if ev.GlyphID != "" {
			active = ev.GlyphID
		}
	}
	if active != "" {
		return active, true
	}
	if len(rec.Glyphs) == 0 {
		return "", false
	}
	ids := make([]string, 0, len(rec.Glyphs))
	for id := range rec.Glyphs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids[0], true
}

// RawAt is the cheap preview query: the nearest move sample at or before
// timeMs, with zero velocity, bypassing the trajectory cache entirely. Times
// before the first sample clamp to it; recordings without moves get
// DefaultState.
func RawAt(rec *recording.Recording, timeMs float64) spring.State {
	moves, _ := rec.Split()
	if len(moves) == 0 {
		return DefaultState
	}
	idx := sort.Search(len(moves), func(i int) bool {
		return moves[i].TimestampMs > timeMs
	}) - 1
	if idx < 0 {
		idx = 0
	}
	return spring.State{Position: spring.Vector2D{X: moves[idx].X, Y: moves[idx].Y}}
}
