// Package recording defines the pointer-telemetry data model produced by the
// upstream capture process: a flat, time-ordered event stream plus a mapping
// from glyph ids to opaque cursor-image references.
//
// The recording is treated as immutable input everywhere downstream. Event
// ordering (ascending TimestampMs) and coordinate normalization (x, y in
// [0,1]) are producer invariants and are not re-validated here.
package recording

// EventKind discriminates pointer events on the wire.
type EventKind string

const (
	KindMove        EventKind = "move"
	KindLeftClick   EventKind = "left_click"
	KindRightClick  EventKind = "right_click"
	KindMiddleClick EventKind = "middle_click"
)

// IsClick reports whether the kind is any of the three button events.
func (k EventKind) IsClick() bool {
	return k == KindLeftClick || k == KindRightClick || k == KindMiddleClick
}

// PointerEvent is one telemetry record. Pressed is only meaningful for click
// kinds (true on press, false on release). GlyphID, when set, names the
// cursor image active from this event onward.
type PointerEvent struct {
	TimestampMs float64   `json:"timestampMs"`
	X           float64   `json:"x"`
	Y           float64   `json:"y"`
	Kind        EventKind `json:"kind"`
	Pressed     bool      `json:"pressed,omitempty"`
	GlyphID     string    `json:"glyphId,omitempty"`
}

// Recording is an immutable captured pointer session. Glyphs maps glyph ids
// to opaque image references (paths or asset keys); decoding those images is
// a collaborator's job.
type Recording struct {
	ID     string            `json:"id,omitempty"`
	Events []PointerEvent    `json:"events"`
	Glyphs map[string]string `json:"glyphs,omitempty"`
}

// Split partitions the event stream into move samples and click events,
// preserving order. The two views feed different consumers: moves drive the
// spring pipeline, clicks drive profile selection.
func (r *Recording) Split() (moves, clicks []PointerEvent) {
	for _, ev := range r.Events {
		switch {
		case ev.Kind == KindMove:
			moves = append(moves, ev)
		case ev.Kind.IsClick():
			clicks = append(clicks, ev)
		}
	}
	return moves, clicks
}

// DurationMs returns the timestamp of the last event, or 0 for an empty
// recording.
func (r *Recording) DurationMs() float64 {
	if len(r.Events) == 0 {
		return 0
	}
	return r.Events[len(r.Events)-1].TimestampMs
}
