package trajectory

import (
	"github.com/xkilldash9x/cursortrace/internal/recording"
	"github.com/xkilldash9x/cursortrace/internal/spring"
)

// profileSelector picks the spring configuration active at a moment in time.
// Priority: any click within the reaction window wins (snappy), then a held
// primary button (drag), then default.
//
// The selector is built for one monotonic forward pass: At must be called
// with non-decreasing timestamps. Both the window cursor and the button-state
// cursor only ever move forward, so a full pass over a recording costs O(1)
// amortized per sample instead of rescanning the click list.
type profileSelector struct {
	clicks   []recording.PointerEvent
	windowMs float64
	profiles spring.Profiles

	windowIdx   int  // first click not yet behind the reaction window
	pressIdx    int  // next click to fold into primaryDown
	primaryDown bool // last-seen left-button press/release transition
}

func newProfileSelector(clicks []recording.PointerEvent, tuning Tuning) *profileSelector {
	return &profileSelector{
		clicks:   clicks,
		windowMs: tuning.ClickWindowMs,
		profiles: tuning.Profiles,
	}
}

// At returns the profile active at timeMs.
func (s *profileSelector) At(timeMs float64) spring.Config {
	// Fold every click at or before timeMs into the primary-button state.
	for s.pressIdx < len(s.clicks) && s.clicks[s.pressIdx].TimestampMs <= timeMs {
		ev := s.clicks[s.pressIdx]
		if ev.Kind == recording.KindLeftClick {
			s.primaryDown = ev.Pressed
		}
		s.pressIdx++
	}

	// Drop clicks that have fallen behind the reaction window, then check
	// whether the next one is close enough ahead or behind.
	for s.windowIdx < len(s.clicks) && s.clicks[s.windowIdx].TimestampMs < timeMs-s.windowMs {
		s.windowIdx++
	}
	if s.windowIdx < len(s.clicks) && s.clicks[s.windowIdx].TimestampMs <= timeMs+s.windowMs {
		return s.profiles.Snappy
	}

	if s.primaryDown {
		return s.profiles.Drag
	}
	return s.profiles.Default
}
