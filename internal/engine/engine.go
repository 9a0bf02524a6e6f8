// Package engine is the boundary surface of the smoothing core: it owns one
// recording, builds (or fetches) its trajectory, and answers timestamp
// queries with position, velocity and the active glyph id in a single value.
package engine

import (
	"go.uber.org/zap"

	"github.com/xkilldash9x/cursortrace/internal/recording"
	"github.com/xkilldash9x/cursortrace/internal/trajectory"
)

// Sample is the answer to one timestamp query.
type Sample struct {
	TimeMs    float64 `json:"timeMs"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	VelocityX float64 `json:"velocityX"`
	VelocityY float64 `json:"velocityY"`
	GlyphID   string  `json:"glyphId,omitempty"`
}

// Engine binds a recording to its precomputed trajectory. It is read-only
// after New and safe for concurrent queries.
type Engine struct {
	rec    *recording.Recording
	traj   *trajectory.Trajectory
	logger *zap.Logger
}

// Option configures an Engine.
type Option func(*options)

type options struct {
	cache  *trajectory.Cache
	logger *zap.Logger
}

// WithCache makes the engine fetch its trajectory through a shared cache
// instead of building privately.
func WithCache(c *trajectory.Cache) Option {
	return func(o *options) { o.cache = c }
}

// WithLogger attaches a logger; the default is a nop.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New builds the engine for one recording, paying the precompute cost up
// front.
func New(rec *recording.Recording, tuning trajectory.Tuning, opts ...Option) *Engine {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	var traj *trajectory.Trajectory
	if o.cache != nil {
		traj = o.cache.Get(rec, tuning)
	} else {
		traj = trajectory.Build(rec, tuning)
	}

	o.logger.Debug("trajectory ready",
		zap.String("recording_id", rec.ID),
		zap.Int("events", len(rec.Events)),
		zap.Int("checkpoints", len(traj.Checkpoints())),
		zap.Float64("duration_ms", rec.DurationMs()),
	)

	return &Engine{rec: rec, traj: traj, logger: o.logger}
}

// HasTrajectory reports whether any usable motion data exists. When false,
// At still answers with the fixed default state.
func (e *Engine) HasTrajectory() bool {
	return !e.traj.Empty()
}

// At answers one timestamp with the smoothed state and the active glyph.
func (e *Engine) At(timeMs float64) Sample {
	state := e.traj.At(timeMs)
	glyph, _ := trajectory.ActiveGlyphAt(e.rec, timeMs)
	return Sample{
		TimeMs:    timeMs,
		X:         state.Position.X,
		Y:         state.Position.Y,
		VelocityX: state.Velocity.X,
		VelocityY: state.Velocity.Y,
		GlyphID:   glyph,
	}
}

// RawAt answers with the unsmoothed nearest-sample state, for cheap scrub
// previews that cannot afford residual integration.
func (e *Engine) RawAt(timeMs float64) Sample {
	state := trajectory.RawAt(e.rec, timeMs)
	glyph, _ := trajectory.ActiveGlyphAt(e.rec, timeMs)
	return Sample{
		TimeMs:  timeMs,
		X:       state.Position.X,
		Y:       state.Position.Y,
		GlyphID: glyph,
	}
}
