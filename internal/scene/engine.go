package scene

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/litescript/ls-cosmos/internal/catalog"
	"github.com/litescript/ls-cosmos/internal/ephem"
	"github.com/litescript/ls-cosmos/internal/logging"
	"github.com/litescript/ls-cosmos/internal/zoom"
)

// ErrComputation reports a scene that could not be computed, such as broken
// reference data or a non-finite coordinate.
var ErrComputation = errors.New("scene: computation failed")

// Engine computes scenes. It is safe for concurrent use if its oracle is.
type Engine struct {
	oracle ephem.Oracle
	clock  func() time.Time
	log    *logging.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the time source used when a request carries no usable
// timestamp.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithLogger sets the engine logger.
func WithLogger(log *logging.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// NewEngine creates an engine backed by oracle. It fails if the reference
// catalog is unusable.
func NewEngine(oracle ephem.Oracle, opts ...Option) (*Engine, error) {
	if oracle == nil {
		return nil, fmt.Errorf("%w: nil oracle", ErrComputation)
	}
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrComputation, err)
	}
	e := &Engine{
		oracle: oracle,
		clock:  time.Now,
		log:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// OracleName returns the name of the ephemeris oracle in use.
func (e *Engine) OracleName() string {
	return e.oracle.Name()
}

// InvalidateCache drops answers the oracle has cached, so the next solar
// scene asks it again.
func (e *Engine) InvalidateCache() {
	if ephem.InvalidateCache(e.oracle) {
		e.log.Debug("%s cache invalidated", e.oracle.Name())
	}
}

// Compute builds the scene for req. A missing or malformed timestamp falls
// back to the engine clock, and a body the oracle cannot place is left out.
// Neither is reported as an error.
func (e *Engine) Compute(ctx context.Context, req Request) (Scene, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	level := zoom.Classify(req.ZoomLevel)
	e.log.Debug("zoom %v -> %s (relative %v)", req.ZoomLevel, level.Regime, level.Relative)

	var s Scene
	switch level.Regime {
	case zoom.SolarSystem:
		t, err := ParseTimestamp(req.Timestamp)
		if err != nil {
			t = e.clock().UTC()
			if req.Timestamp != "" {
				e.log.Debug("timestamp: %v, using %s", err, t.Format(TimestampLayout))
			}
		}
		s = e.solarSystem(ctx, req, t)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	case zoom.LocalStars:
		s = localStars(level, req)
	case zoom.LocalGroup:
		s = localGroup(level, req)
	default:
		return nil, fmt.Errorf("%w: unknown regime %v", ErrComputation, level.Regime)
	}

	if err := s.check(); err != nil {
		return nil, err
	}
	return s, nil
}

// finite fails if any value is NaN or infinite.
func finite(name string, values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value %v for %q", ErrComputation, v, name)
		}
	}
	return nil
}
