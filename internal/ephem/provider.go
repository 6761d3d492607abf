// Package ephem provides ephemeris oracles that answer "where is this body on
// the ecliptic at time t" for the solar-system scene.
package ephem

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrUnknownBody is returned for bodies an oracle cannot answer for.
	ErrUnknownBody = errors.New("ephem: unknown body")

	// ErrUnavailable is returned when an oracle has no data for the
	// requested body and time (e.g. outside a theory's validity range).
	ErrUnavailable = errors.New("ephem: position unavailable")
)

// Oracle supplies ecliptic longitudes for solar-system bodies.
// Every call may fail independently; callers decide what a failure means.
type Oracle interface {
	// Name returns the oracle name for display/logging.
	Name() string

	// HeliocentricLongitude returns the heliocentric ecliptic longitude of
	// body at t in radians, normalized to [0, 2π).
	HeliocentricLongitude(ctx context.Context, body Body, t time.Time) (float64, error)

	// GeocentricSunLongitude returns the geocentric ecliptic longitude of
	// the Sun at t in radians, normalized to [0, 2π).
	GeocentricSunLongitude(ctx context.Context, t time.Time) (float64, error)
}

// CacheInvalidator is implemented by oracles that cache answers.
type CacheInvalidator interface {
	InvalidateCache()
}

// InvalidateCache drops cached answers if o keeps any. It reports whether o
// had a cache.
func InvalidateCache(o Oracle) bool {
	c, ok := o.(CacheInvalidator)
	if ok {
		c.InvalidateCache()
	}
	return ok
}

// Mode represents which ephemeris source to use.
type Mode int

const (
	ModeMeeus    Mode = iota // Local analytical theory (default)
	ModeHorizons             // JPL Horizons only
	ModeAuto                 // Try Horizons, fall back to Meeus
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeMeeus:
		return "meeus"
	case ModeHorizons:
		return "horizons"
	case ModeAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode string. Unknown values select ModeMeeus, which
// needs no network.
func ParseMode(s string) Mode {
	switch s {
	case "meeus":
		return ModeMeeus
	case "horizons":
		return ModeHorizons
	case "auto":
		return ModeAuto
	default:
		return ModeMeeus
	}
}

// Options configures oracles built by New.
type Options struct {
	HorizonsURL string
	Timeout     time.Duration
	CacheTTL    time.Duration
}

// New builds the oracle for a mode.
func New(mode Mode, opts Options) Oracle {
	switch mode {
	case ModeHorizons:
		return NewHorizonsOracle(opts)
	case ModeAuto:
		return NewFallbackOracle(NewHorizonsOracle(opts), NewMeeusOracle())
	default:
		return NewMeeusOracle()
	}
}
