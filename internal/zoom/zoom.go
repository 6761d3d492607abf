// Package zoom maps the single continuous zoom level onto the three scale
// regimes and derives the per-regime zoom factors.
package zoom

import "math"

// Regime is one of the three physical scales.
type Regime int

const (
	SolarSystem Regime = iota
	LocalStars
	LocalGroup
)

// String returns the regime name as used on the wire.
func (r Regime) String() string {
	switch r {
	case SolarSystem:
		return "sonnensystem"
	case LocalStars:
		return "milchstrasse"
	case LocalGroup:
		return "galaxien"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r Regime) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Regime breakpoints and the offsets that turn an absolute level into a
// regime-relative one. The +11 for local stars is one more than the
// breakpoint; relative levels there run -9..0.
const (
	SolarSystemFloor = -10.0
	LocalStarsFloor  = -20.0

	LocalStarsOffset = 11.0
	LocalGroupOffset = 21.0
)

// Exponential bases.
const (
	StepFactorOut      = 1.1 // gentle zoom out, and every interstellar scale
	AggressiveFactorIn = 1.5 // realistic solar-system zoom in
)

// Range clients are expected to stay within. Classification itself accepts
// any value.
const (
	MinLevel = -30.0
	MaxLevel = 20.0
)

// Level is a classified zoom level.
type Level struct {
	Regime   Regime
	Relative float64 // regime-relative level; the level itself in the solar system
}

// Classify assigns a zoom level to its regime. Checks run solar system
// first, then local stars; everything below falls to the local group.
func Classify(level float64) Level {
	switch {
	case level >= SolarSystemFloor:
		return Level{Regime: SolarSystem, Relative: level}
	case level >= LocalStarsFloor:
		return Level{Regime: LocalStars, Relative: level + LocalStarsOffset}
	default:
		return Level{Regime: LocalGroup, Relative: level + LocalGroupOffset}
	}
}

// ScalingFactors returns the factor applied to geometry and the factor
// reported to the user. They only differ when zooming out of the solar
// system, where geometry stays at 1 and the reported scale shrinks.
func ScalingFactors(level float64) (orbitFactor, displayFactor float64) {
	l := Classify(level)

	switch l.Regime {
	case SolarSystem:
		if level <= 0 {
			return 1.0, math.Pow(StepFactorOut, level)
		}
		f := math.Pow(AggressiveFactorIn, level)
		return f, f
	case LocalStars:
		f := math.Pow(StepFactorOut, l.Relative*2)
		return f, f
	default:
		f := math.Pow(StepFactorOut, l.Relative*3)
		return f, f
	}
}

// Display mode labels of the solar-system view.
const (
	ModeDidactic   = "DIDAKTISCH"
	ModeTransition = "ÜBERGANG"
	ModeRealistic  = "REALISTISCH"
	ModeMaxRealism = "MAX REALISMUS"
)

// DisplayMode labels a solar-system zoom level. Cosmetic only.
func DisplayMode(level float64) string {
	switch {
	case level <= -5:
		return ModeDidactic
	case level <= 0:
		return ModeTransition
	case level <= 10:
		return ModeRealistic
	default:
		return ModeMaxRealism
	}
}

// Clamp limits a level to [MinLevel, MaxLevel].
func Clamp(level float64) float64 {
	return math.Max(MinLevel, math.Min(MaxLevel, level))
}
