// Package catalog holds the static reference data for every scale of the
// visualization: the Sun and planets, nearby stars, Milky Way spiral arms and
// the Local Group galaxies.
//
// Tables are process-wide and never mutated. Accessors hand out copies so
// callers cannot alter them.
package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/litescript/ls-cosmos/internal/ephem"
)

// ErrInvalid reports malformed reference data.
var ErrInvalid = errors.New("catalog: invalid reference data")

// Names used across scales.
const (
	SunName      = "Sonne"
	EarthName    = "Erde"
	MilkyWayName = "Milchstraße"
	SunColor     = "yellow"
	OrbitCount   = 9
)

// Info is the descriptive record shown for a selected body. It is display
// payload only; nothing is derived from it.
type Info struct {
	DiameterKm       float64 `json:"durchmesser_km"`
	DistanceAU       float64 `json:"abstand_ae"`
	Moons            int     `json:"monde"`
	Planets          int     `json:"planeten"`
	Surface          string  `json:"oberflaeche"`
	Core             string  `json:"kern"`
	Atmosphere       string  `json:"atmosphaere"`
	Temperature      string  `json:"temperatur"`
	TemperatureNotes string  `json:"temperatur_detail"`
	Elements         string  `json:"elemente"`
	Rotation         string  `json:"rotation"`
	Features         string  `json:"auffaelligkeiten"`
}

// Planet is a solar-system body orbiting the Sun.
type Planet struct {
	Name       string     // Display name (German, as on the wire)
	Body       ephem.Body // Oracle identifier
	DiameterKm float64    // True diameter
	DistanceAU float64    // True mean distance from the Sun
	Color      string     // Display color
	OrbitIndex int        // 1-based slot in the didactic layout
	Outer      bool       // Hidden when zoomed far in
}

// Star is an entry of the stellar neighbourhood catalog.
type Star struct {
	Name          string
	DistanceLY    float64
	MassSolar     float64
	SpectralClass string
	HasPlanets    bool
}

// SpiralArm is a display-only annotation of the Milky Way structure.
type SpiralArm struct {
	Name       string  `json:"name"`
	DistanceLY float64 `json:"entfernung_ly"`
	WidthLY    float64 `json:"breite_ly"`
}

// Galaxy is a member of the Local Group.
type Galaxy struct {
	Name       string
	DistanceLY float64
	DiameterLY float64
	Stars      int64
}

// ZodiacSign marks a 30° ecliptic sector starting at StartDeg.
type ZodiacSign struct {
	Name     string
	StartDeg int
}

// SunDiameterKm returns the true diameter of the Sun.
func SunDiameterKm() float64 {
	return sunDiameterKm
}

// Planets returns the planets in orbit order, Mercury first.
func Planets() []Planet {
	return slices.Clone(planets)
}

// OutermostPlanet returns the planet with the largest true distance.
func OutermostPlanet() Planet {
	return planets[len(planets)-1]
}

// InfoFor returns the descriptive record for the Sun or a planet.
func InfoFor(name string) (Info, bool) {
	info, ok := bodyInfo[name]
	return info, ok
}

// Stars returns the stellar neighbourhood catalog.
func Stars() []Star {
	return slices.Clone(stars)
}

// SpiralArms returns the Milky Way spiral arms.
func SpiralArms() []SpiralArm {
	return slices.Clone(spiralArms)
}

// LocalGroup returns the Local Group galaxies.
func LocalGroup() []Galaxy {
	return slices.Clone(localGroup)
}

// Zodiac returns the twelve zodiac signs in ecliptic order.
func Zodiac() []ZodiacSign {
	return slices.Clone(zodiac)
}

// Validate checks the tables for values the geometry cannot work with.
func Validate() error {
	if sunDiameterKm <= 0 {
		return fmt.Errorf("%w: sun diameter %v", ErrInvalid, sunDiameterKm)
	}

	seen := make(map[string]bool)
	lastAU := 0.0
	for i, p := range planets {
		if seen[p.Name] {
			return fmt.Errorf("%w: duplicate planet %q", ErrInvalid, p.Name)
		}
		seen[p.Name] = true
		if p.DiameterKm <= 0 || p.DistanceAU <= 0 {
			return fmt.Errorf("%w: planet %q has non-positive size or distance", ErrInvalid, p.Name)
		}
		if p.DistanceAU <= lastAU {
			return fmt.Errorf("%w: planet %q out of distance order", ErrInvalid, p.Name)
		}
		if p.OrbitIndex != i+1 {
			return fmt.Errorf("%w: planet %q has orbit index %d, want %d", ErrInvalid, p.Name, p.OrbitIndex, i+1)
		}
		lastAU = p.DistanceAU
	}
	if len(planets) != OrbitCount {
		return fmt.Errorf("%w: %d planets for %d orbits", ErrInvalid, len(planets), OrbitCount)
	}

	for _, s := range stars {
		if s.DistanceLY <= 0 || s.MassSolar <= 0 || s.SpectralClass == "" {
			return fmt.Errorf("%w: star %q", ErrInvalid, s.Name)
		}
	}

	for _, g := range localGroup {
		if g.DistanceLY <= 0 || g.DiameterLY <= 0 {
			return fmt.Errorf("%w: galaxy %q", ErrInvalid, g.Name)
		}
	}

	return nil
}
