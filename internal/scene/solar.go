package scene

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/litescript/ls-cosmos/internal/astro"
	"github.com/litescript/ls-cosmos/internal/catalog"
	"github.com/litescript/ls-cosmos/internal/zoom"
)

const (
	outerPlanetMaxLevel = 15 // Uranus, Neptune and Pluto vanish above this
	zodiacMaxLevel      = 3
)

func (e *Engine) solarSystem(ctx context.Context, req Request, t time.Time) *SolarSystemScene {
	level := req.ZoomLevel
	orbitFactor, displayFactor := zoom.ScalingFactors(level)
	sun := sunRadius(level)
	cx, cy := Center+req.OffsetX, Center+req.OffsetY

	showOuter := level <= outerPlanetMaxLevel
	var visible []catalog.Planet
	for _, p := range catalog.Planets() {
		if p.Outer && !showOuter {
			continue
		}
		visible = append(visible, p)
	}

	orbits := make([]Orbit, 0, len(visible))
	for _, p := range visible {
		orbits = append(orbits, Orbit{Name: p.Name, Radius: orbitRadius(p, level, sun) * orbitFactor})
	}

	planets := make([]PlanetProjection, 0, len(visible))
	for _, p := range visible {
		lon, err := e.longitude(ctx, p, t)
		if err != nil {
			e.log.Warn("omitting %s: %v", p.Name, err)
			continue
		}
		r := orbitRadius(p, level, sun) * orbitFactor
		planets = append(planets, PlanetProjection{
			Name:        p.Name,
			X:           cx + r*math.Cos(lon),
			Y:           cy - r*math.Sin(lon),
			PointRadius: planetDiameter(p, level, sun) * orbitFactor / 2,
			Color:       p.Color,
			OrbitRadius: r,
			HelioLonRad: lon,
			Selected:    p.Name == req.Selected,
		})
	}

	sunR := sun * orbitFactor
	s := &SolarSystemScene{
		Ebene: zoom.SolarSystem,
		Sun: Marker{
			Name:     catalog.SunName,
			X:        cx,
			Y:        cy,
			Radius:   sunR,
			Color:    catalog.SunColor,
			Selected: req.Selected == catalog.SunName,
		},
		Planets: planets,
		Orbits:  orbits,
		Zodiac: ZodiacRing{
			Signs: catalog.Zodiac(),
			Show:  level <= zodiacMaxLevel,
		},
		Status: Status{
			ZoomLevel:     level,
			Mode:          zoom.DisplayMode(level),
			Timestamp:     t.Format(TimestampLayout),
			SunRadiusInfo: fmt.Sprintf("Sonne: %.1fpx", sunR*2),
			ZoomFactor:    displayFactor,
		},
	}
	if len(orbits) > 0 {
		s.Zodiac.Radius = orbits[len(orbits)-1].Radius + Margin
	}
	if req.Selected != "" {
		selected := req.Selected
		s.Status.Selected = &selected
		if info, ok := catalog.InfoFor(req.Selected); ok {
			s.SelectedInfo = &info
		}
	}
	return s
}

// longitude asks the oracle for a planet's heliocentric longitude. Earth is
// derived from the geocentric Sun, half a turn away.
func (e *Engine) longitude(ctx context.Context, p catalog.Planet, t time.Time) (float64, error) {
	if p.Name == catalog.EarthName {
		sun, err := e.oracle.GeocentricSunLongitude(ctx, t)
		if err != nil {
			return 0, fmt.Errorf("geocentric sun: %w", err)
		}
		return astro.NormalizeRadians(sun + math.Pi), nil
	}
	return e.oracle.HeliocentricLongitude(ctx, p.Body, t)
}

func (s *SolarSystemScene) check() error {
	if err := finite(s.Sun.Name, s.Sun.X, s.Sun.Y, s.Sun.Radius); err != nil {
		return err
	}
	for _, p := range s.Planets {
		if err := finite(p.Name, p.X, p.Y, p.PointRadius, p.OrbitRadius, p.HelioLonRad); err != nil {
			return err
		}
	}
	for _, o := range s.Orbits {
		if err := finite(o.Name, o.Radius); err != nil {
			return err
		}
	}
	return finite("zodiac", s.Zodiac.Radius, s.Status.ZoomFactor)
}
