package scene

import (
	"math"

	"github.com/litescript/ls-cosmos/internal/catalog"
	"github.com/litescript/ls-cosmos/internal/zoom"
)

const (
	localGroupBaseLY = 3_000_000
	minGalaxySize    = 5
	milkyWayRadius   = 15
)

func localGroup(level zoom.Level, req Request) *LocalGroupScene {
	cx, cy := Center+req.OffsetX, Center+req.OffsetY
	baseScale := float64(extent) / localGroupBaseLY
	factor := math.Pow(zoom.StepFactorOut, level.Relative*2)

	members := catalog.LocalGroup()
	galaxies := make([]GalaxyProjection, 0, len(members))
	for i, g := range members {
		a := float64(i) / float64(len(members)) * 2 * math.Pi
		r := g.DistanceLY / localGroupBaseLY * baseScale * factor
		galaxies = append(galaxies, GalaxyProjection{
			Name:       g.Name,
			X:          cx + r*math.Cos(a),
			Y:          cy + r*math.Sin(a),
			Radius:     math.Max(minGalaxySize, math.Log(g.DiameterLY)*2),
			DistanceLY: g.DistanceLY,
			DiameterLY: g.DiameterLY,
			Stars:      g.Stars,
			Selected:   g.Name == req.Selected,
		})
	}

	return &LocalGroupScene{
		Ebene:    zoom.LocalGroup,
		Galaxies: galaxies,
		MilkyWay: Marker{
			Name:     catalog.MilkyWayName,
			X:        cx,
			Y:        cy,
			Radius:   milkyWayRadius,
			Selected: req.Selected == catalog.MilkyWayName,
		},
	}
}

func (s *LocalGroupScene) check() error {
	if err := finite(s.MilkyWay.Name, s.MilkyWay.X, s.MilkyWay.Y); err != nil {
		return err
	}
	for _, g := range s.Galaxies {
		if err := finite(g.Name, g.X, g.Y, g.Radius); err != nil {
			return err
		}
	}
	return nil
}
