package scene

import (
	"hash/fnv"
	"math"

	"github.com/litescript/ls-cosmos/internal/astro"
	"github.com/litescript/ls-cosmos/internal/catalog"
	"github.com/litescript/ls-cosmos/internal/zoom"
)

// starTier selects which stars are shown at a relative level and how they
// are sized.
type starTier struct {
	maxDistanceLY float64
	sizeFactor    float64 // pixels per solar mass
	minSize       float64
	overview      bool // keep only massive or very close stars
}

var starTiers = [...]starTier{
	{maxDistanceLY: 100, sizeFactor: 6, minSize: 3},
	{maxDistanceLY: 1000, sizeFactor: 4, minSize: 2},
	{maxDistanceLY: 50000, sizeFactor: 2, minSize: 1, overview: true},
}

const (
	spiralArmMinLevel = 5
	overviewNearLY    = 50
	sunMarkerRadius   = 8
)

func tierFor(relative float64) starTier {
	switch {
	case relative <= 3:
		return starTiers[0]
	case relative <= 6:
		return starTiers[1]
	default:
		return starTiers[2]
	}
}

func (t starTier) shows(s catalog.Star) bool {
	if t.overview {
		return s.MassSolar > 1 || s.DistanceLY < overviewNearLY
	}
	return s.DistanceLY <= t.maxDistanceLY
}

// starAngle places a star at a stable angle derived from its name, in
// degrees. It is not a sky position.
func starAngle(name string) float64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return float64(h.Sum32() % 360)
}

func localStars(level zoom.Level, req Request) *LocalStarsScene {
	tier := tierFor(level.Relative)
	cx, cy := Center+req.OffsetX, Center+req.OffsetY
	all := catalog.Stars()
	stars := make([]StarProjection, 0, len(all))
	for _, s := range all {
		if !tier.shows(s) {
			continue
		}
		r := neighbourhoodRadius(s.DistanceLY, tier.maxDistanceLY, level.Relative)
		a := astro.DegToRad(starAngle(s.Name))
		stars = append(stars, StarProjection{
			Name:          s.Name,
			X:             cx + r*math.Cos(a),
			Y:             cy + r*math.Sin(a),
			Radius:        math.Max(tier.minSize, s.MassSolar*tier.sizeFactor),
			Color:         catalog.StarColor(s.SpectralClass),
			DistanceLY:    s.DistanceLY,
			MassSolar:     s.MassSolar,
			SpectralClass: s.SpectralClass,
			HasPlanets:    s.HasPlanets,
			Selected:      s.Name == req.Selected,
		})
	}

	arms := []catalog.SpiralArm{}
	if level.Relative >= spiralArmMinLevel {
		arms = catalog.SpiralArms()
	}

	return &LocalStarsScene{
		Ebene: zoom.LocalStars,
		Stars: stars,
		Sun: Marker{
			Name:     catalog.SunName,
			X:        cx,
			Y:        cy,
			Radius:   sunMarkerRadius,
			Color:    catalog.SunColor,
			Selected: req.Selected == catalog.SunName,
		},
		SpiralArms: arms,
		ZoomInfo: ZoomInfo{
			MaxDistanceLY: tier.maxDistanceLY,
			RelativeLevel: level.Relative,
			StarCount:     len(stars),
		},
	}
}

// neighbourhoodRadius converts a distance from the Sun into pixels for a
// tier bounded by maxLY.
func neighbourhoodRadius(distanceLY, maxLY, relative float64) float64 {
	baseScale := extent / maxLY
	return distanceLY / maxLY * baseScale * extent * math.Pow(zoom.StepFactorOut, relative*2)
}

// RadiusAt returns the pixel distance from the Sun at which an object
// distanceLY away is drawn in this scene.
func (s *LocalStarsScene) RadiusAt(distanceLY float64) float64 {
	return neighbourhoodRadius(distanceLY, s.ZoomInfo.MaxDistanceLY, s.ZoomInfo.RelativeLevel)
}

func (s *LocalStarsScene) check() error {
	if err := finite(s.Sun.Name, s.Sun.X, s.Sun.Y); err != nil {
		return err
	}
	for _, st := range s.Stars {
		if err := finite(st.Name, st.X, st.Y, st.Radius); err != nil {
			return err
		}
	}
	return nil
}
