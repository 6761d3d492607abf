package scene

import (
	"math"

	"github.com/litescript/ls-cosmos/internal/astro"
	"github.com/litescript/ls-cosmos/internal/catalog"
)

// Solar-system sizes in pixels before the orbit zoom factor is applied.
const (
	didacticSunRadius   = 10.5
	transitionSunRadius = 12.5

	didacticPlanetDiameter = 8
	minBlendDiameter       = 3
	minRealisticDiameter   = 2
)

// progress is the didactic-to-realistic blend weight for levels in
// [-10, 0]: 0 at -10, 1 at 0.
func progress(level float64) float64 {
	p := (level + 10) / 10
	return math.Min(math.Max(p, 0), 1)
}

// realisticSunRadius is the Sun radius with distances scaled so the
// outermost planet's mean distance reaches the drawable extent.
func realisticSunRadius() float64 {
	scale := extent / catalog.OutermostPlanet().DistanceAU
	return astro.KmToAU(catalog.SunDiameterKm()) * scale / 2
}

// sunRadius is continuous at -10 and 0 and never decreases with level.
func sunRadius(level float64) float64 {
	switch {
	case level <= -10:
		return didacticSunRadius
	case level <= 0:
		return didacticSunRadius + progress(level)*(transitionSunRadius-didacticSunRadius)
	default:
		return math.Max(realisticSunRadius()*(1+math.Pow(level, 1.5)*0.1), transitionSunRadius)
	}
}

// planetDiameter blends a fixed didactic size into a size proportional to
// the Sun. sun is the unscaled Sun radius at level.
func planetDiameter(p catalog.Planet, level, sun float64) float64 {
	realistic := p.DiameterKm / catalog.SunDiameterKm() * sun * 2
	switch {
	case level <= -10:
		return didacticPlanetDiameter
	case level <= 0:
		w := progress(level)
		return didacticPlanetDiameter*(1-w) + math.Max(realistic, minBlendDiameter)*w
	default:
		return math.Max(realistic, minRealisticDiameter)
	}
}

// orbitRadius blends equally spaced orbits into orbits proportional to the
// true mean distance. sun is the unscaled Sun radius at level.
func orbitRadius(p catalog.Planet, level, sun float64) float64 {
	room := extent - sun
	realistic := sun + p.DistanceAU*room/catalog.OutermostPlanet().DistanceAU
	if level > 0 {
		return realistic
	}
	didactic := sun + float64(p.OrbitIndex)*room/catalog.OrbitCount
	w := progress(level)
	return didactic*(1-w) + realistic*w
}
