package ephem

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
	pe "github.com/soniakeys/meeus/v3/planetelements"
	"github.com/soniakeys/meeus/v3/pluto"
	"github.com/soniakeys/meeus/v3/solar"

	"github.com/litescript/ls-cosmos/internal/astro"
)

// Pluto's series (Meeus ch. 37) is only valid for 1885..2099.
var (
	plutoValidFrom = time.Date(1885, 1, 1, 0, 0, 0, 0, time.UTC)
	plutoValidTo   = time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)
)

// MeeusOracle computes longitudes locally from Meeus' Astronomical Algorithms:
// mean VSOP87 orbital elements for the major planets, the Pluto series, and
// the low-precision solar theory. Accuracy is a few arcminutes for the inner
// planets, plenty for a schematic top-down view.
type MeeusOracle struct{}

// NewMeeusOracle creates a local analytical oracle.
func NewMeeusOracle() *MeeusOracle {
	return &MeeusOracle{}
}

// Name implements Oracle.
func (o *MeeusOracle) Name() string {
	return "Meeus"
}

// HeliocentricLongitude implements Oracle.
func (o *MeeusOracle) HeliocentricLongitude(_ context.Context, body Body, t time.Time) (float64, error) {
	jde := julian.TimeToJD(t.UTC())

	if body == Pluto {
		if t.Before(plutoValidFrom) || !t.Before(plutoValidTo) {
			return 0, fmt.Errorf("%w: pluto series undefined for %s", ErrUnavailable, t.UTC().Format(time.RFC3339))
		}
		l, _, _ := pluto.Heliocentric(jde)
		return astro.NormalizeRadians(l.Rad()), nil
	}

	// planetelements has no node series for Earth; it sits opposite the Sun.
	if body == Earth {
		return astro.NormalizeRadians(trueSunLongitude(jde) + math.Pi), nil
	}

	p, ok := meeusPlanet(body)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownBody, body)
	}

	var el pe.Elements
	pe.Mean(p, jde, &el)

	return eclipticLongitude(el.Lon.Rad(), el.Peri.Rad(), el.Node.Rad(), el.Inc.Rad(), el.Ecc), nil
}

// GeocentricSunLongitude implements Oracle.
func (o *MeeusOracle) GeocentricSunLongitude(_ context.Context, t time.Time) (float64, error) {
	return astro.NormalizeRadians(trueSunLongitude(julian.TimeToJD(t.UTC()))), nil
}

func trueSunLongitude(jde float64) float64 {
	s, _ := solar.True(base.J2000Century(jde))
	return s.Rad()
}

func meeusPlanet(b Body) (int, bool) {
	switch b {
	case Mercury:
		return pe.Mercury, true
	case Venus:
		return pe.Venus, true
	case Mars:
		return pe.Mars, true
	case Jupiter:
		return pe.Jupiter, true
	case Saturn:
		return pe.Saturn, true
	case Uranus:
		return pe.Uranus, true
	case Neptune:
		return pe.Neptune, true
	default:
		return 0, false
	}
}

// eclipticLongitude turns mean elements into a heliocentric ecliptic
// longitude. All angles in radians: L mean longitude, peri longitude of
// perihelion, node longitude of ascending node, inc inclination.
func eclipticLongitude(L, peri, node, inc, ecc float64) float64 {
	M := astro.NormalizeRadians(L - peri)
	E := solveKepler(M, ecc)

	// True anomaly
	v := 2 * math.Atan2(math.Sqrt(1+ecc)*math.Sin(E/2), math.Sqrt(1-ecc)*math.Cos(E/2))

	// Argument of latitude, then rotate out of the orbital plane
	u := v + peri - node
	lon := node + math.Atan2(math.Sin(u)*math.Cos(inc), math.Cos(u))
	return astro.NormalizeRadians(lon)
}

// solveKepler solves E - e·sin(E) = M by Newton iteration.
func solveKepler(M, ecc float64) float64 {
	E := M
	if ecc > 0.8 {
		E = math.Pi
	}
	for i := 0; i < 50; i++ {
		d := (E - ecc*math.Sin(E) - M) / (1 - ecc*math.Cos(E))
		E -= d
		if math.Abs(d) < 1e-12 {
			break
		}
	}
	return E
}
