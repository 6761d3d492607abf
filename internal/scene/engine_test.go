package scene

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litescript/ls-cosmos/internal/astro"
	"github.com/litescript/ls-cosmos/internal/catalog"
	"github.com/litescript/ls-cosmos/internal/ephem"
	"github.com/litescript/ls-cosmos/internal/zoom"
)

func newTestEngine(t *testing.T, oracle ephem.Oracle) *Engine {
	t.Helper()
	e, err := NewEngine(oracle, WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	return e
}

func compute(t *testing.T, e *Engine, req Request) Scene {
	t.Helper()
	s, err := e.Compute(context.Background(), req)
	require.NoError(t, err)
	return s
}

func TestNewEngineRejectsNilOracle(t *testing.T) {
	_, err := NewEngine(nil)
	assert.ErrorIs(t, err, ErrComputation)
}

func TestComputeDispatchesByRegime(t *testing.T) {
	e := newTestEngine(t, newFakeOracle())

	tests := []struct {
		level float64
		want  zoom.Regime
	}{
		{20, zoom.SolarSystem},
		{-10, zoom.SolarSystem},
		{-10.0001, zoom.LocalStars},
		{-20, zoom.LocalStars},
		{-20.0001, zoom.LocalGroup},
		{-30, zoom.LocalGroup},
	}
	for _, tc := range tests {
		req := NewRequest()
		req.ZoomLevel = tc.level
		s := compute(t, e, req)
		assert.Equal(t, tc.want, s.Regime(), "zoom %v", tc.level)

		switch tc.want {
		case zoom.SolarSystem:
			assert.IsType(t, &SolarSystemScene{}, s)
		case zoom.LocalStars:
			assert.IsType(t, &LocalStarsScene{}, s)
		case zoom.LocalGroup:
			assert.IsType(t, &LocalGroupScene{}, s)
		}
	}
}

func TestSolarSystemDidactic(t *testing.T) {
	e := newTestEngine(t, newFakeOracle())
	req := NewRequest()
	req.Timestamp = "2024/06/21 12:00:00"

	s := compute(t, e, req).(*SolarSystemScene)

	assert.Equal(t, zoom.SolarSystem, s.Ebene)
	assert.InDelta(t, 10.5, s.Sun.Radius, 1e-9)
	assert.Equal(t, "Sonne: 21.0px", s.Status.SunRadiusInfo)
	assert.Equal(t, zoom.ModeDidactic, s.Status.Mode)
	assert.Equal(t, "2024/06/21 12:00:00", s.Status.Timestamp)
	assert.True(t, s.Zodiac.Show)
	assert.Len(t, s.Zodiac.Signs, 12)

	require.Len(t, s.Orbits, catalog.OrbitCount)
	step := (extent - 10.5) / catalog.OrbitCount
	for i, o := range s.Orbits {
		assert.InDelta(t, 10.5+float64(i+1)*step, o.Radius, 1e-9, o.Name)
	}
	assert.Equal(t, "Merkur", s.Orbits[0].Name)
	assert.Equal(t, "Pluto", s.Orbits[8].Name)
	assert.InDelta(t, s.Orbits[8].Radius+Margin, s.Zodiac.Radius, 1e-9)

	require.Len(t, s.Planets, catalog.OrbitCount)
	for _, p := range s.Planets {
		assert.InDelta(t, 4, p.PointRadius, 1e-9, p.Name)
	}
}

func TestSolarSystemProjection(t *testing.T) {
	oracle := newFakeOracle()
	oracle.lon[ephem.Mars] = math.Pi / 2
	oracle.lon[ephem.Jupiter] = 0
	e := newTestEngine(t, oracle)

	req := NewRequest()
	req.OffsetX, req.OffsetY = 25, -40
	s := compute(t, e, req).(*SolarSystemScene)

	assert.Equal(t, float64(Center+25), s.Sun.X)
	assert.Equal(t, float64(Center-40), s.Sun.Y)

	byName := make(map[string]PlanetProjection)
	for _, p := range s.Planets {
		byName[p.Name] = p
	}

	mars := byName["Mars"]
	assert.InDelta(t, s.Sun.X, mars.X, 1e-9)
	assert.InDelta(t, s.Sun.Y-mars.OrbitRadius, mars.Y, 1e-9, "screen y grows downward")

	jupiter := byName["Jupiter"]
	assert.InDelta(t, s.Sun.X+jupiter.OrbitRadius, jupiter.X, 1e-9)
	assert.InDelta(t, s.Sun.Y, jupiter.Y, 1e-9)
}

func TestEarthFromGeocentricSun(t *testing.T) {
	oracle := newFakeOracle()
	oracle.sunLon = 0.25
	oracle.lon[ephem.Earth] = 5 // must not be used
	e := newTestEngine(t, oracle)

	s := compute(t, e, NewRequest()).(*SolarSystemScene)

	var earth *PlanetProjection
	for i := range s.Planets {
		if s.Planets[i].Name == catalog.EarthName {
			earth = &s.Planets[i]
		}
	}
	require.NotNil(t, earth)
	assert.InDelta(t, 0.25+math.Pi, earth.HelioLonRad, 1e-12)
	assert.Equal(t, "green", earth.Color)
}

func TestEarthLongitudeWraps(t *testing.T) {
	oracle := newFakeOracle()
	oracle.sunLon = 4
	e := newTestEngine(t, oracle)

	lon, err := e.longitude(context.Background(), mustPlanet(t, catalog.EarthName), fixedNow)
	require.NoError(t, err)
	assert.InDelta(t, astro.NormalizeRadians(4+math.Pi), lon, 1e-12)
	assert.Less(t, lon, 2*math.Pi)
}

func mustPlanet(t *testing.T, name string) catalog.Planet {
	t.Helper()
	for _, p := range catalog.Planets() {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("no planet %q", name)
	return catalog.Planet{}
}

func TestOracleFailureOmitsBody(t *testing.T) {
	oracle := newFakeOracle()
	oracle.fail[ephem.Venus] = true
	oracle.sunErr = errors.New("no sun today")
	e := newTestEngine(t, oracle)

	s := compute(t, e, NewRequest()).(*SolarSystemScene)

	assert.Len(t, s.Orbits, catalog.OrbitCount, "orbits do not depend on the oracle")
	assert.Len(t, s.Planets, catalog.OrbitCount-2)
	for _, p := range s.Planets {
		assert.NotEqual(t, "Venus", p.Name)
		assert.NotEqual(t, catalog.EarthName, p.Name)
	}
}

func TestOuterPlanetGate(t *testing.T) {
	e := newTestEngine(t, newFakeOracle())

	tests := []struct {
		level float64
		want  int
	}{
		{0, 9},
		{15, 9},
		{15.5, 6},
		{20, 6},
	}
	for _, tc := range tests {
		req := NewRequest()
		req.ZoomLevel = tc.level
		s := compute(t, e, req).(*SolarSystemScene)
		assert.Len(t, s.Planets, tc.want, "planets at %v", tc.level)
		assert.Len(t, s.Orbits, tc.want, "orbits at %v", tc.level)

		last := s.Orbits[len(s.Orbits)-1]
		assert.InDelta(t, last.Radius+Margin, s.Zodiac.Radius, 1e-9)
		if tc.want == 6 {
			assert.Equal(t, "Saturn", last.Name)
		}
	}
}

func TestZodiacVisibility(t *testing.T) {
	e := newTestEngine(t, newFakeOracle())
	for level, want := range map[float64]bool{-10: true, 3: true, 3.5: false, 12: false} {
		req := NewRequest()
		req.ZoomLevel = level
		s := compute(t, e, req).(*SolarSystemScene)
		assert.Equal(t, want, s.Zodiac.Show, "zoom %v", level)
	}
}

func TestMaxRealism(t *testing.T) {
	e := newTestEngine(t, newFakeOracle())

	req := NewRequest()
	req.ZoomLevel = 10
	at10 := compute(t, e, req).(*SolarSystemScene)
	req.ZoomLevel = 20
	at20 := compute(t, e, req).(*SolarSystemScene)

	assert.Equal(t, zoom.ModeRealistic, at10.Status.Mode)
	assert.Equal(t, zoom.ModeMaxRealism, at20.Status.Mode)
	assert.Greater(t, at20.Sun.Radius, at10.Sun.Radius)
	assert.InDelta(t, transitionSunRadius*math.Pow(1.5, 20), at20.Sun.Radius, 1e-6)
	assert.InDelta(t, math.Pow(1.5, 20), at20.Status.ZoomFactor, 1e-6)
}

func TestMalformedTimestampUsesClock(t *testing.T) {
	e := newTestEngine(t, newFakeOracle())

	for _, ts := range []string{"", "gestern", "2024/13/45 99:99:99"} {
		req := NewRequest()
		req.Timestamp = ts
		s, err := e.Compute(context.Background(), req)
		require.NoError(t, err, ts)
		assert.Equal(t, fixedNow.Format(TimestampLayout), s.(*SolarSystemScene).Status.Timestamp, ts)
	}
}

func TestSelection(t *testing.T) {
	e := newTestEngine(t, newFakeOracle())

	req := NewRequest()
	req.Selected = "Mars"
	s := compute(t, e, req).(*SolarSystemScene)
	require.NotNil(t, s.SelectedInfo)
	assert.Equal(t, 6779.0, s.SelectedInfo.DiameterKm)
	assert.False(t, s.Sun.Selected)
	for _, p := range s.Planets {
		assert.Equal(t, p.Name == "Mars", p.Selected, p.Name)
	}
	require.NotNil(t, s.Status.Selected)
	assert.Equal(t, "Mars", *s.Status.Selected)

	req.Selected = catalog.SunName
	s = compute(t, e, req).(*SolarSystemScene)
	assert.True(t, s.Sun.Selected)
	require.NotNil(t, s.SelectedInfo)

	req.Selected = "Vulkan"
	s = compute(t, e, req).(*SolarSystemScene)
	assert.Nil(t, s.SelectedInfo)
}

func TestNonFiniteZoomFails(t *testing.T) {
	e := newTestEngine(t, newFakeOracle())
	for _, level := range []float64{math.NaN(), math.Inf(1)} {
		req := NewRequest()
		req.ZoomLevel = level
		_, err := e.Compute(context.Background(), req)
		assert.ErrorIs(t, err, ErrComputation, "zoom %v", level)
	}
}

func TestComputeCanceled(t *testing.T) {
	e := newTestEngine(t, newFakeOracle())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Compute(ctx, NewRequest())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolarSystemJSON(t *testing.T) {
	e := newTestEngine(t, newFakeOracle())
	req := NewRequest()
	req.Selected = "Erde"

	b, err := json.Marshal(compute(t, e, req))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(b, &doc))

	assert.Equal(t, "sonnensystem", doc["ebene"])
	for _, key := range []string{"sonne", "planeten", "umlaufbahnen", "zodiak", "selected_planet_info", "status"} {
		assert.Contains(t, doc, key)
	}

	zodiak := doc["zodiak"].(map[string]any)
	signs := zodiak["zeichen"].([]any)
	assert.Equal(t, []any{"Widder", 0.0}, signs[0])

	planet := doc["planeten"].([]any)[0].(map[string]any)
	for _, key := range []string{"name", "x", "y", "point_radius", "farbe", "orbit_radius", "helio_lon_rad", "selected"} {
		assert.Contains(t, planet, key)
	}

	status := doc["status"].(map[string]any)
	assert.Equal(t, "DIDAKTISCH", status["modus_anzeige"])
	assert.Equal(t, "Erde", status["selected_planet"])
}

func TestSolarSystemJSONWithoutSelection(t *testing.T) {
	e := newTestEngine(t, newFakeOracle())

	b, err := json.Marshal(compute(t, e, NewRequest()))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(b, &doc))

	status := doc["status"].(map[string]any)
	require.Contains(t, status, "selected_planet")
	assert.Nil(t, status["selected_planet"])
	require.Contains(t, doc, "selected_planet_info")
	assert.Nil(t, doc["selected_planet_info"])
}

// cachingOracle counts cache invalidations.
type cachingOracle struct {
	*fakeOracle
	invalidated int
}

func (c *cachingOracle) InvalidateCache() { c.invalidated++ }

func TestEngineInvalidateCache(t *testing.T) {
	oracle := &cachingOracle{fakeOracle: newFakeOracle()}
	e := newTestEngine(t, oracle)
	e.InvalidateCache()
	assert.Equal(t, 1, oracle.invalidated)

	// oracles without a cache are left alone
	newTestEngine(t, newFakeOracle()).InvalidateCache()
}

func TestBodies(t *testing.T) {
	e := newTestEngine(t, newFakeOracle())

	s := compute(t, e, NewRequest())
	bodies := Bodies(s)
	require.Len(t, bodies, 1+catalog.OrbitCount)
	assert.Equal(t, catalog.SunName, bodies[0].Name)

	req := NewRequest()
	req.ZoomLevel = -25
	bodies = Bodies(compute(t, e, req))
	require.Len(t, bodies, 1+len(catalog.LocalGroup()))
	assert.Equal(t, catalog.MilkyWayName, bodies[0].Name)

	assert.Nil(t, Bodies(nil))
}
