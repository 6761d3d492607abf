package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litescript/ls-cosmos/internal/astro"
	"github.com/litescript/ls-cosmos/internal/catalog"
	"github.com/litescript/ls-cosmos/internal/zoom"
)

func TestLocalGroupCountFixed(t *testing.T) {
	e := newTestEngine(t, newFakeOracle())
	for _, level := range []float64{-20.5, -21, -25, -30, -60} {
		req := NewRequest()
		req.ZoomLevel = level
		s := compute(t, e, req).(*LocalGroupScene)
		assert.Len(t, s.Galaxies, 10, "zoom %v", level)
	}
}

func TestLocalGroupAngularSpacing(t *testing.T) {
	e := newTestEngine(t, newFakeOracle())
	req := NewRequest()
	req.ZoomLevel = -25

	s := compute(t, e, req).(*LocalGroupScene)
	require.Len(t, s.Galaxies, 10)
	assert.Equal(t, zoom.LocalGroup, s.Ebene)

	for i, g := range s.Galaxies {
		a := astro.NormalizeRadians(math.Atan2(g.Y-s.MilkyWay.Y, g.X-s.MilkyWay.X))
		assert.InDelta(t, float64(i)*2*math.Pi/10, a, 1e-6, g.Name)
	}
}

func TestLocalGroupGeometry(t *testing.T) {
	req := NewRequest()
	req.OffsetX = -50
	req.Selected = catalog.MilkyWayName
	s := localGroup(zoom.Level{Regime: zoom.LocalGroup, Relative: 4}, req)

	andromeda := s.Galaxies[0]
	r := 2537000.0 / localGroupBaseLY * (extent / float64(localGroupBaseLY)) * math.Pow(1.1, 8)
	assert.InDelta(t, Center-50+r, andromeda.X, 1e-9)
	assert.InDelta(t, Center, andromeda.Y, 1e-9)
	assert.InDelta(t, math.Log(152000)*2, andromeda.Radius, 1e-9)
	assert.Equal(t, int64(1_000_000_000_000), andromeda.Stars)

	for _, g := range s.Galaxies {
		assert.GreaterOrEqual(t, g.Radius, float64(minGalaxySize))
		assert.False(t, g.Selected)
	}

	assert.Equal(t, catalog.MilkyWayName, s.MilkyWay.Name)
	assert.Equal(t, float64(milkyWayRadius), s.MilkyWay.Radius)
	assert.True(t, s.MilkyWay.Selected)
	assert.Equal(t, float64(Center-50), s.MilkyWay.X)
}
