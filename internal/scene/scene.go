// Package scene turns a zoom level, a time and a pan offset into the 2D
// geometry of one of three scales: the solar system, the stellar
// neighbourhood and the Local Group.
//
// Every call rebuilds the scene from the static catalog; nothing is cached
// between calls. Field names on the wire are German, matching the rendering
// clients.
package scene

import (
	"github.com/litescript/ls-cosmos/internal/catalog"
	"github.com/litescript/ls-cosmos/internal/zoom"
)

// Canvas geometry in pixels.
const (
	CanvasSize = 600
	Center     = CanvasSize / 2
	Margin     = 40

	// extent is the drawable radius between the center and the border.
	extent = Center - Margin
)

// Request holds the inputs of one scene computation.
type Request struct {
	Timestamp string  // Observation time, see ParseTimestamp; empty means now
	ZoomLevel float64 // Continuous zoom parameter
	OffsetX   float64 // Pan offset in pixels
	OffsetY   float64
	Selected  string // Name of the selected body, if any
}

// DefaultZoomLevel is the zoom level used when a request omits it.
const DefaultZoomLevel = -10

// NewRequest returns a request with every field at its default.
func NewRequest() Request {
	return Request{ZoomLevel: DefaultZoomLevel}
}

// Scene is the result of a computation. It is one of *SolarSystemScene,
// *LocalStarsScene or *LocalGroupScene.
type Scene interface {
	Regime() zoom.Regime

	// check reports non-finite output values.
	check() error
}

// Marker is a fixed body drawn at the pan center: the Sun, or the Milky Way
// in the Local Group view.
type Marker struct {
	Name     string  `json:"name"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Radius   float64 `json:"radius"`
	Color    string  `json:"farbe,omitempty"`
	Selected bool    `json:"selected"`
}

// PlanetProjection is a planet placed on its orbit.
type PlanetProjection struct {
	Name        string  `json:"name"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	PointRadius float64 `json:"point_radius"`
	Color       string  `json:"farbe"`
	OrbitRadius float64 `json:"orbit_radius"`
	HelioLonRad float64 `json:"helio_lon_rad"`
	Selected    bool    `json:"selected"`
}

// Orbit is a ring drawn around the Sun.
type Orbit struct {
	Name   string  `json:"name"`
	Radius float64 `json:"radius"`
}

// ZodiacRing is the ring of zodiac signs drawn outside the outermost orbit.
type ZodiacRing struct {
	Radius float64              `json:"radius"`
	Signs  []catalog.ZodiacSign `json:"zeichen"`
	Show   bool                 `json:"show"`
}

// Status carries display-only metadata of a solar-system scene.
type Status struct {
	ZoomLevel     float64 `json:"zoom_level"`
	Mode          string  `json:"modus_anzeige"`
	Timestamp     string  `json:"datum_uhrzeit_str"`
	SunRadiusInfo string  `json:"sonnen_radius_info"`
	ZoomFactor    float64 `json:"zoom_faktor"`
	Selected      *string `json:"selected_planet"` // null when nothing is selected
}

// SolarSystemScene is the top-down view of the Sun and planets.
type SolarSystemScene struct {
	Ebene        zoom.Regime        `json:"ebene"`
	Sun          Marker             `json:"sonne"`
	Planets      []PlanetProjection `json:"planeten"`
	Orbits       []Orbit            `json:"umlaufbahnen"`
	Zodiac       ZodiacRing         `json:"zodiak"`
	SelectedInfo *catalog.Info      `json:"selected_planet_info"`
	Status       Status             `json:"status"`
}

// Regime implements Scene.
func (s *SolarSystemScene) Regime() zoom.Regime { return zoom.SolarSystem }

// StarProjection is a catalog star placed around the Sun.
type StarProjection struct {
	Name          string  `json:"name"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Radius        float64 `json:"radius"`
	Color         string  `json:"farbe"`
	DistanceLY    float64 `json:"entfernung_lj"`
	MassSolar     float64 `json:"masse_sonne"`
	SpectralClass string  `json:"spektralklasse"`
	HasPlanets    bool    `json:"planetensystem"`
	Selected      bool    `json:"selected"`
}

// ZoomInfo describes the distance tier of a stellar-neighbourhood scene.
type ZoomInfo struct {
	MaxDistanceLY float64 `json:"max_entfernung"`
	RelativeLevel float64 `json:"relative_level"`
	StarCount     int     `json:"anzahl_sterne"`
}

// LocalStarsScene is the stellar neighbourhood around the Sun.
type LocalStarsScene struct {
	Ebene      zoom.Regime         `json:"ebene"`
	Stars      []StarProjection    `json:"sterne"`
	Sun        Marker              `json:"sonne"`
	SpiralArms []catalog.SpiralArm `json:"spiralarme"`
	ZoomInfo   ZoomInfo            `json:"zoom_info"`
}

// Regime implements Scene.
func (s *LocalStarsScene) Regime() zoom.Regime { return zoom.LocalStars }

// GalaxyProjection is a Local Group galaxy placed around the Milky Way.
type GalaxyProjection struct {
	Name       string  `json:"name"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Radius     float64 `json:"radius"`
	DistanceLY float64 `json:"entfernung_lj"`
	DiameterLY float64 `json:"durchmesser_lj"`
	Stars      int64   `json:"sterne_anzahl"`
	Selected   bool    `json:"selected"`
}

// LocalGroupScene is the view of the Milky Way and its neighbour galaxies.
type LocalGroupScene struct {
	Ebene    zoom.Regime        `json:"ebene"`
	Galaxies []GalaxyProjection `json:"galaxien"`
	MilkyWay Marker             `json:"milchstrasse"`
}

// Regime implements Scene.
func (s *LocalGroupScene) Regime() zoom.Regime { return zoom.LocalGroup }

// Body is a drawable point of any scene.
type Body struct {
	Name     string
	X        float64
	Y        float64
	Radius   float64
	Color    string
	Selected bool
}

// Bodies flattens a scene into its drawable points, center marker first.
func Bodies(s Scene) []Body {
	switch s := s.(type) {
	case *SolarSystemScene:
		out := []Body{markerBody(s.Sun)}
		for _, p := range s.Planets {
			out = append(out, Body{Name: p.Name, X: p.X, Y: p.Y, Radius: p.PointRadius, Color: p.Color, Selected: p.Selected})
		}
		return out
	case *LocalStarsScene:
		out := []Body{markerBody(s.Sun)}
		for _, st := range s.Stars {
			out = append(out, Body{Name: st.Name, X: st.X, Y: st.Y, Radius: st.Radius, Color: st.Color, Selected: st.Selected})
		}
		return out
	case *LocalGroupScene:
		out := []Body{markerBody(s.MilkyWay)}
		for _, g := range s.Galaxies {
			out = append(out, Body{Name: g.Name, X: g.X, Y: g.Y, Radius: g.Radius, Selected: g.Selected})
		}
		return out
	default:
		return nil
	}
}

func markerBody(m Marker) Body {
	return Body{Name: m.Name, X: m.X, Y: m.Y, Radius: m.Radius, Color: m.Color, Selected: m.Selected}
}
