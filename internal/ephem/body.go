package ephem

// Body identifies a solar-system body the oracles can be asked about.
type Body int

const (
	Mercury Body = iota
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
	Sun
)

// String returns the English body name.
func (b Body) String() string {
	switch b {
	case Mercury:
		return "Mercury"
	case Venus:
		return "Venus"
	case Earth:
		return "Earth"
	case Mars:
		return "Mars"
	case Jupiter:
		return "Jupiter"
	case Saturn:
		return "Saturn"
	case Uranus:
		return "Uranus"
	case Neptune:
		return "Neptune"
	case Pluto:
		return "Pluto"
	case Sun:
		return "Sun"
	default:
		return "unknown"
	}
}

// NAIFID returns the NAIF SPICE ID used by JPL Horizons for the body centre.
// Sourced from https://naif.jpl.nasa.gov/pub/naif/toolkit_docs/C/req/naif_ids.html
func (b Body) NAIFID() int {
	switch b {
	case Mercury:
		return 199
	case Venus:
		return 299
	case Earth:
		return 399
	case Mars:
		return 499
	case Jupiter:
		return 599
	case Saturn:
		return 699
	case Uranus:
		return 799
	case Neptune:
		return 899
	case Pluto:
		return 999
	case Sun:
		return 10
	default:
		return 0
	}
}

// Valid reports whether b is one of the enumerated bodies.
func (b Body) Valid() bool {
	return b >= Mercury && b <= Sun
}
