package catalog

import "github.com/litescript/ls-cosmos/internal/ephem"

const sunDiameterKm = 1392000

// planets is ordered by distance; OrbitIndex follows that order.
var planets = []Planet{
	{Name: "Merkur", Body: ephem.Mercury, DiameterKm: 4880, DistanceAU: 0.387, Color: "grey", OrbitIndex: 1},
	{Name: "Venus", Body: ephem.Venus, DiameterKm: 12104, DistanceAU: 0.723, Color: "orange", OrbitIndex: 2},
	{Name: EarthName, Body: ephem.Earth, DiameterKm: 12756, DistanceAU: 1.000, Color: "green", OrbitIndex: 3},
	{Name: "Mars", Body: ephem.Mars, DiameterKm: 6779, DistanceAU: 1.524, Color: "red", OrbitIndex: 4},
	{Name: "Jupiter", Body: ephem.Jupiter, DiameterKm: 142984, DistanceAU: 5.204, Color: "brown", OrbitIndex: 5},
	{Name: "Saturn", Body: ephem.Saturn, DiameterKm: 120536, DistanceAU: 9.582, Color: "tan", OrbitIndex: 6},
	{Name: "Uranus", Body: ephem.Uranus, DiameterKm: 51118, DistanceAU: 19.201, Color: "lightblue", OrbitIndex: 7, Outer: true},
	{Name: "Neptun", Body: ephem.Neptune, DiameterKm: 49528, DistanceAU: 30.047, Color: "blue", OrbitIndex: 8, Outer: true},
	{Name: "Pluto", Body: ephem.Pluto, DiameterKm: 2377, DistanceAU: 39.482, Color: "purple", OrbitIndex: 9, Outer: true},
}

var bodyInfo = map[string]Info{
	SunName: {
		DiameterKm:       1392000,
		Planets:          8,
		Surface:          "Plasma",
		Core:             "Wasserstoff-Helium-Fusion (15 Mio°C)",
		Atmosphere:       "Korona (1-3 Mio°C), Chromosphäre (6.000-50.000°C), Photosphäre (5.500°C)",
		Temperature:      "5.500°C (Oberfläche), 15 Mio°C (Kern)",
		TemperatureNotes: "Sonnenflecken: 3.500°C, Umgebung: 5.500°C, Kern: 15 Mio°C",
		Elements:         "Wasserstoff (73%), Helium (25%), andere (2%)",
		Rotation:         "25-35 Tage (differentielle Rotation)",
		Features:         "Sonnenfleckenzyklus: 11 Jahre, Koronale Massenauswürfe",
	},
	"Merkur": {
		DiameterKm:       4880,
		DistanceAU:       0.387,
		Surface:          "Felsig mit Kratern",
		Core:             "Eisen (75% des Radius)",
		Atmosphere:       "Exosphäre mit Spuren von Sauerstoff, Natrium, Wasserstoff",
		Temperature:      "-173°C bis 427°C",
		TemperatureNotes: "Tagesseite: bis 427°C, Nachtseite: bis -173°C",
		Elements:         "Eisen (70%), Sauerstoff, Silizium, Magnesium",
		Rotation:         "58,6 Erdentage",
		Features:         "Größte Temperaturschwankungen, keine Atmosphäre",
	},
	"Venus": {
		DiameterKm:       12104,
		DistanceAU:       0.723,
		Surface:          "Vulkanisches Gestein mit Bergen und Tälern",
		Core:             "Eisen-Nickel-Kern",
		Atmosphere:       "Dichte CO₂-Atmosphäre (96.5%) mit Schwefelsäurewolken",
		Temperature:      "462°C konstant",
		TemperatureNotes: "Oberfläche: 462°C, gleichmäßig durch Treibhauseffekt",
		Elements:         "Kohlendioxid (96.5%), Stickstoff (3.5%)",
		Rotation:         "243 Erdentage (rückläufig)",
		Features:         "Extremer Treibhauseffekt, längster Tag im Sonnensystem",
	},
	EarthName: {
		DiameterKm:       12756,
		DistanceAU:       1.000,
		Moons:            1,
		Surface:          "Wasser (71%) und Land (29%)",
		Core:             "Eisen-Nickel-Kern (bis zu 6.000°C)",
		Atmosphere:       "Stickstoff (78%), Sauerstoff (21%), Argon (0.9%)",
		Temperature:      "Durchschnittlich 15°C",
		TemperatureNotes: "-89°C bis +58°C (Extreme), Durchschnitt: 15°C",
		Elements:         "Eisen (32%), Sauerstoff (30%), Silizium (15%), Magnesium (14%)",
		Rotation:         "23h 56m 4s",
		Features:         "Einziger bekannter Planet mit Leben, Plattentektonik",
	},
	"Mars": {
		DiameterKm:       6779,
		DistanceAU:       1.524,
		Moons:            2,
		Surface:          "Rötlicher Sand und Felsen",
		Core:             "Eisen mit Schwefel",
		Atmosphere:       "Dünne CO₂-Atmosphäre (95%)",
		Temperature:      "-125°C bis 20°C",
		TemperatureNotes: "Durchschnitt: -63°C, Pole: bis -125°C, Äquator: bis 20°C",
		Elements:         "Eisenoxid (rostiger Sand), Silikate",
		Rotation:         "24h 37m 22s",
		Features:         "Größter Vulkan (Olympus Mons), tiefste Schluchten",
	},
	"Jupiter": {
		DiameterKm:       142984,
		DistanceAU:       5.204,
		Moons:            95,
		Surface:          "Gasplanet ohne feste Oberfläche",
		Core:             "Felsiger Kern umgeben metallischer Wasserstoff",
		Atmosphere:       "Wasserstoff (90%), Helium (10%) mit Ammoniakwolken",
		Temperature:      "-108°C (Wolkenoberkante)",
		TemperatureNotes: "Wolken: -108°C, Kern: bis 24.000°C",
		Elements:         "Wasserstoff (90%), Helium (10%)",
		Rotation:         "9h 55m 30s",
		Features:         "Großer Roter Fleck, stärkstes Magnetfeld",
	},
	"Saturn": {
		DiameterKm:       120536,
		DistanceAU:       9.582,
		Moons:            146,
		Surface:          "Gasplanet ohne feste Oberfläche",
		Core:             "Felsiger Kern mit Eis",
		Atmosphere:       "Wasserstoff (96%), Helium (3%)",
		Temperature:      "-139°C (Wolkenoberkante)",
		TemperatureNotes: "Wolken: -139°C, Kern: bis 11.700°C",
		Elements:         "Wasserstoff (96%), Helium (3%), Methan, Ammoniak",
		Rotation:         "10h 42m",
		Features:         "Ausgeprägtes Ringsystem, niedrigste Dichte",
	},
	"Uranus": {
		DiameterKm:       51118,
		DistanceAU:       19.201,
		Moons:            28,
		Surface:          "Eisplanet mit flüssigem Mantel",
		Core:             "Felsiger Kern",
		Atmosphere:       "Wasserstoff (83%), Helium (15%), Methan (2%)",
		Temperature:      "-197°C",
		TemperatureNotes: "Durchschnitt: -197°C, Kern: bis 5.000°C",
		Elements:         "Wasserstoff, Helium, Methan, Wasser, Ammoniak",
		Rotation:         "17h 14m (seitliche Achse)",
		Features:         "Rotationsachse liegt fast in der Bahnebene",
	},
	"Neptun": {
		DiameterKm:       49528,
		DistanceAU:       30.047,
		Moons:            16,
		Surface:          "Eisplanet mit flüssigem Mantel",
		Core:             "Felsiger Kern",
		Atmosphere:       "Wasserstoff (80%), Helium (19%), Methan (1%)",
		Temperature:      "-201°C",
		TemperatureNotes: "Durchschnitt: -201°C, Kern: bis 5.000°C",
		Elements:         "Wasserstoff, Helium, Methan, Wasser, Ammoniak",
		Rotation:         "16h 6m",
		Features:         "Stärkste Winde (2.100 km/h), Großer Dunkler Fleck",
	},
	"Pluto": {
		DiameterKm:       2377,
		DistanceAU:       39.482,
		Moons:            5,
		Surface:          "Eis mit Stickstoff, Methan und Kohlenmonoxid",
		Core:             "Felsiger Kern",
		Atmosphere:       "Dünne Atmosphäre aus Stickstoff, Methan, Kohlenmonoxid",
		Temperature:      "-229°C bis -223°C",
		TemperatureNotes: "Durchschnitt: -229°C, je nach Sonnennähe",
		Elements:         "Stickstoffeis, Methaneis, Wassereis, Gestein",
		Rotation:         "6 Tage 9h 17m",
		Features:         "Exzentrische Bahn, Zwergplanet-Status",
	},
}

var stars = []Star{
	// Nearest neighbours (within 10 ly)
	{"Proxima Centauri", 4.24, 0.12, "M5.5Ve", true},
	{"Alpha Centauri A", 4.37, 1.10, "G2V", true},
	{"Alpha Centauri B", 4.37, 0.91, "K1V", true},
	{"Barnards Pfeilstern", 5.96, 0.16, "M4Ve", true},
	{"Luhman 16", 6.50, 0.04, "L7.5", false},
	{"WISE 0855-0714", 7.43, 0.01, "Y2", false},
	{"Wolf 359", 7.86, 0.09, "M6Ve", false},
	{"Lalande 21185", 8.31, 0.39, "M2V", true},
	{"Sirius A", 8.60, 2.02, "A1V", true},
	{"Sirius B", 8.60, 0.98, "DA2", false},

	// Zodiac stars
	{"Regulus", 79.3, 3.5, "B7V", false},
	{"Aldebaran", 65.3, 1.5, "K5III", false},
	{"Spica", 250, 11.4, "B1III", false},
	{"Antares", 550, 12.4, "M1I", false},
	{"Vega", 25.0, 2.1, "A0V", true},
	{"Altair", 16.7, 1.8, "A7V", false},

	// Other prominent stars
	{"Arcturus", 36.7, 1.1, "K1.5III", false},
	{"Capella", 42.9, 2.6, "G3III", false},
	{"Rigel", 860, 21, "B8Ia", false},
	{"Betelgeuse", 640, 11.6, "M1I", false},
}

var spiralArms = []SpiralArm{
	{"Scutum-Centaurus-Arm", 30000, 2000},
	{"Perseus-Arm", 40000, 2000},
	{"Sagittarius-Arm", 25000, 2000},
	{"Orion-Arm (Lokal)", 26000, 2000},
	{"Norma-Arm", 35000, 2000},
}

var localGroup = []Galaxy{
	{"Andromeda-Galaxie", 2537000, 152000, 1000000000000},
	{"Dreiecksgalaxie", 2730000, 60000, 40000000000},
	{"Große Magellansche Wolke", 163000, 14000, 30000000000},
	{"Kleine Magellansche Wolke", 200000, 7000, 7000000000},
	{"Messier 32", 2560000, 6500, 3000000000},
	{"Messier 110", 2680000, 15000, 10000000000},
	{"NGC 147", 2360000, 11000, 10000000000},
	{"NGC 185", 2010000, 10000, 8000000000},
	{"IC 10", 2200000, 5000, 20000000000},
	{"Leo I", 820000, 2000, 33000000},
}

var zodiac = []ZodiacSign{
	{"Widder", 0}, {"Stier", 30}, {"Zwillinge", 60}, {"Krebs", 90},
	{"Löwe", 120}, {"Jungfrau", 150}, {"Waage", 180}, {"Skorpion", 210},
	{"Schütze", 240}, {"Steinbock", 270}, {"Wassermann", 300}, {"Fische", 330},
}
