package catalog

import (
	"encoding/json"
	"testing"

	"github.com/litescript/ls-cosmos/internal/ephem"
)

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("built-in tables failed validation: %v", err)
	}
}

func TestPlanetsOrder(t *testing.T) {
	ps := Planets()
	if len(ps) != OrbitCount {
		t.Fatalf("expected %d planets, got %d", OrbitCount, len(ps))
	}
	if ps[0].Name != "Merkur" || ps[len(ps)-1].Name != "Pluto" {
		t.Errorf("unexpected order: first %q, last %q", ps[0].Name, ps[len(ps)-1].Name)
	}
	if OutermostPlanet().Name != "Pluto" {
		t.Errorf("OutermostPlanet() = %q", OutermostPlanet().Name)
	}

	outer := 0
	for _, p := range ps {
		if p.Outer {
			outer++
		}
	}
	if outer != 3 {
		t.Errorf("expected 3 outer planets, got %d", outer)
	}
}

func TestPlanetsReturnsCopy(t *testing.T) {
	ps := Planets()
	ps[0].Name = "changed"
	if Planets()[0].Name != "Merkur" {
		t.Error("mutating the returned slice changed the catalog")
	}
}

func TestEarthRecord(t *testing.T) {
	p := Planets()[2]
	if p.Name != EarthName || p.Body != ephem.Earth || p.OrbitIndex != 3 || p.Color != "green" {
		t.Errorf("unexpected Erde record: %+v", p)
	}
}

func TestInfoFor(t *testing.T) {
	tests := []struct {
		name  string
		moons int
		ok    bool
	}{
		{SunName, 0, true},
		{EarthName, 1, true},
		{"Saturn", 146, true},
		{"Sirius A", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			info, ok := InfoFor(tc.name)
			if ok != tc.ok {
				t.Fatalf("InfoFor(%q) ok = %v, want %v", tc.name, ok, tc.ok)
			}
			if info.Moons != tc.moons {
				t.Errorf("moons = %d, want %d", info.Moons, tc.moons)
			}
		})
	}
}

func TestCatalogSizes(t *testing.T) {
	if n := len(Stars()); n != 20 {
		t.Errorf("stars = %d, want 20", n)
	}
	if n := len(LocalGroup()); n != 10 {
		t.Errorf("galaxies = %d, want 10", n)
	}
	if n := len(SpiralArms()); n != 5 {
		t.Errorf("spiral arms = %d, want 5", n)
	}
	z := Zodiac()
	if len(z) != 12 {
		t.Fatalf("zodiac signs = %d, want 12", len(z))
	}
	for i, s := range z {
		if s.StartDeg != i*30 {
			t.Errorf("%s starts at %d, want %d", s.Name, s.StartDeg, i*30)
		}
	}
}

func TestStarColor(t *testing.T) {
	tests := []struct {
		class string
		want  string
	}{
		{"O5V", "#9bb0ff"},
		{"B7V", "#aabfff"},
		{"A1V", "#cad7ff"},
		{"F5IV", "#f8f7ff"},
		{"G2V", "#fff4ea"},
		{"K1.5III", "#ffd2a1"},
		{"M5.5Ve", "#ffcc6f"},
		{"DA2", DefaultStarColor},
		{"L7.5", DefaultStarColor},
		{"", DefaultStarColor},
	}

	for _, tc := range tests {
		t.Run(tc.class, func(t *testing.T) {
			if got := StarColor(tc.class); got != tc.want {
				t.Errorf("StarColor(%q) = %q, want %q", tc.class, got, tc.want)
			}
		})
	}
}

func TestZodiacSignJSON(t *testing.T) {
	b, err := json.Marshal(Zodiac()[1])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `["Stier",30]` {
		t.Errorf("got %s", b)
	}
}
