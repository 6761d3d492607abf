package scene

import (
	"context"
	"fmt"
	"time"

	"github.com/litescript/ls-cosmos/internal/ephem"
)

// fakeOracle answers with fixed longitudes. Bodies without an entry get
// 0.5 rad per body index.
type fakeOracle struct {
	lon    map[ephem.Body]float64
	sunLon float64
	fail   map[ephem.Body]bool
	sunErr error
}

func newFakeOracle() *fakeOracle {
	return &fakeOracle{
		lon:  make(map[ephem.Body]float64),
		fail: make(map[ephem.Body]bool),
	}
}

func (f *fakeOracle) Name() string { return "fake" }

func (f *fakeOracle) HeliocentricLongitude(_ context.Context, body ephem.Body, _ time.Time) (float64, error) {
	if f.fail[body] {
		return 0, fmt.Errorf("%w: %s", ephem.ErrUnavailable, body)
	}
	if lon, ok := f.lon[body]; ok {
		return lon, nil
	}
	return float64(body) * 0.5, nil
}

func (f *fakeOracle) GeocentricSunLongitude(_ context.Context, _ time.Time) (float64, error) {
	if f.sunErr != nil {
		return 0, f.sunErr
	}
	return f.sunLon, nil
}

var fixedNow = time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
