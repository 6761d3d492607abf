package ephem

import (
	"context"
	"time"
)

// FallbackOracle asks Primary first and Secondary when Primary fails.
type FallbackOracle struct {
	Primary   Oracle
	Secondary Oracle
}

// NewFallbackOracle chains two oracles.
func NewFallbackOracle(primary, secondary Oracle) *FallbackOracle {
	return &FallbackOracle{Primary: primary, Secondary: secondary}
}

// Name implements Oracle.
func (o *FallbackOracle) Name() string {
	return o.Primary.Name() + "+" + o.Secondary.Name()
}

// HeliocentricLongitude implements Oracle.
func (o *FallbackOracle) HeliocentricLongitude(ctx context.Context, body Body, t time.Time) (float64, error) {
	lon, err := o.Primary.HeliocentricLongitude(ctx, body, t)
	if err == nil {
		return lon, nil
	}
	return o.Secondary.HeliocentricLongitude(ctx, body, t)
}

// GeocentricSunLongitude implements Oracle.
func (o *FallbackOracle) GeocentricSunLongitude(ctx context.Context, t time.Time) (float64, error) {
	lon, err := o.Primary.GeocentricSunLongitude(ctx, t)
	if err == nil {
		return lon, nil
	}
	return o.Secondary.GeocentricSunLongitude(ctx, t)
}

// InvalidateCache drops the caches of both oracles.
func (o *FallbackOracle) InvalidateCache() {
	InvalidateCache(o.Primary)
	InvalidateCache(o.Secondary)
}
