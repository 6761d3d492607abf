package ephem

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/litescript/ls-cosmos/internal/astro"
)

func vectorPayload(x, y, z string) string {
	result := "header\n$$SOE\n2460651.500000000 = A.D. 2024-Dec-05 00:00:00.0000 TDB \n" +
		" X =" + x + " Y =" + y + " Z =" + z + "\n$$EOE\ntrailer"
	b, _ := json.Marshal(map[string]any{
		"signature": map[string]string{"version": "1.2", "source": "NASA/JPL Horizons API"},
		"result":    result,
	})
	return string(b)
}

func TestParseVectorResponse(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    [3]float64
		wantErr bool
	}{
		{
			name: "labeled",
			body: vectorPayload(" 1.000000000000000E+00", " 0.000000000000000E+00", " 1.0E-02"),
			want: [3]float64{1, 0, 0.01},
		},
		{
			name: "unlabeled",
			body: `{"result":"$$SOE\n2460651.5 = A.D. 2024-Dec-05 00:00:00.0000 TDB\n  -2.5E+00  1.5E+00  0.0E+00\n$$EOE"}`,
			want: [3]float64{-2.5, 1.5, 0},
		},
		{
			name:    "missing markers",
			body:    `{"result":"no data"}`,
			wantErr: true,
		},
		{
			name:    "api error",
			body:    `{"error":"Unknown target"}`,
			wantErr: true,
		},
		{
			name:    "not json",
			body:    `<html>`,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := parseVectorResponse([]byte(tc.body))
			if tc.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if v.X != tc.want[0] || v.Y != tc.want[1] || v.Z != tc.want[2] {
				t.Errorf("got %+v, want %v", v, tc.want)
			}
		})
	}
}

func TestHorizonsOracle_HeliocentricLongitude(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		q := r.URL.Query()
		if q.Get("COMMAND") != "'499'" {
			t.Errorf("COMMAND = %q, want '499'", q.Get("COMMAND"))
		}
		if q.Get("CENTER") != "'@10'" {
			t.Errorf("CENTER = %q, want '@10'", q.Get("CENTER"))
		}
		if q.Get("REF_PLANE") != "ECLIPTIC" {
			t.Errorf("REF_PLANE = %q", q.Get("REF_PLANE"))
		}
		_, _ = w.Write([]byte(vectorPayload(" 0.0E+00", " 1.5E+00", " 0.0E+00")))
	}))
	defer srv.Close()

	o := NewHorizonsOracle(Options{HorizonsURL: srv.URL, Timeout: time.Second})
	ts := time.Date(2025, 3, 1, 12, 0, 30, 0, time.UTC)

	lon, err := o.HeliocentricLongitude(context.Background(), Mars, ts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(lon-math.Pi/2) > 1e-12 {
		t.Errorf("longitude = %v, want π/2", lon)
	}

	// Same minute is served from cache.
	if _, err := o.HeliocentricLongitude(context.Background(), Mars, ts.Add(10*time.Second)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hits.Load() != 1 {
		t.Errorf("expected 1 request, got %d", hits.Load())
	}

	o.InvalidateCache()
	if _, err := o.HeliocentricLongitude(context.Background(), Mars, ts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hits.Load() != 2 {
		t.Errorf("expected 2 requests after invalidation, got %d", hits.Load())
	}
}

func (o *HorizonsOracle) cacheLen() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.cache)
}

func TestHorizonsOracle_CacheEviction(t *testing.T) {
	t.Run("expired entries dropped on insert", func(t *testing.T) {
		o := NewHorizonsOracle(Options{CacheTTL: time.Minute})
		start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 100; i++ {
			o.store(vectorKey{target: 499, center: centerSun, minute: int64(i)}, astro.Vec3{X: 1}, start)
		}
		if got := o.cacheLen(); got != 100 {
			t.Fatalf("cacheLen = %d, want 100", got)
		}

		o.store(vectorKey{target: 499, center: centerSun, minute: 1000}, astro.Vec3{X: 1}, start.Add(2*time.Minute))
		if got := o.cacheLen(); got != 1 {
			t.Errorf("cacheLen after expiry = %d, want 1", got)
		}
	})

	t.Run("size capped with oldest evicted", func(t *testing.T) {
		o := NewHorizonsOracle(Options{CacheTTL: time.Hour})
		start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < maxCachedVectors+10; i++ {
			o.store(vectorKey{target: 499, center: centerSun, minute: int64(i)}, astro.Vec3{X: 1}, start.Add(time.Duration(i)*time.Millisecond))
		}
		if got := o.cacheLen(); got != maxCachedVectors {
			t.Errorf("cacheLen = %d, want %d", got, maxCachedVectors)
		}
		o.mu.RLock()
		_, first := o.cache[vectorKey{target: 499, center: centerSun, minute: 0}]
		_, last := o.cache[vectorKey{target: 499, center: centerSun, minute: int64(maxCachedVectors + 9)}]
		o.mu.RUnlock()
		if first {
			t.Error("oldest entry should have been evicted")
		}
		if !last {
			t.Error("newest entry missing")
		}
	})

	t.Run("playback across days stays bounded", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(vectorPayload(" 1.0E+00", " 0.0E+00", " 0.0E+00")))
		}))
		defer srv.Close()

		o := NewHorizonsOracle(Options{HorizonsURL: srv.URL, Timeout: time.Second, CacheTTL: time.Millisecond})
		ts := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 20; i++ {
			if _, err := o.HeliocentricLongitude(context.Background(), Mars, ts.AddDate(0, 0, i)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			time.Sleep(2 * time.Millisecond)
		}
		if got := o.cacheLen(); got > 1 {
			t.Errorf("cacheLen = %d, want at most 1 live entry", got)
		}
	})
}

func TestHorizonsOracle_GeocentricSun(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("COMMAND") != "'10'" || q.Get("CENTER") != "'500@399'" {
			t.Errorf("unexpected query %v", q)
		}
		_, _ = w.Write([]byte(vectorPayload(" -1.0E+00", " 0.0E+00", " 0.0E+00")))
	}))
	defer srv.Close()

	o := NewHorizonsOracle(Options{HorizonsURL: srv.URL})
	lon, err := o.GeocentricSunLongitude(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(lon-math.Pi) > 1e-12 {
		t.Errorf("longitude = %v, want π", lon)
	}
}

func TestHorizonsOracle_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	o := NewHorizonsOracle(Options{HorizonsURL: srv.URL})

	_, err := o.HeliocentricLongitude(context.Background(), Jupiter, time.Now())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}

	_, err = o.HeliocentricLongitude(context.Background(), Sun, time.Now())
	if !errors.Is(err, ErrUnknownBody) {
		t.Errorf("expected ErrUnknownBody, got %v", err)
	}
}

func TestFallbackOracle(t *testing.T) {
	failing := NewHorizonsOracle(Options{HorizonsURL: "http://127.0.0.1:1", Timeout: 100 * time.Millisecond})
	fb := NewFallbackOracle(failing, NewMeeusOracle())
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	got, err := fb.HeliocentricLongitude(context.Background(), Venus, ts)
	if err != nil {
		t.Fatalf("fallback should succeed, got %v", err)
	}
	want, _ := NewMeeusOracle().HeliocentricLongitude(context.Background(), Venus, ts)
	if got != want {
		t.Errorf("fallback = %v, want Meeus value %v", got, want)
	}

	if _, err := fb.GeocentricSunLongitude(context.Background(), ts); err != nil {
		t.Errorf("fallback sun: %v", err)
	}
}

func TestInvalidateCache(t *testing.T) {
	if InvalidateCache(NewMeeusOracle()) {
		t.Error("Meeus keeps no cache")
	}

	h := NewHorizonsOracle(Options{})
	h.store(vectorKey{target: 499, center: centerSun}, astro.Vec3{X: 1}, time.Now())
	if !InvalidateCache(NewFallbackOracle(h, NewMeeusOracle())) {
		t.Fatal("fallback oracle should report a cache")
	}
	if got := h.cacheLen(); got != 0 {
		t.Errorf("cacheLen after invalidation = %d, want 0", got)
	}
}
