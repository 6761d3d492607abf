package ephem

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/litescript/ls-cosmos/internal/astro"
)

const (
	// HorizonsAPIURL is the JPL Horizons JSON API endpoint.
	HorizonsAPIURL = "https://ssd.jpl.nasa.gov/api/horizons.api"

	// RequestTimeout is the default HTTP request timeout.
	RequestTimeout = 30 * time.Second

	// VectorCacheTTL is how long to cache heliocentric positions.
	VectorCacheTTL = 10 * time.Minute

	// maxCachedVectors bounds the cache during long playback sessions.
	maxCachedVectors = 4096
)

// Horizons centre codes.
const (
	centerSun   = "'@10'"
	centerEarth = "'500@399'"
)

// HorizonsOracle queries JPL Horizons for ecliptic state vectors and reduces
// them to longitudes.
type HorizonsOracle struct {
	client  *http.Client
	baseURL string
	ttl     time.Duration

	mu    sync.RWMutex
	cache map[vectorKey]cachedVector
}

// vectorKey identifies one cached query. Time is truncated to the minute,
// the Horizons step size.
type vectorKey struct {
	target int
	center string
	minute int64
}

type cachedVector struct {
	pos       astro.Vec3
	fetchedAt time.Time
}

// NewHorizonsOracle creates a new Horizons API client.
func NewHorizonsOracle(opts Options) *HorizonsOracle {
	baseURL := opts.HorizonsURL
	if baseURL == "" {
		baseURL = HorizonsAPIURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = RequestTimeout
	}
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = VectorCacheTTL
	}
	return &HorizonsOracle{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		ttl:     ttl,
		cache:   make(map[vectorKey]cachedVector),
	}
}

// Name implements Oracle.
func (o *HorizonsOracle) Name() string {
	return "Horizons"
}

// HeliocentricLongitude implements Oracle.
func (o *HorizonsOracle) HeliocentricLongitude(ctx context.Context, body Body, t time.Time) (float64, error) {
	if !body.Valid() || body == Sun {
		return 0, fmt.Errorf("%w: %s", ErrUnknownBody, body)
	}
	pos, err := o.vector(ctx, body.NAIFID(), centerSun, t)
	if err != nil {
		return 0, err
	}
	return astro.EclipticLongitude(pos), nil
}

// GeocentricSunLongitude implements Oracle.
func (o *HorizonsOracle) GeocentricSunLongitude(ctx context.Context, t time.Time) (float64, error) {
	pos, err := o.vector(ctx, Sun.NAIFID(), centerEarth, t)
	if err != nil {
		return 0, err
	}
	return astro.EclipticLongitude(pos), nil
}

// InvalidateCache drops every cached vector.
func (o *HorizonsOracle) InvalidateCache() {
	o.mu.Lock()
	o.cache = make(map[vectorKey]cachedVector)
	o.mu.Unlock()
}

// vector returns a cached ecliptic position or queries Horizons for it.
func (o *HorizonsOracle) vector(ctx context.Context, target int, center string, t time.Time) (astro.Vec3, error) {
	key := vectorKey{target: target, center: center, minute: t.UTC().Unix() / 60}

	o.mu.RLock()
	cached, ok := o.cache[key]
	o.mu.RUnlock()

	if ok && time.Since(cached.fetchedAt) < o.ttl {
		return cached.pos, nil
	}

	pos, err := o.queryVectors(ctx, target, center, t)
	if err != nil {
		return astro.Vec3{}, err
	}

	o.mu.Lock()
	o.store(key, pos, time.Now())
	o.mu.Unlock()

	return pos, nil
}

// store inserts a vector, first dropping expired entries. If the cache is
// still full the oldest entry goes. Caller holds o.mu.
func (o *HorizonsOracle) store(key vectorKey, pos astro.Vec3, now time.Time) {
	for k, v := range o.cache {
		if now.Sub(v.fetchedAt) >= o.ttl {
			delete(o.cache, k)
		}
	}
	if len(o.cache) >= maxCachedVectors {
		var oldest vectorKey
		var oldestAt time.Time
		for k, v := range o.cache {
			if oldestAt.IsZero() || v.fetchedAt.Before(oldestAt) {
				oldest, oldestAt = k, v.fetchedAt
			}
		}
		delete(o.cache, oldest)
	}
	o.cache[key] = cachedVector{pos: pos, fetchedAt: now}
}

// queryVectors queries Horizons for ecliptic state vectors of target
// relative to center.
func (o *HorizonsOracle) queryVectors(ctx context.Context, target int, center string, t time.Time) (astro.Vec3, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("COMMAND", fmt.Sprintf("'%d'", target))
	params.Set("OBJ_DATA", "NO")
	params.Set("MAKE_EPHEM", "YES")
	params.Set("EPHEM_TYPE", "VECTORS")
	params.Set("CENTER", center)
	params.Set("REF_PLANE", "ECLIPTIC")
	params.Set("REF_SYSTEM", "ICRF")
	params.Set("VEC_TABLE", "'2'") // Position only
	params.Set("VEC_LABELS", "NO")
	params.Set("OUT_UNITS", "'AU-D'")
	params.Set("START_TIME", fmt.Sprintf("'%s'", formatHorizonsTime(t)))
	params.Set("STOP_TIME", fmt.Sprintf("'%s'", formatHorizonsTime(t.Add(time.Minute))))
	params.Set("STEP_SIZE", "'1 m'")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return astro.Vec3{}, fmt.Errorf("build horizons request: %w", err)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return astro.Vec3{}, fmt.Errorf("%w: horizons request failed: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return astro.Vec3{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return astro.Vec3{}, fmt.Errorf("%w: horizons returned status %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	}

	return parseVectorResponse(body)
}

// horizonsResponse represents the JSON API response.
type horizonsResponse struct {
	Signature struct {
		Version string `json:"version"`
		Source  string `json:"source"`
	} `json:"signature"`
	Result string `json:"result"`
	Error  string `json:"error"`
}

// parseVectorResponse parses the Horizons JSON response for vector data.
func parseVectorResponse(body []byte) (astro.Vec3, error) {
	var resp horizonsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return astro.Vec3{}, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if resp.Error != "" {
		return astro.Vec3{}, fmt.Errorf("%w: horizons: %s", ErrUnavailable, strings.TrimSpace(resp.Error))
	}

	soeIdx := strings.Index(resp.Result, "$$SOE")
	eoeIdx := strings.Index(resp.Result, "$$EOE")
	if soeIdx == -1 || eoeIdx == -1 || soeIdx >= eoeIdx {
		return astro.Vec3{}, fmt.Errorf("could not find vector data markers")
	}

	// Vector format (VEC_TABLE='2'):
	// 2460651.500000000 = A.D. 2024-Dec-05 00:00:00.0000 TDB
	//  X = 1.234567890123456E+00 Y = 2.345678901234567E+00 Z = 3.456789012345678E-01
	// or, without labels, three bare numbers on the second line.
	for _, line := range strings.Split(resp.Result[soeIdx+5:eoeIdx], "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, "A.D.") {
			continue
		}

		if strings.Contains(line, "X =") {
			return parseVectorLabeled(line)
		}

		if vec, err := parseVectorUnlabeled(line); err == nil {
			return vec, nil
		}
	}

	return astro.Vec3{}, fmt.Errorf("could not parse vector data")
}

// parseVectorLabeled parses: X = 1.23E+00 Y = 2.34E+00 Z = 3.45E-01
func parseVectorLabeled(line string) (astro.Vec3, error) {
	parts := strings.Split(line, "=")
	if len(parts) < 4 {
		return astro.Vec3{}, fmt.Errorf("invalid labeled format")
	}

	var vals [3]float64
	for i := 0; i < 3; i++ {
		fields := strings.Fields(parts[i+1])
		if len(fields) == 0 {
			return astro.Vec3{}, fmt.Errorf("invalid labeled format")
		}
		v, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return astro.Vec3{}, err
		}
		vals[i] = v
	}

	return astro.Vec3{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}

// parseVectorUnlabeled parses: 1.23E+00  2.34E+00  3.45E-01
func parseVectorUnlabeled(line string) (astro.Vec3, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return astro.Vec3{}, fmt.Errorf("insufficient fields: %d", len(fields))
	}

	var vals [3]float64
	for i := range vals {
		v, err := strconv.ParseFloat(strings.TrimSuffix(fields[i], ","), 64)
		if err != nil {
			return astro.Vec3{}, err
		}
		vals[i] = v
	}

	return astro.Vec3{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}

// formatHorizonsTime formats a time for Horizons API.
func formatHorizonsTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04")
}
