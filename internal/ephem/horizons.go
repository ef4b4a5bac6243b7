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

	"golang.org/x/sync/errgroup"

	"github.com/litescript/ls-planetarium/internal/astro"
)

const (
	// HorizonsAPIURL is the JPL Horizons JSON API endpoint.
	HorizonsAPIURL = "https://ssd.jpl.nasa.gov/api/horizons.api"

	// SnapshotCacheTTL is how long a fetched snapshot is reused. Planets move
	// well under a pixel at any usable zoom in this time.
	SnapshotCacheTTL = 10 * time.Minute

	// RequestTimeout is the HTTP request timeout.
	RequestTimeout = 30 * time.Second

	// maxConcurrentQueries bounds parallel requests to Horizons.
	maxConcurrentQueries = 2
)

// HorizonsProvider queries JPL Horizons for apparent planet positions.
type HorizonsProvider struct {
	client    *http.Client
	baseURL   string
	userAgent string

	mu     sync.Mutex
	cached *cachedSnapshot
}

type cachedSnapshot struct {
	snap      Snapshot
	observer  astro.Observer
	fetchedAt time.Time
}

// HorizonsOption configures a HorizonsProvider.
type HorizonsOption func(*HorizonsProvider)

// WithBaseURL points the provider at another Horizons-compatible endpoint.
func WithBaseURL(u string) HorizonsOption {
	return func(p *HorizonsProvider) {
		if u != "" {
			p.baseURL = u
		}
	}
}

// WithClient sets the HTTP client.
func WithClient(c *http.Client) HorizonsOption {
	return func(p *HorizonsProvider) {
		p.client = c
	}
}

// WithUserAgent sets the User-Agent header sent to Horizons.
func WithUserAgent(ua string) HorizonsOption {
	return func(p *HorizonsProvider) {
		p.userAgent = ua
	}
}

// NewHorizonsProvider creates a new Horizons API client.
func NewHorizonsProvider(opts ...HorizonsOption) *HorizonsProvider {
	p := &HorizonsProvider{
		client:  &http.Client{Timeout: RequestTimeout},
		baseURL: HorizonsAPIURL,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name implements Provider.
func (p *HorizonsProvider) Name() string {
	return "Horizons"
}

// Snapshot implements Provider. A cached snapshot for the same observer is
// reused for SnapshotCacheTTL.
func (p *HorizonsProvider) Snapshot(ctx context.Context, t time.Time, obs astro.Observer) (Snapshot, error) {
	p.mu.Lock()
	c := p.cached
	p.mu.Unlock()
	if c != nil && observerMatch(c.observer, obs) && absDuration(t.Sub(c.fetchedAt)) < SnapshotCacheTTL {
		return c.snap, nil
	}

	positions := make([]Position, len(Planets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentQueries)
	for i, body := range Planets {
		g.Go(func() error {
			pos, err := p.queryPosition(gctx, body, t, obs)
			if err != nil {
				return fmt.Errorf("%s: %w", body, err)
			}
			positions[i] = pos
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{Time: t, Positions: positions}
	p.mu.Lock()
	p.cached = &cachedSnapshot{snap: snap, observer: obs, fetchedAt: t}
	p.mu.Unlock()
	return snap, nil
}

// InvalidateCache drops the cached snapshot.
func (p *HorizonsProvider) InvalidateCache() {
	p.mu.Lock()
	p.cached = nil
	p.mu.Unlock()
}

// queryPosition makes one observer-table request to the Horizons API.
func (p *HorizonsProvider) queryPosition(ctx context.Context, body Body, t time.Time, obs astro.Observer) (Position, error) {
	// Values must be quoted with single quotes
	params := url.Values{}
	params.Set("format", "json")
	params.Set("COMMAND", fmt.Sprintf("'%d'", body))
	params.Set("OBJ_DATA", "NO")
	params.Set("MAKE_EPHEM", "YES")
	params.Set("EPHEM_TYPE", "OBSERVER")
	params.Set("CENTER", "'coord@399'")
	params.Set("COORD_TYPE", "GEODETIC")
	params.Set("SITE_COORD", fmt.Sprintf("'%.4f,%.4f,0.1'", obs.LonDeg, obs.LatDeg))
	params.Set("START_TIME", fmt.Sprintf("'%s'", formatHorizonsTime(t)))
	params.Set("STOP_TIME", fmt.Sprintf("'%s'", formatHorizonsTime(t.Add(time.Minute))))
	params.Set("STEP_SIZE", "'1 m'")
	params.Set("ANG_FORMAT", "DEG")
	params.Set("QUANTITIES", "'1,9,20'") // 1=astrometric RA/Dec, 9=magnitude, 20=range

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Position{}, fmt.Errorf("build horizons request: %w", err)
	}
	if p.userAgent != "" {
		req.Header.Set("User-Agent", p.userAgent)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return Position{}, fmt.Errorf("horizons request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Position{}, fmt.Errorf("horizons returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Position{}, fmt.Errorf("failed to read response: %w", err)
	}

	rows, err := parseHorizonsResponse(data)
	if err != nil {
		return Position{}, err
	}
	if len(rows) == 0 {
		return Position{}, fmt.Errorf("no data returned for %s", body)
	}

	row := rows[0]
	row.Body = body
	row.Source = p.Name()
	return row, nil
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

// parseHorizonsResponse parses the Horizons JSON envelope.
func parseHorizonsResponse(body []byte) ([]Position, error) {
	var resp horizonsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("horizons: %s", resp.Error)
	}
	return parseEphemerisTable(resp.Result)
}

// parseEphemerisTable extracts rows from the Horizons text output.
func parseEphemerisTable(result string) ([]Position, error) {
	soeIdx := strings.Index(result, "$$SOE")
	eoeIdx := strings.Index(result, "$$EOE")
	if soeIdx == -1 || eoeIdx == -1 || soeIdx >= eoeIdx {
		return nil, fmt.Errorf("could not find ephemeris data markers")
	}

	var rows []Position
	for _, line := range strings.Split(result[soeIdx+5:eoeIdx], "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row, err := parseEphemerisLine(line)
		if err != nil {
			continue // Skip unparseable lines
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseEphemerisLine parses a single data line for QUANTITIES='1,9,20' with
// ANG_FORMAT=DEG:
//
//	2025-Dec-05 00:00 *m  197.34888  -6.78506  -3.890  1.126  1.5123  -12.3
//
// Fields: date, time, optional flags, RA, Dec, APmag, S-brt, delta, deldot.
// APmag is "n.a." for some bodies.
func parseEphemerisLine(line string) (Position, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return Position{}, fmt.Errorf("insufficient fields: %d", len(fields))
	}

	t, err := parseHorizonsDateTime(fields[0] + " " + fields[1])
	if err != nil {
		return Position{}, err
	}

	var nums []float64
	var magMissing bool
	for _, f := range fields[2:] {
		if f == "n.a." {
			magMissing = true
			nums = append(nums, 0)
			continue
		}
		if v, err := strconv.ParseFloat(f, 64); err == nil {
			nums = append(nums, v)
		}
	}
	if len(nums) < 2 {
		return Position{}, fmt.Errorf("could not find RA/Dec values")
	}

	pos := Position{
		Time:  t,
		Coord: astro.NewEquatorial(nums[0], nums[1]),
	}
	if len(nums) >= 3 && !magMissing {
		pos.Magnitude = nums[2]
	}
	if len(nums) >= 5 {
		pos.DistanceAU = nums[4]
	}
	return pos, nil
}

// parseHorizonsDateTime parses Horizons date format like "2025-Dec-05 00:00".
func parseHorizonsDateTime(s string) (time.Time, error) {
	t, err := time.Parse("2006-Jan-02 15:04", s)
	if err == nil {
		return t.UTC(), nil
	}

	// Try with seconds
	t, err = time.Parse("2006-Jan-02 15:04:05", s)
	if err == nil {
		return t.UTC(), nil
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", s)
}

// formatHorizonsTime formats a time for Horizons API.
func formatHorizonsTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04")
}

// observerMatch checks if two observers are close enough to share cache.
func observerMatch(a, b astro.Observer) bool {
	const tolerance = 0.1 // degrees
	if abs(a.LatDeg-b.LatDeg) > tolerance {
		return false
	}
	if abs(a.LonDeg-b.LonDeg) > tolerance {
		return false
	}
	return true
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
