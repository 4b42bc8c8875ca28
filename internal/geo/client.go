// Package geo talks to a Nominatim-style geocoding service. Lookups are
// best-effort: the callers feeding address suggestions treat failures as
// an empty result and never block a submission on them.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// ErrStaleResult marks a search result superseded by a newer query.
var ErrStaleResult = errors.New("geo: stale search result")

// Place is one geocoding candidate.
type Place struct {
	DisplayName string  `json:"displayName"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// Client queries the remote text-search and reverse-geocoding endpoints,
// filtered by country code. Identical in-flight searches are deduplicated.
type Client struct {
	baseURL     string
	countryCode string
	httpClient  *http.Client
	group       singleflight.Group

	// One SearchSession per caller key, so concurrent operators cannot
	// invalidate each other's lookups. Sessions are never evicted; keys
	// are client addresses and stay few.
	mu       sync.Mutex
	sessions map[string]*SearchSession
}

// NewClient constructs a geocoding client.
func NewClient(baseURL, countryCode string) *Client {
	return &Client{
		baseURL:     baseURL,
		countryCode: countryCode,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

func (r nominatimResult) place() Place {
	lat, _ := strconv.ParseFloat(r.Lat, 64)
	lng, _ := strconv.ParseFloat(r.Lon, 64)
	return Place{DisplayName: r.DisplayName, Latitude: lat, Longitude: lng}
}

// Search looks up address candidates for a free-text query. The sessionKey
// identifies the caller typing the query; when that caller starts a newer
// search while this one is in flight, the slower result is dropped and
// ErrStaleResult is returned. Searches under different keys do not affect
// each other.
func (c *Client) Search(ctx context.Context, sessionKey, query string) ([]Place, error) {
	if query == "" {
		return nil, nil
	}
	session := c.sessionFor(sessionKey)
	gen := session.Begin()
	key := "search:" + query
	v, err, _ := c.group.Do(key, func() (any, error) {
		params := url.Values{}
		params.Set("format", "json")
		params.Set("limit", "5")
		params.Set("countrycodes", c.countryCode)
		params.Set("q", query)
		var results []nominatimResult
		if err := c.get(ctx, "/search", params, &results); err != nil {
			return nil, err
		}
		places := make([]Place, 0, len(results))
		for _, r := range results {
			places = append(places, r.place())
		}
		return places, nil
	})
	if err != nil {
		return nil, err
	}
	if !session.Accept(gen) {
		return nil, ErrStaleResult
	}
	return v.([]Place), nil
}

func (c *Client) sessionFor(key string) *SearchSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sessions == nil {
		c.sessions = make(map[string]*SearchSession)
	}
	s, ok := c.sessions[key]
	if !ok {
		s = &SearchSession{}
		c.sessions[key] = s
	}
	return s
}

// Reverse resolves a coordinate to an address. A coordinate the service
// cannot name returns ok=false with no error.
func (c *Client) Reverse(ctx context.Context, lat, lng float64) (Place, bool, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	var result nominatimResult
	if err := c.get(ctx, "/reverse", params, &result); err != nil {
		return Place{}, false, err
	}
	if result.DisplayName == "" {
		return Place{}, false, nil
	}
	return result.place(), true, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "campo-erp/1.0")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("geo: %s returned status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}
