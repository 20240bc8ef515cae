// Package catalog looks up make/model suggestion lists from the public
// opendatasoft vehicle dataset. Suggestions only feed datalists in the
// details form; a catalog outage never blocks the dashboard.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"travelpartner/internal/domain"
	"travelpartner/internal/utils"
)

const (
	recordsPath = "/api/explore/v2.1/catalog/datasets/all-vehicles-model/records?limit=100"
	cacheKey    = "catalog:vehicles"
	cacheTTL    = 12 * time.Hour
)

type vehicleRecord struct {
	Make  string `json:"make"`
	Model string `json:"model"`
}

type Client struct {
	baseURL string
	http    *http.Client
	cache   Cache
}

// NewClient builds a catalog client. cache may be nil, in which case every
// call hits the upstream dataset.
func NewClient(baseURL string, timeout time.Duration, cache Cache) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		cache:   cache,
	}
}

// Makes returns the distinct vehicle makes in the dataset, sorted.
func (c *Client) Makes(ctx context.Context) ([]string, error) {
	records, err := c.records(ctx)
	if err != nil {
		return nil, err
	}
	return distinct(records, func(r vehicleRecord) string { return r.Make }), nil
}

// Models returns the distinct models for one make, sorted. An unknown make
// yields an empty list, not an error.
func (c *Client) Models(ctx context.Context, makeName string) ([]string, error) {
	records, err := c.records(ctx)
	if err != nil {
		return nil, err
	}
	want := utils.TrimOrEmpty(makeName)
	var filtered []vehicleRecord
	for _, r := range records {
		if strings.EqualFold(r.Make, want) {
			filtered = append(filtered, r)
		}
	}
	return distinct(filtered, func(r vehicleRecord) string { return r.Model }), nil
}

func (c *Client) records(ctx context.Context) ([]vehicleRecord, error) {
	if c.cache != nil {
		var cached []vehicleRecord
		err := c.cache.Get(ctx, cacheKey, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			utils.LogEvent("", "catalog", "cache_get", "cache read failed: "+err.Error())
		}
	}

	records, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, cacheKey, records, cacheTTL); err != nil {
			utils.LogEvent("", "catalog", "cache_set", "cache write failed: "+err.Error())
		}
	}
	return records, nil
}

func (c *Client) fetch(ctx context.Context) ([]vehicleRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+recordsPath, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, domain.UpstreamError{Status: resp.StatusCode, Message: "catalog lookup failed"}
	}

	var payload struct {
		Results []vehicleRecord `json:"results"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, domain.UpstreamError{Status: resp.StatusCode, Message: "malformed catalog response"}
	}
	return payload.Results, nil
}

func distinct(records []vehicleRecord, key func(vehicleRecord) string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, r := range records {
		v := utils.TrimOrEmpty(key(r))
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
