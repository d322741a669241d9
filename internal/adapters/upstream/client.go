// Package upstream is the HTTP adapter for the remote catalog/query API. It
// is the only component that talks to the network: catalog fetches are
// deduplicated per URL and cached for the lifetime of the process, paged
// queries are always fetched fresh.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/jordibmorey/nauticards/internal/catalog"
	"github.com/jordibmorey/nauticards/internal/domain"
)

// Client speaks to the upstream API. Safe for concurrent use.
type Client struct {
	base *url.URL
	hc   *http.Client
	log  *zap.Logger

	group singleflight.Group
	mu    sync.Mutex
	cache map[string][]byte // catalog bodies, process lifetime, never invalidated
}

// New validates the base URL and builds a client. An unset base URL is a
// configuration error, surfaced as such so callers can distinguish it from a
// network failure.
func New(baseURL string, logger *zap.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, &domain.ConfigError{Setting: "UPSTREAM_URL"}
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("upstream url: %w", err)
	}
	return &Client{
		base:  u,
		hc:    &http.Client{Timeout: 15 * time.Second},
		log:   logger,
		cache: make(map[string][]byte),
	}, nil
}

func (c *Client) endpoint(path string, q url.Values) string {
	u := *c.base
	u.Path = path
	u.RawQuery = q.Encode()
	return u.String()
}

func (c *Client) fetch(ctx context.Context, urlStr string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.RemoteQueryError{Status: resp.StatusCode, URL: urlStr}
	}
	return io.ReadAll(resp.Body)
}

// fetchCatalog deduplicates concurrent requests for the same URL and caches
// the body for the life of the process. Stale data after upstream catalog
// changes is an accepted limitation; only a restart clears the cache.
func (c *Client) fetchCatalog(ctx context.Context, urlStr string) ([]byte, error) {
	c.mu.Lock()
	if b, ok := c.cache[urlStr]; ok {
		c.mu.Unlock()
		return b, nil
	}
	c.mu.Unlock()

	v, err, _ := c.group.Do(urlStr, func() (any, error) {
		b, err := c.fetch(ctx, urlStr)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.cache[urlStr] = b
		c.mu.Unlock()
		return b, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (c *Client) getCatalogJSON(ctx context.Context, path string, q url.Values, out any) error {
	b, err := c.fetchCatalog(ctx, c.endpoint(path, q))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// LoadCatalogs fetches all catalogs in parallel. Any failure fails the whole
// load; partial catalog data is never returned.
func (c *Client) LoadCatalogs(ctx context.Context, lang string) (*catalog.Catalogs, error) {
	langQ := url.Values{"lang": {lang}}
	fullQ := url.Values{"mode": {"full"}, "lang": {lang}}

	var (
		services, portServices []domain.Service
		portList               []domain.Port
		regions                []domain.Region
		areas                  []domain.Area
		companies              []domain.Company
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.getCatalogJSON(ctx, "/api/services", nil, &services) })
	g.Go(func() error { return c.getCatalogJSON(ctx, "/api/p_services", nil, &portServices) })
	g.Go(func() error { return c.getCatalogJSON(ctx, "/api/ports", langQ, &portList) })
	g.Go(func() error { return c.getCatalogJSON(ctx, "/api/regions", nil, &regions) })
	g.Go(func() error { return c.getCatalogJSON(ctx, "/api/areas", nil, &areas) })
	g.Go(func() error { return c.getCatalogJSON(ctx, "/api/companies", fullQ, &companies) })
	if err := g.Wait(); err != nil {
		c.log.Error("catalog load failed", zap.Error(err))
		return nil, err
	}
	return catalog.New(services, portServices, portList, regions, areas, companies), nil
}

// SearchCompanies runs the paged query. Below the minimum-filter threshold
// no request is made and an empty page comes back; the upstream enforces the
// same precondition with HTTP 400, which is treated identically.
func (c *Client) SearchCompanies(ctx context.Context, lang string, f domain.Filters, pageSize int) (domain.PagedResult, error) {
	if !f.Active() {
		return domain.EmptyPage(pageSize), nil
	}

	q := url.Values{
		"page":     {strconv.Itoa(f.Page)},
		"pageSize": {strconv.Itoa(pageSize)},
		"lang":     {lang},
	}
	if f.Query != "" {
		q.Set("q", f.Query)
	}
	if f.Service != "" {
		q.Set("servicio", f.Service)
	}
	if f.Port != "" {
		q.Set("puerto", f.Port)
	}
	if f.Area != "" {
		q.Set("area", f.Area)
	}

	b, err := c.fetch(ctx, c.endpoint("/api/companies", q))
	if err != nil {
		var rqe *domain.RemoteQueryError
		if errors.As(err, &rqe) && rqe.Status == http.StatusBadRequest {
			return domain.EmptyPage(pageSize), nil
		}
		return domain.PagedResult{}, err
	}

	var res domain.PagedResult
	if err := json.Unmarshal(b, &res); err != nil {
		return domain.PagedResult{}, fmt.Errorf("decode paged result: %w", err)
	}
	return res, nil
}

// ForwardForm posts a validated submission to the upstream forms API.
func (c *Client) ForwardForm(ctx context.Context, form string, fields map[string]string) error {
	body, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	urlStr := c.endpoint("/api/forms/"+form, nil)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, urlStr, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("forward form %s: %w", form, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.RemoteQueryError{Status: resp.StatusCode, URL: urlStr}
	}
	return nil
}
