package tideforecast

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spencer-p/lowtides/pkg/forecast"
	"github.com/spencer-p/lowtides/pkg/forecast/htmldoc"
)

const (
	SITE_URL  = "https://www.tide-forecast.com"
	PAGE_PATH = "/locations/%s/tides/latest"

	maxPageSize = 5 << 20
)

// PageURL is the latest tides page for a location's site slug.
func PageURL(slug string) string {
	return SITE_URL + fmt.Sprintf(PAGE_PATH, slug)
}

// Client fetches tide pages.
type Client struct {
	HTTP      *http.Client
	UserAgent string
}

func NewClient(timeout time.Duration, userAgent string) *Client {
	return &Client{
		HTTP:      &http.Client{Timeout: timeout},
		UserAgent: userAgent,
	}
}

// Document fetches and parses the tide page for loc.
func (c *Client) Document(ctx context.Context, loc Location) (*htmldoc.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, loc.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", loc.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: HTTP %d: %s", loc.URL, resp.StatusCode, resp.Status)
	}

	doc, err := htmldoc.Parse(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", loc.URL, err)
	}
	return doc, nil
}

// LowTides fetches the page for loc and extracts today's daylight low tides.
func (c *Client) LowTides(ctx context.Context, loc Location) (*forecast.Result, error) {
	doc, err := c.Document(ctx, loc)
	if err != nil {
		return nil, err
	}
	res, err := forecast.Extract(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", loc.Name, err)
	}
	return res, nil
}

func (c *Client) client() *http.Client {
	if c.HTTP == nil {
		return http.DefaultClient
	}
	return c.HTTP
}
