package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// ErrFeedUnavailable wraps every failure mode of the feed request so callers
// can treat "catalog unavailable" as a single recoverable state.
var ErrFeedUnavailable = errors.New("catalog feed unavailable")

const (
	feedUserAgent = "echomart/1.0 (+https://github.com/venomusblood568/Echomart)"

	// maxFeedBytes caps the response body read. The fake store feed is a few
	// kilobytes; anything past this limit is not a product list.
	maxFeedBytes = 2 << 20
)

// rawRecord mirrors the subset of a feed object we keep. Extra feed fields
// (category, rating, ...) are dropped during decode.
type rawRecord struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}

// Client fetches the product feed. One Client serves one endpoint.
type Client struct {
	url    string
	httpc  *http.Client
	logger *zap.Logger
}

// NewClient builds a feed client with a request timeout. The logger may not
// be nil; pass zap.NewNop() when logging is unwanted.
func NewClient(url string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		url:    url,
		httpc:  &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Fetch performs the feed request and normalizes the response into Products.
// Any failure (transport, non-2xx status, malformed body) is reported as
// ErrFeedUnavailable; the caller decides how to surface it.
func (c *Client) Fetch(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}
	req.Header.Set("User-Agent", feedUserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Warn("feed request failed", zap.String("url", c.url), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("feed returned non-success status",
			zap.String("url", c.url),
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: HTTP %d", ErrFeedUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrFeedUnavailable, err)
	}

	var raw []rawRecord
	if err := json.Unmarshal(body, &raw); err != nil {
		c.logger.Warn("feed body is not a product list", zap.Error(err))
		return nil, fmt.Errorf("%w: malformed body: %v", ErrFeedUnavailable, err)
	}

	products := lo.Map(raw, func(r rawRecord, _ int) Product {
		return Product{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Price:       r.Price,
			Image:       r.Image,
		}
	})

	c.logger.Debug("feed fetched", zap.String("url", c.url), zap.Int("products", len(products)))
	return products, nil
}
