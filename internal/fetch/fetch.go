// Package fetch retrieves pages from basketball-reference.com with a
// request rate cap and retry on transient failures, returning parsed
// documents for the extraction packages.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"brefstats/internal/page"
)

const (
	// UserAgent identifies the scraper to the source site.
	UserAgent = "brefstats/1.0"
	// Timeout bounds a single HTTP request.
	Timeout = 30 * time.Second

	maxRetries = 3
)

// Client fetches and parses pages. A zero QPS disables rate limiting.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
	log     *zap.Logger
}

// NewClient creates a Client capped at qps requests per second.
func NewClient(qps float64, log *zap.Logger) *Client {
	limit := rate.Inf
	if qps > 0 {
		limit = rate.Limit(qps)
	}
	return &Client{
		http:    &http.Client{Timeout: Timeout},
		limiter: rate.NewLimiter(limit, 1),
		log:     log,
	}
}

// GetDocument fetches url and returns the parsed document. Server
// errors and throttling responses are retried with exponential
// backoff; other non-200 statuses fail immediately.
func (c *Client) GetDocument(ctx context.Context, url string) (page.Document, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	var doc page.Document
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", UserAgent)

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("fetching page: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				return err
			}
			return backoff.Permanent(err)
		}

		parsed, err := page.Parse(resp.Body)
		if err != nil {
			return backoff.Permanent(err)
		}
		doc = parsed
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		c.log.Error("fetch failed", zap.String("url", url), zap.Error(err))
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	return doc, nil
}

// DailyIndexURL builds the schedule page URL for a calendar day.
func DailyIndexURL(day time.Time) string {
	return fmt.Sprintf("https://www.basketball-reference.com/boxscores/?month=%02d&day=%02d&year=%d",
		int(day.Month()), day.Day(), day.Year())
}
