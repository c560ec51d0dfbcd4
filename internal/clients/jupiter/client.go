// Package jupiter fetches token prices from the Jupiter quote API.
package jupiter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/tidwall/gjson"

	"github.com/cryptoconquerors/realm-api/internal/errors"
	"github.com/cryptoconquerors/realm-api/internal/pkg/clock"
)

//go:generate mockgen -destination=mock/mock_client.go -package=jupitermock -source=client.go

const (
	// DefaultBaseURL is the public Jupiter v6 quote endpoint.
	DefaultBaseURL = "https://quote-api.jup.ag/v6"

	// usdcMint is the output side of every quote; prices are in USDC.
	usdcMint = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"

	// quoteAmount is the input amount for a quote, one whole token at six
	// decimals. The USDC outAmount at the same scale is the price.
	quoteAmount = 1_000_000

	// DefaultCacheTTL bounds how often we hit Jupiter for the same mint.
	DefaultCacheTTL = 15 * time.Second
)

// Client quotes token prices.
type Client interface {
	// Price returns the USDC price of one whole token of the mint.
	Price(ctx context.Context, mint string) (float64, error)
}

// Config holds the configuration for the Jupiter client.
type Config struct {
	HTTPClient *http.Client
	Clock      clock.Clock

	// BaseURL overrides the quote endpoint, mainly for tests.
	BaseURL string

	// CacheTTL overrides how long a quote is reused. Zero means
	// DefaultCacheTTL.
	CacheTTL time.Duration
}

// Validate ensures all required dependencies are provided.
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.HTTPClient == nil {
		return errors.InvalidArgument("http client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type cachedQuote struct {
	price     float64
	fetchedAt time.Time
}

type client struct {
	http     *http.Client
	clock    clock.Clock
	baseURL  string
	cacheTTL time.Duration

	mu    sync.Mutex
	cache map[string]cachedQuote
}

// New creates a new Jupiter quote client.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	ttl := cfg.CacheTTL
	if ttl == 0 {
		ttl = DefaultCacheTTL
	}
	return &client{
		http:     cfg.HTTPClient,
		clock:    cfg.Clock,
		baseURL:  baseURL,
		cacheTTL: ttl,
		cache:    make(map[string]cachedQuote),
	}, nil
}

var _ Client = (*client)(nil)

func (c *client) Price(ctx context.Context, mint string) (float64, error) {
	if mint == "" {
		return 0, errors.InvalidArgument("mint cannot be empty")
	}

	now := c.clock.Now()

	c.mu.Lock()
	cached, ok := c.cache[mint]
	c.mu.Unlock()
	if ok && now.Sub(cached.fetchedAt) < c.cacheTTL {
		return cached.price, nil
	}

	price, err := c.fetchPrice(ctx, mint)
	if err != nil {
		// A stale quote beats no quote when Jupiter is flaky.
		if ok {
			return cached.price, nil
		}
		return 0, err
	}

	c.mu.Lock()
	c.cache[mint] = cachedQuote{price: price, fetchedAt: now}
	c.mu.Unlock()

	return price, nil
}

func (c *client) fetchPrice(ctx context.Context, mint string) (float64, error) {
	url := fmt.Sprintf("%s/quote?inputMint=%s&outputMint=%s&amount=%d&slippageBps=50",
		c.baseURL, mint, usdcMint, quoteAmount)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to build quote request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, errors.Unavailable(fmt.Sprintf("jupiter quote failed: %v", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, errors.Unavailable(fmt.Sprintf("jupiter quote returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to read quote response")
	}

	out := gjson.GetBytes(body, "outAmount")
	if !out.Exists() {
		return 0, errors.Internal("jupiter quote missing outAmount")
	}

	return out.Float() / float64(quoteAmount), nil
}
