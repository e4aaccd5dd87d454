package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/token-bubbles/core"
)

// DefaultBaseURL is the public DexScreener API root
const DefaultBaseURL = "https://api.dexscreener.com/latest"

// ClientConfig configures the DexScreener client
type ClientConfig struct {
	BaseURL     string
	Timeout     time.Duration
	Concurrency int
}

// Client fetches token pairs from DexScreener
type Client struct {
	baseURL string
	http    *http.Client
	cache   *Cache[string, Pair]
	limit   int
	log     zerolog.Logger

	fetches  atomic.Int64
	failures atomic.Int64
}

// NewClient creates a client, cache may be nil
func NewClient(cfg ClientConfig, cache *Cache[string, Pair], log zerolog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 4
	}
	if cache == nil {
		cache = NewCache[string, Pair](0, nil)
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		cache:   cache,
		limit:   cfg.Concurrency,
		log:     log.With().Str("client", "dexscreener").Logger(),
	}
}

// Stats returns the number of network fetches and failed fetches
func (c *Client) Stats() (fetches, failures int64) {
	return c.fetches.Load(), c.failures.Load()
}

// Invalidate evicts cached pairs so the next fetch goes to the network
func (c *Client) Invalidate(refs []TokenRef) {
	for _, r := range refs {
		c.cache.Evict(r.ID())
	}
}

// FetchPair returns the pair for ref, served from cache while fresh
func (c *Client) FetchPair(ctx context.Context, ref TokenRef) (Pair, error) {
	key := ref.ID()
	if p, ok := c.cache.Get(key); ok {
		return p, nil
	}

	c.fetches.Add(1)
	endpoint := c.baseURL + "/dex/tokens/" + url.PathEscape(ref.Contract)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Pair{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.failures.Add(1)
		return Pair{}, fmt.Errorf("fetch %s: %w", ref.Contract, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.failures.Add(1)
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return Pair{}, fmt.Errorf("fetch %s: status %d: %s", ref.Contract, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var data TokensResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		c.failures.Add(1)
		return Pair{}, fmt.Errorf("decode %s: %w", ref.Contract, err)
	}

	p, ok := pickPair(data.Pairs, ref.Chain)
	if !ok {
		return Pair{}, fmt.Errorf("%w: %s", ErrNoPairs, ref.Contract)
	}
	c.cache.Set(key, p)
	return p, nil
}

// FetchList fetches every ref in parallel and returns displayable entities in list order
// Single token failures are logged and skipped, an error is returned only when nothing loaded
func (c *Client) FetchList(ctx context.Context, refs []TokenRef, tf core.Timeframe) ([]core.Entity, error) {
	if len(refs) == 0 {
		return []core.Entity{}, nil
	}

	results := make([]core.Entity, len(refs))
	loaded := make([]bool, len(refs))
	var (
		errMu    sync.Mutex
		firstErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.limit)

	for i, ref := range refs {
		i, ref := i, ref // per-iteration copies; go.mod targets go1.21 loop semantics
		g.Go(func() error {
			p, err := c.FetchPair(gctx, ref)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				errMu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				errMu.Unlock()
				if errors.Is(err, ErrNoPairs) {
					c.log.Debug().Str("contract", ref.Contract).Str("chain", ref.Chain).Msg("no pairs")
				} else {
					c.log.Warn().Err(err).Str("contract", ref.Contract).Msg("token fetch failed")
				}
				return nil
			}
			results[i] = Normalize(p, ref, tf)
			loaded[i] = true
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]core.Entity, 0, len(refs))
	seen := make(map[string]struct{}, len(refs))
	for i, e := range results {
		if !loaded[i] || !Displayable(e) {
			continue
		}
		if _, dup := seen[e.ID]; dup {
			continue
		}
		seen[e.ID] = struct{}{}
		out = append(out, e)
	}

	if len(out) == 0 && firstErr != nil {
		return nil, fmt.Errorf("no tokens loaded: %w", firstErr)
	}

	c.log.Debug().Int("requested", len(refs)).Int("loaded", len(out)).Str("timeframe", tf.String()).Msg("list fetched")
	return out, nil
}
