package satchel

import (
	"context"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"

	"github.com/mkruglov/satchel/internal/clock"
	"github.com/mkruglov/satchel/internal/lru"
)

var ErrFetchTimeout = errors.New("fetch timed out")
var ErrInvalidURL = errors.New("invalid url")

const defaultFetchDelay = 100 * time.Millisecond
const defaultFetchTimeout = 30 * time.Second

type FetcherConfig struct {
	// Delay is the simulated upstream latency.
	Delay time.Duration
	// Timeout bounds every Fetch call.
	Timeout time.Duration
	// CacheSize is the number of successful responses kept, 0 disables caching.
	CacheSize int
}

// Fetcher simulates fetching a remote resource: one suspension for
// the configured delay, bounded by the configured timeout.
type Fetcher struct {
	cfg   FetcherConfig
	clk   clock.Clock
	log   Logger
	cache *lru.Cache
}

func NewFetcher(log Logger, cfg FetcherConfig) (*Fetcher, error) {
	if cfg.Delay == 0 {
		cfg.Delay = defaultFetchDelay
	}

	if cfg.Timeout == 0 {
		cfg.Timeout = defaultFetchTimeout
	}

	if log == nil {
		log = NopLogger()
	}

	f := &Fetcher{cfg: cfg, clk: clock.System(), log: log}

	if cfg.CacheSize > 0 {
		c, err := lru.New(cfg.CacheSize)
		if err != nil {
			return nil, errors.Wrap(err, "could not create fetch cache")
		}
		f.cache = c
	}

	return f, nil
}

// Fetch waits out the simulated latency and returns a fixed-shape
// result for url. ErrFetchTimeout is returned when the deadline is
// exceeded; caller cancellation is passed through as is.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Result, error) {
	if !ValidURL(url) {
		return nil, errors.Wrapf(ErrInvalidURL, "%q", url)
	}

	key := xxhash.Sum64String(url)
	if f.cache != nil {
		if v, ok := f.cache.Get(key); ok {
			f.log.Debugf("fetch cache hit for %s", url)
			return v.(*Result), nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, f.cfg.Timeout)
	defer cancel()

	select {
	case <-f.clk.After(f.cfg.Delay):
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, errors.Wrapf(ErrFetchTimeout, "%s after %s", url, f.cfg.Timeout)
		}

		return nil, errors.Wrap(ctx.Err(), "fetch aborted")
	}

	res, err := newResult(url)
	if err != nil {
		return nil, err
	}

	if f.cache != nil {
		f.cache.Add(key, res)
	}

	f.log.Debugf("fetched %s in %s", url, f.cfg.Delay)

	return res, nil
}
