// Package poller periodically refreshes every subscribed feed.
package poller

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/nDmitry/rssreader/internal/app"
	"github.com/nDmitry/rssreader/internal/entity"
	"github.com/nDmitry/rssreader/internal/parser"
	"github.com/nDmitry/rssreader/internal/state"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultInterval = 5 * time.Second
	DefaultWorkers  = 4
)

var ErrAlreadyStarted = errors.New("poller already started")

// Fetcher returns the raw markup of a feed
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Store is the part of the state container the poller works with
type Store interface {
	Snapshot() state.State
	PrependNewPosts(posts []entity.Post) []entity.Post
}

type Poller struct {
	store    Store
	fetcher  Fetcher
	interval time.Duration
	workers  int

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// Option configures a Poller
type Option func(*Poller)

// WithInterval sets the pause between the end of a cycle and the start of the next one
func WithInterval(d time.Duration) Option {
	return func(p *Poller) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithWorkers limits how many feeds are fetched at the same time
func WithWorkers(n int) Option {
	return func(p *Poller) {
		if n > 0 {
			p.workers = n
		}
	}
}

func New(store Store, fetcher Fetcher, opts ...Option) *Poller {
	p := &Poller{
		store:    store,
		fetcher:  fetcher,
		interval: DefaultInterval,
		workers:  DefaultWorkers,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Poll runs one refresh cycle over the feeds known at its start and returns the
// number of posts added. Failing feeds are logged and skipped.
func (p *Poller) Poll(ctx context.Context) int {
	logger := app.Logger()
	feeds := p.store.Snapshot().Feeds

	var (
		mu    sync.Mutex
		added int
	)

	g := new(errgroup.Group)
	g.SetLimit(p.workers)

	for _, feed := range feeds {
		g.Go(func() error {
			posts, err := p.refresh(ctx, feed)

			if err != nil {
				logger.Warn("Could not refresh feed", "url", feed.URL, "error", err)
				return nil
			}

			fresh := p.store.PrependNewPosts(posts)

			if len(fresh) > 0 {
				logger.Debug("Feed refreshed", "url", feed.URL, "added", len(fresh))
			}

			mu.Lock()
			added += len(fresh)
			mu.Unlock()

			return nil
		})
	}

	// workers never return errors
	_ = g.Wait()

	return added
}

func (p *Poller) refresh(ctx context.Context, feed entity.Feed) ([]entity.Post, error) {
	raw, err := p.fetcher.Fetch(ctx, feed.URL)

	if err != nil {
		return nil, err
	}

	res, err := parser.Parse(raw, feed.URL)

	if err != nil {
		return nil, err
	}

	res.AssignTo(feed.ID)

	return res.Posts, nil
}

// Start launches the polling loop. The first cycle runs immediately and every next one
// is scheduled once the previous cycle has finished. The loop ends when ctx is done or
// Stop is called.
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		return ErrAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	p.cancel = cancel
	p.done = done

	go func() {
		defer close(done)
		p.loop(ctx)
	}()

	return nil
}

func (p *Poller) loop(ctx context.Context) {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			p.Poll(ctx)

			if ctx.Err() != nil {
				return
			}

			timer.Reset(p.interval)
		}
	}
}

// Stop cancels the loop and waits for the running cycle to return. It is a no-op if
// the poller is not running.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
}
