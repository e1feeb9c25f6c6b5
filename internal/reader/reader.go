// Package reader implements the user actions of the page: subscribing to a feed,
// switching the language and opening or previewing posts.
package reader

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nDmitry/rssreader/internal/app"
	"github.com/nDmitry/rssreader/internal/entity"
	"github.com/nDmitry/rssreader/internal/parser"
	"github.com/nDmitry/rssreader/internal/state"
	"github.com/nDmitry/rssreader/internal/validate"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

// Fetcher returns the raw markup of a feed
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Languages tells which interface languages exist
type Languages interface {
	Supported(lng string) bool
}

type Reader struct {
	store     *state.Store
	fetcher   Fetcher
	languages Languages
}

func New(store *state.Store, fetcher Fetcher, languages Languages) *Reader {
	return &Reader{
		store:     store,
		fetcher:   fetcher,
		languages: languages,
	}
}

// Submit subscribes to the feed at rawURL. The outcome is recorded in the state;
// the returned error is only meant for logging.
func (r *Reader) Submit(ctx context.Context, rawURL string) error {
	r.store.SetInput(rawURL)
	r.store.SetLoadingProcess(state.ProcessLoading)

	feed, posts, err := r.load(ctx, rawURL)

	if err == nil {
		err = r.store.AddFeed(feed, posts)
	}

	if err != nil {
		r.store.SetValid(false)
		r.store.SetError(entity.KindOf(err))
		r.store.SetLoadingProcess(state.ProcessFailed)

		app.Logger().Info("Feed submission failed", "url", rawURL, "error", err)

		return err
	}

	r.store.SetInput("")
	r.store.SetValid(true)
	r.store.SetError(entity.ErrorNone)
	r.store.SetLoadingProcess(state.ProcessSuccess)

	app.Logger().Info("Feed added", "url", feed.URL, "posts", len(posts))

	return nil
}

func (r *Reader) load(ctx context.Context, rawURL string) (entity.Feed, []entity.Post, error) {
	target := strings.TrimSpace(rawURL)

	if err := validate.URL(target, r.store.FeedURLs()); err != nil {
		return entity.Feed{}, nil, err
	}

	raw, err := r.fetcher.Fetch(ctx, target)

	if err != nil {
		return entity.Feed{}, nil, err
	}

	res, err := parser.Parse(raw, target)

	if err != nil {
		return entity.Feed{}, nil, err
	}

	res.Assign()

	return res.Feed, res.Posts, nil
}

// SwitchLanguage changes the interface language
func (r *Reader) SwitchLanguage(lng string) error {
	if !r.languages.Supported(lng) {
		return fmt.Errorf("%q: %w", lng, ErrUnsupportedLanguage)
	}

	r.store.SetLanguage(lng)

	return nil
}

// OpenPost records that the post behind link was opened.
// It reports false when no such post exists.
func (r *Reader) OpenPost(link string) bool {
	if _, ok := r.store.Snapshot().PostByLink(link); !ok {
		return false
	}

	r.store.MarkViewed(link)

	return true
}

// PreviewPost shows the post behind link in the modal and marks it viewed.
// It reports false when no such post exists.
func (r *Reader) PreviewPost(link string) bool {
	if _, ok := r.store.Snapshot().PostByLink(link); !ok {
		return false
	}

	r.store.MarkViewed(link)
	r.store.ClickPost(link)

	return true
}

// ClosePreview hides the modal
func (r *Reader) ClosePreview() {
	r.store.ClickPost("")
}
