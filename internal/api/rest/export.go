package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/nDmitry/rssreader/internal/app"
	"github.com/nDmitry/rssreader/internal/cache"
	"github.com/nDmitry/rssreader/internal/entity"
	"github.com/nDmitry/rssreader/internal/feed"
	"github.com/nDmitry/rssreader/internal/state"
)

// StateSource gives read access to the application state
type StateSource interface {
	Snapshot() state.State
}

// Generator renders the reading list
type Generator interface {
	Generate(feeds []entity.Feed, posts []entity.Post, params *entity.ExportParams) ([]byte, error)
}

// ExportHandler serves the reading list as a feed
type ExportHandler struct {
	cache      cache.Cache
	source     StateSource
	generator  Generator
	defaultTTL int
	logger     *slog.Logger
}

// NewExportHandler creates a new ExportHandler and sets up routes.
// defaultTTL is the cache lifetime in minutes used when the request sets none.
func NewExportHandler(mux *http.ServeMux, c cache.Cache, source StateSource, g Generator, defaultTTL int) *ExportHandler {
	h := &ExportHandler{
		cache:      c,
		source:     source,
		generator:  g,
		defaultTTL: defaultTTL,
		logger:     app.Logger(),
	}

	mux.HandleFunc("GET /export", h.GetExport)

	return h
}

// GetExport handles requests for the reading list feed
func (h *ExportHandler) GetExport(w http.ResponseWriter, r *http.Request) {
	params, err := entity.NewExportParamsFromRequest(r, h.defaultTTL)

	if err != nil {
		handleError(h.logger, w, err, http.StatusBadRequest)
		return
	}

	st := h.source.Snapshot()
	cacheKey := buildCacheKey(params, st.Revision)

	// Try to get from cache first if caching is enabled
	if params.CacheTTL > 0 {
		cachedContent, cacheErr := h.cache.Get(r.Context(), cacheKey)

		if cacheErr == nil {
			w.Header().Set("X-CACHE-STATUS", "HIT")
			h.serveContent(w, cachedContent, params.Format, params.CacheTTL)

			return
		} else if !errors.Is(cacheErr, cache.ErrCacheMiss) {
			h.logger.Error("Cache error", "error", cacheErr)
		}
	}

	content, err := h.generator.Generate(st.Feeds, st.Posts, params)

	if errors.Is(err, feed.ErrFeedNotFound) {
		handleError(h.logger, w, err, http.StatusNotFound)
		return
	}

	if err != nil {
		handleError(h.logger, w, err, http.StatusInternalServerError)
		return
	}

	if params.CacheTTL > 0 {
		cacheTTL := time.Duration(params.CacheTTL) * time.Minute

		// Use background context for caching to avoid cancellation
		cacheCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := h.cache.Set(cacheCtx, cacheKey, content, cacheTTL); err != nil {
			h.logger.Error("Failed to cache content", "error", err)
		}
	}

	w.Header().Set("X-CACHE-STATUS", "MISS")
	h.serveContent(w, content, params.Format, params.CacheTTL)
}

// buildCacheKey generates a cache key from the request parameters and the state
// revision, so any state change invalidates earlier exports
func buildCacheKey(params *entity.ExportParams, revision uint64) string {
	caseSensitive := "0"

	if params.ExcludeCaseSensitive {
		caseSensitive = "1"
	}

	return fmt.Sprintf("export:%d:%s:%s:%s:%s",
		revision,
		params.FeedID,
		params.Format,
		strings.Join(params.ExcludeWords, "|"),
		caseSensitive)
}

// serveContent sends the content to the client with appropriate headers
func (h *ExportHandler) serveContent(w http.ResponseWriter, content []byte, format string, cacheTTL int) {
	var contentType string

	switch format {
	case entity.FormatRSS:
		contentType = "application/rss+xml"
	case entity.FormatAtom:
		contentType = "application/atom+xml"
	default:
		contentType = "application/xml"
	}

	w.Header().Set("Content-Type", contentType+"; charset=utf-8")

	if cacheTTL > 0 {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", cacheTTL*60))
	} else {
		w.Header().Set("Cache-Control", "no-cache")
	}

	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(content); err != nil {
		handleBadErrorResponse(err, string(content))
	}
}
