package entity

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

const (
	FormatAtom = "atom"
	FormatRSS  = "rss"
)

const ExportCacheTTLDefault = 1 // minutes

// ExportParams represents validated request parameters for the reading list export
type ExportParams struct {
	// Format is the export format, either "atom" or "rss"
	Format string

	// FeedID limits the export to a single feed, empty means all feeds
	FeedID string

	// ExcludeWords is a list of words that will exclude a post if matched
	ExcludeWords []string

	// ExcludeCaseSensitive determines if exclusion matching is case-sensitive
	ExcludeCaseSensitive bool

	// CacheTTL is the cache time-to-live in minutes
	// A value of 0 means no caching
	CacheTTL int
}

// NewExportParamsFromRequest parses and validates export query parameters.
// defaultTTL is used when cache_ttl is absent.
func NewExportParamsFromRequest(r *http.Request, defaultTTL int) (*ExportParams, error) {
	qp := r.URL.Query()

	format := qp.Get("format")

	if format == "" {
		format = FormatRSS
	} else if format != FormatRSS && format != FormatAtom {
		return nil, fmt.Errorf("format must be %s or %s", FormatRSS, FormatAtom)
	}

	excludeCaseSensitive := false

	if caseSensitive := qp.Get("exclude_case_sensitive"); caseSensitive != "" {
		excludeCaseSensitive = caseSensitive == "1" || strings.EqualFold(caseSensitive, "true")
	}

	cacheTTL := defaultTTL

	if ttlStr := qp.Get("cache_ttl"); ttlStr != "" {
		var err error
		cacheTTL, err = strconv.Atoi(ttlStr)

		if err != nil {
			return nil, fmt.Errorf("cache_ttl must be a valid integer")
		}

		if cacheTTL < 0 {
			return nil, fmt.Errorf("cache_ttl must be non-negative")
		}
	}

	return &ExportParams{
		Format:               format,
		FeedID:               strings.TrimSpace(qp.Get("feed")),
		ExcludeWords:         splitExcludeWords(qp.Get("exclude")),
		ExcludeCaseSensitive: excludeCaseSensitive,
		CacheTTL:             cacheTTL,
	}, nil
}

// splitExcludeWords splits a "|" separated list dropping blank entries
func splitExcludeWords(exclude string) []string {
	if exclude == "" {
		return nil
	}

	words := make([]string, 0, strings.Count(exclude, "|")+1)

	for _, word := range strings.Split(exclude, "|") {
		if word = strings.TrimSpace(word); word != "" {
			words = append(words, word)
		}
	}

	return words
}
