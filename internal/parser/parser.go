package parser

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"
	"github.com/nDmitry/rssreader/internal/entity"
)

// Result is a parsed feed whose records do not have identifiers yet
type Result struct {
	Feed  entity.Feed
	Posts []entity.Post
}

// Parse turns raw feed markup (RSS, Atom or JSON Feed) fetched from sourceURL into a feed
// record and its posts in document order. Anything else fails with entity.ErrParse.
func Parse(raw string, sourceURL string) (*Result, error) {
	parsed, err := gofeed.NewParser().ParseString(raw)

	if err != nil {
		return nil, fmt.Errorf("could not parse %s: %w: %w", sourceURL, entity.ErrParse, err)
	}

	res := &Result{
		Feed: entity.Feed{
			URL:         sourceURL,
			Title:       strings.TrimSpace(parsed.Title),
			Description: strings.TrimSpace(parsed.Description),
		},
		Posts: make([]entity.Post, 0, len(parsed.Items)),
	}

	for _, item := range parsed.Items {
		if item == nil {
			continue
		}

		res.Posts = append(res.Posts, entity.Post{
			Title:       strings.TrimSpace(item.Title),
			Link:        strings.TrimSpace(item.Link),
			Description: strings.TrimSpace(item.Description),
		})
	}

	return res, nil
}

// Assign stamps fresh identifiers on a newly subscribed feed and its posts
func (r *Result) Assign() {
	r.Feed.ID = uuid.NewString()
	r.AssignTo(r.Feed.ID)
}

// AssignTo stamps fresh post identifiers, linking posts to an already known feed
func (r *Result) AssignTo(feedID string) {
	r.Feed.ID = feedID

	for i := range r.Posts {
		r.Posts[i].ID = uuid.NewString()
		r.Posts[i].FeedID = feedID
	}
}
