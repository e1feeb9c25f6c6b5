package state

import (
	"slices"

	"github.com/nDmitry/rssreader/internal/entity"
)

// Process is the submission lifecycle shown by the form
type Process string

const (
	ProcessReady   Process = "ready"
	ProcessLoading Process = "loading"
	ProcessSuccess Process = "success"
	ProcessFailed  Process = "failed"
)

// UIState holds what the user did with the rendered posts
type UIState struct {
	// Ordered set of links the user opened or previewed.
	ViewedLinks     []string
	ClickedPostLink string
}

// State is the whole application state. Feeds and Posts are newest-first.
type State struct {
	Language       string
	LoadingProcess Process
	Valid          bool
	// Text of the URL field, kept until a submission succeeds.
	Input string
	Error          entity.ErrorKind
	UI             UIState
	Feeds          []entity.Feed
	Posts          []entity.Post
	// Revision counts applied mutations.
	Revision uint64
}

// IsViewed reports whether link was opened or previewed
func (s State) IsViewed(link string) bool {
	return slices.Contains(s.UI.ViewedLinks, link)
}

// PostByLink returns the post with the given link
func (s State) PostByLink(link string) (entity.Post, bool) {
	if link == "" {
		return entity.Post{}, false
	}

	for _, p := range s.Posts {
		if p.Link == link {
			return p, true
		}
	}

	return entity.Post{}, false
}

// FeedByID returns the feed with the given identifier
func (s State) FeedByID(id string) (entity.Feed, bool) {
	for _, f := range s.Feeds {
		if f.ID == id {
			return f, true
		}
	}

	return entity.Feed{}, false
}

func (s State) clone() State {
	c := s
	c.UI.ViewedLinks = slices.Clone(s.UI.ViewedLinks)
	c.Feeds = slices.Clone(s.Feeds)
	c.Posts = slices.Clone(s.Posts)

	return c
}
