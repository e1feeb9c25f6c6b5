package feed

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gorilla/feeds"
	"github.com/nDmitry/rssreader/internal/entity"
)

const readingListTitle = "RSS Reader"

var ErrFeedNotFound = errors.New("feed not found")

// Generator renders the reading list as an RSS or Atom document
type Generator struct{}

// Generate builds the export document from feeds and posts, both newest-first.
// With params.FeedID set only that feed's posts are exported.
func (g *Generator) Generate(subscribed []entity.Feed, posts []entity.Post, params *entity.ExportParams) ([]byte, error) {
	doc := &feeds.Feed{
		Title:       readingListTitle,
		Link:        &feeds.Link{Href: "/"},
		Description: fmt.Sprintf("%d subscribed feeds", len(subscribed)),
	}

	if params.FeedID != "" {
		source, ok := findFeed(subscribed, params.FeedID)

		if !ok {
			return nil, fmt.Errorf("%s: %w", params.FeedID, ErrFeedNotFound)
		}

		doc.Title = source.Title
		doc.Link = &feeds.Link{Href: source.URL}
		doc.Description = source.Description

		if doc.Title == "" {
			doc.Title = source.URL
		}
	}

	for _, p := range posts {
		if params.FeedID != "" && p.FeedID != params.FeedID {
			continue
		}

		if shouldExcludePost(p.Title+"\n"+p.Description, params.ExcludeWords, params.ExcludeCaseSensitive) {
			continue
		}

		title := p.Title

		if title == "" {
			title = TitleFromDescription(p.Description)
		}

		doc.Items = append(doc.Items, &feeds.Item{
			Id:          p.ID,
			Title:       title,
			Link:        &feeds.Link{Href: p.Link},
			Description: p.Description,
		})
	}

	var content string
	var err error

	switch params.Format {
	case entity.FormatRSS:
		content, err = doc.ToRss()
	case entity.FormatAtom:
		content, err = doc.ToAtom()
	default:
		return nil, fmt.Errorf("unsupported feed format: %s", params.Format)
	}

	if err != nil {
		return nil, fmt.Errorf("could not marshal reading list to %s: %w", params.Format, err)
	}

	return []byte(content), nil
}

func findFeed(subscribed []entity.Feed, id string) (entity.Feed, bool) {
	for _, f := range subscribed {
		if f.ID == id {
			return f, true
		}
	}

	return entity.Feed{}, false
}

// shouldExcludePost checks if a post should be excluded based on exclude words
func shouldExcludePost(content string, excludeWords []string, caseSensitive bool) bool {
	if len(excludeWords) == 0 {
		return false
	}

	if !caseSensitive {
		content = strings.ToLower(content)
	}

	for _, word := range excludeWords {
		if !caseSensitive {
			word = strings.ToLower(word)
		}

		if strings.Contains(content, word) {
			return true
		}
	}

	return false
}
