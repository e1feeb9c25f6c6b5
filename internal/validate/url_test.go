package validate_test

import (
	"testing"

	"github.com/nDmitry/rssreader/internal/entity"
	"github.com/nDmitry/rssreader/internal/validate"
	"github.com/stretchr/testify/assert"
)

func TestURL(t *testing.T) {
	known := []string{"https://lorem-rss.hexlet.app/feed", "https://example.com/rss.xml"}

	tests := []struct {
		name      string
		candidate string
		expected  error
	}{
		{name: "New feed", candidate: "https://news.ycombinator.com/rss", expected: nil},
		{name: "Surrounding whitespace", candidate: "  https://news.ycombinator.com/rss\n", expected: nil},
		{name: "Empty string", candidate: "", expected: entity.ErrNonvalidURL},
		{name: "Blank string", candidate: "   ", expected: entity.ErrNonvalidURL},
		{name: "Missing scheme", candidate: "lorem-rss.hexlet.app/feed", expected: entity.ErrNonvalidURL},
		{name: "Relative path", candidate: "/feed", expected: entity.ErrNonvalidURL},
		{name: "Scheme only", candidate: "https://", expected: entity.ErrNonvalidURL},
		{name: "Plain words", candidate: "not a url", expected: entity.ErrNonvalidURL},
		{name: "Known feed", candidate: "https://lorem-rss.hexlet.app/feed", expected: entity.ErrDuplication},
		{name: "Known feed with spaces", candidate: " https://example.com/rss.xml ", expected: entity.ErrDuplication},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.URL(tt.candidate, known)

			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.expected)
		})
	}
}
