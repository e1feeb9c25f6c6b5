package feed

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

const (
	maxTitleLength  = 80
	ellipsis        = "…"
	openParenthesis = '('
	punctuation     = ",.;:!? "
)

var (
	paragraphBreakRegex = regexp.MustCompile(`(?:<br\s*/?>\s*){2,}|</p>`)
	multipleSpacesRegex = regexp.MustCompile(`\s+`)
	sentenceEndRegex    = regexp.MustCompile(`[.!?…](?:\s|$)|\.{3}`)
)

// TitleFromDescription makes a title for a post that has none. It takes the first
// paragraph of the description markup, or its first sentence when there is a single
// paragraph, and shortens it to a headline.
func TitleFromDescription(description string) string {
	if first := firstParagraph(description); first != "" {
		return formatTitle(first)
	}

	text := plainText(description)

	if loc := sentenceEndRegex.FindStringIndex(text); loc != nil {
		return formatTitle(text[:loc[1]])
	}

	return formatTitle(text)
}

func firstParagraph(markup string) string {
	parts := paragraphBreakRegex.Split(markup, 2)

	if len(parts) < 2 {
		return ""
	}

	return plainText(parts[0])
}

func plainText(markup string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))

	if err != nil {
		return strings.TrimSpace(markup)
	}

	return strings.TrimSpace(doc.Text())
}

func formatTitle(text string) string {
	text = multipleSpacesRegex.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)
	text = dropCutParenthesis(text, maxTitleLength)

	return truncateAtWordBoundary(text, maxTitleLength)
}

// dropCutParenthesis removes a parenthetical that the length limit would cut in half,
// along with everything after it.
func dropCutParenthesis(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}

	var (
		b          strings.Builder
		inParens   bool
		parenStart int
		count      int
	)

	for i, r := range text {
		count++

		switch r {
		case openParenthesis:
			inParens = true
			parenStart = i
		case ')':
			inParens = false
		}

		if count > limit && inParens {
			return strings.TrimRight(text[:parenStart], punctuation) + ellipsis
		}

		if !inParens {
			b.WriteRune(r)
		}
	}

	return b.String()
}

func truncateAtWordBoundary(text string, limit int) string {
	hasColon := strings.HasSuffix(text, ":")
	text = strings.TrimSuffix(text, ":")

	count := utf8.RuneCountInString(text)

	if count <= limit {
		if hasColon {
			return text + ellipsis
		}

		return text
	}

	lastSpace := 0
	count = 0

	for i, r := range text {
		count++

		if unicode.IsSpace(r) {
			lastSpace = i
		}

		if count < limit {
			continue
		}

		cut := text[:i]

		if lastSpace > 0 {
			cut = text[:lastSpace]
		}

		return strings.TrimRight(cut, punctuation) + ellipsis
	}

	return text
}
