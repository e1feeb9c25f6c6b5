// Package i18n holds the interface strings of the reader in every supported language.
package i18n

import (
	"fmt"
	"slices"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Bundle translates message keys
type Bundle struct {
	catalog *catalog.Builder
	tags    []language.Tag
	codes   []string
	matcher language.Matcher
}

// New builds a bundle from the embedded resources
func New() (*Bundle, error) {
	// "en" first so that it wins unknown-language matches
	codes := []string{"en", "ru"}

	b := &Bundle{
		catalog: catalog.NewBuilder(catalog.Fallback(language.English)),
		codes:   codes,
	}

	for _, code := range codes {
		tag, err := language.Parse(code)

		if err != nil {
			return nil, fmt.Errorf("could not parse language %s: %w", code, err)
		}

		for key, msg := range resources[code] {
			if err := b.catalog.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("could not add %s message %s: %w", code, key, err)
			}
		}

		b.tags = append(b.tags, tag)
	}

	b.matcher = language.NewMatcher(b.tags)

	return b, nil
}

// Supported reports whether lng is one of the bundled languages
func (b *Bundle) Supported(lng string) bool {
	return slices.Contains(b.codes, lng)
}

// Languages lists the bundled language codes
func (b *Bundle) Languages() []string {
	return slices.Clone(b.codes)
}

// T translates key into lng. Unknown keys are returned as is.
func (b *Bundle) T(lng, key string) string {
	return b.printer(lng).Sprintf(key)
}

func (b *Bundle) printer(lng string) *message.Printer {
	tag := b.tags[0]

	if requested, err := language.Parse(lng); err == nil {
		_, idx, _ := b.matcher.Match(requested)
		tag = b.tags[idx]
	}

	return message.NewPrinter(tag, message.Catalog(b.catalog))
}
