package validate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/nDmitry/rssreader/internal/entity"
)

// URL checks that candidate is an absolute URL that is not among known.
// It fails with entity.ErrNonvalidURL or entity.ErrDuplication.
func URL(candidate string, known []string) error {
	candidate = strings.TrimSpace(candidate)

	if candidate == "" {
		return fmt.Errorf("empty string: %w", entity.ErrNonvalidURL)
	}

	// IsURL alone accepts scheme-less hosts, IsRequestURL alone accepts "http://"
	if !govalidator.IsRequestURL(candidate) || !govalidator.IsURL(candidate) {
		return fmt.Errorf("%q: %w", candidate, entity.ErrNonvalidURL)
	}

	if slices.Contains(known, candidate) {
		return fmt.Errorf("%q: %w", candidate, entity.ErrDuplication)
	}

	return nil
}
