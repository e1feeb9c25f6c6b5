package entity

import "errors"

var (
	// ErrNonvalidURL is returned when a submitted string is not an absolute URL
	ErrNonvalidURL = errors.New("nonvalid URL")

	// ErrDuplication is returned when a feed with the same URL is already known
	ErrDuplication = errors.New("feed already exists")

	// ErrParse is returned when the fetched content is not feed markup
	ErrParse = errors.New("resource does not contain valid RSS")

	// ErrNetwork is returned when the proxy request fails or returns no content
	ErrNetwork = errors.New("network error")
)

// ErrorKind is the state-level classification of a submission failure.
type ErrorKind string

const (
	ErrorNone        ErrorKind = ""
	ErrorNonvalidURL ErrorKind = "nonvalid_url"
	ErrorDuplication ErrorKind = "duplication"
	ErrorParse       ErrorKind = "parse"
	ErrorNetwork     ErrorKind = "network"
	ErrorUnknown     ErrorKind = "unknown"
)

// KindOf classifies err, falling back to ErrorUnknown
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorNone
	case errors.Is(err, ErrNonvalidURL):
		return ErrorNonvalidURL
	case errors.Is(err, ErrDuplication):
		return ErrorDuplication
	case errors.Is(err, ErrParse):
		return ErrorParse
	case errors.Is(err, ErrNetwork):
		return ErrorNetwork
	default:
		return ErrorUnknown
	}
}

// MessageKey returns the localization key shown in the feedback banner
func (k ErrorKind) MessageKey() string {
	switch k {
	case ErrorNone:
		return ""
	case ErrorNonvalidURL:
		return "validation.invalid.nonvalidURL"
	case ErrorDuplication:
		return "validation.invalid.duplicate"
	case ErrorParse:
		return "validation.invalid.noRSS"
	case ErrorNetwork:
		return "validation.invalid.networkError"
	default:
		return "validation.invalid.unknown"
	}
}

// MarksInput reports whether the error is about the input itself, as opposed to
// what was found behind it.
func (k ErrorKind) MarksInput() bool {
	return k != ErrorNone && k != ErrorNetwork && k != ErrorParse
}
