package htmlgen

import (
	"errors"
	"strconv"
)

var (
	ErrNoBody           = errors.New("no body")
	ErrRobotsDisallowed = errors.New("robots.txt does not allow access")
	ErrNoFetcher        = errors.New("no fetcher")
)

// FetchError a required page could not be fetched.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	msg := "fetch " + e.URL
	if e.StatusCode != 0 {
		msg += ": unexpected status " + strconv.Itoa(e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError a selector that must match found nothing.
type ParseError struct {
	URL      string
	Selector string
}

func (e *ParseError) Error() string {
	return "parse " + e.URL + ": nothing matches " + strconv.Quote(e.Selector)
}

// ExtractionError a node required to extract a value is missing.
type ExtractionError struct {
	URL      string
	Selector string
	Reason   string
}

func (e *ExtractionError) Error() string {
	return "extract " + e.URL + " " + strconv.Quote(e.Selector) + ": " + e.Reason
}
