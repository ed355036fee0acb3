package api

import (
	"errors"
	"fmt"
	"strings"
)

// FailureKind classifies a SafeFetch failure.
type FailureKind int

const (
	FailureNetwork FailureKind = iota
	FailureParse
	FailureHTTP
)

func (k FailureKind) String() string {
	switch k {
	case FailureNetwork:
		return "network"
	case FailureParse:
		return "parse"
	case FailureHTTP:
		return "http"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

// FetchError is returned by SafeFetch once every attempt has failed. It
// describes the last attempt.
type FetchError struct {
	Kind       FailureKind
	Endpoint   string
	StatusCode int
	Message    string
	Body       map[string]interface{}
	Attempts   int
	Cause      error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case FailureParse:
		return "Failed to parse JSON response"
	case FailureHTTP:
		return strings.TrimSpace(fmt.Sprintf("Unexpected API response: %d %s", e.StatusCode, e.Message))
	default:
		if e.Cause != nil {
			return fmt.Sprintf("request to %s failed: %v", e.Endpoint, e.Cause)
		}
		return fmt.Sprintf("request to %s failed", e.Endpoint)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// BodyString returns a string field from the failed response body, if any.
func (e *FetchError) BodyString(key string) string {
	if e == nil || e.Body == nil {
		return ""
	}
	s, _ := e.Body[key].(string)
	return s
}

// AsFetchError unwraps err into a *FetchError.
func AsFetchError(err error) (*FetchError, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
