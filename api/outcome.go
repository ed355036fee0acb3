package api

import (
	"encoding/json"
	"fmt"
)

// OutcomeKind tags an Outcome. Failures are not an Outcome kind: they are
// returned as a *FetchError.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeRedirect
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeRedirect:
		return "redirect"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is the classified result of a SafeFetch call. It is built fresh per
// call and never stored.
type Outcome struct {
	Kind         OutcomeKind
	StatusCode   int
	Payload      json.RawMessage
	RedirectPath string
}

// IsRedirect reports whether the outcome asks the caller to navigate away.
func (o *Outcome) IsRedirect() bool {
	return o != nil && o.Kind == OutcomeRedirect
}

// Decode unmarshals a success payload into v.
func (o *Outcome) Decode(v interface{}) error {
	if o == nil || o.Kind != OutcomeSuccess {
		return fmt.Errorf("cannot decode %v outcome", o.kindOrNil())
	}
	if err := json.Unmarshal(o.Payload, v); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}
	return nil
}

func (o *Outcome) kindOrNil() interface{} {
	if o == nil {
		return "nil"
	}
	return o.Kind
}

// Response is a typed view over an Outcome: either Data is set, or Redirect
// holds the path to navigate to.
type Response[T any] struct {
	Data     T
	Redirect string
}

// Redirected reports whether the response carries a redirect instead of data.
func (r *Response[T]) Redirected() bool {
	return r != nil && r.Redirect != ""
}

// DecodeResponse turns an Outcome into a typed Response.
func DecodeResponse[T any](o *Outcome) (*Response[T], error) {
	if o.IsRedirect() {
		return &Response[T]{Redirect: o.RedirectPath}, nil
	}
	var resp Response[T]
	if err := o.Decode(&resp.Data); err != nil {
		return nil, err
	}
	return &resp, nil
}
