package checkout

import (
	"errors"
	"fmt"
)

// ErrEmptyCart: submission attempted with no lines. Surfaced before any
// network call is made.
var ErrEmptyCart = errors.New("Your cart is empty.")

// ErrSubmitInFlight: a second submission for the same session while one
// is still pending.
var ErrSubmitInFlight = errors.New("An order is already being placed.")

// ErrTermsNotAccepted: the terms checkbox was left unchecked.
var ErrTermsNotAccepted = errors.New("You must accept the terms to place an order.")

// TransportError wraps a network failure or a non-success reply. The
// cart is left untouched so the user can retry without re-entering
// items.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("order submission failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Rejected reports that the endpoint refused the order outright, e.g.
// server-side validation.
type Rejected struct {
	Message string
}

func (e *Rejected) Error() string {
	if e.Message == "" {
		return "Something went wrong. Please try again."
	}
	return e.Message
}
