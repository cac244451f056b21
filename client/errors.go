package client

import (
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
)

// Common errors returned by the client.
var (
	// ErrRetryExhausted is returned when all retry attempts are exhausted.
	ErrRetryExhausted = errors.New("retry attempts exhausted")

	// ErrContextCancelled is returned when the context is cancelled during retry.
	ErrContextCancelled = errors.New("context cancelled")
)

// ErrorClass categorizes API failures for retry decisions
type ErrorClass string

const (
	// ErrorClassQuota is an authorization/quota failure (HTTP 403); the
	// active key is exhausted and the pool should advance.
	ErrorClassQuota ErrorClass = "quota"

	// ErrorClassTransient covers server errors (5xx), rate limiting (429)
	// and network failures; retried with backoff.
	ErrorClassTransient ErrorClass = "transient"

	// ErrorClassPermanent covers the remaining client errors (4xx);
	// surfaced to the caller immediately.
	ErrorClassPermanent ErrorClass = "permanent"
)

// APIError represents a Data API error with its classification.
type APIError struct {
	Resource   Resource
	StatusCode int
	Class      ErrorClass
	Err        error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("youtube %s %s error (status %d): %v",
		e.Resource, e.Class, e.StatusCode, e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Classify derives the error class from an API call failure. Anything that
// is not an HTTP-level error from the API is treated as a network failure
// and therefore transient.
func Classify(err error) ErrorClass {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch {
		case gerr.Code == 403:
			return ErrorClassQuota
		case gerr.Code == 429 || gerr.Code >= 500:
			return ErrorClassTransient
		case gerr.Code >= 400:
			return ErrorClassPermanent
		}
	}

	return ErrorClassTransient
}

// statusCode extracts the HTTP status from an API error, 0 when absent.
func statusCode(err error) int {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code
	}
	return 0
}
