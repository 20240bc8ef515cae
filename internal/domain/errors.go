package domain

import (
	"errors"
	"fmt"
)

// NotFoundError marks a resource the caller asked for that does not exist
// (or is not owned by the requesting partner).
type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// ValidationError reports bad caller input detected before any network call.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	switch {
	case e.Msg != "" && e.Field != "":
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Field != "":
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// UpstreamError carries a failure reported by the external store: the HTTP
// status it answered with and the message field of its error payload.
type UpstreamError struct {
	Status  int
	Message string
}

func (e UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("store returned status %d", e.Status)
	}
	return fmt.Sprintf("store returned status %d: %s", e.Status, e.Message)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsUpstream(err error) bool {
	var target UpstreamError
	return errors.As(err, &target)
}
