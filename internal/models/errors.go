package models

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed or out-of-domain input.
type ValidationError struct {
	Field string
	Msg   string
}

func (e ValidationError) Error() string {
	if e.Field != "" && e.Msg != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

// AttributionError reports a voucher that could not be resolved to a seller:
// either the code is unknown or it belongs to a different company.
type AttributionError struct {
	Code string
	Msg  string
}

func (e AttributionError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("voucher %q: %s", e.Code, e.Msg)
	}
	return e.Msg
}

type NotFoundError struct {
	Resource string
	ID       string
}

func (e NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// InvalidTransitionError reports an attempt to move a booking out of a
// terminal state.
type InvalidTransitionError struct {
	BookingID string
	From      BookingStatus
	To        BookingStatus
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("booking %s: cannot move from %s to %s", e.BookingID, e.From, e.To)
}

type UnauthorizedError struct {
	Msg string
}

func (e UnauthorizedError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "unauthorized"
}

// ConflictError reports a uniqueness violation (duplicate slug, duplicate
// voucher code) or a delete blocked by dependent records.
type ConflictError struct {
	Resource string
	Msg      string
}

func (e ConflictError) Error() string {
	if e.Resource != "" && e.Msg != "" {
		return fmt.Sprintf("%s: %s", e.Resource, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	return "conflict"
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsAttribution(err error) bool {
	var target AttributionError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsInvalidTransition(err error) bool {
	var target InvalidTransitionError
	return errors.As(err, &target)
}

func IsUnauthorized(err error) bool {
	var target UnauthorizedError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}
