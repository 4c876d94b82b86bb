// Package apperr holds the error types shared by repositories, domain
// services and HTTP handlers. Handlers map each type to a status code.
package apperr

import (
	"errors"
	"fmt"
)

// AuthenticationError means the caller's credential is missing or invalid.
type AuthenticationError struct {
	Reason string
}

func (e *AuthenticationError) Error() string {
	return "authentication failed: " + e.Reason
}

// AuthorizationError means the caller does not own the resource.
type AuthorizationError struct {
	Entity string
	ID     interface{}
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("not allowed to modify %s %v", e.Entity, e.ID)
}

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type NotFoundError struct {
	Entity string
	ID     interface{}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %v not found", e.Entity, e.ID)
}

// ConflictError covers duplicates and insufficient stock.
type ConflictError struct {
	Entity  string
	Field   string
	Value   interface{}
	Message string
}

func (e *ConflictError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s with %s %v already exists", e.Entity, e.Field, e.Value)
}

// InsufficientStock builds the conflict raised when a card cannot cover a request.
func InsufficientStock(cardID int64, available, requested int) *ConflictError {
	return &ConflictError{
		Entity:  "card",
		Field:   "quantity",
		Value:   cardID,
		Message: fmt.Sprintf("insufficient quantity for card %d (available %d, requested %d)", cardID, available, requested),
	}
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsAuthorization(err error) bool {
	var target *AuthorizationError
	return errors.As(err, &target)
}

func IsAuthentication(err error) bool {
	var target *AuthenticationError
	return errors.As(err, &target)
}
