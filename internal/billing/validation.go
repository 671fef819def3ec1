// internal/billing/validation.go
package billing

import "strings"

// ValidationResult is the Valid/Invalid tagged result every seat validator
// returns. Expected business-rule rejections travel through it; callers
// branch on IsValid instead of catching errors.
type ValidationResult[T any] struct {
	value  T
	valid  bool
	errors []string
}

// Valid wraps a value that passed validation.
func Valid[T any](value T) ValidationResult[T] {
	return ValidationResult[T]{value: value, valid: true}
}

// Invalid wraps a rejected value with one or more error messages.
func Invalid[T any](value T, messages ...string) ValidationResult[T] {
	return ValidationResult[T]{value: value, errors: messages}
}

// IsValid reports whether the value passed validation.
func (r ValidationResult[T]) IsValid() bool {
	return r.valid
}

// Value returns the validated (or rejected) value.
func (r ValidationResult[T]) Value() T {
	return r.value
}

// Errors returns the rejection messages; empty for a valid result.
func (r ValidationResult[T]) Errors() []string {
	return r.errors
}

// Error flattens the rejection messages into a single human-readable
// string; empty for a valid result.
func (r ValidationResult[T]) Error() string {
	return strings.Join(r.errors, " ")
}
