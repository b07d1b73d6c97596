// Package apperr defines sentinel errors shared across the application.
package apperr

import "errors"

var (
	ErrSpinInProgress = errors.New("spin in progress")
	ErrEmptyWheel     = errors.New("wheel has no entries")
)
