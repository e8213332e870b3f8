// Package apperr defines the error conditions callers of the daily log
// service can branch on with errors.Is and errors.As.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound means no daily log exists for the requested date.
	ErrNotFound = errors.New("not found")
	// ErrInvalidSection means a section key outside the canonical set was used.
	ErrInvalidSection = errors.New("invalid section")
	// ErrMalformedDocument means a canonical section header is missing from a log.
	ErrMalformedDocument = errors.New("malformed document")
	// ErrInvalidText means bullet text or a tag spans more than one line.
	ErrInvalidText = errors.New("invalid text")
)

// SectionError reports an unknown section key together with the keys that
// would have been accepted.
type SectionError struct {
	Key   string
	Valid []string
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("invalid section '%s'. Use: %s", e.Key, strings.Join(e.Valid, ", "))
}

func (e *SectionError) Is(target error) bool {
	return target == ErrInvalidSection
}
