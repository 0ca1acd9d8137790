package application

import (
	"errors"
	"fmt"
	"regexp"
)

// Sentinel errors for common conditions
var (
	ErrInvalidFileKey = errors.New("invalid file key")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidFileKey
}

// File keys are opaque URL-safe identifiers handed out by the design
// service (e.g. the segment after /design/ in a share URL).
var fileKeyRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateFileKey checks that a file key is present and URL-safe.
func ValidateFileKey(key string) error {
	if key == "" {
		return &ValidationError{Field: "fileKey", Message: "file key is required"}
	}
	if !fileKeyRegex.MatchString(key) {
		return &ValidationError{Field: "fileKey", Message: fmt.Sprintf("not a valid file key: %s", key)}
	}
	return nil
}
