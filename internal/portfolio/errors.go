package portfolio

import (
	"fmt"
	"strings"
)

// NotFoundError is returned when a lookup by key has no match.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Key)
}

// ContentError lists every shape problem found by Validate.
type ContentError struct {
	Problems []string
}

func (e *ContentError) Error() string {
	return "content validation failed:\n  " + strings.Join(e.Problems, "\n  ")
}
