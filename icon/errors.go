package icon

import (
	"errors"
	"fmt"
)

// ErrMalformedSource is matched by every MalformedSourceError.
var ErrMalformedSource = errors.New("malformed icon source")

// MalformedSourceError reports an icon-set document that lacks a usable
// icon key collection.
type MalformedSourceError struct {
	Prefix string
	Reason string
}

func (e *MalformedSourceError) Error() string {
	if e.Prefix == "" {
		return fmt.Sprintf("malformed icon source: %s", e.Reason)
	}
	return fmt.Sprintf("malformed icon source %q: %s", e.Prefix, e.Reason)
}

func (e *MalformedSourceError) Is(target error) bool {
	return target == ErrMalformedSource
}
