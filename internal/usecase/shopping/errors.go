// Package shopping provides the shopping_list record service and the
// read-only reports built on the same storage handle.
package shopping

import (
	"fmt"

	"blogful/internal/domain/entity"
)

// ErrItemNotFound is returned by callers that need absence as an error.
// The service itself reports absence as nil.
var ErrItemNotFound = fmt.Errorf("shopping item: %w", entity.ErrNotFound)
