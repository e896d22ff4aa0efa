// Package article provides the blogful_articles record service.
package article

import (
	"fmt"

	"blogful/internal/domain/entity"
)

// ErrArticleNotFound is returned by callers that need absence as an error,
// such as the HTTP layer. The service itself reports absence as nil.
var ErrArticleNotFound = fmt.Errorf("article: %w", entity.ErrNotFound)
