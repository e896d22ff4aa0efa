package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns lists the dynamic routes, most specific first.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/articles/\d+$`), Template: "/articles/{id}"},
	{Pattern: regexp.MustCompile(`^/shopping-list/page/[^/]+$`), Template: "/shopping-list/page/{page}"},
	{Pattern: regexp.MustCompile(`^/shopping-list/\d+$`), Template: "/shopping-list/{id}"},
}

// NormalizePath maps dynamic URL paths onto their route template so metric
// labels stay bounded. Unknown paths are returned unchanged.
//
// Examples:
//
//	NormalizePath("/articles/123")          // "/articles/{id}"
//	NormalizePath("/shopping-list/page/2")  // "/shopping-list/page/{page}"
//	NormalizePath("/shopping-list/search")  // "/shopping-list/search"
//	NormalizePath("/articles/123/?x=1")     // "/articles/{id}"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}
	return path
}
