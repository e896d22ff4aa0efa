package pathutil_test

import (
	"fmt"

	"blogful/internal/handler/http/pathutil"
)

func ExampleNormalizePath() {
	fmt.Println(pathutil.NormalizePath("/articles/123"))
	fmt.Println(pathutil.NormalizePath("/shopping-list/7"))
	fmt.Println(pathutil.NormalizePath("/health"))

	// Output:
	// /articles/{id}
	// /shopping-list/{id}
	// /health
}
