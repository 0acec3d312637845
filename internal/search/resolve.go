package search

import (
	"context"
	"errors"
	"strings"

	"github.com/yildizm/breedview/internal/breed"
)

// MaxImages is how many locators a successful lookup keeps.
const MaxImages = 5

// Resolve looks query up and maps the outcome onto a Display. A blank query
// resets to Idle without calling lookup. Failures never escape: they become
// a Failed display.
func Resolve(ctx context.Context, lookup breed.Lookup, query string, limit int) Display {
	if strings.TrimSpace(query) == "" {
		return Idle()
	}
	if limit <= 0 {
		limit = MaxImages
	}

	locators, err := lookup.Images(ctx, query)
	if err != nil {
		return Failed(failureMessage(err))
	}

	if len(locators) > limit {
		locators = locators[:limit]
	}
	return Results(locators)
}

func failureMessage(err error) string {
	var le *breed.LookupError
	if errors.As(err, &le) {
		return le.Display()
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "lookup failed"
}
