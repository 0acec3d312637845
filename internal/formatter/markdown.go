package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/breedview/internal/search"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct{}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) Format(result *Result) ([]byte, error) {
	var b strings.Builder

	title := result.Query
	if strings.TrimSpace(title) == "" {
		title = "(no breed)"
	}
	b.WriteString(fmt.Sprintf("# %s\n\n", title))
	b.WriteString(fmt.Sprintf("Fetched: %s\n\n", result.FetchedAt.Format("2006-01-02 15:04:05")))

	switch result.Status {
	case search.KindResults.String():
		if len(result.Images) == 0 {
			b.WriteString("_No images listed for this breed._\n")
		}
		for i, image := range result.Images {
			b.WriteString(fmt.Sprintf("![%s %d](%s)\n", result.Query, i+1, image))
		}
	case search.KindFailed.String():
		b.WriteString(fmt.Sprintf("> **Error:** %s\n", result.Error))
	default:
		b.WriteString("_Type a breed name to see its photos._\n")
	}

	return []byte(b.String()), nil
}
