package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/breedview/internal/search"
	"github.com/yildizm/go-termfmt"
)

// terminalFormatter formats output as plain text for terminal display using go-termfmt
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter with optional color support
func NewTerminal(color bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = true
	return &terminalFormatter{opts: opts}
}

// NewTerminalWithOptions allows callers to turn emoji off as well
func NewTerminalWithOptions(color, emoji bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = emoji
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) Format(result *Result) ([]byte, error) {
	var b strings.Builder

	switch result.Status {
	case search.KindResults.String():
		f.writeImages(&b, result)
	case search.KindFailed.String():
		b.WriteString(fmt.Sprintf("%s %s\n", termfmt.GetEmoji("error", f.opts), result.Error))
	default:
		b.WriteString(fmt.Sprintf("%s Type a breed name to see its photos\n", termfmt.GetEmoji("info", f.opts)))
	}

	return []byte(b.String()), nil
}

func (f *terminalFormatter) writeImages(b *strings.Builder, result *Result) {
	b.WriteString(fmt.Sprintf("%s %s (%d)\n", termfmt.GetEmoji("pattern", f.opts), result.Query, len(result.Images)))

	if len(result.Images) == 0 {
		b.WriteString("No images listed for this breed\n")
		return
	}

	items := make([]termfmt.TreeItem, 0, len(result.Images))
	for i, image := range result.Images {
		items = append(items, termfmt.TreeItem{
			Label: fmt.Sprintf("%d", i+1),
			Value: image,
			Last:  i == len(result.Images)-1,
		})
	}
	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts))
	b.WriteString("\n")
}
