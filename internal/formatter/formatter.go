package formatter

import (
	"fmt"
	"time"

	"github.com/yildizm/breedview/internal/search"
)

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(result *Result) ([]byte, error)
}

// Result is one resolved lookup, ready to print
type Result struct {
	Query     string    `json:"query"`
	Status    string    `json:"status"`
	Images    []string  `json:"images"`
	Error     string    `json:"error,omitempty"`
	FetchedAt time.Time `json:"fetched_at"`
}

// NewResult captures a display for output
func NewResult(query string, d search.Display) *Result {
	images := d.Locators()
	if images == nil {
		images = []string{}
	}
	return &Result{
		Query:     query,
		Status:    d.Kind().String(),
		Images:    images,
		Error:     d.Message(),
		FetchedAt: time.Now(),
	}
}

// New returns the formatter registered for format
func New(format string, color bool) (Formatter, error) {
	switch format {
	case "", "text":
		return NewTerminal(color), nil
	case "json":
		return NewJSON(), nil
	case "markdown":
		return NewMarkdown(), nil
	case "csv":
		return NewCSV(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
