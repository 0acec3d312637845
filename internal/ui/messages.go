package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yildizm/breedview/internal/breed"
	"github.com/yildizm/breedview/internal/config"
	"github.com/yildizm/breedview/internal/search"
)

// querySettledMsg arrives once typing has been quiet for the debounce delay
type querySettledMsg struct {
	query string
}

// lookupDoneMsg carries a resolved display tagged with its sequence number
type lookupDoneMsg struct {
	seq     uint64
	query   string
	display search.Display
	elapsed time.Duration
}

// configReloadedMsg is sent when the watched config file changes
type configReloadedMsg struct {
	config *config.Config
	err    error
}

// CreateLookupCommand creates a tea command that resolves query off the
// Update loop
func CreateLookupCommand(lookup breed.Lookup, seq uint64, query string, limit int, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		start := time.Now()
		display := search.Resolve(ctx, lookup, query, limit)

		return lookupDoneMsg{
			seq:     seq,
			query:   query,
			display: display,
			elapsed: time.Since(start),
		}
	}
}
