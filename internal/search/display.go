// Package search turns a typed query into what the results area shows.
package search

// Kind identifies which variant a Display holds
type Kind int

const (
	// KindIdle means nothing has been searched: show the placeholder
	KindIdle Kind = iota
	// KindResults carries image locators from a successful lookup
	KindResults
	// KindFailed carries a human-readable failure message
	KindFailed
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindIdle:
		return "idle"
	case KindResults:
		return "results"
	case KindFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Display is the single source of truth for the results area. Only the
// fields that belong to its Kind are ever set.
type Display struct {
	kind     Kind
	locators []string
	message  string
}

// Idle returns the initial display
func Idle() Display {
	return Display{kind: KindIdle}
}

// Results returns a display showing locators. The slice is copied.
func Results(locators []string) Display {
	out := make([]string, len(locators))
	copy(out, locators)
	return Display{kind: KindResults, locators: out}
}

// Failed returns a display showing message
func Failed(message string) Display {
	return Display{kind: KindFailed, message: message}
}

// Kind returns the variant
func (d Display) Kind() Kind {
	return d.kind
}

// Locators returns the image URLs, empty unless Kind is KindResults
func (d Display) Locators() []string {
	if d.kind != KindResults {
		return nil
	}
	out := make([]string, len(d.locators))
	copy(out, d.locators)
	return out
}

// Message returns the failure text, empty unless Kind is KindFailed
func (d Display) Message() string {
	if d.kind != KindFailed {
		return ""
	}
	return d.message
}
