package formatter

import "encoding/json"

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

func (f *jsonFormatter) Format(result *Result) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
