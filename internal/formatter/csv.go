package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// csvFormatter formats image locators as CSV, one row per image
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) Format(result *Result) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	headers := []string{"Query", "Status", "Index", "Image URL", "Error"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	if len(result.Images) == 0 {
		if err := writer.Write([]string{result.Query, result.Status, "", "", result.Error}); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	for i, image := range result.Images {
		record := []string{result.Query, result.Status, strconv.Itoa(i + 1), image, ""}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return b.Bytes(), nil
}
