package parsers

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteNDJSON writes rows as newline-delimited JSON objects, one record per
// line, under the given header order. Used by the export surface as an
// alternative to the normalized CSV shape.
func WriteNDJSON(w io.Writer, headers []string, rows []Record) error {
	enc := json.NewEncoder(w)
	for _, row := range rows {
		obj := make(map[string]string, len(headers))
		for _, header := range headers {
			obj[header] = row[header]
		}
		if err := enc.Encode(obj); err != nil {
			return fmt.Errorf("encode ndjson record: %w", err)
		}
	}
	return nil
}
