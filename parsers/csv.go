package parsers

import (
	"fmt"
	"io"
	"strings"
)

// Record represents a single CSV row as a map of header name to trimmed value
type Record map[string]string

// SplitLine splits one CSV line into raw fields without using the csv library.
// A double quote toggles quoted mode unless it is doubled while already inside
// quotes, in which case a single literal quote is emitted. Commas split fields
// only outside quoted mode. An unterminated quote is not an error: the rest of
// the line becomes part of the current field.
func SplitLine(line string) []string {
	var fields []string
	var field strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				// Escaped quote: emit one literal quote, skip the pair
				field.WriteRune('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ',':
			if inQuotes {
				field.WriteRune(',')
			} else {
				fields = append(fields, field.String())
				field.Reset()
			}
		default:
			field.WriteRune(runes[i])
		}
	}

	// Whatever is left in the buffer is the last field
	fields = append(fields, field.String())

	return fields
}

// Parse tokenizes raw CSV text into records keyed by the header row.
//
// Lines that are blank after trimming are discarded before parsing; the first
// surviving line is the header row. Values are trimmed. Header-to-value
// mapping is positional: a short row pads missing headers with the empty
// string. Rows whose every field is empty after trimming are dropped.
func Parse(text string) []Record {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil
	}

	headers := SplitLine(lines[0])
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	var records []Record
	for _, line := range lines[1:] {
		fields := SplitLine(line)

		// A row of nothing but commas and whitespace carries no data
		empty := true
		for _, f := range fields {
			if strings.TrimSpace(f) != "" {
				empty = false
				break
			}
		}
		if empty {
			continue
		}

		record := make(Record, len(headers))
		for i, header := range headers {
			if i < len(fields) {
				record[header] = strings.TrimSpace(fields[i])
			} else {
				record[header] = "" // Missing column value
			}
		}
		records = append(records, record)
	}

	return records
}

// ParseReader reads everything from r and parses it with Parse.
func ParseReader(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv input: %w", err)
	}
	return Parse(string(data)), nil
}
