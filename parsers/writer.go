package parsers

import "strings"

// Serialize renders rows as normalized CSV under the given header list.
// Every field is double-quoted with internal quotes doubled, so the output
// is stable regardless of commas or quotes in the data and round-trips
// through Parse. Headers missing from a record serialize as empty fields.
func Serialize(headers []string, rows []Record) string {
	var b strings.Builder
	writeLine(&b, headers)

	values := make([]string, len(headers))
	for _, row := range rows {
		for i, header := range headers {
			values[i] = row[header]
		}
		writeLine(&b, values)
	}

	return b.String()
}

func writeLine(b *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
