// Package parsers implements the CSV reading and writing used by the
// vocabulary conversion and migration passes, plus an NDJSON writer for
// exports.
//
// The spreadsheet exports this project consumes are not RFC 4180 clean:
// cells may contain stray whitespace, placeholder dashes, and doubled-quote
// escapes, and whole rows are frequently blank. The parser here is therefore
// deliberately lax: a double quote toggles quoted mode, a doubled quote
// inside quoted mode emits one literal quote, a comma splits fields only
// outside quoted mode, and an unterminated quote simply swallows the rest of
// the line into the current field. Parsing never fails.
//
// The writer produces the normalized intermediate artifact: every field is
// double-quoted and internal quotes are doubled, so the output round-trips
// through Parse.
//
// Example:
//
//	records := parsers.Parse(rawText)
//	for _, record := range records {
//	    // record is a map[string]string keyed by header name
//	    fmt.Println(record["धातु"])
//	}
package parsers
