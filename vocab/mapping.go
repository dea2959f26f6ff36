package vocab

import "strings"

// The source spreadsheets use a closed vocabulary of single-letter category
// codes. Every mapping function below is total: an unmapped or absent code
// normalizes to the empty sentinel and processing continues. Bad codes are a
// data-quality concern of the spreadsheets, not a failure of the run.

// Empty is the sentinel for "no value" after cleaning.
const Empty = ""

// CleanText normalizes a raw cell value. Placeholder dashes and
// blank-after-trim values collapse to the empty sentinel.
func CleanText(s string) string {
	t := strings.TrimSpace(s)
	if t == "" || t == "—" || t == "-" {
		return Empty
	}
	return t
}

// MapVoice maps a pada code to the full voice name, case-insensitively.
func MapVoice(code string) string {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "p":
		return "parasmaipada"
	case "a":
		return "atmanepada"
	case "u":
		return "ubhayapada"
	}
	return Empty
}

// MapGender maps a linga code to the full gender name. Exact match only.
func MapGender(code string) string {
	switch strings.TrimSpace(code) {
	case "m":
		return "masculine"
	case "f":
		return "feminine"
	case "n":
		return "neuter"
	}
	return Empty
}

// DetermineSubtype classifies a substantive by its linga column: the gender
// letters mark nouns, while "a" and "p" mark adjectives and pronouns.
func DetermineSubtype(code string) string {
	switch strings.TrimSpace(code) {
	case "a":
		return "adjective"
	case "p":
		return "pronoun"
	case "m", "f", "n":
		return "noun"
	}
	return Empty
}
