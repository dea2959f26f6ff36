package vocab

import (
	"strconv"

	"sanskrit-vocab-import/parsers"
)

// Builder maps one source record plus its 1-based position to a normalized
// row. ok is false when the record has no headword and must be discarded.
type Builder func(record parsers.Record, position int) (parsers.Record, bool)

// BuilderFor returns the row builder for a word type, or nil if the word
// type is unknown.
func BuilderFor(wordType string) Builder {
	switch wordType {
	case TypeVerb:
		return BuildVerbRow
	case TypeSubstantive:
		return BuildSubstantiveRow
	case TypeIndeclinable:
		return BuildIndeclinableRow
	}
	return nil
}

// BuildRows runs every source record through the word type's builder.
// Positions are assigned 1-based over ALL parsed records, including records
// later discarded for an empty headword, so the persisted order_index
// sequence keeps the source spreadsheet's row positions and may have gaps.
func BuildRows(wordType string, records []parsers.Record) ([]parsers.Record, int) {
	build := BuilderFor(wordType)
	if build == nil {
		return nil, 0
	}

	var rows []parsers.Record
	skipped := 0
	for i, record := range records {
		row, ok := build(record, i+1)
		if !ok {
			skipped++
			continue
		}
		rows = append(rows, row)
	}

	return rows, skipped
}

// BuildVerbRow maps one verb spreadsheet record to the normalized shape.
// The dhatu column doubles as the headword and the root.
func BuildVerbRow(record parsers.Record, position int) (parsers.Record, bool) {
	dhatu := CleanText(record[srcDhatu])
	if dhatu == Empty {
		return nil, false
	}

	return parsers.Record{
		"word_type":       TypeVerb,
		"word_subtype":    Empty,
		"word_devanagari": dhatu,
		"root_devanagari": dhatu,
		"verb_class":      CleanText(record[srcGana]),
		"voice":           MapVoice(CleanText(record[srcPada])),
		"present_3s":      CleanText(record[srcLat]),
		"imperfect_3s":    CleanText(record[srcLang]),
		"imperative_3s":   CleanText(record[srcLot]),
		"optative_3s":     CleanText(record[srcVidhiling]),
		"future_3s":       CleanText(record[srcLrt]),
		"passive_3s":      CleanText(record[srcKarmani]),
		"causative_3s":    CleanText(record[srcNijanta]),
		"absolutive":      CleanText(record[srcKtva]),
		"infinitive":      CleanText(record[srcTumun]),
		"past_participle": CleanText(record[srcKta]),
		"meaning_en":      CleanText(record[srcEnglish]),
		"meaning_hi":      CleanText(record[srcHindi]),
		"notes":           CleanText(record[srcTippani]),
		"is_published":    "true",
		"order_index":     strconv.Itoa(position),
	}, true
}

// BuildSubstantiveRow maps one substantive spreadsheet record. The linga
// column drives both the gender and the noun/adjective/pronoun subtype.
func BuildSubstantiveRow(record parsers.Record, position int) (parsers.Record, bool) {
	shabda := CleanText(record[srcShabda])
	if shabda == Empty {
		return nil, false
	}

	linga := CleanText(record[srcLinga])

	return parsers.Record{
		"word_type":           TypeSubstantive,
		"word_subtype":        DetermineSubtype(linga),
		"word_devanagari":     shabda,
		"stem_devanagari":     CleanText(record[srcPratipadika]),
		"gender":              MapGender(linga),
		"paradigm_devanagari": CleanText(record[srcShabdarupa]),
		"meaning_en":          CleanText(record[srcEnglish]),
		"meaning_hi":          CleanText(record[srcHindi]),
		"usage_example":       CleanText(record[srcPrayoga]),
		"notes":               CleanText(record[srcTippani]),
		"is_published":        "true",
		"order_index":         strconv.Itoa(position),
	}, true
}

// BuildIndeclinableRow maps one indeclinable spreadsheet record.
func BuildIndeclinableRow(record parsers.Record, position int) (parsers.Record, bool) {
	avyaya := CleanText(record[srcAvyaya])
	if avyaya == Empty {
		return nil, false
	}

	return parsers.Record{
		"word_type":        TypeIndeclinable,
		"word_subtype":     Empty,
		"word_devanagari":  avyaya,
		"grammatical_case": CleanText(record[srcVibhakti]),
		"case_usage":       CleanText(record[srcUpayoga]),
		"meaning_en":       CleanText(record[srcEnglish]),
		"meaning_hi":       CleanText(record[srcHindi]),
		"usage_example":    CleanText(record[srcPrayoga]),
		"notes":            CleanText(record[srcTippani]),
		"is_published":     "true",
		"order_index":      strconv.Itoa(position),
	}, true
}
