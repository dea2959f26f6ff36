package vocab

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"sanskrit-vocab-import/parsers"
)

// Entry is the persisted vocabulary record. One table holds all three word
// types; the type-specific columns are simply empty for the other types,
// mirroring the normalized CSV shape.
type Entry struct {
	ID             string `gorm:"primaryKey;type:text" json:"id"`
	WordType       string `gorm:"not null;index" json:"word_type"`
	WordSubtype    string `json:"word_subtype,omitempty"`
	WordDevanagari string `gorm:"not null" json:"word_devanagari"`
	Slug           string `gorm:"index" json:"slug,omitempty"`

	// Verb fields
	RootDevanagari string `json:"root_devanagari,omitempty"`
	VerbClass      string `json:"verb_class,omitempty"`
	Voice          string `json:"voice,omitempty"`
	Present3S      string `gorm:"column:present_3s" json:"present_3s,omitempty"`
	Imperfect3S    string `gorm:"column:imperfect_3s" json:"imperfect_3s,omitempty"`
	Imperative3S   string `gorm:"column:imperative_3s" json:"imperative_3s,omitempty"`
	Optative3S     string `gorm:"column:optative_3s" json:"optative_3s,omitempty"`
	Future3S       string `gorm:"column:future_3s" json:"future_3s,omitempty"`
	Passive3S      string `gorm:"column:passive_3s" json:"passive_3s,omitempty"`
	Causative3S    string `gorm:"column:causative_3s" json:"causative_3s,omitempty"`
	Absolutive     string `json:"absolutive,omitempty"`
	Infinitive     string `json:"infinitive,omitempty"`
	PastParticiple string `json:"past_participle,omitempty"`

	// Substantive fields
	StemDevanagari     string `json:"stem_devanagari,omitempty"`
	Gender             string `json:"gender,omitempty"`
	ParadigmDevanagari string `json:"paradigm_devanagari,omitempty"`

	// Indeclinable fields
	GrammaticalCase string `json:"grammatical_case,omitempty"`
	CaseUsage       string `json:"case_usage,omitempty"`

	// Shared fields
	MeaningEn    string    `gorm:"type:text" json:"meaning_en,omitempty"`
	MeaningHi    string    `gorm:"type:text" json:"meaning_hi,omitempty"`
	UsageExample string    `gorm:"type:text" json:"usage_example,omitempty"`
	Notes        string    `gorm:"type:text" json:"notes,omitempty"`
	IsPublished  bool      `gorm:"not null" json:"is_published"`
	OrderIndex   int       `gorm:"not null" json:"order_index"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}

func (Entry) TableName() string {
	return "vocabulary_entries"
}

// EntryFromRow builds a persisted Entry from one normalized CSV row.
// A fresh ID is generated per row; the slug derives from the English gloss
// since the Devanagari headword does not transliterate reliably.
func EntryFromRow(row parsers.Record) Entry {
	orderIndex := 0
	if n, err := strconv.Atoi(row["order_index"]); err == nil {
		orderIndex = n
	}

	return Entry{
		ID:             uuid.New().String(),
		WordType:       row["word_type"],
		WordSubtype:    row["word_subtype"],
		WordDevanagari: row["word_devanagari"],
		Slug:           slug.Make(row["meaning_en"]),

		RootDevanagari: row["root_devanagari"],
		VerbClass:      row["verb_class"],
		Voice:          row["voice"],
		Present3S:      row["present_3s"],
		Imperfect3S:    row["imperfect_3s"],
		Imperative3S:   row["imperative_3s"],
		Optative3S:     row["optative_3s"],
		Future3S:       row["future_3s"],
		Passive3S:      row["passive_3s"],
		Causative3S:    row["causative_3s"],
		Absolutive:     row["absolutive"],
		Infinitive:     row["infinitive"],
		PastParticiple: row["past_participle"],

		StemDevanagari:     row["stem_devanagari"],
		Gender:             row["gender"],
		ParadigmDevanagari: row["paradigm_devanagari"],

		GrammaticalCase: row["grammatical_case"],
		CaseUsage:       row["case_usage"],

		MeaningEn:    row["meaning_en"],
		MeaningHi:    row["meaning_hi"],
		UsageExample: row["usage_example"],
		Notes:        row["notes"],
		IsPublished:  strings.EqualFold(row["is_published"], "true"),
		OrderIndex:   orderIndex,
		CreatedAt:    time.Now(),
	}
}

// RowFromEntry renders a persisted Entry back into the normalized CSV shape
// for its word type. Inverse of EntryFromRow modulo generated fields.
func RowFromEntry(e Entry) parsers.Record {
	full := parsers.Record{
		"word_type":           e.WordType,
		"word_subtype":        e.WordSubtype,
		"word_devanagari":     e.WordDevanagari,
		"root_devanagari":     e.RootDevanagari,
		"verb_class":          e.VerbClass,
		"voice":               e.Voice,
		"present_3s":          e.Present3S,
		"imperfect_3s":        e.Imperfect3S,
		"imperative_3s":       e.Imperative3S,
		"optative_3s":         e.Optative3S,
		"future_3s":           e.Future3S,
		"passive_3s":          e.Passive3S,
		"causative_3s":        e.Causative3S,
		"absolutive":          e.Absolutive,
		"infinitive":          e.Infinitive,
		"past_participle":     e.PastParticiple,
		"stem_devanagari":     e.StemDevanagari,
		"gender":              e.Gender,
		"paradigm_devanagari": e.ParadigmDevanagari,
		"grammatical_case":    e.GrammaticalCase,
		"case_usage":          e.CaseUsage,
		"meaning_en":          e.MeaningEn,
		"meaning_hi":          e.MeaningHi,
		"usage_example":       e.UsageExample,
		"notes":               e.Notes,
		"is_published":        strconv.FormatBool(e.IsPublished),
		"order_index":         strconv.Itoa(e.OrderIndex),
	}

	columns := ColumnsFor(e.WordType)
	if columns == nil {
		return full
	}

	row := make(parsers.Record, len(columns))
	for _, column := range columns {
		row[column] = full[column]
	}
	return row
}
