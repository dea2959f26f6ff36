package vocab

// Word types of the vocabulary collection.
const (
	TypeVerb         = "verb"
	TypeSubstantive  = "substantive"
	TypeIndeclinable = "indeclinable"
)

// WordTypes lists the word types in the order the passes process them.
var WordTypes = []string{TypeVerb, TypeSubstantive, TypeIndeclinable}

// Source spreadsheet headers. These are an external, versionless contract
// with the spreadsheet export: a renamed header silently yields empty values
// downstream, it does not error.
const (
	srcDhatu      = "धातु"      // verb root
	srcGana       = "गण"       // verb class 1..10
	srcPada       = "पद"       // voice code P/A/U
	srcLat        = "लट्"       // present 3sg
	srcLang       = "लङ्"       // imperfect 3sg
	srcLot        = "लोट्"      // imperative 3sg
	srcVidhiling  = "विधिलिङ्"   // optative 3sg
	srcLrt        = "लृट्"       // future 3sg
	srcKarmani    = "कर्मणि"     // passive 3sg
	srcNijanta    = "णिजन्त"     // causative 3sg
	srcKtva       = "क्त्वा"      // absolutive
	srcTumun      = "तुमुन्"      // infinitive
	srcKta        = "क्त"        // past participle
	srcShabda     = "शब्द"       // substantive headword
	srcPratipadika = "प्रातिपदिक" // nominal stem
	srcLinga      = "लिङ्ग"      // gender / subtype code m/f/n/a/p
	srcShabdarupa = "शब्दरूप"    // declension paradigm word
	srcAvyaya     = "अव्यय"      // indeclinable headword
	srcVibhakti   = "विभक्ति"     // grammatical case governed
	srcUpayoga    = "उपयोग"      // case-usage note
	srcEnglish    = "Inglés"    // English gloss (column named by the exporter)
	srcHindi      = "हिन्दी"      // Hindi gloss
	srcPrayoga    = "प्रयोग"      // usage example
	srcTippani    = "टिप्पणी"     // notes
)

// VerbColumns is the normalized schema for verbs (21 columns).
var VerbColumns = []string{
	"word_type",
	"word_subtype",
	"word_devanagari",
	"root_devanagari",
	"verb_class",
	"voice",
	"present_3s",
	"imperfect_3s",
	"imperative_3s",
	"optative_3s",
	"future_3s",
	"passive_3s",
	"causative_3s",
	"absolutive",
	"infinitive",
	"past_participle",
	"meaning_en",
	"meaning_hi",
	"notes",
	"is_published",
	"order_index",
}

// SubstantiveColumns is the normalized schema for substantives (12 columns).
var SubstantiveColumns = []string{
	"word_type",
	"word_subtype",
	"word_devanagari",
	"stem_devanagari",
	"gender",
	"paradigm_devanagari",
	"meaning_en",
	"meaning_hi",
	"usage_example",
	"notes",
	"is_published",
	"order_index",
}

// IndeclinableColumns is the normalized schema for indeclinables (11 columns).
var IndeclinableColumns = []string{
	"word_type",
	"word_subtype",
	"word_devanagari",
	"grammatical_case",
	"case_usage",
	"meaning_en",
	"meaning_hi",
	"usage_example",
	"notes",
	"is_published",
	"order_index",
}

// ColumnsFor returns the normalized column list for a word type.
func ColumnsFor(wordType string) []string {
	switch wordType {
	case TypeVerb:
		return VerbColumns
	case TypeSubstantive:
		return SubstantiveColumns
	case TypeIndeclinable:
		return IndeclinableColumns
	}
	return nil
}

// ValidWordType reports whether wordType names one of the three collections.
func ValidWordType(wordType string) bool {
	return ColumnsFor(wordType) != nil
}
