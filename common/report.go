package common

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// RunSummary accumulates the count-by-category outcome of one pass: how many
// records each category produced and how many source rows were skipped for
// lacking a headword.
type RunSummary struct {
	Counts  map[string]int `json:"counts"`
	Skipped map[string]int `json:"skipped,omitempty"`
}

// NewRunSummary creates an empty summary.
func NewRunSummary() *RunSummary {
	return &RunSummary{
		Counts:  make(map[string]int),
		Skipped: make(map[string]int),
	}
}

// Record adds n emitted records for a category.
func (s *RunSummary) Record(category string, n int) {
	s.Counts[category] += n
}

// Skip adds n skipped rows for a category.
func (s *RunSummary) Skip(category string, n int) {
	if n > 0 {
		s.Skipped[category] += n
	}
}

// Total returns the number of emitted records across categories.
func (s *RunSummary) Total() int {
	total := 0
	for _, n := range s.Counts {
		total += n
	}
	return total
}

// String renders the summary for the final log line, categories sorted for
// stable output.
func (s *RunSummary) String() string {
	categories := make([]string, 0, len(s.Counts))
	for category := range s.Counts {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	parts := make([]string, 0, len(categories))
	for _, category := range categories {
		part := fmt.Sprintf("%s=%d", category, s.Counts[category])
		if skipped := s.Skipped[category]; skipped > 0 {
			part += fmt.Sprintf(" (skipped %d)", skipped)
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, ", ")
}

// ToJSON converts the summary to a JSON string for storage.
func (s *RunSummary) ToJSON() string {
	data, _ := json.Marshal(s)
	return string(data)
}
