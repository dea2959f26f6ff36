package common

import (
	"time"

	"github.com/google/uuid"
)

// Run kinds and statuses.
const (
	RunKindImport  = "import"
	RunKindCleanup = "cleanup"

	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// MigrationRun records one invocation of the import or cleanup pass. The
// passes themselves are all-or-nothing, so a run row is either fully
// completed with its counts or failed with the triggering error message.
type MigrationRun struct {
	ID                string     `gorm:"primaryKey;type:text" json:"id"`
	Kind              string     `gorm:"not null" json:"kind"`
	Status            string     `gorm:"not null" json:"status"`
	VerbCount         int        `gorm:"default:0" json:"verb_count"`
	SubstantiveCount  int        `gorm:"default:0" json:"substantive_count"`
	IndeclinableCount int        `gorm:"default:0" json:"indeclinable_count"`
	DeletedCount      int        `gorm:"default:0" json:"deleted_count"`
	Error             string     `gorm:"type:text" json:"error,omitempty"`
	StartedAt         time.Time  `gorm:"not null" json:"started_at"`
	FinishedAt        *time.Time `json:"finished_at,omitempty"`
}

func (MigrationRun) TableName() string { return "migration_runs" }

// NewMigrationRun starts a run record of the given kind.
func NewMigrationRun(kind string) *MigrationRun {
	return &MigrationRun{
		ID:        uuid.New().String(),
		Kind:      kind,
		Status:    RunStatusCompleted,
		StartedAt: time.Now(),
	}
}

// Finish stamps the run with its outcome. A non-nil err marks the run failed
// and keeps the error message for the run listing.
func (r *MigrationRun) Finish(err error) {
	now := time.Now()
	r.FinishedAt = &now
	if err != nil {
		r.Status = RunStatusFailed
		r.Error = err.Error()
	}
}

// ApplySummary copies per-category counts onto the run record.
func (r *MigrationRun) ApplySummary(s *RunSummary) {
	if s == nil {
		return
	}
	r.VerbCount = s.Counts["verb"]
	r.SubstantiveCount = s.Counts["substantive"]
	r.IndeclinableCount = s.Counts["indeclinable"]
}
