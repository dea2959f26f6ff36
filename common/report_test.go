package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunSummary(t *testing.T) {
	s := NewRunSummary()
	s.Record("verb", 10)
	s.Record("substantive", 5)
	s.Record("verb", 2)
	s.Skip("verb", 1)
	s.Skip("substantive", 0)

	assert.Equal(t, 12, s.Counts["verb"])
	assert.Equal(t, 5, s.Counts["substantive"])
	assert.Equal(t, 17, s.Total())
	assert.Equal(t, 1, s.Skipped["verb"])
	assert.NotContains(t, s.Skipped, "substantive", "zero skips are not recorded")

	assert.Equal(t, "substantive=5, verb=12 (skipped 1)", s.String())
	assert.NotEmpty(t, s.ToJSON())
}

func TestMigrationRunFinish(t *testing.T) {
	run := NewMigrationRun(RunKindImport)
	assert.Equal(t, RunStatusCompleted, run.Status)
	assert.NotEmpty(t, run.ID)
	assert.Nil(t, run.FinishedAt)

	run.Finish(nil)
	assert.Equal(t, RunStatusCompleted, run.Status)
	assert.NotNil(t, run.FinishedAt)

	failed := NewMigrationRun(RunKindImport)
	failed.Finish(errors.New("insert exploded"))
	assert.Equal(t, RunStatusFailed, failed.Status)
	assert.Equal(t, "insert exploded", failed.Error)
}

func TestMigrationRunApplySummary(t *testing.T) {
	s := NewRunSummary()
	s.Record("verb", 3)
	s.Record("indeclinable", 7)

	run := NewMigrationRun(RunKindImport)
	run.ApplySummary(s)

	assert.Equal(t, 3, run.VerbCount)
	assert.Equal(t, 0, run.SubstantiveCount)
	assert.Equal(t, 7, run.IndeclinableCount)
}
