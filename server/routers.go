// Package server hosts the migration behind a small HTTP surface: a health
// check, admin-only endpoints that trigger the import and cleanup passes,
// a run listing, and read-only exports of the loaded collection.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sanskrit-vocab-import/common"
	"sanskrit-vocab-import/migrate"
	"sanskrit-vocab-import/parsers"
	"sanskrit-vocab-import/vocab"
)

// EntrySource reads loaded entries for the export surface.
type EntrySource interface {
	FindByType(ctx context.Context, wordType string) ([]vocab.Entry, error)
}

// RunStore records and lists migration runs.
type RunStore interface {
	RecordRun(ctx context.Context, run *common.MigrationRun) error
	ListRuns(ctx context.Context, limit int) ([]common.MigrationRun, error)
}

// Server wires the handlers to their collaborators.
type Server struct {
	cfg     *common.Config
	runner  *migrate.Runner
	entries EntrySource
	runs    RunStore
	log     *zap.SugaredLogger
}

// New builds a Server.
func New(cfg *common.Config, runner *migrate.Runner, entries EntrySource, runs RunStore, log *zap.SugaredLogger) *Server {
	return &Server{cfg: cfg, runner: runner, entries: entries, runs: runs, log: log}
}

// Router assembles the gin engine.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.RedirectTrailingSlash = false
	r.Use(gin.Recovery(), RequestLogger(s.log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/exports/:word_type", s.exportEntries)

	admin := r.Group("/admin", RequireAdmin(s.cfg.AdminSecret))
	admin.POST("/migrate", s.runImport)
	admin.POST("/cleanup", s.runCleanup)
	admin.GET("/runs", s.listRuns)

	return r
}

// runImport triggers the file-to-datastore pass and records the run.
func (s *Server) runImport(c *gin.Context) {
	run := common.NewMigrationRun(common.RunKindImport)

	summary, err := s.runner.Import(c.Request.Context())
	run.ApplySummary(summary)
	run.Finish(err)

	if recErr := s.runs.RecordRun(c.Request.Context(), run); recErr != nil {
		s.log.Errorw("failed to record run", "error", recErr)
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"run_id": run.ID, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"run_id": run.ID, "counts": summary.Counts, "skipped": summary.Skipped, "total": summary.Total()})
}

// runCleanup wipes the collection and records the run.
func (s *Server) runCleanup(c *gin.Context) {
	run := common.NewMigrationRun(common.RunKindCleanup)

	deleted, err := s.runner.Cleanup(c.Request.Context())
	run.DeletedCount = deleted
	run.Finish(err)

	if recErr := s.runs.RecordRun(c.Request.Context(), run); recErr != nil {
		s.log.Errorw("failed to record run", "error", recErr)
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"run_id": run.ID, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"run_id": run.ID, "deleted": deleted})
}

// listRuns returns recorded runs, newest first.
func (s *Server) listRuns(c *gin.Context) {
	runs, err := s.runs.ListRuns(c.Request.Context(), 100)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

// exportEntries streams one word type's loaded entries in the normalized CSV
// shape, or as NDJSON with ?format=ndjson.
func (s *Server) exportEntries(c *gin.Context) {
	wordType := c.Param("word_type")
	if !vocab.ValidWordType(wordType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "word_type must be verb, substantive, or indeclinable"})
		return
	}

	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "ndjson" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv or ndjson"})
		return
	}

	entries, err := s.entries.FindByType(c.Request.Context(), wordType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rows := make([]parsers.Record, len(entries))
	for i, entry := range entries {
		rows[i] = vocab.RowFromEntry(entry)
	}
	columns := vocab.ColumnsFor(wordType)

	filename := fmt.Sprintf("%ss_%s.%s", wordType, time.Now().Format("20060102_150405"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	if format == "csv" {
		c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(parsers.Serialize(columns, rows)))
		return
	}

	c.Header("Content-Type", "application/x-ndjson")
	c.Status(http.StatusOK)
	if err := parsers.WriteNDJSON(c.Writer, columns, rows); err != nil {
		s.log.Errorw("ndjson export failed", "error", err)
	}
}
