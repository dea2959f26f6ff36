// Package migrate implements the file-to-datastore pass and its companion
// cleanup. One invocation of either pass is one transaction: any error rolls
// back everything written in that run. There is no upsert or update path;
// re-importing means cleanup followed by a fresh import.
package migrate

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"sanskrit-vocab-import/common"
	"sanskrit-vocab-import/parsers"
	"sanskrit-vocab-import/vocab"
)

// Runner drives the migration passes against an injected Datastore.
type Runner struct {
	store Datastore
	cfg   *common.Config
	log   *zap.SugaredLogger
}

// NewRunner builds a Runner.
func NewRunner(store Datastore, cfg *common.Config, log *zap.SugaredLogger) *Runner {
	return &Runner{store: store, cfg: cfg, log: log}
}

// Import loads all three normalized CSVs into the datastore inside a single
// transaction. A read or insert failure anywhere voids the whole run,
// including rows already inserted for earlier files. On success the
// count-by-category summary is returned and logged.
func (r *Runner) Import(ctx context.Context) (*common.RunSummary, error) {
	summary := common.NewRunSummary()

	err := r.store.Transaction(ctx, func(tx Datastore) error {
		for _, wordType := range vocab.WordTypes {
			inserted, skipped, err := r.importFile(ctx, tx, wordType)
			if err != nil {
				return err
			}
			summary.Record(wordType, inserted)
			summary.Skip(wordType, skipped)
		}
		return nil
	})
	if err != nil {
		r.log.Errorw("import rolled back", "error", err)
		return nil, err
	}

	r.log.Infof("import complete: %s", summary)
	return summary, nil
}

func (r *Runner) importFile(ctx context.Context, tx Datastore, wordType string) (inserted, skipped int, err error) {
	path := r.cfg.NormalizedPath(wordType)
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, fmt.Errorf("read normalized %s: %w", path, err)
	}

	for _, row := range parsers.Parse(string(data)) {
		entry := vocab.EntryFromRow(row)
		if entry.WordDevanagari == "" {
			// Normalized files written by convert never contain these,
			// but hand-edited artifacts might
			skipped++
			continue
		}
		if err := tx.Create(ctx, Collection, &entry); err != nil {
			return 0, 0, err
		}
		inserted++
	}

	r.log.Infow("imported file", "word_type", wordType, "source", path, "inserted", inserted)
	return inserted, skipped, nil
}

// Cleanup unconditionally deletes every entry in the collection inside one
// transaction and returns the number of deleted records.
func (r *Runner) Cleanup(ctx context.Context) (int, error) {
	deleted := 0

	err := r.store.Transaction(ctx, func(tx Datastore) error {
		entries, err := tx.FindMany(ctx, Collection, 0)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if err := tx.Delete(ctx, Collection, entry.ID); err != nil {
				return err
			}
			deleted++
		}
		return nil
	})
	if err != nil {
		r.log.Errorw("cleanup rolled back", "error", err)
		return 0, err
	}

	r.log.Infow("cleanup complete", "deleted", deleted)
	return deleted, nil
}
