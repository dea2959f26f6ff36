// Package convert implements the file-to-file pass: it reads the raw
// spreadsheet exports and writes the normalized CSV artifacts that the
// migration pass later loads into the datastore.
package convert

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"sanskrit-vocab-import/common"
	"sanskrit-vocab-import/parsers"
	"sanskrit-vocab-import/vocab"
)

// ConvertFile converts one source CSV into its normalized shape on disk.
// Returns emitted and skipped row counts. Any read or write error aborts the
// file; rows without a headword are skipped silently per the data-quality
// policy.
func ConvertFile(srcPath, dstPath, wordType string) (emitted, skipped int, err error) {
	columns := vocab.ColumnsFor(wordType)
	if columns == nil {
		return 0, 0, fmt.Errorf("unknown word type %q", wordType)
	}

	data, err := os.ReadFile(srcPath)
	if err != nil {
		return 0, 0, fmt.Errorf("read source %s: %w", srcPath, err)
	}

	records := parsers.Parse(string(data))
	rows, skipped := vocab.BuildRows(wordType, records)

	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return 0, 0, fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(dstPath, []byte(parsers.Serialize(columns, rows)), 0644); err != nil {
		return 0, 0, fmt.Errorf("write normalized %s: %w", dstPath, err)
	}

	return len(rows), skipped, nil
}

// ConvertAll runs the conversion for all three word types and returns the
// count-by-category summary. The pass is strictly sequential and stops at
// the first failing file.
func ConvertAll(cfg *common.Config, log *zap.SugaredLogger) (*common.RunSummary, error) {
	summary := common.NewRunSummary()

	for _, wordType := range vocab.WordTypes {
		srcPath := cfg.SourcePath(wordType)
		dstPath := cfg.NormalizedPath(wordType)

		emitted, skipped, err := ConvertFile(srcPath, dstPath, wordType)
		if err != nil {
			log.Errorw("conversion failed", "word_type", wordType, "error", err)
			return nil, err
		}

		summary.Record(wordType, emitted)
		summary.Skip(wordType, skipped)
		log.Infow("converted file",
			"word_type", wordType,
			"source", srcPath,
			"normalized", dstPath,
			"rows", emitted,
			"skipped", skipped,
		)
	}

	log.Infof("conversion complete: %s", summary)
	return summary, nil
}
