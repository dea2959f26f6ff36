package migrate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sanskrit-vocab-import/common"
	"sanskrit-vocab-import/parsers"
	"sanskrit-vocab-import/vocab"
)

// fakeStore is an in-memory Datastore with real rollback semantics: a
// transaction works on a copy and only commits on a nil error.
type fakeStore struct {
	entries     map[string][]vocab.Entry
	createCalls *int
	failCreate  int // fail the Nth create across the store's lifetime, 0 = never
}

func newFakeStore() *fakeStore {
	calls := 0
	return &fakeStore{
		entries:     make(map[string][]vocab.Entry),
		createCalls: &calls,
	}
}

func (f *fakeStore) Create(_ context.Context, collection string, entry *vocab.Entry) error {
	*f.createCalls++
	if f.failCreate > 0 && *f.createCalls == f.failCreate {
		return errors.New("simulated insert failure")
	}
	f.entries[collection] = append(f.entries[collection], *entry)
	return nil
}

func (f *fakeStore) FindMany(_ context.Context, collection string, limit int) ([]vocab.Entry, error) {
	entries := f.entries[collection]
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	out := make([]vocab.Entry, len(entries))
	copy(out, entries)
	return out, nil
}

func (f *fakeStore) Delete(_ context.Context, collection string, id string) error {
	entries := f.entries[collection]
	for i, e := range entries {
		if e.ID == id {
			f.entries[collection] = append(entries[:i:i], entries[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeStore) Transaction(_ context.Context, fn func(tx Datastore) error) error {
	tx := &fakeStore{
		entries:     make(map[string][]vocab.Entry, len(f.entries)),
		createCalls: f.createCalls,
		failCreate:  f.failCreate,
	}
	for collection, entries := range f.entries {
		cp := make([]vocab.Entry, len(entries))
		copy(cp, entries)
		tx.entries[collection] = cp
	}

	if err := fn(tx); err != nil {
		return err // rollback: f keeps its old state
	}

	f.entries = tx.entries
	return nil
}

func writeNormalized(t *testing.T, cfg *common.Config, wordType string, rows []parsers.Record) {
	t.Helper()
	require.NoError(t, os.MkdirAll(cfg.NormalizedDir, 0755))
	content := parsers.Serialize(vocab.ColumnsFor(wordType), rows)
	require.NoError(t, os.WriteFile(cfg.NormalizedPath(wordType), []byte(content), 0644))
}

func verbRow(t *testing.T, dhatu, gloss string, position int) parsers.Record {
	t.Helper()
	row, ok := vocab.BuildVerbRow(parsers.Record{"धातु": dhatu, "गण": "1", "पद": "P", "Inglés": gloss}, position)
	require.True(t, ok)
	return row
}

func testRunner(t *testing.T, store Datastore) (*Runner, *common.Config) {
	t.Helper()
	cfg := common.DefaultConfig()
	cfg.NormalizedDir = filepath.Join(t.TempDir(), "normalized")

	writeNormalized(t, cfg, "verb", []parsers.Record{
		verbRow(t, "गम्", "to go", 1),
		verbRow(t, "भू", "to be", 2),
	})
	row, ok := vocab.BuildSubstantiveRow(parsers.Record{"शब्द": "राम", "लिङ्ग": "m", "Inglés": "Rama"}, 1)
	require.True(t, ok)
	writeNormalized(t, cfg, "substantive", []parsers.Record{row})
	row, ok = vocab.BuildIndeclinableRow(parsers.Record{"अव्यय": "सह", "विभक्ति": "तृतीया", "Inglés": "with"}, 1)
	require.True(t, ok)
	writeNormalized(t, cfg, "indeclinable", []parsers.Record{row})

	return NewRunner(store, cfg, zap.NewNop().Sugar()), cfg
}

func TestImport_AllFilesOneTransaction(t *testing.T) {
	store := newFakeStore()
	runner, _ := testRunner(t, store)

	summary, err := runner.Import(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Counts["verb"])
	assert.Equal(t, 1, summary.Counts["substantive"])
	assert.Equal(t, 1, summary.Counts["indeclinable"])
	assert.Equal(t, 4, summary.Total())

	entries, err := store.FindMany(context.Background(), Collection, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 4)
	assert.Equal(t, "गम्", entries[0].WordDevanagari)
	assert.Equal(t, "parasmaipada", entries[0].Voice)
	assert.True(t, entries[0].IsPublished)
}

func TestImport_FailedInsertRollsBackWholeRun(t *testing.T) {
	store := newFakeStore()
	store.failCreate = 3 // fails inside the substantives file, after both verbs
	runner, _ := testRunner(t, store)

	_, err := runner.Import(context.Background())

	require.Error(t, err)

	entries, findErr := store.FindMany(context.Background(), Collection, 0)
	require.NoError(t, findErr)
	assert.Empty(t, entries, "rollback must void inserts from earlier files too")
}

func TestImport_MissingNormalizedFileAborts(t *testing.T) {
	store := newFakeStore()
	runner, cfg := testRunner(t, store)
	require.NoError(t, os.Remove(cfg.NormalizedPath("substantive")))

	_, err := runner.Import(context.Background())

	require.Error(t, err)
	entries, _ := store.FindMany(context.Background(), Collection, 0)
	assert.Empty(t, entries)
}

func TestImport_EmptyHeadwordRowSkipped(t *testing.T) {
	store := newFakeStore()
	runner, cfg := testRunner(t, store)

	// Hand-edit the verbs artifact: blank out one headword
	rows := []parsers.Record{verbRow(t, "गम्", "to go", 1), verbRow(t, "भू", "to be", 2)}
	rows[1]["word_devanagari"] = ""
	writeNormalized(t, cfg, "verb", rows)

	summary, err := runner.Import(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Counts["verb"])
	assert.Equal(t, 1, summary.Skipped["verb"])
}

func TestImport_PreservesOrderIndexGaps(t *testing.T) {
	store := newFakeStore()
	runner, cfg := testRunner(t, store)

	writeNormalized(t, cfg, "verb", []parsers.Record{
		verbRow(t, "गम्", "to go", 1),
		verbRow(t, "भू", "to be", 4), // conversion dropped rows 2 and 3
	})

	_, err := runner.Import(context.Background())
	require.NoError(t, err)

	entries, _ := store.FindMany(context.Background(), Collection, 0)
	var indexes []int
	for _, e := range entries {
		if e.WordType == "verb" {
			indexes = append(indexes, e.OrderIndex)
		}
	}
	assert.Equal(t, []int{1, 4}, indexes)
}

func TestCleanup_WipesEverything(t *testing.T) {
	store := newFakeStore()
	runner, _ := testRunner(t, store)

	_, err := runner.Import(context.Background())
	require.NoError(t, err)

	deleted, err := runner.Cleanup(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4, deleted)

	entries, _ := store.FindMany(context.Background(), Collection, 0)
	assert.Empty(t, entries)
}

func TestCleanup_EmptyCollection(t *testing.T) {
	store := newFakeStore()
	runner, _ := testRunner(t, store)

	deleted, err := runner.Cleanup(context.Background())

	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestFindMany_Limit(t *testing.T) {
	store := newFakeStore()
	runner, _ := testRunner(t, store)
	_, err := runner.Import(context.Background())
	require.NoError(t, err)

	entries, err := store.FindMany(context.Background(), Collection, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
