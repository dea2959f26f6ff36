package migrate

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"sanskrit-vocab-import/common"
	"sanskrit-vocab-import/vocab"
)

// Collection is the datastore collection holding vocabulary entries.
const Collection = "vocabulary_entries"

// Datastore is the minimal persistence capability the migration needs:
// create, read-all, delete, and transaction scoping with rollback on a
// returned error. It is passed to the Runner explicitly so tests can swap in
// an in-memory fake.
type Datastore interface {
	Create(ctx context.Context, collection string, entry *vocab.Entry) error
	FindMany(ctx context.Context, collection string, limit int) ([]vocab.Entry, error)
	Delete(ctx context.Context, collection string, id string) error
	Transaction(ctx context.Context, fn func(tx Datastore) error) error
}

// Store is the gorm-backed Datastore.
type Store struct {
	db *gorm.DB
}

// NewStore wraps a database handle.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Create inserts one entry into the collection.
func (s *Store) Create(ctx context.Context, collection string, entry *vocab.Entry) error {
	if err := s.db.WithContext(ctx).Table(collection).Create(entry).Error; err != nil {
		return fmt.Errorf("create in %s: %w", collection, err)
	}
	return nil
}

// FindMany returns up to limit entries from the collection; limit <= 0 means
// no limit.
func (s *Store) FindMany(ctx context.Context, collection string, limit int) ([]vocab.Entry, error) {
	q := s.db.WithContext(ctx).Table(collection)
	if limit > 0 {
		q = q.Limit(limit)
	}

	var entries []vocab.Entry
	if err := q.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	return entries, nil
}

// Delete removes one entry by id.
func (s *Store) Delete(ctx context.Context, collection string, id string) error {
	if err := s.db.WithContext(ctx).Table(collection).Where("id = ?", id).Delete(&vocab.Entry{}).Error; err != nil {
		return fmt.Errorf("delete %s from %s: %w", id, collection, err)
	}
	return nil
}

// Transaction runs fn inside one database transaction; a returned error
// rolls everything back.
func (s *Store) Transaction(ctx context.Context, fn func(tx Datastore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// FindByType returns one word type's entries in source spreadsheet order.
func (s *Store) FindByType(ctx context.Context, wordType string) ([]vocab.Entry, error) {
	var entries []vocab.Entry
	err := s.db.WithContext(ctx).
		Where("word_type = ?", wordType).
		Order("order_index").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("find %s entries: %w", wordType, err)
	}
	return entries, nil
}

// RecordRun persists a migration run record. Run tracking sits outside the
// Datastore interface: a failed import still records its run.
func (s *Store) RecordRun(ctx context.Context, run *common.MigrationRun) error {
	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("record migration run: %w", err)
	}
	return nil
}

// ListRuns returns recorded runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]common.MigrationRun, error) {
	q := s.db.WithContext(ctx).Order("started_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var runs []common.MigrationRun
	if err := q.Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("list migration runs: %w", err)
	}
	return runs, nil
}
