package batch

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/saulo-duarte/vocaquiz/internal/config"
	"github.com/saulo-duarte/vocaquiz/internal/vocab"
)

const defaultBatchSize = 500

type Importer struct {
	db        *gorm.DB
	batchSize int
}

func NewImporter(db *gorm.DB) *Importer {
	return &Importer{db: db, batchSize: defaultBatchSize}
}

type ImportResult struct {
	RunID  string `json:"run_id"`
	Counts Counts `json:"counts"`
}

// Import upserts the dataset in one transaction: groups, words, group items,
// then word details. Conflicts on the primary key update the non-key columns
// in place. Any failure rolls back the whole batch.
func (im *Importer) Import(ctx context.Context, ds *Dataset) (*ImportResult, error) {
	runID := uuid.NewString()
	log := config.WithContext(ctx).WithField("run_id", runID)

	if ds == nil {
		ds = &Dataset{}
	}
	log.WithFields(logrus.Fields{
		"groups":       len(ds.Groups),
		"words":        len(ds.Words),
		"group_items":  len(ds.Items),
		"word_details": len(ds.Details),
	}).Info("Starting batch import")

	err := im.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := upsert(tx, ds.Groups, "group_id", im.batchSize,
			"group_number", "title_kr", "footer_phrase_en", "footer_phrase_kr"); err != nil {
			return fmt.Errorf("upsert groups: %w", err)
		}
		if err := upsert(tx, ds.Words, "word_id", im.batchSize,
			"spelling"); err != nil {
			return fmt.Errorf("upsert words: %w", err)
		}
		if err := upsert(tx, ds.Items, "item_id", im.batchSize,
			"group_id", "word_id", "display_order", "summary_meaning", "display_letter"); err != nil {
			return fmt.Errorf("upsert group items: %w", err)
		}
		if err := upsert(tx, ds.Details, "detail_id", im.batchSize,
			"word_id", "full_definition", "example_sentence", "example_translation", "mnemonic_tip"); err != nil {
			return fmt.Errorf("upsert word details: %w", err)
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Batch import rolled back")
		return nil, err
	}

	log.Info("Batch import committed")
	return &ImportResult{RunID: runID, Counts: ds.Counts()}, nil
}

func upsert[T any](tx *gorm.DB, rows []T, key string, batchSize int, updates ...string) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: key}},
			DoUpdates: clause.AssignmentColumns(updates),
		}).
		CreateInBatches(rows, batchSize).Error
}

// CountRows reports how many rows each table currently holds.
func CountRows(ctx context.Context, db *gorm.DB) (Counts, error) {
	var c Counts
	tables := []struct {
		model interface{}
		dst   *int
	}{
		{&vocab.Group{}, &c.Groups},
		{&vocab.Word{}, &c.Words},
		{&vocab.GroupItem{}, &c.Items},
		{&vocab.WordDetail{}, &c.Details},
	}
	for _, t := range tables {
		var n int64
		if err := db.WithContext(ctx).Model(t.model).Count(&n).Error; err != nil {
			return Counts{}, err
		}
		*t.dst = int(n)
	}
	return c, nil
}
