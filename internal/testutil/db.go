// Package testutil opens throwaway databases for package tests.
package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/saulo-duarte/vocaquiz/internal/batch"
	"github.com/saulo-duarte/vocaquiz/internal/vocab"
)

// NewDB returns a migrated in-memory sqlite database with foreign keys on.
// Each call gets its own database, closed when the test ends.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, vocab.Migrate(db))
	return db
}

// SecondGroupItemID places word 1 ("Happy") in group 2.
const SecondGroupItemID = 6

// Fixtures is the Basic Emotions seed plus a second group whose only item
// reuses word 1, so item/group mismatches can be exercised.
func Fixtures() *batch.Dataset {
	ds := batch.SeedDataset()
	ds.Groups = append(ds.Groups, vocab.Group{
		GroupID:        2,
		GroupNumber:    2,
		TitleKR:        "복습",
		FooterPhraseEN: "Practice makes perfect",
		FooterPhraseKR: "연습이 완벽을 만든다",
	})
	ds.Items = append(ds.Items, vocab.GroupItem{
		ItemID:         SecondGroupItemID,
		GroupID:        2,
		WordID:         1,
		DisplayOrder:   1,
		SummaryMeaning: "기쁜",
		DisplayLetter:  "H",
	})
	return ds
}

// Seed loads Fixtures into db.
func Seed(t *testing.T, db *gorm.DB) {
	t.Helper()

	_, err := batch.NewImporter(db).Import(context.Background(), Fixtures())
	require.NoError(t, err)
}
