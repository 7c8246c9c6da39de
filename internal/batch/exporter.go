package batch

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type Exporter struct {
	db *gorm.DB
}

func NewExporter(db *gorm.DB) *Exporter {
	return &Exporter{db: db}
}

// Export reads every table back into a Dataset ordered by primary key, ready
// for WriteDir.
func (ex *Exporter) Export(ctx context.Context) (*Dataset, error) {
	ds := &Dataset{}
	db := ex.db.WithContext(ctx)

	if err := db.Order("group_id ASC").Find(&ds.Groups).Error; err != nil {
		return nil, fmt.Errorf("export groups: %w", err)
	}
	if err := db.Order("word_id ASC").Find(&ds.Words).Error; err != nil {
		return nil, fmt.Errorf("export words: %w", err)
	}
	if err := db.Order("item_id ASC").Find(&ds.Items).Error; err != nil {
		return nil, fmt.Errorf("export group items: %w", err)
	}
	if err := db.Order("detail_id ASC").Find(&ds.Details).Error; err != nil {
		return nil, fmt.Errorf("export word details: %w", err)
	}
	return ds, nil
}
