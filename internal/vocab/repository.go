package vocab

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type VocabRepository interface {
	ListGroups(ctx context.Context) ([]GroupSummary, error)
	ListGroupItems(ctx context.Context, groupID int) ([]GroupItemView, error)
	GetGroupFooter(ctx context.Context, groupID int) (*GroupFooter, error)
	GetWordDetail(ctx context.Context, itemID int) (*WordDetailView, error)
}

type vocabRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) VocabRepository {
	return &vocabRepository{db: db}
}

func (r *vocabRepository) ListGroups(ctx context.Context) ([]GroupSummary, error) {
	var groups []GroupSummary
	if err := r.db.WithContext(ctx).
		Table(GroupTableName).
		Select("group_id, group_number, title_kr").
		Order("group_number ASC, group_id ASC").
		Scan(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *vocabRepository) ListGroupItems(ctx context.Context, groupID int) ([]GroupItemView, error) {
	var items []GroupItemView
	if err := r.db.WithContext(ctx).
		Table("group_items AS gi").
		Select("gi.item_id, gi.display_order, gi.summary_meaning, gi.display_letter, w.spelling").
		Joins("JOIN words w ON gi.word_id = w.word_id").
		Where("gi.group_id = ?", groupID).
		Order("gi.display_order ASC, gi.item_id ASC").
		Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *vocabRepository) GetGroupFooter(ctx context.Context, groupID int) (*GroupFooter, error) {
	var footer GroupFooter
	if err := r.db.WithContext(ctx).
		Table(GroupTableName).
		Select("footer_phrase_en, footer_phrase_kr").
		Where("group_id = ?", groupID).
		Take(&footer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &footer, nil
}

func (r *vocabRepository) GetWordDetail(ctx context.Context, itemID int) (*WordDetailView, error) {
	var detail WordDetailView
	if err := r.db.WithContext(ctx).
		Table("group_items AS gi").
		Select(`gi.item_id, gi.summary_meaning, gi.display_letter, g.group_number,
			w.word_id, w.spelling,
			wd.full_definition, wd.example_sentence, wd.example_translation, wd.mnemonic_tip`).
		Joins("JOIN "+GroupTableName+" g ON gi.group_id = g.group_id").
		Joins("JOIN words w ON gi.word_id = w.word_id").
		Joins("JOIN word_details wd ON w.word_id = wd.word_id").
		Where("gi.item_id = ?", itemID).
		Order("wd.detail_id ASC").
		Take(&detail).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}
