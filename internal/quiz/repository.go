package quiz

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type QuizRepository interface {
	FindAnswerKey(ctx context.Context, itemID, groupID int) (*AnswerKey, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

// FindAnswerKey matches on item and group together; an item id that belongs
// to a different group is treated as missing.
func (r *quizRepository) FindAnswerKey(ctx context.Context, itemID, groupID int) (*AnswerKey, error) {
	var key AnswerKey
	if err := r.db.WithContext(ctx).
		Table("group_items AS gi").
		Select("gi.item_id, gi.group_id, gi.summary_meaning, gi.display_letter, w.spelling").
		Joins("JOIN words w ON gi.word_id = w.word_id").
		Where("gi.item_id = ? AND gi.group_id = ?", itemID, groupID).
		Take(&key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &key, nil
}
