package vocab

import (
	"context"

	"github.com/saulo-duarte/vocaquiz/internal/config"
)

type VocabService interface {
	ListGroups(ctx context.Context) ([]GroupSummary, error)
	ListGroupItems(ctx context.Context, groupID int) ([]GroupItemView, error)
	GetGroupFooter(ctx context.Context, groupID int) (*GroupFooter, error)
	GetWordDetail(ctx context.Context, itemID int) (*WordDetailView, error)
}

type vocabService struct {
	repo VocabRepository
}

func NewService(repo VocabRepository) VocabService {
	return &vocabService{repo: repo}
}

func (s *vocabService) ListGroups(ctx context.Context) ([]GroupSummary, error) {
	log := config.WithContext(ctx)

	groups, err := s.repo.ListGroups(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list groups")
		return nil, err
	}
	return groups, nil
}

func (s *vocabService) ListGroupItems(ctx context.Context, groupID int) ([]GroupItemView, error) {
	log := config.WithContext(ctx).WithField("group_id", groupID)

	items, err := s.repo.ListGroupItems(ctx, groupID)
	if err != nil {
		log.WithError(err).Error("Failed to list group items")
		return nil, err
	}
	log.Debugf("Found %d items", len(items))
	return items, nil
}

func (s *vocabService) GetGroupFooter(ctx context.Context, groupID int) (*GroupFooter, error) {
	footer, err := s.repo.GetGroupFooter(ctx, groupID)
	if err != nil {
		config.WithContext(ctx).WithError(err).WithField("group_id", groupID).Error("Failed to load group footer")
		return nil, err
	}
	return footer, nil
}

func (s *vocabService) GetWordDetail(ctx context.Context, itemID int) (*WordDetailView, error) {
	detail, err := s.repo.GetWordDetail(ctx, itemID)
	if err != nil {
		config.WithContext(ctx).WithError(err).WithField("item_id", itemID).Error("Failed to load word detail")
		return nil, err
	}
	return detail, nil
}
