package quiz

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/vocaquiz/internal/config"
	"github.com/saulo-duarte/vocaquiz/internal/vocab"
)

type ItemLister interface {
	ListGroupItems(ctx context.Context, groupID int) ([]vocab.GroupItemView, error)
}

type DetailFinder interface {
	GetWordDetail(ctx context.Context, itemID int) (*vocab.WordDetailView, error)
}

type HintGenerator interface {
	GenerateHint(ctx context.Context, wordContext *vocab.WordDetailView) (string, error)
}

type QuizService interface {
	QuizItems(ctx context.Context, groupID int) ([]vocab.GroupItemView, error)
	CheckAnswer(ctx context.Context, sub Submission) (*Feedback, error)
	Hint(ctx context.Context, req HintRequest) (*HintResponse, error)
}

type quizService struct {
	repo    QuizRepository
	items   ItemLister
	details DetailFinder
	hints   HintGenerator
}

func NewService(repo QuizRepository, items ItemLister, details DetailFinder, hints HintGenerator) QuizService {
	return &quizService{
		repo:    repo,
		items:   items,
		details: details,
		hints:   hints,
	}
}

// NormalizeAnswer is the comparison form of a spelling: trimmed and lower-cased.
func NormalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func IsCorrect(stored, answer string) bool {
	return NormalizeAnswer(stored) == NormalizeAnswer(answer)
}

func (s *quizService) QuizItems(ctx context.Context, groupID int) ([]vocab.GroupItemView, error) {
	return s.items.ListGroupItems(ctx, groupID)
}

func (s *quizService) CheckAnswer(ctx context.Context, sub Submission) (*Feedback, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"item_id":  sub.ItemID,
		"group_id": sub.GroupID,
		"user_id":  sub.UserID,
	})

	key, err := s.repo.FindAnswerKey(ctx, sub.ItemID, sub.GroupID)
	if err != nil {
		log.WithError(err).Error("Failed to load answer key")
		return nil, err
	}
	if key == nil {
		log.Warn("Quiz item not found for group")
		return nil, nil
	}

	correct := IsCorrect(key.Spelling, sub.UserAnswer)
	feedback := FeedbackIncorrect
	if correct {
		feedback = FeedbackCorrect
	}

	log.WithField("is_correct", correct).Info("Quiz answer checked")
	return &Feedback{
		IsCorrect:     correct,
		CorrectAnswer: key.Spelling,
		UserAnswer:    sub.UserAnswer,
		Feedback:      feedback,
	}, nil
}

func (s *quizService) Hint(ctx context.Context, req HintRequest) (*HintResponse, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"item_id": req.ItemID,
		"user_id": req.UserID,
	})

	detail, err := s.details.GetWordDetail(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		log.Warn("Hint requested for unknown item")
		return nil, nil
	}

	hint, err := s.hints.GenerateHint(ctx, detail)
	if err != nil {
		log.WithError(err).Error("Failed to generate hint")
		return nil, err
	}

	log.Info("Hint generated")
	return &HintResponse{ItemID: req.ItemID, Hint: hint}, nil
}
