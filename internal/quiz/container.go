package quiz

import (
	"gorm.io/gorm"

	"github.com/saulo-duarte/vocaquiz/internal/vocab"
)

type QuizContainer struct {
	Handler *Handler
	Service QuizService
}

func NewQuizContainer(db *gorm.DB, vocabService vocab.VocabService, hints HintGenerator) *QuizContainer {
	repo := NewRepository(db)
	service := NewService(repo, vocabService, vocabService, hints)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
		Service: service,
	}
}
