package container

import (
	"context"
	"net/http"

	"gorm.io/gorm"

	"github.com/saulo-duarte/vocaquiz/internal/aihint"
	"github.com/saulo-duarte/vocaquiz/internal/batch"
	"github.com/saulo-duarte/vocaquiz/internal/config"
	"github.com/saulo-duarte/vocaquiz/internal/quiz"
	"github.com/saulo-duarte/vocaquiz/internal/router"
	"github.com/saulo-duarte/vocaquiz/internal/vocab"
)

type Container struct {
	VocabContainer  *vocab.VocabContainer
	AIHintContainer *aihint.AIHintContainer
	QuizContainer   *quiz.QuizContainer
	Importer        *batch.Importer
	Exporter        *batch.Exporter
}

// New wires every feature around one database pool and one hint provider.
func New(ctx context.Context, db *gorm.DB, settings *config.Settings) *Container {
	vocabContainer := vocab.NewVocabContainer(db)
	aiHintContainer := aihint.NewAIHintContainer(ctx, settings.Hint)
	quizContainer := quiz.NewQuizContainer(db, vocabContainer.Service, aiHintContainer.Service)

	return &Container{
		VocabContainer:  vocabContainer,
		AIHintContainer: aiHintContainer,
		QuizContainer:   quizContainer,
		Importer:        batch.NewImporter(db),
		Exporter:        batch.NewExporter(db),
	}
}

func (c *Container) Router() http.Handler {
	return router.New(router.RouterConfig{
		VocabHandler: c.VocabContainer.Handler,
		QuizHandler:  c.QuizContainer.Handler,
	})
}
