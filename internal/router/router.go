package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/vocaquiz/internal/config"
	"github.com/saulo-duarte/vocaquiz/internal/middlewares"
	"github.com/saulo-duarte/vocaquiz/internal/quiz"
	"github.com/saulo-duarte/vocaquiz/internal/vocab"
)

type RouterConfig struct {
	VocabHandler *vocab.Handler
	QuizHandler  *quiz.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/health", Health)

	groups := vocab.GroupRoutes(cfg.VocabHandler)
	groups.Get("/{group_id}/quiz", cfg.QuizHandler.GroupQuiz)

	r.Mount("/groups", groups)
	r.Mount("/items", vocab.ItemRoutes(cfg.VocabHandler))
	r.Mount("/quiz", quiz.Routes(cfg.QuizHandler))
	return r
}

func Health(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
