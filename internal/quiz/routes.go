package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/submit", h.SubmitAnswer)
	r.Post("/hint", h.Hint)
	return r
}
