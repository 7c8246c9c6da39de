package vocab

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GroupRoutes returns the router itself so callers can hang more
// /{group_id} routes off the same mount.
func GroupRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListGroups)
	r.Get("/{group_id}", h.GetGroupFooter)
	r.Get("/{group_id}/items", h.ListGroupItems)
	return r
}

func ItemRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/{item_id}/details", h.GetWordDetail)
	return r
}
