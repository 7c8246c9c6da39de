package vocab

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/vocaquiz/internal/config"
)

const (
	msgGroupsNotFound      = "Groups not found"
	msgGroupItemsNotFound  = "Group items not found"
	msgGroupFooterNotFound = "Group footer not found"
	msgWordDetailsNotFound = "Word details not found"
)

type Handler struct {
	service VocabService
}

func NewHandler(s VocabService) *Handler {
	return &Handler{service: s}
}

// IntParam reads an integer chi path parameter. On failure it writes a 422
// response and returns false.
func IntParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		config.WithContext(r.Context()).Warnf("Invalid path parameter %s=%q", name, raw)
		config.Detail(w, http.StatusUnprocessableEntity, name+" must be an integer")
		return 0, false
	}
	return id, true
}

func (h *Handler) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.service.ListGroups(r.Context())
	if err != nil {
		config.Detail(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if len(groups) == 0 {
		config.Detail(w, http.StatusNotFound, msgGroupsNotFound)
		return
	}

	config.JSON(w, http.StatusOK, groups)
}

func (h *Handler) GetGroupFooter(w http.ResponseWriter, r *http.Request) {
	groupID, ok := IntParam(w, r, "group_id")
	if !ok {
		return
	}

	footer, err := h.service.GetGroupFooter(r.Context(), groupID)
	if err != nil {
		config.Detail(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if footer == nil {
		config.Detail(w, http.StatusNotFound, msgGroupFooterNotFound)
		return
	}

	config.JSON(w, http.StatusOK, footer)
}

func (h *Handler) ListGroupItems(w http.ResponseWriter, r *http.Request) {
	groupID, ok := IntParam(w, r, "group_id")
	if !ok {
		return
	}

	items, err := h.service.ListGroupItems(r.Context(), groupID)
	if err != nil {
		config.Detail(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if len(items) == 0 {
		config.Detail(w, http.StatusNotFound, msgGroupItemsNotFound)
		return
	}

	config.JSON(w, http.StatusOK, items)
}

func (h *Handler) GetWordDetail(w http.ResponseWriter, r *http.Request) {
	itemID, ok := IntParam(w, r, "item_id")
	if !ok {
		return
	}

	detail, err := h.service.GetWordDetail(r.Context(), itemID)
	if err != nil {
		config.Detail(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if detail == nil {
		config.Detail(w, http.StatusNotFound, msgWordDetailsNotFound)
		return
	}

	config.JSON(w, http.StatusOK, detail)
}
