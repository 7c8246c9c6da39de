package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/vocaquiz/internal/aihint"
	"github.com/saulo-duarte/vocaquiz/internal/config"
	"github.com/saulo-duarte/vocaquiz/internal/vocab"
)

const (
	msgGroupItemsNotFound  = "Group items not found"
	msgQuizItemNotFound    = "Quiz item not found"
	msgWordDetailsNotFound = "Word details not found"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

type submitBody struct {
	ItemID     *int    `json:"item_id"`
	UserAnswer *string `json:"user_answer"`
	GroupID    *int    `json:"group_id"`
	UserID     *int    `json:"user_id"`
}

func (b submitBody) missing() string {
	switch {
	case b.ItemID == nil:
		return "item_id"
	case b.UserAnswer == nil:
		return "user_answer"
	case b.GroupID == nil:
		return "group_id"
	case b.UserID == nil:
		return "user_id"
	}
	return ""
}

type hintBody struct {
	ItemID *int `json:"item_id"`
	UserID *int `json:"user_id"`
}

func (b hintBody) missing() string {
	switch {
	case b.ItemID == nil:
		return "item_id"
	case b.UserID == nil:
		return "user_id"
	}
	return ""
}

type validatable interface {
	missing() string
}

// decodeBody writes a 422 and returns false when the body is not valid JSON
// for dst or a required field is absent.
func decodeBody(w http.ResponseWriter, r *http.Request, dst validatable) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body")
		config.Detail(w, http.StatusUnprocessableEntity, "invalid request body")
		return false
	}
	if field := dst.missing(); field != "" {
		config.Detail(w, http.StatusUnprocessableEntity, field+" is required")
		return false
	}
	return true
}

func (h *Handler) GroupQuiz(w http.ResponseWriter, r *http.Request) {
	groupID, ok := vocab.IntParam(w, r, "group_id")
	if !ok {
		return
	}

	items, err := h.service.QuizItems(r.Context(), groupID)
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

func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var body submitBody
	if !decodeBody(w, r, &body) {
		return
	}
	sub := Submission{
		ItemID:     *body.ItemID,
		UserAnswer: *body.UserAnswer,
		GroupID:    *body.GroupID,
		UserID:     *body.UserID,
	}

	feedback, err := h.service.CheckAnswer(r.Context(), sub)
	if err != nil {
		config.Detail(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if feedback == nil {
		config.Detail(w, http.StatusNotFound, msgQuizItemNotFound)
		return
	}

	config.JSON(w, http.StatusOK, feedback)
}

func (h *Handler) Hint(w http.ResponseWriter, r *http.Request) {
	var body hintBody
	if !decodeBody(w, r, &body) {
		return
	}
	req := HintRequest{ItemID: *body.ItemID, UserID: *body.UserID}

	resp, err := h.service.Hint(r.Context(), req)
	if err != nil {
		var hintErr *aihint.HintGenerationError
		if errors.As(err, &hintErr) {
			config.Detail(w, http.StatusInternalServerError, hintErr.Error())
			return
		}
		config.Detail(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if resp == nil {
		config.Detail(w, http.StatusNotFound, msgWordDetailsNotFound)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}
