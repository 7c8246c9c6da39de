package quiz_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/vocaquiz/internal/aihint"
	"github.com/saulo-duarte/vocaquiz/internal/quiz"
	"github.com/saulo-duarte/vocaquiz/internal/testutil"
	"github.com/saulo-duarte/vocaquiz/internal/vocab"
)

func newQuizServer(t *testing.T, hints quiz.HintGenerator) http.Handler {
	t.Helper()

	db := testutil.NewDB(t)
	testutil.Seed(t, db)
	vc := vocab.NewVocabContainer(db)
	qc := quiz.NewQuizContainer(db, vc.Service, hints)

	r := chi.NewRouter()
	r.Get("/groups/{group_id}/quiz", qc.Handler.GroupQuiz)
	r.Mount("/quiz", quiz.Routes(qc.Handler))
	return r
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func detailOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["detail"]
}

func TestSubmitAnswer(t *testing.T) {
	srv := newQuizServer(t, &fakeHints{})

	t.Run("CorrectWithPadding", func(t *testing.T) {
		rec := post(t, srv, "/quiz/submit", `{"item_id":1,"user_answer":" Happy ","group_id":1,"user_id":1}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"is_correct": true,
			"correct_answer": "Happy",
			"user_answer": " Happy ",
			"feedback": "Great job! That's correct."
		}`, rec.Body.String())
	})

	t.Run("Incorrect", func(t *testing.T) {
		rec := post(t, srv, "/quiz/submit", `{"item_id":2,"user_answer":"Happy","group_id":1,"user_id":1}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var fb quiz.Feedback
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fb))
		assert.False(t, fb.IsCorrect)
		assert.Equal(t, "Sad", fb.CorrectAnswer)
		assert.Equal(t, "Incorrect, please try again.", fb.Feedback)
	})

	t.Run("ItemInOtherGroup", func(t *testing.T) {
		rec := post(t, srv, "/quiz/submit", `{"item_id":6,"user_answer":"Happy","group_id":1,"user_id":1}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Quiz item not found", detailOf(t, rec))
	})

	t.Run("MissingField", func(t *testing.T) {
		rec := post(t, srv, "/quiz/submit", `{"item_id":1,"user_answer":"Happy","user_id":1}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "group_id is required", detailOf(t, rec))
	})

	t.Run("MalformedBody", func(t *testing.T) {
		rec := post(t, srv, "/quiz/submit", `{"item_id":"one"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "invalid request body", detailOf(t, rec))
	})
}

func TestHintEndpoint(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		hints := &fakeHints{hint: "웃는 얼굴을 떠올려 보세요"}
		srv := newQuizServer(t, hints)

		rec := post(t, srv, "/quiz/hint", `{"item_id":1,"user_id":1}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"item_id":1,"hint":"웃는 얼굴을 떠올려 보세요"}`, rec.Body.String())
		require.NotNil(t, hints.last)
		assert.Equal(t, "Happy", hints.last.Spelling)
		assert.Equal(t, "Think of a smiling face.", hints.last.MnemonicTip)
	})

	t.Run("UnknownItem", func(t *testing.T) {
		hints := &fakeHints{hint: "unused"}
		srv := newQuizServer(t, hints)

		rec := post(t, srv, "/quiz/hint", `{"item_id":999,"user_id":1}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Word details not found", detailOf(t, rec))
		assert.Zero(t, hints.calls)
	})

	t.Run("GenerationFailure", func(t *testing.T) {
		hints := &fakeHints{err: &aihint.HintGenerationError{Message: "GEMINI_API_KEY is not configured."}}
		srv := newQuizServer(t, hints)

		rec := post(t, srv, "/quiz/hint", `{"item_id":1,"user_id":1}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "GEMINI_API_KEY is not configured.", detailOf(t, rec))
	})

	t.Run("UnexpectedFailure", func(t *testing.T) {
		srv := newQuizServer(t, &fakeHints{err: errors.New("socket closed")})

		rec := post(t, srv, "/quiz/hint", `{"item_id":1,"user_id":1}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "internal server error", detailOf(t, rec))
	})

	t.Run("MissingUserID", func(t *testing.T) {
		srv := newQuizServer(t, &fakeHints{})

		rec := post(t, srv, "/quiz/hint", `{"item_id":1}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "user_id is required", detailOf(t, rec))
	})
}

func TestGroupQuiz(t *testing.T) {
	srv := newQuizServer(t, &fakeHints{})

	req := httptest.NewRequest(http.MethodGet, "/groups/2/quiz", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []vocab.GroupItemView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, testutil.SecondGroupItemID, items[0].ItemID)

	req = httptest.NewRequest(http.MethodGet, "/groups/999/quiz", nil)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Group items not found", detailOf(t, rec))
}
