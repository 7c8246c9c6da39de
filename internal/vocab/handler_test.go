package vocab_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/vocaquiz/internal/testutil"
	"github.com/saulo-duarte/vocaquiz/internal/vocab"
)

func newTestServer(t *testing.T, seed bool) http.Handler {
	t.Helper()

	db := testutil.NewDB(t)
	if seed {
		testutil.Seed(t, db)
	}
	c := vocab.NewVocabContainer(db)

	r := chi.NewRouter()
	r.Mount("/groups", vocab.GroupRoutes(c.Handler))
	r.Mount("/items", vocab.ItemRoutes(c.Handler))
	return r
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func detail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["detail"]
}

func TestVocabHandlers(t *testing.T) {
	srv := newTestServer(t, true)

	t.Run("ListGroups", func(t *testing.T) {
		rec := get(t, srv, "/groups/")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var groups []vocab.GroupSummary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &groups))
		require.Len(t, groups, 2)
		assert.Equal(t, "기본 감정", groups[0].TitleKR)
	})

	t.Run("GroupFooter", func(t *testing.T) {
		rec := get(t, srv, "/groups/1")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`{"footer_phrase_en":"Emotions make us human","footer_phrase_kr":"감정은 우리를 인간답게 만든다"}`,
			rec.Body.String())
	})

	t.Run("GroupFooterNotFound", func(t *testing.T) {
		rec := get(t, srv, "/groups/999")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Group footer not found", detail(t, rec))
	})

	t.Run("GroupItems", func(t *testing.T) {
		rec := get(t, srv, "/groups/1/items")
		require.Equal(t, http.StatusOK, rec.Code)

		var items []vocab.GroupItemView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		require.Len(t, items, 5)
		assert.Equal(t, vocab.GroupItemView{
			ItemID:         1,
			DisplayOrder:   1,
			SummaryMeaning: "행복한",
			DisplayLetter:  "H",
			Spelling:       "Happy",
		}, items[0])
	})

	t.Run("GroupItemsNotFound", func(t *testing.T) {
		rec := get(t, srv, "/groups/999/items")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"detail":"Group items not found"}`, rec.Body.String())
	})

	t.Run("WordDetails", func(t *testing.T) {
		rec := get(t, srv, "/items/1/details")
		require.Equal(t, http.StatusOK, rec.Code)

		var view vocab.WordDetailView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
		assert.Equal(t, "Happy", view.Spelling)
		assert.Equal(t, "I am so happy today.", view.ExampleSentence)
		assert.Equal(t, "나는 오늘 너무 행복해.", view.ExampleTranslation)
	})

	t.Run("WordDetailsNotFound", func(t *testing.T) {
		rec := get(t, srv, "/items/999/details")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Word details not found", detail(t, rec))
	})

	t.Run("NonIntegerParam", func(t *testing.T) {
		rec := get(t, srv, "/groups/abc/items")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "group_id must be an integer", detail(t, rec))
	})
}

func TestListGroupsEmptyReturns404(t *testing.T) {
	srv := newTestServer(t, false)

	rec := get(t, srv, "/groups/")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Groups not found", detail(t, rec))
}
