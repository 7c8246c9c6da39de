package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/vocaquiz/internal/config"
	"github.com/saulo-duarte/vocaquiz/internal/container"
	"github.com/saulo-duarte/vocaquiz/internal/testutil"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	db := testutil.NewDB(t)
	testutil.Seed(t, db)
	settings := &config.Settings{Hint: config.HintSettings{Provider: config.ProviderGemini}}
	return container.New(t.Context(), db, settings).Router()
}

func TestRouter(t *testing.T) {
	h := newRouter(t)

	t.Run("Health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
	})

	t.Run("CorsPreflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/quiz/submit", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Content-Type")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Less(t, rec.Code, 300)
		assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})

	t.Run("CorsOnSimpleRequest", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/groups", nil)
		req.Header.Set("Origin", "http://example.com")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("GroupRoutesShareMount", func(t *testing.T) {
		for _, path := range []string{"/groups/1", "/groups/1/items", "/groups/1/quiz", "/items/1/details"} {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code, path)
		}
	})

	t.Run("HintWithoutProviderKey", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/quiz/hint", strings.NewReader(`{"item_id":1,"user_id":1}`))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"detail":"GEMINI_API_KEY is not configured."}`, rec.Body.String())
	})
}
