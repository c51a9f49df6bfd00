package profile

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/podcast-profile-api/api/types"
	"github.com/killallgit/podcast-profile-api/internal/database"
	"github.com/killallgit/podcast-profile-api/internal/models"
	"github.com/killallgit/podcast-profile-api/internal/services/profiles"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	t.Cleanup(func() { _ = db.Close() })

	deps := &types.Dependencies{
		DB:             db,
		ProfileService: profiles.NewService(db, profiles.NewRepository(db.DB)),
	}

	router := gin.New()
	RegisterRoutes(router.Group("/profile"), deps)
	return router
}

func do(router *gin.Engine, method, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, "/profile", nil)
	} else {
		req = httptest.NewRequest(method, "/profile", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const nerdcastBody = `{"nome":"NerdCast","autor":"Jovem Nerd","descricao":"O mundo vira piada","capa":"https://example.com/nc.jpg"}`

func TestProfileLifecycle(t *testing.T) {
	router := setupRouter(t)

	w := do(router, http.MethodGet, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())

	w = do(router, http.MethodDelete, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(router, http.MethodPost, nerdcastBody)
	require.Equal(t, http.StatusOK, w.Code)
	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "NerdCast", created["nome"])
	assert.Equal(t, "Jovem Nerd", created["autor"])
	assert.NotEmpty(t, created["data_insercao"])

	w = do(router, http.MethodPost, `{"nome":"Another","autor":"Someone","descricao":"x"}`)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	var failure types.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &failure))
	assert.NotEmpty(t, failure.Message)

	w = do(router, http.MethodGet, "")
	require.Equal(t, http.StatusOK, w.Code)
	var current map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &current))
	assert.Equal(t, "NerdCast", current["nome"])
	assert.Equal(t, created["id"], current["id"])

	w = do(router, http.MethodDelete, "")
	require.Equal(t, http.StatusOK, w.Code)
	var removed types.ProfileDeletedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &removed))
	assert.Equal(t, "NerdCast", removed.Nome)

	w = do(router, http.MethodGet, "")
	assert.JSONEq(t, `{}`, w.Body.String())
}

func TestPost_Validation(t *testing.T) {
	router := setupRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: `{}`},
		{name: "missing autor", body: `{"nome":"NerdCast","descricao":"x"}`},
		{name: "malformed", body: `nome=`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(router, http.MethodPost, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	assert.JSONEq(t, `{}`, do(router, http.MethodGet, "").Body.String())
}
