package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires the routes whose failure paths answer before any
// database access, so these tests run without Postgres.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", Welcome)
	r.GET("/api/games/search", SearchGames)
	r.POST("/api/games", CreateGame)
	r.GET("/api/games/:id/similar", GetSimilarGames)
	r.NoRoute(NotFound)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w, parsed
}

func validGamePayload() map[string]any {
	return map[string]any{
		"title":       "Elden Ring",
		"category":    "action-rpg",
		"subGenre":    "souls-like",
		"description": "An open-world action RPG.",
		"image":       "/images/elden-ring.jpg",
		"developer":   "FromSoftware",
		"releaseDate": "2022-02-25T00:00:00Z",
		"platforms":   []string{"PC", "Xbox"},
		"rating":      9.5,
		"tags":        []string{"open-world", "difficult"},
	}
}

func TestWelcome(t *testing.T) {
	w, body := doJSON(t, newTestRouter(), http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, body, "endpoints")
}

func TestSearchRequiresQuery(t *testing.T) {
	w, body := doJSON(t, newTestRouter(), http.MethodGet, "/api/games/search", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
}

func TestSimilarWithMalformedIDIsNotFound(t *testing.T) {
	// non-numeric ids answer 404, indistinguishable from unknown ids
	w, body := doJSON(t, newTestRouter(), http.MethodGet, "/api/games/not-an-id/similar", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Game not found", body["message"])
}

func TestCreateRejectsMalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/games", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRejectsSevenTags(t *testing.T) {
	payload := validGamePayload()
	payload["tags"] = []string{"a", "b", "c", "d", "e", "f", "g"}

	w, body := doJSON(t, newTestRouter(), http.MethodPost, "/api/games", payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])

	errs, ok := body["errors"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, errs, "Tags")
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	payload := validGamePayload()
	payload["category"] = "MMORPG"

	w, body := doJSON(t, newTestRouter(), http.MethodPost, "/api/games", payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	errs, ok := body["errors"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, errs, "Category")
}

func TestUnmatchedRouteAnswers404Envelope(t *testing.T) {
	w, body := doJSON(t, newTestRouter(), http.MethodGet, "/api/nope", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"], "/api/nope")
}

func TestSearchTermLikeMetacharactersAreLiteral(t *testing.T) {
	assert.Equal(t, `50\%`, likeEscaper.Replace("50%"))
	assert.Equal(t, `dark\_souls`, likeEscaper.Replace("dark_souls"))
	assert.Equal(t, `back\\slash`, likeEscaper.Replace(`back\slash`))
	assert.Equal(t, "elden ring", likeEscaper.Replace("elden ring"))
}

func TestInitSimilarityWiresSharedEngine(t *testing.T) {
	engine = nil
	InitSimilarity()
	assert.NotNil(t, engine)
}
