package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/majlis-kantho/core/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := &config.AppConfig{
		Port:  0,
		Env:   "production",
		Store: config.StoreConfig{Driver: "memory"},
	}
	a, err := New(zap.NewNop(), cfg)
	require.NoError(t, err)
	t.Cleanup(a.Shutdown)
	return a
}

func do(t *testing.T, a *App, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.Router().ServeHTTP(w, req)
	return w
}

func login(t *testing.T, a *App) string {
	t.Helper()
	w := do(t, a, http.MethodPost, "/api/v1/auth/login", "", `{"email":"admin","password":"password"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func TestPing(t *testing.T) {
	a := newTestApp(t)
	w := do(t, a, http.MethodGet, "/api/v1/ping", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestHomePayload(t *testing.T) {
	a := newTestApp(t)
	w := do(t, a, http.MethodGet, "/api/v1/home", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Settings struct {
			SiteName string `json:"site_name"`
		} `json:"settings"`
		Featured *struct {
			ID string `json:"id"`
		} `json:"featured"`
		Poll *struct {
			ID string `json:"id"`
		} `json:"poll"`
		Ads map[string][]json.RawMessage `json:"ads"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, "Majlis Kantho", payload.Settings.SiteName)
	require.NotNil(t, payload.Featured)
	assert.Equal(t, "1", payload.Featured.ID)
	require.NotNil(t, payload.Poll)
	assert.Equal(t, "p1", payload.Poll.ID)
	assert.Contains(t, payload.Ads, "Sidebar")
}

func TestAdminWritesRequireAuth(t *testing.T) {
	a := newTestApp(t)
	w := do(t, a, http.MethodPost, "/api/v1/news", "", `{"title":"T","text":"B","category":"National"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginAndCreateArticle(t *testing.T) {
	a := newTestApp(t)
	token := login(t, a)

	w := do(t, a, http.MethodPost, "/api/v1/news", token,
		`{"title":"Port city tunnel opens","text":"Traffic flows under the river.","category":"National"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	w = do(t, a, http.MethodGet, "/api/v1/news/"+created.ID, "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	a := newTestApp(t)
	w := do(t, a, http.MethodPost, "/api/v1/auth/login", "", `{"email":"admin","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSearchEndpoint(t *testing.T) {
	a := newTestApp(t)
	w := do(t, a, http.MethodGet, "/api/v1/search?q=metro", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out.Data, 1)
	assert.Equal(t, "2", out.Data[0].ID)
}

func TestArticleDetailCarriesApprovedComments(t *testing.T) {
	a := newTestApp(t)
	token := login(t, a)

	w := do(t, a, http.MethodPatch, "/api/v1/comments/c1/status", token, `{"status":"approved"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, a, http.MethodGet, "/api/v1/news/1", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Comments []struct {
			ID string `json:"id"`
		} `json:"comments"`
		TextHTML string `json:"text_html"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out.Comments, 1)
	assert.Equal(t, "c1", out.Comments[0].ID)
	assert.NotEmpty(t, out.TextHTML)
}

func TestSummaryFallsBackWithoutProvider(t *testing.T) {
	a := newTestApp(t)
	w := do(t, a, http.MethodGet, "/api/v1/news/1/summary", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Summary   string `json:"summary"`
		Generated bool   `json:"generated"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.False(t, out.Generated)
	assert.NotEmpty(t, out.Summary)
}

func TestVoteGuardRejectsSecondVote(t *testing.T) {
	a := newTestApp(t)

	w := do(t, a, http.MethodPost, "/api/v1/polls/p1/vote", "", `{"option_index":0}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, a, http.MethodPost, "/api/v1/polls/p1/vote", "", `{"option_index":0}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestVoteOutOfRange(t *testing.T) {
	a := newTestApp(t)
	w := do(t, a, http.MethodPost, "/api/v1/polls/p1/vote", "", `{"option_index":9}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUnknownRoute(t *testing.T) {
	a := newTestApp(t)
	w := do(t, a, http.MethodGet, "/api/v1/definitely-not-here", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
