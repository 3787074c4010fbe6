package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Captainbleu/Boggle/internal/api"
	"github.com/Captainbleu/Boggle/internal/api/response"
	"github.com/Captainbleu/Boggle/internal/factory"
	"github.com/Captainbleu/Boggle/internal/model"
	"github.com/Captainbleu/Boggle/internal/testutil"
)

// testServer wires the router against a test app with memory storage
// and a seeded random source
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp(42)
	require.NoError(t, app.LoadTestDictionary())

	router := api.NewRouter(api.RouterConfig{
		Logger:         testutil.NopLogger(),
		GameController: app.GameController,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// seedSession stores a session with a fixed board so word submissions
// are deterministic
func (ts *testServer) seedSession(t *testing.T, id model.SessionID, rows ...string) {
	t.Helper()

	board, err := model.BoardFromRows(rows)
	require.NoError(t, err)

	session := model.NewSession(id, "en", board, ts.app.MockClock.Now())
	require.NoError(t, ts.app.Storage.SaveSession(context.Background(), session))
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var health response.Health
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
	assert.Contains(t, health.Languages, "en")
	assert.Contains(t, health.Languages, "fr")
}

func TestCreateSession(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{"language": "en", "size": 4}
	rr := ts.request(http.MethodPost, "/api/v1/sessions", body)
	require.Equal(t, http.StatusCreated, rr.Code)

	var session response.Session
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &session))
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "en", session.Language)
	assert.Equal(t, 4, session.Size)
	require.Len(t, session.Board, 4)
	for _, row := range session.Board {
		assert.Len(t, row, 4)
	}
	assert.Empty(t, session.FoundWords)
	assert.Equal(t, 0, session.Score)
}

func TestCreateSessionDefaultSize(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/sessions", map[string]any{"language": "fr"})
	require.Equal(t, http.StatusCreated, rr.Code)

	var session response.Session
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &session))
	assert.Equal(t, 4, session.Size)
}

func TestCreateSessionValidation(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/sessions", map[string]any{"size": 4})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_REQUEST")

	rr = ts.request(http.MethodPost, "/api/v1/sessions", map[string]any{"language": "en", "size": -1})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/sessions", map[string]any{"language": "de"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "UNKNOWN_LANGUAGE")
}

func TestGetSession(t *testing.T) {
	ts := newTestServer(t)
	ts.seedSession(t, "SESSION1", "ATE", "CAT", "RST")

	rr := ts.request(http.MethodGet, "/api/v1/sessions/SESSION1", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var session response.Session
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &session))
	assert.Equal(t, "SESSION1", session.ID)
	assert.Equal(t, []string{"ATE", "CAT", "RST"}, session.Board)
}

func TestGetSessionNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/sessions/MISSING", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "SESSION_NOT_FOUND")
}

func TestSubmitWord(t *testing.T) {
	ts := newTestServer(t)
	ts.seedSession(t, "SESSION1", "ATE", "CAT", "RST")

	rr := ts.request(http.MethodPost, "/api/v1/sessions/SESSION1/words", map[string]string{"word": "cat"})
	require.Equal(t, http.StatusOK, rr.Code)

	var result response.SubmitWord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.True(t, result.Accepted)
	assert.Equal(t, "CAT", result.Word)
	assert.Equal(t, 5, result.Score)
	assert.Equal(t, 5, result.TotalScore)
	assert.Empty(t, result.Reason)

	// The found word shows up on the session
	rr = ts.request(http.MethodGet, "/api/v1/sessions/SESSION1", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var session response.Session
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &session))
	assert.Equal(t, []string{"CAT"}, session.FoundWords)
	assert.Equal(t, 5, session.Score)
}

func TestSubmitWordRejections(t *testing.T) {
	ts := newTestServer(t)
	ts.seedSession(t, "SESSION1", "ATE", "CAT", "RST")

	// Duplicate
	rr := ts.request(http.MethodPost, "/api/v1/sessions/SESSION1/words", map[string]string{"word": "CAT"})
	require.Equal(t, http.StatusOK, rr.Code)
	rr = ts.request(http.MethodPost, "/api/v1/sessions/SESSION1/words", map[string]string{"word": "CAT"})
	require.Equal(t, http.StatusOK, rr.Code)

	var result response.SubmitWord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.False(t, result.Accepted)
	assert.NotEmpty(t, result.Reason)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 5, result.TotalScore)

	// Not traceable on the board
	rr = ts.request(http.MethodPost, "/api/v1/sessions/SESSION1/words", map[string]string{"word": "STARE"})
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.False(t, result.Accepted)

	// Traceable but not a word
	rr = ts.request(http.MethodPost, "/api/v1/sessions/SESSION1/words", map[string]string{"word": "TAS"})
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.False(t, result.Accepted)
}

func TestSubmitWordSessionNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/sessions/MISSING/words", map[string]string{"word": "CAT"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSubmitWordInvalidBody(t *testing.T) {
	ts := newTestServer(t)
	ts.seedSession(t, "SESSION1", "ATE", "CAT", "RST")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/SESSION1/words", bytes.NewBufferString("not json"))
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestNewBoard(t *testing.T) {
	ts := newTestServer(t)
	ts.seedSession(t, "SESSION1", "ATE", "CAT", "RST")

	rr := ts.request(http.MethodPost, "/api/v1/sessions/SESSION1/words", map[string]string{"word": "CAT"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/sessions/SESSION1/board", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var session response.Session
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &session))
	assert.Empty(t, session.FoundWords)
	assert.Equal(t, 5, session.Score)
	assert.Equal(t, 3, session.Size)
}

func TestDeleteSession(t *testing.T) {
	ts := newTestServer(t)
	ts.seedSession(t, "SESSION1", "ATE", "CAT", "RST")

	rr := ts.request(http.MethodDelete, "/api/v1/sessions/SESSION1", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/sessions/SESSION1", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
