package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"expenso/internal/parser"
	"expenso/internal/service"
	"expenso/mocks"
)

func newParseRouter(remote *mocks.MockRemoteParser) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewParseHandler(service.NewParseService(parser.NewSession(remote, zerolog.Nop())))

	r := gin.New()
	r.POST("/parse", h.Parse)
	r.GET("/parse/stats", h.Stats)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, APIResponse) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestParseHandler_Parse(t *testing.T) {
	remote := new(mocks.MockRemoteParser)
	r := newParseRouter(remote)

	w, resp := doJSON(t, r, http.MethodPost, "/parse",
		`{"text":"Coffee at Starbucks 150 dollars today","source":"free_text"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	require.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "local", data["provenance"])
	record := data["record"].(map[string]interface{})
	assert.Equal(t, "Starbucks", record["merchant"])
	assert.Equal(t, 150.0, record["amount"])
	remote.AssertNotCalled(t, "Parse")
}

func TestParseHandler_Parse_MissingText(t *testing.T) {
	r := newParseRouter(new(mocks.MockRemoteParser))

	w, resp := doJSON(t, r, http.MethodPost, "/parse", `{"source":"free_text"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}

func TestParseHandler_Parse_FailureEnvelope(t *testing.T) {
	remote := new(mocks.MockRemoteParser)
	remote.On("Parse", mock.Anything, mock.Anything).
		Return(nil, parser.NewSchemaError(assert.AnError, "gibberish")).Once()
	r := newParseRouter(remote)

	w, resp := doJSON(t, r, http.MethodPost, "/parse", `{"text":"hello there"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "PARSE_FAILED", resp.Error.Code)
}

func TestParseHandler_Stats(t *testing.T) {
	remote := new(mocks.MockRemoteParser)
	r := newParseRouter(remote)

	_, _ = doJSON(t, r, http.MethodPost, "/parse", `{"text":"coffee at Blue Bottle 60"}`)

	w, resp := doJSON(t, r, http.MethodGet, "/parse/stats", "")
	assert.Equal(t, http.StatusOK, w.Code)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, 1.0, data["local_parses"])
	assert.Equal(t, 0.0, data["remote_calls"])
	assert.Equal(t, 1.0, data["total"])
}
