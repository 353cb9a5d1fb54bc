package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestLogger_LogsRequests(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	r := gin.New()
	r.Use(RequestLogger(zap.New(core)))
	r.GET("/api/accounts/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := serve(r, http.MethodGet, "/api/accounts/ACC-1")
	require.Equal(t, http.StatusNotFound, w.Code)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "HTTP request", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/api/accounts/ACC-1", fields["path"])
	assert.EqualValues(t, http.StatusNotFound, fields["status"])
}

func TestRequestLogger_NilLogger_PassesThrough(t *testing.T) {
	called := false
	r := gin.New()
	r.Use(RequestLogger(nil))
	r.GET("/ping", func(c *gin.Context) {
		called = true
		c.Status(http.StatusOK)
	})

	w := serve(r, http.MethodGet, "/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func TestSetActor(t *testing.T) {
	var got string
	r := gin.New()
	r.Use(SetActor("system@example.com"))
	r.GET("/whoami", func(c *gin.Context) {
		got = Actor(c)
		c.Status(http.StatusOK)
	})

	serve(r, http.MethodGet, "/whoami")
	assert.Equal(t, "system@example.com", got)
}

func TestActor_Unset(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, Actor(c))
}

func TestRecovery(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)

	r := gin.New()
	r.Use(Recovery(zap.New(core)))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := serve(r, http.MethodGet, "/boom")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "An internal error occurred", body["message"])
	assert.Equal(t, 1, logs.Len())
}
