package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	j "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vs "github.com/reoring/valueschema"
	"github.com/reoring/valueschema/dsl"
	"github.com/reoring/valueschema/middleware"
)

func userSchemas() map[string]*vs.Schema {
	return dsl.Fields(map[string]dsl.Schemable{
		"name":  dsl.String().Trim().MinLength(1),
		"email": dsl.Email(),
		"age":   dsl.Number().Integer().Default(nil),
	})
}

func TestHandler_Success(t *testing.T) {
	var got map[string]any
	h := middleware.Handler(userSchemas(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec, ok := middleware.AdjustedFromContext(r.Context())
		require.True(t, ok)
		got = rec
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":" bob ","email":"bob@example.com","age":"42","extra":1}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, map[string]any{"name": "bob", "email": "bob@example.com", "age": 42.0}, got)
}

func TestHandler_FieldErrors(t *testing.T) {
	called := false
	h := middleware.Handler(userSchemas(), http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"  ","email":"nope"}`))
	req.Header.Set("Accept-Language", "ja-JP,ja;q=0.9")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")

	var body struct {
		Errors []middleware.FieldError `json:"errors"`
	}
	require.NoError(t, j.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Errors, 2)
	assert.Equal(t, middleware.FieldError{Cause: "pattern", Path: "/email", Message: "形式が不正です"}, body.Errors[0])
	assert.Equal(t, "empty", body.Errors[1].Cause)
	assert.Equal(t, "/name", body.Errors[1].Path)
}

func TestHandler_BadBody(t *testing.T) {
	h := middleware.Handler(userSchemas(), http.NotFoundHandler())
	for _, body := range []string{`{"name":`, `{"a":1}{"b":2}`, `[1,2]`} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
	}
}

func TestAdjustRequest_ErrBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`nope`))
	_, err := middleware.AdjustRequest(req, userSchemas())
	assert.ErrorIs(t, err, middleware.ErrBody)
}

func TestLanguage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "en", middleware.Language(req))
	req.Header.Set("Accept-Language", "JA-jp;q=0.8, en")
	assert.Equal(t, "ja", middleware.Language(req))
}

func TestErrorPayload_PlainError(t *testing.T) {
	p := middleware.ErrorPayload(assert.AnError, "en")
	assert.Equal(t, map[string]any{"error": assert.AnError.Error()}, p)
}
