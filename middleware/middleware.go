// Package middleware adjusts JSON request bodies against a set of field schemas at the
// HTTP boundary. The core is plain net/http; the gin and echo submodules wrap it.
package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	j "github.com/goccy/go-json"

	vs "github.com/reoring/valueschema"
	"github.com/reoring/valueschema/i18n"
	"github.com/reoring/valueschema/source"
)

// ErrBody is wrapped when the request body is not a single JSON document.
var ErrBody = errors.New("middleware: invalid request body")

type ctxKeyAdjusted struct{}

// ContextWithAdjusted attaches an adjusted record to the context.
func ContextWithAdjusted(ctx context.Context, rec map[string]any) context.Context {
	return context.WithValue(ctx, ctxKeyAdjusted{}, rec)
}

// AdjustedFromContext retrieves the adjusted record stored by Handler.
func AdjustedFromContext(ctx context.Context) (map[string]any, bool) {
	rec, ok := ctx.Value(ctxKeyAdjusted{}).(map[string]any)
	return rec, ok
}

// AdjustRequest decodes the JSON body of r and adjusts it, collecting every field error.
func AdjustRequest(r *http.Request, schemas map[string]*vs.Schema) (map[string]any, error) {
	data, err := source.DecodeJSON(r.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBody, err)
	}
	var errs vs.Errors
	return vs.Adjust(data, schemas, vs.Collect(&errs))
}

// Handler adjusts each request body before next runs. On failure it responds 400 with
// ErrorPayload; on success next finds the record through AdjustedFromContext.
func Handler(schemas map[string]*vs.Schema, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec, err := AdjustRequest(r, schemas)
		if err != nil {
			WriteJSON(w, http.StatusBadRequest, ErrorPayload(err, Language(r)))
			return
		}
		next.ServeHTTP(w, r.WithContext(ContextWithAdjusted(r.Context(), rec)))
	})
}

// FieldError is the JSON shape of one adjustment failure.
type FieldError struct {
	Cause   string `json:"cause"`
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ErrorPayload shapes err for JSON responses: {"errors": [...]} for adjustment failures,
// {"error": "..."} otherwise. Messages are localized with the built-in dictionary.
func ErrorPayload(err error, lang string) map[string]any {
	es, ok := vs.AsErrors(err)
	if !ok {
		return map[string]any{"error": err.Error()}
	}
	tr := i18n.Dictionary(lang)
	out := make([]FieldError, 0, len(es))
	for _, e := range es {
		out = append(out, FieldError{
			Cause:   string(e.Cause),
			Path:    e.KeyStack.Pointer(),
			Message: tr.Message(string(e.Cause), nil),
		})
	}
	return map[string]any{"errors": out}
}

// Language returns the primary language tag of the Accept-Language header ("en" when
// absent).
func Language(r *http.Request) string {
	h := r.Header.Get("Accept-Language")
	if h == "" {
		return "en"
	}
	tag, _, _ := strings.Cut(h, ",")
	tag, _, _ = strings.Cut(tag, ";")
	tag, _, _ = strings.Cut(strings.TrimSpace(tag), "-")
	return strings.ToLower(tag)
}

// WriteJSON writes v as a JSON response.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = j.NewEncoder(w).Encode(v)
}
