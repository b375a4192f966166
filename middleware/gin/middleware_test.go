package ginmw_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	vs "github.com/reoring/valueschema"
	"github.com/reoring/valueschema/dsl"
	ginmw "github.com/reoring/valueschema/middleware/gin"
)

func TestAdjustJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	schemas := map[string]*vs.Schema{"n": dsl.Number().Integer().Base()}
	r.POST("/", ginmw.AdjustJSON(schemas), func(c *gin.Context) {
		rec, ok := ginmw.GetAdjusted(c)
		if !ok || rec["n"] != 3.0 {
			t.Fatalf("unexpected record: %v %v", rec, ok)
		}
		c.Status(http.StatusNoContent)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"n":"3"}`)))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("want 204, got %d: %s", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"n":"3.5"}`)))
	if rr.Code != http.StatusBadRequest || !strings.Contains(rr.Body.String(), `"path":"/n"`) {
		t.Fatalf("want 400 with path, got %d: %s", rr.Code, rr.Body.String())
	}
}
