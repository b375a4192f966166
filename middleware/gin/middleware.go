package ginmw

import (
	"net/http"

	"github.com/gin-gonic/gin"

	vs "github.com/reoring/valueschema"
	"github.com/reoring/valueschema/middleware"
)

// AdjustJSON adjusts the request body against schemas, stores the record in the request
// context, and on failure aborts with 400 and the middleware.ErrorPayload.
func AdjustJSON(schemas map[string]*vs.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, err := middleware.AdjustRequest(c.Request, schemas)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, middleware.ErrorPayload(err, middleware.Language(c.Request)))
			return
		}
		c.Request = c.Request.WithContext(middleware.ContextWithAdjusted(c.Request.Context(), rec))
		c.Next()
	}
}

// GetAdjusted fetches the adjusted record from gin.Context.
func GetAdjusted(c *gin.Context) (map[string]any, bool) {
	return middleware.AdjustedFromContext(c.Request.Context())
}
