package echomw

import (
	"net/http"

	"github.com/labstack/echo/v4"

	vs "github.com/reoring/valueschema"
	"github.com/reoring/valueschema/middleware"
)

// AdjustJSON adjusts the request body against schemas, stores the record in the request
// context, or returns 400 with the middleware.ErrorPayload.
func AdjustJSON(schemas map[string]*vs.Schema) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rec, err := middleware.AdjustRequest(c.Request(), schemas)
			if err != nil {
				return c.JSON(http.StatusBadRequest, middleware.ErrorPayload(err, middleware.Language(c.Request())))
			}
			c.SetRequest(c.Request().WithContext(middleware.ContextWithAdjusted(c.Request().Context(), rec)))
			return next(c)
		}
	}
}

// GetAdjusted fetches the adjusted record from echo.Context.
func GetAdjusted(c echo.Context) (map[string]any, bool) {
	return middleware.AdjustedFromContext(c.Request().Context())
}
