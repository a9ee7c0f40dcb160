package middleware

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// OriginAllowList rejects any request whose Origin header is present but
// not in the allow list. Requests without an Origin header (curl, mobile
// clients, server-to-server) pass through.
func OriginAllowList(allowed []string) echo.MiddlewareFunc {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, origin := range allowed {
		allowedSet[origin] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			origin := c.Request().Header.Get(echo.HeaderOrigin)
			if origin == "" {
				return next(c)
			}
			if _, ok := allowedSet[origin]; !ok {
				log.Printf("CORS: origin %s not allowed", origin)
				return echo.NewHTTPError(http.StatusForbidden, "Non autorisé par CORS")
			}
			return next(c)
		}
	}
}
