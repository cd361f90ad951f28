package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"portal-gateway/internal/domain"
)

// Context keys populated by SessionAuth for downstream handlers.
const (
	ContextCustomerID = "customer_id"
	ContextSessionID  = "session_id"
)

// SessionAuth guards protected routes: it resolves the session cookie against
// the store and puts the principal on the request context. No cookie, an
// unknown identifier, and an expired session are all treated the same —
// anonymous, terminally rejected with 401.
func SessionAuth(store domain.SessionStore, cookieName string, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized. Please log in first.")
			}

			session, err := store.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				if !errors.Is(err, domain.ErrSessionNotFound) {
					logger.Error("session lookup failed", "error", err)
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized. Please log in first.")
			}

			c.Set(ContextCustomerID, session.CustomerID)
			c.Set(ContextSessionID, session.ID)
			return next(c)
		}
	}
}
