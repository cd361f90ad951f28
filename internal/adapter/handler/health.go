package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health handles health check requests.
type Health struct{}

// NewHealth creates the health handler.
func NewHealth() *Health {
	return &Health{}
}

// Handle processes the /health endpoint.
func (h *Health) Handle(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
