package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler renders every failure as the gateway's uniform
// {status:"F", message} body so the calling UI has one failure contract.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error."

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	if jsonErr := c.JSON(code, StatusResponse{
		Status:  StatusFailure,
		Message: message,
	}); jsonErr != nil {
		slog.ErrorContext(c.Request().Context(), "failed to write error response", "error", jsonErr)
	}
}
