package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"portal-gateway/internal/domain"
)

// mapDomainError converts a domain error into an echo.HTTPError with the
// status code taxonomy of the gateway. The HTTP error handler renders every
// response as {status:"F", message} so the calling UI has one failure
// contract to handle.
func mapDomainError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, domain.ErrInputMissing):
		return echo.NewHTTPError(http.StatusBadRequest,
			errDetail(err, domain.ErrInputMissing, "Required input is missing."))

	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrSessionNotFound):
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized. Please log in first.")

	case errors.Is(err, domain.ErrRemoteAuthRejected):
		return echo.NewHTTPError(http.StatusUnauthorized,
			errDetail(err, domain.ErrRemoteAuthRejected, "Invalid credentials or authentication failed."))

	case errors.Is(err, domain.ErrRemoteUnreachable):
		// Never expose internal network detail to the caller.
		return echo.NewHTTPError(http.StatusInternalServerError,
			"Unable to connect to the ERP service. Please try again later.")

	case errors.Is(err, domain.ErrDocumentMissing):
		// Developer-facing endpoint; diagnostic detail is allowed here.
		return echo.NewHTTPError(http.StatusInternalServerError,
			errDetail(err, domain.ErrDocumentMissing, "Document content not found in remote response."))

	case errors.Is(err, domain.ErrRemoteProtocolFault):
		return echo.NewHTTPError(http.StatusInternalServerError,
			"Unexpected response from the ERP service.")

	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error.")
	}
}

// errDetail returns the message wrapped behind the sentinel, or fallback when
// the error carries no detail of its own.
func errDetail(err, sentinel error, fallback string) string {
	if rest, ok := strings.CutPrefix(err.Error(), sentinel.Error()+": "); ok && rest != "" {
		return rest
	}
	return fallback
}
