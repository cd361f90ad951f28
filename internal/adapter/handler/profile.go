package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portal-gateway/internal/usecase"
	"portal-gateway/middleware"
)

// Profile serves /userDetails.
type Profile struct {
	uc *usecase.FetchProfile
}

// NewProfile creates the profile handler.
func NewProfile(uc *usecase.FetchProfile) *Profile {
	return &Profile{uc: uc}
}

// Handle returns the authenticated customer's profile record.
func (h *Profile) Handle(c echo.Context) error {
	customerID, _ := c.Get(middleware.ContextCustomerID).(string)
	if customerID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized. Please log in first.")
	}

	profile, err := h.uc.Execute(c.Request().Context(), customerID)
	if err != nil {
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, profileResponse{
		Status:  StatusSuccess,
		Profile: profile,
	})
}
