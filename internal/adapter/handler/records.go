package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portal-gateway/internal/usecase"
	"portal-gateway/middleware"
)

// Records serves the record-collection endpoints. Every route shares one
// skeleton and differs only in its RecordQuery.
type Records struct {
	uc *usecase.FetchRecords
}

// NewRecords creates the record-collection handler.
func NewRecords(uc *usecase.FetchRecords) *Records {
	return &Records{uc: uc}
}

// Handle returns the Echo handler for one record query.
func (h *Records) Handle(q usecase.RecordQuery) echo.HandlerFunc {
	return func(c echo.Context) error {
		customerID, _ := c.Get(middleware.ContextCustomerID).(string)
		if customerID == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized. Please log in first.")
		}

		records, err := h.uc.Execute(c.Request().Context(), q, customerID)
		if err != nil {
			return mapDomainError(err)
		}

		return c.JSON(http.StatusOK, recordsResponse{
			Status: StatusSuccess,
			Data:   records,
		})
	}
}
