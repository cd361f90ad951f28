// Package handler contains the inbound HTTP adapters: one Echo handler per
// business capability plus the central domain-error mapper.
package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"portal-gateway/internal/domain"
	"portal-gateway/internal/usecase"
)

// CookieConfig describes the session cookie issued on login.
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// Auth handles /login and /logout.
type Auth struct {
	login    *usecase.Login
	logout   *usecase.EndSession
	cookie   CookieConfig
	validate *validator.Validate
}

// NewAuth creates the auth handler.
func NewAuth(login *usecase.Login, logout *usecase.EndSession, cookie CookieConfig) *Auth {
	return &Auth{
		login:    login,
		logout:   logout,
		cookie:   cookie,
		validate: validator.New(),
	}
}

type loginRequest struct {
	CustomerID string `json:"customer_id" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type logoutResponse struct {
	Message string `json:"message"`
}

// Login authenticates the customer against the remote service and sets the
// session cookie on success. Missing input is rejected before any outbound
// call is attempted.
func (h *Auth) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return mapDomainError(fmt.Errorf("%w: invalid request body", domain.ErrInputMissing))
	}
	if err := h.validate.Struct(&req); err != nil {
		return mapDomainError(fmt.Errorf("%w: customer ID and password are required", domain.ErrInputMissing))
	}

	result, err := h.login.Execute(c.Request().Context(), req.CustomerID, req.Password)
	if err != nil {
		return mapDomainError(err)
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Name,
		Value:    result.SessionID,
		Path:     "/",
		Expires:  time.Now().Add(h.cookie.TTL),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, StatusResponse{
		Status:  result.Status,
		Message: result.Message,
	})
}

// Logout destroys the session unconditionally and clears the cookie.
func (h *Auth) Logout(c echo.Context) error {
	sessionID := ""
	if cookie, err := c.Cookie(h.cookie.Name); err == nil {
		sessionID = cookie.Value
	}

	if err := h.logout.Execute(c.Request().Context(), sessionID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Logout failed")
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, logoutResponse{Message: "Logged out successfully"})
}
