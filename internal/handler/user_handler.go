package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"podhub/internal/auth"
	"podhub/internal/service"
)

// UserHandler handles user-facing read endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetDashboard godoc
// @Summary Get the authenticated user's dashboard
// @Tags users
// @Produce json
// @Success 200 {object} service.Dashboard
// @Failure 401 {object} errors.ErrorResponse
// @Router /dashboard [get]
// @Security SessionToken
func (h *UserHandler) GetDashboard(c echo.Context) error {
	dashboard, err := h.userService.GetDashboard(c.Request().Context(), auth.UserID(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, dashboard)
}

// GetProfile godoc
// @Summary Get a user's public profile
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} service.Profile
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{username} [get]
// @Security SessionToken
func (h *UserHandler) GetProfile(c echo.Context) error {
	profile, err := h.userService.GetProfile(c.Request().Context(), c.Param("username"), auth.UserID(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, profile)
}
