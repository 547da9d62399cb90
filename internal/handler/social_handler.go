package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"podhub/internal/auth"
	"podhub/internal/service"
)

// SocialHandler handles the like and follow toggle endpoints.
type SocialHandler struct {
	socialService service.SocialService
}

// NewSocialHandler creates a new social handler.
func NewSocialHandler(socialService service.SocialService) *SocialHandler {
	return &SocialHandler{socialService: socialService}
}

// ToggleRequest carries the explicit toggle action. The action string
// is deliberately not validated here: resolution order belongs to the
// service (a missing podcast is NotFound even when the action is junk).
type ToggleRequest struct {
	Action string `json:"action" validate:"required"`
}

// ToggleLike godoc
// @Summary Like or unlike a podcast
// @Tags social
// @Accept json
// @Produce json
// @Param id path string true "Podcast ID"
// @Param request body ToggleRequest true "Action: like or unlike"
// @Success 200 {object} service.LikeResult
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /podcasts/{id}/like [post]
// @Security SessionToken
func (h *SocialHandler) ToggleLike(c echo.Context) error {
	var req ToggleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.socialService.ToggleLike(c.Request().Context(), auth.UserID(c), c.Param("id"), req.Action)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// ToggleFollow godoc
// @Summary Follow or unfollow a user
// @Tags social
// @Accept json
// @Produce json
// @Param username path string true "Target username"
// @Param request body ToggleRequest true "Action: follow or unfollow"
// @Success 200 {object} service.FollowResult
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /users/{username}/follow [post]
// @Security SessionToken
func (h *SocialHandler) ToggleFollow(c echo.Context) error {
	var req ToggleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.socialService.ToggleFollow(c.Request().Context(), auth.UserID(c), c.Param("username"), req.Action)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, result)
}
