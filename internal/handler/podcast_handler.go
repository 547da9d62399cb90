package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"podhub/internal/auth"
	"podhub/internal/service"
)

// PodcastHandler handles podcast and comment endpoints.
type PodcastHandler struct {
	podcastService service.PodcastService
}

// NewPodcastHandler creates a new podcast handler.
func NewPodcastHandler(podcastService service.PodcastService) *PodcastHandler {
	return &PodcastHandler{podcastService: podcastService}
}

// CreatePodcastRequest represents a podcast upload. The audio file goes
// to the blob store separately; audio_ref is its stored reference.
type CreatePodcastRequest struct {
	Title       string `json:"title" validate:"required,max=50"`
	Description string `json:"description" validate:"required,max=500"`
	AudioRef    string `json:"audio_ref" validate:"required"`
}

// UpdatePodcastRequest represents a podcast edit.
type UpdatePodcastRequest struct {
	Title       string `json:"title" validate:"required,max=50"`
	Description string `json:"description" validate:"required,max=500"`
}

// CommentRequest represents a new comment.
type CommentRequest struct {
	Body string `json:"body" validate:"required,max=150"`
}

// ListPodcasts godoc
// @Summary List all podcasts
// @Tags podcasts
// @Produce json
// @Success 200 {array} model.Podcast
// @Router /podcasts [get]
// @Security SessionToken
func (h *PodcastHandler) ListPodcasts(c echo.Context) error {
	podcasts, err := h.podcastService.ListPodcasts(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, podcasts)
}

// CreatePodcast godoc
// @Summary Upload a podcast
// @Tags podcasts
// @Accept json
// @Produce json
// @Param request body CreatePodcastRequest true "Podcast metadata"
// @Success 201 {object} model.Podcast
// @Failure 409 {object} errors.ErrorResponse
// @Router /podcasts [post]
// @Security SessionToken
func (h *PodcastHandler) CreatePodcast(c echo.Context) error {
	var req CreatePodcastRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	podcast, err := h.podcastService.CreatePodcast(c.Request().Context(), auth.UserID(c), req.Title, req.Description, req.AudioRef)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, podcast)
}

// GetPodcast godoc
// @Summary Get a podcast with comments and the caller's liked state
// @Tags podcasts
// @Produce json
// @Param id path string true "Podcast ID"
// @Success 200 {object} service.PodcastView
// @Failure 404 {object} errors.ErrorResponse
// @Router /podcasts/{id} [get]
// @Security SessionToken
func (h *PodcastHandler) GetPodcast(c echo.Context) error {
	view, err := h.podcastService.GetPodcast(c.Request().Context(), c.Param("id"), auth.UserID(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, view)
}

// UpdatePodcast godoc
// @Summary Edit a podcast (owner only)
// @Tags podcasts
// @Accept json
// @Produce json
// @Param id path string true "Podcast ID"
// @Param request body UpdatePodcastRequest true "Podcast fields"
// @Success 200 {object} model.Podcast
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /podcasts/{id} [put]
// @Security SessionToken
func (h *PodcastHandler) UpdatePodcast(c echo.Context) error {
	var req UpdatePodcastRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	podcast, err := h.podcastService.UpdatePodcast(c.Request().Context(), auth.UserID(c), c.Param("id"), req.Title, req.Description)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, podcast)
}

// DeletePodcast godoc
// @Summary Delete a podcast (owner only)
// @Tags podcasts
// @Produce json
// @Param id path string true "Podcast ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /podcasts/{id} [delete]
// @Security SessionToken
func (h *PodcastHandler) DeletePodcast(c echo.Context) error {
	if err := h.podcastService.DeletePodcast(c.Request().Context(), auth.UserID(c), c.Param("id")); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "podcast deleted",
	})
}

// AddComment godoc
// @Summary Comment on a podcast
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Podcast ID"
// @Param request body CommentRequest true "Comment body"
// @Success 201 {object} model.Comment
// @Failure 404 {object} errors.ErrorResponse
// @Router /podcasts/{id}/comments [post]
// @Security SessionToken
func (h *PodcastHandler) AddComment(c echo.Context) error {
	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.podcastService.AddComment(c.Request().Context(), auth.UserID(c), c.Param("id"), req.Body)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, comment)
}

// DeleteComment godoc
// @Summary Delete a comment (author only)
// @Tags comments
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /comments/{id} [delete]
// @Security SessionToken
func (h *PodcastHandler) DeleteComment(c echo.Context) error {
	if err := h.podcastService.DeleteComment(c.Request().Context(), auth.UserID(c), c.Param("id")); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "comment deleted",
	})
}
