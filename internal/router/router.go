package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"podhub/internal/auth"
	"podhub/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	podcastHandler *handler.PodcastHandler,
	socialHandler *handler.SocialHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/forgot-password", authHandler.ForgotPassword)
	api.POST("/reset-password/:token", authHandler.ResetPassword)

	// Secured routes: the session token is verified before anything
	// else touches the request.
	secured := api.Group("", auth.Middleware(jwtService))

	secured.GET("/dashboard", userHandler.GetDashboard)
	secured.GET("/account", authHandler.GetAccount)
	secured.POST("/account", authHandler.UpdateAccount)
	secured.POST("/account/deactivate", authHandler.DeactivateAccount)
	secured.POST("/change-password", authHandler.ChangePassword)

	secured.GET("/podcasts", podcastHandler.ListPodcasts)
	secured.POST("/podcasts", podcastHandler.CreatePodcast)
	secured.GET("/podcasts/:id", podcastHandler.GetPodcast)
	secured.PUT("/podcasts/:id", podcastHandler.UpdatePodcast)
	secured.DELETE("/podcasts/:id", podcastHandler.DeletePodcast)
	secured.POST("/podcasts/:id/comments", podcastHandler.AddComment)
	secured.DELETE("/comments/:id", podcastHandler.DeleteComment)

	secured.POST("/podcasts/:id/like", socialHandler.ToggleLike)
	secured.GET("/users/:username", userHandler.GetProfile)
	secured.POST("/users/:username/follow", socialHandler.ToggleFollow)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
