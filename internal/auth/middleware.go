package auth

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "podhub/internal/errors"
)

// TokenHeader is the request header carrying the session token.
const TokenHeader = "x-access-token"

const identityKey = "identity_user_id"

// Middleware returns an Echo middleware that verifies the session token
// on every request before the body is read, and stashes the verified
// user id in the request context.
func Middleware(svc *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + TokenHeader,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := svc.VerifySessionToken(token)
			if err != nil {
				return nil, err
			}
			c.Set(identityKey, claims.UserID)
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			httpErr := apperrors.MapErrorToHTTP(apperrors.ErrInvalidToken)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		},
	})
}

// UserID returns the verified user id set by Middleware, or "" when the
// request was not authenticated.
func UserID(c echo.Context) string {
	id, _ := c.Get(identityKey).(string)
	return id
}
