package middleware

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"pandimaja/internal/auth"
	"pandimaja/internal/errors"
)

// principalKey is the echo context key the verified claims are stored under.
const principalKey = "principal"

// Authenticate extracts and verifies the bearer token of a request. Any
// failure (missing header, malformed token, bad signature, expiry) rejects
// with 401 before downstream logic runs; the specific reason is only
// logged. On success the claims are stored on the request context for
// Require and the handlers.
func Authenticate(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  principalKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.ValidateToken(tokenString)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			c.Logger().Warnf("token rejected: %v", err)
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "authentication required",
				Code:  "UNAUTHENTICATED",
			})
		},
	})
}

// Principal returns the verified claims of the request, if any. It only
// yields a value after Authenticate has run.
func Principal(c echo.Context) (*auth.Claims, bool) {
	claims, ok := c.Get(principalKey).(*auth.Claims)
	return claims, ok
}

// Require enforces a role predicate over the authenticated principal. It
// must be chained after Authenticate. A role id outside the seeded set is
// an integrity fault and surfaces as 500, not as an auth failure.
func Require(predicate auth.Predicate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := Principal(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "authentication required",
					Code:  "UNAUTHENTICATED",
				})
			}

			role := claims.Role()
			if !role.Known() {
				c.Logger().Errorf("tootaja %d carries unknown role %d", claims.TootajaID, claims.RoleID)
				return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
					Error: "internal server error",
					Code:  "INTERNAL_ERROR",
				})
			}

			if !predicate(role) {
				return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
					Error: "insufficient privileges",
					Code:  "FORBIDDEN",
				})
			}

			return next(c)
		}
	}
}
