package middleware

import (
	"errors"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"restaurant/internal/auth"
	apperrors "restaurant/internal/errors"
)

// ClaimsKey is the echo context key holding the caller's *auth.Claims.
const ClaimsKey = "claims"

// JWT returns the bearer-token middleware. Tokens must be unexpired access tokens that were not
// revoked by a logout.
func JWT(jwtService *auth.JWTService, tokens auth.TokenStoreInterface) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  ClaimsKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := jwtService.ValidateAccessToken(token)
			if err != nil {
				return nil, err
			}
			revoked, err := tokens.IsAccessTokenBlacklisted(c.Request().Context(), claims.ID)
			if err != nil {
				log.Warnf("blacklist lookup for token %s: %v", claims.ID, err)
			}
			if revoked {
				return nil, apperrors.ErrTokenInvalid
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			var extractErr *echojwt.TokenExtractionError
			if errors.As(err, &extractErr) {
				return apperrors.ErrTokenMissing
			}
			var appErr *apperrors.AppError
			if errors.As(err, &appErr) {
				return appErr
			}
			return apperrors.ErrTokenInvalid
		},
	})
}

// ClaimsFrom returns the claims attached by JWT, or nil on unauthenticated routes.
func ClaimsFrom(c echo.Context) *auth.Claims {
	claims, _ := c.Get(ClaimsKey).(*auth.Claims)
	return claims
}

// IdentityFrom returns the authenticated caller.
func IdentityFrom(c echo.Context) auth.Identity {
	if claims := ClaimsFrom(c); claims != nil {
		return claims.Identity()
	}
	return auth.Identity{}
}
