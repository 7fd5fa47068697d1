package middleware

import (
	"net/http"
	"strings"

	"github.com/codeLord61/Exchangify/internal/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

// Principal is the authenticated identity every protected handler receives.
// Handlers trust it unconditionally; it is never read from ambient state.
type Principal struct {
	UserID uint
	Role   string
}

func (p Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

// JWTAuth validates the bearer token and stores the Principal in the request
// context.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, err := parseBearer(c, secret)
			if err != nil {
				return err
			}
			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// OptionalJWTAuth stores a Principal when a valid token is present and lets
// anonymous requests through. Used by public endpoints whose behavior is
// richer for signed-in users, like radius search.
func OptionalJWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("Authorization") != "" {
				if principal, err := parseBearer(c, secret); err == nil {
					c.Set(principalKey, principal)
				}
			}
			return next(c)
		}
	}
}

// RequireAdmin gates a route group to admin principals. Must run after
// JWTAuth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := PrincipalFrom(c)
			if !ok || !principal.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, "Access denied. Admins only.")
			}
			return next(c)
		}
	}
}

// CurrentPrincipal returns the authenticated identity. Only call it behind
// JWTAuth.
func CurrentPrincipal(c echo.Context) Principal {
	principal, _ := PrincipalFrom(c)
	return principal
}

// PrincipalFrom returns the identity if the request carried a valid token.
func PrincipalFrom(c echo.Context) (Principal, bool) {
	principal, ok := c.Get(principalKey).(Principal)
	return principal, ok
}

func parseBearer(c echo.Context, secret string) (Principal, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "Missing Authorization header")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization header format")
	}

	claims := &models.JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return Principal{UserID: claims.UserID, Role: claims.Role}, nil
}
