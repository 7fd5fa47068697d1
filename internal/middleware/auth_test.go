package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/codeLord61/Exchangify/internal/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, userID uint, role string, secret string) string {
	t.Helper()

	claims := &models.JwtCustomClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func runRequest(auth string, mw ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		principal, ok := PrincipalFrom(c)
		if !ok {
			return c.String(http.StatusOK, "anonymous")
		}
		return c.JSON(http.StatusOK, principal)
	}
	for i := len(mw) - 1; i >= 0; i-- {
		handler = mw[i](handler)
	}
	return rec, handler(c)
}

func TestJWTAuthRejectsMissingToken(t *testing.T) {
	_, err := runRequest("", JWTAuth(testSecret))
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestJWTAuthRejectsWrongSecret(t *testing.T) {
	token := signToken(t, 1, models.RoleUser, "other-secret")
	_, err := runRequest("Bearer "+token, JWTAuth(testSecret))
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	token := signToken(t, 42, models.RoleUser, testSecret)
	rec, err := runRequest("Bearer "+token, JWTAuth(testSecret))
	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), "42")
}

func TestOptionalJWTAuthAllowsAnonymous(t *testing.T) {
	rec, err := runRequest("", OptionalJWTAuth(testSecret))
	require.NoError(t, err)
	assert.Equal(t, "anonymous", rec.Body.String())
}

func TestOptionalJWTAuthIgnoresBadToken(t *testing.T) {
	rec, err := runRequest("Bearer not-a-token", OptionalJWTAuth(testSecret))
	require.NoError(t, err)
	assert.Equal(t, "anonymous", rec.Body.String())
}

func TestRequireAdminBlocksUsers(t *testing.T) {
	token := signToken(t, 7, models.RoleUser, testSecret)
	_, err := runRequest("Bearer "+token, JWTAuth(testSecret), RequireAdmin())
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}

func TestRequireAdminAllowsAdmins(t *testing.T) {
	token := signToken(t, 7, models.RoleAdmin, testSecret)
	_, err := runRequest("Bearer "+token, JWTAuth(testSecret), RequireAdmin())
	require.NoError(t, err)
}
