package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/concert-ticket-sales/internal/utils"
)

func runChain(t *testing.T, mw echo.MiddlewareFunc, setup func(echo.Context)) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/concerts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if setup != nil {
		setup(c)
	}
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec
}

func TestRequireRoleAllowsAdmin(t *testing.T) {
	rec := runChain(t, RequireRole("ADMIN"), func(c echo.Context) {
		c.Set("role", "ADMIN")
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleRejectsMissingRole(t *testing.T) {
	rec := runChain(t, RequireRole("ADMIN"), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleRejectsOtherRole(t *testing.T) {
	rec := runChain(t, RequireRole("ADMIN"), func(c echo.Context) {
		c.Set("role", "VIEWER")
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	const secret = "test-secret"
	tok, err := utils.NewAccessToken(secret, 7, "ADMIN", 15)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotRole interface{}
	handler := JWTAuth(secret)(func(c echo.Context) error {
		gotRole = c.Get("role")
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ADMIN", gotRole)
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	rec := runChain(t, JWTAuth("test-secret"), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthRejectsForgedToken(t *testing.T) {
	tok, err := utils.NewAccessToken("other-secret", 7, "ADMIN", 15)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := JWTAuth("test-secret")(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCacheKeyStableAndQuerySensitive(t *testing.T) {
	e := echo.New()
	newCtx := func(target string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetPath("/tickets/")
		return c
	}

	a := cacheKey("cache", newCtx("/tickets/?search=rock"))
	b := cacheKey("cache", newCtx("/tickets/?search=rock"))
	other := cacheKey("cache", newCtx("/tickets/?search=jazz"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, other)
	assert.True(t, len(a) > len("cache:"))
}

func TestBuildRateKeySeparatesUsers(t *testing.T) {
	e := echo.New()
	newCtx := func(uid string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/tickets/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetPath("/tickets/")
		if uid != "" {
			c.Set("user_id", uid)
		}
		return c
	}

	anon := buildRateKey("rl", newCtx(""))
	user := buildRateKey("rl", newCtx("42"))
	assert.Contains(t, anon, "user:anon")
	assert.Contains(t, user, "user:42")
	assert.NotEqual(t, anon, user)
}
