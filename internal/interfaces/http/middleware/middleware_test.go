package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corycamp/support-ticket-backend/internal/infrastructure/auth"
	"github.com/corycamp/support-ticket-backend/internal/infrastructure/permission"
	"github.com/corycamp/support-ticket-backend/internal/shared/authorization"
	"github.com/corycamp/support-ticket-backend/internal/shared/constants"
	"github.com/corycamp/support-ticket-backend/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(engine *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func bearer(t *testing.T, jwt *auth.JWTService, role authorization.UserRole) map[string]string {
	tok, err := jwt.Issue("tester", role)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + tok.AccessToken}
}

func newProtectedEngine(t *testing.T, jwt *auth.JWTService) *gin.Engine {
	enforcer, err := permission.NewEnforcer(nil, logger.Discard())
	require.NoError(t, err)

	engine := gin.New()
	protected := engine.Group("")
	protected.Use(NewAuthMiddleware(jwt, logger.Discard()).RequireAuth())
	protected.Use(NewPermissionMiddleware(enforcer, logger.Discard()).Authorize())

	ok := func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(constants.ContextKeyUsername))
	}
	protected.GET("/tickets/:id", ok)
	protected.DELETE("/tickets/:id", ok)
	protected.PUT("/tickets/:id/status", ok)
	return engine
}

func TestAuthAndPermission(t *testing.T) {
	jwt := auth.NewJWTService("secret", 5)
	engine := newProtectedEngine(t, jwt)

	tests := []struct {
		name    string
		method  string
		path    string
		headers map[string]string
		want    int
	}{
		{name: "no token", method: http.MethodGet, path: "/tickets/1", want: http.StatusUnauthorized},
		{name: "bad scheme", method: http.MethodGet, path: "/tickets/1", headers: map[string]string{"Authorization": "Basic abc"}, want: http.StatusUnauthorized},
		{name: "bad token", method: http.MethodGet, path: "/tickets/1", headers: map[string]string{"Authorization": "Bearer junk"}, want: http.StatusUnauthorized},
		{name: "user reads", method: http.MethodGet, path: "/tickets/1", headers: bearer(t, jwt, authorization.RoleUser), want: http.StatusOK},
		{name: "user cannot delete", method: http.MethodDelete, path: "/tickets/1", headers: bearer(t, jwt, authorization.RoleUser), want: http.StatusForbidden},
		{name: "user cannot change status", method: http.MethodPut, path: "/tickets/1/status", headers: bearer(t, jwt, authorization.RoleUser), want: http.StatusForbidden},
		{name: "admin deletes", method: http.MethodDelete, path: "/tickets/1", headers: bearer(t, jwt, authorization.RoleAdmin), want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(engine, tt.method, tt.path, tt.headers)
			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.Equal(t, "tester", w.Body.String())
			}
		})
	}
}

type stubLimiter struct {
	allowed bool
	err     error
	keys    []string
}

func (s *stubLimiter) Allow(ctx context.Context, key string) (bool, error) {
	s.keys = append(s.keys, key)
	return s.allowed, s.err
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name    string
		limiter *stubLimiter
		want    int
	}{
		{name: "allowed", limiter: &stubLimiter{allowed: true}, want: http.StatusOK},
		{name: "denied", limiter: &stubLimiter{allowed: false}, want: http.StatusTooManyRequests},
		{name: "limiter error lets request through", limiter: &stubLimiter{err: errors.New("redis down")}, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()
			engine.POST("/auth/token", RateLimit(tt.limiter, "login", logger.Discard()), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := perform(engine, http.MethodPost, "/auth/token", nil)
			assert.Equal(t, tt.want, w.Code)
			require.Len(t, tt.limiter.keys, 1)
			assert.Contains(t, tt.limiter.keys[0], "login:")
		})
	}
}

func TestRequestID(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(constants.ContextKeyRequestID))
	})

	w := perform(engine, http.MethodGet, "/", map[string]string{"X-Request-ID": "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	assert.Equal(t, "abc-123", w.Body.String())

	w = perform(engine, http.MethodGet, "/", nil)
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)
	assert.Equal(t, w.Header().Get("X-Request-ID"), w.Body.String())
}

func TestRecovery(t *testing.T) {
	engine := gin.New()
	engine.Use(Recovery(logger.Discard()))
	engine.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := perform(engine, http.MethodGet, "/panic", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), constants.ErrMsgInternalServerError)
}

func TestCORS(t *testing.T) {
	engine := gin.New()
	engine.Use(CORS([]string{"https://desk.example.com"}))
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := perform(engine, http.MethodGet, "/", map[string]string{"Origin": "https://desk.example.com"})
	assert.Equal(t, "https://desk.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = perform(engine, http.MethodGet, "/", map[string]string{"Origin": "https://evil.example.com"})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	w = perform(engine, http.MethodOptions, "/", map[string]string{"Origin": "https://desk.example.com"})
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestLogger(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID(), Logger(logger.Discard()))
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	w := perform(engine, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusTeapot, w.Code)
}
