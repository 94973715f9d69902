package middleware

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(t *testing.T, jwt *auth.JWTService) *gin.Engine {
	t.Helper()
	r := gin.New()
	mw := NewAuthMiddleware(jwt, logger.NewNopLogger())
	r.GET("/me", mw.RequireAuth(), func(c *gin.Context) {
		actor, err := utils.ActorFromContext(c)
		require.NoError(t, err)
		c.JSON(http.StatusOK, gin.H{"user_id": actor.UserID, "role": actor.Role})
	})
	return r
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	jwt := auth.NewJWTService("test-secret", 60)
	token, _, err := jwt.Generate(9, "staff", authorization.RoleITStaff)
	require.NoError(t, err)

	other := auth.NewJWTService("other-secret", 60)
	foreign, _, err := other.Generate(9, "staff", authorization.RoleITStaff)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"lowercase scheme", "bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"foreign signature", "Bearer " + foreign, http.StatusUnauthorized},
	}

	r := newAuthRouter(t, jwt)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.JSONEq(t, `{"user_id":9,"role":"it_staff"}`, w.Body.String())
			}
		})
	}
}

type stubLimiter struct {
	allowed bool
	err     error
	keys    []string
}

func (s *stubLimiter) Allow(_ context.Context, key string) (bool, error) {
	s.keys = append(s.keys, key)
	return s.allowed, s.err
}

func (s *stubLimiter) Remaining(context.Context, string) (int64, error) { return 0, nil }
func (s *stubLimiter) Reset(context.Context, string) error              { return nil }

func TestRateLimiter_Limit(t *testing.T) {
	tests := []struct {
		name    string
		limiter *stubLimiter
		status  int
	}{
		{"allowed", &stubLimiter{allowed: true}, http.StatusOK},
		{"denied", &stubLimiter{allowed: false}, http.StatusTooManyRequests},
		{"backend down fails open", &stubLimiter{err: stderrors.New("dial tcp: refused")}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.POST("/login", NewRateLimiter(tt.limiter, logger.NewNopLogger()).Limit(), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/login", nil)
			req.RemoteAddr = "10.1.2.3:5555"
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, []string{"10.1.2.3"}, tt.limiter.keys)
		})
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	r := gin.New()
	r.POST("/login", NewRateLimiter(nil, logger.NewNopLogger()).Limit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Recovery(logger.NewNopLogger()))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
