package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"maths_point_backend/internal/config"
	"maths_point_backend/internal/middleware"
	"maths_point_backend/internal/model"
	"maths_point_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     testSecret,
			ExpireTime: time.Hour,
			CookieName: "token",
		},
	}
}

func newProtectedRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(cfg), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func mustToken(t *testing.T, secret string) string {
	t.Helper()
	token, err := util.GenerateJWT(&model.User{BaseModel: model.BaseModel{ID: 1}, Role: model.Student}, secret, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func TestAuthMiddlewareHeaderAndCookie(t *testing.T) {
	cfg := testConfig()
	r := newProtectedRouter(cfg)
	token := mustToken(t, testSecret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("header token: expected 204, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("cookie token: expected 204, got %d", w.Code)
	}
}

func TestAuthMiddlewareRejectsBadTokens(t *testing.T) {
	cfg := testConfig()
	r := newProtectedRouter(cfg)

	tests := []struct {
		name  string
		token string
	}{
		{name: "no token", token: ""},
		{name: "garbage token", token: "not-a-jwt"},
		{name: "wrong secret", token: mustToken(t, "another-secret-another-secret!!!")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			r.ServeHTTP(w, req)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", w.Code)
			}
		})
	}
}

// Requests must keep authenticating while the config watcher swaps the JWT
// settings from another goroutine. Run with -race.
func TestAuthMiddlewareDuringHotReload(t *testing.T) {
	cfg := testConfig()
	r := newProtectedRouter(cfg)
	token := mustToken(t, testSecret)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			cfg.ApplyHotReload(testConfig())
		}
	}()

	for i := 0; i < 500; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNoContent {
			t.Fatalf("request %d: expected 204, got %d", i, w.Code)
		}
	}
	wg.Wait()
}
