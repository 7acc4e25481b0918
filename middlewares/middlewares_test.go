package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"janconnect-be/models"
	authUtils "janconnect-be/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type stubVerifier map[string]*authUtils.Claims

func (s stubVerifier) Authenticate(_ context.Context, token string) (*authUtils.Claims, error) {
	if claims, ok := s[token]; ok {
		return claims, nil
	}
	return nil, errors.New("bad token")
}

var verifier = stubVerifier{
	"citizen-token": {UserID: "u1", UserType: "user", JTI: "j1", ExpiresAt: time.Now().Add(time.Hour)},
	"admin-token":   {UserID: "a1", UserType: "admin", JTI: "j2", ExpiresAt: time.Now().Add(time.Hour)},
}

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func whoami(c *gin.Context) {
	actor := authUtils.CurrentActor(c)
	c.String(http.StatusOK, actor.UserID)
}

func TestAuthMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/me", AuthMiddleware(verifier), whoami)
	r.GET("/admin", AuthMiddleware(verifier), RequireRole(models.Admin), whoami)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if w := perform(r, req); w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: expected 401, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer forged")
	if w := perform(r, req); w.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: expected 401, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer citizen-token")
	if w := perform(r, req); w.Code != http.StatusOK || w.Body.String() != "u1" {
		t.Fatalf("header token: got %d %q", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookie, Value: "citizen-token"})
	if w := perform(r, req); w.Code != http.StatusOK {
		t.Fatalf("cookie token: expected 200, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer citizen-token")
	if w := perform(r, req); w.Code != http.StatusForbidden {
		t.Fatalf("citizen on admin route: expected 403, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	if w := perform(r, req); w.Code != http.StatusOK || w.Body.String() != "a1" {
		t.Fatalf("admin route: got %d %q", w.Code, w.Body.String())
	}
}

func TestOptionalAuth(t *testing.T) {
	r := gin.New()
	r.GET("/issue", OptionalAuth(verifier), whoami)

	if w := perform(r, httptest.NewRequest(http.MethodGet, "/issue", nil)); w.Code != http.StatusOK || w.Body.String() != "" {
		t.Fatalf("anonymous: got %d %q", w.Code, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/issue", nil)
	req.Header.Set("Authorization", "Bearer forged")
	if w := perform(r, req); w.Code != http.StatusOK || w.Body.String() != "" {
		t.Fatalf("bad token should be anonymous: got %d %q", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/issue", nil)
	req.Header.Set("Authorization", "Bearer citizen-token")
	if w := perform(r, req); w.Body.String() != "u1" {
		t.Fatalf("expected u1, got %q", w.Body.String())
	}
}

func TestIssueRateLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	r := gin.New()
	r.POST("/issue", AuthMiddleware(verifier), IssueRateLimiter(rdb, "issue_limit", 2), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/issue", nil)
		req.Header.Set("Authorization", "Bearer citizen-token")
		return perform(r, req).Code
	}
	for i := 0; i < 2; i++ {
		if code := post(); code != http.StatusCreated {
			t.Fatalf("request %d: expected 201, got %d", i, code)
		}
	}
	if code := post(); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", code)
	}
	if ttl := mr.TTL("issue_limit:u1"); ttl != 24*time.Hour {
		t.Fatalf("unexpected window %v", ttl)
	}

	mr.FastForward(24*time.Hour + time.Second)
	if code := post(); code != http.StatusCreated {
		t.Fatalf("after window: expected 201, got %d", code)
	}
}

func TestIssueRateLimiterRefundsRejectedRequests(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	r := gin.New()
	r.POST("/issue", AuthMiddleware(verifier), IssueRateLimiter(rdb, "issue_limit", 1), func(c *gin.Context) {
		if c.Query("valid") == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
			return
		}
		c.Status(http.StatusCreated)
	})

	post := func(path string) int {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.Header.Set("Authorization", "Bearer citizen-token")
		return perform(r, req).Code
	}
	for i := 0; i < 3; i++ {
		if code := post("/issue"); code != http.StatusBadRequest {
			t.Fatalf("invalid request %d: expected 400, got %d", i, code)
		}
	}
	if got, _ := mr.Get("issue_limit:u1"); got != "0" {
		t.Fatalf("invalid requests should not count, counter=%q", got)
	}
	if code := post("/issue?valid=1"); code != http.StatusCreated {
		t.Fatalf("valid request: expected 201, got %d", code)
	}
	if code := post("/issue?valid=1"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 once the quota is used, got %d", code)
	}
}
