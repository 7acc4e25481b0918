package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"janconnect-be/config"
	"janconnect-be/repository/sqlrepo"
	"janconnect-be/services"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *services.Services) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	if err := sqlrepo.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	cfg := &config.Config{Env: "test", Domain: "localhost", IssueLimitPrefix: "issue_limit", IssueDailyLimit: 5}
	svc := services.New(sqlrepo.NewStore(db), rdb, "test-secret")
	if err := svc.Auth.EnsureAdmin(context.Background(), "admin@example.com", "adminpass"); err != nil {
		t.Fatalf("EnsureAdmin: %v", err)
	}

	r := gin.New()
	RegisterRoutes(r, Deps{Config: cfg, Services: svc, Redis: rdb})
	return r, svc
}

func call(t *testing.T, r *gin.Engine, method, path, token string, body any) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]any{}
	if w.Body.Len() > 0 && w.Body.Bytes()[0] == '{' {
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode %s %s: %v", method, path, err)
		}
	}
	return w.Code, out
}

func login(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	code, body := call(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"email": email, "password": password})
	if code != http.StatusOK {
		t.Fatalf("login %s: %d %v", email, code, body)
	}
	return body["token"].(string)
}

func TestIssueFlow(t *testing.T) {
	r, _ := newTestRouter(t)

	code, body := call(t, r, http.MethodPost, "/api/auth/register", "", gin.H{"email": "asha@example.com", "password": "secret1", "full_name": "Asha"})
	if code != http.StatusCreated {
		t.Fatalf("register: %d %v", code, body)
	}
	code, _ = call(t, r, http.MethodPost, "/api/auth/register", "", gin.H{"email": "asha@example.com", "password": "secret1"})
	if code != http.StatusConflict {
		t.Fatalf("duplicate register: expected 409, got %d", code)
	}
	citizen := login(t, r, "asha@example.com", "secret1")
	admin := login(t, r, "admin@example.com", "adminpass")

	code, body = call(t, r, http.MethodPost, "/api/issue/create", "", gin.H{"title": "x"})
	if code != http.StatusUnauthorized {
		t.Fatalf("anonymous create: expected 401, got %d", code)
	}
	code, body = call(t, r, http.MethodPost, "/api/issue/create", citizen, gin.H{"title": "Leaking pipe"})
	if code != http.StatusBadRequest || body["fields"] == nil {
		t.Fatalf("invalid create: %d %v", code, body)
	}
	code, body = call(t, r, http.MethodPost, "/api/issue/create", citizen, gin.H{
		"title":       "Leaking pipe",
		"description": "Water running down the street",
		"category":    "utilities",
		"priority":    "urgent",
	})
	if code != http.StatusCreated {
		t.Fatalf("create: %d %v", code, body)
	}
	issueID := body["id"].(string)

	code, body = call(t, r, http.MethodGet, "/api/auth/me", citizen, nil)
	if code != http.StatusOK || body["points"].(float64) != 20 {
		t.Fatalf("me: %d %v", code, body)
	}

	code, body = call(t, r, http.MethodPost, "/api/issue/"+issueID+"/vote", citizen, gin.H{"vote_type": "upvote"})
	if code != http.StatusOK || body["upvotes"].(float64) != 1 {
		t.Fatalf("vote: %d %v", code, body)
	}

	code, body = call(t, r, http.MethodGet, "/api/issue/"+issueID, citizen, nil)
	if code != http.StatusOK || body["user_vote"] != "upvote" {
		t.Fatalf("get: %d %v", code, body)
	}

	code, _ = call(t, r, http.MethodPut, "/api/admin/issues/"+issueID+"/resolve", citizen, nil)
	if code != http.StatusForbidden {
		t.Fatalf("citizen resolve: expected 403, got %d", code)
	}
	code, body = call(t, r, http.MethodPut, "/api/admin/issues/"+issueID+"/resolve", admin, nil)
	if code != http.StatusConflict {
		t.Fatalf("resolve pending: expected 409, got %d %v", code, body)
	}

	code, body = call(t, r, http.MethodPost, "/api/admin/issues/"+issueID+"/tender", admin, gin.H{
		"estimated_budget_min": 2500,
		"deadline_date":        "2030-01-01T00:00:00Z",
	})
	if code != http.StatusCreated || body["title"] != "Tender for: Leaking pipe" {
		t.Fatalf("tender from issue: %d %v", code, body)
	}

	code, body = call(t, r, http.MethodGet, "/api/issue/"+issueID, "", nil)
	issue, _ := body["issue"].(map[string]any)
	if code != http.StatusOK || issue["status"] != "in_progress" || issue["assigned_department"] != "Tender Management" {
		t.Fatalf("issue after tender: %d %v", code, body)
	}

	code, _ = call(t, r, http.MethodGet, "/api/admin/dashboard", admin, nil)
	if code != http.StatusOK {
		t.Fatalf("dashboard: %d", code)
	}
	code, _ = call(t, r, http.MethodGet, "/api/issue/missing", "", nil)
	if code != http.StatusNotFound {
		t.Fatalf("missing issue: expected 404, got %d", code)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	r, _ := newTestRouter(t)
	token := login(t, r, "admin@example.com", "adminpass")

	if code, _ := call(t, r, http.MethodGet, "/api/auth/me", token, nil); code != http.StatusOK {
		t.Fatalf("me before logout: %d", code)
	}
	if code, _ := call(t, r, http.MethodPost, "/api/auth/logout", token, nil); code != http.StatusOK {
		t.Fatalf("logout: %d", code)
	}
	if code, _ := call(t, r, http.MethodGet, "/api/auth/me", token, nil); code != http.StatusUnauthorized {
		t.Fatalf("me after logout: expected 401, got %d", code)
	}
}

func TestPing(t *testing.T) {
	r, _ := newTestRouter(t)
	if code, body := call(t, r, http.MethodGet, "/ping", "", nil); code != http.StatusOK || body["message"] != "pong" {
		t.Fatalf("ping: %d %v", code, body)
	}
}

func TestImageUploadWithoutHosting(t *testing.T) {
	r, _ := newTestRouter(t)
	token := login(t, r, "admin@example.com", "adminpass")
	if code, _ := call(t, r, http.MethodPost, "/api/media/images", token, nil); code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", code)
	}
}

func callList(t *testing.T, r *gin.Engine, path string) (int, []map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out []map[string]any
	if w.Code == http.StatusOK {
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
	}
	return w.Code, out
}

func TestDemotedAdminLosesAccess(t *testing.T) {
	r, svc := newTestRouter(t)
	if err := svc.Auth.EnsureAdmin(context.Background(), "deputy@example.com", "deputypass"); err != nil {
		t.Fatalf("EnsureAdmin: %v", err)
	}
	admin := login(t, r, "admin@example.com", "adminpass")
	deputy := login(t, r, "deputy@example.com", "deputypass")

	code, body := call(t, r, http.MethodGet, "/api/auth/me", deputy, nil)
	if code != http.StatusOK {
		t.Fatalf("me: %d %v", code, body)
	}
	deputyID := body["id"].(string)
	if code, _ := call(t, r, http.MethodGet, "/api/admin/dashboard", deputy, nil); code != http.StatusOK {
		t.Fatalf("dashboard before demotion: %d", code)
	}

	if code, body := call(t, r, http.MethodPut, "/api/admin/users/"+deputyID, admin, gin.H{"user_type": "user"}); code != http.StatusOK {
		t.Fatalf("demote: %d %v", code, body)
	}
	if code, _ := call(t, r, http.MethodGet, "/api/admin/dashboard", deputy, nil); code != http.StatusForbidden {
		t.Fatalf("dashboard after demotion: expected 403, got %d", code)
	}

	if code, body := call(t, r, http.MethodDelete, "/api/admin/users/"+deputyID, admin, nil); code != http.StatusOK {
		t.Fatalf("delete: %d %v", code, body)
	}
	if code, _ := call(t, r, http.MethodGet, "/api/auth/me", deputy, nil); code != http.StatusUnauthorized {
		t.Fatalf("me after delete: expected 401, got %d", code)
	}
}

func TestTenderListDefaultsToAvailable(t *testing.T) {
	r, _ := newTestRouter(t)
	admin := login(t, r, "admin@example.com", "adminpass")

	var ids []string
	for _, title := range []string{"Resurface Ring Road", "Repaint bus shelters"} {
		code, body := call(t, r, http.MethodPost, "/api/tenders", admin, gin.H{
			"title":                title,
			"description":          "Works as listed",
			"category":             "roads",
			"estimated_budget_min": 1000,
			"deadline_date":        "2030-01-01T00:00:00Z",
		})
		if code != http.StatusCreated {
			t.Fatalf("create tender: %d %v", code, body)
		}
		ids = append(ids, body["id"].(string))
	}
	if code, body := call(t, r, http.MethodPut, "/api/tenders/"+ids[1]+"/status", admin, gin.H{"status": "closed"}); code != http.StatusOK {
		t.Fatalf("close tender: %d %v", code, body)
	}

	code, list := callList(t, r, "/api/tenders")
	if code != http.StatusOK || len(list) != 1 || list[0]["id"] != ids[0] {
		t.Fatalf("default listing: %d %v", code, list)
	}
	code, list = callList(t, r, "/api/tenders?status=all")
	if code != http.StatusOK || len(list) != 2 {
		t.Fatalf("all tenders: %d %v", code, list)
	}
}

func TestOfficialsDirectoryRoutes(t *testing.T) {
	r, _ := newTestRouter(t)
	admin := login(t, r, "admin@example.com", "adminpass")

	code, body := call(t, r, http.MethodPost, "/api/admin/officials", admin, gin.H{
		"full_name":   "P. Nair",
		"designation": "Executive Engineer",
		"department":  "Roads",
	})
	if code != http.StatusCreated {
		t.Fatalf("create official: %d %v", code, body)
	}
	id := body["id"].(string)

	code, list := callList(t, r, "/api/officials")
	if code != http.StatusOK || len(list) != 1 || list[0]["department"] != "Roads" {
		t.Fatalf("officials: %d %v", code, list)
	}

	if code, body := call(t, r, http.MethodPut, "/api/admin/officials/"+id, admin, gin.H{"is_active": false}); code != http.StatusOK {
		t.Fatalf("deactivate: %d %v", code, body)
	}
	code, list = callList(t, r, "/api/officials")
	if code != http.StatusOK || len(list) != 0 {
		t.Fatalf("officials after deactivation: %d %v", code, list)
	}
}
