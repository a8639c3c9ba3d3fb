package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/linkstash/bookmarks-api/internal/infrastructure/config"
	"github.com/linkstash/bookmarks-api/internal/infrastructure/db/gormdb"
)

// The prometheus middleware registers its collectors in the default
// registry, so the router can only be built once per test binary. The
// whole end-to-end flow therefore lives in a single test.
func TestAPI_EndToEnd(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := gormdb.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		JWTSecret: "test-secret",
		TokenTTL:  15 * time.Minute,
	}
	e := NewRouter(db, nil, cfg, zerolog.Nop())

	do := func(method, path, body, token string) (*httptest.ResponseRecorder, map[string]any) {
		t.Helper()

		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		if token != "" {
			req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		var decoded map[string]any
		if rec.Body.Len() > 0 {
			_ = json.Unmarshal(rec.Body.Bytes(), &decoded)
		}
		return rec, decoded
	}

	// --- Signup ---
	rec, body := do(http.MethodPost, "/auth/signup", `{"email":"alice@example.com","password":"s3cret"}`, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	aliceToken, _ := body["access_token"].(string)
	if aliceToken == "" {
		t.Fatalf("signup: no access_token in %v", body)
	}

	// Duplicate email is rejected without leaking account existence details.
	rec, body = do(http.MethodPost, "/auth/signup", `{"email":"alice@example.com","password":"other"}`, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("duplicate signup: expected 403, got %d", rec.Code)
	}
	if body["error"] != "credentials taken" {
		t.Fatalf("duplicate signup: unexpected error %v", body)
	}

	// --- Signin ---
	rec, _ = do(http.MethodPost, "/auth/signin", `{"email":"alice@example.com","password":"wrong"}`, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("bad password: expected 403, got %d", rec.Code)
	}
	rec, _ = do(http.MethodPost, "/auth/signin", `{"email":"nobody@example.com","password":"s3cret"}`, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("unknown account: expected 403, got %d", rec.Code)
	}
	rec, body = do(http.MethodPost, "/auth/signin", `{"email":"alice@example.com","password":"s3cret"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("signin: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	aliceToken, _ = body["access_token"].(string)
	if aliceToken == "" {
		t.Fatalf("signin: no access_token in %v", body)
	}

	// --- Auth enforcement ---
	rec, _ = do(http.MethodGet, "/users/me", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token: expected 401, got %d", rec.Code)
	}
	rec, _ = do(http.MethodGet, "/users/me", "", "not-a-token")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: expected 401, got %d", rec.Code)
	}

	// --- Profile ---
	rec, body = do(http.MethodGet, "/users/me", "", aliceToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", rec.Code)
	}
	if body["email"] != "alice@example.com" {
		t.Fatalf("me: unexpected body %v", body)
	}
	if _, ok := body["password_hash"]; ok {
		t.Fatal("me: password hash leaked")
	}

	rec, body = do(http.MethodPatch, "/users", `{"first_name":"Alice","last_name":"Liddell"}`, aliceToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("edit user: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	if body["first_name"] != "Alice" || body["last_name"] != "Liddell" {
		t.Fatalf("edit user: unexpected body %v", body)
	}

	// --- Bookmarks CRUD ---
	rec, _ = do(http.MethodGet, "/bookmarks", "", aliceToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("empty list: expected 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("empty list: expected [], got %q", got)
	}

	rec, body = do(http.MethodPost, "/bookmarks", `{"title":"Go blog","link":"https://go.dev/blog","description":"release notes"}`, aliceToken)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create bookmark: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	bookmarkID, _ := body["id"].(float64)
	if bookmarkID == 0 {
		t.Fatalf("create bookmark: no id in %v", body)
	}
	idPath := "/bookmarks/" + strconv.FormatUint(uint64(bookmarkID), 10)

	rec, body = do(http.MethodGet, idPath, "", aliceToken)
	if rec.Code != http.StatusOK || body["title"] != "Go blog" {
		t.Fatalf("get bookmark: got %d %v", rec.Code, body)
	}

	rec, body = do(http.MethodPatch, idPath, `{"title":"The Go Blog"}`, aliceToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("edit bookmark: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	if body["title"] != "The Go Blog" || body["link"] != "https://go.dev/blog" {
		t.Fatalf("edit bookmark: unexpected body %v", body)
	}

	// --- Ownership isolation ---
	rec, body = do(http.MethodPost, "/auth/signup", `{"email":"bob@example.com","password":"hunter2"}`, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("second signup: expected 201, got %d", rec.Code)
	}
	bobToken, _ := body["access_token"].(string)

	rec, _ = do(http.MethodGet, "/bookmarks", "", bobToken)
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("bob's list should be empty, got %q", got)
	}
	rec, _ = do(http.MethodGet, idPath, "", bobToken)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("foreign read: expected 404, got %d", rec.Code)
	}
	rec, _ = do(http.MethodPatch, idPath, `{"title":"hijacked"}`, bobToken)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("foreign edit: expected 403, got %d", rec.Code)
	}
	rec, _ = do(http.MethodDelete, idPath, "", bobToken)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("foreign delete: expected 403, got %d", rec.Code)
	}

	// Alice's bookmark survived Bob's attempts.
	rec, body = do(http.MethodGet, idPath, "", aliceToken)
	if rec.Code != http.StatusOK || body["title"] != "The Go Blog" {
		t.Fatalf("bookmark mutated by foreign user: %d %v", rec.Code, body)
	}

	// --- Delete ---
	rec, _ = do(http.MethodDelete, idPath, "", aliceToken)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", rec.Code)
	}
	rec, _ = do(http.MethodGet, idPath, "", aliceToken)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("deleted bookmark: expected 404, got %d", rec.Code)
	}

	// --- Probes and metrics ---
	rec, _ = do(http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("liveness: expected 200, got %d", rec.Code)
	}
	rec, _ = do(http.MethodGet, "/health/ready", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("readiness: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	rec, _ = do(http.MethodGet, "/metrics", "", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "bookmarks_") {
		t.Fatalf("metrics: got %d", rec.Code)
	}
}
