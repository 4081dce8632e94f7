package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/upcheck-dev/upcheck/internal/auth"
	"github.com/upcheck-dev/upcheck/internal/core"
	"github.com/upcheck-dev/upcheck/internal/db"
	"github.com/upcheck-dev/upcheck/internal/handlers"
	"github.com/upcheck-dev/upcheck/internal/router"
	"github.com/upcheck-dev/upcheck/internal/store"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	conn, err := db.Open(dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate db: %v", err)
	}

	tokens, err := auth.NewTokenManager("test-secret")
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}

	users := store.NewUserStore(conn)
	workspaces := store.NewWorkspaceStore(conn)
	services := store.NewServiceStore(conn)
	endpoints := store.NewEndpointStore(conn)

	return router.New(router.Deps{
		Tokens:     tokens,
		Auth:       handlers.NewAuthHandler(core.NewAuthCore(users, tokens), ""),
		Workspaces: handlers.NewWorkspaceHandler(core.NewWorkspaceCore(workspaces)),
		Services:   handlers.NewServiceHandler(core.NewServiceCore(services, workspaces)),
		Endpoints:  handlers.NewEndpointHandler(core.NewEndpointCore(endpoints, services, workspaces)),
	}, []string{"http://localhost:3000"})
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	if len(rec.Body.Bytes()) > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("unmarshal envelope from %q: %v", rec.Body.String(), err)
		}
	}

	return rec, env
}

func registerUser(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()

	rec, env := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":     email,
		"password":  "password123",
		"full_name": "Test User",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("unmarshal register data: %v", err)
	}
	if data.Token == "" {
		t.Fatal("expected a token from register")
	}

	return data.Token
}

func TestWorkspaceLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	tokenA := registerUser(t, r, "a@example.com")

	rec, env := doJSON(t, r, http.MethodPost, "/api/workspaces", tokenA, gin.H{"name": "My Workspace"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !env.Success {
		t.Fatalf("expected success envelope, got %s", rec.Body.String())
	}

	var created struct {
		ID   uint   `json:"id"`
		Slug string `json:"slug"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("unmarshal workspace: %v", err)
	}
	if created.Slug != "my-workspace" {
		t.Fatalf("slug = %q, want my-workspace", created.Slug)
	}

	rec, env = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/workspaces/%d", created.ID), tokenA, nil)
	if rec.Code != http.StatusOK || !env.Success {
		t.Fatalf("get status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestSlugConflictReturns409(t *testing.T) {
	r := newTestRouter(t)
	tokenA := registerUser(t, r, "a@example.com")
	tokenB := registerUser(t, r, "b@example.com")

	rec, _ := doJSON(t, r, http.MethodPost, "/api/workspaces", tokenA, gin.H{"name": "First", "slug": "x"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("first create status = %d", rec.Code)
	}

	rec, env := doJSON(t, r, http.MethodPost, "/api/workspaces", tokenB, gin.H{"name": "Second", "slug": "x"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("second create status = %d, want 409", rec.Code)
	}
	if env.Success || env.Error == nil || env.Error.Code != "SLUG_TAKEN" {
		t.Fatalf("unexpected error envelope: %s", rec.Body.String())
	}
}

func TestForeignWorkspaceReturns403(t *testing.T) {
	r := newTestRouter(t)
	tokenA := registerUser(t, r, "a@example.com")
	tokenB := registerUser(t, r, "b@example.com")

	rec, env := doJSON(t, r, http.MethodPost, "/api/workspaces", tokenA, gin.H{"name": "Mine"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d", rec.Code)
	}

	var created struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("unmarshal workspace: %v", err)
	}

	// Even with a non-existent nested service id, a non-owner sees only the
	// ownership failure.
	rec, env = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/workspaces/%d/services/12345", created.ID), tokenB, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403, body = %s", rec.Code, rec.Body.String())
	}
	if env.Error == nil || env.Error.Code != "FORBIDDEN" {
		t.Fatalf("unexpected error envelope: %s", rec.Body.String())
	}
}

func TestMissingWorkspaceReturns404(t *testing.T) {
	r := newTestRouter(t)
	token := registerUser(t, r, "a@example.com")

	rec, env := doJSON(t, r, http.MethodGet, "/api/workspaces/99999", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if env.Error == nil || env.Error.Code != "WORKSPACE_NOT_FOUND" {
		t.Fatalf("unexpected error envelope: %s", rec.Body.String())
	}
}

func TestUnauthenticatedRequestReturns401(t *testing.T) {
	r := newTestRouter(t)

	rec, env := doJSON(t, r, http.MethodGet, "/api/workspaces", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if env.Error == nil || env.Error.Code != "UNAUTHORIZED" {
		t.Fatalf("unexpected error envelope: %s", rec.Body.String())
	}
}

func TestInvalidPathIDReturns400(t *testing.T) {
	r := newTestRouter(t)
	token := registerUser(t, r, "a@example.com")

	rec, env := doJSON(t, r, http.MethodGet, "/api/workspaces/not-a-number", token, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if env.Error == nil || env.Error.Code != "VALIDATION_ERROR" {
		t.Fatalf("unexpected error envelope: %s", rec.Body.String())
	}
}

func TestEndpointDefaultsOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	token := registerUser(t, r, "a@example.com")

	_, env := doJSON(t, r, http.MethodPost, "/api/workspaces", token, gin.H{"name": "Mine"})
	var ws struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &ws); err != nil {
		t.Fatalf("unmarshal workspace: %v", err)
	}

	rec, env := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/workspaces/%d/services", ws.ID), token, gin.H{
		"name":     "api",
		"base_url": "https://api.example.com",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create service status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var svc struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &svc); err != nil {
		t.Fatalf("unmarshal service: %v", err)
	}

	rec, env = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/workspaces/%d/services/%d/endpoints", ws.ID, svc.ID), token, gin.H{
		"name":  "health",
		"route": "/health",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create endpoint status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var ep struct {
		ExpectedStatusCode   int             `json:"expected_status_code"`
		CheckIntervalSeconds int             `json:"check_interval_seconds"`
		IsActive             bool            `json:"is_active"`
		Headers              json.RawMessage `json:"headers"`
	}
	if err := json.Unmarshal(env.Data, &ep); err != nil {
		t.Fatalf("unmarshal endpoint: %v", err)
	}
	if ep.ExpectedStatusCode != 200 || ep.CheckIntervalSeconds != 300 || !ep.IsActive {
		t.Fatalf("unexpected endpoint defaults: %s", env.Data)
	}
	if string(ep.Headers) != "null" {
		t.Fatalf("headers = %s, want null", ep.Headers)
	}
}
