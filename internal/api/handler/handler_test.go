package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/resumebuilderpro/resume-api/internal/api"
	"github.com/resumebuilderpro/resume-api/internal/api/handler"
	"github.com/resumebuilderpro/resume-api/internal/api/middleware"
	"github.com/resumebuilderpro/resume-api/internal/core/service"
	"github.com/resumebuilderpro/resume-api/internal/infrastructure/db/memory"
	"github.com/resumebuilderpro/resume-api/internal/infrastructure/db/record"
	"github.com/resumebuilderpro/resume-api/internal/render"
)

// newTestServer wires the full HTTP surface against an in-memory record
// store, mirroring the production router without a Redis dependency.
func newTestServer() *echo.Echo {
	store := memory.NewStore()
	users := record.NewUserRepository(store)
	resumes := record.NewResumeRepository(store)

	tokens := service.NewTokenService("test-secret")
	hasher := service.NewBcryptHasher(4)
	authService := service.NewAuthService(users, hasher, tokens, time.Hour, zerolog.Nop())
	resumeService := service.NewResumeService(resumes, render.NewHTMLRenderer(), zerolog.Nop())

	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())

	authHandler := handler.NewAuthHandler(authService)
	resumeHandler := handler.NewResumeHandler(resumeService, authService)
	authMiddleware := middleware.Auth(tokens)

	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, authMiddleware)
	e.PUT("/auth/me", authHandler.UpdateMe, authMiddleware)

	r := e.Group("/resumes", authMiddleware)
	r.POST("", resumeHandler.Create)
	r.GET("", resumeHandler.List)
	r.GET("/:id", resumeHandler.Get)
	r.PUT("/:id", resumeHandler.Update)
	r.DELETE("/:id", resumeHandler.Delete)
	r.GET("/:id/download", resumeHandler.Download)

	return e
}

func doJSON(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func signup(t *testing.T, e *echo.Echo, name, email, password string) string {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/auth/signup", "",
		`{"full_name":"`+name+`","email":"`+email+`","password":"`+password+`"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup failed: %d %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode signup response: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatalf("signup did not return a token")
	}
	return resp.AccessToken
}

func TestAuthFlow(t *testing.T) {
	e := newTestServer()

	signup(t, e, "User One", "a@x.com", "pw1-pw1-pw1")

	// Duplicate email is a conflict.
	rec := doJSON(e, http.MethodPost, "/auth/signup", "",
		`{"full_name":"User Two","email":"a@x.com","password":"pw2-pw2-pw2"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", rec.Code)
	}

	// Correct credentials succeed.
	rec = doJSON(e, http.MethodPost, "/auth/login", "", `{"email":"a@x.com","password":"pw1-pw1-pw1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}

	// Wrong password and unknown email produce the same generic error.
	wrong := doJSON(e, http.MethodPost, "/auth/login", "", `{"email":"a@x.com","password":"wrong-wrong"}`)
	unknown := doJSON(e, http.MethodPost, "/auth/login", "", `{"email":"ghost@x.com","password":"wrong-wrong"}`)
	if wrong.Code != http.StatusUnauthorized || unknown.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", wrong.Code, unknown.Code)
	}
	if wrong.Body.String() != unknown.Body.String() {
		t.Fatalf("login failures must be indistinguishable: %s vs %s", wrong.Body.String(), unknown.Body.String())
	}
}

func TestAuthValidation(t *testing.T) {
	e := newTestServer()

	rec := doJSON(e, http.MethodPost, "/auth/signup", "", `{"full_name":"X","email":"not-an-email","password":"pw1-pw1-pw1"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad email, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodPost, "/auth/signup", "", `{"full_name":"X","email":"a@x.com","password":"short"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for short password, got %d", rec.Code)
	}
}

func TestProfileEndpoints(t *testing.T) {
	e := newTestServer()
	token := signup(t, e, "User One", "a@x.com", "pw1-pw1-pw1")

	rec := doJSON(e, http.MethodGet, "/auth/me", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("me failed: %d %s", rec.Code, rec.Body.String())
	}
	var me struct {
		Email    string `json:"email"`
		FullName string `json:"full_name"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &me); err != nil {
		t.Fatalf("decode me: %v", err)
	}
	if me.Email != "a@x.com" || me.FullName != "User One" {
		t.Fatalf("unexpected profile: %+v", me)
	}

	// The digest never leaks through the API.
	if strings.Contains(rec.Body.String(), "secret_digest") || strings.Contains(rec.Body.String(), "$2a$") {
		t.Fatalf("profile response leaks the password digest: %s", rec.Body.String())
	}

	rec = doJSON(e, http.MethodPut, "/auth/me", token, `{"full_name":"Renamed"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update profile failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(e, http.MethodGet, "/auth/me", token, "")
	_ = json.Unmarshal(rec.Body.Bytes(), &me)
	if me.FullName != "Renamed" {
		t.Fatalf("rename not persisted: %+v", me)
	}

	// No token, no profile.
	rec = doJSON(e, http.MethodGet, "/auth/me", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestResumeLifecycle(t *testing.T) {
	e := newTestServer()
	token := signup(t, e, "User One", "a@x.com", "pw1-pw1-pw1")

	// Create.
	rec := doJSON(e, http.MethodPost, "/resumes", token,
		`{"title":"R1","payload":{"personal":{"first_name":"A","last_name":"B","email":"a@x.com","phone":"1","summary":"s"},"education":[],"experience":[],"skills":{"technical":["Go"],"soft":[]}}}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create failed: %d %s", rec.Code, rec.Body.String())
	}
	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create: %v", err)
	}
	if created.ID == "" || created.Status != "draft" {
		t.Fatalf("unexpected create response: %+v", created)
	}

	// List has exactly one entry titled R1.
	rec = doJSON(e, http.MethodGet, "/resumes", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list failed: %d", rec.Code)
	}
	var listed struct {
		Items []struct {
			Title string `json:"title"`
		} `json:"items"`
		Total int `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if listed.Total != 1 || listed.Items[0].Title != "R1" {
		t.Fatalf("unexpected listing: %+v", listed)
	}

	// Partial update.
	rec = doJSON(e, http.MethodPut, "/resumes/"+created.ID, token, `{"title":"R1 v2","status":"active"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update failed: %d %s", rec.Code, rec.Body.String())
	}

	// Unknown status is a 400.
	rec = doJSON(e, http.MethodPut, "/resumes/"+created.ID, token, `{"status":"archived"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", rec.Code)
	}

	// Download.
	rec = doJSON(e, http.MethodGet, "/resumes/"+created.ID+"/download", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("download failed: %d %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type: %s", ct)
	}
	if cd := rec.Header().Get(echo.HeaderContentDisposition); !strings.Contains(cd, "R1 v2_Resume.html") {
		t.Fatalf("unexpected content disposition: %s", cd)
	}

	// Delete, then everything about it is gone.
	rec = doJSON(e, http.MethodDelete, "/resumes/"+created.ID, token, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(e, http.MethodDelete, "/resumes/"+created.ID, token, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for second delete, got %d", rec.Code)
	}
	rec = doJSON(e, http.MethodGet, "/resumes", token, "")
	_ = json.Unmarshal(rec.Body.Bytes(), &listed)
	if listed.Total != 0 {
		t.Fatalf("expected empty listing after delete, got %+v", listed)
	}
}

func TestResumeOwnershipIsolation(t *testing.T) {
	e := newTestServer()
	tokenA := signup(t, e, "User A", "a@x.com", "pw1-pw1-pw1")
	tokenB := signup(t, e, "User B", "b@x.com", "pw2-pw2-pw2")

	rec := doJSON(e, http.MethodPost, "/resumes", tokenA, `{"title":"A's resume"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create failed: %d %s", rec.Code, rec.Body.String())
	}
	var created struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &created)

	// B cannot see, change, render, or delete A's resume; every route
	// reports plain absence.
	for _, probe := range []struct {
		method, path, body string
		want               int
	}{
		{http.MethodGet, "/resumes/" + created.ID, "", http.StatusNotFound},
		{http.MethodPut, "/resumes/" + created.ID, `{"title":"stolen"}`, http.StatusNotFound},
		{http.MethodGet, "/resumes/" + created.ID + "/download", "", http.StatusNotFound},
		{http.MethodDelete, "/resumes/" + created.ID, "", http.StatusNotFound},
	} {
		rec := doJSON(e, probe.method, probe.path, tokenB, probe.body)
		if rec.Code != probe.want {
			t.Fatalf("%s %s: expected %d, got %d", probe.method, probe.path, probe.want, rec.Code)
		}
	}

	// A still has it.
	rec = doJSON(e, http.MethodGet, "/resumes/"+created.ID, tokenA, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("owner lost access: %d", rec.Code)
	}
}
