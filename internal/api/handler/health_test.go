package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/resumebuilderpro/resume-api/internal/api/handler"
	"github.com/resumebuilderpro/resume-api/internal/infrastructure/db/memory"
	"github.com/resumebuilderpro/resume-api/internal/infrastructure/db/record"
)

func TestLiveness(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.NewHealthHandler().Liveness(c); err != nil {
		t.Fatalf("liveness returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestReadiness(t *testing.T) {
	e := echo.New()
	store := memory.NewStore()
	h := handler.NewReadinessHandler(record.NewUserRepository(store))

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	if err := h.Readiness(e.NewContext(req, rec)); err != nil {
		t.Fatalf("readiness returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with a reachable store, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	// An unreachable store degrades the service.
	store.Unavailable = true
	rec = httptest.NewRecorder()
	if err := h.Readiness(e.NewContext(req, rec)); err != nil {
		t.Fatalf("readiness returned error: %v", err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 with an unreachable store, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"degraded"`) || !strings.Contains(rec.Body.String(), `"unhealthy"`) {
		t.Fatalf("unexpected degraded body: %s", rec.Body.String())
	}
}
