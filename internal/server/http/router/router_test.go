package router_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stitchmate/stitchmate/internal/domain/model"
	"github.com/stitchmate/stitchmate/internal/server/http/router"
	"github.com/stitchmate/stitchmate/internal/test"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRouterRoutes(t *testing.T) {
	engine := router.Setup(test.RoleFacadeStub(model.RoleAdmin, false), discardLogger())

	tests := []struct {
		name   string
		method string
		path   string
		auth   bool
		want   int
	}{
		{name: "register is public", method: http.MethodPost, path: "/api/auth/register", want: http.StatusBadRequest},
		{name: "login is public", method: http.MethodPost, path: "/api/auth/login", want: http.StatusBadRequest},
		{name: "me requires auth", method: http.MethodGet, path: "/api/user/me", want: http.StatusUnauthorized},
		{name: "me with token", method: http.MethodGet, path: "/api/user/me", auth: true, want: http.StatusOK},
		{name: "workflow is for customers only", method: http.MethodGet, path: "/api/user/workflow", auth: true, want: http.StatusForbidden},
		{name: "orders require auth", method: http.MethodGet, path: "/api/user/orders", want: http.StatusUnauthorized},
		{name: "tailor group requires auth", method: http.MethodGet, path: "/api/tailor/orders", want: http.StatusUnauthorized},
		{name: "admin lists applications", method: http.MethodGet, path: "/api/admin/applications", auth: true, want: http.StatusOK},
		{name: "unknown route", method: http.MethodGet, path: "/api/nothing", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(""))
			if tt.auth {
				req.Header.Set("Authorization", "Bearer token")
			}
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("%s %s: status = %d, want %d", tt.method, tt.path, rec.Code, tt.want)
			}
		})
	}
}

func TestRouterRoleGates(t *testing.T) {
	// Plain customer: the workflow is open, tailor and admin groups are closed.
	engine := router.Setup(test.RoleFacadeStub(model.RoleUser, false), discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/user/workflow", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec0 := httptest.NewRecorder()
	engine.ServeHTTP(rec0, req)
	if rec0.Code != http.StatusOK {
		t.Errorf("customer on the workflow: status = %d, want 200", rec0.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/tailor/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("customer on tailor routes: status = %d, want 403", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/admin/applications", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("customer on admin routes: status = %d, want 403", rec.Code)
	}

	// Pending applicant in demo mode: read-only tailor access.
	engine = router.Setup(test.RoleFacadeStub(model.RoleUser, true), discardLogger())

	req = httptest.NewRequest(http.MethodGet, "/api/tailor/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("demo applicant reading tailor orders: status = %d, want 200", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/tailor/orders/order-1/bids", strings.NewReader(`{"amount":4800}`))
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("demo applicant placing a bid: status = %d, want 403", rec.Code)
	}

	// Approved tailor: no access to the customer workflow, /me still open.
	engine = router.Setup(test.RoleFacadeStub(model.RoleTailor, false), discardLogger())

	for _, tc := range []struct {
		method string
		path   string
		want   int
	}{
		{method: http.MethodGet, path: "/api/user/workflow", want: http.StatusForbidden},
		{method: http.MethodPost, path: "/api/user/orders", want: http.StatusForbidden},
		{method: http.MethodGet, path: "/api/user/me", want: http.StatusOK},
	} {
		req = httptest.NewRequest(tc.method, tc.path, strings.NewReader(""))
		req.Header.Set("Authorization", "Bearer token")
		rec = httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		if rec.Code != tc.want {
			t.Errorf("tailor %s %s: status = %d, want %d", tc.method, tc.path, rec.Code, tc.want)
		}
	}
}
