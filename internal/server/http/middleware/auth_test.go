package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/stitchmate/stitchmate/internal/domain/model"
	"github.com/stitchmate/stitchmate/internal/server/http/middleware"
	"github.com/stitchmate/stitchmate/internal/test"
)

func protectedEngine(facade *test.MarketplaceFacadeStub, role model.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	group := engine.Group("/", middleware.AuthRequired(facade))
	if role != model.RoleNone {
		group.Use(middleware.RoleRequired(facade, role))
	}
	group.GET("/resource", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetInt64(middleware.UserIDContextKey)})
	})
	group.POST("/resource", func(c *gin.Context) { c.Status(http.StatusOK) })
	return engine
}

func TestAuthRequired(t *testing.T) {
	engine := protectedEngine(&test.MarketplaceFacadeStub{}, model.RoleNone)

	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/resource", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("bearer token: status = %d, want 200", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/resource", nil)
	req.AddCookie(&http.Cookie{Name: "stitchmate_token", Value: "token"})
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("cookie token: status = %d, want 200", rec.Code)
	}
}

func TestRoleRequired(t *testing.T) {
	tests := []struct {
		name     string
		resolved model.Role
		demoMode bool
		gate     model.Role
		method   string
		want     int
	}{
		{name: "tailor hits tailor routes", resolved: model.RoleTailor, gate: model.RoleTailor, method: http.MethodGet, want: http.StatusOK},
		{name: "user blocked from tailor routes", resolved: model.RoleUser, gate: model.RoleTailor, method: http.MethodGet, want: http.StatusForbidden},
		{name: "demo applicant may read", resolved: model.RoleUser, demoMode: true, gate: model.RoleTailor, method: http.MethodGet, want: http.StatusOK},
		{name: "demo applicant may not write", resolved: model.RoleUser, demoMode: true, gate: model.RoleTailor, method: http.MethodPost, want: http.StatusForbidden},
		{name: "admin hits admin routes", resolved: model.RoleAdmin, gate: model.RoleAdmin, method: http.MethodGet, want: http.StatusOK},
		{name: "tailor blocked from admin routes", resolved: model.RoleTailor, gate: model.RoleAdmin, method: http.MethodGet, want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := test.RoleFacadeStub(tt.resolved, tt.demoMode)
			engine := protectedEngine(facade, tt.gate)

			req := httptest.NewRequest(tt.method, "/resource", nil)
			req.Header.Set("Authorization", "Bearer token")
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestSetAuthCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/login", func(c *gin.Context) {
		middleware.SetAuthCookie(c, "issued-token")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "stitchmate_token" || cookies[0].Value != "issued-token" {
		t.Errorf("unexpected cookies: %+v", cookies)
	}
	if !cookies[0].HttpOnly {
		t.Error("auth cookie must be http-only")
	}
	if rec.Header().Get("Authorization") != "Bearer issued-token" {
		t.Errorf("authorization header = %q", rec.Header().Get("Authorization"))
	}
}
