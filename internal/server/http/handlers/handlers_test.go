package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/stitchmate/stitchmate/internal/server/http/handlers"
	"github.com/stitchmate/stitchmate/internal/server/http/middleware"
	"github.com/stitchmate/stitchmate/internal/test"
)

const testUserID int64 = 7

// newEngine mounts routes behind a stub auth layer that injects a fixed
// caller identity.
func newEngine(register func(r *gin.RouterGroup)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	group := engine.Group("/", func(c *gin.Context) {
		c.Set(middleware.UserIDContextKey, testUserID)
	})
	register(group)
	return engine
}

func performJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response: %v (%s)", err, rec.Body.String())
	}
}

func newFacadeEngine(facade *test.MarketplaceFacadeStub) *gin.Engine {
	return newEngine(func(r *gin.RouterGroup) {
		authHandler := handlers.NewAuthHandler(facade)
		workflowHandler := handlers.NewWorkflowHandler(facade)
		fabricHandler := handlers.NewFabricHandler(facade)
		designHandler := handlers.NewDesignHandler(facade)
		catalogHandler := handlers.NewCatalogHandler(facade)
		orderHandler := handlers.NewOrderHandler(facade)
		tailorHandler := handlers.NewTailorHandler(facade)
		adminHandler := handlers.NewAdminHandler(facade)
		assistantHandler := handlers.NewAssistantHandler(facade)

		r.POST("/register", authHandler.Register)
		r.POST("/login", authHandler.Login)
		r.POST("/admin/login", authHandler.AdminLogin)
		r.POST("/reset-password", authHandler.ResetPassword)
		r.GET("/me", authHandler.Me)

		r.GET("/workflow", workflowHandler.State)
		r.PUT("/workflow/step", workflowHandler.SetStep)
		r.POST("/workflow/reset", workflowHandler.Reset)
		r.POST("/workflow/accessories", workflowHandler.AddAccessory)
		r.DELETE("/workflow/accessories/:id", workflowHandler.RemoveAccessory)
		r.POST("/workflow/tryon", workflowHandler.TryOn)
		r.POST("/assistant", assistantHandler.Ask)

		r.POST("/fabric", fabricHandler.Upload)
		r.POST("/fabric/analyze", fabricHandler.Analyze)
		r.POST("/designs/generate", designHandler.Generate)
		r.POST("/designs/select", designHandler.Select)

		r.GET("/accessories", catalogHandler.Accessories)
		r.GET("/tailors", catalogHandler.Tailors)

		r.POST("/orders", orderHandler.Post)
		r.GET("/orders", orderHandler.List)
		r.GET("/orders/:id", orderHandler.Get)
		r.GET("/orders/:id/bids", orderHandler.Bids)
		r.POST("/orders/:id/select-bid", orderHandler.SelectBid)
		r.POST("/orders/:id/booking", orderHandler.Booking)
		r.POST("/orders/:id/payment", orderHandler.Pay)
		r.POST("/orders/:id/review", orderHandler.Review)

		r.POST("/tailor-application", tailorHandler.Apply)
		r.GET("/tailor/orders", tailorHandler.OpenOrders)
		r.POST("/tailor/orders/:id/bids", tailorHandler.PlaceBid)
		r.POST("/tailor/orders/:id/delivered", tailorHandler.ConfirmDelivery)
		r.GET("/tailor/bids", tailorHandler.MyBids)
		r.GET("/tailor/booked", tailorHandler.BookedOrders)
		r.GET("/tailor/earnings", tailorHandler.Earnings)

		r.GET("/applications", adminHandler.Applications)
		r.POST("/applications/:id/approve", adminHandler.Approve)
		r.POST("/applications/:id/reject", adminHandler.Reject)
	})
}
