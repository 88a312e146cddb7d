package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stitchmate/stitchmate/internal/config"
	"github.com/stitchmate/stitchmate/internal/test"
	"github.com/stitchmate/stitchmate/internal/worker"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewHTTPServer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	srv := newHTTPServer(serverParams{
		Config: &config.Config{RunAddress: ":9099"},
		Router: engine,
	})
	if srv.Addr != ":9099" {
		t.Errorf("server addr = %q", srv.Addr)
	}
	if srv.Handler == nil {
		t.Error("server handler not set")
	}
}

func TestLifecycleStartStop(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{ShutdownTimeout: time.Second}
	collector := worker.NewBidCollector(&test.CollectorFacadeStub{}, 10*time.Millisecond, 1, 1, discardLogger())
	recorder := &test.LifecycleRecorder{}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: &test.ShutdownerStub{},
		Logger:     discardLogger(),
		Server:     &http.Server{Addr: "127.0.0.1:0", Handler: gin.New()},
		Collector:  collector,
		Config:     cfg,
	})

	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected 1 lifecycle hook, got %d", len(recorder.Hooks))
	}
	hook := recorder.Hooks[0]

	if err := hook.OnStart(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	time.Sleep(30 * time.Millisecond)
	if err := hook.OnStop(context.Background()); err != nil {
		t.Fatalf("stop: %v", err)
	}
}

func TestLifecycleServerFailureTriggersShutdown(t *testing.T) {
	gin.SetMode(gin.TestMode)

	shutdowner := &test.ShutdownerStub{Called: make(chan struct{}, 1)}
	collector := worker.NewBidCollector(&test.CollectorFacadeStub{}, time.Second, 1, 1, discardLogger())
	recorder := &test.LifecycleRecorder{}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     discardLogger(),
		// Unroutable listen address makes ListenAndServe fail immediately.
		Server:    &http.Server{Addr: "127.0.0.1:1:bad", Handler: gin.New()},
		Collector: collector,
		Config:    &config.Config{ShutdownTimeout: time.Second},
	})

	if err := recorder.Hooks[0].OnStart(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	select {
	case <-shutdowner.Called:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown not requested after server failure")
	}
	collector.Stop()
}

func TestLifecycleCollectorOutlivesStartContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	facade := &test.CollectorFacadeStub{}
	collector := worker.NewBidCollector(facade, 10*time.Millisecond, 1, 1, discardLogger())
	recorder := &test.LifecycleRecorder{}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: &test.ShutdownerStub{},
		Logger:     discardLogger(),
		Server:     &http.Server{Addr: "127.0.0.1:0", Handler: gin.New()},
		Collector:  collector,
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})
	hook := recorder.Hooks[0]

	startCtx, cancel := context.WithCancel(context.Background())
	if err := hook.OnStart(startCtx); err != nil {
		t.Fatalf("start: %v", err)
	}
	// fx cancels the start context as soon as startup completes.
	cancel()

	deadline := time.After(time.Second)
	before := facade.CollectCalls()
	for facade.CollectCalls() <= before {
		select {
		case <-deadline:
			t.Fatal("collector stopped polling after the start context was cancelled")
		case <-time.After(5 * time.Millisecond):
		}
	}

	if err := hook.OnStop(context.Background()); err != nil {
		t.Fatalf("stop: %v", err)
	}
}
