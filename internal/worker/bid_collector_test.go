package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stitchmate/stitchmate/internal/domain/model"
	"github.com/stitchmate/stitchmate/internal/test"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewBidCollectorDefaults(t *testing.T) {
	c := NewBidCollector(&test.CollectorFacadeStub{}, time.Second, 0, 0, discardLogger())
	if c.workers != 1 {
		t.Errorf("expected 1 worker, got %d", c.workers)
	}
	if c.batchSize != 1 {
		t.Errorf("expected batch size 1, got %d", c.batchSize)
	}
}

func TestBidCollectorProcessesOrders(t *testing.T) {
	facade := &test.CollectorFacadeStub{Batch: []model.Order{
		{ID: "order-1", Status: model.OrderStatusBidding},
		{ID: "order-2", Status: model.OrderStatusBidding},
	}}
	c := NewBidCollector(facade, 10*time.Millisecond, 5, 2, discardLogger())

	c.Start(context.Background())
	defer c.Stop()

	deadline := time.After(2 * time.Second)
	for {
		if len(facade.SeededOrders()) == 2 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("orders not seeded in time, got %v", facade.SeededOrders())
		case <-time.After(10 * time.Millisecond):
		}
	}

	seeded := map[string]bool{}
	for _, id := range facade.SeededOrders() {
		seeded[id] = true
	}
	if !seeded["order-1"] || !seeded["order-2"] {
		t.Errorf("expected both orders seeded, got %v", facade.SeededOrders())
	}
}

func TestBidCollectorSurvivesCollectErrors(t *testing.T) {
	facade := &test.CollectorFacadeStub{CollectErr: errors.New("db down")}
	c := NewBidCollector(facade, 10*time.Millisecond, 5, 1, discardLogger())

	c.Start(context.Background())

	deadline := time.After(2 * time.Second)
	for facade.CollectCalls() < 2 {
		select {
		case <-deadline:
			t.Fatal("collector stopped polling after an error")
		case <-time.After(10 * time.Millisecond):
		}
	}

	c.Stop()
}

func TestBidCollectorStop(t *testing.T) {
	facade := &test.CollectorFacadeStub{}
	c := NewBidCollector(facade, 10*time.Millisecond, 5, 2, discardLogger())

	c.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	c.Stop()

	calls := facade.CollectCalls()
	time.Sleep(50 * time.Millisecond)
	if facade.CollectCalls() != calls {
		t.Error("collector kept polling after Stop")
	}

	// Stop is idempotent.
	c.Stop()
}
