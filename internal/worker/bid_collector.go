package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/stitchmate/stitchmate/internal/domain/model"
)

// MarketFacade exposes the subset of application functionality required by the collector.
type MarketFacade interface {
	CollectOrdersForBidding(ctx context.Context, limit int) ([]model.Order, error)
	SeedStarterBids(ctx context.Context, order model.Order) error
}

// BidCollector polls freshly posted orders, opens them for bidding and seeds
// starter offers concurrently.
type BidCollector struct {
	facade       MarketFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewBidCollector constructs the bid collector worker pool.
func NewBidCollector(facade MarketFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *BidCollector {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &BidCollector{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Order, batchSize*workers),
	}
}

// Start launches background processing.
func (c *BidCollector) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	for i := 0; i < c.workers; i++ {
		c.wg.Add(1)
		go c.worker(runCtx)
	}

	c.wg.Add(1)
	go c.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (c *BidCollector) Stop() {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.mu.Unlock()

	c.wg.Wait()
}

func (c *BidCollector) dispatch(ctx context.Context) {
	defer c.wg.Done()
	defer close(c.jobs)
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.fetchAndDispatch(ctx)
		}
	}
}

func (c *BidCollector) fetchAndDispatch(ctx context.Context) {
	orders, err := c.facade.CollectOrdersForBidding(ctx, c.batchSize)
	if err != nil {
		c.logger.Error("collect orders for bidding failed", slog.String("error", err.Error()))
		return
	}
	for _, order := range orders {
		select {
		case <-ctx.Done():
			return
		case c.jobs <- order:
		}
	}
}

func (c *BidCollector) worker(ctx context.Context) {
	defer c.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-c.jobs:
			if !ok {
				return
			}
			c.handleOrder(ctx, order)
		}
	}
}

func (c *BidCollector) handleOrder(ctx context.Context, order model.Order) {
	if err := c.facade.SeedStarterBids(ctx, order); err != nil {
		c.logger.Error("seed starter bids failed",
			slog.String("order", order.ID), slog.String("error", err.Error()))
		return
	}
	c.logger.Info("order opened for bidding", slog.String("order", order.ID))
}
