package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress         string
	DatabaseURI        string
	TokenSecret        string
	DeliveryFee        float64
	StudioLatency      time.Duration
	BidPollInterval    time.Duration
	WorkerPoolSize     int
	MaxOrdersBatch     int
	ShutdownTimeout    time.Duration
	StripeAPIKey       string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	FabricBucket       string
}

const (
	defaultRunAddress      = ":8080"
	defaultTokenSecret     = "change-me-in-production"
	defaultDeliveryFee     = 200
	defaultStudioLatency   = 2 * time.Second
	defaultBidPollInterval = 3 * time.Second
	defaultWorkerPoolSize  = 4
	defaultMaxOrdersBatch  = 32
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from an optional .env file, environment
// variables and flags.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:         getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:        getString(lookup, "DATABASE_URI", ""),
		TokenSecret:        getString(lookup, "TOKEN_SECRET", defaultTokenSecret),
		DeliveryFee:        getFloat(lookup, "DELIVERY_FEE", defaultDeliveryFee),
		StudioLatency:      getDuration(lookup, "STUDIO_LATENCY", defaultStudioLatency),
		BidPollInterval:    getDuration(lookup, "BID_POLL_INTERVAL", defaultBidPollInterval),
		WorkerPoolSize:     getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		MaxOrdersBatch:     getInt(lookup, "POLL_BATCH_SIZE", defaultMaxOrdersBatch),
		ShutdownTimeout:    getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		StripeAPIKey:       getString(lookup, "STRIPE_API_KEY", ""),
		AWSRegion:          getString(lookup, "AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getString(lookup, "AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getString(lookup, "AWS_SECRET_ACCESS_KEY", ""),
		FabricBucket:       getString(lookup, "FABRIC_BUCKET", ""),
	}

	fs := flag.NewFlagSet("stitchmate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		studioLatencyStr   = cfg.StudioLatency.String()
		pollIntervalStr    = cfg.BidPollInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.TokenSecret, "token-secret", cfg.TokenSecret, "Secret for signing auth tokens")
	fs.Float64Var(&cfg.DeliveryFee, "delivery-fee", cfg.DeliveryFee, "Flat delivery fee added to every booking")
	fs.StringVar(&studioLatencyStr, "studio-latency", studioLatencyStr, "Simulated design studio latency")
	fs.StringVar(&pollIntervalStr, "poll-interval", pollIntervalStr, "Interval between bid collector polls")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent bid workers")
	fs.IntVar(&cfg.MaxOrdersBatch, "poll-batch", cfg.MaxOrdersBatch, "Maximum orders per polling batch")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.FabricBucket, "fabric-bucket", cfg.FabricBucket, "S3 bucket for fabric photos")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.StudioLatency, err = time.ParseDuration(studioLatencyStr); err != nil {
		return nil, fmt.Errorf("invalid studio latency: %w", err)
	}

	if cfg.BidPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid poll interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("TOKEN_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read token secret file: %w", err)
		}
		cfg.TokenSecret = string(content)
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.MaxOrdersBatch <= 0 {
		cfg.MaxOrdersBatch = defaultMaxOrdersBatch
	}

	if cfg.BidPollInterval <= 0 {
		cfg.BidPollInterval = defaultBidPollInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DeliveryFee < 0 {
		return nil, fmt.Errorf("delivery fee must not be negative")
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getFloat(lookup envLookup, key string, def float64) float64 {
	if v, ok := lookup(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
