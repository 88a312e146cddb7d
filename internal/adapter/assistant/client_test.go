package assistant

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func testClient(latency time.Duration) *SimulatedClient {
	return NewSimulatedClient(latency, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestReplyKeywordRouting(t *testing.T) {
	client := testClient(0)

	tests := []struct {
		name     string
		message  string
		wantPart string
		positive bool
	}{
		{name: "fabric advice", message: "Which FABRIC suits summer?", wantPart: "cotton lawn", positive: true},
		{name: "design trends", message: "any design ideas?", wantPart: "Angrakha", positive: true},
		{name: "bridal", message: "planning my shaadi outfit", wantPart: "bridal look", positive: true},
		{name: "how ordering works", message: "how do I find a tailor?", wantPart: "bid on your order", positive: true},
		{name: "accessories", message: "show me lace options", wantPart: "accessories catalog", positive: true},
		{name: "greeting", message: "hello there", wantPart: "Sana", positive: true},
		{name: "gratitude", message: "thank you so much", wantPart: "welcome", positive: true},
		{name: "fallback", message: "what is the meaning of life?", wantPart: "design studio", positive: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, err := client.Reply(context.Background(), tt.message)
			if err != nil {
				t.Fatalf("reply: %v", err)
			}
			if !strings.Contains(reply.Content, tt.wantPart) {
				t.Errorf("reply %q does not mention %q", reply.Content, tt.wantPart)
			}
			if reply.Positive != tt.positive {
				t.Errorf("positive = %v, want %v", reply.Positive, tt.positive)
			}
		})
	}
}

func TestReplyRejectsEmptyMessage(t *testing.T) {
	client := testClient(0)
	if _, err := client.Reply(context.Background(), "   "); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestReplyHonorsCancellation(t *testing.T) {
	client := testClient(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Reply(ctx, "hello"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
