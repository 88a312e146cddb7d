package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stitchmate/stitchmate/internal/adapter/assistant"
	"github.com/stitchmate/stitchmate/internal/test"
)

func TestAssistantAsk(t *testing.T) {
	facade := &test.MarketplaceFacadeStub{
		AssistantFn: func(ctx context.Context, message string) (*assistant.Reply, error) {
			if message != "which fabric suits a summer kurta?" {
				t.Errorf("message = %q", message)
			}
			return &assistant.Reply{Content: "Cotton breathes best in the heat.", Positive: true}, nil
		},
	}
	rec := performJSON(t, newFacadeEngine(facade), http.MethodPost, "/assistant", map[string]string{
		"message": "which fabric suits a summer kurta?",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Reply    string `json:"reply"`
		Positive bool   `json:"positive"`
	}
	decodeJSON(t, rec, &resp)
	if resp.Reply != "Cotton breathes best in the heat." || !resp.Positive {
		t.Errorf("unexpected reply: %+v", resp)
	}
}

func TestAssistantAskEmptyMessage(t *testing.T) {
	facade := &test.MarketplaceFacadeStub{
		AssistantFn: func(ctx context.Context, message string) (*assistant.Reply, error) {
			return nil, assistant.ErrEmptyMessage
		},
	}
	rec := performJSON(t, newFacadeEngine(facade), http.MethodPost, "/assistant", map[string]string{
		"message": "",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}
