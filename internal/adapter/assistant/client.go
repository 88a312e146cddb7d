// Package assistant adapts the in-app styling assistant ("Sana"). The
// shipped implementation matches keywords against canned fashion advice
// behind a configurable latency, the same contract a hosted model would have.
package assistant

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
)

// ErrEmptyMessage indicates there is nothing to reply to.
var ErrEmptyMessage = errors.New("empty assistant message")

// Reply is a single assistant turn.
type Reply struct {
	Content  string
	Positive bool
}

// Client answers customer questions about fabrics, designs and orders.
type Client interface {
	Reply(ctx context.Context, message string) (*Reply, error)
}

// rule pairs trigger keywords with a canned reply. Rules are evaluated in
// order; the first match wins.
type rule struct {
	keywords []string
	reply    Reply
}

var rules = []rule{
	{
		keywords: []string{"fabric", "silk", "cotton"},
		reply: Reply{
			Content: "For summer go with cotton lawn or chiffon; velvet and khaddar " +
				"carry winter outfits, and organza or raw silk suit formal events. " +
				"Tell me about your design and I can narrow it down.",
			Positive: true,
		},
	},
	{
		keywords: []string{"design", "style", "pattern"},
		reply: Reply{
			Content: "Angrakha cuts, peplum tops with palazzo pants and embroidered " +
				"A-line kurtas are trending right now. Geometric block prints, floral " +
				"embroidery and gota borders all pair well with them.",
			Positive: true,
		},
	},
	{
		keywords: []string{"wedding", "bridal", "shaadi"},
		reply: Reply{
			Content: "For a bridal look, traditional red or maroon works with heavy " +
				"zardozi lehengas and gold-embroidered velvet; modern pastels shine " +
				"in blush pink with silver work or peach with kundan borders. " +
				"What is your wedding color theme?",
			Positive: true,
		},
	},
	{
		keywords: []string{"tailor", "stitch", "order"},
		reply: Reply{
			Content: "Upload a fabric photo, pick or create a design, and tailors " +
				"bid on your order. Choose your favorite bid, book with your " +
				"measurements, and the finished outfit is delivered in 7-14 days.",
			Positive: true,
		},
	},
	{
		keywords: []string{"accessori", "button", "lace", "embroid"},
		reply: Reply{
			Content: "Thread, zari and mirror embroidery, pearl or kundan buttons, " +
				"and crochet or sequin borders are the most popular additions. " +
				"Browse the accessories catalog to see prices per item.",
			Positive: true,
		},
	},
	{
		keywords: []string{"hi", "hello", "hey"},
		reply: Reply{
			Content: "Hello! I'm Sana, your personal fashion assistant at StitchMate. " +
				"Ask me about fabrics, design ideas, finding a tailor, or an order " +
				"you already placed.",
			Positive: true,
		},
	},
	{
		keywords: []string{"thank"},
		reply: Reply{
			Content: "You're welcome! I'm always here for styling tips, design " +
				"suggestions, or help with your orders. Happy designing!",
			Positive: true,
		},
	},
}

var fallback = Reply{
	Content: "I can help with the design studio, fabric analysis, the virtual " +
		"try-on, finding tailors, and tracking orders. What would you like " +
		"to explore?",
	Positive: false,
}

// SimulatedClient answers from the canned rule set after a fixed delay.
// Context cancellation and deadlines are honored.
type SimulatedClient struct {
	latency time.Duration
	logger  *slog.Logger
}

// NewSimulatedClient creates a simulated assistant client.
func NewSimulatedClient(latency time.Duration, logger *slog.Logger) *SimulatedClient {
	if latency < 0 {
		latency = 0
	}
	return &SimulatedClient{latency: latency, logger: logger}
}

// Reply matches the message against the rule set, falling back to a generic
// capabilities answer.
func (c *SimulatedClient) Reply(ctx context.Context, message string) (*Reply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	lower := strings.ToLower(message)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				reply := r.reply
				c.logger.Info("assistant replied", slog.String("keyword", kw))
				return &reply, nil
			}
		}
	}

	reply := fallback
	c.logger.Info("assistant replied", slog.String("keyword", "none"))
	return &reply, nil
}

func (c *SimulatedClient) wait(ctx context.Context) error {
	if c.latency == 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(c.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
