package natsrpc

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"mahjong-go/internal/wire"
)

// Requester sends score requests to a remote responder.
type Requester struct {
	nc      *nats.Conn
	subject string
	timeout time.Duration
}

// NewRequester creates a requester. A zero timeout means 5s.
func NewRequester(nc *nats.Conn, subject string, timeout time.Duration) *Requester {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Requester{nc: nc, subject: subject, timeout: timeout}
}

// Score sends req and waits for the reply. Scoring failures come back as coded
// errors.
func (q *Requester) Score(ctx context.Context, req *wire.Request) (*wire.Result, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()
	msg, err := q.nc.RequestWithContext(ctx, q.subject, data)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", q.subject, err)
	}
	return decodeReply(msg.Data)
}

func decodeReply(data []byte) (*wire.Result, error) {
	var reply Reply
	if err := json.Unmarshal(data, &reply); err != nil {
		return nil, fmt.Errorf("decode reply: %w", err)
	}
	if err := reply.Err(); err != nil {
		return nil, err
	}
	return reply.Data, nil
}
