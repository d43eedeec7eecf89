package natsrpc

import (
	"context"
	"log/slog"
	"sync"

	"github.com/nats-io/nats.go"

	"mahjong-go/internal/wire"
)

// Scorer is what the responder needs from the scoring service.
type Scorer interface {
	ScoreJSON(ctx context.Context, raw []byte) (*wire.Result, error)
}

// ResponderConfig sets the subject and the worker pool size.
type ResponderConfig struct {
	Subject     string
	QueueGroup  string
	WorkerCount int
	BufferSize  int
}

// Responder answers score requests on a queue subscription. Messages are
// handed to a fixed pool of workers through a buffered channel; when the
// buffer is full the request is dropped and the requester times out.
type Responder struct {
	nc           *nats.Conn
	scorer       Scorer
	logger       *slog.Logger
	subscription *nats.Subscription
	config       ResponderConfig
	msgChan      chan *nats.Msg
	wg           sync.WaitGroup
	cancelFunc   context.CancelFunc
}

// NewResponder creates a responder. Zero sizes get defaults.
func NewResponder(nc *nats.Conn, scorer Scorer, config ResponderConfig) *Responder {
	if config.WorkerCount <= 0 {
		config.WorkerCount = 8
	}
	if config.BufferSize <= 0 {
		config.BufferSize = 1024
	}

	return &Responder{
		nc:     nc,
		scorer: scorer,
		logger: slog.Default(),
		config: config,
	}
}

// Start subscribes and launches the workers.
func (r *Responder) Start(ctx context.Context) error {
	r.msgChan = make(chan *nats.Msg, r.config.BufferSize)

	workerCtx, cancel := context.WithCancel(ctx)
	r.cancelFunc = cancel

	for i := 0; i < r.config.WorkerCount; i++ {
		r.wg.Add(1)
		go r.worker(workerCtx)
	}

	sub, err := r.nc.QueueSubscribe(r.config.Subject, r.config.QueueGroup, func(msg *nats.Msg) {
		select {
		case r.msgChan <- msg:
		default:
			r.logger.Warn("Score buffer full, dropping request", "bufferSize", r.config.BufferSize)
		}
	})
	if err != nil {
		cancel()
		return err
	}

	r.subscription = sub
	r.logger.Info("NATS responder started",
		"subject", r.config.Subject,
		"queueGroup", r.config.QueueGroup,
		"workerCount", r.config.WorkerCount,
		"bufferSize", r.config.BufferSize,
	)
	return nil
}

func (r *Responder) worker(ctx context.Context) {
	defer r.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-r.msgChan:
			if !ok {
				return
			}
			if err := msg.Respond(r.handle(ctx, msg.Data)); err != nil {
				r.logger.Error("Failed to respond", "error", err)
			}
		}
	}
}

// handle scores one request body and returns the encoded reply.
func (r *Responder) handle(ctx context.Context, data []byte) []byte {
	res, err := r.scorer.ScoreJSON(ctx, data)
	if err != nil {
		r.logger.Debug("Score request failed", "error", err)
		return encodeReply(errorReply(err))
	}
	return encodeReply(successReply(res))
}

// Stop unsubscribes and waits for the workers to finish.
func (r *Responder) Stop() error {
	if r.subscription != nil {
		if err := r.subscription.Unsubscribe(); err != nil {
			r.logger.Error("Failed to unsubscribe", "error", err)
		}
	}

	// msgChan stays open: a callback already in flight may still send to it.
	if r.cancelFunc != nil {
		r.cancelFunc()
	}

	r.wg.Wait()

	r.logger.Info("NATS responder stopped")
	return nil
}

// GetBufferUsage reports queued requests against buffer capacity.
func (r *Responder) GetBufferUsage() (current int, capacity int) {
	if r.msgChan == nil {
		return 0, 0
	}
	return len(r.msgChan), cap(r.msgChan)
}
