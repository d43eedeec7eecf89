package natsrpc

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mahjong "mahjong-go"
	"mahjong-go/internal/config"
	"mahjong-go/internal/service"
)

func newTestResponder() *Responder {
	svc := service.New(mahjong.NewScorer(), nil, nil)
	return NewResponder(nil, svc, ResponderConfig{Subject: "mahjong.score", QueueGroup: "test"})
}

func TestNewResponder_Defaults(t *testing.T) {
	r := newTestResponder()
	assert.Equal(t, 8, r.config.WorkerCount)
	assert.Equal(t, 1024, r.config.BufferSize)

	cur, capacity := r.GetBufferUsage()
	assert.Zero(t, cur)
	assert.Zero(t, capacity)
	assert.NoError(t, r.Stop())
}

func TestResponder_Handle_Success(t *testing.T) {
	r := newTestResponder()
	out := r.handle(context.Background(), []byte(`{"hand":"123456m123p22678s","winning_tile":"6s","tsumo":true,"round_wind":"east","seat_wind":"south"}`))

	var reply Reply
	require.NoError(t, json.Unmarshal(out, &reply))
	assert.Equal(t, mahjong.CodeOK, reply.Code)
	require.NotNil(t, reply.Data)
	assert.Equal(t, "20 fu 2 han: 400/700", reply.Data.Headline)

	res, err := decodeReply(out)
	require.NoError(t, err)
	assert.Equal(t, 1500, res.Points.Total)
}

func TestResponder_Handle_Errors(t *testing.T) {
	r := newTestResponder()
	tests := []struct {
		name string
		body string
		want *mahjong.ScoreError
	}{
		{"invalid json", `not json`, mahjong.ErrInvalidRequest},
		{"malformed", `{"hand":"12m","winning_tile":"3m","round_wind":"e","seat_wind":"s"}`, mahjong.ErrMalformedHand},
		{"no yaku", `{"hand":"123456m123p2279s","winning_tile":"8s","round_wind":"e","seat_wind":"s"}`, mahjong.ErrNoYaku},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := r.handle(context.Background(), []byte(tt.body))

			var reply Reply
			require.NoError(t, json.Unmarshal(out, &reply))
			assert.Equal(t, tt.want.Code, reply.Code)
			assert.Equal(t, tt.want.Message, reply.Message)
			assert.Nil(t, reply.Data)

			_, err := decodeReply(out)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecodeReply_Garbage(t *testing.T) {
	_, err := decodeReply([]byte("{"))
	assert.Error(t, err)
}

func TestReply_Err(t *testing.T) {
	assert.NoError(t, Reply{Code: mahjong.CodeOK}.Err())

	err := Reply{Code: mahjong.CodeInvalidContext, Message: "invalid hand context"}.Err()
	assert.ErrorIs(t, err, mahjong.ErrInvalidContext)
	assert.Equal(t, "[1002] invalid hand context", err.Error())
}

func TestNewClient_Unreachable(t *testing.T) {
	_, err := NewClient(config.NATSConfig{URL: "nats://127.0.0.1:1", MaxReconnects: 0, ReconnectWait: time.Millisecond})
	assert.Error(t, err)
}

func TestNewRequester_DefaultTimeout(t *testing.T) {
	q := NewRequester(nil, "mahjong.score", 0)
	assert.Equal(t, 5*time.Second, q.timeout)
}
