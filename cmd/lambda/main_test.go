package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mahjong "mahjong-go"
	"mahjong-go/internal/service"
	"mahjong-go/internal/wire"
)

const pinfuTsumo = `{"hand":"123456m123p22678s","winning_tile":"6s","tsumo":true,"round_wind":"east","seat_wind":"south"}`

func testHandler() func(context.Context, events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	svc := service.New(mahjong.NewScorer(), nil, nil)
	return newHandler(func(ctx context.Context, raw []byte) (any, error) {
		return svc.ScoreJSON(ctx, raw)
	})
}

func post(body string) events.LambdaFunctionURLRequest {
	var ev events.LambdaFunctionURLRequest
	ev.RequestContext.HTTP.Method = http.MethodPost
	ev.Body = body
	return ev
}

func TestHandler_Success(t *testing.T) {
	resp, err := testHandler()(context.Background(), post(pinfuTsumo))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])

	var res wire.Result
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &res))
	assert.Equal(t, "20 fu 2 han: 400/700", res.Headline)
}

func TestHandler_Base64Body(t *testing.T) {
	ev := post(base64.StdEncoding.EncodeToString([]byte(pinfuTsumo)))
	ev.IsBase64Encoded = true
	resp, err := testHandler()(context.Background(), ev)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ev = post("!!!not base64")
	ev.IsBase64Encoded = true
	resp, err = testHandler()(context.Background(), ev)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, resp.Body, "invalid base64 body")
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		code   int
	}{
		{"invalid json", `{"hand"`, http.StatusBadRequest, mahjong.CodeInvalidRequest},
		{"malformed", `{"hand":"12m","winning_tile":"3m","round_wind":"e","seat_wind":"s"}`, http.StatusBadRequest, mahjong.CodeMalformedHand},
		{"no yaku", `{"hand":"123456m123p2279s","winning_tile":"8s","round_wind":"e","seat_wind":"s"}`, http.StatusBadRequest, mahjong.CodeNoYaku},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := testHandler()(context.Background(), post(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			var body struct {
				Error string `json:"error"`
				Code  int    `json:"code"`
			}
			require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestHandler_MethodAndInternal(t *testing.T) {
	ev := post(pinfuTsumo)
	ev.RequestContext.HTTP.Method = http.MethodGet
	resp, err := testHandler()(context.Background(), ev)
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	broken := newHandler(func(context.Context, []byte) (any, error) {
		return nil, errors.New("boom")
	})
	resp, err = broken(context.Background(), post(pinfuTsumo))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
