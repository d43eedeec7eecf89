// Command lambda serves the scorer as an AWS Lambda function URL. Settings
// come from MAHJONG_* environment variables.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	mahjong "mahjong-go"
	"mahjong-go/internal/cache"
	"mahjong-go/internal/config"
	"mahjong-go/internal/logging"
	"mahjong-go/internal/service"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type scoreFunc func(ctx context.Context, raw []byte) (any, error)

func newHandler(score scoreFunc) func(context.Context, events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	return func(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
		if event.RequestContext.HTTP.Method != "" && event.RequestContext.HTTP.Method != http.MethodPost {
			return errResp(http.StatusMethodNotAllowed, mahjong.CodeInvalidRequest, "use POST")
		}

		body := event.Body
		if event.IsBase64Encoded {
			decoded, err := base64.StdEncoding.DecodeString(body)
			if err != nil {
				return errResp(http.StatusBadRequest, mahjong.CodeInvalidRequest, "invalid base64 body")
			}
			body = string(decoded)
		}

		res, err := score(ctx, []byte(body))
		if err != nil {
			code := mahjong.GetCode(err)
			status := http.StatusBadRequest
			if code == mahjong.CodeInternal {
				slog.Error("Scoring failed", "error", err)
				status = http.StatusInternalServerError
			}
			return errResp(status, code, err.Error())
		}

		respJSON, err := json.Marshal(res)
		if err != nil {
			return errResp(http.StatusInternalServerError, mahjong.CodeInternal, err.Error())
		}
		return events.LambdaFunctionURLResponse{StatusCode: http.StatusOK, Headers: jsonHeader, Body: string(respJSON)}, nil
	}
}

func errResp(status, code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]any{"error": msg, "code": code})
	return events.LambdaFunctionURLResponse{StatusCode: status, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stdout, cfg.App)
	slog.SetDefault(logger)

	var store cache.Store = cache.NewMemoryStore(0, cfg.Redis.TTL)
	if cfg.Redis.Enabled {
		client, err := cache.NewRedisClient(context.Background(), cfg.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, using in-memory cache", "error", err)
		} else {
			store = cache.NewRedisStore(client, cfg.Redis.KeyPrefix, cfg.Redis.TTL)
		}
	}

	svc := service.New(mahjong.NewScorer(mahjong.WithRules(cfg.Rules.ToRules())), store, logger)
	lambda.Start(newHandler(func(ctx context.Context, raw []byte) (any, error) {
		return svc.ScoreJSON(ctx, raw)
	}))
}
