// Package service is the transport-independent scoring entry point used by the
// HTTP API, the NATS responder and the Lambda handler.
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"sync/atomic"

	mahjong "mahjong-go"
	"mahjong-go/internal/cache"
	"mahjong-go/internal/wire"
)

// ScoreService scores wire requests, consulting an optional result cache.
type ScoreService struct {
	scorer *mahjong.Scorer
	store  cache.Store
	logger *slog.Logger

	hits   atomic.Int64
	misses atomic.Int64
}

// New creates a service. store may be nil to disable caching.
func New(scorer *mahjong.Scorer, store cache.Store, logger *slog.Logger) *ScoreService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScoreService{scorer: scorer, store: store, logger: logger}
}

// Rules returns the rule variants results are computed under.
func (s *ScoreService) Rules() mahjong.Rules { return s.scorer.Rules() }

// ScoreJSON parses a raw JSON request and scores it.
func (s *ScoreService) ScoreJSON(ctx context.Context, raw []byte) (*wire.Result, error) {
	req, err := wire.ParseRequest(raw)
	if err != nil {
		return nil, err
	}
	return s.Score(ctx, req)
}

// Score builds, scores and caches one request. Cache failures are logged and
// never fail the request.
func (s *ScoreService) Score(ctx context.Context, req *wire.Request) (*wire.Result, error) {
	h, hctx, err := req.Build()
	if err != nil {
		return nil, err
	}
	key := cacheKey(h, hctx, s.scorer.Rules())

	if cached, ok := s.lookup(ctx, key); ok {
		s.hits.Add(1)
		return cached, nil
	}
	s.misses.Add(1)

	r, err := s.scorer.Score(h, hctx)
	if err != nil {
		s.logger.Debug("Hand rejected", "hand", req.Hand, "code", mahjong.GetCode(err), "error", err)
		return nil, err
	}
	res := wire.NewResult(r)
	s.save(ctx, key, res)
	return res, nil
}

// ScoreAll returns every scoring reading of a request, best first. It is not
// cached.
func (s *ScoreService) ScoreAll(_ context.Context, req *wire.Request) ([]*wire.Result, error) {
	h, hctx, err := req.Build()
	if err != nil {
		return nil, err
	}
	all, err := s.scorer.ScoreAll(h, hctx)
	if err != nil {
		return nil, err
	}
	out := make([]*wire.Result, len(all))
	for i := range all {
		out[i] = wire.NewResult(&all[i])
	}
	return out, nil
}

// CacheStats reports cache hits and misses since start.
func (s *ScoreService) CacheStats() (hits, misses int64) {
	return s.hits.Load(), s.misses.Load()
}

func (s *ScoreService) lookup(ctx context.Context, key string) (*wire.Result, bool) {
	if s.store == nil {
		return nil, false
	}
	data, ok, err := s.store.Get(ctx, key)
	if err != nil {
		s.logger.Warn("Score cache read failed", "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var res wire.Result
	if err := json.Unmarshal(data, &res); err != nil {
		s.logger.Warn("Discarding unreadable cache entry", "key", key, "error", err)
		return nil, false
	}
	return &res, true
}

func (s *ScoreService) save(ctx context.Context, key string, res *wire.Result) {
	if s.store == nil {
		return
	}
	data, err := json.Marshal(res)
	if err != nil {
		s.logger.Error("Failed to marshal result", "error", err)
		return
	}
	if err := s.store.Set(ctx, key, data); err != nil {
		s.logger.Warn("Score cache write failed", "error", err)
	}
}

func cacheKey(h mahjong.Hand, ctx mahjong.HandContext, rules mahjong.Rules) string {
	sum := sha256.Sum256([]byte(wire.CanonicalKey(h, ctx, rules)))
	return hex.EncodeToString(sum[:])
}
