package api

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	mahjong "mahjong-go"
	"mahjong-go/internal/wire"
)

// ScoreService is the scoring backend used by the handlers.
type ScoreService interface {
	Score(ctx context.Context, req *wire.Request) (*wire.Result, error)
	ScoreAll(ctx context.Context, req *wire.Request) ([]*wire.Result, error)
	Rules() mahjong.Rules
}

// ScoreHandler serves the scoring endpoints.
type ScoreHandler struct {
	svc    ScoreService
	logger *slog.Logger
}

// NewScoreHandler creates a handler.
func NewScoreHandler(svc ScoreService) *ScoreHandler {
	return &ScoreHandler{svc: svc, logger: slog.Default()}
}

// readRequest parses the body leniently, the same way the NATS responder does.
func readRequest(c *gin.Context) (*wire.Request, bool) {
	raw, err := c.GetRawData()
	if err != nil {
		ErrorWithMsg(c, mahjong.CodeInvalidRequest, err.Error())
		return nil, false
	}
	req, err := wire.ParseRequest(raw)
	if err != nil {
		ErrorFromScoreError(c, err)
		return nil, false
	}
	return req, true
}

// Score handles POST /api/v1/score.
func (h *ScoreHandler) Score(c *gin.Context) {
	req, ok := readRequest(c)
	if !ok {
		return
	}
	res, err := h.svc.Score(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	Success(c, res)
}

// ScoreAll handles POST /api/v1/score/all and lists every scoring reading.
func (h *ScoreHandler) ScoreAll(c *gin.Context) {
	req, ok := readRequest(c)
	if !ok {
		return
	}
	res, err := h.svc.ScoreAll(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	Success(c, res)
}

func (h *ScoreHandler) fail(c *gin.Context, err error) {
	if mahjong.GetCode(err) == mahjong.CodeInternal {
		h.logger.Error("Scoring failed", "path", c.FullPath(), "error", err)
	}
	ErrorFromScoreError(c, err)
}

type waitsResponse struct {
	Waits []string `json:"waits"`
}

// Waits handles POST /api/v1/waits.
func (h *ScoreHandler) Waits(c *gin.Context) {
	var req wire.WaitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorWithMsg(c, mahjong.CodeInvalidRequest, err.Error())
		return
	}
	concealed, calls, err := req.Build()
	if err != nil {
		ErrorFromScoreError(c, err)
		return
	}
	out := waitsResponse{Waits: []string{}}
	for _, t := range mahjong.Waits(concealed, calls) {
		out.Waits = append(out.Waits, t.String())
	}
	Success(c, out)
}

type catalogResponse struct {
	Rules   mahjong.Rules          `json:"rules"`
	Yaku    []mahjong.YakuEntry    `json:"yaku"`
	Yakuman []mahjong.YakumanEntry `json:"yakuman"`
}

// Yaku handles GET /api/v1/yaku.
func (h *ScoreHandler) Yaku(c *gin.Context) {
	Success(c, catalogResponse{
		Rules:   h.svc.Rules(),
		Yaku:    mahjong.YakuList(),
		Yakuman: mahjong.YakumanList(),
	})
}
