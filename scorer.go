package mahjong

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
)

// ScoreResult is the scored outcome of a winning hand.
type ScoreResult struct {
	Partition  Partition    // the reading that produced this score
	Yaku       []YakuHan    // normal yaku with dora, empty for yakuman hands
	Yakuman    []YakumanHit // yakuman patterns
	Fu         FuBreakdown
	Han        int   // total han; 13 per yakuman for yakuman hands
	Limit      Limit // limit tier reached
	Multiplier int   // yakuman count, 1 for kazoe yakuman, 0 otherwise
	Points     Points
	Dealer     bool
	Tsumo      bool
}

// IsYakuman reports whether the result is scored as a limit-yakuman hand.
func (r ScoreResult) IsYakuman() bool { return r.Limit == LimitYakuman }

// Scorer evaluates completed hands. It is safe for concurrent use: it holds
// only its configuration.
type Scorer struct {
	rules  Rules
	logger *slog.Logger
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithRules selects the rule variants.
func WithRules(r Rules) Option {
	return func(s *Scorer) { s.rules = r }
}

// WithLogger sets the logger used for debug tracing of partition evaluation.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scorer) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewScorer creates a scorer with DefaultRules and a silent logger unless
// options say otherwise.
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{
		rules:  DefaultRules(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rules returns the scorer's rule variants.
func (s *Scorer) Rules() Rules { return s.rules }

var defaultScorer = NewScorer()

// Score scores a hand with the default rules.
func Score(h Hand, ctx HandContext) (*ScoreResult, error) {
	return defaultScorer.Score(h, ctx)
}

// Score returns the highest-scoring reading of the hand. It fails with
// ErrMalformedHand, ErrInvalidContext, ErrNoDecomposition or ErrNoYaku.
func (s *Scorer) Score(h Hand, ctx HandContext) (*ScoreResult, error) {
	results, err := s.ScoreAll(h, ctx)
	if err != nil {
		return nil, err
	}
	best := results[0]
	s.logger.Debug("hand scored",
		"partition", best.Partition.String(),
		"han", best.Han,
		"fu", best.Fu.Total,
		"limit", best.Limit.String(),
		"total", best.Points.Total,
	)
	return &best, nil
}

// ScoreAll scores every qualifying reading of the hand, best first. Readings
// without a yaku are dropped; if none remain the error is ErrNoYaku.
func (s *Scorer) ScoreAll(h Hand, ctx HandContext) ([]ScoreResult, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Validate(h); err != nil {
		return nil, err
	}
	partitions, err := Decompose(h)
	if err != nil {
		return nil, err
	}

	results := make([]ScoreResult, 0, len(partitions))
	for _, p := range partitions {
		ev := Evaluate(p, h, ctx, s.rules)
		if !ev.Qualifies() {
			s.logger.Debug("partition has no yaku", "partition", p.String())
			continue
		}
		results = append(results, s.resolve(p, ev, h, ctx))
	}
	if len(results) == 0 {
		return nil, ErrNoYaku.Wrap(fmt.Errorf("%d readings of %s, none with a yaku", len(partitions), FormatTiles(h.AllTiles())))
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Points.Total != b.Points.Total {
			return a.Points.Total > b.Points.Total
		}
		if a.Han != b.Han {
			return a.Han > b.Han
		}
		return a.Fu.Total > b.Fu.Total
	})
	return results, nil
}

// resolve turns an evaluated partition into a result.
func (s *Scorer) resolve(p Partition, ev Evaluation, h Hand, ctx HandContext) ScoreResult {
	r := ScoreResult{
		Partition: p,
		Fu:        CalculateFu(p, h, ctx),
		Dealer:    ctx.Dealer(),
		Tsumo:     h.Tsumo,
	}
	if len(ev.Yakuman) > 0 {
		r.Yakuman = ev.Yakuman
		r.Multiplier = ev.Multiplier()
		r.Han = 13 * r.Multiplier
		r.Limit = LimitYakuman
	} else {
		r.Yaku = ev.Yaku
		r.Han = ev.Han()
		r.Limit = ClassifyLimit(r.Han, r.Fu.Total, s.rules)
		if r.Limit == LimitYakuman {
			r.Multiplier = 1
		}
	}
	base := BasePoints(r.Han, r.Fu.Total, r.Limit, r.Multiplier)
	r.Points = ResolvePoints(base, r.Dealer, r.Tsumo, ctx.Honba, ctx.RiichiSticks)
	return r
}
