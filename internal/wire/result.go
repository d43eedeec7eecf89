package wire

import (
	mahjong "mahjong-go"
)

// YakuView is one scored yaku.
type YakuView struct {
	Name string `json:"name"`
	Han  int    `json:"han"`
}

// YakumanView is one scored yakuman.
type YakumanView struct {
	Name       string `json:"name"`
	Multiplier int    `json:"multiplier"`
}

// FuView is one line of the fu breakdown.
type FuView struct {
	Reason string `json:"reason"`
	Fu     int    `json:"fu"`
}

// Result is the transport form of a scored hand.
type Result struct {
	Headline   string         `json:"headline"`
	Han        int            `json:"han"`
	Fu         int            `json:"fu"`
	Limit      string         `json:"limit,omitempty"`
	Multiplier int            `json:"multiplier,omitempty"`
	Yaku       []YakuView     `json:"yaku,omitempty"`
	Yakuman    []YakumanView  `json:"yakuman,omitempty"`
	FuItems    []FuView       `json:"fu_breakdown,omitempty"`
	Points     mahjong.Points `json:"points"`
	Partition  string         `json:"partition"`
	Shape      string         `json:"shape"`
	Wait       string         `json:"wait"`
	Dealer     bool           `json:"dealer"`
	Tsumo      bool           `json:"tsumo"`
}

// NewResult flattens a score result into names and numbers.
func NewResult(r *mahjong.ScoreResult) *Result {
	out := &Result{
		Headline:   r.Headline(),
		Han:        r.Han,
		Fu:         r.Fu.Total,
		Multiplier: r.Multiplier,
		Points:     r.Points,
		Partition:  r.Partition.String(),
		Shape:      r.Partition.Shape.String(),
		Wait:       r.Partition.Wait.String(),
		Dealer:     r.Dealer,
		Tsumo:      r.Tsumo,
	}
	if r.Limit != mahjong.LimitNone {
		out.Limit = r.Limit.String()
	}
	for _, y := range r.Yaku {
		out.Yaku = append(out.Yaku, YakuView{Name: y.Yaku.String(), Han: y.Han})
	}
	for _, y := range r.Yakuman {
		out.Yakuman = append(out.Yakuman, YakumanView{Name: y.Yakuman.String(), Multiplier: y.Multiplier})
	}
	for _, f := range r.Fu.Items {
		out.FuItems = append(out.FuItems, FuView{Reason: f.Reason.String(), Fu: f.Fu})
	}
	return out
}
