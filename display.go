package mahjong

import (
	"fmt"
	"strings"
)

// FormatCalls formats calls for display, e.g. "Pon 444p (toimen) | Ankan 1111s".
func FormatCalls(calls []Call) string {
	if len(calls) == 0 {
		return "None"
	}
	parts := make([]string, len(calls))
	for i, c := range calls {
		parts[i] = fmt.Sprintf("%s %s", c.Type, FormatTiles(c.Tiles))
		if c.From != SeatNone {
			parts[i] += fmt.Sprintf(" (%s)", c.From)
		}
	}
	return strings.Join(parts, " | ")
}

// FormatHand formats a hand for terminal output.
func FormatHand(h Hand) string {
	how := If(h.Tsumo, "tsumo", "ron")
	return fmt.Sprintf("%s  calls: %s  win: %s (%s)", FormatTiles(h.Concealed), FormatCalls(h.Calls), h.WinningTile, how)
}

// Headline is the one-line summary, e.g. "30 fu 3 han: 3900" or "Mangan: 2000/4000".
func (r ScoreResult) Headline() string {
	switch {
	case r.Limit == LimitYakuman && r.Multiplier > 1:
		return fmt.Sprintf("%dx Yakuman: %s", r.Multiplier, r.Points)
	case r.Limit != LimitNone:
		return fmt.Sprintf("%s: %s", r.Limit, r.Points)
	}
	return fmt.Sprintf("%d fu %d han: %s", r.Fu.Total, r.Han, r.Points)
}

// FormatResult renders a result with its yaku and fu breakdown.
func FormatResult(r ScoreResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", r.Headline())
	fmt.Fprintf(&b, "  reading: %s\n", r.Partition)
	for _, y := range r.Yakuman {
		fmt.Fprintf(&b, "  %-26s x%d\n", y.Yakuman, y.Multiplier)
	}
	for _, y := range r.Yaku {
		fmt.Fprintf(&b, "  %-26s %d han\n", y.Yaku, y.Han)
	}
	if len(r.Yakuman) == 0 {
		for _, f := range r.Fu.Items {
			fmt.Fprintf(&b, "  %-26s %d fu\n", f.Reason, f.Fu)
		}
	}
	if r.Points.Honba > 0 || r.Points.Sticks > 0 {
		fmt.Fprintf(&b, "  honba %d, sticks %d\n", r.Points.Honba, r.Points.Sticks)
	}
	fmt.Fprintf(&b, "  total %d", r.Points.Total)
	return b.String()
}
