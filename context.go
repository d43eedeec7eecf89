package mahjong

import (
	"fmt"
	"strings"
)

// Wind is a seat or round wind. Its value equals the honor rank of the wind tile.
type Wind uint8

const (
	WindEast  Wind = East
	WindSouth Wind = South
	WindWest  Wind = West
	WindNorth Wind = North
)

var windNames = map[Wind]string{WindEast: "East", WindSouth: "South", WindWest: "West", WindNorth: "North"}

func (w Wind) String() string {
	if n, ok := windNames[w]; ok {
		return n
	}
	return "Unknown"
}

// Valid reports whether w is one of the four winds.
func (w Wind) Valid() bool { return w >= WindEast && w <= WindNorth }

// Tile returns the honor tile for the wind.
func (w Wind) Tile() Tile { return Tile{Suit: SuitHonor, Rank: uint8(w)} }

// ParseWind accepts "east", "e", "1z" or "1" (and the other winds likewise).
func ParseWind(s string) (Wind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "east", "e", "1z", "1", "ton":
		return WindEast, nil
	case "south", "s", "2z", "2", "nan":
		return WindSouth, nil
	case "west", "w", "3z", "3", "sha":
		return WindWest, nil
	case "north", "n", "4z", "4", "pei":
		return WindNorth, nil
	}
	return 0, ErrInvalidContext.Wrap(fmt.Errorf("unknown wind %q", s))
}

// HandContext carries the situational facts about a win that are not visible in
// the tiles themselves. It is supplied by the caller per hand.
type HandContext struct {
	RoundWind Wind // prevailing wind
	SeatWind  Wind // winner's seat; East is the dealer

	Riichi       bool // declared riichi
	DoubleRiichi bool // riichi declared on the first uninterrupted turn
	Ippatsu      bool // won within one go-around of riichi
	Haitei       bool // self-draw on the last wall tile
	Houtei       bool // ron on the last discard
	Rinshan      bool // self-draw on a kan replacement tile
	Chankan      bool // ron on a tile added to a kan
	Tenhou       bool // dealer's initial hand is complete
	Chiihou      bool // non-dealer completes on the first uninterrupted draw

	DoraIndicators    []Tile // revealed indicators
	UraDoraIndicators []Tile // only count with riichi
	AkaDora           int    // red fives held

	Honba        int // repeat counters
	RiichiSticks int // deposits on the table, collected by the winner
}

// Dealer reports whether the winner holds the East seat.
func (c HandContext) Dealer() bool { return c.SeatWind == WindEast }

// Validate checks the context against itself and the hand it describes.
func (c HandContext) Validate(h Hand) error {
	bad := func(format string, args ...any) error {
		return ErrInvalidContext.Wrap(fmt.Errorf(format, args...))
	}
	switch {
	case !c.RoundWind.Valid():
		return bad("round wind not set")
	case !c.SeatWind.Valid():
		return bad("seat wind not set")
	case c.DoubleRiichi && !c.Riichi:
		return bad("double riichi without riichi")
	case (c.Riichi || c.Ippatsu) && !h.Closed():
		return bad("riichi with an open hand")
	case c.Ippatsu && !c.Riichi:
		return bad("ippatsu without riichi")
	case c.Haitei && !h.Tsumo:
		return bad("haitei requires a self-draw")
	case c.Houtei && h.Tsumo:
		return bad("houtei requires a ron")
	case c.Chankan && h.Tsumo:
		return bad("chankan requires a ron")
	case c.Rinshan && (!h.Tsumo || h.KanCount() == 0):
		return bad("rinshan requires a self-draw after a kan")
	case c.Rinshan && c.Haitei:
		return bad("rinshan and haitei are exclusive")
	case c.Tenhou && (!c.Dealer() || !h.Tsumo || len(h.Calls) > 0):
		return bad("tenhou requires a dealer self-draw without calls")
	case c.Chiihou && (c.Dealer() || !h.Tsumo || len(h.Calls) > 0):
		return bad("chiihou requires a non-dealer self-draw without calls")
	case c.AkaDora < 0 || c.Honba < 0 || c.RiichiSticks < 0:
		return bad("negative counter")
	case c.AkaDora > 3:
		return bad("%d red fives, at most 3", c.AkaDora)
	case len(c.UraDoraIndicators) > 0 && !c.Riichi:
		return bad("ura dora without riichi")
	}
	for _, t := range append(append([]Tile(nil), c.DoraIndicators...), c.UraDoraIndicators...) {
		if !t.Valid() {
			return bad("invalid dora indicator %v", t)
		}
	}
	return nil
}
