// Package calculator holds the toolkit-independent part of the desktop
// calculator: turning form fields into a request and a result into text.
package calculator

import (
	"fmt"
	"strconv"
	"strings"

	mahjong "mahjong-go"
	"mahjong-go/internal/wire"
)

// Winds lists the wind choices offered by the form.
var Winds = []string{"East", "South", "West", "North"}

// Situational flag labels, in display order.
const (
	FlagRiichi       = "Riichi"
	FlagDoubleRiichi = "Double riichi"
	FlagIppatsu      = "Ippatsu"
	FlagHaitei       = "Haitei"
	FlagHoutei       = "Houtei"
	FlagRinshan      = "Rinshan"
	FlagChankan      = "Chankan"
	FlagTenhou       = "Tenhou"
	FlagChiihou      = "Chiihou"
)

// Flags is the order the flag checkboxes appear in.
var Flags = []string{
	FlagRiichi, FlagDoubleRiichi, FlagIppatsu, FlagHaitei, FlagHoutei,
	FlagRinshan, FlagChankan, FlagTenhou, FlagChiihou,
}

// Form mirrors the calculator's input widgets.
type Form struct {
	Hand    string
	Calls   string // space separated type:tiles[@seat]
	Win     string
	Tsumo   bool
	Round   string
	Seat    string
	Flags   map[string]bool
	Dora    string
	Ura     string
	Honba   string
	Sticks  string
	AkaDora string
}

// Request converts the form. Blank counters read as zero.
func (f Form) Request() (*wire.Request, error) {
	req := &wire.Request{
		Hand:              f.Hand,
		WinningTile:       f.Win,
		Tsumo:             f.Tsumo,
		RoundWind:         f.Round,
		SeatWind:          f.Seat,
		Riichi:            f.Flags[FlagRiichi],
		DoubleRiichi:      f.Flags[FlagDoubleRiichi],
		Ippatsu:           f.Flags[FlagIppatsu],
		Haitei:            f.Flags[FlagHaitei],
		Houtei:            f.Flags[FlagHoutei],
		Rinshan:           f.Flags[FlagRinshan],
		Chankan:           f.Flags[FlagChankan],
		Tenhou:            f.Flags[FlagTenhou],
		Chiihou:           f.Flags[FlagChiihou],
		DoraIndicators:    f.Dora,
		UraDoraIndicators: f.Ura,
	}
	for _, field := range strings.Fields(f.Calls) {
		typ, rest, ok := strings.Cut(field, ":")
		if !ok {
			return nil, mahjong.ErrMalformedHand.Wrap(fmt.Errorf("call %q must look like type:tiles", field))
		}
		tiles, from, _ := strings.Cut(rest, "@")
		req.Calls = append(req.Calls, wire.CallSpec{Type: typ, Tiles: tiles, From: from})
	}

	var err error
	if req.Honba, err = counter("honba", f.Honba); err != nil {
		return nil, err
	}
	if req.RiichiSticks, err = counter("riichi sticks", f.Sticks); err != nil {
		return nil, err
	}
	if req.AkaDora, err = counter("red fives", f.AkaDora); err != nil {
		return nil, err
	}
	return req, nil
}

func counter(name, s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, mahjong.ErrInvalidContext.Wrap(fmt.Errorf("%s: %q is not a number", name, s))
	}
	return n, nil
}

// Evaluate scores the form and renders the result, or the error, as text.
func Evaluate(scorer *mahjong.Scorer, f Form) string {
	req, err := f.Request()
	if err != nil {
		return "Error: " + err.Error()
	}
	h, ctx, err := req.Build()
	if err != nil {
		return "Error: " + err.Error()
	}
	r, err := scorer.Score(h, ctx)
	if err != nil {
		return "Error: " + err.Error()
	}
	return mahjong.FormatResult(*r)
}

// WaitsText lists the waits of a 13-tile form, ignoring the winning tile.
func WaitsText(f Form) string {
	req, err := f.Request()
	if err != nil {
		return "Error: " + err.Error()
	}
	concealed, calls, err := (&wire.WaitsRequest{Hand: req.Hand, Calls: req.Calls}).Build()
	if err != nil {
		return "Error: " + err.Error()
	}
	waits := mahjong.Waits(concealed, calls)
	if len(waits) == 0 {
		return "Not tenpai"
	}
	names := make([]string, len(waits))
	for i, t := range waits {
		names[i] = t.Name()
	}
	return "Waits: " + strings.Join(names, ", ")
}
