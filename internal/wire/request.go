// Package wire holds the transport representation of scoring requests and
// results shared by the HTTP API, the NATS responder, the Lambda handler and
// the CLI.
package wire

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	mahjong "mahjong-go"
)

// CallSpec is a call as sent over the wire.
type CallSpec struct {
	Type  string `json:"type" yaml:"type"`
	Tiles string `json:"tiles" yaml:"tiles"`
	From  string `json:"from,omitempty" yaml:"from,omitempty"`
}

// Request is one hand to score. Hand holds the concealed tiles in compact
// notation, with or without the winning tile; "0" marks a red five.
type Request struct {
	Hand        string     `json:"hand" yaml:"hand"`
	Calls       []CallSpec `json:"calls,omitempty" yaml:"calls,omitempty"`
	WinningTile string     `json:"winning_tile" yaml:"winning_tile"`
	Tsumo       bool       `json:"tsumo" yaml:"tsumo"`

	RoundWind string `json:"round_wind" yaml:"round_wind"`
	SeatWind  string `json:"seat_wind" yaml:"seat_wind"`

	Riichi       bool `json:"riichi,omitempty" yaml:"riichi,omitempty"`
	DoubleRiichi bool `json:"double_riichi,omitempty" yaml:"double_riichi,omitempty"`
	Ippatsu      bool `json:"ippatsu,omitempty" yaml:"ippatsu,omitempty"`
	Haitei       bool `json:"haitei,omitempty" yaml:"haitei,omitempty"`
	Houtei       bool `json:"houtei,omitempty" yaml:"houtei,omitempty"`
	Rinshan      bool `json:"rinshan,omitempty" yaml:"rinshan,omitempty"`
	Chankan      bool `json:"chankan,omitempty" yaml:"chankan,omitempty"`
	Tenhou       bool `json:"tenhou,omitempty" yaml:"tenhou,omitempty"`
	Chiihou      bool `json:"chiihou,omitempty" yaml:"chiihou,omitempty"`

	DoraIndicators    string `json:"dora_indicators,omitempty" yaml:"dora_indicators,omitempty"`
	UraDoraIndicators string `json:"ura_dora_indicators,omitempty" yaml:"ura_dora_indicators,omitempty"`
	AkaDora           int    `json:"aka_dora,omitempty" yaml:"aka_dora,omitempty"`
	Honba             int    `json:"honba,omitempty" yaml:"honba,omitempty"`
	RiichiSticks      int    `json:"riichi_sticks,omitempty" yaml:"riichi_sticks,omitempty"`
}

// ParseRequest reads a JSON request. It is lenient about shapes: calls may be
// objects or "type:tiles@seat" strings, indicators may be a string or an array
// of strings, and winds may be names, "1z" style tiles or numbers.
func ParseRequest(raw []byte) (*Request, error) {
	if !gjson.ValidBytes(raw) {
		return nil, mahjong.ErrInvalidRequest.Wrap(errors.New("body is not valid JSON"))
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return nil, mahjong.ErrInvalidRequest.Wrap(errors.New("body must be a JSON object"))
	}
	if !doc.Get("hand").Exists() {
		return nil, mahjong.ErrInvalidRequest.Wrap(errors.New("missing hand"))
	}

	req := &Request{
		Hand:              doc.Get("hand").String(),
		WinningTile:       doc.Get("winning_tile").String(),
		Tsumo:             doc.Get("tsumo").Bool(),
		RoundWind:         doc.Get("round_wind").String(),
		SeatWind:          doc.Get("seat_wind").String(),
		Riichi:            doc.Get("riichi").Bool(),
		DoubleRiichi:      doc.Get("double_riichi").Bool(),
		Ippatsu:           doc.Get("ippatsu").Bool(),
		Haitei:            doc.Get("haitei").Bool(),
		Houtei:            doc.Get("houtei").Bool(),
		Rinshan:           doc.Get("rinshan").Bool(),
		Chankan:           doc.Get("chankan").Bool(),
		Tenhou:            doc.Get("tenhou").Bool(),
		Chiihou:           doc.Get("chiihou").Bool(),
		DoraIndicators:    joinTiles(doc.Get("dora_indicators")),
		UraDoraIndicators: joinTiles(doc.Get("ura_dora_indicators")),
		AkaDora:           int(doc.Get("aka_dora").Int()),
		Honba:             int(doc.Get("honba").Int()),
		RiichiSticks:      int(doc.Get("riichi_sticks").Int()),
	}

	var callErr error
	doc.Get("calls").ForEach(func(_, v gjson.Result) bool {
		switch {
		case v.IsObject():
			req.Calls = append(req.Calls, CallSpec{
				Type:  v.Get("type").String(),
				Tiles: v.Get("tiles").String(),
				From:  v.Get("from").String(),
			})
		case v.Type == gjson.String:
			req.Calls = append(req.Calls, splitCall(v.String()))
		default:
			callErr = mahjong.ErrInvalidRequest.Wrap(fmt.Errorf("call %s must be an object or a string", v.Raw))
			return false
		}
		return true
	})
	if callErr != nil {
		return nil, callErr
	}
	return req, nil
}

func joinTiles(v gjson.Result) string {
	if !v.IsArray() {
		return v.String()
	}
	var b strings.Builder
	v.ForEach(func(_, t gjson.Result) bool {
		b.WriteString(t.String())
		return true
	})
	return b.String()
}

// splitCall turns "pon:444p@toimen" into its parts.
func splitCall(s string) CallSpec {
	typ, rest, _ := strings.Cut(strings.TrimSpace(s), ":")
	tiles, from, _ := strings.Cut(rest, "@")
	return CallSpec{Type: typ, Tiles: tiles, From: from}
}

// Build converts the request into engine input. When Hand omits the winning
// tile it is appended. Red fives written as "0" are added to AkaDora.
func (r *Request) Build() (mahjong.Hand, mahjong.HandContext, error) {
	var (
		h   mahjong.Hand
		ctx mahjong.HandContext
	)
	concealed, red, err := mahjong.ParseTilesRed(r.Hand)
	if err != nil {
		return h, ctx, err
	}
	winTiles, winRed, err := mahjong.ParseTilesRed(r.WinningTile)
	if err != nil {
		return h, ctx, err
	}
	if len(winTiles) != 1 {
		return h, ctx, mahjong.ErrMalformedHand.Wrap(fmt.Errorf("winning tile %q must be exactly one tile", r.WinningTile))
	}

	for _, spec := range r.Calls {
		call, callRed, err := spec.build()
		if err != nil {
			return h, ctx, err
		}
		h.Calls = append(h.Calls, call)
		red += callRed
	}
	if len(concealed)+3*len(h.Calls) == 13 {
		concealed = append(concealed, winTiles[0])
		red += winRed
	}
	h.Concealed = concealed
	h.WinningTile = winTiles[0]
	h.Tsumo = r.Tsumo

	if ctx.RoundWind, err = mahjong.ParseWind(r.RoundWind); err != nil {
		return h, ctx, err
	}
	if ctx.SeatWind, err = mahjong.ParseWind(r.SeatWind); err != nil {
		return h, ctx, err
	}
	if ctx.DoraIndicators, err = mahjong.ParseTiles(r.DoraIndicators); err != nil {
		return h, ctx, mahjong.ErrInvalidContext.Wrap(err)
	}
	if ctx.UraDoraIndicators, err = mahjong.ParseTiles(r.UraDoraIndicators); err != nil {
		return h, ctx, mahjong.ErrInvalidContext.Wrap(err)
	}
	ctx.Riichi = r.Riichi || r.DoubleRiichi
	ctx.DoubleRiichi = r.DoubleRiichi
	ctx.Ippatsu = r.Ippatsu
	ctx.Haitei = r.Haitei
	ctx.Houtei = r.Houtei
	ctx.Rinshan = r.Rinshan
	ctx.Chankan = r.Chankan
	ctx.Tenhou = r.Tenhou
	ctx.Chiihou = r.Chiihou
	ctx.AkaDora = r.AkaDora + red
	ctx.Honba = r.Honba
	ctx.RiichiSticks = r.RiichiSticks
	return h, ctx, nil
}

func (c CallSpec) build() (mahjong.Call, int, error) {
	typ, err := mahjong.ParseCallType(c.Type)
	if err != nil {
		return mahjong.Call{}, 0, err
	}
	tiles, red, err := mahjong.ParseTilesRed(c.Tiles)
	if err != nil {
		return mahjong.Call{}, 0, err
	}
	from, err := mahjong.ParseSeat(c.From)
	if err != nil {
		return mahjong.Call{}, 0, err
	}
	call, err := mahjong.BuildCall(typ, tiles, from)
	return call, red, err
}

// CanonicalKey renders engine input in a normalized form, so requests that
// differ only in notation share a key.
func CanonicalKey(h mahjong.Hand, ctx mahjong.HandContext, rules mahjong.Rules) string {
	calls := make([]string, len(h.Calls))
	for i, c := range h.Calls {
		calls[i] = fmt.Sprintf("%s:%s@%s", strings.ToLower(c.Type.String()), mahjong.FormatTiles(c.Tiles), c.From)
	}
	flags := []bool{
		ctx.Riichi, ctx.DoubleRiichi, ctx.Ippatsu, ctx.Haitei, ctx.Houtei,
		ctx.Rinshan, ctx.Chankan, ctx.Tenhou, ctx.Chiihou,
		rules.OpenTanyao, rules.KazoeYakuman, rules.KiriageMangan, rules.DoubleYakuman,
	}
	var bits strings.Builder
	for _, f := range flags {
		bits.WriteByte("01"[boolIndex(f)])
	}
	return fmt.Sprintf("%s|%s|%s|%t|%d%d|%s|%s|%s|%d|%d|%d",
		mahjong.FormatTiles(h.Concealed),
		strings.Join(calls, ","),
		h.WinningTile,
		h.Tsumo,
		ctx.RoundWind, ctx.SeatWind,
		bits.String(),
		mahjong.FormatTiles(ctx.DoraIndicators),
		mahjong.FormatTiles(ctx.UraDoraIndicators),
		ctx.AkaDora, ctx.Honba, ctx.RiichiSticks,
	)
}

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}

// WaitsRequest asks which tiles complete a tenpai hand.
type WaitsRequest struct {
	Hand  string     `json:"hand" binding:"required"`
	Calls []CallSpec `json:"calls,omitempty"`
}

// Build parses the concealed tiles and calls.
func (r *WaitsRequest) Build() ([]mahjong.Tile, []mahjong.Call, error) {
	concealed, err := mahjong.ParseTiles(r.Hand)
	if err != nil {
		return nil, nil, err
	}
	var calls []mahjong.Call
	for _, spec := range r.Calls {
		call, _, err := spec.build()
		if err != nil {
			return nil, nil, err
		}
		calls = append(calls, call)
	}
	if len(concealed)+3*len(calls) != 13 {
		return nil, nil, mahjong.ErrMalformedHand.Wrap(fmt.Errorf("waits need 13 tiles, got %d concealed and %d calls", len(concealed), len(calls)))
	}
	return concealed, calls, nil
}
