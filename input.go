package mahjong

import (
	"fmt"
	"strings"
)

// ParseTiles parses compact notation such as "123m456p789s11z". Digits accumulate
// until a suit letter closes them. "0" stands for a red five and is read as a 5;
// use ParseTilesRed to also get the number of red fives.
func ParseTiles(s string) ([]Tile, error) {
	tiles, _, err := ParseTilesRed(s)
	return tiles, err
}

// ParseTilesRed is ParseTiles that also reports how many red fives ("0") it read.
func ParseTilesRed(s string) ([]Tile, int, error) {
	var (
		tiles   []Tile
		pending []int
		red     int
	)
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			pending = append(pending, int(r-'0'))
		case r == ' ' || r == ',' || r == '\t':
			continue
		default:
			suit, ok := suitFromLetter(r)
			if !ok {
				return nil, 0, ErrMalformedHand.Wrap(fmt.Errorf("unexpected character %q in %q", r, s))
			}
			if len(pending) == 0 {
				return nil, 0, ErrMalformedHand.Wrap(fmt.Errorf("suit %q without ranks in %q", r, s))
			}
			for _, rank := range pending {
				if rank == 0 {
					if suit == SuitHonor {
						return nil, 0, ErrMalformedHand.Wrap(fmt.Errorf("0z is not a tile"))
					}
					rank = 5
					red++
				}
				t, err := NewTile(suit, rank)
				if err != nil {
					return nil, 0, err
				}
				tiles = append(tiles, t)
			}
			pending = pending[:0]
		}
	}
	if len(pending) > 0 {
		return nil, 0, ErrMalformedHand.Wrap(fmt.Errorf("ranks without a suit at end of %q", s))
	}
	return tiles, red, nil
}

// ParseTile parses exactly one tile, e.g. "5m".
func ParseTile(s string) (Tile, error) {
	tiles, err := ParseTiles(s)
	if err != nil {
		return Tile{}, err
	}
	if len(tiles) != 1 {
		return Tile{}, ErrMalformedHand.Wrap(fmt.Errorf("%q is not a single tile", s))
	}
	return tiles[0], nil
}

// MustParseTiles is ParseTiles for literals known to be valid. It panics on error.
func MustParseTiles(s string) []Tile {
	tiles, err := ParseTiles(s)
	if err != nil {
		panic(err)
	}
	return tiles
}

// MustParseTile is ParseTile for literals known to be valid. It panics on error.
func MustParseTile(s string) Tile {
	t, err := ParseTile(s)
	if err != nil {
		panic(err)
	}
	return t
}

func suitFromLetter(r rune) (Suit, bool) {
	switch r {
	case 'm', 'M':
		return SuitMan, true
	case 'p', 'P':
		return SuitPin, true
	case 's', 'S':
		return SuitSou, true
	case 'z', 'Z':
		return SuitHonor, true
	}
	return SuitNone, false
}

var callTypeAliases = map[string]CallType{
	"chi":        CallChi,
	"pon":        CallPon,
	"shouminkan": CallShouminkan,
	"kakan":      CallShouminkan,
	"daiminkan":  CallDaiminkan,
	"minkan":     CallDaiminkan,
	"kan":        CallDaiminkan,
	"ankan":      CallAnkan,
}

var seatAliases = map[string]Seat{
	"":         SeatNone,
	"none":     SeatNone,
	"kamicha":  SeatKamicha,
	"left":     SeatKamicha,
	"toimen":   SeatToimen,
	"across":   SeatToimen,
	"shimocha": SeatShimocha,
	"right":    SeatShimocha,
}

// ParseCallType accepts the call names used by ParseCall.
func ParseCallType(s string) (CallType, error) {
	ct, ok := callTypeAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, ErrMalformedHand.Wrap(fmt.Errorf("unknown call type %q", s))
	}
	return ct, nil
}

// ParseSeat accepts seat names such as "kamicha" or "left". An empty string is SeatNone.
func ParseSeat(s string) (Seat, error) {
	seat, ok := seatAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, ErrMalformedHand.Wrap(fmt.Errorf("unknown seat %q", s))
	}
	return seat, nil
}

// BuildCall assembles a call from its parts. A single tile is expanded for
// pon and kans ("4p" becomes "444p"). A missing seat defaults to kamicha for
// chi, toimen for other open calls and none for ankan.
func BuildCall(typ CallType, tiles []Tile, from Seat) (Call, error) {
	if len(tiles) == 1 && typ != CallChi {
		n := If(typ.IsKan(), 4, 3)
		for len(tiles) < n {
			tiles = append(tiles, tiles[0])
		}
	}
	if from == SeatNone && typ != CallAnkan {
		from = If(typ == CallChi, SeatKamicha, SeatToimen)
	}
	return NewCall(typ, tiles, from)
}

// ParseCall parses "type:tiles[@seat]", e.g. "pon:444p@toimen", "chi:345s" or "ankan:1s".
func ParseCall(s string) (Call, error) {
	typPart, rest, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Call{}, ErrMalformedHand.Wrap(fmt.Errorf("call %q must look like type:tiles", s))
	}
	typ, err := ParseCallType(typPart)
	if err != nil {
		return Call{}, err
	}
	tilePart, seatPart, _ := strings.Cut(rest, "@")
	tiles, err := ParseTiles(tilePart)
	if err != nil {
		return Call{}, err
	}
	from, err := ParseSeat(seatPart)
	if err != nil {
		return Call{}, err
	}
	return BuildCall(typ, tiles, from)
}

// FormatTiles renders tiles in grouped compact notation, e.g. "123m55z".
func FormatTiles(tiles []Tile) string {
	sorted := append([]Tile(nil), tiles...)
	SortTiles(sorted)
	var b strings.Builder
	for i, t := range sorted {
		fmt.Fprintf(&b, "%d", t.Rank)
		if i == len(sorted)-1 || sorted[i+1].Suit != t.Suit {
			b.WriteString(t.Suit.String())
		}
	}
	return b.String()
}
