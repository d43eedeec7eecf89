package mahjong

import (
	"fmt"
	"sort"
)

// Suit identifies the family a tile belongs to.
type Suit uint8

const (
	SuitNone  Suit = iota // zero value, never a valid tile
	SuitMan               // characters, "m"
	SuitPin               // circles, "p"
	SuitSou               // bamboo, "s"
	SuitHonor             // winds and dragons, "z"
)

// Honor ranks. Winds come first so a Wind converts directly to its tile rank.
const (
	East  = 1
	South = 2
	West  = 3
	North = 4
	Haku  = 5 // white dragon
	Hatsu = 6 // green dragon
	Chun  = 7 // red dragon
)

var suitLetters = map[Suit]string{SuitMan: "m", SuitPin: "p", SuitSou: "s", SuitHonor: "z"}

var honorNames = [...]string{"", "East", "South", "West", "North", "White Dragon", "Green Dragon", "Red Dragon"}

// String returns the compact notation letter for the suit.
func (s Suit) String() string {
	if l, ok := suitLetters[s]; ok {
		return l
	}
	return "?"
}

// Numbered reports whether the suit carries ranks 1-9.
func (s Suit) Numbered() bool { return s == SuitMan || s == SuitPin || s == SuitSou }

// Tile is a single playing tile. Tiles are plain values: two tiles with the same
// suit and rank are equal.
type Tile struct {
	Suit Suit
	Rank uint8 // 1-9 for numbered suits, East..Chun for honors
}

// NewTile builds a tile, checking the rank against the suit.
func NewTile(suit Suit, rank int) (Tile, error) {
	if rank < 1 || rank > 9 {
		return Tile{}, ErrMalformedHand.Wrap(fmt.Errorf("invalid tile %d%s", rank, suit))
	}
	t := Tile{Suit: suit, Rank: uint8(rank)}
	if !t.Valid() {
		return Tile{}, ErrMalformedHand.Wrap(fmt.Errorf("invalid tile %d%s", rank, suit))
	}
	return t, nil
}

// Valid reports whether the tile exists in a riichi set.
func (t Tile) Valid() bool {
	switch {
	case t.Suit.Numbered():
		return t.Rank >= 1 && t.Rank <= 9
	case t.Suit == SuitHonor:
		return t.Rank >= East && t.Rank <= Chun
	}
	return false
}

// IsZero reports whether t is the zero Tile, used for "no tile declared".
func (t Tile) IsZero() bool { return t == Tile{} }

// Index maps the tile onto [0, 34): man, pin, sou, then honors.
func (t Tile) Index() int {
	return int(t.Suit-SuitMan)*9 + int(t.Rank) - 1
}

// TileFromIndex is the inverse of Index.
func TileFromIndex(i int) Tile {
	return Tile{Suit: SuitMan + Suit(i/9), Rank: uint8(i%9 + 1)}
}

func (t Tile) IsHonor() bool  { return t.Suit == SuitHonor }
func (t Tile) IsWind() bool   { return t.IsHonor() && t.Rank <= North }
func (t Tile) IsDragon() bool { return t.IsHonor() && t.Rank >= Haku }

// IsTerminal reports a 1 or 9 of a numbered suit.
func (t Tile) IsTerminal() bool { return t.Suit.Numbered() && (t.Rank == 1 || t.Rank == 9) }

// IsSimple reports a 2-8 of a numbered suit.
func (t Tile) IsSimple() bool { return t.Suit.Numbered() && t.Rank >= 2 && t.Rank <= 8 }

func (t Tile) IsTerminalOrHonor() bool { return t.IsTerminal() || t.IsHonor() }

// IsGreen reports the tiles allowed in an all-green hand: 2, 3, 4, 6, 8 sou and green dragon.
func (t Tile) IsGreen() bool {
	if t.Suit == SuitHonor {
		return t.Rank == Hatsu
	}
	if t.Suit != SuitSou {
		return false
	}
	switch t.Rank {
	case 2, 3, 4, 6, 8:
		return true
	}
	return false
}

// String renders the tile in compact notation, e.g. "5m" or "7z".
func (t Tile) String() string {
	if !t.Valid() {
		return "??"
	}
	return fmt.Sprintf("%d%s", t.Rank, t.Suit)
}

// Name renders a human-friendly name such as "Pin 3" or "Red Dragon".
func (t Tile) Name() string {
	switch {
	case t.IsHonor() && t.Valid():
		return honorNames[t.Rank]
	case t.Suit == SuitMan:
		return fmt.Sprintf("Man %d", t.Rank)
	case t.Suit == SuitPin:
		return fmt.Sprintf("Pin %d", t.Rank)
	case t.Suit == SuitSou:
		return fmt.Sprintf("Sou %d", t.Rank)
	}
	return "Unknown"
}

// Less orders tiles by suit then rank.
func (t Tile) Less(o Tile) bool { return t.Index() < o.Index() }

// SortTiles sorts tiles in place by suit then rank.
func SortTiles(tiles []Tile) {
	sort.Slice(tiles, func(i, j int) bool { return tiles[i].Less(tiles[j]) })
}

// CallType is the kind of meld formed by a call.
type CallType uint8

const (
	CallChi        CallType = iota + 1 // sequence from the left player's discard
	CallPon                            // triplet from a discard
	CallShouminkan                     // pon upgraded with the fourth tile
	CallDaiminkan                      // open kan from a discard
	CallAnkan                          // concealed kan, does not open the hand
)

var callTypeNames = map[CallType]string{
	CallChi:        "Chi",
	CallPon:        "Pon",
	CallShouminkan: "Shouminkan",
	CallDaiminkan:  "Daiminkan",
	CallAnkan:      "Ankan",
}

func (c CallType) String() string {
	if n, ok := callTypeNames[c]; ok {
		return n
	}
	return "Unknown"
}

// IsKan reports the three kan call types.
func (c CallType) IsKan() bool {
	return c == CallShouminkan || c == CallDaiminkan || c == CallAnkan
}

// Seat is where a called tile came from, relative to the caller.
type Seat uint8

const (
	SeatNone     Seat = iota // concealed kan
	SeatKamicha              // player to the left
	SeatToimen               // player opposite
	SeatShimocha             // player to the right
)

var seatNames = map[Seat]string{SeatNone: "none", SeatKamicha: "kamicha", SeatToimen: "toimen", SeatShimocha: "shimocha"}

func (s Seat) String() string { return seatNames[s] }

// Call is a meld declared during play.
type Call struct {
	Type  CallType
	Tiles []Tile // sorted; three tiles, or four for kans
	From  Seat
}

// NewCall validates the meld shape and provenance and returns the call with its tiles sorted.
func NewCall(typ CallType, tiles []Tile, from Seat) (Call, error) {
	c := Call{Type: typ, Tiles: append([]Tile(nil), tiles...), From: from}
	SortTiles(c.Tiles)
	if err := c.Validate(); err != nil {
		return Call{}, err
	}
	return c, nil
}

// Validate checks the call's tiles form the declared meld.
func (c Call) Validate() error {
	bad := func(format string, args ...any) error {
		return ErrMalformedHand.Wrap(fmt.Errorf("%s call: "+format, append([]any{c.Type}, args...)...))
	}
	for _, t := range c.Tiles {
		if !t.Valid() {
			return bad("invalid tile %v", t)
		}
	}
	switch c.Type {
	case CallChi:
		if len(c.Tiles) != 3 {
			return bad("needs 3 tiles, got %d", len(c.Tiles))
		}
		a, b, d := c.Tiles[0], c.Tiles[1], c.Tiles[2]
		if !a.Suit.Numbered() || a.Suit != b.Suit || b.Suit != d.Suit || b.Rank != a.Rank+1 || d.Rank != b.Rank+1 {
			return bad("%v is not a sequence", c.Tiles)
		}
	case CallPon:
		if len(c.Tiles) != 3 || !allSame(c.Tiles) {
			return bad("%v is not a triplet", c.Tiles)
		}
	case CallShouminkan, CallDaiminkan, CallAnkan:
		if len(c.Tiles) != 4 || !allSame(c.Tiles) {
			return bad("%v is not a quad", c.Tiles)
		}
	default:
		return bad("unknown call type")
	}
	if c.Type == CallAnkan && c.From != SeatNone {
		return bad("concealed kan cannot come from %s", c.From)
	}
	if c.Type != CallAnkan && c.From == SeatNone {
		return bad("missing source seat")
	}
	if c.Type == CallChi && c.From != SeatKamicha {
		return bad("chi can only be called from kamicha")
	}
	return nil
}

// Open reports whether the call opens the hand.
func (c Call) Open() bool { return c.Type != CallAnkan }

// Hand is a completed hand handed to the scorer.
type Hand struct {
	Concealed   []Tile // concealed tiles, including the winning tile
	Calls       []Call // declared melds, fixed in every partition
	WinningTile Tile   // the tile that completed the hand
	Tsumo       bool   // self-draw; false means won off a discard
}

// Closed reports whether the hand has no open calls. Concealed kans keep it closed.
func (h Hand) Closed() bool {
	for _, c := range h.Calls {
		if c.Open() {
			return false
		}
	}
	return true
}

// AllTiles returns every tile in the hand, kans contributing four tiles.
func (h Hand) AllTiles() []Tile {
	tiles := append([]Tile(nil), h.Concealed...)
	for _, c := range h.Calls {
		tiles = append(tiles, c.Tiles...)
	}
	SortTiles(tiles)
	return tiles
}

// KanCount is the number of kan calls of any kind.
func (h Hand) KanCount() int {
	n := 0
	for _, c := range h.Calls {
		if c.Type.IsKan() {
			n++
		}
	}
	return n
}

// Validate checks the structural invariants of a completed hand: the tile count,
// the winning tile being held, call shapes, and at most four copies of any tile.
func (h Hand) Validate() error {
	if h.WinningTile.IsZero() {
		return ErrMalformedHand.Wrap(fmt.Errorf("no winning tile declared"))
	}
	if !h.WinningTile.Valid() {
		return ErrMalformedHand.Wrap(fmt.Errorf("invalid winning tile %v", h.WinningTile))
	}
	if len(h.Calls) > 4 {
		return ErrMalformedHand.Wrap(fmt.Errorf("%d calls, at most 4 allowed", len(h.Calls)))
	}
	if want := 14 - 3*len(h.Calls); len(h.Concealed) != want {
		return ErrMalformedHand.Wrap(fmt.Errorf("%d concealed tiles with %d calls, want %d", len(h.Concealed), len(h.Calls), want))
	}
	for _, t := range h.Concealed {
		if !t.Valid() {
			return ErrMalformedHand.Wrap(fmt.Errorf("invalid tile %v", t))
		}
	}
	if !contains(h.Concealed, h.WinningTile) {
		return ErrMalformedHand.Wrap(fmt.Errorf("winning tile %v is not in the concealed tiles", h.WinningTile))
	}
	for _, c := range h.Calls {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	counts := countKinds(h.AllTiles())
	for i, n := range counts {
		if n > 4 {
			return ErrMalformedHand.Wrap(fmt.Errorf("%d copies of %v", n, TileFromIndex(i)))
		}
	}
	return nil
}
