package mahjong

import (
	"fmt"
	"sort"
	"strings"
)

// GroupType represents the type of a group in a decomposed hand.
type GroupType uint8

const (
	GroupSequence GroupType = iota // three consecutive ranks of one suit
	GroupTriplet                   // three identical tiles
	GroupQuad                      // kan
	GroupPair                      // the head
)

var groupTypeNames = [...]string{"sequence", "triplet", "quad", "pair"}

func (g GroupType) String() string { return groupTypeNames[g] }

// Group is one component (meld or pair) of a partition.
type Group struct {
	Type GroupType
	Tile Tile     // lowest tile of the group
	Call CallType // zero for groups formed from concealed tiles
}

// Called reports whether the group comes from a declared call.
func (g Group) Called() bool { return g.Call != 0 }

// Open reports whether the group was claimed from a discard. Concealed kans are not open.
func (g Group) Open() bool { return g.Called() && g.Call != CallAnkan }

// IsTriplet reports triplets and quads alike, which most yaku treat the same way.
func (g Group) IsTriplet() bool { return g.Type == GroupTriplet || g.Type == GroupQuad }

// Tiles expands the group into its tiles.
func (g Group) Tiles() []Tile {
	switch g.Type {
	case GroupSequence:
		return []Tile{g.Tile, {Suit: g.Tile.Suit, Rank: g.Tile.Rank + 1}, {Suit: g.Tile.Suit, Rank: g.Tile.Rank + 2}}
	case GroupTriplet:
		return []Tile{g.Tile, g.Tile, g.Tile}
	case GroupQuad:
		return []Tile{g.Tile, g.Tile, g.Tile, g.Tile}
	default:
		return []Tile{g.Tile, g.Tile}
	}
}

// Contains reports whether t is one of the group's tiles.
func (g Group) Contains(t Tile) bool {
	if g.Type == GroupSequence {
		return t.Suit == g.Tile.Suit && t.Rank >= g.Tile.Rank && t.Rank <= g.Tile.Rank+2
	}
	return t == g.Tile
}

// HasTerminalOrHonor reports whether any tile of the group is a terminal or honor.
func (g Group) HasTerminalOrHonor() bool {
	if g.Type == GroupSequence {
		return g.Tile.Rank == 1 || g.Tile.Rank == 7
	}
	return g.Tile.IsTerminalOrHonor()
}

// HasTerminal reports whether any tile of the group is a terminal.
func (g Group) HasTerminal() bool {
	if g.Type == GroupSequence {
		return g.Tile.Rank == 1 || g.Tile.Rank == 7
	}
	return g.Tile.IsTerminal()
}

func (g Group) String() string {
	s := FormatTiles(g.Tiles())
	if g.Called() {
		return fmt.Sprintf("%s(%s)", s, strings.ToLower(g.Call.String()))
	}
	return s
}

func (g Group) key() int { return int(g.Type)<<8 | g.Tile.Index() }

// Shape distinguishes the standard form from the two whole-hand special forms.
type Shape uint8

const (
	ShapeStandard        Shape = iota // four melds and a pair
	ShapeSevenPairs                   // chiitoitsu
	ShapeThirteenOrphans              // kokushi musou
)

var shapeNames = [...]string{"standard", "seven pairs", "thirteen orphans"}

func (s Shape) String() string { return shapeNames[s] }

// WaitType is how the winning tile completed the hand.
type WaitType uint8

const (
	WaitRyanmen       WaitType = iota // open-ended sequence wait
	WaitKanchan                       // middle of a sequence
	WaitPenchan                       // edge, 12 waiting on 3 or 89 waiting on 7
	WaitShanpon                       // one of two pairs becomes a triplet
	WaitTanki                         // single tile waiting on its pair
	WaitThirteenSided                 // kokushi holding all thirteen orphans
)

var waitNames = [...]string{"ryanmen", "kanchan", "penchan", "shanpon", "tanki", "13-sided"}

func (w WaitType) String() string { return waitNames[w] }

// Partition is one reading of a completed hand.
type Partition struct {
	Shape        Shape
	Groups       []Group  // calls first, then concealed melds, pair last; seven pairs holds seven pairs
	Orphans      []Tile   // the fourteen tiles of a thirteen orphans hand
	WinningGroup int      // index into Groups completed by the winning tile, -1 for thirteen orphans
	Wait         WaitType // shape of the wait
}

// Tiles reconstructs the tile multiset covered by the partition, kans as four tiles.
func (p Partition) Tiles() []Tile {
	if p.Shape == ShapeThirteenOrphans {
		return append([]Tile(nil), p.Orphans...)
	}
	var tiles []Tile
	for _, g := range p.Groups {
		tiles = append(tiles, g.Tiles()...)
	}
	SortTiles(tiles)
	return tiles
}

// Melds returns the four non-pair groups of a standard partition.
func (p Partition) Melds() []Group {
	var melds []Group
	for _, g := range p.Groups {
		if g.Type != GroupPair {
			melds = append(melds, g)
		}
	}
	return melds
}

// Pair returns the head of a standard partition.
func (p Partition) Pair() (Group, bool) {
	if p.Shape != ShapeStandard {
		return Group{}, false
	}
	for _, g := range p.Groups {
		if g.Type == GroupPair {
			return g, true
		}
	}
	return Group{}, false
}

// Winning returns the group the winning tile completed.
func (p Partition) Winning() (Group, bool) {
	if p.WinningGroup < 0 || p.WinningGroup >= len(p.Groups) {
		return Group{}, false
	}
	return p.Groups[p.WinningGroup], true
}

func (p Partition) String() string {
	if p.Shape == ShapeThirteenOrphans {
		return FormatTiles(p.Orphans) + " [" + p.Wait.String() + "]"
	}
	parts := make([]string, len(p.Groups))
	for i, g := range p.Groups {
		parts[i] = g.String()
		if i == p.WinningGroup {
			parts[i] += "*"
		}
	}
	return strings.Join(parts, " ") + " [" + p.Wait.String() + "]"
}

// Decompose enumerates every partition of a completed hand. Thirteen orphans is
// exclusive with the other shapes; seven pairs is returned alongside any
// standard readings of the same tiles. ErrNoDecomposition is returned when the
// tiles cannot be grouped at all.
func Decompose(h Hand) ([]Partition, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	if len(h.Calls) == 0 && IsKokushiMusou(h.Concealed) {
		tiles := append([]Tile(nil), h.Concealed...)
		SortTiles(tiles)
		wait := If(countOf(tiles, h.WinningTile) == 2, WaitThirteenSided, WaitTanki)
		return []Partition{{Shape: ShapeThirteenOrphans, Orphans: tiles, WinningGroup: -1, Wait: wait}}, nil
	}

	var partitions []Partition
	callGroups := make([]Group, 0, len(h.Calls))
	for _, c := range h.Calls {
		callGroups = append(callGroups, groupFromCall(c))
	}

	counts := countKinds(h.Concealed)
	seen := make(map[string]bool)
	for _, concealed := range searchMelds(&counts, 4-len(h.Calls), true, nil, nil) {
		sortGroups(concealed)
		key := groupsKey(concealed)
		if seen[key] {
			continue
		}
		seen[key] = true
		groups := append(append([]Group(nil), callGroups...), concealed...)
		partitions = append(partitions, assignWaits(groups, len(callGroups), h.WinningTile)...)
	}

	if len(h.Calls) == 0 && IsChiitoitsu(h.Concealed) {
		var pairs []Group
		for i, n := range counts {
			if n == 2 {
				pairs = append(pairs, Group{Type: GroupPair, Tile: TileFromIndex(i)})
			}
		}
		win := 0
		for i, g := range pairs {
			if g.Tile == h.WinningTile {
				win = i
			}
		}
		partitions = append(partitions, Partition{Shape: ShapeSevenPairs, Groups: pairs, WinningGroup: win, Wait: WaitTanki})
	}

	if len(partitions) == 0 {
		return nil, ErrNoDecomposition.Wrap(fmt.Errorf("tiles %s with %d calls", FormatTiles(h.Concealed), len(h.Calls)))
	}
	return partitions, nil
}

func groupFromCall(c Call) Group {
	g := Group{Tile: c.Tiles[0], Call: c.Type}
	switch {
	case c.Type == CallChi:
		g.Type = GroupSequence
	case c.Type.IsKan():
		g.Type = GroupQuad
	default:
		g.Type = GroupTriplet
	}
	return g
}

// groupsKey identifies a sorted set of groups.
func groupsKey(groups []Group) string {
	var b strings.Builder
	for _, g := range groups {
		fmt.Fprintf(&b, "%d,", g.key())
	}
	return b.String()
}

// searchMelds finds every way to split counts into the given number of melds
// plus a pair when needPair is set. The same split can be reached by taking the
// pair before or after a meld of the same kind; callers dedupe.
func searchMelds(counts *kindCounts, melds int, needPair bool, acc []Group, out [][]Group) [][]Group {
	i := 0
	for i < NumKinds && counts[i] == 0 {
		i++
	}
	if i == NumKinds {
		if melds == 0 && !needPair {
			out = append(out, append([]Group(nil), acc...))
		}
		return out
	}
	t := TileFromIndex(i)

	if needPair && counts[i] >= 2 {
		counts[i] -= 2
		out = searchMelds(counts, melds, false, append(acc, Group{Type: GroupPair, Tile: t}), out)
		counts[i] += 2
	}
	if melds == 0 {
		return out
	}
	if counts[i] >= 3 {
		counts[i] -= 3
		out = searchMelds(counts, melds-1, needPair, append(acc, Group{Type: GroupTriplet, Tile: t}), out)
		counts[i] += 3
	}
	if t.Suit.Numbered() && t.Rank <= 7 && counts[i+1] > 0 && counts[i+2] > 0 {
		counts[i]--
		counts[i+1]--
		counts[i+2]--
		out = searchMelds(counts, melds-1, needPair, append(acc, Group{Type: GroupSequence, Tile: t}), out)
		counts[i]++
		counts[i+1]++
		counts[i+2]++
	}
	return out
}

// sortGroups orders concealed groups by tile, keeping the pair last.
func sortGroups(groups []Group) {
	sort.SliceStable(groups, func(i, j int) bool {
		pi, pj := groups[i].Type == GroupPair, groups[j].Type == GroupPair
		if pi != pj {
			return pj
		}
		if groups[i].Tile != groups[j].Tile {
			return groups[i].Tile.Less(groups[j].Tile)
		}
		return groups[i].Type < groups[j].Type
	})
}

// assignWaits creates one partition per distinct concealed group able to hold
// the winning tile. Groups before firstConcealed are calls and never complete the hand.
func assignWaits(groups []Group, firstConcealed int, win Tile) []Partition {
	var out []Partition
	seen := map[int]bool{}
	for i := firstConcealed; i < len(groups); i++ {
		g := groups[i]
		if !g.Contains(win) || seen[g.key()] {
			continue
		}
		seen[g.key()] = true
		out = append(out, Partition{
			Shape:        ShapeStandard,
			Groups:       groups,
			WinningGroup: i,
			Wait:         waitFor(g, win),
		})
	}
	return out
}

func waitFor(g Group, win Tile) WaitType {
	switch g.Type {
	case GroupPair:
		return WaitTanki
	case GroupTriplet:
		return WaitShanpon
	}
	switch win.Rank - g.Tile.Rank {
	case 1:
		return WaitKanchan
	case 0:
		if g.Tile.Rank == 7 {
			return WaitPenchan
		}
	case 2:
		if g.Tile.Rank == 1 {
			return WaitPenchan
		}
	}
	return WaitRyanmen
}
