package mahjong

// NumKinds is the number of distinct tiles in a riichi set.
const NumKinds = 34

// kindCounts is a histogram of tiles indexed by Tile.Index.
type kindCounts [NumKinds]int

// orphanKinds are the thirteen terminal and honor tiles of kokushi musou.
var orphanKinds = func() []Tile {
	var out []Tile
	for _, t := range AllTileKinds() {
		if t.IsTerminalOrHonor() {
			out = append(out, t)
		}
	}
	return out
}()

// AllTileKinds returns one tile of each of the 34 kinds in sorted order.
func AllTileKinds() []Tile {
	kinds := make([]Tile, 0, NumKinds)
	for i := 0; i < NumKinds; i++ {
		kinds = append(kinds, TileFromIndex(i))
	}
	return kinds
}

// countKinds builds the histogram for a tile slice.
func countKinds(tiles []Tile) kindCounts {
	var counts kindCounts
	for _, t := range tiles {
		counts[t.Index()]++
	}
	return counts
}

// DoraFrom returns the dora indicated by an indicator tile: the next rank in the
// same suit, winds cycling E-S-W-N and dragons cycling haku-hatsu-chun.
func DoraFrom(indicator Tile) Tile {
	switch {
	case indicator.Suit.Numbered():
		return Tile{Suit: indicator.Suit, Rank: indicator.Rank%9 + 1}
	case indicator.IsWind():
		return Tile{Suit: SuitHonor, Rank: indicator.Rank%4 + 1}
	default:
		return Tile{Suit: SuitHonor, Rank: (indicator.Rank-Haku+1)%3 + Haku}
	}
}

// countDora counts the tiles in the hand matched by the given indicators.
// An indicator revealed twice doubles its dora.
func countDora(tiles []Tile, indicators []Tile) int {
	n := 0
	for _, ind := range indicators {
		dora := DoraFrom(ind)
		for _, t := range tiles {
			if t == dora {
				n++
			}
		}
	}
	return n
}
