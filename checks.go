package mahjong

// IsChiitoitsu reports whether the tiles form seven distinct pairs.
func IsChiitoitsu(tiles []Tile) bool {
	if len(tiles) != 14 {
		return false
	}
	counts := countKinds(tiles)
	pairs := 0
	for _, n := range counts {
		switch n {
		case 0:
		case 2:
			pairs++
		default:
			return false
		}
	}
	return pairs == 7
}

// IsKokushiMusou reports whether the tiles hold all thirteen terminals and honors
// with exactly one of them duplicated.
func IsKokushiMusou(tiles []Tile) bool {
	if len(tiles) != 14 {
		return false
	}
	counts := countKinds(tiles)
	pair := false
	for _, t := range orphanKinds {
		switch counts[t.Index()] {
		case 1:
		case 2:
			if pair {
				return false
			}
			pair = true
		default:
			return false
		}
	}
	return pair
}

// IsCompleteHand reports whether concealed tiles plus the given number of calls
// form a winning shape: four melds and a pair, seven pairs, or thirteen orphans.
func IsCompleteHand(concealed []Tile, calls int) bool {
	if len(concealed)+3*calls != 14 {
		return false
	}
	if calls == 0 && (IsChiitoitsu(concealed) || IsKokushiMusou(concealed)) {
		return true
	}
	counts := countKinds(concealed)
	return len(searchMelds(&counts, 4-calls, true, nil, nil)) > 0
}

// Waits returns the tiles that would complete a tenpai hand of 13-3n concealed
// tiles and n calls. Tiles already held four times are excluded.
func Waits(concealed []Tile, calls []Call) []Tile {
	held := countKinds(concealed)
	for _, c := range calls {
		for _, t := range c.Tiles {
			held[t.Index()]++
		}
	}
	var waits []Tile
	for _, t := range AllTileKinds() {
		if held[t.Index()] >= 4 {
			continue
		}
		candidate := append(append([]Tile(nil), concealed...), t)
		if IsCompleteHand(candidate, len(calls)) {
			waits = append(waits, t)
		}
	}
	return waits
}
