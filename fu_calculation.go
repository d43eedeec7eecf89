package mahjong

// FuReason names one contribution to a hand's fu.
type FuReason uint8

const (
	FuBase FuReason = iota + 1
	FuChiitoitsu
	FuClosedRon
	FuTsumo
	FuOpenPinfu
	FuPairDragon
	FuPairRoundWind
	FuPairSeatWind
	FuOpenTripletSimple
	FuOpenTripletTerminal
	FuOpenTripletHonor
	FuClosedTripletSimple
	FuClosedTripletTerminal
	FuClosedTripletHonor
	FuOpenQuadSimple
	FuOpenQuadTerminal
	FuOpenQuadHonor
	FuClosedQuadSimple
	FuClosedQuadTerminal
	FuClosedQuadHonor
	FuKanchan
	FuPenchan
	FuTanki
	FuRoundUp
)

type fuInfo struct {
	name string
	fu   int
}

// fuTable holds the fixed value of every reason. Round-up is variable.
var fuTable = map[FuReason]fuInfo{
	FuBase:                  {"Base", 20},
	FuChiitoitsu:            {"Chiitoitsu", 25},
	FuClosedRon:             {"Closed ron", 10},
	FuTsumo:                 {"Tsumo", 2},
	FuOpenPinfu:             {"Open pinfu", 2},
	FuPairDragon:            {"Yakuhai pair (dragon)", 2},
	FuPairRoundWind:         {"Yakuhai pair (round wind)", 2},
	FuPairSeatWind:          {"Yakuhai pair (seat wind)", 2},
	FuOpenTripletSimple:     {"Open triplet (simples)", 2},
	FuOpenTripletTerminal:   {"Open triplet (terminals)", 4},
	FuOpenTripletHonor:      {"Open triplet (honors)", 4},
	FuClosedTripletSimple:   {"Closed triplet (simples)", 4},
	FuClosedTripletTerminal: {"Closed triplet (terminals)", 8},
	FuClosedTripletHonor:    {"Closed triplet (honors)", 8},
	FuOpenQuadSimple:        {"Open quad (simples)", 8},
	FuOpenQuadTerminal:      {"Open quad (terminals)", 16},
	FuOpenQuadHonor:         {"Open quad (honors)", 16},
	FuClosedQuadSimple:      {"Closed quad (simples)", 16},
	FuClosedQuadTerminal:    {"Closed quad (terminals)", 32},
	FuClosedQuadHonor:       {"Closed quad (honors)", 32},
	FuKanchan:               {"Kanchan wait", 2},
	FuPenchan:               {"Penchan wait", 2},
	FuTanki:                 {"Tanki wait", 2},
	FuRoundUp:               {"Round up", 0},
}

func (r FuReason) String() string {
	if info, ok := fuTable[r]; ok {
		return info.name
	}
	return "Unknown"
}

// FuItem is one line of a fu breakdown.
type FuItem struct {
	Reason FuReason
	Fu     int
}

// FuBreakdown lists every fu contribution and their rounded total.
type FuBreakdown struct {
	Items []FuItem
	Total int
}

func (b *FuBreakdown) add(r FuReason) {
	b.Items = append(b.Items, FuItem{Reason: r, Fu: fuTable[r].fu})
	b.Total += fuTable[r].fu
}

// CalculateFu computes the fu of one partition. Seven pairs is a fixed 25 fu and
// thirteen orphans carries no fu. Every other total is rounded up to a multiple of ten.
func CalculateFu(p Partition, h Hand, ctx HandContext) FuBreakdown {
	var b FuBreakdown
	switch p.Shape {
	case ShapeThirteenOrphans:
		return b
	case ShapeSevenPairs:
		b.add(FuChiitoitsu)
		return b
	}

	b.add(FuBase)
	for i, g := range p.Groups {
		switch g.Type {
		case GroupPair:
			if g.Tile.IsDragon() {
				b.add(FuPairDragon)
			}
			if g.Tile == ctx.RoundWind.Tile() {
				b.add(FuPairRoundWind)
			}
			if g.Tile == ctx.SeatWind.Tile() {
				b.add(FuPairSeatWind)
			}
		case GroupTriplet:
			open := g.Open() || (i == p.WinningGroup && !h.Tsumo)
			b.add(meldFu(g.Tile, open, false))
		case GroupQuad:
			b.add(meldFu(g.Tile, g.Open(), true))
		}
	}
	switch p.Wait {
	case WaitKanchan:
		b.add(FuKanchan)
	case WaitPenchan:
		b.add(FuPenchan)
	case WaitTanki:
		b.add(FuTanki)
	}

	closed := h.Closed()
	onlyBase := len(b.Items) == 1
	switch {
	case !h.Tsumo && closed:
		b.add(FuClosedRon)
	case h.Tsumo && (!onlyBase || !closed):
		b.add(FuTsumo)
	case !h.Tsumo && onlyBase:
		b.add(FuOpenPinfu)
	}

	if rounded := ceilTen(b.Total); rounded != b.Total {
		b.Items = append(b.Items, FuItem{Reason: FuRoundUp, Fu: rounded - b.Total})
		b.Total = rounded
	}
	return b
}

func meldFu(t Tile, open, quad bool) FuReason {
	var r FuReason
	switch {
	case open && !quad:
		r = FuOpenTripletSimple
	case !open && !quad:
		r = FuClosedTripletSimple
	case open && quad:
		r = FuOpenQuadSimple
	default:
		r = FuClosedQuadSimple
	}
	switch {
	case t.IsTerminal():
		r++
	case t.IsHonor():
		r += 2
	}
	return r
}
