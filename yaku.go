package mahjong

// Yaku is a scoring pattern worth han.
type Yaku uint8

const (
	YakuMenzenTsumo Yaku = iota + 1
	YakuRiichi
	YakuIppatsu
	YakuPinfu
	YakuIipeikou
	YakuHaitei
	YakuHoutei
	YakuRinshan
	YakuChankan
	YakuTanyao
	YakuSeatWind
	YakuRoundWind
	YakuHaku
	YakuHatsu
	YakuChun
	YakuDoubleRiichi
	YakuChanta
	YakuSanshokuDoujun
	YakuIttsu
	YakuToitoi
	YakuSanankou
	YakuSanshokuDoukou
	YakuSankantsu
	YakuChiitoitsu
	YakuHonroutou
	YakuShousangen
	YakuRyanpeikou
	YakuHonitsu
	YakuJunchan
	YakuChinitsu
	YakuDora
	YakuAkaDora
	YakuUraDora
)

// Yakuman is an instant-limit pattern.
type Yakuman uint8

const (
	YakumanKokushi Yakuman = iota + 1
	YakumanKokushiJuusanmen
	YakumanSuuankou
	YakumanSuuankouTanki
	YakumanDaisangen
	YakumanShousuushii
	YakumanDaisuushii
	YakumanTsuuiisou
	YakumanChinroutou
	YakumanRyuuiisou
	YakumanChuuren
	YakumanJunseiChuuren
	YakumanSuukantsu
	YakumanTenhou
	YakumanChiihou
)

// evalInput is what every pattern predicate sees.
type evalInput struct {
	part   Partition
	hand   Hand
	ctx    HandContext
	rules  Rules
	closed bool
	tiles  []Tile  // all tiles, kans as four
	melds  []Group // standard shape only
	pair   Group
}

func (in *evalInput) standard() bool { return in.part.Shape == ShapeStandard }

// concealedTriplets counts triplets and quads not claimed from a discard. A
// triplet completed by ron counts as claimed.
func (in *evalInput) concealedTriplets() int {
	n := 0
	for i, g := range in.part.Groups {
		if !g.IsTriplet() || g.Open() {
			continue
		}
		if i == in.part.WinningGroup && !in.hand.Tsumo {
			continue
		}
		n++
	}
	return n
}

func (in *evalInput) allTiles(pred func(Tile) bool) bool {
	for _, t := range in.tiles {
		if !pred(t) {
			return false
		}
	}
	return true
}

func (in *evalInput) tripletOf(t Tile) bool {
	for _, g := range in.melds {
		if g.IsTriplet() && g.Tile == t {
			return true
		}
	}
	return false
}

func (in *evalInput) sequences() []Group {
	var seqs []Group
	for _, g := range in.melds {
		if g.Type == GroupSequence {
			seqs = append(seqs, g)
		}
	}
	return seqs
}

type yakuInfo struct {
	name       string
	hanClosed  int
	hanOpen    int // 0 means closed only
	check      func(*evalInput) bool
	supersedes []Yaku
}

// yakuTable is the static rule table. The dora entries have no predicate;
// Evaluate counts them from the context.
var yakuTable = map[Yaku]yakuInfo{
	YakuMenzenTsumo:    {"Menzen tsumo", 1, 0, hasMenzenTsumo, nil},
	YakuRiichi:         {"Riichi", 1, 0, hasRiichi, nil},
	YakuIppatsu:        {"Ippatsu", 1, 0, hasIppatsu, nil},
	YakuPinfu:          {"Pinfu", 1, 0, hasPinfu, nil},
	YakuIipeikou:       {"Iipeikou", 1, 0, hasIipeikou, nil},
	YakuHaitei:         {"Haitei raoyue", 1, 1, hasHaitei, nil},
	YakuHoutei:         {"Houtei raoyui", 1, 1, hasHoutei, nil},
	YakuRinshan:        {"Rinshan kaihou", 1, 1, hasRinshan, nil},
	YakuChankan:        {"Chankan", 1, 1, hasChankan, nil},
	YakuTanyao:         {"Tanyao", 1, 1, hasTanyao, nil},
	YakuSeatWind:       {"Yakuhai: seat wind", 1, 1, hasSeatWind, nil},
	YakuRoundWind:      {"Yakuhai: round wind", 1, 1, hasRoundWind, nil},
	YakuHaku:           {"Yakuhai: haku", 1, 1, hasDragon(Haku), nil},
	YakuHatsu:          {"Yakuhai: hatsu", 1, 1, hasDragon(Hatsu), nil},
	YakuChun:           {"Yakuhai: chun", 1, 1, hasDragon(Chun), nil},
	YakuDoubleRiichi:   {"Double riichi", 2, 0, hasDoubleRiichi, []Yaku{YakuRiichi}},
	YakuChanta:         {"Chantaiyao", 2, 1, hasChanta, nil},
	YakuSanshokuDoujun: {"Sanshoku doujun", 2, 1, hasSanshokuDoujun, nil},
	YakuIttsu:          {"Ittsu", 2, 1, hasIttsu, nil},
	YakuToitoi:         {"Toitoi", 2, 2, hasToitoi, nil},
	YakuSanankou:       {"Sanankou", 2, 2, hasSanankou, nil},
	YakuSanshokuDoukou: {"Sanshoku doukou", 2, 2, hasSanshokuDoukou, nil},
	YakuSankantsu:      {"Sankantsu", 2, 2, hasSankantsu, nil},
	YakuChiitoitsu:     {"Chiitoitsu", 2, 0, hasChiitoitsu, []Yaku{YakuToitoi}},
	YakuHonroutou:      {"Honroutou", 2, 2, hasHonroutou, []Yaku{YakuChanta}},
	YakuShousangen:     {"Shousangen", 2, 2, hasShousangen, nil},
	YakuRyanpeikou:     {"Ryanpeikou", 3, 0, hasRyanpeikou, []Yaku{YakuIipeikou}},
	YakuHonitsu:        {"Honitsu", 3, 2, hasHonitsu, nil},
	YakuJunchan:        {"Junchan taiyao", 3, 2, hasJunchan, []Yaku{YakuChanta}},
	YakuChinitsu:       {"Chinitsu", 6, 5, hasChinitsu, []Yaku{YakuHonitsu}},
	YakuDora:           {"Dora", 1, 1, nil, nil},
	YakuAkaDora:        {"Aka dora", 1, 1, nil, nil},
	YakuUraDora:        {"Ura dora", 1, 1, nil, nil},
}

// yakuOrder fixes the evaluation and reporting order.
var yakuOrder = []Yaku{
	YakuRiichi, YakuDoubleRiichi, YakuIppatsu, YakuMenzenTsumo, YakuPinfu,
	YakuIipeikou, YakuRyanpeikou, YakuHaitei, YakuHoutei, YakuRinshan, YakuChankan,
	YakuTanyao, YakuSeatWind, YakuRoundWind, YakuHaku, YakuHatsu, YakuChun,
	YakuChanta, YakuJunchan, YakuSanshokuDoujun, YakuIttsu, YakuToitoi, YakuSanankou,
	YakuSanshokuDoukou, YakuSankantsu, YakuChiitoitsu, YakuHonroutou, YakuShousangen,
	YakuHonitsu, YakuChinitsu,
}

func (y Yaku) String() string {
	if info, ok := yakuTable[y]; ok {
		return info.name
	}
	return "Unknown yaku"
}

// Han returns the yaku's value for a closed or open hand. Zero means it does not count.
func (y Yaku) Han(closed bool) int {
	info := yakuTable[y]
	return If(closed, info.hanClosed, info.hanOpen)
}

// IsDora reports the bonus-tile entries, which never qualify a hand by themselves.
func (y Yaku) IsDora() bool { return y == YakuDora || y == YakuAkaDora || y == YakuUraDora }

type yakumanInfo struct {
	name       string
	double     bool // worth two yakuman when Rules.DoubleYakuman is set
	check      func(*evalInput) bool
	supersedes []Yakuman
}

var yakumanTable = map[Yakuman]yakumanInfo{
	YakumanKokushi:          {"Kokushi musou", false, hasKokushi, nil},
	YakumanKokushiJuusanmen: {"Kokushi musou juusanmen", true, hasKokushiJuusanmen, []Yakuman{YakumanKokushi}},
	YakumanSuuankou:         {"Suuankou", false, hasSuuankou, nil},
	YakumanSuuankouTanki:    {"Suuankou tanki", true, hasSuuankouTanki, []Yakuman{YakumanSuuankou}},
	YakumanDaisangen:        {"Daisangen", false, hasDaisangen, nil},
	YakumanShousuushii:      {"Shousuushii", false, hasShousuushii, nil},
	YakumanDaisuushii:       {"Daisuushii", false, hasDaisuushii, []Yakuman{YakumanShousuushii}},
	YakumanTsuuiisou:        {"Tsuuiisou", false, hasTsuuiisou, nil},
	YakumanChinroutou:       {"Chinroutou", false, hasChinroutou, nil},
	YakumanRyuuiisou:        {"Ryuuiisou", false, hasRyuuiisou, nil},
	YakumanChuuren:          {"Chuuren poutou", false, hasChuuren, nil},
	YakumanJunseiChuuren:    {"Junsei chuuren poutou", true, hasJunseiChuuren, []Yakuman{YakumanChuuren}},
	YakumanSuukantsu:        {"Suukantsu", false, hasSuukantsu, nil},
	YakumanTenhou:           {"Tenhou", false, hasTenhou, nil},
	YakumanChiihou:          {"Chiihou", false, hasChiihou, nil},
}

var yakumanOrder = []Yakuman{
	YakumanKokushi, YakumanKokushiJuusanmen, YakumanSuuankou, YakumanSuuankouTanki,
	YakumanDaisangen, YakumanShousuushii, YakumanDaisuushii, YakumanTsuuiisou,
	YakumanChinroutou, YakumanRyuuiisou, YakumanChuuren, YakumanJunseiChuuren,
	YakumanSuukantsu, YakumanTenhou, YakumanChiihou,
}

func (y Yakuman) String() string {
	if info, ok := yakumanTable[y]; ok {
		return info.name
	}
	return "Unknown yakuman"
}

// Multiplier returns how many yakuman the pattern is worth under rules.
func (y Yakuman) Multiplier(rules Rules) int {
	return If(yakumanTable[y].double && rules.DoubleYakuman, 2, 1)
}

// YakuHan is a satisfied yaku with the han it contributed.
type YakuHan struct {
	Yaku Yaku
	Han  int
}

// YakumanHit is a satisfied yakuman with its multiplier.
type YakumanHit struct {
	Yakuman    Yakuman
	Multiplier int
}

// Evaluation is the pattern set satisfied by one partition.
type Evaluation struct {
	Yaku    []YakuHan
	Yakuman []YakumanHit
}

// Han sums the han of the normal yaku, dora included.
func (e Evaluation) Han() int {
	han := 0
	for _, y := range e.Yaku {
		han += y.Han
	}
	return han
}

// Multiplier sums the yakuman multipliers.
func (e Evaluation) Multiplier() int {
	n := 0
	for _, y := range e.Yakuman {
		n += y.Multiplier
	}
	return n
}

// Qualifies reports whether the partition has a yakuman or at least one yaku
// that is not a bonus tile.
func (e Evaluation) Qualifies() bool {
	if len(e.Yakuman) > 0 {
		return true
	}
	for _, y := range e.Yaku {
		if !y.Yaku.IsDora() {
			return true
		}
	}
	return false
}

// Evaluate determines the yaku and yakuman satisfied by one partition of a hand.
// When any yakuman matches, the normal yaku are dropped.
func Evaluate(p Partition, h Hand, ctx HandContext, rules Rules) Evaluation {
	in := &evalInput{
		part:   p,
		hand:   h,
		ctx:    ctx,
		rules:  rules,
		closed: h.Closed(),
		tiles:  p.Tiles(),
	}
	if p.Shape == ShapeStandard {
		in.melds = p.Melds()
		in.pair, _ = p.Pair()
	}

	var ev Evaluation
	var foundYakuman []Yakuman
	for _, y := range yakumanOrder {
		if yakumanTable[y].check(in) {
			foundYakuman = append(foundYakuman, y)
		}
	}
	for _, y := range foundYakuman {
		superseded := false
		for _, other := range foundYakuman {
			if contains(yakumanTable[other].supersedes, y) {
				superseded = true
				break
			}
		}
		if !superseded {
			ev.Yakuman = append(ev.Yakuman, YakumanHit{Yakuman: y, Multiplier: y.Multiplier(rules)})
		}
	}
	if len(ev.Yakuman) > 0 {
		return ev
	}

	var found []Yaku
	for _, y := range yakuOrder {
		if y.Han(in.closed) > 0 && yakuTable[y].check(in) {
			found = append(found, y)
		}
	}
	for _, y := range found {
		superseded := false
		for _, other := range found {
			if contains(yakuTable[other].supersedes, y) {
				superseded = true
				break
			}
		}
		if !superseded {
			ev.Yaku = append(ev.Yaku, YakuHan{Yaku: y, Han: y.Han(in.closed)})
		}
	}

	all := h.AllTiles()
	for i := countDora(all, ctx.DoraIndicators); i > 0; i-- {
		ev.Yaku = append(ev.Yaku, YakuHan{Yaku: YakuDora, Han: 1})
	}
	for i := ctx.AkaDora; i > 0; i-- {
		ev.Yaku = append(ev.Yaku, YakuHan{Yaku: YakuAkaDora, Han: 1})
	}
	if ctx.Riichi {
		for i := countDora(all, ctx.UraDoraIndicators); i > 0; i-- {
			ev.Yaku = append(ev.Yaku, YakuHan{Yaku: YakuUraDora, Han: 1})
		}
	}
	return ev
}

// Context-dependent yaku

func hasMenzenTsumo(in *evalInput) bool  { return in.closed && in.hand.Tsumo }
func hasRiichi(in *evalInput) bool       { return in.closed && in.ctx.Riichi }
func hasDoubleRiichi(in *evalInput) bool { return in.closed && in.ctx.DoubleRiichi }
func hasIppatsu(in *evalInput) bool      { return in.closed && in.ctx.Riichi && in.ctx.Ippatsu }
func hasHaitei(in *evalInput) bool       { return in.ctx.Haitei && in.hand.Tsumo }
func hasHoutei(in *evalInput) bool       { return in.ctx.Houtei && !in.hand.Tsumo }
func hasRinshan(in *evalInput) bool      { return in.ctx.Rinshan && in.hand.Tsumo }
func hasChankan(in *evalInput) bool      { return in.ctx.Chankan && !in.hand.Tsumo }
func hasTenhou(in *evalInput) bool       { return in.ctx.Tenhou && in.ctx.Dealer() && in.hand.Tsumo }
func hasChiihou(in *evalInput) bool      { return in.ctx.Chiihou && !in.ctx.Dealer() && in.hand.Tsumo }

// Composition-dependent yaku

// hasPinfu needs a closed all-sequence hand, a pair worth no fu and a two-sided wait.
func hasPinfu(in *evalInput) bool {
	if !in.standard() || !in.closed || in.part.Wait != WaitRyanmen {
		return false
	}
	if len(in.sequences()) != 4 {
		return false
	}
	return !isValuePair(in.pair.Tile, in.ctx)
}

func isValuePair(t Tile, ctx HandContext) bool {
	return t.IsDragon() || t == ctx.SeatWind.Tile() || t == ctx.RoundWind.Tile()
}

// identicalSequences counts sequences by starting tile.
func identicalSequences(in *evalInput) map[Tile]int {
	seen := map[Tile]int{}
	for _, g := range in.sequences() {
		seen[g.Tile]++
	}
	return seen
}

func hasIipeikou(in *evalInput) bool {
	if !in.standard() || !in.closed {
		return false
	}
	for _, n := range identicalSequences(in) {
		if n >= 2 {
			return true
		}
	}
	return false
}

func hasRyanpeikou(in *evalInput) bool {
	if !in.standard() || !in.closed || len(in.sequences()) != 4 {
		return false
	}
	for _, n := range identicalSequences(in) {
		if n%2 != 0 {
			return false
		}
	}
	return true
}

func hasTanyao(in *evalInput) bool {
	return (in.closed || in.rules.OpenTanyao) && in.allTiles(Tile.IsSimple)
}

func hasSeatWind(in *evalInput) bool  { return in.tripletOf(in.ctx.SeatWind.Tile()) }
func hasRoundWind(in *evalInput) bool { return in.tripletOf(in.ctx.RoundWind.Tile()) }

func hasDragon(rank uint8) func(*evalInput) bool {
	t := Tile{Suit: SuitHonor, Rank: rank}
	return func(in *evalInput) bool { return in.tripletOf(t) }
}

// hasChanta needs every group to hold a terminal or honor, at least one
// sequence and at least one honor; without honors it is junchan.
func hasChanta(in *evalInput) bool {
	if !in.standard() || len(in.sequences()) == 0 {
		return false
	}
	honor := false
	for _, g := range in.part.Groups {
		if !g.HasTerminalOrHonor() {
			return false
		}
		honor = honor || g.Tile.IsHonor()
	}
	return honor
}

func hasJunchan(in *evalInput) bool {
	if !in.standard() || len(in.sequences()) == 0 {
		return false
	}
	for _, g := range in.part.Groups {
		if !g.HasTerminal() {
			return false
		}
	}
	return true
}

func hasSanshokuDoujun(in *evalInput) bool {
	suits := map[uint8]map[Suit]bool{}
	for _, g := range in.sequences() {
		if suits[g.Tile.Rank] == nil {
			suits[g.Tile.Rank] = map[Suit]bool{}
		}
		suits[g.Tile.Rank][g.Tile.Suit] = true
	}
	for _, s := range suits {
		if len(s) == 3 {
			return true
		}
	}
	return false
}

func hasIttsu(in *evalInput) bool {
	for _, suit := range []Suit{SuitMan, SuitPin, SuitSou} {
		starts := map[uint8]bool{}
		for _, g := range in.sequences() {
			if g.Tile.Suit == suit {
				starts[g.Tile.Rank] = true
			}
		}
		if starts[1] && starts[4] && starts[7] {
			return true
		}
	}
	return false
}

func hasToitoi(in *evalInput) bool {
	if !in.standard() {
		return false
	}
	for _, g := range in.melds {
		if !g.IsTriplet() {
			return false
		}
	}
	return true
}

func hasSanankou(in *evalInput) bool {
	return in.standard() && in.concealedTriplets() >= 3
}

func hasSanshokuDoukou(in *evalInput) bool {
	suits := map[uint8]map[Suit]bool{}
	for _, g := range in.melds {
		if !g.IsTriplet() || !g.Tile.Suit.Numbered() {
			continue
		}
		if suits[g.Tile.Rank] == nil {
			suits[g.Tile.Rank] = map[Suit]bool{}
		}
		suits[g.Tile.Rank][g.Tile.Suit] = true
	}
	for _, s := range suits {
		if len(s) == 3 {
			return true
		}
	}
	return false
}

func hasSankantsu(in *evalInput) bool { return in.hand.KanCount() == 3 }

func hasChiitoitsu(in *evalInput) bool { return in.part.Shape == ShapeSevenPairs }

func hasHonroutou(in *evalInput) bool { return in.allTiles(Tile.IsTerminalOrHonor) }

func hasShousangen(in *evalInput) bool {
	if !in.standard() || !in.pair.Tile.IsDragon() {
		return false
	}
	n := 0
	for _, g := range in.melds {
		if g.IsTriplet() && g.Tile.IsDragon() {
			n++
		}
	}
	return n == 2
}

// singleSuit returns the one numbered suit used by the hand and whether honors appear.
func singleSuit(tiles []Tile) (suit Suit, honors bool, ok bool) {
	for _, t := range tiles {
		switch {
		case t.IsHonor():
			honors = true
		case suit == SuitNone:
			suit = t.Suit
		case suit != t.Suit:
			return SuitNone, honors, false
		}
	}
	return suit, honors, suit != SuitNone
}

func hasHonitsu(in *evalInput) bool {
	_, _, ok := singleSuit(in.tiles)
	return ok
}

func hasChinitsu(in *evalInput) bool {
	_, honors, ok := singleSuit(in.tiles)
	return ok && !honors
}

// Yakuman

func hasKokushi(in *evalInput) bool {
	return in.part.Shape == ShapeThirteenOrphans && in.part.Wait != WaitThirteenSided
}

func hasKokushiJuusanmen(in *evalInput) bool {
	return in.part.Shape == ShapeThirteenOrphans && in.part.Wait == WaitThirteenSided
}

func hasSuuankou(in *evalInput) bool {
	return in.standard() && in.concealedTriplets() == 4 && in.part.Wait != WaitTanki
}

func hasSuuankouTanki(in *evalInput) bool {
	return in.standard() && in.concealedTriplets() == 4 && in.part.Wait == WaitTanki
}

func hasDaisangen(in *evalInput) bool {
	return in.tripletOf(Tile{Suit: SuitHonor, Rank: Haku}) &&
		in.tripletOf(Tile{Suit: SuitHonor, Rank: Hatsu}) &&
		in.tripletOf(Tile{Suit: SuitHonor, Rank: Chun})
}

func windTriplets(in *evalInput) int {
	n := 0
	for _, g := range in.melds {
		if g.IsTriplet() && g.Tile.IsWind() {
			n++
		}
	}
	return n
}

func hasShousuushii(in *evalInput) bool {
	return in.standard() && windTriplets(in) == 3 && in.pair.Tile.IsWind()
}

func hasDaisuushii(in *evalInput) bool { return windTriplets(in) == 4 }

func hasTsuuiisou(in *evalInput) bool {
	return in.part.Shape != ShapeThirteenOrphans && in.allTiles(Tile.IsHonor)
}

func hasChinroutou(in *evalInput) bool { return in.allTiles(Tile.IsTerminal) }

func hasRyuuiisou(in *evalInput) bool { return in.allTiles(Tile.IsGreen) }

// chuurenExtra returns the rank of the tile added to 1112345678999 in one
// suit, or 0 when the hand is not nine gates.
func chuurenExtra(in *evalInput) uint8 {
	if !in.standard() || len(in.hand.Calls) > 0 {
		return 0
	}
	if _, honors, ok := singleSuit(in.tiles); !ok || honors {
		return 0
	}
	base := [10]int{0, 3, 1, 1, 1, 1, 1, 1, 1, 3}
	var counts [10]int
	for _, t := range in.tiles {
		counts[t.Rank]++
	}
	var extra uint8
	for r := 1; r <= 9; r++ {
		switch counts[r] - base[r] {
		case 0:
		case 1:
			if extra != 0 {
				return 0
			}
			extra = uint8(r)
		default:
			return 0
		}
	}
	return extra
}

func hasChuuren(in *evalInput) bool {
	return chuurenExtra(in) != 0
}

// hasJunseiChuuren is nine gates completed on a nine-sided wait: the winning
// tile is the extra one.
func hasJunseiChuuren(in *evalInput) bool {
	extra := chuurenExtra(in)
	return extra != 0 && in.hand.WinningTile.Rank == extra
}

func hasSuukantsu(in *evalInput) bool { return in.hand.KanCount() == 4 }

// YakuEntry describes a yaku for listings. HanOpen is zero for closed-only yaku.
type YakuEntry struct {
	Name      string `json:"name"`
	HanClosed int    `json:"han_closed"`
	HanOpen   int    `json:"han_open"`
}

// YakumanEntry describes a yakuman for listings.
type YakumanEntry struct {
	Name   string `json:"name"`
	Double bool   `json:"double"`
}

// YakuList returns every yaku in reporting order, followed by the bonus tiles.
func YakuList() []YakuEntry {
	order := append(append([]Yaku(nil), yakuOrder...), YakuDora, YakuAkaDora, YakuUraDora)
	out := make([]YakuEntry, 0, len(order))
	for _, y := range order {
		info := yakuTable[y]
		out = append(out, YakuEntry{Name: info.name, HanClosed: info.hanClosed, HanOpen: info.hanOpen})
	}
	return out
}

// YakumanList returns every yakuman in reporting order.
func YakumanList() []YakumanEntry {
	out := make([]YakumanEntry, 0, len(yakumanOrder))
	for _, y := range yakumanOrder {
		info := yakumanTable[y]
		out = append(out, YakumanEntry{Name: info.name, Double: info.double})
	}
	return out
}
