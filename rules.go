package mahjong

import "fmt"

// Riichi stick and honba values.
const (
	RiichiBet      = 1000
	HonbaRon       = 300 // paid by the discarder per honba
	HonbaTsumoEach = 100 // paid by each payer per honba
)

// Rules holds the rule variants the engine supports.
type Rules struct {
	OpenTanyao    bool `json:"open_tanyao"`    // tanyao counts with an open hand (kuitan)
	KazoeYakuman  bool `json:"kazoe_yakuman"`  // 13 han or more scores as yakuman instead of sanbaiman
	KiriageMangan bool `json:"kiriage_mangan"` // 4 han 30 fu and 3 han 60 fu round up to mangan
	DoubleYakuman bool `json:"double_yakuman"` // 13-sided kokushi, suuankou tanki and junsei chuuren score double
}

// DefaultRules returns the common ruleset: open tanyao and kazoe yakuman on,
// kiriage mangan and double yakuman off.
func DefaultRules() Rules {
	return Rules{OpenTanyao: true, KazoeYakuman: true}
}

// Limit is a named scoring bracket.
type Limit uint8

const (
	LimitNone Limit = iota
	LimitMangan
	LimitHaneman
	LimitBaiman
	LimitSanbaiman
	LimitYakuman
)

var limitNames = [...]string{"", "Mangan", "Haneman", "Baiman", "Sanbaiman", "Yakuman"}

func (l Limit) String() string { return limitNames[l] }

// limitBase is the base point value of each limit.
var limitBase = [...]int{0, 2000, 3000, 4000, 6000, 8000}

// ClassifyLimit resolves the limit tier reached by a non-yakuman han and fu total.
func ClassifyLimit(han, fu int, rules Rules) Limit {
	switch {
	case han >= 13:
		return If(rules.KazoeYakuman, LimitYakuman, LimitSanbaiman)
	case han >= 11:
		return LimitSanbaiman
	case han >= 8:
		return LimitBaiman
	case han >= 6:
		return LimitHaneman
	case han == 5:
		return LimitMangan
	case han == 4 && fu >= 40, han == 3 && fu >= 70:
		return LimitMangan
	case rules.KiriageMangan && (han == 4 && fu == 30 || han == 3 && fu == 60):
		return LimitMangan
	}
	if han > 0 && basePoints(han, fu) >= limitBase[LimitMangan] {
		return LimitMangan
	}
	return LimitNone
}

// basePoints is fu * 2^(han+2), the unlimited base value.
func basePoints(han, fu int) int {
	return fu << (han + 2)
}

// BasePoints returns the base value for a result: the limit value times the
// yakuman multiplier when a limit applies, otherwise fu * 2^(han+2).
func BasePoints(han, fu int, limit Limit, multiplier int) int {
	switch {
	case limit == LimitYakuman:
		return limitBase[LimitYakuman] * max(multiplier, 1)
	case limit != LimitNone:
		return limitBase[limit]
	}
	return basePoints(han, fu)
}

// Points is the payment a winner collects. Ron fills Ron. A dealer tsumo fills
// TsumoNonDealer, paid by each of the three others. A non-dealer tsumo fills
// both tsumo fields. Honba are already included in every payment.
type Points struct {
	Ron            int `json:"ron,omitempty"`              // paid by the discarder
	TsumoDealer    int `json:"tsumo_dealer,omitempty"`     // paid by the dealer
	TsumoNonDealer int `json:"tsumo_non_dealer,omitempty"` // paid by each non-dealer
	Honba          int `json:"honba,omitempty"`            // honba bonus within Total
	Sticks         int `json:"sticks,omitempty"`           // riichi deposits within Total
	Total          int `json:"total"`                      // everything the winner receives
}

// ResolvePoints turns a base value into payments. Each payment is rounded up
// to the next 100 before honba are added.
func ResolvePoints(base int, dealer, tsumo bool, honba, riichiSticks int) Points {
	var p Points
	switch {
	case !tsumo:
		p.Ron = ceilHundred(base*If(dealer, 6, 4)) + honba*HonbaRon
		p.Honba = honba * HonbaRon
		p.Total = p.Ron
	case dealer:
		p.TsumoNonDealer = ceilHundred(base*2) + honba*HonbaTsumoEach
		p.Honba = 3 * honba * HonbaTsumoEach
		p.Total = 3 * p.TsumoNonDealer
	default:
		p.TsumoDealer = ceilHundred(base*2) + honba*HonbaTsumoEach
		p.TsumoNonDealer = ceilHundred(base) + honba*HonbaTsumoEach
		p.Honba = 3 * honba * HonbaTsumoEach
		p.Total = p.TsumoDealer + 2*p.TsumoNonDealer
	}
	p.Sticks = riichiSticks * RiichiBet
	p.Total += p.Sticks
	return p
}

// String describes the payment the way it is announced at the table.
func (p Points) String() string {
	switch {
	case p.Ron > 0:
		return fmt.Sprintf("%d", p.Ron)
	case p.TsumoDealer > 0:
		return fmt.Sprintf("%d/%d", p.TsumoNonDealer, p.TsumoDealer)
	case p.TsumoNonDealer > 0:
		return fmt.Sprintf("%d all", p.TsumoNonDealer)
	}
	return "0"
}
