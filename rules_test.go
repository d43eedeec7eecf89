package mahjong

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLimit(t *testing.T) {
	tests := []struct {
		han, fu int
		rules   Rules
		want    Limit
	}{
		{1, 30, DefaultRules(), LimitNone},
		{2, 110, DefaultRules(), LimitNone},
		{3, 60, DefaultRules(), LimitNone},
		{3, 70, DefaultRules(), LimitMangan},
		{4, 30, DefaultRules(), LimitNone},
		{4, 40, DefaultRules(), LimitMangan},
		{5, 30, DefaultRules(), LimitMangan},
		{6, 30, DefaultRules(), LimitHaneman},
		{7, 30, DefaultRules(), LimitHaneman},
		{8, 30, DefaultRules(), LimitBaiman},
		{10, 30, DefaultRules(), LimitBaiman},
		{11, 30, DefaultRules(), LimitSanbaiman},
		{12, 30, DefaultRules(), LimitSanbaiman},
		{13, 30, DefaultRules(), LimitYakuman},
		{13, 30, Rules{}, LimitSanbaiman},
		{4, 30, Rules{KiriageMangan: true}, LimitMangan},
		{3, 60, Rules{KiriageMangan: true}, LimitMangan},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dhan_%dfu", tt.han, tt.fu), func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyLimit(tt.han, tt.fu, tt.rules))
		})
	}
}

func TestBasePoints(t *testing.T) {
	assert.Equal(t, 240, BasePoints(1, 30, LimitNone, 0))
	assert.Equal(t, 1920, BasePoints(4, 30, LimitNone, 0))
	assert.Equal(t, 2000, BasePoints(5, 30, LimitMangan, 0))
	assert.Equal(t, 6000, BasePoints(11, 30, LimitSanbaiman, 0))
	assert.Equal(t, 8000, BasePoints(13, 0, LimitYakuman, 1))
	assert.Equal(t, 16000, BasePoints(26, 0, LimitYakuman, 2))
}

func TestResolvePoints(t *testing.T) {
	tests := []struct {
		name   string
		base   int
		dealer bool
		tsumo  bool
		honba  int
		sticks int
		want   Points
	}{
		{"non-dealer ron", 240, false, false, 0, 0, Points{Ron: 1000, Total: 1000}},
		{"dealer ron", 240, true, false, 0, 0, Points{Ron: 1500, Total: 1500}},
		{"non-dealer tsumo", 240, false, true, 0, 0, Points{TsumoDealer: 500, TsumoNonDealer: 300, Total: 1100}},
		{"dealer tsumo", 240, true, true, 0, 0, Points{TsumoNonDealer: 500, Total: 1500}},
		{"pinfu tsumo", 320, false, true, 0, 0, Points{TsumoDealer: 700, TsumoNonDealer: 400, Total: 1500}},
		{"ron with honba", 240, false, false, 2, 0, Points{Ron: 1600, Honba: 600, Total: 1600}},
		{"tsumo with honba", 240, false, true, 2, 0, Points{TsumoDealer: 700, TsumoNonDealer: 500, Honba: 600, Total: 1700}},
		{"ron with sticks", 240, false, false, 0, 2, Points{Ron: 1000, Sticks: 2000, Total: 3000}},
		{"mangan dealer ron", 2000, true, false, 0, 0, Points{Ron: 12000, Total: 12000}},
		{"double yakuman dealer ron", 16000, true, false, 0, 0, Points{Ron: 96000, Total: 96000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePoints(tt.base, tt.dealer, tt.tsumo, tt.honba, tt.sticks))
		})
	}
}

// Tsumo totals differ from ron totals only by per-payer rounding.
func TestResolvePoints_TsumoCloseToRon(t *testing.T) {
	for han := 1; han <= 4; han++ {
		for fu := 30; fu <= 110; fu += 10 {
			base := basePoints(han, fu)
			if base >= 2000 {
				continue
			}
			for _, dealer := range []bool{false, true} {
				ron := ResolvePoints(base, dealer, false, 0, 0).Total
				tsumo := ResolvePoints(base, dealer, true, 0, 0).Total
				assert.GreaterOrEqual(t, tsumo, ron, "%d han %d fu dealer=%v", han, fu, dealer)
				assert.Less(t, tsumo-ron, 300, "%d han %d fu dealer=%v", han, fu, dealer)
			}
		}
	}
}

func TestPoints_String(t *testing.T) {
	assert.Equal(t, "3900", Points{Ron: 3900, Total: 3900}.String())
	assert.Equal(t, "400/700", Points{TsumoDealer: 700, TsumoNonDealer: 400}.String())
	assert.Equal(t, "4000 all", Points{TsumoNonDealer: 4000}.String())
}
