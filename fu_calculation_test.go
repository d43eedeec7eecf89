package mahjong

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func onlyPartition(t *testing.T, h Hand) Partition {
	t.Helper()
	parts, err := Decompose(h)
	require.NoError(t, err)
	require.Len(t, parts, 1)
	return parts[0]
}

func TestCalculateFu(t *testing.T) {
	tests := []struct {
		name  string
		hand  Hand
		ctx   HandContext
		items []FuItem
		total int
	}{
		{
			name:  "pinfu tsumo",
			hand:  mustHand(t, "123456m123p22678s", "6s", true),
			ctx:   winds(WindEast, WindSouth),
			items: []FuItem{{FuBase, 20}},
			total: 20,
		},
		{
			name:  "pinfu ron",
			hand:  mustHand(t, "123456m123p22678s", "6s", false),
			ctx:   winds(WindEast, WindSouth),
			items: []FuItem{{FuBase, 20}, {FuClosedRon, 10}},
			total: 30,
		},
		{
			name:  "open pinfu",
			hand:  mustHand(t, "234m567p22p234s", "4s", false, "chi:789s"),
			ctx:   winds(WindEast, WindSouth),
			items: []FuItem{{FuBase, 20}, {FuOpenPinfu, 2}, {FuRoundUp, 8}},
			total: 30,
		},
		{
			name:  "kanchan ron",
			hand:  mustHand(t, "234m456p678p99p789s", "3m", false),
			ctx:   winds(WindEast, WindSouth),
			items: []FuItem{{FuBase, 20}, {FuKanchan, 2}, {FuClosedRon, 10}, {FuRoundUp, 8}},
			total: 40,
		},
		{
			name: "closed triplet and wind pair tsumo",
			hand: mustHand(t, "222m456p234s789s11z", "5p", true),
			ctx:  winds(WindEast, WindSouth),
			items: []FuItem{
				{FuBase, 20}, {FuClosedTripletSimple, 4}, {FuPairRoundWind, 2},
				{FuKanchan, 2}, {FuTsumo, 2},
			},
			total: 30,
		},
		{
			name: "double wind pair",
			hand: mustHand(t, "222m456p234s789s11z", "5p", true),
			ctx:  winds(WindEast, WindEast),
			items: []FuItem{
				{FuBase, 20}, {FuClosedTripletSimple, 4}, {FuPairRoundWind, 2}, {FuPairSeatWind, 2},
				{FuKanchan, 2}, {FuTsumo, 2}, {FuRoundUp, 8},
			},
			total: 40,
		},
		{
			name: "concealed kans with ron triplet",
			hand: mustHand(t, "456m11122z", "1z", false, "ankan:1s", "ankan:7z"),
			ctx:  winds(WindSouth, WindSouth),
			items: []FuItem{
				{FuBase, 20}, {FuClosedQuadTerminal, 32}, {FuClosedQuadHonor, 32},
				{FuOpenTripletHonor, 4}, {FuPairRoundWind, 2}, {FuPairSeatWind, 2},
				{FuClosedRon, 10}, {FuRoundUp, 8},
			},
			total: 110,
		},
		{
			name:  "seven pairs",
			hand:  mustHand(t, "1133m5577p99s1122z", "2z", true),
			ctx:   winds(WindEast, WindSouth),
			items: []FuItem{{FuChiitoitsu, 25}},
			total: 25,
		},
		{
			name:  "thirteen orphans",
			hand:  mustHand(t, "19m19p19s12345677z", "1m", true),
			ctx:   winds(WindEast, WindSouth),
			total: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := onlyPartition(t, tt.hand)
			fu := CalculateFu(p, tt.hand, tt.ctx)
			assert.Equal(t, tt.items, fu.Items)
			assert.Equal(t, tt.total, fu.Total)
		})
	}
}

func TestMeldFu(t *testing.T) {
	tests := []struct {
		tile string
		open bool
		quad bool
		want int
	}{
		{"5m", true, false, 2},
		{"9p", true, false, 4},
		{"3z", true, false, 4},
		{"5m", false, false, 4},
		{"1s", false, false, 8},
		{"7z", false, false, 8},
		{"5m", true, true, 8},
		{"9p", true, true, 16},
		{"5m", false, true, 16},
		{"1z", false, true, 32},
	}
	for _, tt := range tests {
		r := meldFu(MustParseTile(tt.tile), tt.open, tt.quad)
		assert.Equal(t, tt.want, fuTable[r].fu, "%s open=%v quad=%v", tt.tile, tt.open, tt.quad)
	}
}
