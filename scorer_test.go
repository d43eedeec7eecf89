package mahjong

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_PinfuTsumo(t *testing.T) {
	h := mustHand(t, "123456m123p22678s", "6s", true)
	r, err := Score(h, winds(WindEast, WindSouth))
	require.NoError(t, err)

	assert.Equal(t, 20, r.Fu.Total)
	assert.Equal(t, 2, r.Han)
	assert.Equal(t, LimitNone, r.Limit)
	assert.Equal(t, 700, r.Points.TsumoDealer)
	assert.Equal(t, 400, r.Points.TsumoNonDealer)
	assert.Equal(t, "20 fu 2 han: 400/700", r.Headline())
}

func TestScore_ConcealedKans110Fu(t *testing.T) {
	h := mustHand(t, "456m11122z", "1z", false, "ankan:1s", "ankan:7z")
	r, err := Score(h, winds(WindSouth, WindSouth))
	require.NoError(t, err)

	assert.Equal(t, []Yaku{YakuChun}, yakuList(r))
	assert.Equal(t, 110, r.Fu.Total)
	assert.Equal(t, 1, r.Han)
	assert.Equal(t, 3600, r.Points.Ron)
}

func TestScore_SevenPairsBaiman(t *testing.T) {
	h := mustHand(t, "113344m55p22s3355z", "4m", true)
	ctx := winds(WindEast, WindEast)
	ctx.Riichi = true
	ctx.DoraIndicators = MustParseTiles("2m4p")

	r, err := Score(h, ctx)
	require.NoError(t, err)
	assert.Equal(t, ShapeSevenPairs, r.Partition.Shape)
	assert.Equal(t, 25, r.Fu.Total)
	assert.Equal(t, 8, r.Han)
	assert.Equal(t, LimitBaiman, r.Limit)
	assert.Equal(t, 8000, r.Points.TsumoNonDealer)
	assert.Equal(t, "Baiman: 8000 all", r.Headline())
}

func TestScore_ToitoiSanshokuDoukou(t *testing.T) {
	h := mustHand(t, "444999m44z", "4z", true, "daiminkan:4s", "pon:4p")
	r, err := Score(h, winds(WindEast, WindEast))
	require.NoError(t, err)

	assert.Equal(t, []Yaku{YakuToitoi, YakuSanshokuDoukou}, yakuList(r))
	assert.Equal(t, 50, r.Fu.Total)
	assert.Equal(t, 4, r.Han)
	assert.Equal(t, LimitMangan, r.Limit)
	assert.Equal(t, 4000, r.Points.TsumoNonDealer)
	assert.Equal(t, 12000, r.Points.Total)
}

func TestScoreAll_NoRepeatedReadings(t *testing.T) {
	h := mustHand(t, "11123m456p789s555z", "1m", true)
	results, err := NewScorer().ScoreAll(h, winds(WindEast, WindSouth))
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.NotEqual(t, results[0].Partition.Wait, results[1].Partition.Wait)
}

func TestScoreAll_BestReadingFirst(t *testing.T) {
	h := mustHand(t, "55667788m678p678s", "5m", false)
	results, err := NewScorer().ScoreAll(h, winds(WindEast, WindWest))
	require.NoError(t, err)
	require.Len(t, results, 2)

	best := results[0]
	assert.Equal(t, WaitTanki, best.Partition.Wait)
	assert.Equal(t, []Yaku{YakuIipeikou, YakuTanyao, YakuSanshokuDoujun}, yakuList(&best))
	assert.Equal(t, 40, best.Fu.Total)
	assert.Equal(t, LimitMangan, best.Limit)
	assert.Equal(t, 8000, best.Points.Ron)

	other := results[1]
	assert.Equal(t, WaitRyanmen, other.Partition.Wait)
	assert.Contains(t, yakuList(&other), YakuPinfu)
	assert.Equal(t, 30, other.Fu.Total)
	assert.Equal(t, 3, other.Han)
	assert.Equal(t, 3900, other.Points.Ron)

	r, err := Score(h, winds(WindEast, WindWest))
	require.NoError(t, err)
	assert.Equal(t, best, *r)
}

func TestScore_Errors(t *testing.T) {
	tests := []struct {
		name string
		hand Hand
		ctx  HandContext
		want error
	}{
		{
			name: "thirteen tiles",
			hand: Hand{Concealed: MustParseTiles("123456m123p2278s")},
			ctx:  winds(WindEast, WindSouth),
			want: ErrMalformedHand,
		},
		{
			name: "winds missing",
			hand: mustHand(t, "123456m123p22678s", "6s", true),
			ctx:  HandContext{},
			want: ErrInvalidContext,
		},
		{
			name: "houtei on tsumo",
			hand: mustHand(t, "123456m123p22678s", "6s", true),
			ctx:  HandContext{RoundWind: WindEast, SeatWind: WindSouth, Houtei: true},
			want: ErrInvalidContext,
		},
		{
			name: "riichi with open hand",
			hand: mustHand(t, "345m567p678s88p", "3m", false, "chi:234s"),
			ctx:  HandContext{RoundWind: WindEast, SeatWind: WindSouth, Riichi: true},
			want: ErrInvalidContext,
		},
		{
			name: "incomplete shape",
			hand: mustHand(t, "1234567m12345p11z", "1z", true),
			ctx:  winds(WindEast, WindSouth),
			want: ErrNoDecomposition,
		},
		{
			name: "no yaku",
			hand: mustHand(t, "234m567p22p234s", "4s", false, "chi:789s"),
			ctx:  winds(WindEast, WindSouth),
			want: ErrNoYaku,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Score(tt.hand, tt.ctx)
			assert.Nil(t, r)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestScore_Deterministic(t *testing.T) {
	h := mustHand(t, "55667788m678p678s", "5m", false)
	ctx := winds(WindEast, WindWest)
	first, err := Score(h, ctx)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Score(h, ctx)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestScore_HonbaAndSticks(t *testing.T) {
	h := mustHand(t, "123456m123p22678s", "6s", true)
	ctx := winds(WindEast, WindSouth)
	ctx.Honba = 1
	ctx.RiichiSticks = 1

	r, err := Score(h, ctx)
	require.NoError(t, err)
	assert.Equal(t, 800, r.Points.TsumoDealer)
	assert.Equal(t, 500, r.Points.TsumoNonDealer)
	assert.Equal(t, 300, r.Points.Honba)
	assert.Equal(t, 1000, r.Points.Sticks)
	assert.Equal(t, 2800, r.Points.Total)
}

func TestScorer_LogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := NewScorer(WithLogger(logger))

	_, err := s.Score(mustHand(t, "123456m123p22678s", "6s", true), winds(WindEast, WindSouth))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "hand scored")
}

func TestFormatResult(t *testing.T) {
	h := mustHand(t, "456m11122z", "1z", false, "ankan:1s", "ankan:7z")
	r, err := Score(h, winds(WindSouth, WindSouth))
	require.NoError(t, err)

	out := FormatResult(*r)
	assert.True(t, strings.HasPrefix(out, "110 fu 1 han: 3600"))
	assert.Contains(t, out, "Yakuhai: chun")
	assert.Contains(t, out, "Closed quad (terminals)")
	assert.Contains(t, out, "total 3600")
}
