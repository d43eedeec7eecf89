package mahjong

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompose_SingleReading(t *testing.T) {
	h := mustHand(t, "123456m123p22678s", "6s", true)
	parts, err := Decompose(h)
	require.NoError(t, err)
	require.Len(t, parts, 1)

	p := parts[0]
	assert.Equal(t, ShapeStandard, p.Shape)
	assert.Len(t, p.Melds(), 4)
	pair, ok := p.Pair()
	require.True(t, ok)
	assert.Equal(t, MustParseTile("2s"), pair.Tile)
	win, ok := p.Winning()
	require.True(t, ok)
	assert.Equal(t, MustParseTile("6s"), win.Tile)
	assert.Equal(t, WaitRyanmen, p.Wait)
}

func TestDecompose_TripletsOrSequences(t *testing.T) {
	h := mustHand(t, "111222333m456p77s", "3m", true)
	parts, err := Decompose(h)
	require.NoError(t, err)
	require.Len(t, parts, 2)

	waits := []WaitType{parts[0].Wait, parts[1].Wait}
	assert.ElementsMatch(t, []WaitType{WaitShanpon, WaitPenchan}, waits)
	for _, p := range parts {
		assert.Equal(t, h.AllTiles(), p.Tiles(), p.String())
	}
}

func TestDecompose_PairAndSequenceOfSameKindOnce(t *testing.T) {
	h := mustHand(t, "11123m456p789s555z", "1m", true)
	parts, err := Decompose(h)
	require.NoError(t, err)
	require.Len(t, parts, 2)

	waits := []WaitType{parts[0].Wait, parts[1].Wait}
	assert.ElementsMatch(t, []WaitType{WaitRyanmen, WaitTanki}, waits)
	assert.Equal(t, parts[0].Groups, parts[1].Groups)
}

func TestDecompose_SevenPairsAlongsideStandard(t *testing.T) {
	h := mustHand(t, "112233m556677p99s", "9s", false)
	parts, err := Decompose(h)
	require.NoError(t, err)
	require.Len(t, parts, 2)

	assert.Equal(t, ShapeStandard, parts[0].Shape)
	assert.Equal(t, WaitTanki, parts[0].Wait)
	assert.Equal(t, ShapeSevenPairs, parts[1].Shape)
	assert.Len(t, parts[1].Groups, 7)
}

func TestDecompose_SevenPairsOnly(t *testing.T) {
	h := mustHand(t, "1133m5577p99s1122z", "2z", true)
	parts, err := Decompose(h)
	require.NoError(t, err)
	require.Len(t, parts, 1)

	p := parts[0]
	assert.Equal(t, ShapeSevenPairs, p.Shape)
	assert.Equal(t, WaitTanki, p.Wait)
	win, ok := p.Winning()
	require.True(t, ok)
	assert.Equal(t, MustParseTile("2z"), win.Tile)
	assert.Equal(t, h.AllTiles(), p.Tiles())
}

func TestDecompose_ThirteenOrphansIsExclusive(t *testing.T) {
	tests := []struct {
		name string
		win  string
		wait WaitType
	}{
		{"duplicate drawn", "7z", WaitThirteenSided},
		{"single drawn", "1m", WaitTanki},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := mustHand(t, "19m19p19s12345677z", tt.win, true)
			parts, err := Decompose(h)
			require.NoError(t, err)
			require.Len(t, parts, 1)
			assert.Equal(t, ShapeThirteenOrphans, parts[0].Shape)
			assert.Equal(t, tt.wait, parts[0].Wait)
			assert.Equal(t, -1, parts[0].WinningGroup)
			assert.Len(t, parts[0].Tiles(), 14)
		})
	}
}

func TestDecompose_CallsComeFirst(t *testing.T) {
	h := mustHand(t, "456m11122z", "1z", false, "ankan:1s", "ankan:7z")
	parts, err := Decompose(h)
	require.NoError(t, err)
	require.Len(t, parts, 1)

	p := parts[0]
	require.Len(t, p.Groups, 5)
	assert.Equal(t, GroupQuad, p.Groups[0].Type)
	assert.Equal(t, CallAnkan, p.Groups[0].Call)
	assert.False(t, p.Groups[0].Open())
	assert.Equal(t, GroupQuad, p.Groups[1].Type)
	assert.Equal(t, GroupPair, p.Groups[4].Type)

	win, ok := p.Winning()
	require.True(t, ok)
	assert.Equal(t, GroupTriplet, win.Type)
	assert.Equal(t, MustParseTile("1z"), win.Tile)
	assert.Equal(t, WaitShanpon, p.Wait)
	assert.Len(t, p.Tiles(), 16)
}

func TestDecompose_NoDecomposition(t *testing.T) {
	h := mustHand(t, "1234567m12345p11z", "1z", true)
	_, err := Decompose(h)
	assert.ErrorIs(t, err, ErrNoDecomposition)
}

func TestDecompose_MalformedHand(t *testing.T) {
	tests := []struct {
		name string
		hand Hand
	}{
		{"no winning tile", Hand{Concealed: MustParseTiles("123456m123p2278s")}},
		{"thirteen tiles", Hand{Concealed: MustParseTiles("123456m123p2278s"), WinningTile: MustParseTile("2s")}},
		{"winning tile not held", Hand{Concealed: MustParseTiles("123456m123p22678s"), WinningTile: MustParseTile("9s")}},
		{"five copies", Hand{Concealed: MustParseTiles("11111m234p567s789s"), WinningTile: MustParseTile("1m")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decompose(tt.hand)
			assert.ErrorIs(t, err, ErrMalformedHand)
		})
	}
}

func TestWaitFor(t *testing.T) {
	seq := func(s string) Group { return Group{Type: GroupSequence, Tile: MustParseTile(s)} }
	tests := []struct {
		name  string
		group Group
		win   string
		want  WaitType
	}{
		{"ryanmen low", seq("2m"), "2m", WaitRyanmen},
		{"ryanmen high", seq("2m"), "4m", WaitRyanmen},
		{"kanchan", seq("2m"), "3m", WaitKanchan},
		{"penchan 12 on 3", seq("1p"), "3p", WaitPenchan},
		{"penchan 89 on 7", seq("7s"), "7s", WaitPenchan},
		{"123 on 1", seq("1p"), "1p", WaitRyanmen},
		{"789 on 9", seq("7s"), "9s", WaitRyanmen},
		{"shanpon", Group{Type: GroupTriplet, Tile: MustParseTile("5z")}, "5z", WaitShanpon},
		{"tanki", Group{Type: GroupPair, Tile: MustParseTile("9m")}, "9m", WaitTanki},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, waitFor(tt.group, MustParseTile(tt.win)))
		})
	}
}
