package mahjong

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCompleteHand(t *testing.T) {
	assert.True(t, IsCompleteHand(MustParseTiles("123456m123p22678s"), 0))
	assert.True(t, IsCompleteHand(MustParseTiles("1133m5577p99s1122z"), 0))
	assert.True(t, IsCompleteHand(MustParseTiles("19m19p19s12345677z"), 0))
	assert.True(t, IsCompleteHand(MustParseTiles("456m11122z"), 2))
	assert.False(t, IsCompleteHand(MustParseTiles("1234567m12345p11z"), 0))
	assert.False(t, IsCompleteHand(MustParseTiles("123456m"), 0))
}

func TestWaits(t *testing.T) {
	waits := Waits(MustParseTiles("123456m123p2278s"), nil)
	assert.Equal(t, MustParseTiles("69s"), waits)

	kokushi := Waits(MustParseTiles("19m19p19s1234567z"), nil)
	assert.Len(t, kokushi, 13)

	// All four 3m sit in the kan, so the 12m edge has nothing left to wait on.
	kan, err := ParseCall("ankan:3m")
	require.NoError(t, err)
	assert.Empty(t, Waits(MustParseTiles("12m456p789s11z"), []Call{kan}))
}
