package chain_test

import (
	"testing"

	"github.com/robi-dao/governor/src/chain"
	"github.com/stretchr/testify/assert"
)

func TestClockAdvance(t *testing.T) {
	clock := chain.NewClock()
	assert.Equal(t, uint64(0), clock.Height())

	assert.Equal(t, uint64(1), clock.Advance(1))
	assert.Equal(t, uint64(11), clock.Advance(10))
	assert.Equal(t, uint64(11), clock.Height())
}

func TestClockHashChain(t *testing.T) {
	clock := chain.NewClock()
	clock.Advance(3)

	genesis, ok := clock.HashAt(0)
	assert.True(t, ok)
	assert.NotEqual(t, [32]byte{}, genesis)

	h1, ok := clock.HashAt(1)
	assert.True(t, ok)
	h2, ok := clock.HashAt(2)
	assert.True(t, ok)
	assert.NotEqual(t, h1, h2)

	_, ok = clock.HashAt(4)
	assert.False(t, ok)

	// Same heights on a fresh clock give the same hashes.
	other := chain.NewClock()
	other.Advance(3)
	oh1, _ := other.HashAt(1)
	assert.Equal(t, h1, oh1)
}
