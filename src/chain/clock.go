package chain

import (
	"encoding/binary"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// Clock is the monotonic block height the governance engine is driven by.
// Each advance extends a blake2b hash chain so every height has a stable
// pseudo block hash. The engine never reads the clock itself; handlers pass
// the height into every clock-sensitive operation.
type Clock struct {
	mu     sync.RWMutex
	height uint64
	hashes [][32]byte
}

func NewClock() *Clock {
	genesis := blake2b.Sum256([]byte("genesis"))
	return &Clock{hashes: [][32]byte{genesis}}
}

// Height returns the current block height.
func (c *Clock) Height() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.height
}

// Advance moves the clock forward n blocks and returns the new height.
func (c *Clock) Advance(n uint64) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := uint64(0); i < n; i++ {
		c.height++
		var buf [40]byte
		copy(buf[:32], c.hashes[len(c.hashes)-1][:])
		binary.BigEndian.PutUint64(buf[32:], c.height)
		c.hashes = append(c.hashes, blake2b.Sum256(buf[:]))
	}
	return c.height
}

// HashAt returns the block hash at height h and whether h has been reached.
func (c *Clock) HashAt(h uint64) ([32]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if h >= uint64(len(c.hashes)) {
		return [32]byte{}, false
	}
	return c.hashes[h], true
}
