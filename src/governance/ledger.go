package governance

import (
	"sort"
	"sync"
)

// Ledger keeps an append-only checkpoint history per account. Voting weight
// is resolved against it at a proposal's creation height so that acquiring
// tokens after a proposal opens cannot inflate weight. It carries its own
// lock because both the engine and the token system write through it.
type Ledger struct {
	mu          sync.RWMutex
	checkpoints map[string][]Checkpoint
}

func NewLedger() *Ledger {
	return &Ledger{checkpoints: make(map[string][]Checkpoint)}
}

// RecordBalance appends a checkpoint for addr. A second change within the
// same height updates the tail in place; an unchanged balance records
// nothing.
func (l *Ledger) RecordBalance(addr string, height, balance uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	seq := l.checkpoints[addr]
	if n := len(seq); n > 0 {
		tail := &seq[n-1]
		if tail.Height == height {
			tail.Balance = balance
			return
		}
		if tail.Balance == balance {
			return
		}
	}
	l.checkpoints[addr] = append(seq, Checkpoint{Height: height, Balance: balance})
}

// WeightAt returns the balance of the last checkpoint at or before height,
// or zero if the account has no checkpoint that early.
func (l *Ledger) WeightAt(addr string, height uint64) uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	seq := l.checkpoints[addr]
	// first index with Height > height
	i := sort.Search(len(seq), func(i int) bool { return seq[i].Height > height })
	if i == 0 {
		return 0
	}
	return seq[i-1].Balance
}

// Checkpoints returns a copy of the account's checkpoint sequence.
func (l *Ledger) Checkpoints(addr string) []Checkpoint {
	l.mu.RLock()
	defer l.mu.RUnlock()

	seq := l.checkpoints[addr]
	out := make([]Checkpoint, len(seq))
	copy(out, seq)
	return out
}
