package token

import (
	"fmt"
	"sync"

	"github.com/robi-dao/governor/src/governance"
)

// System tracks token balances and records every balance change as a
// checkpoint in the governance ledger, keyed by block height.
type System struct {
	mu       sync.RWMutex
	balances map[string]uint64
	ledger   *governance.Ledger
}

func NewSystem(ledger *governance.Ledger) *System {
	return &System{
		balances: make(map[string]uint64),
		ledger:   ledger,
	}
}

// Balance returns the live balance of an address.
func (s *System) Balance(addr string) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.balances[addr]
}

// SetBalance assigns a balance directly. Used to mint the initial supply at
// deployment.
func (s *System) SetBalance(addr string, amount, height uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.balances[addr] = amount
	s.ledger.RecordBalance(addr, height, amount)
}

// Transfer moves tokens between addresses and checkpoints both sides.
func (s *System) Transfer(from, to string, amount, height uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.balances[from] < amount {
		return fmt.Errorf("insufficient balance: %s has %d, needs %d", from, s.balances[from], amount)
	}

	s.balances[from] -= amount
	s.balances[to] += amount
	s.ledger.RecordBalance(from, height, s.balances[from])
	s.ledger.RecordBalance(to, height, s.balances[to])
	return nil
}

// Checkpoints returns the checkpoint history of an address.
func (s *System) Checkpoints(addr string) []governance.Checkpoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.Checkpoints(addr)
}
