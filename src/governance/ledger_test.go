package governance_test

import (
	"testing"

	"github.com/robi-dao/governor/src/governance"
	"github.com/stretchr/testify/assert"
)

func TestLedgerWeightAt(t *testing.T) {
	ledger := governance.NewLedger()

	assert.Equal(t, uint64(0), ledger.WeightAt("alice", 0))
	assert.Equal(t, uint64(0), ledger.WeightAt("alice", 100))

	ledger.RecordBalance("alice", 5, 100)
	ledger.RecordBalance("alice", 10, 150)
	ledger.RecordBalance("alice", 20, 75)

	assert.Equal(t, uint64(0), ledger.WeightAt("alice", 4))
	assert.Equal(t, uint64(100), ledger.WeightAt("alice", 5))
	assert.Equal(t, uint64(100), ledger.WeightAt("alice", 9))
	assert.Equal(t, uint64(150), ledger.WeightAt("alice", 10))
	assert.Equal(t, uint64(150), ledger.WeightAt("alice", 19))
	assert.Equal(t, uint64(75), ledger.WeightAt("alice", 20))
	assert.Equal(t, uint64(75), ledger.WeightAt("alice", 1000))
}

func TestLedgerSameHeightCoalescing(t *testing.T) {
	ledger := governance.NewLedger()

	ledger.RecordBalance("bob", 7, 50)
	ledger.RecordBalance("bob", 7, 80)

	cps := ledger.Checkpoints("bob")
	assert.Len(t, cps, 1)
	assert.Equal(t, uint64(80), cps[0].Balance)
	assert.Equal(t, uint64(80), ledger.WeightAt("bob", 7))
}

func TestLedgerUnchangedBalanceNotRecorded(t *testing.T) {
	ledger := governance.NewLedger()

	ledger.RecordBalance("bob", 3, 50)
	ledger.RecordBalance("bob", 9, 50)

	assert.Len(t, ledger.Checkpoints("bob"), 1)
}

func TestLedgerWeightStableBetweenCheckpoints(t *testing.T) {
	ledger := governance.NewLedger()

	ledger.RecordBalance("carol", 10, 40)
	ledger.RecordBalance("carol", 50, 90)

	// No checkpoint between heights 11 and 49: weight must not change.
	for h := uint64(11); h < 50; h += 7 {
		assert.Equal(t, ledger.WeightAt("carol", 11), ledger.WeightAt("carol", h))
	}
}
