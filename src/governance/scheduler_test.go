package governance_test

import (
	"testing"

	"github.com/robi-dao/governor/src/governance"
	"github.com/stretchr/testify/assert"
)

func TestStatusProjectionWithoutCommit(t *testing.T) {
	e, _ := newEngine()
	e.Ledger().RecordBalance("voter", 0, 50)
	id := createProposal(t, e, 0)
	assert.NoError(t, e.CastVote(id, "voter", governance.VoteApprove, 1))

	// Past the deadline the read projects PASSED without mutating storage.
	p, _ := e.GetProposal(id, 11)
	assert.Equal(t, governance.StatusPassed, p.Status)

	// Reading at an earlier height still sees ACTIVE.
	p, _ = e.GetProposal(id, 10)
	assert.Equal(t, governance.StatusActive, p.Status)
}

func TestUpdateProposalStatesIdempotent(t *testing.T) {
	e, _ := newEngine()
	e.Ledger().RecordBalance("voter", 0, 50)
	passed := createProposal(t, e, 0)
	defeated := createProposal(t, e, 0)
	open := createProposal(t, e, 5)
	assert.NoError(t, e.CastVote(passed, "voter", governance.VoteApprove, 1))
	assert.NoError(t, e.CastVote(defeated, "voter", governance.VoteReject, 1))

	e.UpdateProposalStates(11)
	first := e.Proposals(11)
	assert.Equal(t, governance.StatusPassed, first[passed].Status)
	assert.Equal(t, governance.StatusDefeated, first[defeated].Status)
	assert.Equal(t, governance.StatusActive, first[open].Status)

	e.UpdateProposalStates(11)
	second := e.Proposals(11)
	assert.Equal(t, first, second)
}

func TestTieResolvesDefeated(t *testing.T) {
	e, _ := newEngine()
	e.Ledger().RecordBalance("alice", 0, 50)
	e.Ledger().RecordBalance("bob", 0, 50)
	id := createProposal(t, e, 0)
	assert.NoError(t, e.CastVote(id, "alice", governance.VoteApprove, 1))
	assert.NoError(t, e.CastVote(id, "bob", governance.VoteReject, 1))

	e.UpdateProposalStates(11)
	p, _ := e.GetProposal(id, 11)
	assert.Equal(t, governance.StatusDefeated, p.Status)
}

func TestProposalPassesAndExecutes(t *testing.T) {
	e, _ := newEngine()
	// fee=1, votingPeriod=10; voter holds 50 before the proposal opens.
	e.Ledger().RecordBalance("voter", 0, 50)

	id, err := e.CreateProposal("creator", "title", "link", "desc", 1, 0)
	assert.NoError(t, err)

	p, _ := e.GetProposal(id, 0)
	assert.Equal(t, uint64(10), p.VoteEnd)
	assert.Equal(t, governance.StatusActive, p.Status)

	assert.NoError(t, e.CastVote(id, "voter", governance.VoteApprove, 1))
	p, _ = e.GetProposal(id, 1)
	assert.Equal(t, uint64(50), p.ForVotes)

	e.UpdateProposalStates(11)
	p, _ = e.GetProposal(id, 11)
	assert.Equal(t, governance.StatusPassed, p.Status)

	assert.NoError(t, e.ConfirmProposalExecution(id, 11))
	p, _ = e.GetProposal(id, 11)
	assert.Equal(t, governance.StatusExecuted, p.Status)
}

func TestDefeatedProposalCannotExecute(t *testing.T) {
	e, _ := newEngine()
	e.Ledger().RecordBalance("voter", 0, 50)
	id := createProposal(t, e, 0)

	assert.NoError(t, e.CastVote(id, "voter", governance.VoteReject, 1))

	e.UpdateProposalStates(11)
	p, _ := e.GetProposal(id, 11)
	assert.Equal(t, governance.StatusDefeated, p.Status)
	assert.Equal(t, uint64(50), p.AgainstVotes)

	err := e.ConfirmProposalExecution(id, 11)
	assert.ErrorIs(t, err, governance.ErrProposalNotPassed)
}

func TestExecuteBeforeDeadline(t *testing.T) {
	e, _ := newEngine()
	e.Ledger().RecordBalance("voter", 0, 50)
	id := createProposal(t, e, 0)
	assert.NoError(t, e.CastVote(id, "voter", governance.VoteApprove, 1))

	// Deadline not reached: fails regardless of tallies.
	err := e.ConfirmProposalExecution(id, 10)
	assert.ErrorIs(t, err, governance.ErrVotingStillOpen)
}

func TestExecuteTwice(t *testing.T) {
	e, _ := newEngine()
	e.Ledger().RecordBalance("voter", 0, 50)
	id := createProposal(t, e, 0)
	assert.NoError(t, e.CastVote(id, "voter", governance.VoteApprove, 1))

	assert.NoError(t, e.ConfirmProposalExecution(id, 11))
	err := e.ConfirmProposalExecution(id, 11)
	assert.ErrorIs(t, err, governance.ErrAlreadyExecuted)
}

func TestExecuteNotFound(t *testing.T) {
	e, _ := newEngine()
	err := e.ConfirmProposalExecution(42, 11)
	assert.ErrorIs(t, err, governance.ErrNotFound)
}

func TestExecuteWithoutPriorCommit(t *testing.T) {
	e, _ := newEngine()
	e.Ledger().RecordBalance("voter", 0, 50)
	id := createProposal(t, e, 0)
	assert.NoError(t, e.CastVote(id, "voter", governance.VoteApprove, 1))

	// Execution resolves the status itself; UpdateProposalStates is not a
	// prerequisite.
	assert.NoError(t, e.ConfirmProposalExecution(id, 11))
	p, _ := e.GetProposal(id, 11)
	assert.Equal(t, governance.StatusExecuted, p.Status)
}
