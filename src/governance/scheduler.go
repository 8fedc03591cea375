package governance

// resolveStatus projects a proposal's logical status as of height without
// touching storage. A stored ACTIVE proposal past its deadline reads as
// PASSED or DEFEATED; a tie is DEFEATED.
func resolveStatus(p Proposal, height uint64) ProposalStatus {
	if p.Status != StatusActive {
		return p.Status
	}
	if height <= p.VoteEnd {
		return StatusActive
	}
	if p.ForVotes > p.AgainstVotes {
		return StatusPassed
	}
	return StatusDefeated
}

// UpdateProposalStates commits the resolved status of every stored-ACTIVE
// proposal whose deadline has passed. Calling it again without a height
// advance changes nothing.
func (e *Engine) UpdateProposalStates(height uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.proposals {
		p := &e.proposals[i]
		if p.Status != StatusActive || p.VoteEnd >= height {
			continue
		}
		if p.ForVotes > p.AgainstVotes {
			p.Status = StatusPassed
		} else {
			p.Status = StatusDefeated
		}
	}
}

// ConfirmProposalExecution moves a passed proposal to EXECUTED. It fails
// while voting is open, when the resolved status is not PASSED, and on a
// second execution.
func (e *Engine) ConfirmProposalExecution(id, height uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if id >= uint64(len(e.proposals)) {
		return ErrNotFound
	}
	p := &e.proposals[id]
	if p.Status == StatusExecuted {
		return ErrAlreadyExecuted
	}
	if height <= p.VoteEnd {
		return ErrVotingStillOpen
	}
	if resolveStatus(*p, height) != StatusPassed {
		return ErrProposalNotPassed
	}
	p.Status = StatusExecuted
	return nil
}
