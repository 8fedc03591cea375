package governance

import "sync"

type voteKey struct {
	proposal uint64
	voter    string
}

// Engine is the authoritative governance state: proposal store, vote
// tallies, checkpoint ledger and params behind one lock. Every operation
// runs to completion under the lock and either commits fully or leaves no
// trace; block height is always passed in by the caller, never read from
// the environment.
type Engine struct {
	mu        sync.RWMutex
	params    Params
	authority string
	ledger    *Ledger
	proposals []Proposal
	votes     map[voteKey]Vote
	publisher Publisher
}

// NewEngine creates an engine. authority is the identity allowed to change
// governance params; publisher may be nil.
func NewEngine(params Params, authority string, ledger *Ledger, publisher Publisher) *Engine {
	if ledger == nil {
		ledger = NewLedger()
	}
	return &Engine{
		params:    params,
		authority: authority,
		ledger:    ledger,
		votes:     make(map[voteKey]Vote),
		publisher: publisher,
	}
}

// Ledger exposes the checkpoint ledger so the token system can record
// balance changes into it.
func (e *Engine) Ledger() *Ledger { return e.ledger }

// CreateProposal validates fields and fee, then appends a new ACTIVE
// proposal and returns its dense id. Nothing is stored on any validation
// failure.
func (e *Engine) CreateProposal(creator, title, forumLink, description string, paid, height uint64) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.params.validateFields(title, forumLink, description); err != nil {
		return 0, err
	}
	if err := e.params.chargeFee(paid); err != nil {
		return 0, err
	}

	id := uint64(len(e.proposals))
	e.proposals = append(e.proposals, Proposal{
		ID:          id,
		Title:       title,
		ForumLink:   forumLink,
		Description: description,
		Creator:     creator,
		CreatedAt:   height,
		VoteEnd:     height + e.params.VotingPeriod,
		Status:      StatusActive,
	})
	return id, nil
}

// GetProposal returns a copy of the proposal with its status projected as
// of height.
func (e *Engine) GetProposal(id, height uint64) (Proposal, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if id >= uint64(len(e.proposals)) {
		return Proposal{}, ErrNotFound
	}
	p := e.proposals[id]
	p.Status = resolveStatus(p, height)
	return p, nil
}

// Proposals returns all proposals in creation order, statuses projected as
// of height.
func (e *Engine) Proposals(height uint64) []Proposal {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]Proposal, len(e.proposals))
	copy(out, e.proposals)
	for i := range out {
		out[i].Status = resolveStatus(out[i], height)
	}
	return out
}

// Count returns the number of proposals ever created.
func (e *Engine) Count() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return uint64(len(e.proposals))
}

// CastVote records or changes voter's vote on a proposal. Weight is pinned
// to the voter's checkpointed balance at the proposal's creation height, so
// re-casting the same choice is idempotent. Changing the choice moves the
// weight between the tally buckets atomically. The update signal goes out
// after the lock is released; a slow publisher cannot stall other
// operations.
func (e *Engine) CastVote(id uint64, voter string, status VoteStatus, height uint64) error {
	e.mu.Lock()
	update, err := e.applyVote(id, voter, status, height)
	e.mu.Unlock()

	if err != nil {
		return err
	}
	if e.publisher != nil {
		e.publisher.PublishVoteUpdate(update)
	}
	return nil
}

// applyVote does the tally mutation. Caller holds e.mu.
func (e *Engine) applyVote(id uint64, voter string, status VoteStatus, height uint64) (VoteUpdate, error) {
	if id >= uint64(len(e.proposals)) {
		return VoteUpdate{}, ErrNotFound
	}
	p := &e.proposals[id]
	if resolveStatus(*p, height) != StatusActive {
		return VoteUpdate{}, ErrProposalNotActive
	}

	weight := e.ledger.WeightAt(voter, p.CreatedAt)

	key := voteKey{proposal: id, voter: voter}
	if prev, ok := e.votes[key]; ok {
		switch prev.Status {
		case VoteApprove:
			p.ForVotes -= prev.Weight
		case VoteReject:
			p.AgainstVotes -= prev.Weight
		}
	}
	switch status {
	case VoteApprove:
		p.ForVotes += weight
	case VoteReject:
		p.AgainstVotes += weight
	}
	e.votes[key] = Vote{Status: status, Weight: weight}

	return VoteUpdate{ProposalID: id, Voter: voter, Status: status, Weight: weight}, nil
}

// GetVote returns the voter's current vote and whether one exists. A
// zero-weight APPROVE that was actually cast still reports true; callers
// rendering the contract-style sentinel collapse the absent case to
// {APPROVE, 0} themselves.
func (e *Engine) GetVote(id uint64, voter string) (Vote, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	v, ok := e.votes[voteKey{proposal: id, voter: voter}]
	return v, ok
}

// UpdateVotingPeriod replaces the voting period for future proposals.
// Existing proposals keep the deadline snapshotted at creation.
func (e *Engine) UpdateVotingPeriod(caller string, period uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if caller != e.authority {
		return ErrUnauthorized
	}
	e.params.VotingPeriod = period
	return nil
}

// Params returns the current governance configuration.
func (e *Engine) Params() Params {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.params
}
