package governance

// ProposalStatus follows the numbering the frontend renders.
type ProposalStatus uint8

const (
	StatusActive ProposalStatus = iota
	StatusDefeated
	StatusPassed
	StatusExecuted
)

func (s ProposalStatus) String() string {
	switch s {
	case StatusActive:
		return "ACTIVE"
	case StatusDefeated:
		return "DEFEATED"
	case StatusPassed:
		return "PASSED"
	case StatusExecuted:
		return "EXECUTED"
	}
	return "UNKNOWN"
}

// VoteStatus is the voter's choice.
type VoteStatus uint8

const (
	VoteApprove VoteStatus = iota
	VoteReject
)

func (s VoteStatus) String() string {
	if s == VoteReject {
		return "REJECT"
	}
	return "APPROVE"
}

// Proposal is a governance item with a bounded voting window. Only the
// tallies and status mutate after creation.
type Proposal struct {
	ID           uint64
	Title        string
	ForumLink    string
	Description  string
	Creator      string
	CreatedAt    uint64 // block height at creation
	VoteEnd      uint64 // CreatedAt + voting period snapshotted at creation
	ForVotes     uint64
	AgainstVotes uint64
	Status       ProposalStatus
}

// Vote is one account's current choice on one proposal. Weight is resolved
// from the checkpoint ledger at the proposal's creation height and never
// changes on re-cast.
type Vote struct {
	Status VoteStatus
	Weight uint64
}

// Checkpoint is a balance snapshot at a block height.
type Checkpoint struct {
	Height  uint64
	Balance uint64
}

// VoteUpdate is emitted once per successful CastVote, carrying the resulting
// vote of that voter, not the aggregate tally.
type VoteUpdate struct {
	ProposalID uint64
	Voter      string
	Status     VoteStatus
	Weight     uint64
}

// Publisher receives vote updates. The HTTP layer plugs in a redis stream
// publisher; tests use a capture implementation.
type Publisher interface {
	PublishVoteUpdate(VoteUpdate)
}
