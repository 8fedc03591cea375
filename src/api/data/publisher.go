package data

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/robi-dao/governor/src/governance"
)

// VotePublisher forwards engine vote updates onto the redis stream. Publish
// failures are logged and swallowed: the signal is for observers, losing one
// must not fail the vote.
type VotePublisher struct {
	rdb *redis.Client
}

func NewVotePublisher(rdb *redis.Client) *VotePublisher {
	return &VotePublisher{rdb: rdb}
}

func (p *VotePublisher) PublishVoteUpdate(u governance.VoteUpdate) {
	err := PublishVoteUpdate(context.Background(), p.rdb, map[string]interface{}{
		"proposalId": u.ProposalID,
		"voter":      u.Voter,
		"status":     u.Status.String(),
		"weight":     u.Weight,
	})
	if err != nil {
		log.Printf("Failed to publish vote update for proposal %d: %v", u.ProposalID, err)
	}
}
