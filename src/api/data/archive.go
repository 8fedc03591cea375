package data

import (
	"log"
	"time"

	"github.com/robi-dao/governor/src/api/types"
	"github.com/robi-dao/governor/src/governance"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Archive mirrors engine state into MySQL after each successful mutation.
// The engine stays authoritative; these rows are the durable read path for
// the UI and reporting. Archive failures are logged, never propagated —
// they must not reject an already-committed operation.
type Archive struct {
	db *gorm.DB
}

func NewArchive(db *gorm.DB) *Archive {
	return &Archive{db: db}
}

func (a *Archive) SaveProposal(p governance.Proposal) {
	row := types.Proposal{
		ID:           p.ID,
		Title:        p.Title,
		ForumLink:    p.ForumLink,
		Description:  p.Description,
		Creator:      p.Creator,
		CreatedAt:    p.CreatedAt,
		VoteEnd:      p.VoteEnd,
		ForVotes:     p.ForVotes,
		AgainstVotes: p.AgainstVotes,
		Status:       p.Status.String(),
		UpdatedAt:    time.Now(),
	}
	if err := a.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
		log.Printf("archive: proposal %d: %v", p.ID, err)
	}
}

func (a *Archive) SaveProposals(ps []governance.Proposal) {
	for _, p := range ps {
		a.SaveProposal(p)
	}
}

func (a *Archive) SaveVote(proposalID uint64, voter string, v governance.Vote) {
	row := types.Vote{
		ProposalID: proposalID,
		Voter:      voter,
		Status:     v.Status.String(),
		Weight:     v.Weight,
		UpdatedAt:  time.Now(),
	}
	if err := a.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
		log.Printf("archive: vote %d/%s: %v", proposalID, voter, err)
	}
}

func (a *Archive) SaveCheckpoints(addr string, cps []governance.Checkpoint) {
	for _, cp := range cps {
		row := types.Checkpoint{Address: addr, Height: cp.Height, Balance: cp.Balance}
		err := a.db.Where("address = ? AND height = ?", addr, cp.Height).
			Assign(types.Checkpoint{Balance: cp.Balance}).
			FirstOrCreate(&row).Error
		if err != nil {
			log.Printf("archive: checkpoint %s@%d: %v", addr, cp.Height, err)
		}
	}
}
