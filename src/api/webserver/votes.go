package webserver

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/robi-dao/governor/src/governance"
)

type Votes struct {
	deps Deps
}

func NewVotes(deps Deps) Votes {
	return Votes{deps: deps}
}

func (v Votes) Cast(c *gin.Context) {
	var req struct {
		ProposalID *uint64 `json:"proposalId" binding:"required"`
		Choice     string  `json:"choice" binding:"required,oneof=approve reject"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	status := governance.VoteApprove
	if req.Choice == "reject" {
		status = governance.VoteReject
	}

	voter := c.GetString("addr")
	height := v.deps.Clock.Height()

	if err := v.deps.Engine.CastVote(*req.ProposalID, voter, status, height); err != nil {
		switch {
		case errors.Is(err, governance.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"err": "proposal not found"})
		case errors.Is(err, governance.ErrProposalNotActive):
			c.JSON(http.StatusConflict, gin.H{"err": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		}
		return
	}

	vote, _ := v.deps.Engine.GetVote(*req.ProposalID, voter)
	v.deps.Archive.SaveVote(*req.ProposalID, voter, vote)
	if p, err := v.deps.Engine.GetProposal(*req.ProposalID, height); err == nil {
		v.deps.Archive.SaveProposal(p)
	}
	log.Printf("Vote cast on proposal %d by %s: %s (weight %d)", *req.ProposalID, voter, vote.Status, vote.Weight)

	c.Status(http.StatusCreated)
}

// Get returns the voter's vote on a proposal. When no vote exists it renders
// the contract-style sentinel {APPROVE, 0} with present=false.
func (v Votes) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": "bad proposal id"})
		return
	}
	addr := c.Param("addr")

	vote, ok := v.deps.Engine.GetVote(id, addr)
	c.JSON(http.StatusOK, gin.H{
		"status":  vote.Status.String(),
		"weight":  vote.Weight,
		"present": ok,
	})
}
