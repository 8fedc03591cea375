package webserver

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/robi-dao/governor/src/governance"
)

type Lifecycle struct {
	deps Deps
}

func NewLifecycle(deps Deps) Lifecycle {
	return Lifecycle{deps: deps}
}

// Update commits resolved statuses for every proposal past its deadline.
func (h Lifecycle) Update(c *gin.Context) {
	height := h.deps.Clock.Height()
	h.deps.Engine.UpdateProposalStates(height)
	h.deps.Archive.SaveProposals(h.deps.Engine.Proposals(height))
	c.Status(http.StatusNoContent)
}

func (h Lifecycle) Execute(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": "bad proposal id"})
		return
	}

	height := h.deps.Clock.Height()
	if err := h.deps.Engine.ConfirmProposalExecution(id, height); err != nil {
		switch {
		case errors.Is(err, governance.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"err": "proposal not found"})
		case errors.Is(err, governance.ErrVotingStillOpen),
			errors.Is(err, governance.ErrProposalNotPassed),
			errors.Is(err, governance.ErrAlreadyExecuted):
			c.JSON(http.StatusConflict, gin.H{"err": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		}
		return
	}

	if p, err := h.deps.Engine.GetProposal(id, height); err == nil {
		h.deps.Archive.SaveProposal(p)
	}
	log.Printf("Proposal %d executed at height %d", id, height)
	c.Status(http.StatusNoContent)
}
