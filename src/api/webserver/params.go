package webserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/robi-dao/governor/src/governance"
)

type Params struct {
	deps      Deps
	authority string
}

func NewParams(deps Deps, authority string) Params {
	return Params{deps: deps, authority: authority}
}

func (h Params) Get(c *gin.Context) {
	p := h.deps.Engine.Params()
	c.JSON(http.StatusOK, gin.H{
		"fee":                p.Fee,
		"maxTitleSize":       p.MaxTitleLen,
		"maxForumLinkSize":   p.MaxForumLinkLen,
		"maxDescriptionSize": p.MaxDescriptionLen,
		"votingPeriod":       p.VotingPeriod,
		"authority":          h.authority,
	})
}

func (h Params) SetVotingPeriod(c *gin.Context) {
	var req struct {
		VotingPeriod *uint64 `json:"votingPeriod" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	caller := c.GetString("addr")
	if err := h.deps.Engine.UpdateVotingPeriod(caller, *req.VotingPeriod); err != nil {
		if errors.Is(err, governance.ErrUnauthorized) {
			c.JSON(http.StatusForbidden, gin.H{"err": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}

	log.Printf("Voting period changed to %d by %s", *req.VotingPeriod, caller)
	c.Status(http.StatusNoContent)
}
