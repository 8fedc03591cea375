package webserver

import (
	"errors"
	"html"
	"log"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"

	"github.com/robi-dao/governor/src/governance"
)

type Proposals struct {
	deps      Deps
	sanitizer *bluemonday.Policy
}

func NewProposals(deps Deps) Proposals {
	// Strict sanitizer with basic markdown formatting for descriptions
	sanitizer := bluemonday.StrictPolicy()
	sanitizer.AllowElements("p", "br", "strong", "em", "code", "pre", "blockquote")
	sanitizer.AllowElements("ul", "ol", "li")
	return Proposals{deps: deps, sanitizer: sanitizer}
}

type proposalView struct {
	ID           uint64 `json:"id"`
	Title        string `json:"title"`
	ForumLink    string `json:"forumLink"`
	Description  string `json:"description"`
	Creator      string `json:"creator"`
	CreatedAt    uint64 `json:"createdAt"`
	VoteEnd      uint64 `json:"voteEnd"`
	ForVotes     uint64 `json:"forVotes"`
	AgainstVotes uint64 `json:"againstVotes"`
	Status       string `json:"status"`
}

func toProposalView(p governance.Proposal) proposalView {
	return proposalView{
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
	}
}

func (h Proposals) Create(c *gin.Context) {
	var req struct {
		Title       string `json:"title" binding:"required"`
		ForumLink   string `json:"forumLink" binding:"required"`
		Description string `json:"description" binding:"required"`
		PaidAmount  uint64 `json:"paidAmount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	req.Title = html.EscapeString(req.Title)
	req.Description = h.sanitizer.Sanitize(req.Description)
	if !utf8.ValidString(req.Title) || !utf8.ValidString(req.ForumLink) || !utf8.ValidString(req.Description) {
		c.JSON(http.StatusBadRequest, gin.H{"err": "invalid characters in input"})
		return
	}

	creator := c.GetString("addr")
	height := h.deps.Clock.Height()

	id, err := h.deps.Engine.CreateProposal(creator, req.Title, req.ForumLink, req.Description, req.PaidAmount, height)
	if err != nil {
		switch {
		case errors.Is(err, governance.ErrInsufficientFee):
			c.JSON(http.StatusPaymentRequired, gin.H{"err": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		}
		return
	}

	p, _ := h.deps.Engine.GetProposal(id, height)
	h.deps.Archive.SaveProposal(p)
	log.Printf("Proposal %d created by %s at height %d", id, creator, height)

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h Proposals) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": "bad proposal id"})
		return
	}

	p, err := h.deps.Engine.GetProposal(id, h.deps.Clock.Height())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"err": "proposal not found"})
		return
	}
	c.JSON(http.StatusOK, toProposalView(p))
}

func (h Proposals) List(c *gin.Context) {
	ps := h.deps.Engine.Proposals(h.deps.Clock.Height())
	out := make([]proposalView, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProposalView(p))
	}
	c.JSON(http.StatusOK, out)
}

func (h Proposals) Count(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"count": h.deps.Engine.Count()})
}
