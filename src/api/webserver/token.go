package webserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Token struct {
	deps Deps
}

func NewToken(deps Deps) Token {
	return Token{deps: deps}
}

func (h Token) Transfer(c *gin.Context) {
	var req struct {
		To     string  `json:"to" binding:"required,min=32,max=128"`
		Amount *uint64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	from := c.GetString("addr")
	height := h.deps.Clock.Height()

	if err := h.deps.Tokens.Transfer(from, req.To, *req.Amount, height); err != nil {
		c.JSON(http.StatusConflict, gin.H{"err": err.Error()})
		return
	}

	h.deps.Archive.SaveCheckpoints(from, h.deps.Tokens.Checkpoints(from))
	h.deps.Archive.SaveCheckpoints(req.To, h.deps.Tokens.Checkpoints(req.To))
	log.Printf("Transferred %d from %s to %s at height %d", *req.Amount, from, req.To, height)

	c.Status(http.StatusNoContent)
}

func (h Token) Balance(c *gin.Context) {
	addr := c.Param("addr")
	c.JSON(http.StatusOK, gin.H{"balance": h.deps.Tokens.Balance(addr)})
}

func (h Token) Checkpoints(c *gin.Context) {
	addr := c.Param("addr")
	cps := h.deps.Tokens.Checkpoints(addr)

	type view struct {
		Height  uint64 `json:"height"`
		Balance uint64 `json:"balance"`
	}
	out := make([]view, 0, len(cps))
	for _, cp := range cps {
		out = append(out, view{Height: cp.Height, Balance: cp.Balance})
	}
	c.JSON(http.StatusOK, out)
}
