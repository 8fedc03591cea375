package webserver

import (
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Chain struct {
	deps Deps
}

func NewChain(deps Deps) Chain {
	return Chain{deps: deps}
}

func (h Chain) Height(c *gin.Context) {
	height := h.deps.Clock.Height()
	hash, _ := h.deps.Clock.HashAt(height)
	c.JSON(http.StatusOK, gin.H{
		"height": height,
		"hash":   "0x" + hex.EncodeToString(hash[:]),
	})
}

// Advance moves the external clock forward. Blocks only advance between
// operations; this is the harness's lever for that.
func (h Chain) Advance(c *gin.Context) {
	var req struct {
		Blocks uint64 `json:"blocks" binding:"required,min=1,max=100000"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	height := h.deps.Clock.Advance(req.Blocks)
	c.JSON(http.StatusOK, gin.H{"height": height})
}
