package webserver

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/robi-dao/governor/src/api/config"
	"github.com/robi-dao/governor/src/api/data"
	"github.com/robi-dao/governor/src/chain"
	"github.com/robi-dao/governor/src/governance"
	"github.com/robi-dao/governor/src/token"
)

// Deps bundles everything the handlers need: the authoritative engine, the
// token system feeding its ledger, the external clock and the mirrors.
type Deps struct {
	Engine  *governance.Engine
	Tokens  *token.System
	Clock   *chain.Clock
	Archive *data.Archive
	RDB     *redis.Client
}

func New(cfg config.Config, deps Deps) *gin.Engine {
	g := gin.New()
	g.Use(gin.Logger(), gin.Recovery())
	attachRoutes(g, cfg, deps)
	return g
}
