package webserver

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/robi-dao/governor/src/api/config"
	"github.com/robi-dao/governor/src/api/data"
)

func attachRoutes(r *gin.Engine, cfg config.Config, deps Deps) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	secret := []byte(cfg.JWTSecret)
	authH := NewAuth(data.NewNonceStore(deps.RDB), secret)
	propH := NewProposals(deps)
	voteH := NewVotes(deps)
	lifeH := NewLifecycle(deps)
	paramH := NewParams(deps, cfg.AuthorityAddr)
	tokenH := NewToken(deps)
	chainH := NewChain(deps)

	limiter := NewRateLimiter(30, time.Minute)

	v1 := r.Group("/v1")
	{
		v1.POST("/auth/challenge", authH.Challenge)
		v1.POST("/auth/remark", authH.Remark)
		v1.POST("/auth/verify", authH.Verify)

		secured := v1.Group("")
		secured.Use(JWTMiddleware(secret), RateLimitMiddleware(limiter))

		secured.POST("/proposals", propH.Create)
		secured.GET("/proposals", propH.List)
		secured.GET("/proposals/count", propH.Count)
		secured.GET("/proposals/:id", propH.Get)
		secured.POST("/proposals/:id/execute", lifeH.Execute)

		secured.POST("/votes", voteH.Cast)
		secured.GET("/votes/:id/:addr", voteH.Get)

		secured.POST("/lifecycle/update", lifeH.Update)

		secured.GET("/params", paramH.Get)
		secured.POST("/params/voting-period", paramH.SetVotingPeriod)

		secured.POST("/token/transfer", tokenH.Transfer)
		secured.GET("/token/balance/:addr", tokenH.Balance)
		secured.GET("/token/checkpoints/:addr", tokenH.Checkpoints)

		secured.GET("/chain/height", chainH.Height)
		secured.POST("/chain/advance", chainH.Advance)
	}
}
