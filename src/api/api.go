package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"github.com/robi-dao/governor/src/api/config"
	"github.com/robi-dao/governor/src/api/data"
	"github.com/robi-dao/governor/src/api/types"
	"github.com/robi-dao/governor/src/api/webserver"
	"github.com/robi-dao/governor/src/chain"
	"github.com/robi-dao/governor/src/governance"
	"github.com/robi-dao/governor/src/notify"
	"github.com/robi-dao/governor/src/token"
)

var allModels = []interface{}{
	&types.Setting{}, &types.Proposal{}, &types.Vote{}, &types.Checkpoint{},
}

func migrate(db *gorm.DB) {
	err := db.AutoMigrate(allModels...)

	if err == nil {
		return
	}

	log.Printf("auto-migrate failed (%v) - dropping & recreating schema", err)
	_ = db.Migrator().DropTable("checkpoints", "votes", "proposals", "settings")
	if err := db.AutoMigrate(allModels...); err != nil {
		log.Fatalf("migrate after drop: %v", err)
	}
}

func main() {
	mysqlDSN := os.Getenv("MYSQL_DSN")
	if mysqlDSN == "" {
		mysqlDSN = "governor:governor@tcp(127.0.0.1:3306)/governor"
	}

	db := data.MustMySQL(mysqlDSN)
	migrate(db)

	cfg := config.Load(db)
	rdb := data.MustRedis(cfg.RedisURL)

	clock := chain.NewClock()
	params := governance.DefaultParams()
	params.Fee = cfg.Fee
	params.VotingPeriod = cfg.VotingPeriod

	engine := governance.NewEngine(params, cfg.AuthorityAddr, nil, data.NewVotePublisher(rdb))
	tokens := token.NewSystem(engine.Ledger())
	tokens.SetBalance(cfg.AuthorityAddr, cfg.TokenSupply, clock.Height())

	archive := data.NewArchive(db)
	archive.SaveCheckpoints(cfg.AuthorityAddr, tokens.Checkpoints(cfg.AuthorityAddr))

	ctx, cancel := context.WithCancel(context.Background())

	if cfg.DiscordToken != "" && cfg.DiscordChannelID != "" {
		notifier, err := notify.New(cfg.DiscordToken, cfg.DiscordChannelID, rdb)
		if err != nil {
			log.Printf("Failed to create Discord notifier: %v", err)
		} else {
			go notifier.Run(ctx)
		}
	}

	router := webserver.New(cfg, webserver.Deps{
		Engine:  engine,
		Tokens:  tokens,
		Clock:   clock,
		Archive: archive,
		RDB:     rdb,
	})

	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http: %v", err)
		}
	}()
	log.Printf("Governor API listening on %s", cfg.Port)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	cancel()

	shutCtx, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()
	_ = httpSrv.Shutdown(shutCtx)
}
