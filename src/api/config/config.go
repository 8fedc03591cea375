package config

import (
	"log"
	"os"
	"strconv"

	"gorm.io/gorm"

	"github.com/robi-dao/governor/src/api/data"
)

type Config struct {
	RedisURL         string
	JWTSecret        string
	Port             string
	AuthorityAddr    string
	DiscordToken     string
	DiscordChannelID string
	Fee              uint64
	VotingPeriod     uint64
	TokenSupply      uint64
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		if def == "" {
			log.Fatalf("missing env %s", key)
		}
		return def
	}
	return v
}

// setting reads a value from the settings table with an environment
// fallback, so operators can manage governance parameters in the database
// without redeploying.
func setting(name, envKey string) string {
	if v := data.GetSetting(name); v != "" {
		return v
	}
	return os.Getenv(envKey)
}

func settingUint(name, envKey string, def uint64) uint64 {
	v := setting(name, envKey)
	if v == "" {
		return def
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		log.Fatalf("bad %s: %v", name, err)
	}
	return n
}

// Load reads configuration from the settings table with env fallbacks.
// LoadSettings must not have failed fatally before this; a missing table
// simply leaves every value to the environment.
func Load(db *gorm.DB) Config {
	if err := data.LoadSettings(db); err != nil {
		log.Printf("Failed to load settings: %v", err)
	}

	authority := setting("authority_addr", "AUTHORITY_ADDR")
	if authority == "" {
		log.Fatal("AUTHORITY_ADDR not set in database or environment")
	}

	return Config{
		RedisURL:         getenv("REDIS_URL", "redis://127.0.0.1:6379/0"),
		JWTSecret:        getenv("JWT_SECRET", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"),
		Port:             getenv("PORT", "8080"),
		AuthorityAddr:    authority,
		DiscordToken:     setting("discord_token", "DISCORD_TOKEN"),
		DiscordChannelID: setting("discord_channel_id", "DISCORD_CHANNEL_ID"),
		Fee:              settingUint("gov_fee", "GOV_FEE", 1),
		VotingPeriod:     settingUint("gov_voting_period", "GOV_VOTING_PERIOD", 10),
		TokenSupply:      settingUint("token_supply", "TOKEN_SUPPLY", 10000),
	}
}
