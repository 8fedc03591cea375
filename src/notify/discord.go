package notify

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"

	"github.com/robi-dao/governor/src/api/data"
)

// Notifier tails the vote-update stream and posts each entry to a Discord
// channel. It is an observer only; losing it never affects the engine.
type Notifier struct {
	session   *discordgo.Session
	channelID string
	rdb       *redis.Client
}

func New(token, channelID string, rdb *redis.Client) (*Notifier, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	return &Notifier{session: session, channelID: channelID, rdb: rdb}, nil
}

func (n *Notifier) Run(ctx context.Context) {
	if err := n.session.Open(); err != nil {
		log.Printf("Failed to open Discord session: %v", err)
		return
	}
	defer n.session.Close()
	log.Printf("Discord notifier connected, posting to channel %s", n.channelID)

	lastID := "$"
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		streams, err := n.rdb.XRead(ctx, &redis.XReadArgs{
			Streams: []string{data.StreamVotes, lastID},
			Block:   5 * time.Second,
		}).Result()
		if err != nil {
			if err == redis.Nil || ctx.Err() != nil {
				continue
			}
			log.Printf("Failed to read vote stream: %v", err)
			time.Sleep(time.Second)
			continue
		}

		for _, stream := range streams {
			for _, msg := range stream.Messages {
				lastID = msg.ID
				n.post(msg.Values)
			}
		}
	}
}

func (n *Notifier) post(values map[string]interface{}) {
	text := fmt.Sprintf("Vote update: proposal %v, voter %v cast %v with weight %v",
		values["proposalId"], values["voter"], values["status"], values["weight"])
	if _, err := n.session.ChannelMessageSend(n.channelID, text); err != nil {
		log.Printf("Failed to post vote update: %v", err)
	}
}
