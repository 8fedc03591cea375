package data

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	noncePrefix = "nonce:"
	nonceTTL    = 5 * time.Minute

	// nonceConfirmed marks an air-gap challenge whose remark has been seen.
	nonceConfirmed = "CONFIRMED"

	// StreamVotes carries one entry per successful vote cast: the resulting
	// status and weight of that voter, not the aggregate tally.
	StreamVotes = "governor.votes"
)

func MustRedis(url string) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	return redis.NewClient(opt)
}

// NonceStore keeps auth challenges in redis. Reads go through GETDEL so a
// nonce can be consumed exactly once.
type NonceStore struct {
	rdb *redis.Client
}

func NewNonceStore(rdb *redis.Client) *NonceStore {
	return &NonceStore{rdb: rdb}
}

func (s *NonceStore) SetNonce(ctx context.Context, addr, nonce string) error {
	return s.rdb.Set(ctx, noncePrefix+addr, nonce, nonceTTL).Err()
}

func (s *NonceStore) GetAndDelNonce(ctx context.Context, addr string) (string, error) {
	return s.rdb.GetDel(ctx, noncePrefix+addr).Result()
}

func (s *NonceStore) ConfirmNonce(ctx context.Context, addr string) error {
	return s.rdb.Set(ctx, noncePrefix+addr, nonceConfirmed, nonceTTL).Err()
}

func PublishVoteUpdate(ctx context.Context, rdb *redis.Client, payload map[string]interface{}) error {
	_, err := rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: StreamVotes,
		Values: payload,
	}).Result()
	return err
}
