package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrPresenceMarkFailed  = errors.New("presence mark failed")
	ErrPresenceCountFailed = errors.New("presence count failed")
)

const (
	PresenceKeyPrefix = "venue:presence" // sorted set of user ids scored by expiry
	PresenceTTL       = 2 * time.Hour
)

// PresenceRepository tracks "people here now" per venue. A checkin scores the
// user with its expiry time; counting drops everything already expired, so a
// user's latest checkin is the only one that matters.
type PresenceRepository struct{}

func (r *PresenceRepository) Mark(ctx context.Context, venueID, userID uint64) error {
	key := fmt.Sprintf("%s:%d", PresenceKeyPrefix, venueID)
	expiry := float64(time.Now().Add(PresenceTTL).Unix())
	pipe := Client.TxPipeline()
	pipe.ZAdd(ctx, key, redis.Z{Score: expiry, Member: strconv.FormatUint(userID, 10)})
	pipe.Expire(ctx, key, PresenceTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return ErrPresenceMarkFailed
	}
	return nil
}

func (r *PresenceRepository) Count(ctx context.Context, venueID uint64) (int64, error) {
	key := fmt.Sprintf("%s:%d", PresenceKeyPrefix, venueID)
	now := strconv.FormatInt(time.Now().Unix(), 10)
	// prune expired members, then count the rest
	Client.ZRemRangeByScore(ctx, key, "0", "("+now)
	n, err := Client.ZCount(ctx, key, now, "+inf").Result()
	if err != nil {
		return 0, ErrPresenceCountFailed
	}
	return n, nil
}
