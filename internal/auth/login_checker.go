package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrNotLoggedIn = errors.New("not logged in")

// LoginChecker resolves session tokens back to user IDs. Kept separate from
// the Service so request middleware only gets the read side.
type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// UserID returns the user bound to the token, or ErrNotLoggedIn.
func (c *LoginChecker) UserID(ctx context.Context, token string) (string, error) {
	userID, err := c.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotLoggedIn
		}
		return "", err
	}
	if userID == "" {
		return "", ErrNotLoggedIn
	}

	// sliding expiration: activity keeps a session alive
	c.redisClient.Expire(ctx, sessionKeyPrefix+token, c.ttl)

	return userID, nil
}

// IsLogged reports whether the token maps to a live session.
func (c *LoginChecker) IsLogged(ctx context.Context, token string) (bool, error) {
	_, err := c.UserID(ctx, token)
	if err != nil {
		if errors.Is(err, ErrNotLoggedIn) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
