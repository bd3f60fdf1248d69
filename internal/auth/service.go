package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThomasCleary02/liftledger-sub000/pkg"

	"github.com/go-redis/redis/v8"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "liftledger-session||"
)

var ErrWrongCredentials = errors.New("wrong credentials")

type usersRepo interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
}

// Service issues and revokes session tokens, stored in redis with a TTL.
type Service struct {
	repo        usersRepo
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewService(repo usersRepo, ttl time.Duration, redisClient *redis.Client) *Service {
	return &Service{
		repo:           repo,
		redisClient:    redisClient,
		ttl:            ttl,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

// Login verifies the credentials and returns a fresh session token bound to
// the user's ID.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrWrongCredentials
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	if !pkg.CheckPasswordHash(password, user.PasswordHash) {
		return "", ErrWrongCredentials
	}

	token, err := s.RandStringFunc(35)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	sessionKey := sessionKeyPrefix + token
	if err := s.redisClient.Set(ctx, sessionKey, user.ID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	return token, nil
}

// Logout drops the session; reports whether there was one.
func (s *Service) Logout(ctx context.Context, token string) (bool, error) {
	removed, err := s.redisClient.Del(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return removed > 0, nil
}
