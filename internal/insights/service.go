package insights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThomasCleary02/liftledger-sub000/internal/telemetry/tracing"
	"github.com/ThomasCleary02/liftledger-sub000/internal/workout"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=insights_mocks_test.go -package=insights_test

const cacheKeyPrefix = "liftledger-insights||"

type daysRepo interface {
	ListAll(ctx context.Context, userID string, params workout.ListParams) ([]workout.Day, error)
}

type catalogProvider interface {
	WorkoutCatalog(ctx context.Context) (workout.Catalog, error)
}

type Insights struct {
	Lines       []string  `json:"lines"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// Service computes insight lines from a user's analytics summary. Results
// are cached in redis since the text only drifts as new days get logged.
type Service struct {
	repo        daysRepo
	catalog     catalogProvider
	analyzer    *workout.Analyzer
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewService(repo daysRepo, catalog catalogProvider, redisClient *redis.Client, cacheTTL time.Duration) *Service {
	return &Service{
		repo:        repo,
		catalog:     catalog,
		analyzer:    workout.NewAnalyzer(),
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

func (s *Service) GetInsights(ctx context.Context, userID string) (_ *Insights, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "insights.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cacheKey := cacheKeyPrefix + userID
	cachedBytes, err := s.redisClient.Get(ctx, cacheKey).Bytes()
	switch {
	case err == nil:
		var cached Insights
		if err := json.Unmarshal(cachedBytes, &cached); err == nil {
			log.Tracef("insights for user [%s] served from cache", userID)
			return &cached, nil
		}
		log.Errorf("failed to unmarshal cached insights for user [%s]: %s", userID, err)
	case !errors.Is(err, redis.Nil):
		log.Errorf("failed to read insights cache for user [%s]: %s", userID, err)
	}

	days, err := s.repo.ListAll(ctx, userID, workout.ListParams{})
	if err != nil {
		return nil, fmt.Errorf("list days: %w", err)
	}

	catalog, err := s.catalog.WorkoutCatalog(ctx)
	if err != nil {
		log.Errorf("get workout catalog for insights: %s", err)
		catalog = nil
	}

	insights := &Insights{
		Lines:       Generate(s.analyzer.Summary(days, catalog)),
		GeneratedAt: time.Now(),
	}

	insightsBytes, err := json.Marshal(insights)
	if err != nil {
		return nil, fmt.Errorf("marshal insights: %w", err)
	}
	if err := s.redisClient.Set(ctx, cacheKey, insightsBytes, s.cacheTTL).Err(); err != nil {
		log.Errorf("failed to write insights cache for user [%s]: %s", userID, err)
	}

	return insights, nil
}
