package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThomasCleary02/liftledger-sub000/internal/telemetry/tracing"
	"github.com/ThomasCleary02/liftledger-sub000/internal/workout"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	oneHour            = 60 * 60
	catalogCacheExpire = oneHour * 6

	catalogCacheKey = "catalog::all"
)

type exercisesRepo interface {
	Get(ctx context.Context, id string) (*Exercise, error)
	GetAll(ctx context.Context) ([]Exercise, error)
	Add(ctx context.Context, exercise Exercise) (*Exercise, error)
}

// Service serves the exercise catalog, keeping the full listing
// in an in-memory cache since it changes rarely.
type Service struct {
	repo  exercisesRepo
	cache *freecache.Cache
}

func NewService(repo exercisesRepo) *Service {
	megabyte := 1024 * 1024
	return &Service{
		repo:  repo,
		cache: freecache.NewCache(10 * megabyte),
	}
}

func (s *Service) List(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if cachedBytes, err := s.cache.Get([]byte(catalogCacheKey)); err == nil {
		var exercises []Exercise
		if err = json.Unmarshal(cachedBytes, &exercises); err == nil {
			log.Tracef("found exercise catalog in cache, %d entries", len(exercises))
			return exercises, nil
		}
		log.Errorf("failed to unmarshal exercise catalog from cache: %s", err)
	}

	exercises, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get exercise types: %w", err)
	}

	exercisesBytes, err := json.Marshal(exercises)
	if err != nil {
		return nil, fmt.Errorf("marshal exercise types: %w", err)
	}
	if err := s.cache.Set([]byte(catalogCacheKey), exercisesBytes, catalogCacheExpire); err != nil {
		log.Errorf("failed to write exercise catalog cache: %s", err)
	}

	return exercises, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Exercise, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Add(ctx context.Context, exercise Exercise) (*Exercise, error) {
	added, err := s.repo.Add(ctx, exercise)
	if err != nil {
		return nil, err
	}
	s.cache.Del([]byte(catalogCacheKey))
	return added, nil
}

// WorkoutCatalog returns the catalog in the lookup form the
// analytics code consumes.
func (s *Service) WorkoutCatalog(ctx context.Context) (workout.Catalog, error) {
	exercises, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return AsWorkoutCatalog(exercises), nil
}
