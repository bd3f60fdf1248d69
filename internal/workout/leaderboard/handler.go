package leaderboard

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ThomasCleary02/liftledger-sub000/internal/middleware"
	"github.com/ThomasCleary02/liftledger-sub000/internal/telemetry/metrics"
	"github.com/ThomasCleary02/liftledger-sub000/internal/telemetry/tracing"
	"github.com/ThomasCleary02/liftledger-sub000/internal/workout"
	"github.com/ThomasCleary02/liftledger-sub000/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=leaderboard_mocks_test.go -package=leaderboard_test

type friendsRepo interface {
	ListFriends(ctx context.Context, userID string) ([]string, error)
}

type daysRepo interface {
	ListForUsers(ctx context.Context, userIDs []string) (map[string][]workout.Day, error)
}

type Response struct {
	Metric  Metric                    `json:"metric"`
	Period  workout.LeaderboardPeriod `json:"period"`
	Entries []Entry                   `json:"entries"`
}

type Handler struct {
	friends friendsRepo
	days    daysRepo
	ranker  *Ranker
	metrics *metrics.Manager
}

func NewHandler(friends friendsRepo, days daysRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		friends: friends,
		days:    days,
		ranker:  NewRanker(),
		metrics: metricsManager,
	}
}

// HandleGet ranks the calling user and their friend group on the requested
// metric over a rolling window.
func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.leaderboard.get")
	defer span.End()

	vars := mux.Vars(r)
	metric, err := ParseMetric(vars["metric"])
	if err != nil {
		http.Error(w, "unknown leaderboard metric", http.StatusBadRequest)
		return
	}

	period, err := workout.ParseLeaderboardPeriod(r.URL.Query().Get("period"))
	if err != nil {
		http.Error(w, "invalid period", http.StatusBadRequest)
		return
	}

	userID := middleware.UserIDFromContext(ctx)
	if userID == "" {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	friendIDs, err := handler.friends.ListFriends(ctx, userID)
	if err != nil {
		log.Errorf("failed to list friends for [%s]: %s", userID, err)
		http.Error(w, "failed to get leaderboard", http.StatusInternalServerError)
		return
	}
	group := append([]string{userID}, friendIDs...)

	daysByUser, err := handler.days.ListForUsers(ctx, group)
	if err != nil {
		log.Errorf("failed to list days for leaderboard group of [%s]: %s", userID, err)
		http.Error(w, "failed to get leaderboard", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterLeaderboardRequests.WithLabelValues(string(metric)).Inc()

	entries := handler.ranker.Rank(daysByUser, metric, period)
	respJson, err := json.Marshal(Response{
		Metric:  metric,
		Period:  period,
		Entries: entries,
	})
	if err != nil {
		log.Errorf("failed to marshal leaderboard: %s", err)
		http.Error(w, "failed to marshal leaderboard", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
