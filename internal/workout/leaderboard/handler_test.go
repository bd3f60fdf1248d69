package leaderboard_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ThomasCleary02/liftledger-sub000/internal/middleware"
	"github.com/ThomasCleary02/liftledger-sub000/internal/telemetry/metrics"
	"github.com/ThomasCleary02/liftledger-sub000/internal/workout"
	"github.com/ThomasCleary02/liftledger-sub000/internal/workout/leaderboard"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaderboardRequest(t *testing.T, target, metric string) *http.Request {
	t.Helper()
	req, err := http.NewRequest("GET", target, nil)
	require.NoError(t, err)
	req = req.WithContext(middleware.ContextWithUserID(req.Context(), "serj"))
	return mux.SetURLVars(req, map[string]string{"metric": metric})
}

func TestHandler_HandleGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	friendsMock := NewMockfriendsRepo(ctrl)
	daysMock := NewMockdaysRepo(ctrl)
	h := leaderboard.NewHandler(friendsMock, daysMock, metrics.NewTestManager())

	friendsMock.EXPECT().
		ListFriends(gomock.Any(), "serj").
		Return([]string{"ana", "mia"}, nil)
	daysMock.EXPECT().
		ListForUsers(gomock.Any(), []string{"serj", "ana", "mia"}).
		Return(map[string][]workout.Day{
			"serj": {strengthDay("serj", "2025-03-08", 80)},
			"ana":  {strengthDay("ana", "2025-03-08", 100)},
			"mia":  {},
		}, nil)

	rec := httptest.NewRecorder()
	h.HandleGet(rec, leaderboardRequest(t, "/leaderboard/volume", "volume"))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp leaderboard.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, leaderboard.MetricVolume, resp.Metric)
	assert.Equal(t, workout.LeaderboardPeriodAll, resp.Period)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, "ana", resp.Entries[0].UserID)
	assert.Equal(t, 1, resp.Entries[0].Rank)
	assert.Equal(t, "serj", resp.Entries[1].UserID)
	assert.Equal(t, 2, resp.Entries[1].Rank)
}

func TestHandler_HandleGet_UnknownMetric(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := leaderboard.NewHandler(NewMockfriendsRepo(ctrl), NewMockdaysRepo(ctrl), metrics.NewTestManager())

	rec := httptest.NewRecorder()
	h.HandleGet(rec, leaderboardRequest(t, "/leaderboard/steps", "steps"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_HandleGet_BadPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := leaderboard.NewHandler(NewMockfriendsRepo(ctrl), NewMockdaysRepo(ctrl), metrics.NewTestManager())

	rec := httptest.NewRecorder()
	h.HandleGet(rec, leaderboardRequest(t, "/leaderboard/volume?period=year", "volume"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_HandleGet_NoUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := leaderboard.NewHandler(NewMockfriendsRepo(ctrl), NewMockdaysRepo(ctrl), metrics.NewTestManager())

	req, err := http.NewRequest("GET", "/leaderboard/volume", nil)
	require.NoError(t, err)
	req = mux.SetURLVars(req, map[string]string{"metric": "volume"})

	rec := httptest.NewRecorder()
	h.HandleGet(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_HandleGet_FriendsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	friendsMock := NewMockfriendsRepo(ctrl)
	h := leaderboard.NewHandler(friendsMock, NewMockdaysRepo(ctrl), metrics.NewTestManager())

	friendsMock.EXPECT().
		ListFriends(gomock.Any(), "serj").
		Return(nil, assert.AnError)

	rec := httptest.NewRecorder()
	h.HandleGet(rec, leaderboardRequest(t, "/leaderboard/volume", "volume"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
