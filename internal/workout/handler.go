package workout

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ThomasCleary02/liftledger-sub000/internal/middleware"
	"github.com/ThomasCleary02/liftledger-sub000/internal/telemetry/metrics"
	"github.com/ThomasCleary02/liftledger-sub000/internal/telemetry/tracing"
	"github.com/ThomasCleary02/liftledger-sub000/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=workout_mocks_test.go -package=workout_test

type daysRepo interface {
	Upsert(ctx context.Context, day Day) (*Day, error)
	Get(ctx context.Context, userID, date string) (*Day, error)
	Delete(ctx context.Context, userID, date string) error
	ListAll(ctx context.Context, userID string, params ListParams) ([]Day, error)
}

type catalogProvider interface {
	WorkoutCatalog(ctx context.Context) (Catalog, error)
}

type AddDayResponse struct {
	Day
	NewPR bool `json:"newPr"`
}

type DeleteDayResponse struct {
	DeletedDate string `json:"deletedDate"`
}

type ListDaysResponse struct {
	Days  []Day `json:"days"`
	Total int   `json:"total"`
}

type Handler struct {
	repo     daysRepo
	catalog  catalogProvider
	analyzer *Analyzer
	metrics  *metrics.Manager
}

func NewHandler(repo daysRepo, catalog catalogProvider, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:     repo,
		catalog:  catalog,
		analyzer: NewAnalyzer(),
		metrics:  metricsManager,
	}
}

func (handler *Handler) HandleUpsertDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.days.upsert")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var day Day
	if err := json.NewDecoder(r.Body).Decode(&day); err != nil {
		log.Tracef("upsert day, unmarshal json params: %s", err)
		http.Error(w, "add day failed", http.StatusBadRequest)
		return
	}

	if !ValidDate(day.Date) {
		http.Error(w, "error, invalid date (want YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	userID := middleware.UserIDFromContext(ctx)
	if userID == "" {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}
	day.UserID = userID

	addedDay, err := handler.repo.Upsert(ctx, day)
	if err != nil {
		log.Errorf("failed to upsert day [%s] for user [%s]: %s", day.Date, userID, err)
		http.Error(w, "error, failed to save day", http.StatusInternalServerError)
		return
	}
	handler.metrics.CounterDaysLogged.Inc()

	newPR := handler.checkNewPR(ctx, *addedDay)
	if newPR {
		handler.metrics.CounterNewPRs.Inc()
	}

	addDayRespJson, err := json.Marshal(AddDayResponse{
		Day:   *addedDay,
		NewPR: newPR,
	})
	if err != nil {
		log.Errorf("failed to marshal added day: %s", err)
		http.Error(w, "error, failed to save day", http.StatusInternalServerError)
		return
	}

	log.Debugf("day logged: user [%s] date [%s], %d exercises", userID, addedDay.Date, len(addedDay.Exercises))
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addDayRespJson, http.StatusCreated)
}

// checkNewPR reports whether any exercise logged on the given day set a
// personal record. Errors only disable the notification, they never fail
// the upsert itself.
func (handler *Handler) checkNewPR(ctx context.Context, day Day) bool {
	if day.IsRestDay || len(day.Exercises) == 0 {
		return false
	}

	history, err := handler.repo.ListAll(ctx, day.UserID, ListParams{})
	if err != nil {
		log.Errorf("failed to list days for PR check, user [%s]: %s", day.UserID, err)
		return false
	}

	for _, ex := range day.Exercises {
		key := ex.IdentityKey()
		if key == "" {
			continue
		}
		exHistory := historyForExercise(history, key)
		if latestDate(exHistory) != day.Date {
			// a backfilled past day never triggers the notification
			continue
		}
		if IsNewPR(exHistory) {
			return true
		}
	}
	return false
}

// historyForExercise strips the day list down to records of a single
// exercise, dropping days where it does not appear.
func historyForExercise(days []Day, key string) []Day {
	var out []Day
	for _, d := range days {
		var matched []ExerciseRecord
		for _, ex := range d.Exercises {
			if ex.IdentityKey() == key {
				matched = append(matched, ex)
			}
		}
		if len(matched) == 0 {
			continue
		}
		dd := d
		dd.Exercises = matched
		out = append(out, dd)
	}
	return out
}

func latestDate(days []Day) string {
	latest := ""
	for _, d := range days {
		if d.Date > latest {
			latest = d.Date
		}
	}
	return latest
}

func (handler *Handler) HandleGetDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.days.get")
	defer span.End()

	vars := mux.Vars(r)
	date := vars["date"]
	if !ValidDate(date) {
		http.Error(w, "error, invalid date (want YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	userID := middleware.UserIDFromContext(ctx)
	if userID == "" {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	day, err := handler.repo.Get(ctx, userID, date)
	if err != nil {
		if errors.Is(err, ErrDayNotFound) {
			http.Error(w, "day not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get day [%s] for user [%s]: %s", date, userID, err)
		http.Error(w, "failed to get day", http.StatusInternalServerError)
		return
	}

	dayJson, err := json.Marshal(day)
	if err != nil {
		log.Errorf("failed to marshal day: %s", err)
		http.Error(w, "failed to marshal day", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, dayJson, http.StatusOK)
}

func (handler *Handler) HandleListDays(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.days.list")
	defer span.End()

	userID := middleware.UserIDFromContext(ctx)
	if userID == "" {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	days, err := handler.repo.ListAll(ctx, userID, ListParams{})
	if err != nil {
		log.Errorf("list days error, user [%s]: %s", userID, err)
		http.Error(w, "failed to get days", http.StatusInternalServerError)
		return
	}

	period, err := ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		http.Error(w, "invalid period", http.StatusBadRequest)
		return
	}
	days = FilterByPeriod(days, period, handler.analyzer.NowFunc())

	listRespJson, err := json.Marshal(ListDaysResponse{
		Days:  days,
		Total: len(days),
	})
	if err != nil {
		log.Errorf("marshal days error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listRespJson, http.StatusOK)
}

func (handler *Handler) HandleDeleteDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.days.delete")
	defer span.End()

	vars := mux.Vars(r)
	date := vars["date"]
	if !ValidDate(date) {
		http.Error(w, "error, invalid date (want YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	userID := middleware.UserIDFromContext(ctx)
	if userID == "" {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	if err := handler.repo.Delete(ctx, userID, date); err != nil {
		if errors.Is(err, ErrDayNotFound) {
			http.Error(w, "day not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete day [%s] for user [%s]: %s", date, userID, err)
		http.Error(w, "day not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteDayResponse{
		DeletedDate: date,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleAnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.summary")
	defer span.End()

	days, catalog, ok := handler.analyticsInput(ctx, w)
	if !ok {
		return
	}
	handler.metrics.CounterAnalyticsRequests.WithLabelValues("summary").Inc()

	summary := handler.analyzer.Summary(days, catalog)
	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("failed to marshal analytics summary: %s", err)
		http.Error(w, "failed to marshal analytics summary", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, summaryJson, http.StatusOK)
}

func (handler *Handler) HandleAnalyticsStrength(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.strength")
	defer span.End()

	period, err := ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		http.Error(w, "invalid period", http.StatusBadRequest)
		return
	}

	days, catalog, ok := handler.analyticsInput(ctx, w)
	if !ok {
		return
	}
	handler.metrics.CounterAnalyticsRequests.WithLabelValues("strength").Inc()

	strength := handler.analyzer.Strength(days, catalog, period)
	strengthJson, err := json.Marshal(strength)
	if err != nil {
		log.Errorf("failed to marshal strength analytics: %s", err)
		http.Error(w, "failed to marshal strength analytics", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, strengthJson, http.StatusOK)
}

func (handler *Handler) HandleAnalyticsCardio(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.cardio")
	defer span.End()

	period, err := ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		http.Error(w, "invalid period", http.StatusBadRequest)
		return
	}

	days, _, ok := handler.analyticsInput(ctx, w)
	if !ok {
		return
	}
	handler.metrics.CounterAnalyticsRequests.WithLabelValues("cardio").Inc()

	cardio := handler.analyzer.Cardio(days, period)
	cardioJson, err := json.Marshal(cardio)
	if err != nil {
		log.Errorf("failed to marshal cardio analytics: %s", err)
		http.Error(w, "failed to marshal cardio analytics", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, cardioJson, http.StatusOK)
}

func (handler *Handler) HandleAnalyticsPRs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.prs")
	defer span.End()

	days, _, ok := handler.analyticsInput(ctx, w)
	if !ok {
		return
	}
	handler.metrics.CounterAnalyticsRequests.WithLabelValues("prs").Inc()

	// records are all-time regardless of any display window
	prs := FindAllPRs(days)
	prsJson, err := json.Marshal(prs)
	if err != nil {
		log.Errorf("failed to marshal personal records: %s", err)
		http.Error(w, "failed to marshal personal records", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, prsJson, http.StatusOK)
}

// analyticsInput loads the calling user's full day history and the exercise
// catalog. On failure it writes the error response and returns ok=false.
func (handler *Handler) analyticsInput(ctx context.Context, w http.ResponseWriter) ([]Day, Catalog, bool) {
	userID := middleware.UserIDFromContext(ctx)
	if userID == "" {
		http.Error(w, "no user", http.StatusUnauthorized)
		return nil, nil, false
	}

	days, err := handler.repo.ListAll(ctx, userID, ListParams{})
	if err != nil {
		log.Errorf("list days for analytics, user [%s]: %s", userID, err)
		http.Error(w, "failed to get days", http.StatusInternalServerError)
		return nil, nil, false
	}

	catalog, err := handler.catalog.WorkoutCatalog(ctx)
	if err != nil {
		// analytics degrade without the catalog (muscle groups fall out),
		// they do not fail
		log.Errorf("get workout catalog for analytics: %s", err)
		catalog = nil
	}

	return days, catalog, true
}
