package insights

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ThomasCleary02/liftledger-sub000/internal/middleware"
	"github.com/ThomasCleary02/liftledger-sub000/internal/telemetry/tracing"
	"github.com/ThomasCleary02/liftledger-sub000/pkg"

	log "github.com/sirupsen/logrus"
)

type insightsService interface {
	GetInsights(ctx context.Context, userID string) (*Insights, error)
}

type Handler struct {
	service insightsService
}

func NewHandler(service insightsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.insights.get")
	defer span.End()

	userID := middleware.UserIDFromContext(ctx)
	if userID == "" {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	insights, err := h.service.GetInsights(ctx, userID)
	if err != nil {
		log.Errorf("failed to get insights for user [%s]: %s", userID, err)
		http.Error(w, "failed to get insights", http.StatusInternalServerError)
		return
	}

	insightsJson, err := json.Marshal(insights)
	if err != nil {
		log.Errorf("failed to marshal insights: %s", err)
		http.Error(w, "failed to marshal insights", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, insightsJson, http.StatusOK)
}
