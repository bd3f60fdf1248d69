package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ThomasCleary02/liftledger-sub000/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type catalogService interface {
	List(ctx context.Context) ([]Exercise, error)
	Get(ctx context.Context, id string) (*Exercise, error)
	Add(ctx context.Context, exercise Exercise) (*Exercise, error)
}

type Handler struct {
	service catalogService
}

func NewHandler(service catalogService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	exercises, err := h.service.List(r.Context())
	if err != nil {
		log.Errorf("list exercise catalog: %s", err)
		http.Error(w, "failed to get exercises", http.StatusInternalServerError)
		return
	}

	exercisesJson, err := json.Marshal(exercises)
	if err != nil {
		log.Errorf("marshal exercise catalog: %s", err)
		http.Error(w, "marshal exercises error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(exercisesJson))
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var exercise Exercise
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		log.Errorf("add exercise, decode json: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}

	added, err := h.service.Add(r.Context(), exercise)
	if err != nil {
		if errors.Is(err, ErrInvalidExercise) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("add exercise: %s", err)
		http.Error(w, "failed to add exercise", http.StatusInternalServerError)
		return
	}

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("marshal added exercise: %s", err)
		http.Error(w, "marshal exercise error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	exercise, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("get exercise %s: %s", id, err)
		http.Error(w, "failed to get exercise", http.StatusInternalServerError)
		return
	}

	exerciseJson, err := json.Marshal(exercise)
	if err != nil {
		log.Errorf("marshal exercise: %s", err)
		http.Error(w, "marshal exercise error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(exerciseJson))
}
