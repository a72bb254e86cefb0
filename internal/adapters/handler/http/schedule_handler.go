package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pairlog/checkin/internal/core/domain"
	"github.com/pairlog/checkin/internal/core/ports"
	"go.uber.org/zap"
)

type ScheduleHandler struct {
	service ports.QuestionService
	loc     *time.Location
	log     *zap.Logger
}

func NewScheduleHandler(service ports.QuestionService, loc *time.Location, log *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		service: service,
		loc:     loc,
		log:     log,
	}
}

type scheduleQuestionRequest struct {
	Text        string `json:"text"`
	ScheduledOn string `json:"scheduled_on"` // YYYY-MM-DD, deployment timezone
}

func (h *ScheduleHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	capability, ok := r.Context().Value(CapabilityKey).(domain.Capability)
	if !ok {
		http.Error(w, "Unauthorized: missing capability context", http.StatusUnauthorized)
		return
	}

	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	question, err := h.service.Create(r.Context(), capability, input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, question, h.log)
}

func (h *ScheduleHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	capability, ok := r.Context().Value(CapabilityKey).(domain.Capability)
	if !ok {
		http.Error(w, "Unauthorized: missing capability context", http.StatusUnauthorized)
		return
	}

	questionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid question id", http.StatusBadRequest)
		return
	}

	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	if err := h.service.Update(r.Context(), capability, questionID, input); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *ScheduleHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	capability, ok := r.Context().Value(CapabilityKey).(domain.Capability)
	if !ok {
		http.Error(w, "Unauthorized: missing capability context", http.StatusUnauthorized)
		return
	}

	questions, err := h.service.List(r.Context(), capability)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, questions, h.log)
}

func (h *ScheduleHandler) decodeInput(w http.ResponseWriter, r *http.Request) (ports.QuestionInput, bool) {
	var req scheduleQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return ports.QuestionInput{}, false
	}

	scheduledOn, err := time.ParseInLocation("2006-01-02", req.ScheduledOn, h.loc)
	if err != nil {
		http.Error(w, "invalid scheduled_on date, want YYYY-MM-DD", http.StatusBadRequest)
		return ports.QuestionInput{}, false
	}

	return ports.QuestionInput{Text: req.Text, ScheduledOn: scheduledOn}, true
}
