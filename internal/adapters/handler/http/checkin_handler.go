package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pairlog/checkin/internal/core/domain"
	"github.com/pairlog/checkin/internal/core/ports"
	"go.uber.org/zap"
)

const defaultPastLimit = 10

type CheckInHandler struct {
	schedule ports.ScheduleService
	checkIn  ports.CheckInService
	log      *zap.Logger
}

func NewCheckInHandler(schedule ports.ScheduleService, checkIn ports.CheckInService, log *zap.Logger) *CheckInHandler {
	return &CheckInHandler{
		schedule: schedule,
		checkIn:  checkIn,
		log:      log,
	}
}

func (h *CheckInHandler) TodaysQuestion(w http.ResponseWriter, r *http.Request) {
	question, err := h.schedule.TodaysQuestion(r.Context(), time.Now())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if question == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, question, h.log)
}

func (h *CheckInHandler) PastQuestions(w http.ResponseWriter, r *http.Request) {
	limit := defaultPastLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	ids, err := h.schedule.PastQuestionIDs(r.Context(), time.Now(), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ids, h.log)
}

func (h *CheckInHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	questionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid question id", http.StatusBadRequest)
		return
	}

	question, err := h.checkIn.GetQuestion(r.Context(), questionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, question, h.log)
}

func (h *CheckInHandler) GetAnswers(w http.ResponseWriter, r *http.Request) {
	questionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid question id", http.StatusBadRequest)
		return
	}

	userID, ok := r.Context().Value(UserIDKey).(uuid.UUID)
	if !ok {
		http.Error(w, "Unauthorized: missing user context", http.StatusUnauthorized)
		return
	}

	view, err := h.checkIn.AnswersForQuestion(r.Context(), questionID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view, h.log)
}

type submitAnswerRequest struct {
	Text string `json:"text"`
}

func (h *CheckInHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	questionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid question id", http.StatusBadRequest)
		return
	}

	userID, ok := r.Context().Value(UserIDKey).(uuid.UUID)
	if !ok {
		http.Error(w, "Unauthorized: missing user context", http.StatusUnauthorized)
		return
	}

	var req submitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	view, err := h.checkIn.Submit(r.Context(), ports.SubmitInput{
		QuestionID: questionID,
		UserID:     userID,
		Text:       req.Text,
		Now:        time.Now(),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view, h.log)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrQuestionNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrDuplicateSubmission):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrUnauthorized):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, domain.ErrStoreUnavailable):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any, log *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// The status line is already on the wire, so an encode failure can
	// only be logged, not turned into a different response.
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response", zap.Error(err))
	}
}
