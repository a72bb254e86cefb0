package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pairlog/checkin/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func TestCreateQuestionRequiresAdmin(t *testing.T) {
	app := setupTestApp(t)

	body := map[string]string{"text": "What are you grateful for?", "scheduled_on": "2024-06-01"}
	resp := app.do(t, http.MethodPost, "/api/schedule/questions", body, app.UserA, false)
	defer resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCreateAndListQuestions(t *testing.T) {
	app := setupTestApp(t)

	body := map[string]string{"text": "What are you grateful for?", "scheduled_on": "2024-06-01"}
	resp := app.do(t, http.MethodPost, "/api/schedule/questions", body, app.Admin, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeJSON[domain.Question](t, resp)
	require.Equal(t, "What are you grateful for?", created.Text)
	require.Equal(t, app.Admin, created.AuthorID)
	require.Equal(t, 20240601, domain.DayKey(created.ScheduledOn))

	resp = app.do(t, http.MethodGet, "/api/schedule/questions", nil, app.Admin, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	questions := decodeJSON[[]domain.Question](t, resp)
	require.Len(t, questions, 1)
	require.Equal(t, created.ID, questions[0].ID)
}

func TestCreateQuestionRejectsBadDate(t *testing.T) {
	app := setupTestApp(t)

	body := map[string]string{"text": "What are you grateful for?", "scheduled_on": "June 1st"}
	resp := app.do(t, http.MethodPost, "/api/schedule/questions", body, app.Admin, true)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateQuestion(t *testing.T) {
	app := setupTestApp(t)
	question := app.seedQuestion(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))

	body := map[string]string{"text": "Rewritten", "scheduled_on": "2024-06-05"}
	resp := app.do(t, http.MethodPut, "/api/schedule/questions/"+question.ID.String(), body, app.Admin, true)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = app.do(t, http.MethodGet, "/api/checkin/questions/"+question.ID.String(), nil, app.UserA, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeJSON[domain.Question](t, resp)
	require.Equal(t, "Rewritten", updated.Text)
	require.Equal(t, 20240605, domain.DayKey(updated.ScheduledOn))
}

func TestUpdateUnknownQuestion(t *testing.T) {
	app := setupTestApp(t)

	body := map[string]string{"text": "Rewritten", "scheduled_on": "2024-06-05"}
	resp := app.do(t, http.MethodPut, "/api/schedule/questions/"+uuid.NewString(), body, app.Admin, true)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
