package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pairlog/checkin/internal/adapters/repository/memory"
	"github.com/pairlog/checkin/internal/adapters/roster"
	"github.com/pairlog/checkin/internal/core/domain"
	"github.com/pairlog/checkin/internal/core/ports"
	"github.com/pairlog/checkin/internal/core/services"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

type testApp struct {
	Server       *httptest.Server
	Client       *http.Client
	QuestionRepo ports.QuestionRepository
	UserA        uuid.UUID
	UserB        uuid.UUID
	Admin        uuid.UUID
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()

	questionRepo := memory.NewQuestionRepository()
	answerRepo := memory.NewAnswerRepository()

	userA := uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	userB := uuid.MustParse("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb")
	pair, err := roster.NewStatic(userA, userB)
	require.NoError(t, err)

	logger := zap.NewNop()
	scheduleSvc := services.NewScheduleService(questionRepo, time.UTC)
	checkInSvc := services.NewCheckInService(questionRepo, answerRepo, pair, logger)
	questionSvc := services.NewQuestionService(questionRepo, time.UTC, logger)

	handler := NewHandler(
		NewCheckInHandler(scheduleSvc, checkInSvc, logger),
		NewScheduleHandler(questionSvc, time.UTC, logger),
		[]byte(testSecret),
	)
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &testApp{
		Server:       server,
		Client:       server.Client(),
		QuestionRepo: questionRepo,
		UserA:        userA,
		UserB:        userB,
		Admin:        uuid.MustParse("cccccccc-cccc-cccc-cccc-cccccccccccc"),
	}
}

func signToken(t *testing.T, userID uuid.UUID, admin bool) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"admin": admin,
		"exp":   time.Now().Add(15 * time.Minute).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func (app *testApp) do(t *testing.T, method, path string, body any, userID uuid.UUID, admin bool) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, app.Server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "access_token", Value: signToken(t, userID, admin)})

	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	return resp
}

func (app *testApp) seedQuestion(t *testing.T, scheduledOn time.Time) domain.Question {
	t.Helper()

	question := domain.Question{
		ID:          uuid.New(),
		Text:        "What made you smile today?",
		AuthorID:    app.Admin,
		ScheduledOn: scheduledOn,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, app.QuestionRepo.Save(context.Background(), &question))
	return question
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAuthRequired(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Client.Get(app.Server.URL + "/api/checkin/today")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestTodaysQuestionNoContentWhenScheduleEmpty(t *testing.T) {
	app := setupTestApp(t)

	resp := app.do(t, http.MethodGet, "/api/checkin/today", nil, app.UserA, false)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestSubmitAndRevealFlow(t *testing.T) {
	app := setupTestApp(t)
	question := app.seedQuestion(t, today())

	// Today's question resolves to the seeded one.
	resp := app.do(t, http.MethodGet, "/api/checkin/today", nil, app.UserA, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	active := decodeJSON[domain.Question](t, resp)
	require.Equal(t, question.ID, active.ID)

	answersPath := fmt.Sprintf("/api/checkin/questions/%s/answers", question.ID)

	// A submits; own answer echoes back, partner stays hidden.
	resp = app.do(t, http.MethodPost, answersPath, map[string]string{"text": "I love hiking"}, app.UserA, false)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	view := decodeJSON[domain.RevealView](t, resp)
	require.NotNil(t, view.Self)
	require.Equal(t, "I love hiking", view.Self.Text)
	require.Nil(t, view.Partner)

	// B has not submitted and must see nothing at all.
	resp = app.do(t, http.MethodGet, answersPath, nil, app.UserB, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	view = decodeJSON[domain.RevealView](t, resp)
	require.Nil(t, view.Self)
	require.Nil(t, view.Partner)

	// B submits; both sides reveal.
	resp = app.do(t, http.MethodPost, answersPath, map[string]string{"text": "I love the sea"}, app.UserB, false)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	view = decodeJSON[domain.RevealView](t, resp)
	require.NotNil(t, view.Self)
	require.NotNil(t, view.Partner)
	require.Equal(t, "I love the sea", view.Self.Text)
	require.Equal(t, "I love hiking", view.Partner.Text)

	// Resubmission is rejected.
	resp = app.do(t, http.MethodPost, answersPath, map[string]string{"text": "again"}, app.UserA, false)
	defer resp.Body.Close()
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestSubmitValidation(t *testing.T) {
	app := setupTestApp(t)
	question := app.seedQuestion(t, today())

	answersPath := fmt.Sprintf("/api/checkin/questions/%s/answers", question.ID)
	resp := app.do(t, http.MethodPost, answersPath, map[string]string{"text": "   "}, app.UserA, false)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	unknownPath := fmt.Sprintf("/api/checkin/questions/%s/answers", uuid.New())
	resp = app.do(t, http.MethodPost, unknownPath, map[string]string{"text": "hello"}, app.UserA, false)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSubmitForbiddenOutsideRoster(t *testing.T) {
	app := setupTestApp(t)
	question := app.seedQuestion(t, today())

	answersPath := fmt.Sprintf("/api/checkin/questions/%s/answers", question.ID)

	// The admin identity is not on the roster and may not answer.
	resp := app.do(t, http.MethodPost, answersPath, map[string]string{"text": "hello"}, app.Admin, true)
	defer resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Nothing was persisted: a roster member still sees an empty view.
	resp = app.do(t, http.MethodGet, answersPath, nil, app.UserA, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	view := decodeJSON[domain.RevealView](t, resp)
	require.Nil(t, view.Self)
	require.Nil(t, view.Partner)
}

func TestWriteJSONKeepsStatusOnEncodeFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, map[string]any{"bad": make(chan int)}, zap.NewNop())

	// The header already went out; the failure must not turn into a
	// second status write or an error payload.
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Empty(t, rec.Body.String())
}

func TestPastQuestionsEndpoint(t *testing.T) {
	app := setupTestApp(t)

	older := app.seedQuestion(t, today().AddDate(0, 0, -3))
	newer := app.seedQuestion(t, today().AddDate(0, 0, -1))
	app.seedQuestion(t, today()) // active, excluded from history

	resp := app.do(t, http.MethodGet, "/api/checkin/past?limit=5", nil, app.UserA, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ids := decodeJSON[[]uuid.UUID](t, resp)
	require.Equal(t, []uuid.UUID{newer.ID, older.ID}, ids)
}

func TestGetQuestionByID(t *testing.T) {
	app := setupTestApp(t)
	question := app.seedQuestion(t, today().AddDate(0, 0, -1))

	resp := app.do(t, http.MethodGet, "/api/checkin/questions/"+question.ID.String(), nil, app.UserA, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeJSON[domain.Question](t, resp)
	require.Equal(t, question.Text, got.Text)

	resp = app.do(t, http.MethodGet, "/api/checkin/questions/"+uuid.NewString(), nil, app.UserA, false)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
