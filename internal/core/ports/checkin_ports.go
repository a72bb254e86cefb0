package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pairlog/checkin/internal/core/domain"
)

// ScheduleService resolves the question schedule against a caller-supplied
// instant. Passing now explicitly keeps resolution a pure function of the
// store plus the clock.
type ScheduleService interface {
	TodaysQuestion(ctx context.Context, now time.Time) (*domain.Question, error)
	PastQuestionIDs(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
}

type SubmitInput struct {
	QuestionID uuid.UUID
	UserID     uuid.UUID
	Text       string
	Now        time.Time
}

type CheckInService interface {
	// GetQuestion fetches a question by id, active or not, so clients can
	// render past exchanges.
	GetQuestion(ctx context.Context, questionID uuid.UUID) (*domain.Question, error)
	// AnswersForQuestion computes the reveal view for the requesting user.
	AnswersForQuestion(ctx context.Context, questionID, userID uuid.UUID) (*domain.RevealView, error)
	// Submit commits a one-shot answer and returns the post-submission view.
	Submit(ctx context.Context, input SubmitInput) (*domain.RevealView, error)
}
