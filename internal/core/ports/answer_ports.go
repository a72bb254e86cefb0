package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/pairlog/checkin/internal/core/domain"
)

type AnswerRepository interface {
	// Save persists a new answer. It returns domain.ErrDuplicateSubmission
	// when an answer for (QuestionID, UserID) already exists; the check and
	// the insert are atomic at the store level.
	Save(ctx context.Context, answer *domain.Answer) error
	// Get returns the stored answer for the pair, or nil when the user has
	// not answered the question.
	Get(ctx context.Context, questionID, userID uuid.UUID) (*domain.Answer, error)
}
