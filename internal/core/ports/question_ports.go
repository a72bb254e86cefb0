package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pairlog/checkin/internal/core/domain"
)

type QuestionRepository interface {
	Save(ctx context.Context, question *domain.Question) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	Update(ctx context.Context, question *domain.Question) error
	GetAll(ctx context.Context) ([]domain.Question, error)
	// ListScheduledUpTo returns every question whose scheduled day is on or
	// before day, ordered by scheduled day descending then id ascending.
	// Adapters must serve this from an index, not a full scan.
	ListScheduledUpTo(ctx context.Context, day time.Time) ([]domain.Question, error)
}

type QuestionInput struct {
	Text        string
	ScheduledOn time.Time
}

// QuestionService is the admin scheduler. Every mutation requires an
// elevated capability token.
type QuestionService interface {
	Create(ctx context.Context, cap domain.Capability, input QuestionInput) (*domain.Question, error)
	Update(ctx context.Context, cap domain.Capability, id uuid.UUID, input QuestionInput) error
	List(ctx context.Context, cap domain.Capability) ([]domain.Question, error)
}
