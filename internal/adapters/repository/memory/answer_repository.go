package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/pairlog/checkin/internal/core/domain"
	"github.com/pairlog/checkin/internal/core/ports"
)

type answerKey struct {
	questionID uuid.UUID
	userID     uuid.UUID
}

type answerRepository struct {
	mu      sync.RWMutex
	answers map[answerKey]domain.Answer
}

func NewAnswerRepository() ports.AnswerRepository {
	return &answerRepository{
		answers: map[answerKey]domain.Answer{},
	}
}

func (r *answerRepository) Save(_ context.Context, answer *domain.Answer) error {
	key := answerKey{questionID: answer.QuestionID, userID: answer.UserID}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.answers[key]; ok {
		return domain.ErrDuplicateSubmission
	}
	r.answers[key] = *answer
	return nil
}

func (r *answerRepository) Get(_ context.Context, questionID, userID uuid.UUID) (*domain.Answer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	answer, ok := r.answers[answerKey{questionID: questionID, userID: userID}]
	if !ok {
		return nil, nil
	}
	return &answer, nil
}
