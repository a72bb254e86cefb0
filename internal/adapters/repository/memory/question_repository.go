// Package memory holds map-backed implementations of the repository ports.
// They back the unit and handler tests and the no-database dev mode of the
// server; uniqueness guarantees match the postgres adapters.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pairlog/checkin/internal/core/domain"
	"github.com/pairlog/checkin/internal/core/ports"
)

type questionRepository struct {
	mu        sync.RWMutex
	questions map[uuid.UUID]domain.Question
}

func NewQuestionRepository() ports.QuestionRepository {
	return &questionRepository{
		questions: map[uuid.UUID]domain.Question{},
	}
}

func (r *questionRepository) Save(_ context.Context, question *domain.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.questions[question.ID] = *question
	return nil
}

func (r *questionRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	question, ok := r.questions[id]
	if !ok {
		return nil, domain.ErrQuestionNotFound
	}
	return &question, nil
}

func (r *questionRepository) Update(_ context.Context, question *domain.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.questions[question.ID]; !ok {
		return domain.ErrQuestionNotFound
	}
	r.questions[question.ID] = *question
	return nil
}

func (r *questionRepository) GetAll(_ context.Context) ([]domain.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	questions := make([]domain.Question, 0, len(r.questions))
	for _, question := range r.questions {
		questions = append(questions, question)
	}
	return questions, nil
}

func (r *questionRepository) ListScheduledUpTo(_ context.Context, day time.Time) ([]domain.Question, error) {
	dayKey := domain.DayKey(day)

	r.mu.RLock()
	defer r.mu.RUnlock()
	var questions []domain.Question
	for _, question := range r.questions {
		if domain.DayKey(question.ScheduledOn) <= dayKey {
			questions = append(questions, question)
		}
	}
	return questions, nil
}
