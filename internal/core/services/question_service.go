package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pairlog/checkin/internal/core/domain"
	"github.com/pairlog/checkin/internal/core/ports"
	"go.uber.org/zap"
)

type questionService struct {
	repo ports.QuestionRepository
	loc  *time.Location
	log  *zap.Logger
}

func NewQuestionService(repo ports.QuestionRepository, loc *time.Location, log *zap.Logger) ports.QuestionService {
	return &questionService{
		repo: repo,
		loc:  loc,
		log:  log,
	}
}

func (s *questionService) Create(ctx context.Context, cap domain.Capability, input ports.QuestionInput) (*domain.Question, error) {
	if !cap.Elevated {
		return nil, domain.ErrUnauthorized
	}
	if err := validateQuestionInput(input); err != nil {
		return nil, err
	}

	question := &domain.Question{
		ID:          uuid.New(),
		Text:        strings.TrimSpace(input.Text),
		AuthorID:    cap.UserID,
		ScheduledOn: domain.Day(input.ScheduledOn, s.loc),
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Save(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to save question: %w", err)
	}

	s.log.Info("question scheduled",
		zap.String("question_id", question.ID.String()),
		zap.Time("scheduled_on", question.ScheduledOn),
	)
	return question, nil
}

func (s *questionService) Update(ctx context.Context, cap domain.Capability, id uuid.UUID, input ports.QuestionInput) error {
	if !cap.Elevated {
		return domain.ErrUnauthorized
	}
	if err := validateQuestionInput(input); err != nil {
		return err
	}

	question, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	question.Text = strings.TrimSpace(input.Text)
	question.ScheduledOn = domain.Day(input.ScheduledOn, s.loc)

	if err := s.repo.Update(ctx, question); err != nil {
		return fmt.Errorf("failed to update question: %w", err)
	}

	s.log.Info("question rescheduled",
		zap.String("question_id", id.String()),
		zap.Time("scheduled_on", question.ScheduledOn),
	)
	return nil
}

func (s *questionService) List(ctx context.Context, cap domain.Capability) ([]domain.Question, error) {
	if !cap.Elevated {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.GetAll(ctx)
}

func validateQuestionInput(input ports.QuestionInput) error {
	if strings.TrimSpace(input.Text) == "" {
		return fmt.Errorf("%w: question text is required", domain.ErrInvalidInput)
	}
	if input.ScheduledOn.IsZero() {
		return fmt.Errorf("%w: a scheduled date is required", domain.ErrInvalidInput)
	}
	return nil
}
