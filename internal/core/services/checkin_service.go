package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pairlog/checkin/internal/core/domain"
	"github.com/pairlog/checkin/internal/core/ports"
	"go.uber.org/zap"
)

type checkInService struct {
	questionRepo ports.QuestionRepository
	answerRepo   ports.AnswerRepository
	roster       ports.Roster
	log          *zap.Logger
}

func NewCheckInService(questionRepo ports.QuestionRepository, answerRepo ports.AnswerRepository, roster ports.Roster, log *zap.Logger) ports.CheckInService {
	return &checkInService{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		roster:       roster,
		log:          log,
	}
}

func (s *checkInService) GetQuestion(ctx context.Context, questionID uuid.UUID) (*domain.Question, error) {
	return s.questionRepo.GetByID(ctx, questionID)
}

func (s *checkInService) AnswersForQuestion(ctx context.Context, questionID, userID uuid.UUID) (*domain.RevealView, error) {
	if _, err := s.questionRepo.GetByID(ctx, questionID); err != nil {
		return nil, err
	}

	partnerID, err := s.roster.Partner(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve partner: %w", err)
	}

	self, err := s.answerRepo.Get(ctx, questionID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get own answer: %w", err)
	}
	partner, err := s.answerRepo.Get(ctx, questionID, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get partner answer: %w", err)
	}

	view := domain.Reveal(self, partner)
	return &view, nil
}

func (s *checkInService) Submit(ctx context.Context, input ports.SubmitInput) (*domain.RevealView, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: answer text is required", domain.ErrInvalidInput)
	}

	// Resolve the roster before any write so an outsider is rejected
	// without leaving an answer behind.
	partnerID, err := s.roster.Partner(input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve partner: %w", err)
	}

	if _, err := s.questionRepo.GetByID(ctx, input.QuestionID); err != nil {
		return nil, err
	}

	existing, err := s.answerRepo.Get(ctx, input.QuestionID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing answer: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicateSubmission
	}

	answer := &domain.Answer{
		QuestionID:  input.QuestionID,
		UserID:      input.UserID,
		Text:        text,
		SubmittedAt: input.Now,
	}

	// The store enforces (question_id, user_id) uniqueness, so a concurrent
	// submit racing past the pre-check still surfaces as a duplicate here.
	if err := s.answerRepo.Save(ctx, answer); err != nil {
		if errors.Is(err, domain.ErrDuplicateSubmission) {
			return nil, domain.ErrDuplicateSubmission
		}
		return nil, fmt.Errorf("failed to save answer: %w", err)
	}

	s.log.Info("answer submitted",
		zap.String("question_id", input.QuestionID.String()),
		zap.String("user_id", input.UserID.String()),
	)

	partner, err := s.answerRepo.Get(ctx, input.QuestionID, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get partner answer: %w", err)
	}

	view := domain.Reveal(answer, partner)
	return &view, nil
}
