package services

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pairlog/checkin/internal/core/domain"
	"github.com/pairlog/checkin/internal/core/ports"
)

type scheduleService struct {
	repo ports.QuestionRepository
	loc  *time.Location
}

// NewScheduleService builds the schedule resolver. loc is the deployment
// timezone; it decides which calendar day "now" falls on and must stay fixed
// for the lifetime of a deployment.
func NewScheduleService(repo ports.QuestionRepository, loc *time.Location) ports.ScheduleService {
	return &scheduleService{
		repo: repo,
		loc:  loc,
	}
}

func (s *scheduleService) TodaysQuestion(ctx context.Context, now time.Time) (*domain.Question, error) {
	today := domain.Day(now, s.loc)

	candidates, err := s.repo.ListScheduledUpTo(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled questions: %w", err)
	}

	active, ok := activeQuestion(candidates, domain.DayKey(today))
	if !ok {
		return nil, nil
	}
	return &active, nil
}

func (s *scheduleService) PastQuestionIDs(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	today := domain.Day(now, s.loc)

	candidates, err := s.repo.ListScheduledUpTo(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled questions: %w", err)
	}

	todayKey := domain.DayKey(today)
	var activeID uuid.UUID
	if active, ok := activeQuestion(candidates, todayKey); ok {
		activeID = active.ID
	}

	ids := make([]uuid.UUID, 0)
	for q := range pastQuestions(candidates, todayKey, activeID) {
		if limit > 0 && len(ids) >= limit {
			break
		}
		ids = append(ids, q.ID)
	}
	return ids, nil
}

// activeQuestion picks the question with the latest scheduled day not after
// today. Ties on the day are broken by the smallest id string so resolution
// stays deterministic even when the schedule holds duplicate dates.
func activeQuestion(questions []domain.Question, todayKey int) (domain.Question, bool) {
	var best domain.Question
	bestKey := 0
	found := false
	for _, q := range questions {
		key := domain.DayKey(q.ScheduledOn)
		if key > todayKey {
			continue
		}
		if !found || key > bestKey || (key == bestKey && strings.Compare(q.ID.String(), best.ID.String()) < 0) {
			best, bestKey, found = q, key, true
		}
	}
	return best, found
}

// pastQuestions yields questions whose scheduled day is strictly before
// today, excluding the active one, most recent day first then id ascending.
// The sequence is restartable; callers truncate it as they see fit.
func pastQuestions(questions []domain.Question, todayKey int, activeID uuid.UUID) iter.Seq[domain.Question] {
	ordered := slices.Clone(questions)
	slices.SortStableFunc(ordered, func(a, b domain.Question) int {
		if c := domain.DayKey(b.ScheduledOn) - domain.DayKey(a.ScheduledOn); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})

	return func(yield func(domain.Question) bool) {
		for _, q := range ordered {
			if q.ID == activeID {
				continue
			}
			if domain.DayKey(q.ScheduledOn) >= todayKey {
				continue
			}
			if !yield(q) {
				return
			}
		}
	}
}
