package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/pairlog/checkin/internal/core/domain"
	"github.com/pairlog/checkin/internal/core/ports"
)

type answerRepository struct {
	db *sql.DB
}

func NewAnswerRepository(db *sql.DB) ports.AnswerRepository {
	return &answerRepository{
		db: db,
	}
}

func (r *answerRepository) Save(ctx context.Context, answer *domain.Answer) error {
	query := `
		INSERT INTO answers (question_id, user_id, text, submitted_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, query,
		answer.QuestionID, answer.UserID, answer.Text, answer.SubmittedAt,
	)
	if err != nil {
		// The composite primary key makes the duplicate check and the
		// insert one atomic step.
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSubmission
		}
		return fmt.Errorf("failed to save answer: %w", storeErr(err))
	}
	return nil
}

func (r *answerRepository) Get(ctx context.Context, questionID, userID uuid.UUID) (*domain.Answer, error) {
	query := `
		SELECT question_id, user_id, text, submitted_at
		FROM answers
		WHERE question_id = $1 AND user_id = $2
	`
	var answer domain.Answer
	err := r.db.QueryRowContext(ctx, query, questionID, userID).Scan(
		&answer.QuestionID, &answer.UserID, &answer.Text, &answer.SubmittedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get answer: %w", storeErr(err))
	}
	return &answer, nil
}
