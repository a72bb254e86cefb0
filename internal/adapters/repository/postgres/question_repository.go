package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pairlog/checkin/internal/core/domain"
	"github.com/pairlog/checkin/internal/core/ports"
)

const dateLayout = "2006-01-02"

type questionRepository struct {
	db *sql.DB
}

func NewQuestionRepository(db *sql.DB) ports.QuestionRepository {
	return &questionRepository{
		db: db,
	}
}

func (r *questionRepository) Save(ctx context.Context, question *domain.Question) error {
	query := `
		INSERT INTO questions (id, text, author_id, scheduled_on, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		question.ID, question.Text, question.AuthorID,
		question.ScheduledOn.Format(dateLayout), question.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save question: %w", storeErr(err))
	}
	return nil
}

func (r *questionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	query := `
		SELECT id, text, author_id, scheduled_on, created_at
		FROM questions
		WHERE id = $1
	`
	var question domain.Question
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&question.ID, &question.Text, &question.AuthorID, &question.ScheduledOn, &question.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", storeErr(err))
	}
	return &question, nil
}

func (r *questionRepository) Update(ctx context.Context, question *domain.Question) error {
	query := `
		UPDATE questions
		SET text = $2, scheduled_on = $3
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		question.ID, question.Text, question.ScheduledOn.Format(dateLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to update question: %w", storeErr(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update question: %w", storeErr(err))
	}
	if affected == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

func (r *questionRepository) GetAll(ctx context.Context) ([]domain.Question, error) {
	query := `
		SELECT id, text, author_id, scheduled_on, created_at
		FROM questions
		ORDER BY scheduled_on ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all questions: %w", storeErr(err))
	}
	defer rows.Close()

	return scanQuestions(rows)
}

func (r *questionRepository) ListScheduledUpTo(ctx context.Context, day time.Time) ([]domain.Question, error) {
	query := `
		SELECT id, text, author_id, scheduled_on, created_at
		FROM questions
		WHERE scheduled_on <= $1
		ORDER BY scheduled_on DESC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, query, day.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled questions: %w", storeErr(err))
	}
	defer rows.Close()

	return scanQuestions(rows)
}

func scanQuestions(rows *sql.Rows) ([]domain.Question, error) {
	var questions []domain.Question
	for rows.Next() {
		var question domain.Question
		if err := rows.Scan(
			&question.ID, &question.Text, &question.AuthorID, &question.ScheduledOn, &question.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, question)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating questions: %w", storeErr(err))
	}
	return questions, nil
}
