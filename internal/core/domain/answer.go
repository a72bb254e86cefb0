package domain

import (
	"time"

	"github.com/google/uuid"
)

// Answer is one participant's submission for a question. The pair
// (QuestionID, UserID) is unique and an answer is immutable once written;
// there is no edit or retract path anywhere in the system.
type Answer struct {
	QuestionID  uuid.UUID `json:"question_id"`
	UserID      uuid.UUID `json:"user_id"`
	Text        string    `json:"text"`
	SubmittedAt time.Time `json:"submitted_at"`
}
