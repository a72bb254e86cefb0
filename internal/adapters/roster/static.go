// Package roster provides the two-person roster adapter. The pair is fixed
// per deployment and comes from configuration, not from the data store.
package roster

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pairlog/checkin/internal/core/domain"
	"github.com/pairlog/checkin/internal/core/ports"
)

type staticRoster struct {
	first  uuid.UUID
	second uuid.UUID
}

// NewStatic builds a roster for exactly two distinct participants.
func NewStatic(first, second uuid.UUID) (ports.Roster, error) {
	if first == second {
		return nil, fmt.Errorf("%w: roster participants must be distinct", domain.ErrInvalidInput)
	}
	return &staticRoster{first: first, second: second}, nil
}

func (r *staticRoster) Partner(userID uuid.UUID) (uuid.UUID, error) {
	switch userID {
	case r.first:
		return r.second, nil
	case r.second:
		return r.first, nil
	}
	return uuid.Nil, fmt.Errorf("%w: user is not part of this deployment's roster", domain.ErrUnauthorized)
}
