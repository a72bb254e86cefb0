package domain

import "github.com/google/uuid"

// Capability identifies an authenticated caller and whether it holds the
// elevated right to mutate the question schedule. It is minted by the auth
// middleware from verified token claims; services never derive elevation
// from an identity comparison of their own.
type Capability struct {
	UserID   uuid.UUID
	Elevated bool
}
