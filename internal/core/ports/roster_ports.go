package ports

import "github.com/google/uuid"

// Roster resolves the other participant of the two-person deployment. The
// pairing is an explicit external input, not an assumption baked into the
// reveal logic.
type Roster interface {
	Partner(userID uuid.UUID) (uuid.UUID, error)
}
