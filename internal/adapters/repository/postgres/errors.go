package postgres

import (
	"errors"
	"fmt"
	"net"

	"github.com/lib/pq"
	"github.com/pairlog/checkin/internal/core/domain"
)

// storeErr classifies driver failures. Connection-class problems map to
// domain.ErrStoreUnavailable, the only error kind callers may retry.
func storeErr(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "08" {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
