package usecase

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors returned by the services. Handlers map these onto
// HTTP status codes; everything else surfaces as an internal error.
var (
	ErrUnauthenticated         = errors.New("caller is not authenticated")
	ErrForbidden               = errors.New("caller is not allowed to perform this action")
	ErrNotFound                = errors.New("resource not found")
	ErrInvalidProfitPercentage = errors.New("profit percentage must be between 0 and 100")
	ErrInvalidDateRange        = errors.New("end date must not be before start date")
	ErrInvalidServiceReference = errors.New("booking must reference exactly one service")
)

// StorageError wraps a repository failure with the operation that hit
// it. It unwraps to the underlying error.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// Caller identifies the authenticated user behind a request. A zero
// ID means the request carried no valid session.
type Caller struct {
	ID      uuid.UUID
	IsStaff bool
}

func (c Caller) Authenticated() bool {
	return c.ID != uuid.Nil
}
