package worker

import "errors"

// Worker domain errors
var (
	ErrWorkerNotFound      = errors.New("worker not found")
	ErrWorkerAlreadyExists = errors.New("worker already exists for this staff member")
	ErrWorkerInactive      = errors.New("worker is inactive")
	ErrInvalidWageType     = errors.New("invalid wage type")
	ErrNoWageChanges       = errors.New("no wage changes provided")
)
