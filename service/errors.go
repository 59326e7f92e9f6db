package service

import "errors"

var (
	ErrReference = errors.New("referenced entity does not exist")
	ErrNotFound  = errors.New("entity does not exist")

	ErrInvalidTimeRange   = errors.New("start time is not before end time")
	ErrReservationOverlap = errors.New("reservation time is overlapping with another reservation")
	ErrCustomerConflict   = errors.New("customer is being created concurrently")
)

// ReferenceError means an id carried by the input points at nothing.
type ReferenceError struct {
	Entity string
}

func (e *ReferenceError) Error() string { return e.Entity + " does not exist" }

func (e *ReferenceError) Unwrap() error { return ErrReference }

// NotFoundError means the entity being operated on is missing or deleted.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " does not exist" }

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

var (
	ErrCourtNotFound       error = &ReferenceError{Entity: "court"}
	ErrSurfaceTypeNotFound error = &ReferenceError{Entity: "surface type"}
	ErrCustomerNotFound    error = &ReferenceError{Entity: "customer"}

	ErrReservationNotFound error = &NotFoundError{Entity: "reservation"}
	ErrCourtMissing        error = &NotFoundError{Entity: "court"}
	ErrSurfaceTypeMissing  error = &NotFoundError{Entity: "surface type"}
)
