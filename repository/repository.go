package repository

import (
	"context"
	"court_manager/model"
	"errors"
	"time"
)

var (
	// ErrOverlap is returned by SaveWithNoOverlap when the court is already booked.
	ErrOverlap = errors.New("reservation overlaps an existing reservation")
	// ErrCustomerConflict means the phone number's row could not be inserted or read back.
	ErrCustomerConflict = errors.New("customer phone number conflict")
)

// Find* methods return (nil, nil) when the row is missing or soft-deleted.

type SurfaceTypeRepository interface {
	FindAll(ctx context.Context) ([]model.SurfaceType, error)
	FindByID(ctx context.Context, id uint) (*model.SurfaceType, error)
	// FindAnyByID also returns soft-deleted rows; courts keep pricing after their surface is retired.
	FindAnyByID(ctx context.Context, id uint) (*model.SurfaceType, error)
	Save(ctx context.Context, surfaceType *model.SurfaceType) error
	SoftDelete(ctx context.Context, id uint) error
}

type CourtRepository interface {
	FindAll(ctx context.Context) ([]model.Court, error)
	FindByID(ctx context.Context, id uint) (*model.Court, error)
	FindBySlug(ctx context.Context, slug string) (*model.Court, error)
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
	Save(ctx context.Context, court *model.Court) error
	SoftDelete(ctx context.Context, id uint) error
}

type CustomerRepository interface {
	FindAll(ctx context.Context) ([]model.Customer, error)
	FindByID(ctx context.Context, id uint) (*model.Customer, error)
	FindByPhoneNumber(ctx context.Context, phone string) (*model.Customer, error)
	// FirstOrCreateByPhone returns the active customer with customer.PhoneNumber,
	// inserting customer when none exists. An existing customer's name is never updated.
	FirstOrCreateByPhone(ctx context.Context, customer model.Customer) (*model.Customer, error)
	Save(ctx context.Context, customer *model.Customer) error
}

type ReservationRepository interface {
	FindAll(ctx context.Context) ([]model.Reservation, error)
	FindByID(ctx context.Context, id uint) (*model.Reservation, error)
	// FindByCourtID orders by creation time ascending.
	FindByCourtID(ctx context.Context, courtID uint) ([]model.Reservation, error)
	// FindByPhoneNumber orders by start time ascending; futureOnly keeps start > now.
	FindByPhoneNumber(ctx context.Context, phone string, futureOnly bool, now time.Time) ([]model.Reservation, error)
	FindStartingBetween(ctx context.Context, from, to time.Time) ([]model.Reservation, error)
	// IsOverlapping reports whether an active reservation on courtID intersects [start, end).
	// excludeID (0 for none) is left out of the check.
	IsOverlapping(ctx context.Context, courtID uint, start, end time.Time, excludeID uint) (bool, error)
	// SaveWithNoOverlap re-checks the overlap and writes in one transaction.
	SaveWithNoOverlap(ctx context.Context, reservation *model.Reservation) error
	SoftDelete(ctx context.Context, id uint) error
}
