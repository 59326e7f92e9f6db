package repository

import (
	"context"
	"court_manager/model"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReservationRepositoryImpl struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepositoryImpl {
	return &ReservationRepositoryImpl{db: db}
}

func (r *ReservationRepositoryImpl) active(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.Reservation{}).
		Preload("Customer").
		Where("reservations.deleted = ?", false)
}

func (r *ReservationRepositoryImpl) FindAll(ctx context.Context) ([]model.Reservation, error) {
	var out []model.Reservation
	if err := r.active(ctx).Order("reservations.id ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return out, nil
}

func (r *ReservationRepositoryImpl) FindByID(ctx context.Context, id uint) (*model.Reservation, error) {
	var res model.Reservation
	if err := r.active(ctx).Where("reservations.id = ?", id).Take(&res).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get reservation %d: %w", id, err)
	}
	return &res, nil
}

func (r *ReservationRepositoryImpl) FindByCourtID(ctx context.Context, courtID uint) ([]model.Reservation, error) {
	var out []model.Reservation
	err := r.active(ctx).
		Where("reservations.court_id = ?", courtID).
		Order("reservations.created_at ASC, reservations.id ASC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations of court %d: %w", courtID, err)
	}
	return out, nil
}

func (r *ReservationRepositoryImpl) FindByPhoneNumber(ctx context.Context, phone string, futureOnly bool, now time.Time) ([]model.Reservation, error) {
	q := r.active(ctx).
		Joins("JOIN customers ON customers.id = reservations.customer_id").
		Where("customers.phone_number = ?", phone)
	if futureOnly {
		q = q.Where("reservations.start_time > ?", now)
	}
	var out []model.Reservation
	if err := q.Order("reservations.start_time ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations of phone %s: %w", phone, err)
	}
	return out, nil
}

func (r *ReservationRepositoryImpl) FindStartingBetween(ctx context.Context, from, to time.Time) ([]model.Reservation, error) {
	var out []model.Reservation
	err := r.active(ctx).
		Where("reservations.start_time >= ? AND reservations.start_time < ?", from, to).
		Order("reservations.court_id ASC, reservations.start_time ASC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations between %s and %s: %w", from, to, err)
	}
	return out, nil
}

func overlapping(q *gorm.DB, courtID uint, start, end time.Time, excludeID uint) *gorm.DB {
	q = q.Model(&model.Reservation{}).
		Where("deleted = ? AND court_id = ?", false, courtID).
		Where("start_time < ? AND end_time > ?", end, start) // half-open [start, end)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	return q
}

func (r *ReservationRepositoryImpl) IsOverlapping(ctx context.Context, courtID uint, start, end time.Time, excludeID uint) (bool, error) {
	var count int64
	if err := overlapping(r.db.WithContext(ctx), courtID, start, end, excludeID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check overlap on court %d: %w", courtID, err)
	}
	return count > 0, nil
}

// SaveWithNoOverlap inserts (ID == 0) or updates the reservation. On Postgres the
// court row is locked FOR UPDATE first, which serializes admissions per court
// across processes.
func (r *ReservationRepositoryImpl) SaveWithNoOverlap(ctx context.Context, res *model.Reservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "postgres" {
			var court model.Court
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Select("id").Where("id = ?", res.CourtId).Take(&court).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to lock court %d: %w", res.CourtId, err)
			}
		}

		var existing model.Reservation
		err := overlapping(tx, res.CourtId, res.StartTime, res.EndTime, res.ID).Select("id").Take(&existing).Error
		if err == nil {
			return ErrOverlap
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check overlap on court %d: %w", res.CourtId, err)
		}

		if res.ID == 0 {
			err = tx.Omit(clause.Associations).Create(res).Error
		} else {
			err = tx.Omit(clause.Associations).Save(res).Error
		}
		if err != nil {
			return fmt.Errorf("failed to save reservation: %w", err)
		}
		return nil
	})
}

func (r *ReservationRepositoryImpl) SoftDelete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Model(&model.Reservation{}).
		Where("id = ?", id).
		Update("deleted", true).Error
	if err != nil {
		return fmt.Errorf("failed to delete reservation %d: %w", id, err)
	}
	return nil
}
