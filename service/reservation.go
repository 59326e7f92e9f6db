package service

import (
	"context"
	"court_manager/constants"
	"court_manager/helper"
	"court_manager/model"
	"court_manager/notify"
	"court_manager/repository"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ReservationService admits, prices and retires reservations. Admission is
// serialized per court in-process; the store re-checks the overlap inside
// its write transaction.
type ReservationService struct {
	reservations repository.ReservationRepository
	courts       repository.CourtRepository
	customers    repository.CustomerRepository
	surfaceTypes repository.SurfaceTypeRepository
	publisher    notify.Publisher
	log          *zap.Logger
	locks        *courtLocks
	now          func() time.Time
}

func NewReservationService(
	reservations repository.ReservationRepository,
	courts repository.CourtRepository,
	customers repository.CustomerRepository,
	surfaceTypes repository.SurfaceTypeRepository,
	publisher notify.Publisher,
	log *zap.Logger,
) *ReservationService {
	if publisher == nil {
		publisher = notify.NopBroker{}
	}
	return &ReservationService{
		reservations: reservations,
		courts:       courts,
		customers:    customers,
		surfaceTypes: surfaceTypes,
		publisher:    publisher,
		log:          log,
		locks:        newCourtLocks(),
		now:          time.Now,
	}
}

func (s *ReservationService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *ReservationService) List(ctx context.Context) ([]model.Reservation, error) {
	return s.reservations.FindAll(ctx)
}

func (s *ReservationService) Get(ctx context.Context, id uint) (*model.Reservation, error) {
	return s.reservations.FindByID(ctx, id)
}

func (s *ReservationService) ListByCourt(ctx context.Context, courtID uint) ([]model.Reservation, error) {
	return s.reservations.FindByCourtID(ctx, courtID)
}

func (s *ReservationService) ListByPhone(ctx context.Context, phone string, futureOnly bool) ([]model.Reservation, error) {
	return s.reservations.FindByPhoneNumber(ctx, phone, futureOnly, s.now().UTC())
}

// Create admits a new reservation. The customer is resolved by phone number
// and inserted on first sight.
func (s *ReservationService) Create(ctx context.Context, candidate model.Reservation) (*model.Reservation, error) {
	start, end := candidate.StartTime.UTC(), candidate.EndTime.UTC()

	court, err := s.courts.FindByID(ctx, candidate.CourtId)
	if err != nil {
		return nil, err
	}
	if court == nil {
		return nil, ErrCourtNotFound
	}
	if !start.Before(end) {
		return nil, ErrInvalidTimeRange
	}

	unlock := s.locks.lock(court.ID)
	defer unlock()

	overlap, err := s.reservations.IsOverlapping(ctx, court.ID, start, end, 0)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, ErrReservationOverlap
	}

	customer, err := s.customers.FirstOrCreateByPhone(ctx, model.Customer{
		Name:        candidate.Customer.Name,
		PhoneNumber: candidate.Customer.PhoneNumber,
	})
	if err != nil {
		if errors.Is(err, repository.ErrCustomerConflict) {
			return nil, fmt.Errorf("%w: %v", ErrCustomerConflict, err)
		}
		return nil, err
	}

	price, err := s.price(ctx, court, start, end, candidate.Doubles)
	if err != nil {
		return nil, err
	}

	res := &model.Reservation{
		CourtId:    court.ID,
		CustomerId: customer.ID,
		Customer:   *customer,
		StartTime:  start,
		EndTime:    end,
		Doubles:    candidate.Doubles,
		Price:      price,
	}
	res.CreatedAt = s.now().UTC()

	if err := s.save(ctx, res); err != nil {
		return nil, err
	}

	s.log.Info("reservation created",
		zap.Uint("id", res.ID),
		zap.Uint("courtId", res.CourtId),
		zap.Uint("customerId", res.CustomerId),
		zap.String("price", res.Price.String()),
	)
	s.publish(ctx, constants.EVENT_RESERVATION_CREATED, res.CourtId, res)
	return res, nil
}

// Update re-admits reservation id with the candidate's court, customer and
// time range. The reservation does not conflict with its own current slot.
func (s *ReservationService) Update(ctx context.Context, id uint, candidate model.Reservation) (*model.Reservation, error) {
	start, end := candidate.StartTime.UTC(), candidate.EndTime.UTC()

	existing, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrReservationNotFound
	}
	if !start.Before(end) {
		return nil, ErrInvalidTimeRange
	}

	unlock := s.locks.lock(candidate.CourtId)
	defer unlock()

	overlap, err := s.reservations.IsOverlapping(ctx, candidate.CourtId, start, end, existing.ID)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, ErrReservationOverlap
	}

	court, err := s.courts.FindByID(ctx, candidate.CourtId)
	if err != nil {
		return nil, err
	}
	if court == nil {
		return nil, ErrCourtNotFound
	}

	customer, err := s.customers.FindByID(ctx, candidate.CustomerId)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	price, err := s.price(ctx, court, start, end, candidate.Doubles)
	if err != nil {
		return nil, err
	}

	previousCourt := existing.CourtId
	existing.CourtId = court.ID
	existing.CustomerId = customer.ID
	existing.Customer = *customer
	existing.StartTime = start
	existing.EndTime = end
	existing.Doubles = candidate.Doubles
	existing.Price = price

	if err := s.save(ctx, existing); err != nil {
		return nil, err
	}

	s.log.Info("reservation updated", zap.Uint("id", existing.ID), zap.Uint("courtId", existing.CourtId))
	s.publish(ctx, constants.EVENT_RESERVATION_UPDATED, existing.CourtId, existing)
	if previousCourt != existing.CourtId {
		s.publish(ctx, constants.EVENT_RESERVATION_UPDATED, previousCourt, existing)
	}
	return existing, nil
}

// Delete soft-deletes the reservation; missing or already deleted ids are a no-op.
func (s *ReservationService) Delete(ctx context.Context, id uint) error {
	existing, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.reservations.SoftDelete(ctx, id); err != nil {
		return err
	}
	if existing != nil {
		existing.Deleted = true
		s.log.Info("reservation deleted", zap.Uint("id", id), zap.Uint("courtId", existing.CourtId))
		s.publish(ctx, constants.EVENT_RESERVATION_DELETED, existing.CourtId, existing)
	}
	return nil
}

// price uses the court's surface type even when that type was retired after
// the court was set up.
func (s *ReservationService) price(ctx context.Context, court *model.Court, start, end time.Time, doubles bool) (decimal.Decimal, error) {
	surface, err := s.surfaceTypes.FindAnyByID(ctx, court.SurfaceTypeId)
	if err != nil {
		return decimal.Zero, err
	}
	if surface == nil {
		return decimal.Zero, ErrSurfaceTypeNotFound
	}
	return helper.CalculatePrice(surface.PricePerMinute, start, end, doubles), nil
}

func (s *ReservationService) save(ctx context.Context, res *model.Reservation) error {
	err := s.reservations.SaveWithNoOverlap(ctx, res)
	if errors.Is(err, repository.ErrOverlap) {
		return ErrReservationOverlap
	}
	return err
}

func (s *ReservationService) publish(ctx context.Context, kind string, courtID uint, res *model.Reservation) {
	snapshot := *res
	event := model.ReservationEvent{
		Type:        kind,
		CourtId:     courtID,
		Reservation: &snapshot,
		OccurredAt:  s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("failed to publish reservation event",
			zap.String("type", kind),
			zap.Uint("courtId", courtID),
			zap.Error(err),
		)
	}
}
