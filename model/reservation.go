package model

import (
	"court_manager/utils"
	"time"

	"github.com/shopspring/decimal"
)

type Reservation struct {
	DTO
	CourtId    uint            `gorm:"not null;index" json:"courtId"`
	CustomerId uint            `gorm:"not null;index" json:"-"`
	Customer   Customer        `gorm:"foreignKey:CustomerId;references:ID" json:"customer"`
	StartTime  time.Time       `gorm:"not null;index" json:"startTime"`
	EndTime    time.Time       `gorm:"not null" json:"endTime"`
	Doubles    bool            `gorm:"not null;default:false" json:"doubles"`
	Price      decimal.Decimal `gorm:"type:numeric(38,3);not null" json:"price"`
}

type CreateReservationInput struct {
	CourtId   uint              `json:"courtId" validate:"required"`
	Customer  *NewCustomerInput `json:"customer" validate:"required"`
	StartTime *utils.DateTime   `json:"startTime" validate:"required"`
	EndTime   *utils.DateTime   `json:"endTime" validate:"required"`
	Doubles   bool              `json:"doubles"`
}

type EditReservationInput struct {
	CourtId   uint              `json:"courtId" validate:"required"`
	Customer  *CustomerRefInput `json:"customer" validate:"required"`
	StartTime *utils.DateTime   `json:"startTime" validate:"required"`
	EndTime   *utils.DateTime   `json:"endTime" validate:"required"`
	Doubles   bool              `json:"doubles"`
}

type ReservationsByPhoneQuery struct {
	Phone      string `query:"phone" validate:"required"`
	FutureOnly bool   `query:"futureOnly"`
}

// ReservationEvent is published on the court channel after every admission change.
type ReservationEvent struct {
	Type        string       `json:"type"`
	CourtId     uint         `json:"courtId"`
	Reservation *Reservation `json:"reservation"`
	OccurredAt  time.Time    `json:"occurredAt"`
}

func (in CreateReservationInput) ToReservation() Reservation {
	return Reservation{
		CourtId:   in.CourtId,
		Customer:  Customer{Name: in.Customer.Name, PhoneNumber: in.Customer.PhoneNumber},
		StartTime: in.StartTime.Time,
		EndTime:   in.EndTime.Time,
		Doubles:   in.Doubles,
	}
}

func (in EditReservationInput) ToReservation() Reservation {
	return Reservation{
		CourtId:    in.CourtId,
		CustomerId: in.Customer.Id,
		Customer:   Customer{DTO: DTO{ID: in.Customer.Id}},
		StartTime:  in.StartTime.Time,
		EndTime:    in.EndTime.Time,
		Doubles:    in.Doubles,
	}
}
