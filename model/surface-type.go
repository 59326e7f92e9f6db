package model

import "github.com/shopspring/decimal"

type SurfaceType struct {
	DTO
	Name           string          `gorm:"not null" json:"name"` // Clay, Grass, Hard
	PricePerMinute decimal.Decimal `gorm:"type:numeric(38,2);not null" json:"pricePerMinute"`
}

type CreateSurfaceTypeInput struct {
	Name           string           `json:"name" validate:"required"`
	PricePerMinute *decimal.Decimal `json:"pricePerMinute" validate:"required"`
}
