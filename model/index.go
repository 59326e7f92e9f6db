package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// prices and rates go over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// DTO carries the columns every entity shares. Deleted is an explicit status
// column; reads filter on it themselves instead of relying on gorm scopes.
type DTO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Deleted   bool      `gorm:"not null;default:false;index" json:"deleted"`
}
