package model

type Customer struct {
	DTO
	Name        string `json:"name"`
	PhoneNumber string `gorm:"not null;uniqueIndex:idx_customers_phone_active,where:deleted = false" json:"phoneNumber"`
}

type Customers []Customer

// NewCustomerInput identifies the booking customer by phone; unknown phones create a customer.
type NewCustomerInput struct {
	Name        string `json:"name" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

// CustomerRefInput points an edited reservation at an existing customer.
type CustomerRefInput struct {
	Id uint `json:"id" validate:"required"`
}
