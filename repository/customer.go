package repository

import (
	"context"
	"court_manager/model"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerRepositoryImpl struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepositoryImpl {
	return &CustomerRepositoryImpl{db: db}
}

func (r *CustomerRepositoryImpl) FindAll(ctx context.Context) ([]model.Customer, error) {
	var out []model.Customer
	if err := r.db.WithContext(ctx).Where("deleted = ?", false).Order("id ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return out, nil
}

func (r *CustomerRepositoryImpl) FindByID(ctx context.Context, id uint) (*model.Customer, error) {
	return r.find(r.db.WithContext(ctx).Where("id = ? AND deleted = ?", id, false))
}

func (r *CustomerRepositoryImpl) FindByPhoneNumber(ctx context.Context, phone string) (*model.Customer, error) {
	return r.find(r.db.WithContext(ctx).Where("phone_number = ? AND deleted = ?", phone, false))
}

func (r *CustomerRepositoryImpl) find(q *gorm.DB) (*model.Customer, error) {
	var c model.Customer
	if err := q.Take(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &c, nil
}

// FirstOrCreateByPhone inserts with ON CONFLICT DO NOTHING against the partial
// unique index on active phone numbers, then reads the winner back.
func (r *CustomerRepositoryImpl) FirstOrCreateByPhone(ctx context.Context, customer model.Customer) (*model.Customer, error) {
	existing, err := r.FindByPhoneNumber(ctx, customer.PhoneNumber)
	if err != nil || existing != nil {
		return existing, err
	}

	customer.ID = 0
	customer.Deleted = false
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:     []clause.Column{{Name: "phone_number"}},
		TargetWhere: clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: "deleted = false"}}},
		DoNothing:   true,
	}).Create(&customer)
	if res.Error != nil && !errors.Is(res.Error, gorm.ErrDuplicatedKey) {
		return nil, fmt.Errorf("failed to create customer: %w", res.Error)
	}
	if res.Error == nil && res.RowsAffected == 1 && customer.ID != 0 {
		return &customer, nil
	}

	// lost the race to a concurrent insert
	existing, err = r.FindByPhoneNumber(ctx, customer.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("phone %s: %w", customer.PhoneNumber, ErrCustomerConflict)
	}
	return existing, nil
}

func (r *CustomerRepositoryImpl) Save(ctx context.Context, c *model.Customer) error {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return fmt.Errorf("failed to save customer: %w", err)
	}
	return nil
}
