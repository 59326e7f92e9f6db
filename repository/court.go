package repository

import (
	"context"
	"court_manager/model"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type CourtRepositoryImpl struct {
	db *gorm.DB
}

func NewCourtRepository(db *gorm.DB) *CourtRepositoryImpl {
	return &CourtRepositoryImpl{db: db}
}

func (r *CourtRepositoryImpl) FindAll(ctx context.Context) ([]model.Court, error) {
	var out []model.Court
	if err := r.db.WithContext(ctx).Where("deleted = ?", false).Order("id ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list courts: %w", err)
	}
	return out, nil
}

func (r *CourtRepositoryImpl) FindByID(ctx context.Context, id uint) (*model.Court, error) {
	return r.find(r.db.WithContext(ctx).Where("id = ? AND deleted = ?", id, false))
}

func (r *CourtRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*model.Court, error) {
	return r.find(r.db.WithContext(ctx).Where("slug = ? AND deleted = ?", slug, false))
}

func (r *CourtRepositoryImpl) find(q *gorm.DB) (*model.Court, error) {
	var c model.Court
	if err := q.Take(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get court: %w", err)
	}
	return &c, nil
}

// SlugExists checks deleted courts too, so a retired court's slug is never reused.
func (r *CourtRepositoryImpl) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	q := r.db.WithContext(ctx).Model(&model.Court{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check court slug: %w", err)
	}
	return count > 0, nil
}

func (r *CourtRepositoryImpl) Save(ctx context.Context, c *model.Court) error {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return fmt.Errorf("failed to save court: %w", err)
	}
	return nil
}

func (r *CourtRepositoryImpl) SoftDelete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Model(&model.Court{}).
		Where("id = ? AND deleted = ?", id, false).
		Update("deleted", true).Error
	if err != nil {
		return fmt.Errorf("failed to delete court %d: %w", id, err)
	}
	return nil
}
