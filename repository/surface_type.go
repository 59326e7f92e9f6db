package repository

import (
	"context"
	"court_manager/model"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type SurfaceTypeRepositoryImpl struct {
	db *gorm.DB
}

func NewSurfaceTypeRepository(db *gorm.DB) *SurfaceTypeRepositoryImpl {
	return &SurfaceTypeRepositoryImpl{db: db}
}

func (r *SurfaceTypeRepositoryImpl) FindAll(ctx context.Context) ([]model.SurfaceType, error) {
	var out []model.SurfaceType
	if err := r.db.WithContext(ctx).Where("deleted = ?", false).Order("id ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list surface types: %w", err)
	}
	return out, nil
}

func (r *SurfaceTypeRepositoryImpl) FindByID(ctx context.Context, id uint) (*model.SurfaceType, error) {
	return r.find(r.db.WithContext(ctx).Where("id = ? AND deleted = ?", id, false))
}

func (r *SurfaceTypeRepositoryImpl) FindAnyByID(ctx context.Context, id uint) (*model.SurfaceType, error) {
	return r.find(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *SurfaceTypeRepositoryImpl) find(q *gorm.DB) (*model.SurfaceType, error) {
	var s model.SurfaceType
	if err := q.Take(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get surface type: %w", err)
	}
	return &s, nil
}

func (r *SurfaceTypeRepositoryImpl) Save(ctx context.Context, s *model.SurfaceType) error {
	if err := r.db.WithContext(ctx).Save(s).Error; err != nil {
		return fmt.Errorf("failed to save surface type: %w", err)
	}
	return nil
}

func (r *SurfaceTypeRepositoryImpl) SoftDelete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Model(&model.SurfaceType{}).
		Where("id = ? AND deleted = ?", id, false).
		Update("deleted", true).Error
	if err != nil {
		return fmt.Errorf("failed to delete surface type %d: %w", id, err)
	}
	return nil
}
