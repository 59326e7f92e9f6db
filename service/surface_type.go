package service

import (
	"context"
	"court_manager/model"
	"court_manager/repository"

	"go.uber.org/zap"
)

type SurfaceTypeService struct {
	surfaceTypes repository.SurfaceTypeRepository
	log          *zap.Logger
}

func NewSurfaceTypeService(surfaceTypes repository.SurfaceTypeRepository, log *zap.Logger) *SurfaceTypeService {
	return &SurfaceTypeService{surfaceTypes: surfaceTypes, log: log}
}

func (s *SurfaceTypeService) List(ctx context.Context) ([]model.SurfaceType, error) {
	return s.surfaceTypes.FindAll(ctx)
}

func (s *SurfaceTypeService) Get(ctx context.Context, id uint) (*model.SurfaceType, error) {
	return s.surfaceTypes.FindByID(ctx, id)
}

func (s *SurfaceTypeService) Create(ctx context.Context, in model.SurfaceType) (*model.SurfaceType, error) {
	surface := &model.SurfaceType{Name: in.Name, PricePerMinute: in.PricePerMinute}
	if err := s.surfaceTypes.Save(ctx, surface); err != nil {
		return nil, err
	}
	s.log.Info("surface type created", zap.Uint("id", surface.ID), zap.String("name", surface.Name))
	return surface, nil
}

// Delete is a no-op for missing or already deleted ids.
func (s *SurfaceTypeService) Delete(ctx context.Context, id uint) error {
	return s.surfaceTypes.SoftDelete(ctx, id)
}
