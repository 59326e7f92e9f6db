package service

import (
	"context"
	"court_manager/helper"
	"court_manager/model"
	"court_manager/repository"

	"go.uber.org/zap"
)

type CourtService struct {
	courts       repository.CourtRepository
	surfaceTypes repository.SurfaceTypeRepository
	log          *zap.Logger
}

func NewCourtService(courts repository.CourtRepository, surfaceTypes repository.SurfaceTypeRepository, log *zap.Logger) *CourtService {
	return &CourtService{courts: courts, surfaceTypes: surfaceTypes, log: log}
}

func (s *CourtService) List(ctx context.Context) ([]model.Court, error) {
	return s.courts.FindAll(ctx)
}

func (s *CourtService) Get(ctx context.Context, id uint) (*model.Court, error) {
	return s.courts.FindByID(ctx, id)
}

func (s *CourtService) GetBySlug(ctx context.Context, slug string) (*model.Court, error) {
	return s.courts.FindBySlug(ctx, slug)
}

func (s *CourtService) Create(ctx context.Context, in model.Court) (*model.Court, error) {
	if err := s.checkSurfaceType(ctx, in.SurfaceTypeId); err != nil {
		return nil, err
	}
	slug, err := helper.GenerateUniqueCourtSlug(ctx, s.courts, in.Name, 0)
	if err != nil {
		return nil, err
	}

	court := &model.Court{Name: in.Name, Slug: slug, SurfaceTypeId: in.SurfaceTypeId}
	if err := s.courts.Save(ctx, court); err != nil {
		return nil, err
	}
	s.log.Info("court created", zap.Uint("id", court.ID), zap.String("slug", court.Slug))
	return court, nil
}

// Update changes name and surface type; the slug follows the name.
func (s *CourtService) Update(ctx context.Context, id uint, in model.Court) (*model.Court, error) {
	existing, err := s.courts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrCourtMissing
	}
	if err := s.checkSurfaceType(ctx, in.SurfaceTypeId); err != nil {
		return nil, err
	}

	if in.Name != existing.Name || existing.Slug == "" {
		slug, err := helper.GenerateUniqueCourtSlug(ctx, s.courts, in.Name, existing.ID)
		if err != nil {
			return nil, err
		}
		existing.Slug = slug
	}
	existing.Name = in.Name
	existing.SurfaceTypeId = in.SurfaceTypeId

	if err := s.courts.Save(ctx, existing); err != nil {
		return nil, err
	}
	s.log.Info("court updated", zap.Uint("id", existing.ID))
	return existing, nil
}

func (s *CourtService) Delete(ctx context.Context, id uint) error {
	return s.courts.SoftDelete(ctx, id)
}

func (s *CourtService) checkSurfaceType(ctx context.Context, id uint) error {
	surface, err := s.surfaceTypes.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if surface == nil {
		return ErrSurfaceTypeNotFound
	}
	return nil
}
