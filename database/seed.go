package database

import (
	"court_manager/model"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedData inserts the default surfaces and courts. Rows are matched by name,
// so running it twice does not duplicate anything.
func SeedData(db *gorm.DB, log *zap.Logger) {
	surfaceTypes := []model.SurfaceType{
		{Name: "Clay", PricePerMinute: decimal.NewFromInt(15)},
		{Name: "Grass", PricePerMinute: decimal.NewFromInt(10)},
	}
	ids := map[string]uint{}
	for _, surfaceType := range surfaceTypes {
		if err := db.Where("name = ? AND deleted = ?", surfaceType.Name, false).
			Attrs(model.SurfaceType{PricePerMinute: surfaceType.PricePerMinute}).
			FirstOrCreate(&surfaceType).Error; err != nil {
			log.Warn("failed to seed surface type", zap.String("name", surfaceType.Name), zap.Error(err))
			continue
		}
		ids[surfaceType.Name] = surfaceType.ID
	}

	courts := []struct {
		name    string
		surface string
	}{
		{"Court 1", "Clay"},
		{"Court 2", "Clay"},
		{"Court 3", "Grass"},
		{"Court 4", "Grass"},
	}
	for _, c := range courts {
		surfaceTypeId, ok := ids[c.surface]
		if !ok {
			continue
		}
		court := model.Court{Name: c.name}
		if err := db.Where("name = ? AND deleted = ?", c.name, false).
			Attrs(model.Court{Slug: slug.Make(c.name), SurfaceTypeId: surfaceTypeId}).
			FirstOrCreate(&court).Error; err != nil {
			log.Warn("failed to seed court", zap.String("name", c.name), zap.Error(err))
		}
	}
	log.Info("Seed data ensured", zap.Int("surfaceTypes", len(ids)), zap.Int("courts", len(courts)))
}
