package model

type Court struct {
	DTO
	Name          string `gorm:"not null" json:"name"`
	Slug          string `gorm:"index" json:"slug"`
	SurfaceTypeId uint   `gorm:"not null;index" json:"surfaceTypeId"`
}

type CourtInput struct {
	Name          string `json:"name" validate:"required"`
	SurfaceTypeId uint   `json:"surfaceTypeId" validate:"required"`
}
