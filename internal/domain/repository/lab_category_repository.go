package repository

import (
	"context"

	"go-hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

type LabCategoryRepository interface {
	Create(ctx context.Context, db *gorm.DB, category *entity.LabCategory) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.LabCategory, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.LabCategory, error)
	Update(ctx context.Context, db *gorm.DB, category *entity.LabCategory) error
	Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error)
}
