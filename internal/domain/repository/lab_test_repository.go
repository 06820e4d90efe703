package repository

import (
	"context"

	"go-hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

type LabTestRepository interface {
	Create(ctx context.Context, db *gorm.DB, test *entity.LabTest) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.LabTest, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.LabTest, error)
	Update(ctx context.Context, db *gorm.DB, test *entity.LabTest) error
	Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error)
}
