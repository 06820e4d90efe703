package repository

import (
	"context"

	"go-hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Doctor, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Doctor, error)
	Update(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error
	Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)

	ExistsByEmail(ctx context.Context, db *gorm.DB, email string) (bool, error)
	ExistsByPhone(ctx context.Context, db *gorm.DB, phone string) (bool, error)
	ExistsByLicenseNo(ctx context.Context, db *gorm.DB, licenseNo string) (bool, error)

	FindByStatus(ctx context.Context, db *gorm.DB, status string) ([]entity.Doctor, error)
	FindBySpecialization(ctx context.Context, db *gorm.DB, specialization string) ([]entity.Doctor, error)
}
