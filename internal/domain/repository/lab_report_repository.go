package repository

import (
	"context"

	"go-hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

type LabReportRepository interface {
	Create(ctx context.Context, db *gorm.DB, report *entity.LabReport) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.LabReport, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID int64) ([]entity.LabReport, error)
	Update(ctx context.Context, db *gorm.DB, report *entity.LabReport) error
	Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error)
}
