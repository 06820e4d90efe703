package repository

import (
	"context"
	"errors"

	"go-hospital-management/internal/domain/entity"
	domainRepo "go-hospital-management/internal/domain/repository"

	"gorm.io/gorm"
)

type labReportRepository struct{}

func NewLabReportRepository() domainRepo.LabReportRepository {
	return &labReportRepository{}
}

func (r *labReportRepository) Create(ctx context.Context, db *gorm.DB, report *entity.LabReport) error {
	return db.WithContext(ctx).Create(report).Error
}

func (r *labReportRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.LabReport, error) {
	var report entity.LabReport
	err := db.WithContext(ctx).Where("report_id = ?", id).First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}

func (r *labReportRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID int64) ([]entity.LabReport, error) {
	var reports []entity.LabReport
	err := db.WithContext(ctx).Preload("Test").Where("patient_id = ?", patientID).Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *labReportRepository) Update(ctx context.Context, db *gorm.DB, report *entity.LabReport) error {
	return db.WithContext(ctx).Save(report).Error
}

func (r *labReportRepository) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	result := db.WithContext(ctx).Where("report_id = ?", id).Delete(&entity.LabReport{})
	return result.RowsAffected, result.Error
}
