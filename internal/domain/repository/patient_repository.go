package repository

import (
	"context"

	"go-hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

// PatientRepository covers patient persistence. Methods take the database
// handle so callers can pass either the pooled connection or an open
// transaction. Date parameters use the YYYY-MM-DD input format; the stored
// appointment_date column is DD-MON-YY text and is normalized in SQL.
type PatientRepository interface {
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Patient, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Patient, error)
	Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)

	FindByMedisionStatus(ctx context.Context, db *gorm.DB, status string) ([]entity.Patient, error)
	FindByDoctorStatus(ctx context.Context, db *gorm.DB, status string) ([]entity.Patient, error)
	FindByLabStatus(ctx context.Context, db *gorm.DB, status string) ([]entity.Patient, error)

	FilterByDateStatusDoctor(ctx context.Context, db *gorm.DB, fromDate, medisionStatus, doctorStatus string, doctorID int64) ([]entity.Patient, error)
	FindAllOnDate(ctx context.Context, db *gorm.DB, date string) ([]entity.Patient, error)
	FindOnDateByDoctorStatus(ctx context.Context, db *gorm.DB, date, doctorStatus string) ([]entity.Patient, error)

	FullDetails(ctx context.Context, db *gorm.DB, patientID int64) (*entity.PatientFullDetailsRow, error)
}
