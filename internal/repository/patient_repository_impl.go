package repository

import (
	"context"
	"errors"

	"go-hospital-management/internal/domain/entity"
	domainRepo "go-hospital-management/internal/domain/repository"

	"gorm.io/gorm"
)

// Appointment dates are stored as DD-MON-YY upper-case text, so every date
// comparison normalizes both sides through TO_DATE.
const (
	filterByDateSQL = `
		SELECT p.* FROM patients p
		WHERE TO_DATE(p.appointment_date, 'DD-MON-YY') = TO_DATE(@fromDate, 'YYYY-MM-DD')
		  AND (@doctorStatus = '' OR LOWER(@doctorStatus) = 'all'
		       OR LOWER(p.doctor_status) = LOWER(@doctorStatus))
		  AND (@medisionStatus = '' OR LOWER(@medisionStatus) = 'all'
		       OR LOWER(p.medision_status) = LOWER(@medisionStatus))
		  AND (@doctorId = 0 OR p.doctor_id = @doctorId)
		ORDER BY p.appointment_time ASC`

	onDateSQL = `
		SELECT p.* FROM patients p
		WHERE TO_DATE(p.appointment_date, 'DD-MON-YY') = TO_DATE(@date, 'YYYY-MM-DD')
		ORDER BY p.appointment_time ASC`

	onDateByDoctorStatusSQL = `
		SELECT p.* FROM patients p
		WHERE TO_DATE(p.appointment_date, 'DD-MON-YY') = TO_DATE(@date, 'YYYY-MM-DD')
		  AND LOWER(p.doctor_status) = LOWER(@status)
		ORDER BY p.appointment_time ASC`

	fullDetailsSQL = `
		SELECT
			p.patient_id, p.name, p.gender, p.disease, p.phone, p.address,
			p.doctor_status, p.medision_status, p.lab_status,
			b.booking_id, b.bed_id, b.admission_date, b.discharge_date, b.status AS bed_status,
			w.ward_id, w.ward_name, w.ward_type, w.total_beds, w.created_on
		FROM patients p
		LEFT JOIN LATERAL (
			SELECT * FROM bed_booking bb
			WHERE bb.patient_id = p.patient_id
			ORDER BY bb.booking_id DESC
			LIMIT 1
		) b ON true
		LEFT JOIN ward_master w ON b.ward_id = w.ward_id
		WHERE p.patient_id = @patientId`
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).Order("patient_id ASC").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Where("patient_id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Save(patient).Error
}

func (r *patientRepository) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	result := db.WithContext(ctx).Where("patient_id = ?", id).Delete(&entity.Patient{})
	return result.RowsAffected, result.Error
}

func (r *patientRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Patient{}).Count(&count).Error
	return count, err
}

func (r *patientRepository) FindByMedisionStatus(ctx context.Context, db *gorm.DB, status string) ([]entity.Patient, error) {
	return r.findByStatusColumn(ctx, db, "medision_status", status)
}

func (r *patientRepository) FindByDoctorStatus(ctx context.Context, db *gorm.DB, status string) ([]entity.Patient, error) {
	return r.findByStatusColumn(ctx, db, "doctor_status", status)
}

func (r *patientRepository) FindByLabStatus(ctx context.Context, db *gorm.DB, status string) ([]entity.Patient, error) {
	return r.findByStatusColumn(ctx, db, "lab_status", status)
}

func (r *patientRepository) findByStatusColumn(ctx context.Context, db *gorm.DB, column, status string) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).
		Where("LOWER("+column+") = LOWER(?)", status).
		Order("patient_id ASC").
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FilterByDateStatusDoctor(ctx context.Context, db *gorm.DB, fromDate, medisionStatus, doctorStatus string, doctorID int64) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).Raw(filterByDateSQL, map[string]interface{}{
		"fromDate":       fromDate,
		"medisionStatus": medisionStatus,
		"doctorStatus":   doctorStatus,
		"doctorId":       doctorID,
	}).Scan(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindAllOnDate(ctx context.Context, db *gorm.DB, date string) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).Raw(onDateSQL, map[string]interface{}{
		"date": date,
	}).Scan(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindOnDateByDoctorStatus(ctx context.Context, db *gorm.DB, date, doctorStatus string) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).Raw(onDateByDoctorStatusSQL, map[string]interface{}{
		"date":   date,
		"status": doctorStatus,
	}).Scan(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FullDetails(ctx context.Context, db *gorm.DB, patientID int64) (*entity.PatientFullDetailsRow, error) {
	var row entity.PatientFullDetailsRow
	result := db.WithContext(ctx).Raw(fullDetailsSQL, map[string]interface{}{
		"patientId": patientID,
	}).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}
