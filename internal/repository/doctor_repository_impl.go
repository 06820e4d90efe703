package repository

import (
	"context"
	"errors"

	"go-hospital-management/internal/domain/entity"
	domainRepo "go-hospital-management/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error {
	return db.WithContext(ctx).Create(doctor).Error
}

func (r *doctorRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.WithContext(ctx).Order("doctor_id ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.WithContext(ctx).Where("doctor_id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) Update(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error {
	return db.WithContext(ctx).Save(doctor).Error
}

func (r *doctorRepository) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	result := db.WithContext(ctx).Where("doctor_id = ?", id).Delete(&entity.Doctor{})
	return result.RowsAffected, result.Error
}

func (r *doctorRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Doctor{}).Count(&count).Error
	return count, err
}

func (r *doctorRepository) ExistsByEmail(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	return r.exists(ctx, db, "email = ?", email)
}

func (r *doctorRepository) ExistsByPhone(ctx context.Context, db *gorm.DB, phone string) (bool, error) {
	return r.exists(ctx, db, "phone = ?", phone)
}

func (r *doctorRepository) ExistsByLicenseNo(ctx context.Context, db *gorm.DB, licenseNo string) (bool, error) {
	return r.exists(ctx, db, "medical_license_no = ?", licenseNo)
}

func (r *doctorRepository) exists(ctx context.Context, db *gorm.DB, query string, arg interface{}) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Doctor{}).Where(query, arg).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *doctorRepository) FindByStatus(ctx context.Context, db *gorm.DB, status string) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.WithContext(ctx).Where("status = ?", status).Order("doctor_id ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindBySpecialization(ctx context.Context, db *gorm.DB, specialization string) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.WithContext(ctx).Where("specialization = ?", specialization).Order("doctor_id ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}
