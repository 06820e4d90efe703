package repository

import (
	"context"
	"errors"

	"go-hospital-management/internal/domain/entity"
	domainRepo "go-hospital-management/internal/domain/repository"

	"gorm.io/gorm"
)

type labTestRepository struct{}

func NewLabTestRepository() domainRepo.LabTestRepository {
	return &labTestRepository{}
}

func (r *labTestRepository) Create(ctx context.Context, db *gorm.DB, test *entity.LabTest) error {
	return db.WithContext(ctx).Create(test).Error
}

func (r *labTestRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.LabTest, error) {
	var tests []entity.LabTest
	err := db.WithContext(ctx).Preload("Category").Order("test_id ASC").Find(&tests).Error
	if err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *labTestRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.LabTest, error) {
	var test entity.LabTest
	err := db.WithContext(ctx).Preload("Category").Where("test_id = ?", id).First(&test).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &test, nil
}

func (r *labTestRepository) Update(ctx context.Context, db *gorm.DB, test *entity.LabTest) error {
	return db.WithContext(ctx).Save(test).Error
}

func (r *labTestRepository) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	result := db.WithContext(ctx).Where("test_id = ?", id).Delete(&entity.LabTest{})
	return result.RowsAffected, result.Error
}
