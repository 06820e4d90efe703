package repository

import (
	"context"
	"errors"

	"go-hospital-management/internal/domain/entity"
	domainRepo "go-hospital-management/internal/domain/repository"

	"gorm.io/gorm"
)

type labCategoryRepository struct{}

func NewLabCategoryRepository() domainRepo.LabCategoryRepository {
	return &labCategoryRepository{}
}

func (r *labCategoryRepository) Create(ctx context.Context, db *gorm.DB, category *entity.LabCategory) error {
	return db.WithContext(ctx).Create(category).Error
}

func (r *labCategoryRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.LabCategory, error) {
	var categories []entity.LabCategory
	err := db.WithContext(ctx).Order("category_id ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *labCategoryRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.LabCategory, error) {
	var category entity.LabCategory
	err := db.WithContext(ctx).Where("category_id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *labCategoryRepository) Update(ctx context.Context, db *gorm.DB, category *entity.LabCategory) error {
	return db.WithContext(ctx).Save(category).Error
}

func (r *labCategoryRepository) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	result := db.WithContext(ctx).Where("category_id = ?", id).Delete(&entity.LabCategory{})
	return result.RowsAffected, result.Error
}
