package repository

import (
	"context"

	"go-hospital-management/internal/domain/entity"
	domainRepo "go-hospital-management/internal/domain/repository"

	"gorm.io/gorm"
)

type loginDetailRepository struct{}

func NewLoginDetailRepository() domainRepo.LoginDetailRepository {
	return &loginDetailRepository{}
}

func (r *loginDetailRepository) Create(ctx context.Context, db *gorm.DB, detail *entity.LoginDetail) error {
	return db.WithContext(ctx).Create(detail).Error
}

func (r *loginDetailRepository) ExistsByEmail(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.LoginDetail{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
