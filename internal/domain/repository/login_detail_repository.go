package repository

import (
	"context"

	"go-hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

type LoginDetailRepository interface {
	Create(ctx context.Context, db *gorm.DB, detail *entity.LoginDetail) error
	ExistsByEmail(ctx context.Context, db *gorm.DB, email string) (bool, error)
}
