package service

import (
	"context"
	"errors"

	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrCredentialEmailExists is returned when a login credential already exists
// for the doctor's email.
var ErrCredentialEmailExists = errors.New("email already exists in login details")

// CredentialService isolates login credential handling. The legacy system
// copied doctor passwords verbatim into login_details; here they are bcrypt
// hashed before storage and never persisted on the doctor row.
type CredentialService interface {
	ProvisionDoctor(ctx context.Context, tx *gorm.DB, doctor *entity.Doctor) error
}

type credentialService struct {
	log       *logrus.Logger
	loginRepo repository.LoginDetailRepository
}

func NewCredentialService(log *logrus.Logger, loginRepo repository.LoginDetailRepository) CredentialService {
	return &credentialService{
		log:       log,
		loginRepo: loginRepo,
	}
}

// ProvisionDoctor creates exactly one credential row for a newly created
// doctor, keyed by email with role defaulted to DOCTOR. Doctors without both
// email and password get no credential. An existing credential for the email
// fails the whole creation.
func (s *credentialService) ProvisionDoctor(ctx context.Context, tx *gorm.DB, doctor *entity.Doctor) error {
	if doctor.Email == "" || doctor.Password == "" {
		return nil
	}

	exists, err := s.loginRepo.ExistsByEmail(ctx, tx, doctor.Email)
	if err != nil {
		s.log.Warnf("Failed to check login details: %+v", err)
		return err
	}
	if exists {
		return ErrCredentialEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(doctor.Password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Warnf("Failed to hash password: %+v", err)
		return err
	}

	role := doctor.Role
	if role == "" {
		role = entity.LoginRoleDoctor
	}

	detail := &entity.LoginDetail{
		Email:    doctor.Email,
		Password: string(hashedPassword),
		Role:     role,
	}

	if err := s.loginRepo.Create(ctx, tx, detail); err != nil {
		s.log.Warnf("Failed to create login details: %+v", err)
		return err
	}

	return nil
}
