package usecase

import (
	"context"
	"errors"
	"strconv"

	"go-hospital-management/internal/converter"
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/internal/domain/repository"
	"go-hospital-management/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrDoctorEmailExists   = errors.New("Email already exists")
	ErrDoctorPhoneExists   = errors.New("Phone number already exists")
	ErrDoctorLicenseExists = errors.New("Medical license number already exists")
)

type DoctorUsecase interface {
	Create(ctx context.Context, req *dto.DoctorRequest) (*dto.DoctorResponse, error)
	GetAll(ctx context.Context) ([]dto.DoctorResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.DoctorResponse, error)
	Update(ctx context.Context, id int64, req *dto.DoctorRequest) (*dto.DoctorResponse, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	GetActive(ctx context.Context) ([]dto.DoctorResponse, error)
	GetBySpecialization(ctx context.Context, specialization string) ([]dto.DoctorResponse, error)
	ChangeStatus(ctx context.Context, id int64, status string) (*dto.DoctorResponse, error)
}

type doctorUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	doctorRepo        repository.DoctorRepository
	credentialService service.CredentialService
	auditService      service.AuditService
	countCache        *service.CountCache
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	credentialService service.CredentialService,
	auditService service.AuditService,
	countCache *service.CountCache,
) DoctorUsecase {
	return &doctorUsecase{
		db:                db,
		log:               log,
		doctorRepo:        doctorRepo,
		credentialService: credentialService,
		auditService:      auditService,
		countCache:        countCache,
	}
}

// Create persists a doctor and, when email and password are both present,
// provisions a login credential in the same transaction. Uniqueness is
// pre-checked for a precise message, but the store's constraint error stays
// authoritative for races.
func (u *doctorUsecase) Create(ctx context.Context, req *dto.DoctorRequest) (*dto.DoctorResponse, error) {
	if req.Email != "" {
		exists, err := u.doctorRepo.ExistsByEmail(ctx, u.db, req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrDoctorEmailExists
		}
	}
	if req.Phone != "" {
		exists, err := u.doctorRepo.ExistsByPhone(ctx, u.db, req.Phone)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrDoctorPhoneExists
		}
	}
	if req.MedicalLicenseNo != "" {
		exists, err := u.doctorRepo.ExistsByLicenseNo(ctx, u.db, req.MedicalLicenseNo)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrDoctorLicenseExists
		}
	}

	doctor := u.fromRequest(req)
	if doctor.Status == "" {
		doctor.Status = entity.DoctorStatusActive
	}
	doctor.Password = req.Password

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.doctorRepo.Create(ctx, tx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, u.translateDuplicate(err)
	}

	if err := u.credentialService.ProvisionDoctor(ctx, tx, doctor); err != nil {
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionDoctorCreate, "doctor", strconv.FormatInt(doctor.ID, 10), converter.DoctorToResponse(doctor)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, u.translateDuplicate(err)
	}

	u.countCache.Invalidate(ctx, service.DoctorCountKey)

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetAll(ctx context.Context) ([]dto.DoctorResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}
	return converter.DoctorsToResponses(doctors), nil
}

func (u *doctorUsecase) GetByID(ctx context.Context, id int64) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(doctor), nil
}

// Update overwrites all mutable fields. Uniqueness is re-validated only for
// values that differ from the stored record. Login credentials are never
// touched here.
func (u *doctorUsecase) Update(ctx context.Context, id int64, req *dto.DoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if req.Email != "" && req.Email != doctor.Email {
		exists, err := u.doctorRepo.ExistsByEmail(ctx, tx, req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrDoctorEmailExists
		}
	}
	if req.Phone != "" && req.Phone != doctor.Phone {
		exists, err := u.doctorRepo.ExistsByPhone(ctx, tx, req.Phone)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrDoctorPhoneExists
		}
	}
	if req.MedicalLicenseNo != "" && req.MedicalLicenseNo != doctor.MedicalLicenseNo {
		exists, err := u.doctorRepo.ExistsByLicenseNo(ctx, tx, req.MedicalLicenseNo)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrDoctorLicenseExists
		}
	}

	oldValue := converter.DoctorToResponse(doctor)

	doctor.DoctorName = req.DoctorName
	doctor.Specialization = req.Specialization
	doctor.Phone = req.Phone
	doctor.Email = req.Email
	doctor.MedicalLicenseNo = req.MedicalLicenseNo
	doctor.Experience = req.Experience
	doctor.Status = req.Status
	doctor.Address = req.Address
	doctor.DateOfBirth = req.DateOfBirth
	doctor.Gender = req.Gender
	doctor.City = req.City
	doctor.State = req.State
	doctor.PinCode = req.PinCode
	doctor.Country = req.Country
	doctor.Role = req.Role
	doctor.Image = req.Image

	if err := u.doctorRepo.Update(ctx, tx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, u.translateDuplicate(err)
	}

	newValue := converter.DoctorToResponse(doctor)
	if err := u.auditService.LogUpdate(ctx, tx, entity.AuditActionDoctorUpdate, "doctor", strconv.FormatInt(doctor.ID, 10), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, u.translateDuplicate(err)
	}

	return newValue, nil
}

func (u *doctorUsecase) Delete(ctx context.Context, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	oldValue := converter.DoctorToResponse(doctor)

	affected, err := u.doctorRepo.Delete(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrDoctorNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, entity.AuditActionDoctorDelete, "doctor", strconv.FormatInt(id, 10), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.countCache.Invalidate(ctx, service.DoctorCountKey)

	return nil
}

func (u *doctorUsecase) Count(ctx context.Context) (int64, error) {
	if count, ok := u.countCache.Get(ctx, service.DoctorCountKey); ok {
		return count, nil
	}

	count, err := u.doctorRepo.Count(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to count doctors: %+v", err)
		return 0, err
	}

	u.countCache.Set(ctx, service.DoctorCountKey, count)

	return count, nil
}

func (u *doctorUsecase) GetActive(ctx context.Context) ([]dto.DoctorResponse, error) {
	doctors, err := u.doctorRepo.FindByStatus(ctx, u.db, entity.DoctorStatusActive)
	if err != nil {
		u.log.Warnf("Failed to find active doctors: %+v", err)
		return nil, err
	}
	return converter.DoctorsToResponses(doctors), nil
}

func (u *doctorUsecase) GetBySpecialization(ctx context.Context, specialization string) ([]dto.DoctorResponse, error) {
	doctors, err := u.doctorRepo.FindBySpecialization(ctx, u.db, specialization)
	if err != nil {
		u.log.Warnf("Failed to find doctors by specialization: %+v", err)
		return nil, err
	}
	return converter.DoctorsToResponses(doctors), nil
}

func (u *doctorUsecase) ChangeStatus(ctx context.Context, id int64, status string) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	oldValue := converter.DoctorToResponse(doctor)
	doctor.Status = status

	if err := u.doctorRepo.Update(ctx, tx, doctor); err != nil {
		u.log.Warnf("Failed to change doctor status: %+v", err)
		return nil, err
	}

	newValue := converter.DoctorToResponse(doctor)
	if err := u.auditService.LogUpdate(ctx, tx, entity.AuditActionDoctorStatus, "doctor", strconv.FormatInt(doctor.ID, 10), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *doctorUsecase) fromRequest(req *dto.DoctorRequest) *entity.Doctor {
	return &entity.Doctor{
		DoctorName:       req.DoctorName,
		Specialization:   req.Specialization,
		Phone:            req.Phone,
		Email:            req.Email,
		MedicalLicenseNo: req.MedicalLicenseNo,
		Experience:       req.Experience,
		Status:           req.Status,
		Address:          req.Address,
		DateOfBirth:      req.DateOfBirth,
		Gender:           req.Gender,
		City:             req.City,
		State:            req.State,
		PinCode:          req.PinCode,
		Country:          req.Country,
		Role:             req.Role,
		Image:            req.Image,
	}
}

// translateDuplicate maps unique violations on the doctors table to field
// specific errors, falling back to the raw error.
func (u *doctorUsecase) translateDuplicate(err error) error {
	switch {
	case isDuplicateKeyError(err, "email"):
		return ErrDoctorEmailExists
	case isDuplicateKeyError(err, "phone"):
		return ErrDoctorPhoneExists
	case isDuplicateKeyError(err, "medical_license_no"):
		return ErrDoctorLicenseExists
	default:
		return err
	}
}
