package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go-hospital-management/internal/converter"
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/internal/domain/repository"
	"go-hospital-management/internal/service"
	"go-hospital-management/pkg/datefmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound        = errors.New("patient not found")
	ErrPatientAadharExists    = errors.New("Aadhar number already exists!")
	ErrPatientPhoneExists     = errors.New("Phone number already exists!")
	ErrPatientDuplicate       = errors.New("Duplicate value exists!")
	ErrInvalidAppointmentDate = errors.New("appointment date must be in format YYYY-MM-DD")
	ErrFromDateRequired       = errors.New("'fromDate' cannot be empty")
	ErrInvalidFromDate        = errors.New("fromDate must be in format YYYY-MM-DD")
)

// partialUpdateFields is the allow-list for PATCH; keys outside it are
// silently ignored.
var partialUpdateFields = map[string]func(*entity.Patient, string){
	"doctorStatus":      func(p *entity.Patient, v string) { p.DoctorStatus = v },
	"labStatus":         func(p *entity.Patient, v string) { p.LabStatus = v },
	"medisionStatus":    func(p *entity.Patient, v string) { p.MedisionStatus = v },
	"selectedTests":     func(p *entity.Patient, v string) { p.SelectedTests = v },
	"selectedMedicines": func(p *entity.Patient, v string) { p.SelectedMedicines = v },
	"notes":             func(p *entity.Patient, v string) { p.Notes = v },
	"appointmentTime":   func(p *entity.Patient, v string) { p.AppointmentTime = v },
	"appointmentDate":   func(p *entity.Patient, v string) { p.AppointmentDate = v },
}

type PatientUsecase interface {
	Add(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error)
	GetAll(ctx context.Context) ([]dto.PatientResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.PatientResponse, error)
	Update(ctx context.Context, id int64, req *dto.PatientRequest) (*dto.PatientResponse, error)
	PartialUpdate(ctx context.Context, id int64, updates map[string]interface{}) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	GetByMedisionStatus(ctx context.Context, status string) ([]dto.PatientResponse, error)
	GetByDoctorStatus(ctx context.Context, status string) ([]dto.PatientResponse, error)
	GetByLabStatus(ctx context.Context, status string) ([]dto.PatientResponse, error)
	FilterNative(ctx context.Context, fromDate, medisionStatus, doctorStatus string, doctorID int64) ([]dto.PatientResponse, error)
	FullDetails(ctx context.Context, patientID int64) (*dto.PatientFullDetailsResponse, error)
	TodayAll(ctx context.Context) (*dto.TodayPatientsResult, error)
	TodayDoctorCompleted(ctx context.Context) (*dto.TodayPatientsResult, error)
	TodayDoctorPending(ctx context.Context) (*dto.TodayPatientsResult, error)
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	auditService service.AuditService
	countCache   *service.CountCache
	now          func() time.Time
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
	countCache *service.CountCache,
	now func() time.Time,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		auditService: auditService,
		countCache:   countCache,
		now:          now,
	}
}

// Add persists a new patient. Appointment date and time default to "now" when
// omitted, and all three workflow statuses are forced to Pending regardless
// of caller input.
func (u *patientUsecase) Add(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	appointmentDate := strings.TrimSpace(req.AppointmentDate)
	if appointmentDate == "" {
		appointmentDate = datefmt.FormatStored(u.now())
	} else {
		formatted, err := datefmt.ReformatInput(appointmentDate)
		if err != nil {
			return nil, fmt.Errorf("%w: received %q", ErrInvalidAppointmentDate, appointmentDate)
		}
		appointmentDate = formatted
	}

	appointmentTime := req.AppointmentTime
	if appointmentTime == "" {
		appointmentTime = datefmt.FormatTime(u.now())
	}

	patient := &entity.Patient{
		Name:               req.Name,
		Gender:             req.Gender,
		Disease:            req.Disease,
		Aadhar:             req.Aadhar,
		Phone:              req.Phone,
		DateOfBirth:        req.DateOfBirth,
		Address:            req.Address,
		DoctorID:           req.DoctorID,
		AppointmentDate:    appointmentDate,
		AppointmentTime:    appointmentTime,
		MedisionStatus:     entity.StatusPending,
		DoctorStatus:       entity.StatusPending,
		LabStatus:          entity.StatusPending,
		DosageInstructions: req.DosageInstructions,
		Notes:              req.Notes,
		SelectedMedicines:  req.SelectedMedicines,
		SelectedTests:      req.SelectedTests,
		Medication:         req.Medication,
		DateIssued:         req.DateIssued,
		GeneratedAt:        req.GeneratedAt,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.patientRepo.Create(ctx, tx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, u.translateDuplicate(err)
	}

	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionPatientCreate, "patient", strconv.FormatInt(patient.ID, 10), converter.PatientToResponse(patient)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, u.translateDuplicate(err)
	}

	u.countCache.Invalidate(ctx, service.PatientCountKey)

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetAll(ctx context.Context) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all patients: %+v", err)
		return nil, err
	}
	return converter.PatientsToResponses(patients), nil
}

func (u *patientUsecase) GetByID(ctx context.Context, id int64) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient), nil
}

// Update overwrites every mutable field from the request, statuses included.
func (u *patientUsecase) Update(ctx context.Context, id int64, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	oldValue := converter.PatientToResponse(patient)

	patient.Name = req.Name
	patient.Gender = req.Gender
	patient.Disease = req.Disease
	patient.Aadhar = req.Aadhar
	patient.Phone = req.Phone
	patient.DateOfBirth = req.DateOfBirth
	patient.Address = req.Address
	patient.DoctorID = req.DoctorID
	patient.AppointmentDate = req.AppointmentDate
	patient.AppointmentTime = req.AppointmentTime
	patient.MedisionStatus = req.MedisionStatus
	patient.DoctorStatus = req.DoctorStatus
	patient.LabStatus = req.LabStatus
	patient.DosageInstructions = req.DosageInstructions
	patient.Notes = req.Notes
	patient.SelectedMedicines = req.SelectedMedicines
	patient.SelectedTests = req.SelectedTests
	patient.Medication = req.Medication
	patient.DateIssued = req.DateIssued
	patient.GeneratedAt = req.GeneratedAt

	if err := u.patientRepo.Update(ctx, tx, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, u.translateDuplicate(err)
	}

	newValue := converter.PatientToResponse(patient)
	if err := u.auditService.LogUpdate(ctx, tx, entity.AuditActionPatientUpdate, "patient", strconv.FormatInt(patient.ID, 10), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, u.translateDuplicate(err)
	}

	return newValue, nil
}

// PartialUpdate merges only allow-listed keys with string values into the
// record. Unrecognized keys and non-text values are ignored without error.
func (u *patientUsecase) PartialUpdate(ctx context.Context, id int64, updates map[string]interface{}) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	oldValue := converter.PatientToResponse(patient)

	for key, value := range updates {
		setter, ok := partialUpdateFields[key]
		if !ok {
			continue
		}
		if text, ok := value.(string); ok {
			setter(patient, text)
		}
	}

	if err := u.patientRepo.Update(ctx, tx, patient); err != nil {
		u.log.Warnf("Failed to patch patient: %+v", err)
		return nil, u.translateDuplicate(err)
	}

	newValue := converter.PatientToResponse(patient)
	if err := u.auditService.LogUpdate(ctx, tx, entity.AuditActionPatientPatch, "patient", strconv.FormatInt(patient.ID, 10), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *patientUsecase) Delete(ctx context.Context, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	oldValue := converter.PatientToResponse(patient)

	affected, err := u.patientRepo.Delete(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, entity.AuditActionPatientDelete, "patient", strconv.FormatInt(id, 10), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.countCache.Invalidate(ctx, service.PatientCountKey)

	return nil
}

func (u *patientUsecase) Count(ctx context.Context) (int64, error) {
	if count, ok := u.countCache.Get(ctx, service.PatientCountKey); ok {
		return count, nil
	}

	count, err := u.patientRepo.Count(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return 0, err
	}

	u.countCache.Set(ctx, service.PatientCountKey, count)

	return count, nil
}

func (u *patientUsecase) GetByMedisionStatus(ctx context.Context, status string) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindByMedisionStatus(ctx, u.db, status)
	if err != nil {
		u.log.Warnf("Failed to filter patients by medision status: %+v", err)
		return nil, err
	}
	return converter.PatientsToResponses(patients), nil
}

func (u *patientUsecase) GetByDoctorStatus(ctx context.Context, status string) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindByDoctorStatus(ctx, u.db, status)
	if err != nil {
		u.log.Warnf("Failed to filter patients by doctor status: %+v", err)
		return nil, err
	}
	return converter.PatientsToResponses(patients), nil
}

func (u *patientUsecase) GetByLabStatus(ctx context.Context, status string) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindByLabStatus(ctx, u.db, status)
	if err != nil {
		u.log.Warnf("Failed to filter patients by lab status: %+v", err)
		return nil, err
	}
	return converter.PatientsToResponses(patients), nil
}

// FilterNative combines a mandatory appointment-date match with optional
// status and doctor filters; empty or "all" statuses and a zero doctorID are
// wildcards. Results come back ordered by appointment time.
func (u *patientUsecase) FilterNative(ctx context.Context, fromDate, medisionStatus, doctorStatus string, doctorID int64) ([]dto.PatientResponse, error) {
	cleanDate := strings.TrimSpace(fromDate)
	if cleanDate == "" {
		return nil, ErrFromDateRequired
	}
	if !datefmt.IsInputFormat(cleanDate) {
		return nil, fmt.Errorf("%w, received: %s", ErrInvalidFromDate, cleanDate)
	}

	patients, err := u.patientRepo.FilterByDateStatusDoctor(ctx, u.db, cleanDate, medisionStatus, doctorStatus, doctorID)
	if err != nil {
		u.log.Warnf("Failed native patient filter: %+v", err)
		return nil, err
	}

	return converter.PatientsToResponses(patients), nil
}

func (u *patientUsecase) FullDetails(ctx context.Context, patientID int64) (*dto.PatientFullDetailsResponse, error) {
	row, err := u.patientRepo.FullDetails(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to fetch full patient details: %+v", err)
		return nil, err
	}
	if row == nil {
		return nil, ErrPatientNotFound
	}
	return converter.FullDetailsRowToResponse(row), nil
}

func (u *patientUsecase) TodayAll(ctx context.Context) (*dto.TodayPatientsResult, error) {
	today := u.now()
	patients, err := u.patientRepo.FindAllOnDate(ctx, u.db, datefmt.FormatInput(today))
	if err != nil {
		u.log.Warnf("Failed to fetch today's patients: %+v", err)
		return nil, err
	}
	return &dto.TodayPatientsResult{
		Date:     datefmt.FormatStored(today),
		Patients: converter.PatientsToResponses(patients),
	}, nil
}

func (u *patientUsecase) TodayDoctorCompleted(ctx context.Context) (*dto.TodayPatientsResult, error) {
	return u.todayByDoctorStatus(ctx, "completed")
}

func (u *patientUsecase) TodayDoctorPending(ctx context.Context) (*dto.TodayPatientsResult, error) {
	return u.todayByDoctorStatus(ctx, "pending")
}

func (u *patientUsecase) todayByDoctorStatus(ctx context.Context, doctorStatus string) (*dto.TodayPatientsResult, error) {
	today := u.now()
	patients, err := u.patientRepo.FindOnDateByDoctorStatus(ctx, u.db, datefmt.FormatInput(today), doctorStatus)
	if err != nil {
		u.log.Warnf("Failed to fetch today's patients by doctor status: %+v", err)
		return nil, err
	}
	return &dto.TodayPatientsResult{
		Date:     datefmt.FormatStored(today),
		Patients: converter.PatientsToResponses(patients),
	}, nil
}

// translateDuplicate maps unique violations on the patients table to the
// three-way duplicate outcome: aadhar, phone, or generic.
func (u *patientUsecase) translateDuplicate(err error) error {
	switch {
	case isDuplicateKeyError(err, "aadhar"):
		return ErrPatientAadharExists
	case isDuplicateKeyError(err, "phone"):
		return ErrPatientPhoneExists
	case isUniqueViolation(err):
		return ErrPatientDuplicate
	default:
		return err
	}
}
