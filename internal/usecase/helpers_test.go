package usecase

import (
	"context"
	"testing"
	"time"

	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens gorm over sqlmock so transaction begin/commit/rollback can
// be asserted while repositories are stubbed out.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func newTestCountCache(t *testing.T) (*service.CountCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return service.NewCountCache(client, newTestLogger()), mr
}

// fixedNow is the injected clock used across usecase tests:
// 2024-01-05 10:30:45, stored date "05-JAN-24".
func fixedNow() time.Time {
	return time.Date(2024, time.January, 5, 10, 30, 45, 0, time.UTC)
}

// stubAuditService records trail writes without touching the database.
type stubAuditService struct {
	actions []string
}

func (s *stubAuditService) LogCreate(ctx context.Context, tx *gorm.DB, action, entityName, entityID string, newValue interface{}) error {
	s.actions = append(s.actions, action)
	return nil
}

func (s *stubAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, action, entityName, entityID string, oldValue, newValue interface{}) error {
	s.actions = append(s.actions, action)
	return nil
}

func (s *stubAuditService) LogDelete(ctx context.Context, tx *gorm.DB, action, entityName, entityID string, oldValue interface{}) error {
	s.actions = append(s.actions, action)
	return nil
}

// stubPatientRepo satisfies repository.PatientRepository via optional
// function fields; unset fields return zero values.
type stubPatientRepo struct {
	create         func(p *entity.Patient) error
	findAll        func() ([]entity.Patient, error)
	findByID       func(id int64) (*entity.Patient, error)
	update         func(p *entity.Patient) error
	delete         func(id int64) (int64, error)
	count          func() (int64, error)
	byMedision     func(status string) ([]entity.Patient, error)
	byDoctor       func(status string) ([]entity.Patient, error)
	byLab          func(status string) ([]entity.Patient, error)
	filter         func(fromDate, medisionStatus, doctorStatus string, doctorID int64) ([]entity.Patient, error)
	onDate         func(date string) ([]entity.Patient, error)
	onDateByStatus func(date, doctorStatus string) ([]entity.Patient, error)
	fullDetails    func(patientID int64) (*entity.PatientFullDetailsRow, error)
}

func (s *stubPatientRepo) Create(ctx context.Context, db *gorm.DB, p *entity.Patient) error {
	if s.create != nil {
		return s.create(p)
	}
	return nil
}

func (s *stubPatientRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Patient, error) {
	if s.findAll != nil {
		return s.findAll()
	}
	return nil, nil
}

func (s *stubPatientRepo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Patient, error) {
	if s.findByID != nil {
		return s.findByID(id)
	}
	return nil, nil
}

func (s *stubPatientRepo) Update(ctx context.Context, db *gorm.DB, p *entity.Patient) error {
	if s.update != nil {
		return s.update(p)
	}
	return nil
}

func (s *stubPatientRepo) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	if s.delete != nil {
		return s.delete(id)
	}
	return 0, nil
}

func (s *stubPatientRepo) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	if s.count != nil {
		return s.count()
	}
	return 0, nil
}

func (s *stubPatientRepo) FindByMedisionStatus(ctx context.Context, db *gorm.DB, status string) ([]entity.Patient, error) {
	if s.byMedision != nil {
		return s.byMedision(status)
	}
	return nil, nil
}

func (s *stubPatientRepo) FindByDoctorStatus(ctx context.Context, db *gorm.DB, status string) ([]entity.Patient, error) {
	if s.byDoctor != nil {
		return s.byDoctor(status)
	}
	return nil, nil
}

func (s *stubPatientRepo) FindByLabStatus(ctx context.Context, db *gorm.DB, status string) ([]entity.Patient, error) {
	if s.byLab != nil {
		return s.byLab(status)
	}
	return nil, nil
}

func (s *stubPatientRepo) FilterByDateStatusDoctor(ctx context.Context, db *gorm.DB, fromDate, medisionStatus, doctorStatus string, doctorID int64) ([]entity.Patient, error) {
	if s.filter != nil {
		return s.filter(fromDate, medisionStatus, doctorStatus, doctorID)
	}
	return nil, nil
}

func (s *stubPatientRepo) FindAllOnDate(ctx context.Context, db *gorm.DB, date string) ([]entity.Patient, error) {
	if s.onDate != nil {
		return s.onDate(date)
	}
	return nil, nil
}

func (s *stubPatientRepo) FindOnDateByDoctorStatus(ctx context.Context, db *gorm.DB, date, doctorStatus string) ([]entity.Patient, error) {
	if s.onDateByStatus != nil {
		return s.onDateByStatus(date, doctorStatus)
	}
	return nil, nil
}

func (s *stubPatientRepo) FullDetails(ctx context.Context, db *gorm.DB, patientID int64) (*entity.PatientFullDetailsRow, error) {
	if s.fullDetails != nil {
		return s.fullDetails(patientID)
	}
	return nil, nil
}

// stubDoctorRepo satisfies repository.DoctorRepository the same way.
type stubDoctorRepo struct {
	create           func(d *entity.Doctor) error
	findAll          func() ([]entity.Doctor, error)
	findByID         func(id int64) (*entity.Doctor, error)
	update           func(d *entity.Doctor) error
	delete           func(id int64) (int64, error)
	count            func() (int64, error)
	existsByEmail    func(email string) (bool, error)
	existsByPhone    func(phone string) (bool, error)
	existsByLicense  func(licenseNo string) (bool, error)
	byStatus         func(status string) ([]entity.Doctor, error)
	bySpecialization func(specialization string) ([]entity.Doctor, error)
}

func (s *stubDoctorRepo) Create(ctx context.Context, db *gorm.DB, d *entity.Doctor) error {
	if s.create != nil {
		return s.create(d)
	}
	return nil
}

func (s *stubDoctorRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Doctor, error) {
	if s.findAll != nil {
		return s.findAll()
	}
	return nil, nil
}

func (s *stubDoctorRepo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Doctor, error) {
	if s.findByID != nil {
		return s.findByID(id)
	}
	return nil, nil
}

func (s *stubDoctorRepo) Update(ctx context.Context, db *gorm.DB, d *entity.Doctor) error {
	if s.update != nil {
		return s.update(d)
	}
	return nil
}

func (s *stubDoctorRepo) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	if s.delete != nil {
		return s.delete(id)
	}
	return 0, nil
}

func (s *stubDoctorRepo) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	if s.count != nil {
		return s.count()
	}
	return 0, nil
}

func (s *stubDoctorRepo) ExistsByEmail(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	if s.existsByEmail != nil {
		return s.existsByEmail(email)
	}
	return false, nil
}

func (s *stubDoctorRepo) ExistsByPhone(ctx context.Context, db *gorm.DB, phone string) (bool, error) {
	if s.existsByPhone != nil {
		return s.existsByPhone(phone)
	}
	return false, nil
}

func (s *stubDoctorRepo) ExistsByLicenseNo(ctx context.Context, db *gorm.DB, licenseNo string) (bool, error) {
	if s.existsByLicense != nil {
		return s.existsByLicense(licenseNo)
	}
	return false, nil
}

func (s *stubDoctorRepo) FindByStatus(ctx context.Context, db *gorm.DB, status string) ([]entity.Doctor, error) {
	if s.byStatus != nil {
		return s.byStatus(status)
	}
	return nil, nil
}

func (s *stubDoctorRepo) FindBySpecialization(ctx context.Context, db *gorm.DB, specialization string) ([]entity.Doctor, error) {
	if s.bySpecialization != nil {
		return s.bySpecialization(specialization)
	}
	return nil, nil
}

// stubLoginDetailRepo satisfies repository.LoginDetailRepository.
type stubLoginDetailRepo struct {
	created       []*entity.LoginDetail
	existsByEmail func(email string) (bool, error)
}

func (s *stubLoginDetailRepo) Create(ctx context.Context, db *gorm.DB, detail *entity.LoginDetail) error {
	s.created = append(s.created, detail)
	return nil
}

func (s *stubLoginDetailRepo) ExistsByEmail(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	if s.existsByEmail != nil {
		return s.existsByEmail(email)
	}
	return false, nil
}

// stubLabCategoryRepo satisfies repository.LabCategoryRepository.
type stubLabCategoryRepo struct {
	create   func(c *entity.LabCategory) error
	findAll  func() ([]entity.LabCategory, error)
	findByID func(id int64) (*entity.LabCategory, error)
	update   func(c *entity.LabCategory) error
	delete   func(id int64) (int64, error)
}

func (s *stubLabCategoryRepo) Create(ctx context.Context, db *gorm.DB, c *entity.LabCategory) error {
	if s.create != nil {
		return s.create(c)
	}
	return nil
}

func (s *stubLabCategoryRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.LabCategory, error) {
	if s.findAll != nil {
		return s.findAll()
	}
	return nil, nil
}

func (s *stubLabCategoryRepo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.LabCategory, error) {
	if s.findByID != nil {
		return s.findByID(id)
	}
	return nil, nil
}

func (s *stubLabCategoryRepo) Update(ctx context.Context, db *gorm.DB, c *entity.LabCategory) error {
	if s.update != nil {
		return s.update(c)
	}
	return nil
}

func (s *stubLabCategoryRepo) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	if s.delete != nil {
		return s.delete(id)
	}
	return 0, nil
}

// stubLabTestRepo satisfies repository.LabTestRepository.
type stubLabTestRepo struct {
	create   func(lt *entity.LabTest) error
	findAll  func() ([]entity.LabTest, error)
	findByID func(id int64) (*entity.LabTest, error)
	update   func(lt *entity.LabTest) error
	delete   func(id int64) (int64, error)
}

func (s *stubLabTestRepo) Create(ctx context.Context, db *gorm.DB, lt *entity.LabTest) error {
	if s.create != nil {
		return s.create(lt)
	}
	return nil
}

func (s *stubLabTestRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.LabTest, error) {
	if s.findAll != nil {
		return s.findAll()
	}
	return nil, nil
}

func (s *stubLabTestRepo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.LabTest, error) {
	if s.findByID != nil {
		return s.findByID(id)
	}
	return nil, nil
}

func (s *stubLabTestRepo) Update(ctx context.Context, db *gorm.DB, lt *entity.LabTest) error {
	if s.update != nil {
		return s.update(lt)
	}
	return nil
}

func (s *stubLabTestRepo) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	if s.delete != nil {
		return s.delete(id)
	}
	return 0, nil
}

// stubLabReportRepo satisfies repository.LabReportRepository.
type stubLabReportRepo struct {
	create      func(r *entity.LabReport) error
	findByID    func(id int64) (*entity.LabReport, error)
	byPatientID func(patientID int64) ([]entity.LabReport, error)
	update      func(r *entity.LabReport) error
	delete      func(id int64) (int64, error)
}

func (s *stubLabReportRepo) Create(ctx context.Context, db *gorm.DB, r *entity.LabReport) error {
	if s.create != nil {
		return s.create(r)
	}
	return nil
}

func (s *stubLabReportRepo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.LabReport, error) {
	if s.findByID != nil {
		return s.findByID(id)
	}
	return nil, nil
}

func (s *stubLabReportRepo) FindByPatientID(ctx context.Context, db *gorm.DB, patientID int64) ([]entity.LabReport, error) {
	if s.byPatientID != nil {
		return s.byPatientID(patientID)
	}
	return nil, nil
}

func (s *stubLabReportRepo) Update(ctx context.Context, db *gorm.DB, r *entity.LabReport) error {
	if s.update != nil {
		return s.update(r)
	}
	return nil
}

func (s *stubLabReportRepo) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	if s.delete != nil {
		return s.delete(id)
	}
	return 0, nil
}
