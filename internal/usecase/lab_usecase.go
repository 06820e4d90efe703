package usecase

import (
	"context"
	"errors"

	"go-hospital-management/internal/converter"
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrLabCategoryNotFound = errors.New("lab category not found")
	ErrLabTestNotFound     = errors.New("lab test not found")
	ErrLabReportNotFound   = errors.New("lab report not found")
)

type LabUsecase interface {
	GetAllCategories(ctx context.Context) ([]dto.LabCategoryResponse, error)
	AddCategory(ctx context.Context, req *dto.LabCategoryRequest) (*dto.LabCategoryResponse, error)
	UpdateCategory(ctx context.Context, id int64, req *dto.LabCategoryRequest) (*dto.LabCategoryResponse, error)
	DeleteCategory(ctx context.Context, id int64) error

	GetAllTests(ctx context.Context) ([]dto.LabTestResponse, error)
	AddTest(ctx context.Context, req *dto.LabTestRequest) (*dto.LabTestResponse, error)
	PatchTest(ctx context.Context, id int64, req *dto.LabTestPatchRequest) (*dto.LabTestResponse, error)
	DeleteTest(ctx context.Context, id int64) error

	UploadReport(ctx context.Context, patientID, testID int64, fileName, fileType string, data []byte) (*dto.LabReportResponse, error)
	GetReportsByPatient(ctx context.Context, patientID int64) ([]dto.LabReportResponse, error)
	GetReport(ctx context.Context, id int64) (*entity.LabReport, error)
	PatchReportFile(ctx context.Context, id int64, fileName, fileType string, data []byte) (*dto.LabReportResponse, error)
	DeleteReport(ctx context.Context, id int64) error
}

type labUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	categoryRepo repository.LabCategoryRepository
	testRepo     repository.LabTestRepository
	reportRepo   repository.LabReportRepository
}

func NewLabUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	categoryRepo repository.LabCategoryRepository,
	testRepo repository.LabTestRepository,
	reportRepo repository.LabReportRepository,
) LabUsecase {
	return &labUsecase{
		db:           db,
		log:          log,
		categoryRepo: categoryRepo,
		testRepo:     testRepo,
		reportRepo:   reportRepo,
	}
}

func (u *labUsecase) GetAllCategories(ctx context.Context) ([]dto.LabCategoryResponse, error) {
	categories, err := u.categoryRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find lab categories: %+v", err)
		return nil, err
	}
	return converter.LabCategoriesToResponses(categories), nil
}

func (u *labUsecase) AddCategory(ctx context.Context, req *dto.LabCategoryRequest) (*dto.LabCategoryResponse, error) {
	category := &entity.LabCategory{CategoryName: req.CategoryName}
	if err := u.categoryRepo.Create(ctx, u.db, category); err != nil {
		u.log.Warnf("Failed to create lab category: %+v", err)
		return nil, err
	}
	return converter.LabCategoryToResponse(category), nil
}

func (u *labUsecase) UpdateCategory(ctx context.Context, id int64, req *dto.LabCategoryRequest) (*dto.LabCategoryResponse, error) {
	category, err := u.categoryRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find lab category: %+v", err)
		return nil, err
	}
	if category == nil {
		return nil, ErrLabCategoryNotFound
	}

	category.CategoryName = req.CategoryName
	if err := u.categoryRepo.Update(ctx, u.db, category); err != nil {
		u.log.Warnf("Failed to update lab category: %+v", err)
		return nil, err
	}
	return converter.LabCategoryToResponse(category), nil
}

func (u *labUsecase) DeleteCategory(ctx context.Context, id int64) error {
	affected, err := u.categoryRepo.Delete(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to delete lab category: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrLabCategoryNotFound
	}
	return nil
}

func (u *labUsecase) GetAllTests(ctx context.Context) ([]dto.LabTestResponse, error) {
	tests, err := u.testRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find lab tests: %+v", err)
		return nil, err
	}
	return converter.LabTestsToResponses(tests), nil
}

func (u *labUsecase) AddTest(ctx context.Context, req *dto.LabTestRequest) (*dto.LabTestResponse, error) {
	category, err := u.categoryRepo.FindByID(ctx, u.db, req.CategoryID)
	if err != nil {
		u.log.Warnf("Failed to find lab category: %+v", err)
		return nil, err
	}
	if category == nil {
		return nil, ErrLabCategoryNotFound
	}

	test := &entity.LabTest{
		TestName:   req.TestName,
		TestCost:   req.TestCost,
		CategoryID: req.CategoryID,
		Category:   *category,
	}
	if err := u.testRepo.Create(ctx, u.db, test); err != nil {
		u.log.Warnf("Failed to create lab test: %+v", err)
		return nil, err
	}
	return converter.LabTestToResponse(test), nil
}

// PatchTest overwrites only the fields supplied in the request.
func (u *labUsecase) PatchTest(ctx context.Context, id int64, req *dto.LabTestPatchRequest) (*dto.LabTestResponse, error) {
	test, err := u.testRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find lab test: %+v", err)
		return nil, err
	}
	if test == nil {
		return nil, ErrLabTestNotFound
	}

	if req.TestName != nil {
		test.TestName = *req.TestName
	}
	if req.TestCost != nil {
		test.TestCost = *req.TestCost
	}
	if req.CategoryID != nil {
		category, err := u.categoryRepo.FindByID(ctx, u.db, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrLabCategoryNotFound
		}
		test.CategoryID = *req.CategoryID
		test.Category = *category
	}

	if err := u.testRepo.Update(ctx, u.db, test); err != nil {
		u.log.Warnf("Failed to patch lab test: %+v", err)
		return nil, err
	}
	return converter.LabTestToResponse(test), nil
}

func (u *labUsecase) DeleteTest(ctx context.Context, id int64) error {
	affected, err := u.testRepo.Delete(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to delete lab test: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrLabTestNotFound
	}
	return nil
}

// UploadReport stores the uploaded file as one immutable blob record. The
// payload is already size-capped at the HTTP boundary.
func (u *labUsecase) UploadReport(ctx context.Context, patientID, testID int64, fileName, fileType string, data []byte) (*dto.LabReportResponse, error) {
	test, err := u.testRepo.FindByID(ctx, u.db, testID)
	if err != nil {
		u.log.Warnf("Failed to find lab test: %+v", err)
		return nil, err
	}
	if test == nil {
		return nil, ErrLabTestNotFound
	}

	report := &entity.LabReport{
		PatientID:  patientID,
		TestID:     testID,
		FileName:   fileName,
		FileType:   fileType,
		ReportFile: data,
		Test:       *test,
	}
	if err := u.reportRepo.Create(ctx, u.db, report); err != nil {
		u.log.Warnf("Failed to create lab report: %+v", err)
		return nil, err
	}
	return converter.LabReportToResponse(report), nil
}

func (u *labUsecase) GetReportsByPatient(ctx context.Context, patientID int64) ([]dto.LabReportResponse, error) {
	reports, err := u.reportRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find lab reports: %+v", err)
		return nil, err
	}
	return converter.LabReportsToResponses(reports), nil
}

// GetReport returns the full report row including the blob, for download.
func (u *labUsecase) GetReport(ctx context.Context, id int64) (*entity.LabReport, error) {
	report, err := u.reportRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find lab report: %+v", err)
		return nil, err
	}
	if report == nil {
		return nil, ErrLabReportNotFound
	}
	return report, nil
}

// PatchReportFile replaces the stored file. An empty replacement is a no-op,
// not an error.
func (u *labUsecase) PatchReportFile(ctx context.Context, id int64, fileName, fileType string, data []byte) (*dto.LabReportResponse, error) {
	report, err := u.reportRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find lab report: %+v", err)
		return nil, err
	}
	if report == nil {
		return nil, ErrLabReportNotFound
	}

	if len(data) > 0 {
		report.FileName = fileName
		report.FileType = fileType
		report.ReportFile = data

		if err := u.reportRepo.Update(ctx, u.db, report); err != nil {
			u.log.Warnf("Failed to patch lab report file: %+v", err)
			return nil, err
		}
	}

	return converter.LabReportToResponse(report), nil
}

func (u *labUsecase) DeleteReport(ctx context.Context, id int64) error {
	affected, err := u.reportRepo.Delete(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to delete lab report: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrLabReportNotFound
	}
	return nil
}
