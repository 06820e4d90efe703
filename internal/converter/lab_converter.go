package converter

import (
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
)

func LabCategoryToResponse(category *entity.LabCategory) *dto.LabCategoryResponse {
	if category == nil {
		return nil
	}

	return &dto.LabCategoryResponse{
		CategoryID:   category.ID,
		CategoryName: category.CategoryName,
	}
}

func LabCategoriesToResponses(categories []entity.LabCategory) []dto.LabCategoryResponse {
	responses := make([]dto.LabCategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, *LabCategoryToResponse(&categories[i]))
	}
	return responses
}

func LabTestToResponse(test *entity.LabTest) *dto.LabTestResponse {
	if test == nil {
		return nil
	}

	resp := &dto.LabTestResponse{
		TestID:   test.ID,
		TestName: test.TestName,
		TestCost: test.TestCost,
	}
	if test.Category.ID != 0 {
		resp.Category = LabCategoryToResponse(&test.Category)
	}
	return resp
}

func LabTestsToResponses(tests []entity.LabTest) []dto.LabTestResponse {
	responses := make([]dto.LabTestResponse, 0, len(tests))
	for i := range tests {
		responses = append(responses, *LabTestToResponse(&tests[i]))
	}
	return responses
}

func LabReportToResponse(report *entity.LabReport) *dto.LabReportResponse {
	if report == nil {
		return nil
	}

	resp := &dto.LabReportResponse{
		ReportID:  report.ID,
		PatientID: report.PatientID,
		TestID:    report.TestID,
		FileName:  report.FileName,
		FileType:  report.FileType,
	}
	if report.Test.ID != 0 {
		resp.Test = LabTestToResponse(&report.Test)
	}
	return resp
}

func LabReportsToResponses(reports []entity.LabReport) []dto.LabReportResponse {
	responses := make([]dto.LabReportResponse, 0, len(reports))
	for i := range reports {
		responses = append(responses, *LabReportToResponse(&reports[i]))
	}
	return responses
}
