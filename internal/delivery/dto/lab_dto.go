package dto

import "github.com/shopspring/decimal"

// LabCategoryRequest creates or renames a lab category.
type LabCategoryRequest struct {
	CategoryName string `json:"categoryName" validate:"required,max=100"`
}

type LabCategoryResponse struct {
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

// LabTestRequest creates a lab test under a category.
type LabTestRequest struct {
	TestName   string          `json:"testName" validate:"required,max=100"`
	TestCost   decimal.Decimal `json:"testCost"`
	CategoryID int64           `json:"categoryId" validate:"required"`
}

// LabTestPatchRequest partially updates a test; only non-nil fields are
// applied.
type LabTestPatchRequest struct {
	TestName   *string          `json:"testName"`
	TestCost   *decimal.Decimal `json:"testCost"`
	CategoryID *int64           `json:"categoryId"`
}

type LabTestResponse struct {
	TestID   int64                `json:"testId"`
	TestName string               `json:"testName"`
	TestCost decimal.Decimal      `json:"testCost"`
	Category *LabCategoryResponse `json:"category,omitempty"`
}

// LabReportResponse is report metadata; the payload itself is served by the
// download endpoint.
type LabReportResponse struct {
	ReportID  int64            `json:"reportId"`
	PatientID int64            `json:"patientId"`
	TestID    int64            `json:"testId"`
	FileName  string           `json:"fileName"`
	FileType  string           `json:"fileType"`
	Test      *LabTestResponse `json:"test,omitempty"`
}
