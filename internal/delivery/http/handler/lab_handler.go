package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/usecase"
	"go-hospital-management/pkg/response"
	"go-hospital-management/pkg/validator"
)

type LabHandler struct {
	labUsecase     usecase.LabUsecase
	validator      *validator.CustomValidator
	maxUploadBytes int64
}

func NewLabHandler(labUsecase usecase.LabUsecase, validator *validator.CustomValidator, maxUploadBytes int64) *LabHandler {
	return &LabHandler{
		labUsecase:     labUsecase,
		validator:      validator,
		maxUploadBytes: maxUploadBytes,
	}
}

func (h *LabHandler) GetAllCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.labUsecase.GetAllCategories(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get lab categories")
		return
	}

	response.Success(w, http.StatusOK, "Lab categories retrieved successfully", categories)
}

func (h *LabHandler) AddCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.LabCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	category, err := h.labUsecase.AddCategory(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create lab category")
		return
	}

	response.Success(w, http.StatusCreated, "Lab category created successfully", category)
}

func (h *LabHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	var req dto.LabCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	category, err := h.labUsecase.UpdateCategory(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrLabCategoryNotFound) {
			response.NotFound(w, "Category not found")
			return
		}
		response.InternalServerError(w, "Failed to update lab category")
		return
	}

	response.Success(w, http.StatusOK, "Lab category updated successfully", category)
}

func (h *LabHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	if err := h.labUsecase.DeleteCategory(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrLabCategoryNotFound) {
			response.NotFound(w, "Category not found")
			return
		}
		response.InternalServerError(w, "Failed to delete lab category")
		return
	}

	response.Success(w, http.StatusOK, "Lab category deleted successfully", nil)
}

func (h *LabHandler) GetAllTests(w http.ResponseWriter, r *http.Request) {
	tests, err := h.labUsecase.GetAllTests(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get lab tests")
		return
	}

	response.Success(w, http.StatusOK, "Lab tests retrieved successfully", tests)
}

func (h *LabHandler) AddTest(w http.ResponseWriter, r *http.Request) {
	var req dto.LabTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	test, err := h.labUsecase.AddTest(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrLabCategoryNotFound) {
			response.NotFound(w, "Category not found")
			return
		}
		response.InternalServerError(w, "Failed to create lab test")
		return
	}

	response.Success(w, http.StatusCreated, "Lab test created successfully", test)
}

func (h *LabHandler) PatchTest(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	var req dto.LabTestPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	test, err := h.labUsecase.PatchTest(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrLabTestNotFound):
			response.NotFound(w, "Test not found")
		case errors.Is(err, usecase.ErrLabCategoryNotFound):
			response.NotFound(w, "Category not found")
		default:
			response.InternalServerError(w, "Failed to update lab test")
		}
		return
	}

	response.Success(w, http.StatusOK, "Lab test updated successfully", test)
}

func (h *LabHandler) DeleteTest(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	if err := h.labUsecase.DeleteTest(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrLabTestNotFound) {
			response.NotFound(w, "Test not found")
			return
		}
		response.InternalServerError(w, "Failed to delete lab test")
		return
	}

	response.Success(w, http.StatusOK, "Lab test deleted successfully", nil)
}

// UploadReport accepts a multipart form with patientId, testId, and file.
// Uploads are buffered fully in memory, capped by maxUploadBytes.
func (h *LabHandler) UploadReport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart form or file too large", nil)
		return
	}

	patientID, err := strconv.ParseInt(r.FormValue("patientId"), 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patientId", nil)
		return
	}

	testID, err := strconv.ParseInt(r.FormValue("testId"), 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid testId", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Missing report file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Failed to read report file", nil)
		return
	}

	report, err := h.labUsecase.UploadReport(r.Context(), patientID, testID, header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		if errors.Is(err, usecase.ErrLabTestNotFound) {
			response.NotFound(w, "Test not found")
			return
		}
		response.InternalServerError(w, "Failed to upload report")
		return
	}

	response.Success(w, http.StatusCreated, "Report uploaded successfully", report)
}

func (h *LabHandler) GetReportsByPatient(w http.ResponseWriter, r *http.Request) {
	patientID, ok := parseID(w, r, "patientId")
	if !ok {
		return
	}

	reports, err := h.labUsecase.GetReportsByPatient(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get reports")
		return
	}

	response.Success(w, http.StatusOK, "Reports retrieved successfully", reports)
}

// DownloadReport streams the stored blob with its declared content type; this
// endpoint bypasses the JSON envelope.
func (h *LabHandler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	report, err := h.labUsecase.GetReport(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrLabReportNotFound) {
			response.NotFound(w, "Report not found")
			return
		}
		response.InternalServerError(w, "Failed to get report")
		return
	}

	contentType := report.FileType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+report.FileName+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(report.ReportFile)
}

func (h *LabHandler) PatchReportFile(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart form or file too large", nil)
		return
	}

	var fileName, fileType string
	var data []byte

	// A missing or empty replacement file is a no-op, not an error.
	if file, header, err := r.FormFile("file"); err == nil {
		defer file.Close()
		read, err := io.ReadAll(file)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Failed to read report file", nil)
			return
		}
		fileName = header.Filename
		fileType = header.Header.Get("Content-Type")
		data = read
	}

	report, err := h.labUsecase.PatchReportFile(r.Context(), id, fileName, fileType, data)
	if err != nil {
		if errors.Is(err, usecase.ErrLabReportNotFound) {
			response.NotFound(w, "Report not found")
			return
		}
		response.InternalServerError(w, "Failed to update report file")
		return
	}

	response.Success(w, http.StatusOK, "Report file updated successfully", report)
}

func (h *LabHandler) DeleteReport(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	if err := h.labUsecase.DeleteReport(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrLabReportNotFound) {
			response.NotFound(w, "Report not found")
			return
		}
		response.InternalServerError(w, "Failed to delete report")
		return
	}

	response.Success(w, http.StatusOK, "Report deleted successfully", nil)
}
