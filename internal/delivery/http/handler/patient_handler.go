package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/usecase"
	"go-hospital-management/pkg/response"
	"go-hospital-management/pkg/validator"

	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) AddPatient(w http.ResponseWriter, r *http.Request) {
	var req dto.PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Add(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientAadharExists),
			errors.Is(err, usecase.ErrPatientPhoneExists),
			errors.Is(err, usecase.ErrPatientDuplicate):
			response.Conflict(w, err.Error())
		case errors.Is(err, usecase.ErrInvalidAppointmentDate):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.Error(w, http.StatusBadRequest, "Error adding patient", nil)
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient added successfully", patient)
}

func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Error retrieving patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

func (h *PatientHandler) GetPatientByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	patient, err := h.patientUsecase.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.NotFound(w, "Patient not found with ID: "+strconv.FormatInt(id, 10))
			return
		}
		response.InternalServerError(w, "Error retrieving patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	var req dto.PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, "Patient not found with ID: "+strconv.FormatInt(id, 10))
		case errors.Is(err, usecase.ErrPatientAadharExists),
			errors.Is(err, usecase.ErrPatientPhoneExists),
			errors.Is(err, usecase.ErrPatientDuplicate):
			response.Conflict(w, err.Error())
		default:
			response.Error(w, http.StatusBadRequest, "Error updating patient", nil)
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", patient)
}

func (h *PatientHandler) PatchPatient(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	patient, err := h.patientUsecase.PartialUpdate(r.Context(), id, updates)
	if err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Error updating patient details")
		return
	}

	response.Success(w, http.StatusOK, "Patient details updated successfully (partial update)", patient)
}

func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	if err := h.patientUsecase.Delete(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.NotFound(w, "Patient not found with ID: "+strconv.FormatInt(id, 10))
			return
		}
		response.InternalServerError(w, "Error deleting patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient deleted successfully", nil)
}

func (h *PatientHandler) GetPatientCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.patientUsecase.Count(r.Context())
	if err != nil {
		response.InternalServerError(w, "Error counting patients")
		return
	}

	response.SuccessWithCount(w, http.StatusOK, "Patient count retrieved successfully", nil, int(count))
}

func (h *PatientHandler) GetByMedisionStatus(w http.ResponseWriter, r *http.Request) {
	status := mux.Vars(r)["status"]

	patients, err := h.patientUsecase.GetByMedisionStatus(r.Context(), status)
	if err != nil {
		response.InternalServerError(w, "Error filtering patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients filtered by MEDISION_STATUS: "+status, patients)
}

func (h *PatientHandler) GetByDoctorStatus(w http.ResponseWriter, r *http.Request) {
	status := mux.Vars(r)["status"]

	patients, err := h.patientUsecase.GetByDoctorStatus(r.Context(), status)
	if err != nil {
		response.InternalServerError(w, "Error filtering patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients filtered by DOCTOR_STATUS: "+status, patients)
}

func (h *PatientHandler) GetByLabStatus(w http.ResponseWriter, r *http.Request) {
	status := mux.Vars(r)["status"]

	patients, err := h.patientUsecase.GetByLabStatus(r.Context(), status)
	if err != nil {
		response.InternalServerError(w, "Error filtering patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients filtered by LAB_STATUS: "+status, patients)
}

func (h *PatientHandler) FilterPatientsNative(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	fromDate := query.Get("fromDate")
	medisionStatus := query.Get("medisionStatus")
	doctorStatus := query.Get("doctorStatus")

	var doctorID int64
	if raw := query.Get("doctorId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "doctorId must be numeric", nil)
			return
		}
		doctorID = parsed
	}

	patients, err := h.patientUsecase.FilterNative(r.Context(), fromDate, medisionStatus, doctorStatus, doctorID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrFromDateRequired), errors.Is(err, usecase.ErrInvalidFromDate):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Error while fetching data")
		}
		return
	}

	response.SuccessWithCount(w, http.StatusOK, "Filtered patient data fetched successfully", patients, len(patients))
}

func (h *PatientHandler) GetFullPatientDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "patientId")
	if !ok {
		return
	}

	details, err := h.patientUsecase.FullDetails(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.NotFound(w, "No details found")
			return
		}
		response.InternalServerError(w, "Error fetching full details")
		return
	}

	response.Success(w, http.StatusOK, "Full patient details fetched successfully", details)
}

func (h *PatientHandler) GetTodayAll(w http.ResponseWriter, r *http.Request) {
	h.respondToday(w, r, h.patientUsecase.TodayAll)
}

func (h *PatientHandler) GetTodayDoctorCompleted(w http.ResponseWriter, r *http.Request) {
	h.respondToday(w, r, h.patientUsecase.TodayDoctorCompleted)
}

func (h *PatientHandler) GetTodayDoctorPending(w http.ResponseWriter, r *http.Request) {
	h.respondToday(w, r, h.patientUsecase.TodayDoctorPending)
}

func (h *PatientHandler) respondToday(w http.ResponseWriter, r *http.Request, fetch func(ctx context.Context) (*dto.TodayPatientsResult, error)) {
	result, err := fetch(r.Context())
	if err != nil {
		response.InternalServerError(w, "Error fetching today's patients")
		return
	}

	response.SuccessWithDate(w, result.Patients, len(result.Patients), result.Date)
}

// parseID extracts a numeric path variable, writing a 400 response on
// failure.
func parseID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid "+name, nil)
		return 0, false
	}
	return id, true
}
