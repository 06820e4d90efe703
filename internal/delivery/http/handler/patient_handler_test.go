package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/usecase"
	"go-hospital-management/pkg/response"
	"go-hospital-management/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPatientUsecase satisfies usecase.PatientUsecase via function fields.
type stubPatientUsecase struct {
	add           func(req *dto.PatientRequest) (*dto.PatientResponse, error)
	getAll        func() ([]dto.PatientResponse, error)
	getByID       func(id int64) (*dto.PatientResponse, error)
	update        func(id int64, req *dto.PatientRequest) (*dto.PatientResponse, error)
	partialUpdate func(id int64, updates map[string]interface{}) (*dto.PatientResponse, error)
	delete        func(id int64) error
	count         func() (int64, error)
	byStatus      func(status string) ([]dto.PatientResponse, error)
	filterNative  func(fromDate, medisionStatus, doctorStatus string, doctorID int64) ([]dto.PatientResponse, error)
	fullDetails   func(patientID int64) (*dto.PatientFullDetailsResponse, error)
	today         func() (*dto.TodayPatientsResult, error)
}

func (s *stubPatientUsecase) Add(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	return s.add(req)
}

func (s *stubPatientUsecase) GetAll(ctx context.Context) ([]dto.PatientResponse, error) {
	return s.getAll()
}

func (s *stubPatientUsecase) GetByID(ctx context.Context, id int64) (*dto.PatientResponse, error) {
	return s.getByID(id)
}

func (s *stubPatientUsecase) Update(ctx context.Context, id int64, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	return s.update(id, req)
}

func (s *stubPatientUsecase) PartialUpdate(ctx context.Context, id int64, updates map[string]interface{}) (*dto.PatientResponse, error) {
	return s.partialUpdate(id, updates)
}

func (s *stubPatientUsecase) Delete(ctx context.Context, id int64) error {
	return s.delete(id)
}

func (s *stubPatientUsecase) Count(ctx context.Context) (int64, error) {
	return s.count()
}

func (s *stubPatientUsecase) GetByMedisionStatus(ctx context.Context, status string) ([]dto.PatientResponse, error) {
	return s.byStatus(status)
}

func (s *stubPatientUsecase) GetByDoctorStatus(ctx context.Context, status string) ([]dto.PatientResponse, error) {
	return s.byStatus(status)
}

func (s *stubPatientUsecase) GetByLabStatus(ctx context.Context, status string) ([]dto.PatientResponse, error) {
	return s.byStatus(status)
}

func (s *stubPatientUsecase) FilterNative(ctx context.Context, fromDate, medisionStatus, doctorStatus string, doctorID int64) ([]dto.PatientResponse, error) {
	return s.filterNative(fromDate, medisionStatus, doctorStatus, doctorID)
}

func (s *stubPatientUsecase) FullDetails(ctx context.Context, patientID int64) (*dto.PatientFullDetailsResponse, error) {
	return s.fullDetails(patientID)
}

func (s *stubPatientUsecase) TodayAll(ctx context.Context) (*dto.TodayPatientsResult, error) {
	return s.today()
}

func (s *stubPatientUsecase) TodayDoctorCompleted(ctx context.Context) (*dto.TodayPatientsResult, error) {
	return s.today()
}

func (s *stubPatientUsecase) TodayDoctorPending(ctx context.Context) (*dto.TodayPatientsResult, error) {
	return s.today()
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func patientBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	payload, err := json.Marshal(dto.PatientRequest{
		Name:   "Ravi Kumar",
		Aadhar: "123456789012",
		Phone:  "9876543210",
	})
	require.NoError(t, err)
	return bytes.NewBuffer(payload)
}

func TestAddPatientCreated(t *testing.T) {
	uc := &stubPatientUsecase{
		add: func(req *dto.PatientRequest) (*dto.PatientResponse, error) {
			return &dto.PatientResponse{PatientID: 1, Name: req.Name, MedisionStatus: "Pending"}, nil
		},
	}
	h := NewPatientHandler(uc, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/patient/add", patientBody(t))
	rec := httptest.NewRecorder()
	h.AddPatient(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, "Patient added successfully", body.Message)
}

func TestAddPatientValidation(t *testing.T) {
	h := NewPatientHandler(&stubPatientUsecase{}, validator.NewValidator())

	payload, _ := json.Marshal(map[string]string{"name": "Ravi Kumar"})
	req := httptest.NewRequest(http.MethodPost, "/api/patient/add", bytes.NewBuffer(payload))
	rec := httptest.NewRecorder()
	h.AddPatient(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.False(t, body.Success)
	assert.Equal(t, "Validation failed", body.Message)
}

func TestAddPatientDuplicateConflict(t *testing.T) {
	uc := &stubPatientUsecase{
		add: func(req *dto.PatientRequest) (*dto.PatientResponse, error) {
			return nil, usecase.ErrPatientAadharExists
		},
	}
	h := NewPatientHandler(uc, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/patient/add", patientBody(t))
	rec := httptest.NewRecorder()
	h.AddPatient(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "Aadhar number already exists!", body.Message)
}

func TestGetPatientByIDNotFound(t *testing.T) {
	uc := &stubPatientUsecase{
		getByID: func(id int64) (*dto.PatientResponse, error) {
			return nil, usecase.ErrPatientNotFound
		},
	}
	h := NewPatientHandler(uc, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/patient/42", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "42"})
	rec := httptest.NewRecorder()
	h.GetPatientByID(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "Patient not found with ID: 42", body.Message)
}

func TestGetPatientByIDBadID(t *testing.T) {
	h := NewPatientHandler(&stubPatientUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/patient/abc", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "abc"})
	rec := httptest.NewRecorder()
	h.GetPatientByID(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPatchPatientPassesUpdates(t *testing.T) {
	var gotUpdates map[string]interface{}
	uc := &stubPatientUsecase{
		partialUpdate: func(id int64, updates map[string]interface{}) (*dto.PatientResponse, error) {
			gotUpdates = updates
			return &dto.PatientResponse{PatientID: id, DoctorStatus: "Completed"}, nil
		},
	}
	h := NewPatientHandler(uc, validator.NewValidator())

	payload, _ := json.Marshal(map[string]interface{}{"doctorStatus": "Completed"})
	req := httptest.NewRequest(http.MethodPatch, "/api/patient/1", bytes.NewBuffer(payload))
	req = mux.SetURLVars(req, map[string]string{"id": "1"})
	rec := httptest.NewRecorder()
	h.PatchPatient(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Completed", gotUpdates["doctorStatus"])
}

func TestGetPatientCount(t *testing.T) {
	uc := &stubPatientUsecase{
		count: func() (int64, error) { return 12, nil },
	}
	h := NewPatientHandler(uc, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/patient/count", nil)
	rec := httptest.NewRecorder()
	h.GetPatientCount(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	require.NotNil(t, body.Count)
	assert.Equal(t, 12, *body.Count)
}

func TestFilterPatientsNativeBadFromDate(t *testing.T) {
	uc := &stubPatientUsecase{
		filterNative: func(fromDate, medisionStatus, doctorStatus string, doctorID int64) ([]dto.PatientResponse, error) {
			return nil, usecase.ErrFromDateRequired
		},
	}
	h := NewPatientHandler(uc, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/patient/filter/native", nil)
	rec := httptest.NewRecorder()
	h.FilterPatientsNative(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "'fromDate' cannot be empty", body.Message)
}

func TestFilterPatientsNativeParsesQuery(t *testing.T) {
	var gotDate, gotDoctor string
	var gotDoctorID int64
	uc := &stubPatientUsecase{
		filterNative: func(fromDate, medisionStatus, doctorStatus string, doctorID int64) ([]dto.PatientResponse, error) {
			gotDate, gotDoctor, gotDoctorID = fromDate, doctorStatus, doctorID
			return []dto.PatientResponse{{PatientID: 1}}, nil
		},
	}
	h := NewPatientHandler(uc, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/patient/filter/native?fromDate=2024-01-05&doctorStatus=Pending&doctorId=3", nil)
	rec := httptest.NewRecorder()
	h.FilterPatientsNative(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2024-01-05", gotDate)
	assert.Equal(t, "Pending", gotDoctor)
	assert.Equal(t, int64(3), gotDoctorID)

	body := decodeEnvelope(t, rec)
	require.NotNil(t, body.Count)
	assert.Equal(t, 1, *body.Count)
}

func TestFilterPatientsNativeRejectsNonNumericDoctorID(t *testing.T) {
	h := NewPatientHandler(&stubPatientUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/patient/filter/native?fromDate=2024-01-05&doctorId=abc", nil)
	rec := httptest.NewRecorder()
	h.FilterPatientsNative(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTodayAllEnvelope(t *testing.T) {
	uc := &stubPatientUsecase{
		today: func() (*dto.TodayPatientsResult, error) {
			return &dto.TodayPatientsResult{
				Date:     "05-JAN-24",
				Patients: []dto.PatientResponse{{PatientID: 1}, {PatientID: 2}},
			}, nil
		},
	}
	h := NewPatientHandler(uc, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/patient/today/all", nil)
	rec := httptest.NewRecorder()
	h.GetTodayAll(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "05-JAN-24", body.Date)
	require.NotNil(t, body.Count)
	assert.Equal(t, 2, *body.Count)
}
