package http

import (
	"net/http"

	"go-hospital-management/internal/delivery/http/handler"
	"go-hospital-management/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router          *mux.Router
	patientHandler  *handler.PatientHandler
	doctorHandler   *handler.DoctorHandler
	labHandler      *handler.LabHandler
	auditLogHandler *handler.AuditLogHandler
	corsMiddleware  *middleware.CORSMiddleware
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	labHandler *handler.LabHandler,
	auditLogHandler *handler.AuditLogHandler,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		patientHandler:  patientHandler,
		doctorHandler:   doctorHandler,
		labHandler:      labHandler,
		auditLogHandler: auditLogHandler,
		corsMiddleware:  corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Patient routes
	patient := api.PathPrefix("/patient").Subrouter()
	patient.HandleFunc("/add", r.patientHandler.AddPatient).Methods(http.MethodPost)
	patient.HandleFunc("", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	patient.HandleFunc("/count", r.patientHandler.GetPatientCount).Methods(http.MethodGet)
	patient.HandleFunc("/filter/medicine/{status}", r.patientHandler.GetByMedisionStatus).Methods(http.MethodGet)
	patient.HandleFunc("/filter/doctor/{status}", r.patientHandler.GetByDoctorStatus).Methods(http.MethodGet)
	patient.HandleFunc("/filter/lab/{status}", r.patientHandler.GetByLabStatus).Methods(http.MethodGet)
	patient.HandleFunc("/filter/native", r.patientHandler.FilterPatientsNative).Methods(http.MethodGet)
	patient.HandleFunc("/full-details/{patientId}", r.patientHandler.GetFullPatientDetails).Methods(http.MethodGet)
	patient.HandleFunc("/today/all", r.patientHandler.GetTodayAll).Methods(http.MethodGet)
	patient.HandleFunc("/today/doctor-completed", r.patientHandler.GetTodayDoctorCompleted).Methods(http.MethodGet)
	patient.HandleFunc("/today/doctor-pending", r.patientHandler.GetTodayDoctorPending).Methods(http.MethodGet)
	patient.HandleFunc("/{id}", r.patientHandler.GetPatientByID).Methods(http.MethodGet)
	patient.HandleFunc("/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	patient.HandleFunc("/{id}", r.patientHandler.PatchPatient).Methods(http.MethodPatch)
	patient.HandleFunc("/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Doctor routes
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.HandleFunc("", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	doctor.HandleFunc("", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	doctor.HandleFunc("/count", r.doctorHandler.GetDoctorCount).Methods(http.MethodGet)
	doctor.HandleFunc("/active", r.doctorHandler.GetActiveDoctors).Methods(http.MethodGet)
	doctor.HandleFunc("/specialization/{specialization}", r.doctorHandler.GetDoctorsBySpecialization).Methods(http.MethodGet)
	doctor.HandleFunc("/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	doctor.HandleFunc("/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	doctor.HandleFunc("/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)
	doctor.HandleFunc("/{id}/status", r.doctorHandler.ChangeDoctorStatus).Methods(http.MethodPatch)

	// Lab routes
	lab := api.PathPrefix("/lab").Subrouter()
	lab.HandleFunc("/category", r.labHandler.GetAllCategories).Methods(http.MethodGet)
	lab.HandleFunc("/category", r.labHandler.AddCategory).Methods(http.MethodPost)
	lab.HandleFunc("/category/{id}", r.labHandler.UpdateCategory).Methods(http.MethodPut)
	lab.HandleFunc("/category/{id}", r.labHandler.DeleteCategory).Methods(http.MethodDelete)
	lab.HandleFunc("/test", r.labHandler.GetAllTests).Methods(http.MethodGet)
	lab.HandleFunc("/test", r.labHandler.AddTest).Methods(http.MethodPost)
	lab.HandleFunc("/test/{id}", r.labHandler.PatchTest).Methods(http.MethodPatch)
	lab.HandleFunc("/test/{id}", r.labHandler.DeleteTest).Methods(http.MethodDelete)
	lab.HandleFunc("/report/upload", r.labHandler.UploadReport).Methods(http.MethodPost)
	lab.HandleFunc("/report/patient/{patientId}", r.labHandler.GetReportsByPatient).Methods(http.MethodGet)
	lab.HandleFunc("/report/{id}/download", r.labHandler.DownloadReport).Methods(http.MethodGet)
	lab.HandleFunc("/report/{id}/file", r.labHandler.PatchReportFile).Methods(http.MethodPatch)
	lab.HandleFunc("/report/{id}", r.labHandler.DeleteReport).Methods(http.MethodDelete)

	// Audit trail
	api.HandleFunc("/audit", r.auditLogHandler.GetRecent).Methods(http.MethodGet)

	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
