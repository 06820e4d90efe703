package dto

// PatientRequest carries the caller-supplied patient fields for add and full
// update. Status fields are honored on full update only; add forces all three
// to Pending. AppointmentDate, when present, must be YYYY-MM-DD.
type PatientRequest struct {
	Name               string `json:"name" validate:"required,max=100"`
	Gender             string `json:"gender" validate:"max=10"`
	Disease            string `json:"disease"`
	Aadhar             string `json:"aadhar" validate:"required,max=20"`
	Phone              string `json:"phone" validate:"required,max=20"`
	DateOfBirth        string `json:"dateOfBirth"`
	Address            string `json:"address"`
	DoctorID           int64  `json:"doctorId"`
	AppointmentDate    string `json:"appointmentDate"`
	AppointmentTime    string `json:"appointmentTime"`
	MedisionStatus     string `json:"medisionStatus"`
	DoctorStatus       string `json:"doctorStatus"`
	LabStatus          string `json:"labStatus"`
	DosageInstructions string `json:"dosageInstructions"`
	Notes              string `json:"notes"`
	SelectedMedicines  string `json:"selectedMedicines"`
	SelectedTests      string `json:"selectedTests"`
	Medication         string `json:"medication"`
	DateIssued         string `json:"dateIssued"`
	GeneratedAt        string `json:"generatedAt"`
}

// PatientResponse mirrors the stored patient record.
type PatientResponse struct {
	PatientID          int64  `json:"patientId"`
	Name               string `json:"name"`
	Gender             string `json:"gender,omitempty"`
	Disease            string `json:"disease,omitempty"`
	Aadhar             string `json:"aadhar"`
	Phone              string `json:"phone"`
	DateOfBirth        string `json:"dateOfBirth,omitempty"`
	Address            string `json:"address,omitempty"`
	DoctorID           int64  `json:"doctorId,omitempty"`
	AppointmentDate    string `json:"appointmentDate"`
	AppointmentTime    string `json:"appointmentTime"`
	MedisionStatus     string `json:"medisionStatus"`
	DoctorStatus       string `json:"doctorStatus"`
	LabStatus          string `json:"labStatus"`
	DosageInstructions string `json:"dosageInstructions,omitempty"`
	Notes              string `json:"notes,omitempty"`
	SelectedMedicines  string `json:"selectedMedicines,omitempty"`
	SelectedTests      string `json:"selectedTests,omitempty"`
	Medication         string `json:"medication,omitempty"`
	DateIssued         string `json:"dateIssued,omitempty"`
	GeneratedAt        string `json:"generatedAt,omitempty"`
}

// PatientSummary is the patient slice of the full-details view.
type PatientSummary struct {
	PatientID      int64  `json:"patientId"`
	Name           string `json:"name"`
	Gender         string `json:"gender"`
	Disease        string `json:"disease"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	DoctorStatus   string `json:"doctorStatus"`
	MedisionStatus string `json:"medisionStatus"`
	LabStatus      string `json:"labStatus"`
}

// BedBookingInfo is the booking slice of the full-details view; all fields
// are empty when the patient has no booking.
type BedBookingInfo struct {
	BookingID     int64  `json:"bookingId,omitempty"`
	BedID         int64  `json:"bedId,omitempty"`
	AdmissionDate string `json:"admissionDate,omitempty"`
	DischargeDate string `json:"dischargeDate,omitempty"`
	Status        string `json:"status,omitempty"`
}

// WardInfo is the ward slice of the full-details view; all fields are empty
// when the booking has no ward.
type WardInfo struct {
	WardID    int64  `json:"wardId,omitempty"`
	WardName  string `json:"wardName,omitempty"`
	WardType  string `json:"wardType,omitempty"`
	TotalBeds int    `json:"totalBeds,omitempty"`
	CreatedOn string `json:"createdOn,omitempty"`
}

// PatientFullDetailsResponse is the three-part full-details structure.
type PatientFullDetailsResponse struct {
	Patient    PatientSummary `json:"patient"`
	BedBooking BedBookingInfo `json:"bedBooking"`
	Ward       WardInfo       `json:"ward"`
}

// TodayPatientsResult bundles a today query with the server-local date label.
type TodayPatientsResult struct {
	Date     string
	Patients []PatientResponse
}
