package dto

// DoctorRequest carries caller-supplied doctor fields for create and update.
// Password is consumed by credential provisioning at create time only.
type DoctorRequest struct {
	DoctorName       string `json:"doctorName" validate:"required,max=100"`
	Specialization   string `json:"specialization" validate:"max=100"`
	Phone            string `json:"phone" validate:"required,max=20"`
	Email            string `json:"email" validate:"omitempty,email,max=100"`
	MedicalLicenseNo string `json:"medicalLicenseNo" validate:"max=50"`
	Experience       string `json:"experience"`
	Status           string `json:"status"`
	Address          string `json:"address"`
	DateOfBirth      string `json:"dateOfBirth"`
	Gender           string `json:"gender"`
	City             string `json:"city"`
	State            string `json:"state"`
	PinCode          string `json:"pinCode"`
	Country          string `json:"country"`
	Role             string `json:"role"`
	Image            string `json:"image"`
	Password         string `json:"password"`
}

// DoctorResponse mirrors the stored doctor record, minus credentials.
type DoctorResponse struct {
	DoctorID         int64  `json:"doctorId"`
	DoctorName       string `json:"doctorName"`
	Specialization   string `json:"specialization,omitempty"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	MedicalLicenseNo string `json:"medicalLicenseNo"`
	Experience       string `json:"experience,omitempty"`
	Status           string `json:"status"`
	Address          string `json:"address,omitempty"`
	DateOfBirth      string `json:"dateOfBirth,omitempty"`
	Gender           string `json:"gender,omitempty"`
	City             string `json:"city,omitempty"`
	State            string `json:"state,omitempty"`
	PinCode          string `json:"pinCode,omitempty"`
	Country          string `json:"country,omitempty"`
	Role             string `json:"role,omitempty"`
	Image            string `json:"image,omitempty"`
}

// DoctorStatusRequest changes a doctor's status.
type DoctorStatusRequest struct {
	Status string `json:"status" validate:"required,status"`
}
