package entity

// Workflow status values. Statuses are stored as free text for wire
// compatibility; these constants cover the conventional values.
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
)

// Patient represents a front-desk patient record. Appointment date is stored
// as DD-MON-YY upper-case text (e.g. 05-JAN-24), appointment time as free
// text, matching the legacy schema the frontend reads.
type Patient struct {
	ID                 int64  `gorm:"column:patient_id;primaryKey;autoIncrement" json:"patientId"`
	Name               string `gorm:"type:varchar(100);not null" json:"name"`
	Gender             string `gorm:"type:varchar(10)" json:"gender,omitempty"`
	Disease            string `gorm:"type:varchar(255)" json:"disease,omitempty"`
	Aadhar             string `gorm:"type:varchar(20);uniqueIndex:patients_aadhar_key" json:"aadhar"`
	Phone              string `gorm:"type:varchar(20);uniqueIndex:patients_phone_key" json:"phone"`
	DateOfBirth        string `gorm:"type:varchar(20)" json:"dateOfBirth,omitempty"`
	Address            string `gorm:"type:text" json:"address,omitempty"`
	DoctorID           int64  `gorm:"index" json:"doctorId,omitempty"`
	AppointmentDate    string `gorm:"type:varchar(12)" json:"appointmentDate"`
	AppointmentTime    string `gorm:"type:varchar(20)" json:"appointmentTime"`
	MedisionStatus     string `gorm:"type:varchar(30)" json:"medisionStatus"`
	DoctorStatus       string `gorm:"type:varchar(30)" json:"doctorStatus"`
	LabStatus          string `gorm:"type:varchar(30)" json:"labStatus"`
	DosageInstructions string `gorm:"type:text" json:"dosageInstructions,omitempty"`
	Notes              string `gorm:"type:text" json:"notes,omitempty"`
	SelectedMedicines  string `gorm:"type:text" json:"selectedMedicines,omitempty"`
	SelectedTests      string `gorm:"type:text" json:"selectedTests,omitempty"`
	Medication         string `gorm:"type:text" json:"medication,omitempty"`
	DateIssued         string `gorm:"type:varchar(20)" json:"dateIssued,omitempty"`
	GeneratedAt        string `gorm:"type:varchar(40)" json:"generatedAt,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
