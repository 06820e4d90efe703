package entity

// DoctorStatusActive is the default status assigned to newly created doctors.
const DoctorStatusActive = "ACTIVE"

// Doctor represents a doctor master record. Password is transient: it is only
// carried through creation so the credential service can provision a
// login_details row, and is never persisted on this table.
type Doctor struct {
	ID               int64  `gorm:"column:doctor_id;primaryKey;autoIncrement" json:"doctorId"`
	DoctorName       string `gorm:"type:varchar(100);not null" json:"doctorName"`
	Specialization   string `gorm:"type:varchar(100);index" json:"specialization,omitempty"`
	Phone            string `gorm:"type:varchar(20);uniqueIndex:doctors_phone_key" json:"phone"`
	Email            string `gorm:"type:varchar(100);uniqueIndex:doctors_email_key,where:email <> ''" json:"email"`
	MedicalLicenseNo string `gorm:"type:varchar(50);uniqueIndex:doctors_medical_license_no_key,where:medical_license_no <> ''" json:"medicalLicenseNo"`
	Experience       string `gorm:"type:varchar(50)" json:"experience,omitempty"`
	Status           string `gorm:"type:varchar(20);index" json:"status"`
	Address          string `gorm:"type:text" json:"address,omitempty"`
	DateOfBirth      string `gorm:"type:varchar(20)" json:"dateOfBirth,omitempty"`
	Gender           string `gorm:"type:varchar(10)" json:"gender,omitempty"`
	City             string `gorm:"type:varchar(50)" json:"city,omitempty"`
	State            string `gorm:"type:varchar(50)" json:"state,omitempty"`
	PinCode          string `gorm:"type:varchar(10)" json:"pinCode,omitempty"`
	Country          string `gorm:"type:varchar(50)" json:"country,omitempty"`
	Role             string `gorm:"type:varchar(30)" json:"role,omitempty"`
	Image            string `gorm:"type:text" json:"image,omitempty"`
	Password         string `gorm:"-" json:"-"`
}

func (Doctor) TableName() string {
	return "doctors"
}
