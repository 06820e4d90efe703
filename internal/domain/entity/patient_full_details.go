package entity

// PatientFullDetailsRow is the flat projection of the full-details outer join
// (patient + latest bed booking + ward). Booking and ward columns are
// pointers because both joins are optional.
type PatientFullDetailsRow struct {
	PatientID      int64  `gorm:"column:patient_id"`
	Name           string `gorm:"column:name"`
	Gender         string `gorm:"column:gender"`
	Disease        string `gorm:"column:disease"`
	Phone          string `gorm:"column:phone"`
	Address        string `gorm:"column:address"`
	DoctorStatus   string `gorm:"column:doctor_status"`
	MedisionStatus string `gorm:"column:medision_status"`
	LabStatus      string `gorm:"column:lab_status"`

	BookingID     *int64  `gorm:"column:booking_id"`
	BedID         *int64  `gorm:"column:bed_id"`
	AdmissionDate *string `gorm:"column:admission_date"`
	DischargeDate *string `gorm:"column:discharge_date"`
	BedStatus     *string `gorm:"column:bed_status"`

	WardID    *int64  `gorm:"column:ward_id"`
	WardName  *string `gorm:"column:ward_name"`
	WardType  *string `gorm:"column:ward_type"`
	TotalBeds *int    `gorm:"column:total_beds"`
	CreatedOn *string `gorm:"column:created_on"`
}
