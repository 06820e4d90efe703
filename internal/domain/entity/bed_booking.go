package entity

// BedBooking records a bed admission for a patient within a ward.
type BedBooking struct {
	BookingID     int64  `gorm:"column:booking_id;primaryKey;autoIncrement" json:"bookingId"`
	PatientID     int64  `gorm:"not null;index" json:"patientId"`
	BedID         int64  `json:"bedId"`
	WardID        int64  `gorm:"index" json:"wardId"`
	AdmissionDate string `gorm:"type:varchar(20)" json:"admissionDate,omitempty"`
	DischargeDate string `gorm:"type:varchar(20)" json:"dischargeDate,omitempty"`
	Status        string `gorm:"type:varchar(30)" json:"status,omitempty"`
}

func (BedBooking) TableName() string {
	return "bed_booking"
}
