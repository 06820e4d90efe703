package entity

// LabReport holds an uploaded report file for a patient and test. The payload
// is stored in-row as an opaque blob; uploads are size-capped at the HTTP
// boundary.
type LabReport struct {
	ID         int64  `gorm:"column:report_id;primaryKey;autoIncrement" json:"reportId"`
	PatientID  int64  `gorm:"not null;index" json:"patientId"`
	TestID     int64  `gorm:"not null;index" json:"testId"`
	FileName   string `gorm:"type:varchar(255)" json:"fileName"`
	FileType   string `gorm:"type:varchar(100)" json:"fileType"`
	ReportFile []byte `gorm:"type:bytea" json:"-"`

	Test LabTest `gorm:"foreignKey:TestID" json:"test,omitempty"`
}

func (LabReport) TableName() string {
	return "lab_reports"
}
