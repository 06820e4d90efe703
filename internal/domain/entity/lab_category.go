package entity

// LabCategory groups lab tests (e.g. Hematology, Radiology).
type LabCategory struct {
	ID           int64  `gorm:"column:category_id;primaryKey;autoIncrement" json:"categoryId"`
	CategoryName string `gorm:"type:varchar(100);not null" json:"categoryName"`
}

func (LabCategory) TableName() string {
	return "lab_categories"
}
