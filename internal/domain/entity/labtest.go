package entity

import "github.com/shopspring/decimal"

// LabTest is a bookable lab test belonging to a category.
type LabTest struct {
	ID         int64           `gorm:"column:test_id;primaryKey;autoIncrement" json:"testId"`
	TestName   string          `gorm:"type:varchar(100);not null" json:"testName"`
	TestCost   decimal.Decimal `gorm:"type:decimal(10,2)" json:"testCost"`
	CategoryID int64           `gorm:"not null;index" json:"categoryId"`

	Category LabCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (LabTest) TableName() string {
	return "lab_tests"
}
