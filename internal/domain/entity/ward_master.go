package entity

// WardMaster describes a hospital ward and its bed capacity.
type WardMaster struct {
	WardID    int64  `gorm:"column:ward_id;primaryKey;autoIncrement" json:"wardId"`
	WardName  string `gorm:"type:varchar(100)" json:"wardName"`
	WardType  string `gorm:"type:varchar(50)" json:"wardType,omitempty"`
	TotalBeds int    `json:"totalBeds"`
	CreatedOn string `gorm:"type:varchar(20)" json:"createdOn,omitempty"`
}

func (WardMaster) TableName() string {
	return "ward_master"
}
