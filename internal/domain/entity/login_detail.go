package entity

// LoginRoleDoctor is the default role for credentials provisioned at doctor
// creation time.
const LoginRoleDoctor = "DOCTOR"

// LoginDetail is a login credential row, provisioned once when a doctor is
// created with both email and password. Doctor edits never cascade here.
// Passwords are stored bcrypt-hashed.
type LoginDetail struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Email    string `gorm:"type:varchar(100);uniqueIndex:login_details_email_key;not null" json:"email"`
	Password string `gorm:"type:varchar(100);not null" json:"-"`
	Role     string `gorm:"type:varchar(30);not null" json:"role"`
}

func (LoginDetail) TableName() string {
	return "login_details"
}
