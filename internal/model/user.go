package model

import "time"

type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
	Admin   UserRole = "admin"
)

// ValidRole maps unknown role values to the student default.
func ValidRole(role string) UserRole {
	switch UserRole(role) {
	case Student, Teacher, Admin:
		return UserRole(role)
	default:
		return Student
	}
}

type User struct {
	BaseModel
	FullName  string    `gorm:"size:100;not null" json:"fullname"`
	Email     string    `gorm:"size:100;unique;not null" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Role      UserRole  `gorm:"type:enum('student','teacher','admin');default:'student'" json:"role"`
	Avatar    string    `gorm:"size:255" json:"avatar"`
	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}
