package model

type Testimonial struct {
	BaseModel
	UserID  uint   `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	User    *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Content string `gorm:"type:text;not null" json:"content"`
	Rating  int    `gorm:"not null" json:"rating"` // 1..5
}

func (Testimonial) TableName() string {
	return "testimonials"
}
