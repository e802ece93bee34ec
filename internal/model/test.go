package model

type Test struct {
	UUIDBase
	Name            string `gorm:"size:255;not null" json:"name"`
	Description     string `gorm:"type:text" json:"description"` // subject line shown on exam cards
	DurationMinutes int    `gorm:"default:0" json:"durationMinutes"`
	CreatorID       uint   `gorm:"index;type:bigint unsigned" json:"creatorId"`
	Creator         *User  `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
}

func (Test) TableName() string {
	return "tests"
}
