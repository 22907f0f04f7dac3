package model

import "time"

type PostStatus string

const (
	PostStatusActive    PostStatus = "active"
	PostStatusInProcess PostStatus = "inProcess"
)

type Post struct {
	ID          uint64     `gorm:"primaryKey;autoIncrement"`
	Name        string     `gorm:"size:50;not null"`
	Price       float64    `gorm:"not null"`
	Description string     `gorm:"size:500;not null"`
	ImageURL    string     `gorm:"column:image_url;size:500;not null"`
	Status      PostStatus `gorm:"size:50;not null;default:active"`
	Level       int        `gorm:"not null"`
	PublishDate time.Time  `gorm:"column:publish_date;autoCreateTime"`

	CategoryID uint64    `gorm:"column:category_id;index;not null"`
	Category   *Category `gorm:"foreignKey:CategoryID"`
	StudentID  uint64    `gorm:"column:student_id;index;not null"`
	Student    *Student  `gorm:"foreignKey:StudentID"`
	Careers    []Career  `gorm:"many2many:post_careers"`
}

func (Post) TableName() string {
	return "posts"
}
