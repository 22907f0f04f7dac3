package model

// Student IDs are client-supplied at registration, so no autoIncrement.
type Student struct {
	ID              uint64  `gorm:"primaryKey"`
	Email           string  `gorm:"size:50;not null;uniqueIndex:uk_students_email"`
	Name            string  `gorm:"size:50;not null"`
	Level           int     `gorm:"not null"`
	PhoneNumber     string  `gorm:"column:phone_number;size:9;not null"`
	ProfileImageURL *string `gorm:"column:profile_image_url;size:500"`
	SellerRating    float64 `gorm:"column:seller_rating;not null;default:0"`
	PurchaserRating float64 `gorm:"column:purchaser_rating;not null;default:0"`
	CareerID        uint64  `gorm:"column:career_id;index;not null"`
	Career          *Career `gorm:"foreignKey:CareerID"`
}

func (Student) TableName() string {
	return "students"
}
