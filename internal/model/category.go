package model

type Category struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"size:50;not null;uniqueIndex:uk_categories_name"`
	Description string `gorm:"size:200;not null"`
	ImageURL    string `gorm:"column:image_url;size:500;not null"`
}

func (Category) TableName() string {
	return "categories"
}
