package model

type Career struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement"`
	CareerName string `gorm:"column:career_name;size:50;not null;uniqueIndex:uk_careers_name"`
}

func (Career) TableName() string {
	return "careers"
}
