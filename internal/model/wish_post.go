package model

import "time"

// A student can wish a given post at most once.
type WishPost struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	AddedDate time.Time `gorm:"column:added_date;autoCreateTime"`
	PostID    uint64    `gorm:"column:post_id;not null;uniqueIndex:uk_wish_posts_post_student"`
	Post      *Post     `gorm:"foreignKey:PostID"`
	StudentID uint64    `gorm:"column:student_id;not null;uniqueIndex:uk_wish_posts_post_student"`
}

func (WishPost) TableName() string {
	return "wish_posts"
}
