package model

import "time"

type TransactionStatus string

const TransactionStatusPending TransactionStatus = "pending"

// The three status columns model the seller/purchaser confirmation flow.
// No handler transitions them past pending yet; the workflow is still an
// open product decision.
type Transaction struct {
	ID              uint64            `gorm:"primaryKey;autoIncrement"`
	Date            time.Time         `gorm:"column:date;autoCreateTime"`
	GeneralStatus   TransactionStatus `gorm:"column:general_status;size:20;not null;default:pending"`
	SellerStatus    TransactionStatus `gorm:"column:seller_status;size:20;not null;default:pending"`
	PurchaserStatus TransactionStatus `gorm:"column:purchaser_status;size:20;not null;default:pending"`
	PostID          uint64            `gorm:"column:post_id;index;not null"`
	StudentID       uint64            `gorm:"column:student_id;index;not null"`
}

func (Transaction) TableName() string {
	return "transactions"
}
