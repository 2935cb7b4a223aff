package models

import "time"

// Installment represents a partial tuition payment within a student's
// payment plan. Date keeps the textual form shown on receipts; paid_amount
// may differ from amount when a stage was settled partially.
type Installment struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID  string     `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Amount     float64    `json:"amount" gorm:"not null;type:numeric" validate:"required,gt=0"`
	PaidAmount float64    `json:"paid_amount" gorm:"type:numeric;default:0"`
	Paid       bool       `json:"paid" gorm:"default:false;index"`
	Status     string     `json:"status,omitempty" gorm:"type:varchar(20)"` // legacy "paid" marker
	Date       string     `json:"date,omitempty" gorm:"type:text"`
	Note       string     `json:"note,omitempty" gorm:"type:text"`
	Receiver   string     `json:"receiver,omitempty"`
	ReceiptNo  string     `json:"receipt_no,omitempty" gorm:"uniqueIndex"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}
