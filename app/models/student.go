package models

import (
	"time"

	"github.com/shopspring/decimal"

	"sala-admin/app/ledger"
)

// Student represents a registered student together with the financial
// snapshot taken at enrollment. Fee amounts are stored as numeric columns;
// due_date and payment_status keep the raw legacy text the old panel wrote,
// so the ledger package stays the single interpreter of those encodings.
type Student struct {
	ID            string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentCode   string     `json:"student_code" gorm:"uniqueIndex;not null" validate:"required"`
	FirstName     string     `json:"first_name" gorm:"not null" validate:"required"`
	LastName      string     `json:"last_name" gorm:"not null" validate:"required"`
	KhmerName     string     `json:"khmer_name,omitempty"`
	Gender        Gender     `json:"gender" gorm:"type:varchar(10)"`
	DateOfBirth   *time.Time `json:"date_of_birth,omitempty" gorm:"type:date"`
	Phone         string     `json:"phone,omitempty" gorm:"type:varchar(20)"`
	GuardianName  string     `json:"guardian_name,omitempty"`
	GuardianPhone string     `json:"guardian_phone,omitempty" gorm:"type:varchar(20)"`
	ClassName     string     `json:"class_name,omitempty"`
	PhotoURL      string     `json:"photo_url,omitempty" gorm:"type:text"`
	EnrolledAt    time.Time  `json:"enrolled_at" gorm:"not null;type:date"`

	TuitionFee      float64 `json:"tuition_fee" gorm:"type:numeric;default:0"`
	MaterialFee     float64 `json:"material_fee" gorm:"type:numeric;default:0"`
	AdminFee        float64 `json:"admin_fee" gorm:"type:numeric;default:0"`
	DiscountAmount  float64 `json:"discount_amount" gorm:"type:numeric;default:0"`
	DiscountPercent float64 `json:"discount_percent" gorm:"type:numeric;default:0"`
	InitialPayment  float64 `json:"initial_payment" gorm:"type:numeric;default:0"`
	DueDate         string  `json:"due_date,omitempty" gorm:"type:text"`       // raw legacy encoding
	PaymentStatus   string  `json:"payment_status,omitempty" gorm:"type:text"` // legacy free text

	IsActive  bool       `json:"is_active" gorm:"default:true;index"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Installments []*Installment `json:"installments,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}

// FullName returns the display name.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// LedgerAccount converts the stored row into the pure calculator's input.
func (s *Student) LedgerAccount() ledger.Account {
	insts := make([]ledger.Installment, 0, len(s.Installments))
	for _, i := range s.Installments {
		insts = append(insts, ledger.Installment{
			Amount:     decimal.NewFromFloat(i.Amount),
			PaidAmount: decimal.NewFromFloat(i.PaidAmount),
			Paid:       i.Paid,
			Status:     i.Status,
			Date:       i.Date,
			Note:       i.Note,
			Receiver:   i.Receiver,
		})
	}
	return ledger.Account{
		TuitionFee:      decimal.NewFromFloat(s.TuitionFee),
		MaterialFee:     decimal.NewFromFloat(s.MaterialFee),
		AdminFee:        decimal.NewFromFloat(s.AdminFee),
		DiscountAmount:  decimal.NewFromFloat(s.DiscountAmount),
		DiscountPercent: decimal.NewFromFloat(s.DiscountPercent),
		InitialPayment:  decimal.NewFromFloat(s.InitialPayment),
		Installments:    insts,
		DueDateRaw:      s.DueDate,
		LegacyStatus:    s.PaymentStatus,
	}
}
