package models

import "time"

// Category groups bookkeeping transactions. Kind fixes the direction: a
// category is either income or expense, never both.
type Category struct {
	ID        string       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name      string       `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	Kind      CategoryKind `json:"kind" gorm:"not null;type:varchar(10)" validate:"required,oneof=income expense"`
	IsActive  bool         `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time   `json:"deleted_at,omitempty" gorm:"index"`
}

// Transaction is a single income or expense entry in the school's books.
type Transaction struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	CategoryID string     `json:"category_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Title      string     `json:"title" gorm:"not null" validate:"required"`
	Amount     float64    `json:"amount" gorm:"not null;type:numeric" validate:"required,gt=0"`
	Date       time.Time  `json:"date" gorm:"not null;index;type:date" validate:"required"`
	Notes      string     `json:"notes,omitempty" gorm:"type:text"`
	RecordedBy string     `json:"recorded_by,omitempty" gorm:"index;type:uuid"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
}
