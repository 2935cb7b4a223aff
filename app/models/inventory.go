package models

import "time"

// Item represents a stocked inventory item (uniforms, books, supplies).
type Item struct {
	ID            string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name          string     `json:"name" gorm:"not null" validate:"required"`
	Category      string     `json:"category,omitempty"`
	UnitPrice     float64    `json:"unit_price" gorm:"not null;type:numeric" validate:"required,gte=0"`
	UnitCost      float64    `json:"unit_cost" gorm:"type:numeric;default:0"`
	StockQty      int        `json:"stock_qty" gorm:"not null;default:0"`
	LowStockLevel int        `json:"low_stock_level" gorm:"default:5"`
	IsActive      bool       `json:"is_active" gorm:"default:true;index"`
	CreatedAt     time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

// IsLowStock reports whether the item has fallen to its reorder level.
func (i *Item) IsLowStock() bool {
	return i.StockQty <= i.LowStockLevel
}

// Sale represents a single over-the-counter sale of an inventory item.
// UnitPrice is snapshotted at sale time so later price edits don't rewrite
// history.
type Sale struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	ItemID    string     `json:"item_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Quantity  int        `json:"quantity" gorm:"not null" validate:"required,gt=0"`
	UnitPrice float64    `json:"unit_price" gorm:"not null;type:numeric"`
	Total     float64    `json:"total" gorm:"not null;type:numeric"`
	SoldBy    string     `json:"sold_by,omitempty" gorm:"index;type:uuid"`
	SoldAt    time.Time  `json:"sold_at" gorm:"not null;index"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Item *Item `json:"item,omitempty" gorm:"foreignKey:ItemID;references:ID"`
}
