package models

import "time"

// Order workflow status. Orthogonal to billing: an order's Total is frozen
// at creation no matter how the status moves afterwards.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusServed    = "SERVED"
	OrderStatusCancelled = "CANCELLED"
)

// Order is a point-in-time consumption record attached to an open table
// session. There is no update or delete path for its billing fields.
type Order struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	TableID        uint          `gorm:"not null;index" json:"table_id"`
	Table          *Table        `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"table,omitempty"`
	TableSessionID uint          `gorm:"not null;index" json:"table_session_id"`
	TableSession   *TableSession `gorm:"foreignKey:TableSessionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Status         string        `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	DiscountRate   float64       `gorm:"not null;default:1.0" json:"discount_rate"`
	// Total = sum of item quantity x snapshotted unit price, times
	// DiscountRate. Computed once at creation.
	Total     float64     `gorm:"type:decimal(12,2);not null" json:"total"`
	Items     []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time   `gorm:"not null" json:"updated_at"`
}
