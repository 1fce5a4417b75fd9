package models

import "time"

type OrderItem struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	OrderID uint   `gorm:"not null;index" json:"order_id"`
	Order   *Order `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	DishID  uint   `gorm:"not null" json:"dish_id"`
	Dish    *Dish  `gorm:"foreignKey:DishID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"dish,omitempty"`
	Quantity int   `gorm:"not null" json:"quantity"`
	// Price is the unit price copied from the dish when the order was
	// created. It is never rewritten from the catalog, so later price
	// changes cannot alter a historical bill.
	Price     float64   `gorm:"type:decimal(12,2);not null" json:"price"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
