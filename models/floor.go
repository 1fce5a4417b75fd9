package models

import "time"

type Floor struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Order     int       `gorm:"column:display_order;not null;default:0" json:"order"`
	Tables    []Table   `gorm:"foreignKey:FloorID" json:"tables,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
