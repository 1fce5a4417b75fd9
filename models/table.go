package models

import "time"

// Table status values. The status column is a cache: the authoritative fact
// is whether an open TableSession row exists for the table.
const (
	TableStatusEmpty    = "EMPTY"
	TableStatusOccupied = "OCCUPIED"
)

type Table struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	FloorID uint   `gorm:"not null;index" json:"floor_id"`
	Floor   *Floor `gorm:"foreignKey:FloorID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"floor,omitempty"`
	Name    string `gorm:"type:varchar(50);not null" json:"name"`
	X       int    `gorm:"not null;default:0" json:"x"`
	Y       int    `gorm:"not null;default:0" json:"y"`
	// HourlyRate is the occupancy charge per hour in whole currency units.
	HourlyRate float64        `gorm:"type:decimal(12,2);not null;default:0" json:"hourly_rate"`
	Status     string         `gorm:"type:varchar(20);not null;default:'EMPTY'" json:"status"`
	Sessions   []TableSession `gorm:"foreignKey:TableID" json:"sessions,omitempty"`
	CreatedAt  time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"not null" json:"updated_at"`
}
