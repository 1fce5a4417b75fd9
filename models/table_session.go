package models

import "time"

// TableSession is the interval a table is in use, from booking to checkout.
// EndTime, TotalHours and HourlyCharge stay NULL while the session is open
// and are written exactly once, at checkout.
type TableSession struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	TableID      uint       `gorm:"not null;index" json:"table_id"`
	Table        *Table     `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"table,omitempty"`
	StartTime    time.Time  `gorm:"not null" json:"start_time"`
	EndTime      *time.Time `gorm:"index" json:"end_time,omitempty"`
	TotalHours   *float64   `json:"total_hours,omitempty"`
	HourlyCharge *float64   `gorm:"type:decimal(12,2)" json:"hourly_charge,omitempty"`
	Orders       []Order    `gorm:"foreignKey:TableSessionID" json:"orders,omitempty"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null" json:"updated_at"`
}

// Open reports whether the session has not been checked out yet.
func (s *TableSession) Open() bool {
	return s.EndTime == nil
}
