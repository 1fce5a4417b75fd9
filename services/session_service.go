package services

import (
	"gorm.io/gorm"

	"cafe-pos/models"
)

// SessionService is the read side consumed by reporting.
type SessionService struct {
	db *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{db: db}
}

// CompletedSessions lists closed sessions with their table, most recent
// checkout first. Pure read.
func (s *SessionService) CompletedSessions() ([]models.TableSession, error) {
	var sessions []models.TableSession
	err := s.db.Where("end_time IS NOT NULL").
		Preload("Table").
		Order("end_time DESC").
		Find(&sessions).Error
	return sessions, err
}
