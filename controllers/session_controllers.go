package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cafe-pos/services"
	"cafe-pos/utils"
)

type SessionController struct {
	Sessions *services.SessionService
}

func NewSessionController(sessions *services.SessionService) *SessionController {
	return &SessionController{Sessions: sessions}
}

// GetCompletedSessions -> closed sessions with their table, most recent
// first. Consumed by reporting.
func (sc *SessionController) GetCompletedSessions(c *gin.Context) {
	sessions, err := sc.Sessions.CompletedSessions()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Completed sessions", sessions)
}
