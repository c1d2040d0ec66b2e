package httpapi

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleEmailReminders is the scheduled trigger surface. It is guarded
// by a shared secret instead of user auth, returns an aggregate
// processed count, and never partially fails the response even when
// individual sends failed.
func (s *Server) handleEmailReminders(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if s.cronSecret == "" || header != "Bearer "+s.cronSecret {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	processed, err := s.reminders.Run(c.Request.Context(), s.now())
	if err != nil {
		log.Printf("[error] reminder run failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"processed": processed,
		"message":   "Email reminders processed successfully",
	})
}
