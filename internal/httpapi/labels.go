package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type labelRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (s *Server) handleListLabels(c *gin.Context) {
	user := currentUser(c)
	labels, err := s.labels.List(c.Request.Context(), user.ID)
	if err != nil {
		failServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"labels": labels})
}

func (s *Server) handleCreateLabel(c *gin.Context) {
	user := currentUser(c)
	var req labelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}
	label, err := s.labels.Create(c.Request.Context(), user.ID, req.Name, req.Color)
	if err != nil {
		failServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "label": label})
}

func (s *Server) handleDeleteLabel(c *gin.Context) {
	user := currentUser(c)
	if err := s.labels.Delete(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		failServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
