package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type categoryRequest struct {
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

func (s *Server) handleListCategories(c *gin.Context) {
	user := currentUser(c)
	categories, err := s.categories.List(c.Request.Context(), user.ID)
	if err != nil {
		failServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (s *Server) handleCreateCategory(c *gin.Context) {
	user := currentUser(c)
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}
	category, err := s.categories.Create(c.Request.Context(), user.ID, req.Name, req.Color, req.Description)
	if err != nil {
		failServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "category": category})
}

func (s *Server) handleDeleteCategory(c *gin.Context) {
	user := currentUser(c)
	if err := s.categories.Delete(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		failServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
