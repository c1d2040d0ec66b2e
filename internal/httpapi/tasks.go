package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"task-reminder/internal/service"
)

type taskRequest struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	DueDate      time.Time  `json:"dueDate"`
	ReminderDate *time.Time `json:"reminderDate"`
	CategoryID   *string    `json:"categoryId"`
	LabelIDs     []string   `json:"labelIds"`
}

func (r taskRequest) toInput() service.TaskInput {
	return service.TaskInput{
		Title:        r.Title,
		Description:  r.Description,
		DueDate:      r.DueDate,
		ReminderDate: r.ReminderDate,
		CategoryID:   r.CategoryID,
		LabelIDs:     r.LabelIDs,
	}
}

func (s *Server) handleListTasks(c *gin.Context) {
	user := currentUser(c)
	tasks, err := s.tasks.ListTasks(c.Request.Context(), user.ID)
	if err != nil {
		failServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (s *Server) handleCreateTask(c *gin.Context) {
	user := currentUser(c)
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}
	task, err := s.tasks.CreateTask(c.Request.Context(), user.ID, req.toInput())
	if err != nil {
		failServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "task": task})
}

func (s *Server) handleGetTask(c *gin.Context) {
	user := currentUser(c)
	task, err := s.tasks.GetTask(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		failServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task})
}

func (s *Server) handleUpdateTask(c *gin.Context) {
	user := currentUser(c)
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}
	task, err := s.tasks.UpdateTask(c.Request.Context(), user.ID, c.Param("id"), req.toInput())
	if err != nil {
		failServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "task": task})
}

func (s *Server) handleCompleteTask(c *gin.Context) {
	user := currentUser(c)
	task, err := s.tasks.CompleteTask(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		failServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "task": task})
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	user := currentUser(c)
	if err := s.tasks.DeleteTask(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		failServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleTaskSummary(c *gin.Context) {
	user := currentUser(c)
	summary, err := s.tasks.Summary(c.Request.Context(), user.ID)
	if err != nil {
		failServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
