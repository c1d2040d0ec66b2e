package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-reminder/internal/model"
)

type subscribeRequest struct {
	PlanName string `json:"planName"`
}

func (s *Server) handleCurrentSubscription(c *gin.Context) {
	user := currentUser(c)
	sub, err := s.subscriptions.Current(c.Request.Context(), user.ID)
	if err != nil {
		failServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"currentSubscription":   sub,
		"hasActiveSubscription": sub != nil,
	})
}

func (s *Server) handleSubscribe(c *gin.Context) {
	user := currentUser(c)
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}
	sub, err := s.subscriptions.Subscribe(c.Request.Context(), user.ID, model.PlanName(req.PlanName))
	if err != nil {
		failServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"subscription": sub,
		"message":      "Successfully subscribed to " + req.PlanName + " plan",
	})
}

func (s *Server) handleCancelSubscription(c *gin.Context) {
	user := currentUser(c)
	sub, err := s.subscriptions.Cancel(c.Request.Context(), user.ID)
	if err != nil {
		failServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "subscription": sub})
}

func (s *Server) handleListPlans(c *gin.Context) {
	plans, err := s.subscriptions.Plans(c.Request.Context())
	if err != nil {
		failServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

func (s *Server) handleSubscriptionHistory(c *gin.Context) {
	user := currentUser(c)
	history, err := s.subscriptions.History(c.Request.Context(), user.ID)
	if err != nil {
		failServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscriptions": history})
}
