package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"task-reminder/internal/model"
	"task-reminder/internal/service"
)

// TaskService is the task-mutation surface consumed by handlers.
type TaskService interface {
	CreateTask(ctx context.Context, userID string, input service.TaskInput) (*model.Task, error)
	UpdateTask(ctx context.Context, userID, taskID string, input service.TaskInput) (*model.Task, error)
	ListTasks(ctx context.Context, userID string) ([]model.Task, error)
	GetTask(ctx context.Context, userID, taskID string) (*model.Task, error)
	CompleteTask(ctx context.Context, userID, taskID string) (*model.Task, error)
	DeleteTask(ctx context.Context, userID, taskID string) error
	Summary(ctx context.Context, userID string) (*service.TaskSummary, error)
}

// SubscriptionService is the plan-membership surface.
type SubscriptionService interface {
	Plans(ctx context.Context) ([]model.SubscriptionPlan, error)
	Current(ctx context.Context, userID string) (*model.UserSubscription, error)
	Subscribe(ctx context.Context, userID string, planName model.PlanName) (*model.UserSubscription, error)
	Cancel(ctx context.Context, userID string) (*model.UserSubscription, error)
	History(ctx context.Context, userID string) ([]model.UserSubscription, error)
}

// CategoryService is the category CRUD surface.
type CategoryService interface {
	List(ctx context.Context, userID string) ([]model.Category, error)
	Create(ctx context.Context, userID, name, color, description string) (*model.Category, error)
	Delete(ctx context.Context, userID, id string) error
}

// LabelService is the label CRUD surface.
type LabelService interface {
	List(ctx context.Context, userID string) ([]model.Label, error)
	Create(ctx context.Context, userID, name, color string) (*model.Label, error)
	Delete(ctx context.Context, userID, id string) error
}

// ReminderRunner executes one reminder scheduling pass.
type ReminderRunner interface {
	Run(ctx context.Context, now time.Time) (int, error)
}

// UserResolver maps a bearer token to a user.
type UserResolver interface {
	FindByAPIToken(ctx context.Context, token string) (*model.User, error)
}

// Server wires the REST surface and the cron trigger endpoint.
type Server struct {
	router        *gin.Engine
	cronSecret    string
	users         UserResolver
	tasks         TaskService
	subscriptions SubscriptionService
	categories    CategoryService
	labels        LabelService
	reminders     ReminderRunner
	now           func() time.Time
}

func NewServer(
	cronSecret string,
	users UserResolver,
	tasks TaskService,
	subscriptions SubscriptionService,
	categories CategoryService,
	labels LabelService,
	reminders ReminderRunner,
) *Server {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	s := &Server{
		router:        router,
		cronSecret:    cronSecret,
		users:         users,
		tasks:         tasks,
		subscriptions: subscriptions,
		categories:    categories,
		labels:        labels,
		reminders:     reminders,
		now:           func() time.Time { return time.Now().UTC() },
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	cron := router.Group("/api/cron")
	{
		cron.GET("/email-reminders", s.handleEmailReminders)
		cron.POST("/email-reminders", s.handleEmailReminders)
	}

	api := router.Group("/api", s.requireUser())
	{
		api.GET("/tasks", s.handleListTasks)
		api.POST("/tasks", s.handleCreateTask)
		api.GET("/tasks/summary", s.handleTaskSummary)
		api.GET("/tasks/:id", s.handleGetTask)
		api.PUT("/tasks/:id", s.handleUpdateTask)
		api.POST("/tasks/:id/complete", s.handleCompleteTask)
		api.DELETE("/tasks/:id", s.handleDeleteTask)

		api.GET("/categories", s.handleListCategories)
		api.POST("/categories", s.handleCreateCategory)
		api.DELETE("/categories/:id", s.handleDeleteCategory)

		api.GET("/labels", s.handleListLabels)
		api.POST("/labels", s.handleCreateLabel)
		api.DELETE("/labels/:id", s.handleDeleteLabel)

		api.GET("/subscription", s.handleCurrentSubscription)
		api.POST("/subscription", s.handleSubscribe)
		api.POST("/subscription/cancel", s.handleCancelSubscription)
		api.GET("/subscription/plans", s.handleListPlans)
		api.GET("/subscription/history", s.handleSubscriptionHistory)
	}

	return s
}

// Handler exposes the router for mounting in an http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}
