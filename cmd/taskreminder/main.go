package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"task-reminder/internal/config"
	"task-reminder/internal/httpapi"
	"task-reminder/internal/mail"
	"task-reminder/internal/repository"
	"task-reminder/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	labelRepo := repository.NewLabelRepository(db)
	subsRepo := repository.NewSubscriptionRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	mailer := mail.NewSMTPMailer(cfg.SMTP)
	dispatcher := service.NewDispatcher(mailer, notificationRepo, cfg.AppURL)
	reminderSvc := service.NewReminderService(taskRepo, dispatcher)
	taskSvc := service.NewTaskService(taskRepo, categoryRepo, labelRepo, subsRepo)
	subscriptionSvc := service.NewSubscriptionService(subsRepo)
	categorySvc := service.NewCategoryService(categoryRepo, subsRepo)
	labelSvc := service.NewLabelService(labelRepo, subsRepo)

	server := httpapi.NewServer(cfg.CronSecret, userRepo, taskSvc, subscriptionSvc, categorySvc, labelSvc, reminderSvc)

	scheduler := service.NewSchedulerService(time.UTC)
	if _, err := scheduler.ScheduleDaily(cfg.ReminderTime, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if _, err := reminderSvc.Run(jobCtx, time.Now().UTC()); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("[error] scheduled reminder run: %v", err)
		}
	}); err != nil {
		log.Fatalf("schedule reminders: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: server.Handler(),
	}

	go func() {
		log.Printf("[info] listening on %s", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("[info] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("[warn] http shutdown: %v", err)
	}
	log.Println("Shutdown complete.")
}
