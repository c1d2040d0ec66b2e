package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"task-reminder/internal/service"
)

// failServiceError maps gate and validation outcomes to structured
// {success:false, error:...} responses so clients can branch on the
// reason. Anything unrecognized becomes a 500.
func failServiceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, service.ErrNoSubscription),
		errors.Is(err, service.ErrTaskLimitReached),
		errors.Is(err, service.ErrProFeature):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrDueDateRequired),
		errors.Is(err, service.ErrReminderEqualsDue),
		errors.Is(err, service.ErrReminderAfterDue),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrInvalidLabels),
		errors.Is(err, service.ErrInvalidPlanName),
		errors.Is(err, service.ErrNameRequired):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrLabelNotFound),
		errors.Is(err, service.ErrPlanNotFound),
		errors.Is(err, service.ErrNoActiveSubscription):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, service.ErrCategoryExists),
		errors.Is(err, service.ErrLabelExists):
		status = http.StatusConflict
		message = err.Error()
	}

	c.JSON(status, gin.H{"success": false, "error": message})
}
