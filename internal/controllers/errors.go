package controllers

import (
	"errors"
	"net/http"

	"nutrilog/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondDomainError maps a pipeline error onto an HTTP response with a
// stable code string the clients can branch on. Anything that is not a
// domain error is an infrastructure failure and becomes a 500.
func respondDomainError(c *gin.Context, err error) {
	var domainErr usecase.DomainError
	if !errors.As(err, &domainErr) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Internal server error",
			"error":   err.Error(),
		})
		return
	}

	body := gin.H{
		"status":  "error",
		"message": domainErr.Error(),
		"code":    domainErr.Code(),
	}

	status := http.StatusBadRequest
	switch e := domainErr.(type) {
	case *usecase.PremiumRequiredError:
		status = http.StatusForbidden
	case *usecase.UserNotFoundError, *usecase.ProfileNotFoundError:
		status = http.StatusNotFound
	case *usecase.ReportAlreadyExistsError:
		status = http.StatusConflict
	case *usecase.DailyLogNotCompletedError:
		status = http.StatusConflict
		body["missing_indices"] = e.MissingIndices
	case *usecase.RecommendationCooldownError:
		status = http.StatusTooManyRequests
		body["remaining_minutes"] = e.RemainingMinutes
	case *usecase.RecommendationDailyLimitError:
		status = http.StatusTooManyRequests
		body["current_count"] = e.CurrentCount
		body["limit"] = e.Limit
	case *usecase.EstimationFailedError, *usecase.ReportGenerationFailedError, *usecase.RecommendationGenerationFailedError:
		status = http.StatusInternalServerError
	}

	c.JSON(status, body)
}

// currentUserID pulls the authenticated user id set by the auth
// middleware; responds 401 and returns false when absent.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "No authenticated user in request context",
		})
		return uuid.Nil, false
	}
	userID, ok := raw.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "Invalid user id in request context",
		})
		return uuid.Nil, false
	}
	return userID, true
}
