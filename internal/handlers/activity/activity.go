// internal/handlers/activity/activity_handler.go
package activity

import (
	"net/http"

	"lucky-backoffice/internal/domain/activity"
	"lucky-backoffice/internal/pkg/response"
	service "lucky-backoffice/internal/service/activity"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	activityService *service.ActivityService
}

func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// SaveActivity creates a new activity or updates an existing one. The UI
// submits both through the same form; a present id selects the update path.
func (h *ActivityHandler) SaveActivity(c *gin.Context) {
	var req activity.SaveActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	if req.ID != "" {
		result, err := h.activityService.UpdateActivity(c.Request.Context(), req.ID, &req)
		if err != nil {
			response.FromError(c, err)
			return
		}
		response.Success(c, http.StatusOK, "activity updated successfully", result)
		return
	}

	result, err := h.activityService.CreateActivity(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "activity created successfully", result)
}

// ListActivities returns a customer's activity log, newest start first
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	customerID := c.Param("id")
	if customerID == "" {
		response.Error(c, http.StatusBadRequest, "customer ID is required", nil)
		return
	}

	result, err := h.activityService.ListActivities(c.Request.Context(), customerID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "activities retrieved", result)
}

// DeleteActivity removes one activity by ID
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Error(c, http.StatusBadRequest, "activity ID is required", nil)
		return
	}

	if err := h.activityService.DeleteActivity(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "activity deleted successfully", nil)
}
