// internal/handlers/estimation/estimation_handler.go
package estimation

import (
	"net/http"

	"lucky-backoffice/internal/domain/estimation"
	"lucky-backoffice/internal/pkg/response"
	service "lucky-backoffice/internal/service/estimation"

	"github.com/gin-gonic/gin"
)

type EstimationHandler struct {
	estimationService *service.EstimationService
}

func NewEstimationHandler(estimationService *service.EstimationService) *EstimationHandler {
	return &EstimationHandler{
		estimationService: estimationService,
	}
}

// SaveEstimation creates a new price estimation or updates an existing one.
// A present id on the payload selects the update path.
func (h *EstimationHandler) SaveEstimation(c *gin.Context) {
	var req estimation.SaveEstimationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	if req.ID != "" {
		result, err := h.estimationService.UpdateEstimation(c.Request.Context(), req.ID, &req)
		if err != nil {
			response.FromError(c, err)
			return
		}
		response.Success(c, http.StatusOK, "estimation updated successfully", result)
		return
	}

	result, err := h.estimationService.CreateEstimation(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "estimation created successfully", result)
}

// GetEstimation returns the full estimation with its customer joined in
func (h *EstimationHandler) GetEstimation(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Error(c, http.StatusBadRequest, "estimation ID is required", nil)
		return
	}

	result, err := h.estimationService.GetEstimation(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "estimation retrieved", result)
}

// ListEstimations returns the filtered table-view listing. All filters ride
// in the query string and are optional.
func (h *EstimationHandler) ListEstimations(c *gin.Context) {
	var filters estimation.ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid filters", err)
		return
	}

	result, err := h.estimationService.ListEstimations(c.Request.Context(), filters)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "estimations retrieved", result)
}
