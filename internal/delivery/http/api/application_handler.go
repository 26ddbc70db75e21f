package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hossamaboassi/Busylancer/internal/delivery/http/response"
	"github.com/hossamaboassi/Busylancer/internal/domain"
	"github.com/hossamaboassi/Busylancer/pkg/apperror"
	"github.com/hossamaboassi/Busylancer/pkg/validation"
)

type ApplicationHandler struct {
	appUC  domain.ApplicationUsecase
	paging domain.Paging
}

func NewApplicationHandler(protected *gin.RouterGroup, appUC domain.ApplicationUsecase, paging domain.Paging) {
	handler := &ApplicationHandler{appUC: appUC, paging: paging}

	apps := protected.Group("/applications")
	{
		apps.POST("/apply", handler.Apply)
		apps.GET("/my-applications", handler.MyApplications)
		apps.GET("/job/:id", handler.JobApplications)
		apps.GET("/stats", handler.Stats)
		apps.GET("/recent", handler.Recent)
		apps.GET("/:id", handler.GetDetails)
		apps.PUT("/:id/status", handler.UpdateStatus)
		apps.PUT("/:id/withdraw", handler.Withdraw)
		apps.DELETE("/:id", handler.Delete)
	}
}

type ApplyRequest struct {
	JobID             int64    `json:"job_id" binding:"required"`
	CoverLetter       *string  `json:"cover_letter"`
	ProposedRate      *float64 `json:"proposed_rate" binding:"omitempty,gt=0"`
	EstimatedDuration *string  `json:"estimated_duration"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatErrors(err)))
		return
	}

	app := &domain.JobApplication{
		JobID:             req.JobID,
		CoverLetter:       req.CoverLetter,
		ProposedRate:      req.ProposedRate,
		EstimatedDuration: req.EstimatedDuration,
	}

	if err := h.appUC.Apply(c.Request.Context(), currentActor(c), app); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted successfully", app)
}

func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	page, limit := pageParams(c)
	page, limit, _ = h.paging.Clamp(page, limit)
	status := c.Query("status")

	apps, total, err := h.appUC.MyApplications(c.Request.Context(), currentActor(c), status, page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved successfully", response.Paginated{
		Items: apps,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

func (h *ApplicationHandler) JobApplications(c *gin.Context) {
	jobID, ok := pathID(c, "id")
	if !ok {
		return
	}
	page, limit := pageParams(c)
	page, limit, _ = h.paging.Clamp(page, limit)

	apps, total, err := h.appUC.JobApplications(c.Request.Context(), currentActor(c), jobID, page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved successfully", response.Paginated{
		Items: apps,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

func (h *ApplicationHandler) GetDetails(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	app, err := h.appUC.GetApplication(c.Request.Context(), currentActor(c), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application retrieved successfully", app)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatErrors(err)))
		return
	}

	if err := h.appUC.UpdateStatus(c.Request.Context(), currentActor(c), id, req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated successfully", nil)
}

func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.appUC.Withdraw(c.Request.Context(), currentActor(c), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application withdrawn successfully", nil)
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.appUC.DeleteApplication(c.Request.Context(), currentActor(c), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application deleted successfully", nil)
}

func (h *ApplicationHandler) Stats(c *gin.Context) {
	stats, err := h.appUC.Stats(c.Request.Context(), currentActor(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application statistics retrieved successfully", stats)
}

func (h *ApplicationHandler) Recent(c *gin.Context) {
	_, limit := pageParams(c)

	apps, err := h.appUC.Recent(c.Request.Context(), currentActor(c), limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Recent applications retrieved successfully", apps)
}
