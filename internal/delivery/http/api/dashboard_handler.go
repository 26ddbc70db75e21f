package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hossamaboassi/Busylancer/internal/delivery/http/response"
	"github.com/hossamaboassi/Busylancer/internal/domain"
)

type DashboardHandler struct {
	dashboardUC domain.DashboardUsecase
}

func NewDashboardHandler(protected *gin.RouterGroup, dashboardUC domain.DashboardUsecase) {
	handler := &DashboardHandler{dashboardUC: dashboardUC}

	dashboard := protected.Group("/dashboard")
	{
		dashboard.GET("", handler.Overview)
		dashboard.GET("/candidate", handler.Candidate)
		dashboard.GET("/employer", handler.Employer)
		dashboard.GET("/stats", handler.PlatformStats)
	}
}

func (h *DashboardHandler) Overview(c *gin.Context) {
	data, err := h.dashboardUC.Overview(c.Request.Context(), currentActor(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Dashboard retrieved successfully", data)
}

func (h *DashboardHandler) Candidate(c *gin.Context) {
	data, err := h.dashboardUC.CandidateDashboard(c.Request.Context(), currentActor(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate dashboard retrieved successfully", data)
}

func (h *DashboardHandler) Employer(c *gin.Context) {
	data, err := h.dashboardUC.EmployerDashboard(c.Request.Context(), currentActor(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Employer dashboard retrieved successfully", data)
}

func (h *DashboardHandler) PlatformStats(c *gin.Context) {
	stats, err := h.dashboardUC.PlatformStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Platform statistics retrieved successfully", stats)
}
