package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hossamaboassi/Busylancer/config"
	"github.com/hossamaboassi/Busylancer/internal/delivery/http/middleware"
	"github.com/hossamaboassi/Busylancer/internal/delivery/http/response"
	"github.com/hossamaboassi/Busylancer/internal/domain"
	"github.com/hossamaboassi/Busylancer/pkg/apperror"
	"github.com/hossamaboassi/Busylancer/pkg/token"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	JobUC         domain.JobUsecase
	CandidateUC   domain.CandidateUsecase
	ApplicationUC domain.ApplicationUsecase
	SkillUC       domain.SkillUsecase
	DashboardUC   domain.DashboardUsecase
	Tokens        *token.Manager
	Config        *config.Config
	Paging        domain.Paging
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	// Global middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler(deps.Config))
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold,
		deps.Config.RateLimitWindowSeconds,
	)))

	r.NoRoute(func(c *gin.Context) {
		c.Error(apperror.NotFound("Endpoint not found"))
	})
	r.NoMethod(func(c *gin.Context) {
		c.Error(apperror.MethodNotAllowed("Method not allowed"))
	})

	public := r.Group("/api")

	public.GET("", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "Busylancer API", gin.H{
			"name":    deps.Config.AppName,
			"version": "1.0",
			"endpoints": gin.H{
				"auth":         "/api/auth",
				"jobs":         "/api/jobs",
				"candidates":   "/api/candidates",
				"applications": "/api/applications",
				"skills":       "/api/skills",
				"dashboard":    "/api/dashboard",
			},
		})
	})
	public.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))

	loginLimiter := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(
		deps.Config.RateLimitLoginThreshold,
		deps.Config.RateLimitWindowSeconds,
	))

	NewAuthHandler(public, protected, deps.AuthUC, loginLimiter)
	NewJobHandler(public, protected, deps.JobUC, deps.Paging)
	NewCandidateHandler(public, protected, deps.CandidateUC, deps.Paging)
	NewApplicationHandler(protected, deps.ApplicationUC, deps.Paging)
	NewSkillHandler(public, deps.SkillUC, deps.Paging)
	NewDashboardHandler(protected, deps.DashboardUC)

	return r
}
