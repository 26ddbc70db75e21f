package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hossamaboassi/Busylancer/internal/delivery/http/response"
	"github.com/hossamaboassi/Busylancer/internal/domain"
	"github.com/hossamaboassi/Busylancer/pkg/apperror"
	"github.com/hossamaboassi/Busylancer/pkg/validation"
)

type JobHandler struct {
	jobUC  domain.JobUsecase
	paging domain.Paging
}

func NewJobHandler(public, protected *gin.RouterGroup, jobUC domain.JobUsecase, paging domain.Paging) {
	handler := &JobHandler{jobUC: jobUC, paging: paging}

	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.List)
		publicJobs.GET("/search", handler.List)
		publicJobs.GET("/featured", handler.Featured)
		publicJobs.GET("/recent", handler.Recent)
		publicJobs.GET("/stats", handler.Stats)
		publicJobs.GET("/:id", handler.GetDetails)
		publicJobs.GET("/:id/skills", handler.GetSkills)
	}

	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.POST("/create", handler.Create)
		protectedJobs.GET("/my-jobs", handler.MyJobs)
		protectedJobs.PUT("/:id", handler.Update)
		protectedJobs.DELETE("/:id", handler.Delete)
		protectedJobs.POST("/:id/skills", handler.AddSkill)
		protectedJobs.DELETE("/:id/skills", handler.RemoveSkill)
	}
}

type CreateJobRequest struct {
	Title            string     `json:"title" binding:"required"`
	Description      string     `json:"description" binding:"required"`
	JobType          string     `json:"job_type" binding:"required,oneof=fixed_price hourly"`
	CategoryID       *int64     `json:"category_id"`
	BudgetMin        *float64   `json:"budget_min" binding:"omitempty,gt=0"`
	BudgetMax        *float64   `json:"budget_max" binding:"omitempty,gt=0"`
	HourlyRateMin    *float64   `json:"hourly_rate_min" binding:"omitempty,gt=0"`
	HourlyRateMax    *float64   `json:"hourly_rate_max" binding:"omitempty,gt=0"`
	DurationEstimate *string    `json:"duration_estimate"`
	ExperienceLevel  *string    `json:"experience_level"`
	Location         *string    `json:"location"`
	IsRemote         bool       `json:"is_remote"`
	Deadline         *time.Time `json:"deadline"`
}

type JobSkillRequest struct {
	SkillID    int64 `json:"skill_id" binding:"required"`
	IsRequired *bool `json:"is_required"`
}

// jobFilter reads the allow-listed search parameters from the query string.
func jobFilter(c *gin.Context) (domain.JobFilter, map[string]interface{}) {
	filter := domain.JobFilter{
		CategoryID:      queryInt64(c, "category_id"),
		JobType:         c.Query("job_type"),
		ExperienceLevel: c.Query("experience_level"),
		Location:        c.Query("location"),
		Keywords:        c.Query("keywords"),
		IsRemote:        queryBool(c, "is_remote"),
		MinBudget:       queryFloat(c, "min_budget"),
		MaxBudget:       queryFloat(c, "max_budget"),
	}
	if raw := c.Query("skills"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				filter.Skills = append(filter.Skills, s)
			}
		}
	}

	// Echo only the filters that actually took effect; malformed values are
	// dropped by the parsers above and must not be reported as applied.
	applied := map[string]interface{}{}
	if filter.CategoryID != nil {
		applied["category_id"] = *filter.CategoryID
	}
	if filter.JobType != "" {
		applied["job_type"] = filter.JobType
	}
	if filter.ExperienceLevel != "" {
		applied["experience_level"] = filter.ExperienceLevel
	}
	if filter.Location != "" {
		applied["location"] = filter.Location
	}
	if filter.Keywords != "" {
		applied["keywords"] = filter.Keywords
	}
	if filter.IsRemote != nil {
		applied["is_remote"] = *filter.IsRemote
	}
	if filter.MinBudget != nil {
		applied["min_budget"] = *filter.MinBudget
	}
	if filter.MaxBudget != nil {
		applied["max_budget"] = *filter.MaxBudget
	}
	if len(filter.Skills) > 0 {
		applied["skills"] = filter.Skills
	}
	return filter, applied
}

func (h *JobHandler) List(c *gin.Context) {
	filter, applied := jobFilter(c)
	page, limit := pageParams(c)
	page, limit, _ = h.paging.Clamp(page, limit)

	jobs, total, err := h.jobUC.ListJobs(c.Request.Context(), filter, page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved successfully", response.Paginated{
		Items:   jobs,
		Total:   total,
		Page:    page,
		Limit:   limit,
		Filters: applied,
	})
}

func (h *JobHandler) Featured(c *gin.Context) {
	jobs, err := h.jobUC.FeaturedJobs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Featured jobs retrieved successfully", jobs)
}

func (h *JobHandler) Recent(c *gin.Context) {
	_, limit := pageParams(c)
	jobs, err := h.jobUC.RecentJobs(c.Request.Context(), limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recent jobs retrieved successfully", jobs)
}

func (h *JobHandler) Stats(c *gin.Context) {
	stats, err := h.jobUC.Stats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job statistics retrieved successfully", stats)
}

func (h *JobHandler) GetDetails(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	job, err := h.jobUC.GetJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job retrieved successfully", job)
}

func (h *JobHandler) GetSkills(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	skills, err := h.jobUC.JobSkills(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job skills retrieved successfully", skills)
}

func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatErrors(err)))
		return
	}

	job := &domain.Job{
		CategoryID:       req.CategoryID,
		Title:            req.Title,
		Description:      req.Description,
		JobType:          req.JobType,
		BudgetMin:        req.BudgetMin,
		BudgetMax:        req.BudgetMax,
		HourlyRateMin:    req.HourlyRateMin,
		HourlyRateMax:    req.HourlyRateMax,
		DurationEstimate: req.DurationEstimate,
		ExperienceLevel:  req.ExperienceLevel,
		Location:         req.Location,
		IsRemote:         req.IsRemote,
		Deadline:         req.Deadline,
	}

	if err := h.jobUC.CreateJob(c.Request.Context(), currentActor(c), job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created successfully", job)
}

func (h *JobHandler) MyJobs(c *gin.Context) {
	page, limit := pageParams(c)
	page, limit, _ = h.paging.Clamp(page, limit)
	status := c.Query("status")

	jobs, total, err := h.jobUC.MyJobs(c.Request.Context(), currentActor(c), status, page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved successfully", response.Paginated{
		Items: jobs,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

func (h *JobHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	if err := h.jobUC.UpdateJob(c.Request.Context(), currentActor(c), id, updates); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated successfully", nil)
}

func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.jobUC.DeleteJob(c.Request.Context(), currentActor(c), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted successfully", nil)
}

func (h *JobHandler) AddSkill(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req JobSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatErrors(err)))
		return
	}

	isRequired := true
	if req.IsRequired != nil {
		isRequired = *req.IsRequired
	}

	if err := h.jobUC.AddJobSkill(c.Request.Context(), currentActor(c), id, req.SkillID, isRequired); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill added to job successfully", nil)
}

func (h *JobHandler) RemoveSkill(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req JobSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatErrors(err)))
		return
	}

	if err := h.jobUC.RemoveJobSkill(c.Request.Context(), currentActor(c), id, req.SkillID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill removed from job successfully", nil)
}
