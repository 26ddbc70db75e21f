package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hossamaboassi/Busylancer/internal/delivery/http/response"
	"github.com/hossamaboassi/Busylancer/internal/domain"
	"github.com/hossamaboassi/Busylancer/pkg/apperror"
	"github.com/hossamaboassi/Busylancer/pkg/validation"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
	paging      domain.Paging
}

func NewCandidateHandler(public, protected *gin.RouterGroup, candidateUC domain.CandidateUsecase, paging domain.Paging) {
	handler := &CandidateHandler{candidateUC: candidateUC, paging: paging}

	candidates := public.Group("/candidates")
	{
		candidates.GET("", handler.List)
		candidates.GET("/search", handler.List)
		candidates.GET("/featured", handler.Featured)
		candidates.GET("/:id", handler.GetDetails)
		candidates.GET("/:id/skills", handler.GetSkills)
	}

	protectedCandidates := protected.Group("/candidates")
	{
		protectedCandidates.POST("/:id/skills", handler.AddSkill)
		protectedCandidates.DELETE("/:id/skills", handler.RemoveSkill)
	}
}

type CandidateSkillRequest struct {
	SkillID          int64  `json:"skill_id" binding:"required"`
	ProficiencyLevel string `json:"proficiency_level"`
}

func candidateFilter(c *gin.Context) domain.CandidateFilter {
	filter := domain.CandidateFilter{
		Keywords:        c.Query("keywords"),
		ExperienceLevel: c.Query("experience_level"),
		Availability:    c.Query("availability"),
		Location:        c.Query("location"),
		MinRate:         queryFloat(c, "min_rate"),
		MaxRate:         queryFloat(c, "max_rate"),
	}
	if raw := c.Query("skills"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				filter.Skills = append(filter.Skills, s)
			}
		}
	}
	return filter
}

func (h *CandidateHandler) List(c *gin.Context) {
	page, limit := pageParams(c)
	page, limit, _ = h.paging.Clamp(page, limit)

	candidates, total, err := h.candidateUC.ListCandidates(c.Request.Context(), candidateFilter(c), page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidates retrieved successfully", response.Paginated{
		Items: candidates,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

func (h *CandidateHandler) Featured(c *gin.Context) {
	candidates, err := h.candidateUC.FeaturedCandidates(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Featured candidates retrieved successfully", candidates)
}

func (h *CandidateHandler) GetDetails(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	candidate, err := h.candidateUC.GetCandidate(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate retrieved successfully", candidate)
}

func (h *CandidateHandler) GetSkills(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	skills, err := h.candidateUC.GetCandidateSkills(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate skills retrieved successfully", skills)
}

func (h *CandidateHandler) AddSkill(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req CandidateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatErrors(err)))
		return
	}

	if err := h.candidateUC.AddSkill(c.Request.Context(), currentActor(c), id, req.SkillID, req.ProficiencyLevel); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill added successfully", nil)
}

func (h *CandidateHandler) RemoveSkill(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req CandidateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatErrors(err)))
		return
	}

	if err := h.candidateUC.RemoveSkill(c.Request.Context(), currentActor(c), id, req.SkillID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill removed successfully", nil)
}
