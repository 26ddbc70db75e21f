package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hossamaboassi/Busylancer/internal/delivery/http/response"
	"github.com/hossamaboassi/Busylancer/internal/domain"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
	paging  domain.Paging
}

func NewSkillHandler(public *gin.RouterGroup, skillUC domain.SkillUsecase, paging domain.Paging) {
	handler := &SkillHandler{skillUC: skillUC, paging: paging}

	skills := public.Group("/skills")
	{
		skills.GET("", handler.List)
		skills.GET("/categories", handler.Categories)
		skills.GET("/search", handler.Search)
	}
}

func (h *SkillHandler) List(c *gin.Context) {
	page, limit := pageParams(c)
	page, limit, _ = h.paging.Clamp(page, limit)
	category := c.Query("category")

	skills, total, err := h.skillUC.ListSkills(c.Request.Context(), category, page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skills retrieved successfully", response.Paginated{
		Items: skills,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

func (h *SkillHandler) Categories(c *gin.Context) {
	categories, err := h.skillUC.ListCategories(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill categories retrieved successfully", categories)
}

func (h *SkillHandler) Search(c *gin.Context) {
	skills, err := h.skillUC.SearchSkills(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skills retrieved successfully", skills)
}
