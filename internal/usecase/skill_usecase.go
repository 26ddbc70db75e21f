package usecase

import (
	"context"

	"github.com/hossamaboassi/Busylancer/internal/domain"
	"github.com/hossamaboassi/Busylancer/pkg/apperror"
)

const skillSearchLimit = 20

type skillUsecase struct {
	skillRepo domain.SkillRepository
	paging    domain.Paging
}

func NewSkillUsecase(skillRepo domain.SkillRepository, paging domain.Paging) domain.SkillUsecase {
	return &skillUsecase{
		skillRepo: skillRepo,
		paging:    paging,
	}
}

func (u *skillUsecase) ListSkills(ctx context.Context, category string, page, limit int) ([]domain.Skill, int64, error) {
	_, limit, offset := u.paging.Clamp(page, limit)
	return u.skillRepo.Fetch(ctx, category, limit, offset)
}

func (u *skillUsecase) SearchSkills(ctx context.Context, keywords string) ([]domain.Skill, error) {
	if keywords == "" {
		return nil, apperror.BadRequest("Search query is required")
	}
	return u.skillRepo.Search(ctx, keywords, skillSearchLimit)
}

func (u *skillUsecase) ListCategories(ctx context.Context) ([]string, error) {
	return u.skillRepo.Categories(ctx)
}
