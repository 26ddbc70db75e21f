package usecase

import (
	"context"

	"github.com/hossamaboassi/Busylancer/internal/domain"
	"github.com/hossamaboassi/Busylancer/pkg/apperror"
)

const featuredCandidatesLimit = 6

var proficiencyLevels = map[string]bool{
	"beginner":     true,
	"intermediate": true,
	"expert":       true,
}

type candidateUsecase struct {
	candidateRepo domain.CandidateRepository
	paging        domain.Paging
}

func NewCandidateUsecase(candidateRepo domain.CandidateRepository, paging domain.Paging) domain.CandidateUsecase {
	return &candidateUsecase{
		candidateRepo: candidateRepo,
		paging:        paging,
	}
}

func (u *candidateUsecase) ListCandidates(ctx context.Context, filter domain.CandidateFilter, page, limit int) ([]domain.CandidateWithUser, int64, error) {
	_, limit, offset := u.paging.Clamp(page, limit)
	return u.candidateRepo.Fetch(ctx, filter, limit, offset)
}

func (u *candidateUsecase) FeaturedCandidates(ctx context.Context) ([]domain.CandidateWithUser, error) {
	return u.candidateRepo.FetchFeatured(ctx, featuredCandidatesLimit)
}

func (u *candidateUsecase) GetCandidate(ctx context.Context, id int64) (*domain.CandidateWithUser, error) {
	candidate, err := u.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	skills, err := u.candidateRepo.GetSkills(ctx, id)
	if err != nil {
		return nil, err
	}
	candidate.Skills = skills
	return candidate, nil
}

func (u *candidateUsecase) GetCandidateSkills(ctx context.Context, id int64) ([]domain.CandidateSkill, error) {
	if _, err := u.candidateRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return u.candidateRepo.GetSkills(ctx, id)
}

// ownProfile checks that the caller is a candidate touching their own row.
func (u *candidateUsecase) ownProfile(ctx context.Context, actor domain.Actor, candidateID int64) error {
	if actor.UserType != domain.UserTypeCandidate {
		return apperror.Forbidden("Only candidates can manage skills")
	}
	profile, err := u.candidateRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return apperror.NotFound("Candidate profile not found")
	}
	if profile.ID != candidateID {
		return apperror.Forbidden("You can only manage your own skills")
	}
	return nil
}

func (u *candidateUsecase) AddSkill(ctx context.Context, actor domain.Actor, candidateID, skillID int64, proficiency string) error {
	if err := u.ownProfile(ctx, actor, candidateID); err != nil {
		return err
	}
	if proficiency == "" {
		proficiency = "intermediate"
	}
	if !proficiencyLevels[proficiency] {
		return apperror.BadRequest("Proficiency must be beginner, intermediate or expert")
	}
	return u.candidateRepo.AddSkill(ctx, candidateID, skillID, proficiency)
}

func (u *candidateUsecase) RemoveSkill(ctx context.Context, actor domain.Actor, candidateID, skillID int64) error {
	if err := u.ownProfile(ctx, actor, candidateID); err != nil {
		return err
	}
	return u.candidateRepo.RemoveSkill(ctx, candidateID, skillID)
}
