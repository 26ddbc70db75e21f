package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hossamaboassi/Busylancer/internal/domain"
	"github.com/hossamaboassi/Busylancer/internal/usecase"
)

func TestCandidateAddSkill(t *testing.T) {
	ctx := context.Background()
	candidate := domain.Actor{UserID: 2, UserType: domain.UserTypeCandidate}

	t.Run("employers cannot manage candidate skills", func(t *testing.T) {
		uc := usecase.NewCandidateUsecase(new(MockCandidateRepo), testPaging)

		err := uc.AddSkill(ctx, domain.Actor{UserID: 1, UserType: domain.UserTypeEmployer}, 20, 3, "expert")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only candidates")
	})

	t.Run("cannot edit another candidate's skills", func(t *testing.T) {
		candidateRepo := new(MockCandidateRepo)
		candidateRepo.On("GetByUserID", ctx, int64(2)).Return(&domain.CandidateProfile{ID: 20, UserID: 2}, nil)

		uc := usecase.NewCandidateUsecase(candidateRepo, testPaging)

		err := uc.AddSkill(ctx, candidate, 99, 3, "expert")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own skills")
	})

	t.Run("unknown proficiency level is rejected", func(t *testing.T) {
		candidateRepo := new(MockCandidateRepo)
		candidateRepo.On("GetByUserID", ctx, int64(2)).Return(&domain.CandidateProfile{ID: 20, UserID: 2}, nil)

		uc := usecase.NewCandidateUsecase(candidateRepo, testPaging)

		err := uc.AddSkill(ctx, candidate, 20, 3, "guru")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Proficiency must be")
	})

	t.Run("empty proficiency defaults to intermediate", func(t *testing.T) {
		candidateRepo := new(MockCandidateRepo)
		candidateRepo.On("GetByUserID", ctx, int64(2)).Return(&domain.CandidateProfile{ID: 20, UserID: 2}, nil)
		candidateRepo.On("AddSkill", ctx, int64(20), int64(3), "intermediate").Return(nil)

		uc := usecase.NewCandidateUsecase(candidateRepo, testPaging)

		require.NoError(t, uc.AddSkill(ctx, candidate, 20, 3, ""))
		candidateRepo.AssertExpectations(t)
	})
}

func TestGetCandidateMergesSkills(t *testing.T) {
	ctx := context.Background()

	candidateRepo := new(MockCandidateRepo)
	candidateRepo.On("GetByID", ctx, int64(20)).Return(&domain.CandidateWithUser{
		CandidateProfile: domain.CandidateProfile{ID: 20, UserID: 2},
	}, nil)
	candidateRepo.On("GetSkills", ctx, int64(20)).Return([]domain.CandidateSkill{
		{Skill: domain.Skill{ID: 3, Name: "Go"}, ProficiencyLevel: "expert"},
	}, nil)

	uc := usecase.NewCandidateUsecase(candidateRepo, testPaging)

	candidate, err := uc.GetCandidate(ctx, 20)
	require.NoError(t, err)
	require.Len(t, candidate.Skills, 1)
	assert.Equal(t, "Go", candidate.Skills[0].Name)
}
