package usecase

import (
	"context"

	"github.com/hossamaboassi/Busylancer/internal/domain"
	"github.com/hossamaboassi/Busylancer/pkg/apperror"
)

type dashboardUsecase struct {
	dashboardRepo domain.DashboardRepository
	appRepo       domain.ApplicationRepository
	candidateRepo domain.CandidateRepository
	employerRepo  domain.EmployerRepository
}

func NewDashboardUsecase(
	dashboardRepo domain.DashboardRepository,
	appRepo domain.ApplicationRepository,
	candidateRepo domain.CandidateRepository,
	employerRepo domain.EmployerRepository,
) domain.DashboardUsecase {
	return &dashboardUsecase{
		dashboardRepo: dashboardRepo,
		appRepo:       appRepo,
		candidateRepo: candidateRepo,
		employerRepo:  employerRepo,
	}
}

func (u *dashboardUsecase) Overview(ctx context.Context, actor domain.Actor) (interface{}, error) {
	switch actor.UserType {
	case domain.UserTypeCandidate:
		return u.CandidateDashboard(ctx, actor)
	case domain.UserTypeEmployer:
		return u.EmployerDashboard(ctx, actor)
	}
	return nil, apperror.Forbidden("Access denied")
}

func (u *dashboardUsecase) CandidateDashboard(ctx context.Context, actor domain.Actor) (*domain.CandidateDashboard, error) {
	if actor.UserType != domain.UserTypeCandidate {
		return nil, apperror.Forbidden("Candidate dashboard is for candidates only")
	}
	profile, err := u.candidateRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, apperror.NotFound("Candidate profile not found")
	}

	stats, err := u.appRepo.StatsByCandidate(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	recent, err := u.appRepo.RecentByCandidate(ctx, profile.ID, recentApplicationsLimit)
	if err != nil {
		return nil, err
	}

	return &domain.CandidateDashboard{
		Profile:            profile,
		ApplicationStats:   stats,
		RecentApplications: recent,
	}, nil
}

func (u *dashboardUsecase) EmployerDashboard(ctx context.Context, actor domain.Actor) (*domain.EmployerDashboard, error) {
	if actor.UserType != domain.UserTypeEmployer {
		return nil, apperror.Forbidden("Employer dashboard is for employers only")
	}
	profile, err := u.employerRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, apperror.NotFound("Employer profile not found")
	}

	activeJobs, err := u.dashboardRepo.CountActiveJobsByEmployer(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	stats, err := u.appRepo.StatsByEmployer(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	recent, err := u.appRepo.RecentByEmployer(ctx, profile.ID, recentApplicationsLimit)
	if err != nil {
		return nil, err
	}

	return &domain.EmployerDashboard{
		Profile:            profile,
		ActiveJobs:         activeJobs,
		ApplicationStats:   stats,
		RecentApplications: recent,
	}, nil
}

func (u *dashboardUsecase) PlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	return u.dashboardRepo.PlatformStats(ctx)
}
