package usecase

import (
	"context"

	"github.com/hossamaboassi/Busylancer/internal/domain"
	"github.com/hossamaboassi/Busylancer/pkg/apperror"
	"github.com/hossamaboassi/Busylancer/pkg/logger"
)

const featuredJobsLimit = 6

type jobUsecase struct {
	jobRepo      domain.JobRepository
	employerRepo domain.EmployerRepository
	paging       domain.Paging
}

func NewJobUsecase(jobRepo domain.JobRepository, employerRepo domain.EmployerRepository, paging domain.Paging) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:      jobRepo,
		employerRepo: employerRepo,
		paging:       paging,
	}
}

// ownedJob resolves the caller's employer profile and checks the job belongs
// to it. Ownership comes from the database, never from the token.
func (u *jobUsecase) ownedJob(ctx context.Context, actor domain.Actor, jobID int64) (*domain.JobWithEmployer, error) {
	if actor.UserType != domain.UserTypeEmployer {
		return nil, apperror.Forbidden("Only employers can manage jobs")
	}
	profile, err := u.employerRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, apperror.NotFound("Employer profile not found")
	}
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.EmployerID != profile.ID {
		return nil, apperror.Forbidden("You can only manage your own jobs")
	}
	return job, nil
}

func (u *jobUsecase) CreateJob(ctx context.Context, actor domain.Actor, job *domain.Job) error {
	if actor.UserType != domain.UserTypeEmployer {
		return apperror.Forbidden("Only employers can post jobs")
	}
	profile, err := u.employerRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return apperror.NotFound("Employer profile not found")
	}
	job.EmployerID = profile.ID

	// Business validation depends on the pricing model
	switch job.JobType {
	case domain.JobTypeFixedPrice:
		if job.BudgetMin == nil || job.BudgetMax == nil {
			return apperror.BadRequest("Budget range is required for fixed price jobs")
		}
		if *job.BudgetMin > *job.BudgetMax {
			return apperror.BadRequest("Budget min cannot be greater than budget max")
		}
	case domain.JobTypeHourly:
		if job.HourlyRateMin == nil || job.HourlyRateMax == nil {
			return apperror.BadRequest("Hourly rate range is required for hourly jobs")
		}
		if *job.HourlyRateMin > *job.HourlyRateMax {
			return apperror.BadRequest("Hourly rate min cannot be greater than hourly rate max")
		}
	default:
		return apperror.BadRequest("Job type must be fixed_price or hourly")
	}

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return err
	}

	if err := u.employerRepo.IncrementJobsPosted(ctx, profile.ID); err != nil {
		logger.Log.Warn("failed to bump jobs posted counter", "employer_id", profile.ID, "error", err)
	}
	return nil
}

func (u *jobUsecase) GetJob(ctx context.Context, id int64) (*domain.JobWithEmployer, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := u.jobRepo.IncrementViews(ctx, id); err != nil {
		logger.Log.Warn("failed to bump view counter", "job_id", id, "error", err)
	} else {
		job.ViewsCount++
	}
	return job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context, filter domain.JobFilter, page, limit int) ([]domain.JobWithEmployer, int64, error) {
	_, limit, offset := u.paging.Clamp(page, limit)
	return u.jobRepo.Fetch(ctx, filter, limit, offset)
}

func (u *jobUsecase) FeaturedJobs(ctx context.Context) ([]domain.JobWithEmployer, error) {
	return u.jobRepo.FetchFeatured(ctx, featuredJobsLimit)
}

func (u *jobUsecase) RecentJobs(ctx context.Context, limit int) ([]domain.JobWithEmployer, error) {
	_, limit, _ = u.paging.Clamp(1, limit)
	return u.jobRepo.FetchRecent(ctx, limit)
}

func (u *jobUsecase) MyJobs(ctx context.Context, actor domain.Actor, status string, page, limit int) ([]domain.Job, int64, error) {
	if actor.UserType != domain.UserTypeEmployer {
		return nil, 0, apperror.Forbidden("Only employers can list their jobs")
	}
	profile, err := u.employerRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, 0, apperror.NotFound("Employer profile not found")
	}

	switch status {
	case "", domain.JobStatusActive, domain.JobStatusCompleted, domain.JobStatusExpired:
	default:
		return nil, 0, apperror.BadRequest("Invalid job status filter")
	}

	_, limit, offset := u.paging.Clamp(page, limit)
	return u.jobRepo.FetchByEmployerID(ctx, profile.ID, status, limit, offset)
}

var jobUpdateFields = []string{
	"title", "description", "category_id", "budget_min", "budget_max",
	"hourly_rate_min", "hourly_rate_max", "duration_estimate",
	"experience_level", "location", "is_remote", "deadline", "status",
}

func (u *jobUsecase) UpdateJob(ctx context.Context, actor domain.Actor, jobID int64, updates map[string]interface{}) error {
	if _, err := u.ownedJob(ctx, actor, jobID); err != nil {
		return err
	}

	fields := filterAllowed(updates, jobUpdateFields...)
	if len(fields) == 0 {
		return apperror.BadRequest("Nothing to update")
	}

	if status, ok := fields["status"]; ok {
		switch status {
		case domain.JobStatusActive, domain.JobStatusCompleted, domain.JobStatusExpired:
		default:
			return apperror.BadRequest("Invalid job status")
		}
	}

	return u.jobRepo.UpdateFields(ctx, jobID, fields)
}

func (u *jobUsecase) DeleteJob(ctx context.Context, actor domain.Actor, jobID int64) error {
	if _, err := u.ownedJob(ctx, actor, jobID); err != nil {
		return err
	}
	return u.jobRepo.Delete(ctx, jobID)
}

func (u *jobUsecase) Stats(ctx context.Context) (*domain.JobStats, error) {
	return u.jobRepo.Stats(ctx)
}

func (u *jobUsecase) JobSkills(ctx context.Context, jobID int64) ([]domain.JobSkill, error) {
	if _, err := u.jobRepo.GetByID(ctx, jobID); err != nil {
		return nil, err
	}
	return u.jobRepo.GetSkills(ctx, jobID)
}

func (u *jobUsecase) AddJobSkill(ctx context.Context, actor domain.Actor, jobID, skillID int64, isRequired bool) error {
	if _, err := u.ownedJob(ctx, actor, jobID); err != nil {
		return err
	}
	return u.jobRepo.AddSkill(ctx, jobID, skillID, isRequired)
}

func (u *jobUsecase) RemoveJobSkill(ctx context.Context, actor domain.Actor, jobID, skillID int64) error {
	if _, err := u.ownedJob(ctx, actor, jobID); err != nil {
		return err
	}
	return u.jobRepo.RemoveSkill(ctx, jobID, skillID)
}
