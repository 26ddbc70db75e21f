package usecase

import (
	"context"

	"github.com/hossamaboassi/Busylancer/internal/domain"
	"github.com/hossamaboassi/Busylancer/pkg/apperror"
	"github.com/hossamaboassi/Busylancer/pkg/logger"
)

const recentApplicationsLimit = 5

type applicationUsecase struct {
	appRepo       domain.ApplicationRepository
	jobRepo       domain.JobRepository
	candidateRepo domain.CandidateRepository
	employerRepo  domain.EmployerRepository
	userRepo      domain.UserRepository
	mailer        domain.Mailer
	paging        domain.Paging
}

func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	candidateRepo domain.CandidateRepository,
	employerRepo domain.EmployerRepository,
	userRepo domain.UserRepository,
	mailer domain.Mailer,
	paging domain.Paging,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		appRepo:       appRepo,
		jobRepo:       jobRepo,
		candidateRepo: candidateRepo,
		employerRepo:  employerRepo,
		userRepo:      userRepo,
		mailer:        mailer,
		paging:        paging,
	}
}

func (u *applicationUsecase) candidateProfile(ctx context.Context, actor domain.Actor) (*domain.CandidateProfile, error) {
	if actor.UserType != domain.UserTypeCandidate {
		return nil, apperror.Forbidden("Only candidates can perform this action")
	}
	profile, err := u.candidateRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, apperror.NotFound("Candidate profile not found")
	}
	return profile, nil
}

func (u *applicationUsecase) employerProfile(ctx context.Context, actor domain.Actor) (*domain.EmployerProfile, error) {
	if actor.UserType != domain.UserTypeEmployer {
		return nil, apperror.Forbidden("Only employers can perform this action")
	}
	profile, err := u.employerRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, apperror.NotFound("Employer profile not found")
	}
	return profile, nil
}

func (u *applicationUsecase) Apply(ctx context.Context, actor domain.Actor, app *domain.JobApplication) error {
	profile, err := u.candidateProfile(ctx, actor)
	if err != nil {
		return err
	}

	job, err := u.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return apperror.NotFound("Job not found")
	}
	if job.Status != domain.JobStatusActive {
		return apperror.BadRequest("This job is no longer accepting applications")
	}

	exists, err := u.appRepo.Exists(ctx, app.JobID, profile.ID)
	if err != nil {
		return err
	}
	if exists {
		return apperror.Conflict("You have already applied to this job")
	}

	app.CandidateID = profile.ID
	// The unique constraint backstops the Exists check under concurrency.
	if err := u.appRepo.Create(ctx, app); err != nil {
		return err
	}

	u.notifyEmployer(job, actor)
	return nil
}

// notifyEmployer mails the job owner about the new application.
// Failures are logged, never surfaced to the applicant.
func (u *applicationUsecase) notifyEmployer(job *domain.JobWithEmployer, actor domain.Actor) {
	if !u.mailer.IsConfigured() {
		return
	}
	go func() {
		ctx := context.Background()
		employer, err := u.employerRepo.GetByID(ctx, job.EmployerID)
		if err != nil {
			logger.Log.Warn("application notice: employer lookup failed", "employer_id", job.EmployerID, "error", err)
			return
		}
		owner, err := u.userRepo.GetByID(ctx, employer.UserID)
		if err != nil {
			logger.Log.Warn("application notice: user lookup failed", "user_id", employer.UserID, "error", err)
			return
		}
		candidate, err := u.userRepo.GetByID(ctx, actor.UserID)
		if err != nil {
			logger.Log.Warn("application notice: candidate lookup failed", "user_id", actor.UserID, "error", err)
			return
		}
		name := candidate.FirstName + " " + candidate.LastName
		if err := u.mailer.SendNewApplication(owner.Email, name, job.Title); err != nil {
			logger.Log.Warn("application notice failed", "email", owner.Email, "error", err)
		}
	}()
}

func (u *applicationUsecase) MyApplications(ctx context.Context, actor domain.Actor, status string, page, limit int) ([]domain.ApplicationDetail, int64, error) {
	profile, err := u.candidateProfile(ctx, actor)
	if err != nil {
		return nil, 0, err
	}

	switch status {
	case "", domain.ApplicationStatusPending, domain.ApplicationStatusAccepted,
		domain.ApplicationStatusRejected, domain.ApplicationStatusWithdrawn:
	default:
		return nil, 0, apperror.BadRequest("Invalid application status filter")
	}

	_, limit, offset := u.paging.Clamp(page, limit)
	return u.appRepo.FetchByCandidate(ctx, profile.ID, status, limit, offset)
}

func (u *applicationUsecase) JobApplications(ctx context.Context, actor domain.Actor, jobID int64, page, limit int) ([]domain.ApplicationDetail, int64, error) {
	profile, err := u.employerProfile(ctx, actor)
	if err != nil {
		return nil, 0, err
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, 0, err
	}
	if job.EmployerID != profile.ID {
		return nil, 0, apperror.Forbidden("You can only view applications for your own jobs")
	}

	_, limit, offset := u.paging.Clamp(page, limit)
	return u.appRepo.FetchByJob(ctx, jobID, limit, offset)
}

func (u *applicationUsecase) GetApplication(ctx context.Context, actor domain.Actor, id int64) (*domain.ApplicationDetail, error) {
	detail, err := u.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch actor.UserType {
	case domain.UserTypeCandidate:
		profile, err := u.candidateRepo.GetByUserID(ctx, actor.UserID)
		if err != nil || detail.CandidateID != profile.ID {
			return nil, apperror.Forbidden("You can only view your own applications")
		}
	case domain.UserTypeEmployer:
		profile, err := u.employerRepo.GetByUserID(ctx, actor.UserID)
		if err != nil || detail.JobEmployerID != profile.ID {
			return nil, apperror.Forbidden("You can only view applications for your own jobs")
		}
	default:
		return nil, apperror.Forbidden("Access denied")
	}

	return detail, nil
}

func (u *applicationUsecase) UpdateStatus(ctx context.Context, actor domain.Actor, id int64, status string) error {
	if status != domain.ApplicationStatusAccepted && status != domain.ApplicationStatusRejected {
		return apperror.BadRequest("Status must be accepted or rejected")
	}

	profile, err := u.employerProfile(ctx, actor)
	if err != nil {
		return err
	}

	detail, err := u.appRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if detail.JobEmployerID != profile.ID {
		return apperror.Forbidden("You can only update applications for your own jobs")
	}

	return u.appRepo.UpdateStatus(ctx, id, status)
}

func (u *applicationUsecase) Withdraw(ctx context.Context, actor domain.Actor, id int64) error {
	profile, err := u.candidateProfile(ctx, actor)
	if err != nil {
		return err
	}

	detail, err := u.appRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if detail.CandidateID != profile.ID {
		return apperror.Forbidden("You can only withdraw your own applications")
	}
	if detail.Status != domain.ApplicationStatusPending {
		return apperror.BadRequest("You can only withdraw pending applications")
	}

	return u.appRepo.UpdateStatus(ctx, id, domain.ApplicationStatusWithdrawn)
}

func (u *applicationUsecase) DeleteApplication(ctx context.Context, actor domain.Actor, id int64) error {
	profile, err := u.candidateProfile(ctx, actor)
	if err != nil {
		return err
	}

	detail, err := u.appRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if detail.CandidateID != profile.ID {
		return apperror.Forbidden("You can only delete your own applications")
	}

	return u.appRepo.Delete(ctx, id)
}

func (u *applicationUsecase) Stats(ctx context.Context, actor domain.Actor) (*domain.ApplicationStats, error) {
	switch actor.UserType {
	case domain.UserTypeCandidate:
		profile, err := u.candidateProfile(ctx, actor)
		if err != nil {
			return nil, err
		}
		return u.appRepo.StatsByCandidate(ctx, profile.ID)
	case domain.UserTypeEmployer:
		profile, err := u.employerProfile(ctx, actor)
		if err != nil {
			return nil, err
		}
		return u.appRepo.StatsByEmployer(ctx, profile.ID)
	}
	return nil, apperror.Forbidden("Access denied")
}

func (u *applicationUsecase) Recent(ctx context.Context, actor domain.Actor, limit int) ([]domain.ApplicationDetail, error) {
	if limit < 1 {
		limit = recentApplicationsLimit
	}
	if limit > u.paging.Max {
		limit = u.paging.Max
	}

	switch actor.UserType {
	case domain.UserTypeCandidate:
		profile, err := u.candidateProfile(ctx, actor)
		if err != nil {
			return nil, err
		}
		return u.appRepo.RecentByCandidate(ctx, profile.ID, limit)
	case domain.UserTypeEmployer:
		profile, err := u.employerProfile(ctx, actor)
		if err != nil {
			return nil, err
		}
		return u.appRepo.RecentByEmployer(ctx, profile.ID, limit)
	}
	return nil, apperror.Forbidden("Access denied")
}
