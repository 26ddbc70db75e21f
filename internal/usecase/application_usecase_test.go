package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hossamaboassi/Busylancer/internal/domain"
	"github.com/hossamaboassi/Busylancer/internal/usecase"
	"github.com/hossamaboassi/Busylancer/pkg/apperror"
)

type applicationMocks struct {
	appRepo       *MockApplicationRepo
	jobRepo       *MockJobRepo
	candidateRepo *MockCandidateRepo
	employerRepo  *MockEmployerRepo
	userRepo      *MockUserRepo
	mailer        *MockMailer
}

func newApplicationUsecase() (domain.ApplicationUsecase, applicationMocks) {
	m := applicationMocks{
		appRepo:       new(MockApplicationRepo),
		jobRepo:       new(MockJobRepo),
		candidateRepo: new(MockCandidateRepo),
		employerRepo:  new(MockEmployerRepo),
		userRepo:      new(MockUserRepo),
		mailer:        new(MockMailer),
	}
	uc := usecase.NewApplicationUsecase(m.appRepo, m.jobRepo, m.candidateRepo, m.employerRepo, m.userRepo, m.mailer, testPaging)
	return uc, m
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	candidate := domain.Actor{UserID: 2, UserType: domain.UserTypeCandidate}
	candidateProfile := &domain.CandidateProfile{ID: 20, UserID: 2}

	t.Run("employers cannot apply", func(t *testing.T) {
		uc, _ := newApplicationUsecase()

		err := uc.Apply(ctx, domain.Actor{UserID: 1, UserType: domain.UserTypeEmployer}, &domain.JobApplication{JobID: 5})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only candidates")
	})

	t.Run("missing job is a 404", func(t *testing.T) {
		uc, m := newApplicationUsecase()
		m.candidateRepo.On("GetByUserID", ctx, int64(2)).Return(candidateProfile, nil)
		m.jobRepo.On("GetByID", ctx, int64(5)).Return(nil, domain.ErrNotFound)

		err := uc.Apply(ctx, candidate, &domain.JobApplication{JobID: 5})
		require.Error(t, err)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("closed job rejects applications", func(t *testing.T) {
		uc, m := newApplicationUsecase()
		m.candidateRepo.On("GetByUserID", ctx, int64(2)).Return(candidateProfile, nil)
		m.jobRepo.On("GetByID", ctx, int64(5)).Return(&domain.JobWithEmployer{
			Job: domain.Job{ID: 5, Status: domain.JobStatusCompleted},
		}, nil)

		err := uc.Apply(ctx, candidate, &domain.JobApplication{JobID: 5})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no longer accepting")
	})

	t.Run("second application to the same job is a 409", func(t *testing.T) {
		uc, m := newApplicationUsecase()
		m.candidateRepo.On("GetByUserID", ctx, int64(2)).Return(candidateProfile, nil)
		m.jobRepo.On("GetByID", ctx, int64(5)).Return(&domain.JobWithEmployer{
			Job: domain.Job{ID: 5, Status: domain.JobStatusActive},
		}, nil)
		m.appRepo.On("Exists", ctx, int64(5), int64(20)).Return(true, nil)

		err := uc.Apply(ctx, candidate, &domain.JobApplication{JobID: 5})
		require.Error(t, err)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 409, appErr.Code)
	})

	t.Run("successful apply resolves the candidate id from the database", func(t *testing.T) {
		uc, m := newApplicationUsecase()
		m.candidateRepo.On("GetByUserID", ctx, int64(2)).Return(candidateProfile, nil)
		m.jobRepo.On("GetByID", ctx, int64(5)).Return(&domain.JobWithEmployer{
			Job: domain.Job{ID: 5, Status: domain.JobStatusActive, EmployerID: 10},
		}, nil)
		m.appRepo.On("Exists", ctx, int64(5), int64(20)).Return(false, nil)
		m.appRepo.On("Create", ctx, mock.Anything).Return(nil)
		m.mailer.On("IsConfigured").Return(false)

		app := &domain.JobApplication{JobID: 5}
		require.NoError(t, uc.Apply(ctx, candidate, app))
		assert.Equal(t, int64(20), app.CandidateID)
		m.appRepo.AssertExpectations(t)
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	ctx := context.Background()
	employer := domain.Actor{UserID: 1, UserType: domain.UserTypeEmployer}

	t.Run("only accepted and rejected are valid targets", func(t *testing.T) {
		uc, _ := newApplicationUsecase()

		err := uc.UpdateStatus(ctx, employer, 3, domain.ApplicationStatusWithdrawn)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "accepted or rejected")
	})

	t.Run("employer cannot touch applications for another company's job", func(t *testing.T) {
		uc, m := newApplicationUsecase()
		m.employerRepo.On("GetByUserID", ctx, int64(1)).Return(&domain.EmployerProfile{ID: 10, UserID: 1}, nil)
		m.appRepo.On("GetByID", ctx, int64(3)).Return(&domain.ApplicationDetail{
			JobApplication: domain.JobApplication{ID: 3, Status: domain.ApplicationStatusPending},
			JobEmployerID:  99,
		}, nil)

		err := uc.UpdateStatus(ctx, employer, 3, domain.ApplicationStatusAccepted)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own jobs")
	})

	t.Run("owning employer can accept", func(t *testing.T) {
		uc, m := newApplicationUsecase()
		m.employerRepo.On("GetByUserID", ctx, int64(1)).Return(&domain.EmployerProfile{ID: 10, UserID: 1}, nil)
		m.appRepo.On("GetByID", ctx, int64(3)).Return(&domain.ApplicationDetail{
			JobApplication: domain.JobApplication{ID: 3, Status: domain.ApplicationStatusPending},
			JobEmployerID:  10,
		}, nil)
		m.appRepo.On("UpdateStatus", ctx, int64(3), domain.ApplicationStatusAccepted).Return(nil)

		require.NoError(t, uc.UpdateStatus(ctx, employer, 3, domain.ApplicationStatusAccepted))
		m.appRepo.AssertExpectations(t)
	})
}

func TestWithdraw(t *testing.T) {
	ctx := context.Background()
	candidate := domain.Actor{UserID: 2, UserType: domain.UserTypeCandidate}
	candidateProfile := &domain.CandidateProfile{ID: 20, UserID: 2}

	t.Run("cannot withdraw someone else's application", func(t *testing.T) {
		uc, m := newApplicationUsecase()
		m.candidateRepo.On("GetByUserID", ctx, int64(2)).Return(candidateProfile, nil)
		m.appRepo.On("GetByID", ctx, int64(3)).Return(&domain.ApplicationDetail{
			JobApplication: domain.JobApplication{ID: 3, CandidateID: 99, Status: domain.ApplicationStatusPending},
		}, nil)

		err := uc.Withdraw(ctx, candidate, 3)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own applications")
	})

	t.Run("only pending applications can be withdrawn", func(t *testing.T) {
		for _, status := range []string{
			domain.ApplicationStatusAccepted,
			domain.ApplicationStatusRejected,
			domain.ApplicationStatusWithdrawn,
		} {
			uc, m := newApplicationUsecase()
			m.candidateRepo.On("GetByUserID", ctx, int64(2)).Return(candidateProfile, nil)
			m.appRepo.On("GetByID", ctx, int64(3)).Return(&domain.ApplicationDetail{
				JobApplication: domain.JobApplication{ID: 3, CandidateID: 20, Status: status},
			}, nil)

			err := uc.Withdraw(ctx, candidate, 3)
			assert.Error(t, err, status)
			assert.Contains(t, err.Error(), "only withdraw pending", status)
		}
	})

	t.Run("pending application withdraws cleanly", func(t *testing.T) {
		uc, m := newApplicationUsecase()
		m.candidateRepo.On("GetByUserID", ctx, int64(2)).Return(candidateProfile, nil)
		m.appRepo.On("GetByID", ctx, int64(3)).Return(&domain.ApplicationDetail{
			JobApplication: domain.JobApplication{ID: 3, CandidateID: 20, Status: domain.ApplicationStatusPending},
		}, nil)
		m.appRepo.On("UpdateStatus", ctx, int64(3), domain.ApplicationStatusWithdrawn).Return(nil)

		require.NoError(t, uc.Withdraw(ctx, candidate, 3))
		m.appRepo.AssertExpectations(t)
	})
}

func TestGetApplicationAccess(t *testing.T) {
	ctx := context.Background()
	detail := &domain.ApplicationDetail{
		JobApplication: domain.JobApplication{ID: 3, CandidateID: 20, Status: domain.ApplicationStatusPending},
		JobEmployerID:  10,
	}

	t.Run("owning candidate can read it", func(t *testing.T) {
		uc, m := newApplicationUsecase()
		m.appRepo.On("GetByID", ctx, int64(3)).Return(detail, nil)
		m.candidateRepo.On("GetByUserID", ctx, int64(2)).Return(&domain.CandidateProfile{ID: 20, UserID: 2}, nil)

		got, err := uc.GetApplication(ctx, domain.Actor{UserID: 2, UserType: domain.UserTypeCandidate}, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.ID)
	})

	t.Run("owning employer can read it", func(t *testing.T) {
		uc, m := newApplicationUsecase()
		m.appRepo.On("GetByID", ctx, int64(3)).Return(detail, nil)
		m.employerRepo.On("GetByUserID", ctx, int64(1)).Return(&domain.EmployerProfile{ID: 10, UserID: 1}, nil)

		_, err := uc.GetApplication(ctx, domain.Actor{UserID: 1, UserType: domain.UserTypeEmployer}, 3)
		require.NoError(t, err)
	})

	t.Run("unrelated candidate is forbidden", func(t *testing.T) {
		uc, m := newApplicationUsecase()
		m.appRepo.On("GetByID", ctx, int64(3)).Return(detail, nil)
		m.candidateRepo.On("GetByUserID", ctx, int64(4)).Return(&domain.CandidateProfile{ID: 44, UserID: 4}, nil)

		_, err := uc.GetApplication(ctx, domain.Actor{UserID: 4, UserType: domain.UserTypeCandidate}, 3)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own applications")
	})
}
