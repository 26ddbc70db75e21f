package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/hossamaboassi/Busylancer/internal/domain"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) CreateWithProfile(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return m.Called(ctx, id, fields).Error(0)
}
func (m *MockUserRepo) SetPasswordReset(ctx context.Context, email, token string, expires time.Time) error {
	return m.Called(ctx, email, token, expires).Error(0)
}
func (m *MockUserRepo) GetByResetToken(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}
func (m *MockUserRepo) VerifyEmail(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) GetByID(ctx context.Context, id int64) (*domain.CandidateWithUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateWithUser), args.Error(1)
}
func (m *MockCandidateRepo) GetByUserID(ctx context.Context, userID int64) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}
func (m *MockCandidateRepo) Fetch(ctx context.Context, filter domain.CandidateFilter, limit, offset int) ([]domain.CandidateWithUser, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	var list []domain.CandidateWithUser
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.CandidateWithUser)
	}
	return list, args.Get(1).(int64), args.Error(2)
}
func (m *MockCandidateRepo) FetchFeatured(ctx context.Context, limit int) ([]domain.CandidateWithUser, error) {
	args := m.Called(ctx, limit)
	var list []domain.CandidateWithUser
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.CandidateWithUser)
	}
	return list, args.Error(1)
}
func (m *MockCandidateRepo) GetSkills(ctx context.Context, candidateID int64) ([]domain.CandidateSkill, error) {
	args := m.Called(ctx, candidateID)
	var list []domain.CandidateSkill
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.CandidateSkill)
	}
	return list, args.Error(1)
}
func (m *MockCandidateRepo) AddSkill(ctx context.Context, candidateID, skillID int64, proficiency string) error {
	return m.Called(ctx, candidateID, skillID, proficiency).Error(0)
}
func (m *MockCandidateRepo) RemoveSkill(ctx context.Context, candidateID, skillID int64) error {
	return m.Called(ctx, candidateID, skillID).Error(0)
}
func (m *MockCandidateRepo) UpdateFields(ctx context.Context, userID int64, fields map[string]interface{}) error {
	return m.Called(ctx, userID, fields).Error(0)
}

type MockEmployerRepo struct {
	mock.Mock
}

func (m *MockEmployerRepo) GetByID(ctx context.Context, id int64) (*domain.EmployerProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerProfile), args.Error(1)
}
func (m *MockEmployerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.EmployerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerProfile), args.Error(1)
}
func (m *MockEmployerRepo) IncrementJobsPosted(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockEmployerRepo) UpdateFields(ctx context.Context, userID int64, fields map[string]interface{}) error {
	return m.Called(ctx, userID, fields).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.JobWithEmployer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobWithEmployer), args.Error(1)
}
func (m *MockJobRepo) IncrementViews(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockJobRepo) Fetch(ctx context.Context, filter domain.JobFilter, limit, offset int) ([]domain.JobWithEmployer, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	var list []domain.JobWithEmployer
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.JobWithEmployer)
	}
	return list, args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) FetchFeatured(ctx context.Context, limit int) ([]domain.JobWithEmployer, error) {
	args := m.Called(ctx, limit)
	var list []domain.JobWithEmployer
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.JobWithEmployer)
	}
	return list, args.Error(1)
}
func (m *MockJobRepo) FetchRecent(ctx context.Context, limit int) ([]domain.JobWithEmployer, error) {
	args := m.Called(ctx, limit)
	var list []domain.JobWithEmployer
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.JobWithEmployer)
	}
	return list, args.Error(1)
}
func (m *MockJobRepo) FetchByEmployerID(ctx context.Context, employerID int64, status string, limit, offset int) ([]domain.Job, int64, error) {
	args := m.Called(ctx, employerID, status, limit, offset)
	var list []domain.Job
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.Job)
	}
	return list, args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return m.Called(ctx, id, fields).Error(0)
}
func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockJobRepo) Stats(ctx context.Context) (*domain.JobStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobStats), args.Error(1)
}
func (m *MockJobRepo) GetSkills(ctx context.Context, jobID int64) ([]domain.JobSkill, error) {
	args := m.Called(ctx, jobID)
	var list []domain.JobSkill
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.JobSkill)
	}
	return list, args.Error(1)
}
func (m *MockJobRepo) AddSkill(ctx context.Context, jobID, skillID int64, isRequired bool) error {
	return m.Called(ctx, jobID, skillID, isRequired).Error(0)
}
func (m *MockJobRepo) RemoveSkill(ctx context.Context, jobID, skillID int64) error {
	return m.Called(ctx, jobID, skillID).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.JobApplication) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.ApplicationDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationDetail), args.Error(1)
}
func (m *MockApplicationRepo) Exists(ctx context.Context, jobID, candidateID int64) (bool, error) {
	args := m.Called(ctx, jobID, candidateID)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) FetchByCandidate(ctx context.Context, candidateID int64, status string, limit, offset int) ([]domain.ApplicationDetail, int64, error) {
	args := m.Called(ctx, candidateID, status, limit, offset)
	var list []domain.ApplicationDetail
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.ApplicationDetail)
	}
	return list, args.Get(1).(int64), args.Error(2)
}
func (m *MockApplicationRepo) FetchByJob(ctx context.Context, jobID int64, limit, offset int) ([]domain.ApplicationDetail, int64, error) {
	args := m.Called(ctx, jobID, limit, offset)
	var list []domain.ApplicationDetail
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.ApplicationDetail)
	}
	return list, args.Get(1).(int64), args.Error(2)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *MockApplicationRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockApplicationRepo) StatsByCandidate(ctx context.Context, candidateID int64) (*domain.ApplicationStats, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationStats), args.Error(1)
}
func (m *MockApplicationRepo) StatsByEmployer(ctx context.Context, employerID int64) (*domain.ApplicationStats, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationStats), args.Error(1)
}
func (m *MockApplicationRepo) RecentByCandidate(ctx context.Context, candidateID int64, limit int) ([]domain.ApplicationDetail, error) {
	args := m.Called(ctx, candidateID, limit)
	var list []domain.ApplicationDetail
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.ApplicationDetail)
	}
	return list, args.Error(1)
}
func (m *MockApplicationRepo) RecentByEmployer(ctx context.Context, employerID int64, limit int) ([]domain.ApplicationDetail, error) {
	args := m.Called(ctx, employerID, limit)
	var list []domain.ApplicationDetail
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.ApplicationDetail)
	}
	return list, args.Error(1)
}

// MockMailer records notification calls without sending anything.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendWelcome(to, firstName, userType string) error {
	return m.Called(to, firstName, userType).Error(0)
}
func (m *MockMailer) SendNewApplication(to, candidateName, jobTitle string) error {
	return m.Called(to, candidateName, jobTitle).Error(0)
}
func (m *MockMailer) IsConfigured() bool {
	return m.Called().Bool(0)
}
