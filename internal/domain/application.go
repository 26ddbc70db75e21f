package domain

import (
	"context"
	"time"
)

const (
	ApplicationStatusPending   = "pending"
	ApplicationStatusAccepted  = "accepted"
	ApplicationStatusRejected  = "rejected"
	ApplicationStatusWithdrawn = "withdrawn"
)

type JobApplication struct {
	ID                int64     `json:"id"`
	JobID             int64     `json:"job_id"`
	CandidateID       int64     `json:"candidate_id"`
	CoverLetter       *string   `json:"cover_letter"`
	ProposedRate      *float64  `json:"proposed_rate"`
	EstimatedDuration *string   `json:"estimated_duration"`
	Status            string    `json:"status"`
	SubmittedAt       time.Time `json:"submitted_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ApplicationDetail joins the application with the job and candidate rows
// needed for access checks and list responses.
type ApplicationDetail struct {
	JobApplication
	JobTitle        string `json:"job_title"`
	JobStatus       string `json:"job_status"`
	JobEmployerID   int64  `json:"-"`
	CandidateName   string `json:"candidate_name"`
	CandidateUserID int64  `json:"-"`
}

type ApplicationStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Accepted  int64 `json:"accepted"`
	Rejected  int64 `json:"rejected"`
	Withdrawn int64 `json:"withdrawn"`
}

type ApplicationRepository interface {
	// Create inserts the application and bumps the job's applications
	// counter in one transaction.
	Create(ctx context.Context, app *JobApplication) error
	GetByID(ctx context.Context, id int64) (*ApplicationDetail, error)
	Exists(ctx context.Context, jobID, candidateID int64) (bool, error)
	FetchByCandidate(ctx context.Context, candidateID int64, status string, limit, offset int) ([]ApplicationDetail, int64, error)
	FetchByJob(ctx context.Context, jobID int64, limit, offset int) ([]ApplicationDetail, int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
	StatsByCandidate(ctx context.Context, candidateID int64) (*ApplicationStats, error)
	StatsByEmployer(ctx context.Context, employerID int64) (*ApplicationStats, error)
	RecentByCandidate(ctx context.Context, candidateID int64, limit int) ([]ApplicationDetail, error)
	RecentByEmployer(ctx context.Context, employerID int64, limit int) ([]ApplicationDetail, error)
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, actor Actor, app *JobApplication) error
	MyApplications(ctx context.Context, actor Actor, status string, page, limit int) ([]ApplicationDetail, int64, error)
	JobApplications(ctx context.Context, actor Actor, jobID int64, page, limit int) ([]ApplicationDetail, int64, error)
	GetApplication(ctx context.Context, actor Actor, id int64) (*ApplicationDetail, error)
	UpdateStatus(ctx context.Context, actor Actor, id int64, status string) error
	Withdraw(ctx context.Context, actor Actor, id int64) error
	DeleteApplication(ctx context.Context, actor Actor, id int64) error
	Stats(ctx context.Context, actor Actor) (*ApplicationStats, error)
	Recent(ctx context.Context, actor Actor, limit int) ([]ApplicationDetail, error)
}
