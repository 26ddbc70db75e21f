package domain

import (
	"context"
	"time"
)

const (
	JobTypeFixedPrice = "fixed_price"
	JobTypeHourly     = "hourly"

	JobStatusActive    = "active"
	JobStatusCompleted = "completed"
	JobStatusExpired   = "expired"
)

type Job struct {
	ID                int64      `json:"id"`
	EmployerID        int64      `json:"employer_id"`
	CategoryID        *int64     `json:"category_id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	JobType           string     `json:"job_type"`
	BudgetMin         *float64   `json:"budget_min"`
	BudgetMax         *float64   `json:"budget_max"`
	HourlyRateMin     *float64   `json:"hourly_rate_min"`
	HourlyRateMax     *float64   `json:"hourly_rate_max"`
	DurationEstimate  *string    `json:"duration_estimate"`
	ExperienceLevel   *string    `json:"experience_level"`
	Location          *string    `json:"location"`
	IsRemote          bool       `json:"is_remote"`
	Deadline          *time.Time `json:"deadline"`
	Status            string     `json:"status"`
	Featured          bool       `json:"featured"`
	ViewsCount        int        `json:"views_count"`
	ApplicationsCount int        `json:"applications_count"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// JobWithEmployer extends Job with the posting company's public fields.
type JobWithEmployer struct {
	Job
	CompanyName    *string `json:"company_name"`
	CompanyLogo    *string `json:"company_logo"`
	EmployerRating float64 `json:"employer_rating"`
	CategoryName   *string `json:"category_name"`
}

type JobCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// JobFilter carries the allow-listed search parameters. Zero values mean
// "not filtered".
type JobFilter struct {
	CategoryID      *int64
	JobType         string
	ExperienceLevel string
	Location        string
	Keywords        string
	IsRemote        *bool
	MinBudget       *float64
	MaxBudget       *float64
	Skills          []string
	Status          string
}

type JobStats struct {
	TotalJobs      int64 `json:"total_jobs"`
	ActiveJobs     int64 `json:"active_jobs"`
	FixedPriceJobs int64 `json:"fixed_price_jobs"`
	HourlyJobs     int64 `json:"hourly_jobs"`
	RemoteJobs     int64 `json:"remote_jobs"`
	FeaturedJobs   int64 `json:"featured_jobs"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*JobWithEmployer, error)
	IncrementViews(ctx context.Context, id int64) error
	Fetch(ctx context.Context, filter JobFilter, limit, offset int) ([]JobWithEmployer, int64, error)
	FetchFeatured(ctx context.Context, limit int) ([]JobWithEmployer, error)
	FetchRecent(ctx context.Context, limit int) ([]JobWithEmployer, error)
	FetchByEmployerID(ctx context.Context, employerID int64, status string, limit, offset int) ([]Job, int64, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*JobStats, error)
	GetSkills(ctx context.Context, jobID int64) ([]JobSkill, error)
	AddSkill(ctx context.Context, jobID, skillID int64, isRequired bool) error
	RemoveSkill(ctx context.Context, jobID, skillID int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, actor Actor, job *Job) error
	GetJob(ctx context.Context, id int64) (*JobWithEmployer, error)
	ListJobs(ctx context.Context, filter JobFilter, page, limit int) ([]JobWithEmployer, int64, error)
	FeaturedJobs(ctx context.Context) ([]JobWithEmployer, error)
	RecentJobs(ctx context.Context, limit int) ([]JobWithEmployer, error)
	MyJobs(ctx context.Context, actor Actor, status string, page, limit int) ([]Job, int64, error)
	UpdateJob(ctx context.Context, actor Actor, jobID int64, updates map[string]interface{}) error
	DeleteJob(ctx context.Context, actor Actor, jobID int64) error
	Stats(ctx context.Context) (*JobStats, error)
	JobSkills(ctx context.Context, jobID int64) ([]JobSkill, error)
	AddJobSkill(ctx context.Context, actor Actor, jobID, skillID int64, isRequired bool) error
	RemoveJobSkill(ctx context.Context, actor Actor, jobID, skillID int64) error
}
