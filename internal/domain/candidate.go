package domain

import (
	"context"
	"time"
)

type CandidateProfile struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"user_id"`
	Title              *string   `json:"title"`
	Bio                *string   `json:"bio"`
	HourlyRate         *float64  `json:"hourly_rate"`
	ExperienceLevel    *string   `json:"experience_level"`
	Availability       *string   `json:"availability"`
	Location           *string   `json:"location"`
	Website            *string   `json:"website"`
	LinkedinURL        *string   `json:"linkedin_url"`
	GithubURL          *string   `json:"github_url"`
	PortfolioURL       *string   `json:"portfolio_url"`
	ResumeFile         *string   `json:"resume_file"`
	TotalEarnings      float64   `json:"total_earnings"`
	TotalJobsCompleted int       `json:"total_jobs_completed"`
	AverageRating      float64   `json:"average_rating"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// CandidateWithUser extends CandidateProfile with public account fields for
// listing and detail responses.
type CandidateWithUser struct {
	CandidateProfile
	FirstName    string           `json:"first_name"`
	LastName     string           `json:"last_name"`
	ProfileImage *string          `json:"profile_image"`
	Skills       []CandidateSkill `json:"skills,omitempty"`
}

type CandidateFilter struct {
	Keywords        string
	ExperienceLevel string
	Availability    string
	Location        string
	MinRate         *float64
	MaxRate         *float64
	Skills          []string
}

type CandidateRepository interface {
	GetByID(ctx context.Context, id int64) (*CandidateWithUser, error)
	GetByUserID(ctx context.Context, userID int64) (*CandidateProfile, error)
	Fetch(ctx context.Context, filter CandidateFilter, limit, offset int) ([]CandidateWithUser, int64, error)
	FetchFeatured(ctx context.Context, limit int) ([]CandidateWithUser, error)
	GetSkills(ctx context.Context, candidateID int64) ([]CandidateSkill, error)
	AddSkill(ctx context.Context, candidateID, skillID int64, proficiency string) error
	RemoveSkill(ctx context.Context, candidateID, skillID int64) error
	UpdateFields(ctx context.Context, userID int64, fields map[string]interface{}) error
}

type CandidateUsecase interface {
	ListCandidates(ctx context.Context, filter CandidateFilter, page, limit int) ([]CandidateWithUser, int64, error)
	FeaturedCandidates(ctx context.Context) ([]CandidateWithUser, error)
	GetCandidate(ctx context.Context, id int64) (*CandidateWithUser, error)
	GetCandidateSkills(ctx context.Context, id int64) ([]CandidateSkill, error)
	AddSkill(ctx context.Context, actor Actor, candidateID, skillID int64, proficiency string) error
	RemoveSkill(ctx context.Context, actor Actor, candidateID, skillID int64) error
}
