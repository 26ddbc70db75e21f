package domain

import "context"

type CandidateDashboard struct {
	Profile            *CandidateProfile   `json:"profile"`
	ApplicationStats   *ApplicationStats   `json:"application_stats"`
	RecentApplications []ApplicationDetail `json:"recent_applications"`
}

type EmployerDashboard struct {
	Profile            *EmployerProfile    `json:"profile"`
	ActiveJobs         int64               `json:"active_jobs"`
	ApplicationStats   *ApplicationStats   `json:"application_stats"`
	RecentApplications []ApplicationDetail `json:"recent_applications"`
}

type PlatformStats struct {
	TotalJobs         int64 `json:"total_jobs"`
	ActiveJobs        int64 `json:"active_jobs"`
	TotalCandidates   int64 `json:"total_candidates"`
	TotalEmployers    int64 `json:"total_employers"`
	TotalApplications int64 `json:"total_applications"`
}

type DashboardRepository interface {
	PlatformStats(ctx context.Context) (*PlatformStats, error)
	CountActiveJobsByEmployer(ctx context.Context, employerID int64) (int64, error)
}

type DashboardUsecase interface {
	// Overview dispatches on the actor's user type.
	Overview(ctx context.Context, actor Actor) (interface{}, error)
	CandidateDashboard(ctx context.Context, actor Actor) (*CandidateDashboard, error)
	EmployerDashboard(ctx context.Context, actor Actor) (*EmployerDashboard, error)
	PlatformStats(ctx context.Context) (*PlatformStats, error)
}
