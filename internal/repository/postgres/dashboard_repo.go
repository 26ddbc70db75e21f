package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hossamaboassi/Busylancer/internal/domain"
)

type dashboardRepo struct {
	db *pgxpool.Pool
}

func NewDashboardRepository(db *pgxpool.Pool) domain.DashboardRepository {
	return &dashboardRepo{db: db}
}

func (r *dashboardRepo) PlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	query := `SELECT
		(SELECT COUNT(*) FROM jobs),
		(SELECT COUNT(*) FROM jobs WHERE status = 'active'),
		(SELECT COUNT(*) FROM candidate_profiles),
		(SELECT COUNT(*) FROM employer_profiles),
		(SELECT COUNT(*) FROM job_applications)`

	var s domain.PlatformStats
	err := r.db.QueryRow(ctx, query).Scan(
		&s.TotalJobs, &s.ActiveJobs, &s.TotalCandidates, &s.TotalEmployers, &s.TotalApplications,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *dashboardRepo) CountActiveJobsByEmployer(ctx context.Context, employerID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM jobs WHERE employer_id = $1 AND status = 'active'`,
		employerID,
	).Scan(&count)
	return count, err
}
