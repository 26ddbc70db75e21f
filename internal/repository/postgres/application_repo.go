package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hossamaboassi/Busylancer/internal/domain"
	"github.com/hossamaboassi/Busylancer/pkg/apperror"
)

const applicationDetailSelect = `SELECT a.id, a.job_id, a.candidate_id, a.cover_letter, a.proposed_rate, a.estimated_duration, a.status, a.submitted_at, a.updated_at,
		j.title, j.status, j.employer_id,
		u.first_name || ' ' || u.last_name, u.id
	FROM job_applications a
	JOIN jobs j ON a.job_id = j.id
	JOIN candidate_profiles cp ON a.candidate_id = cp.id
	JOIN users u ON cp.user_id = u.id`

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func scanApplicationDetail(row pgx.Row) (*domain.ApplicationDetail, error) {
	var a domain.ApplicationDetail
	err := row.Scan(
		&a.ID, &a.JobID, &a.CandidateID, &a.CoverLetter, &a.ProposedRate,
		&a.EstimatedDuration, &a.Status, &a.SubmittedAt, &a.UpdatedAt,
		&a.JobTitle, &a.JobStatus, &a.JobEmployerID,
		&a.CandidateName, &a.CandidateUserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Create inserts the application and bumps the job's counter in one
// transaction, so the counter can never drift from the row count.
func (r *applicationRepo) Create(ctx context.Context, app *domain.JobApplication) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO job_applications (job_id, candidate_id, cover_letter, proposed_rate, estimated_duration)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, status, submitted_at, updated_at`
	err = tx.QueryRow(ctx, query,
		app.JobID, app.CandidateID, app.CoverLetter, app.ProposedRate, app.EstimatedDuration,
	).Scan(&app.ID, &app.Status, &app.SubmittedAt, &app.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("You have already applied to this job")
		}
		return err
	}

	_, err = tx.Exec(ctx, `UPDATE jobs SET applications_count = applications_count + 1 WHERE id = $1`, app.JobID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.ApplicationDetail, error) {
	query := applicationDetailSelect + ` WHERE a.id = $1`
	return scanApplicationDetail(r.db.QueryRow(ctx, query, id))
}

func (r *applicationRepo) Exists(ctx context.Context, jobID, candidateID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM job_applications WHERE job_id = $1 AND candidate_id = $2)`,
		jobID, candidateID,
	).Scan(&exists)
	return exists, err
}

func (r *applicationRepo) FetchByCandidate(ctx context.Context, candidateID int64, status string, limit, offset int) ([]domain.ApplicationDetail, int64, error) {
	args := []interface{}{candidateID}
	where := "a.candidate_id = $1"
	if status != "" {
		args = append(args, status)
		where += " AND a.status = $2"
	}

	query := fmt.Sprintf(applicationDetailSelect+`
		WHERE %s
		ORDER BY a.submitted_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)

	apps, err := r.fetchList(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM job_applications a WHERE %s`, where)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

func (r *applicationRepo) FetchByJob(ctx context.Context, jobID int64, limit, offset int) ([]domain.ApplicationDetail, int64, error) {
	query := applicationDetailSelect + `
		WHERE a.job_id = $1
		ORDER BY a.submitted_at DESC
		LIMIT $2 OFFSET $3`

	apps, err := r.fetchList(ctx, query, jobID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM job_applications WHERE job_id = $1`, jobID).Scan(&total); err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

func (r *applicationRepo) fetchList(ctx context.Context, query string, args ...interface{}) ([]domain.ApplicationDetail, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.ApplicationDetail
	for rows.Next() {
		a, err := scanApplicationDetail(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *a)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	result, err := r.db.Exec(ctx, `UPDATE job_applications SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *applicationRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM job_applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

const statsSelect = `SELECT
	COUNT(*),
	COUNT(*) FILTER (WHERE a.status = 'pending'),
	COUNT(*) FILTER (WHERE a.status = 'accepted'),
	COUNT(*) FILTER (WHERE a.status = 'rejected'),
	COUNT(*) FILTER (WHERE a.status = 'withdrawn')`

func (r *applicationRepo) StatsByCandidate(ctx context.Context, candidateID int64) (*domain.ApplicationStats, error) {
	query := statsSelect + ` FROM job_applications a WHERE a.candidate_id = $1`
	var s domain.ApplicationStats
	err := r.db.QueryRow(ctx, query, candidateID).Scan(&s.Total, &s.Pending, &s.Accepted, &s.Rejected, &s.Withdrawn)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *applicationRepo) StatsByEmployer(ctx context.Context, employerID int64) (*domain.ApplicationStats, error) {
	query := statsSelect + `
		FROM job_applications a
		JOIN jobs j ON a.job_id = j.id
		WHERE j.employer_id = $1`
	var s domain.ApplicationStats
	err := r.db.QueryRow(ctx, query, employerID).Scan(&s.Total, &s.Pending, &s.Accepted, &s.Rejected, &s.Withdrawn)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *applicationRepo) RecentByCandidate(ctx context.Context, candidateID int64, limit int) ([]domain.ApplicationDetail, error) {
	query := applicationDetailSelect + `
		WHERE a.candidate_id = $1
		ORDER BY a.submitted_at DESC
		LIMIT $2`
	return r.fetchList(ctx, query, candidateID, limit)
}

func (r *applicationRepo) RecentByEmployer(ctx context.Context, employerID int64, limit int) ([]domain.ApplicationDetail, error) {
	query := applicationDetailSelect + `
		WHERE j.employer_id = $1
		ORDER BY a.submitted_at DESC
		LIMIT $2`
	return r.fetchList(ctx, query, employerID, limit)
}
