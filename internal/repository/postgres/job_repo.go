package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"github.com/hossamaboassi/Busylancer/internal/domain"
	"github.com/hossamaboassi/Busylancer/pkg/apperror"
)

const jobColumns = `j.id, j.employer_id, j.category_id, j.title, j.description, j.job_type, j.budget_min, j.budget_max, j.hourly_rate_min, j.hourly_rate_max, j.duration_estimate, j.experience_level, j.location, j.is_remote, j.deadline, j.status, j.featured, j.views_count, j.applications_count, j.created_at, j.updated_at`

const jobColumnsBare = `id, employer_id, category_id, title, description, job_type, budget_min, budget_max, hourly_rate_min, hourly_rate_max, duration_estimate, experience_level, location, is_remote, deadline, status, featured, views_count, applications_count, created_at, updated_at`

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var j domain.Job
	err := row.Scan(
		&j.ID, &j.EmployerID, &j.CategoryID, &j.Title, &j.Description, &j.JobType,
		&j.BudgetMin, &j.BudgetMax, &j.HourlyRateMin, &j.HourlyRateMax,
		&j.DurationEstimate, &j.ExperienceLevel, &j.Location, &j.IsRemote,
		&j.Deadline, &j.Status, &j.Featured, &j.ViewsCount, &j.ApplicationsCount,
		&j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &j, nil
}

func scanJobWithEmployer(row pgx.Row) (*domain.JobWithEmployer, error) {
	var j domain.JobWithEmployer
	err := row.Scan(
		&j.ID, &j.EmployerID, &j.CategoryID, &j.Title, &j.Description, &j.JobType,
		&j.BudgetMin, &j.BudgetMax, &j.HourlyRateMin, &j.HourlyRateMax,
		&j.DurationEstimate, &j.ExperienceLevel, &j.Location, &j.IsRemote,
		&j.Deadline, &j.Status, &j.Featured, &j.ViewsCount, &j.ApplicationsCount,
		&j.CreatedAt, &j.UpdatedAt,
		&j.CompanyName, &j.CompanyLogo, &j.EmployerRating, &j.CategoryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &j, nil
}

const jobWithEmployerSelect = `SELECT ` + jobColumns + `,
		ep.company_name, ep.company_logo, ep.average_rating, jc.name
	FROM jobs j
	JOIN employer_profiles ep ON j.employer_id = ep.id
	LEFT JOIN job_categories jc ON j.category_id = jc.id`

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (employer_id, category_id, title, description, job_type, budget_min, budget_max, hourly_rate_min, hourly_rate_max, duration_estimate, experience_level, location, is_remote, deadline)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, status, featured, views_count, applications_count, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		job.EmployerID, job.CategoryID, job.Title, job.Description, job.JobType,
		job.BudgetMin, job.BudgetMax, job.HourlyRateMin, job.HourlyRateMax,
		job.DurationEstimate, job.ExperienceLevel, job.Location, job.IsRemote, job.Deadline,
	).Scan(&job.ID, &job.Status, &job.Featured, &job.ViewsCount, &job.ApplicationsCount, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return apperror.BadRequest("Unknown category")
		}
		return err
	}
	return nil
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.JobWithEmployer, error) {
	query := jobWithEmployerSelect + ` WHERE j.id = $1`
	return scanJobWithEmployer(r.db.QueryRow(ctx, query, id))
}

// IncrementViews bumps the view counter atomically in SQL.
func (r *jobRepo) IncrementViews(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `UPDATE jobs SET views_count = views_count + 1 WHERE id = $1`, id)
	return err
}

// jobWhere renders the allow-listed filter into a WHERE fragment. Every
// value is a bind parameter; column names never come from input.
func jobWhere(filter domain.JobFilter) (string, []interface{}) {
	status := filter.Status
	if status == "" {
		status = domain.JobStatusActive
	}

	var args []interface{}
	next := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	conds := []string{"j.status = " + next(status)}

	if filter.CategoryID != nil {
		conds = append(conds, "j.category_id = "+next(*filter.CategoryID))
	}
	if filter.JobType != "" {
		conds = append(conds, "j.job_type = "+next(filter.JobType))
	}
	if filter.ExperienceLevel != "" {
		conds = append(conds, "j.experience_level = "+next(filter.ExperienceLevel))
	}
	if filter.Location != "" {
		conds = append(conds, "j.location ILIKE "+next("%"+filter.Location+"%"))
	}
	if filter.Keywords != "" {
		p := next("%" + filter.Keywords + "%")
		conds = append(conds, fmt.Sprintf("(j.title ILIKE %s OR j.description ILIKE %s)", p, p))
	}
	if filter.IsRemote != nil {
		conds = append(conds, "j.is_remote = "+next(*filter.IsRemote))
	}
	if filter.MinBudget != nil {
		conds = append(conds, "COALESCE(j.budget_max, j.hourly_rate_max) >= "+next(*filter.MinBudget))
	}
	if filter.MaxBudget != nil {
		conds = append(conds, "COALESCE(j.budget_min, j.hourly_rate_min) <= "+next(*filter.MaxBudget))
	}
	if len(filter.Skills) > 0 {
		p := next(pq.Array(filter.Skills))
		conds = append(conds, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM job_skills js JOIN skills s ON js.skill_id = s.id WHERE js.job_id = j.id AND s.name = ANY(%s))", p))
	}

	return strings.Join(conds, " AND "), args
}

func (r *jobRepo) Fetch(ctx context.Context, filter domain.JobFilter, limit, offset int) ([]domain.JobWithEmployer, int64, error) {
	where, args := jobWhere(filter)

	query := fmt.Sprintf(jobWithEmployerSelect+`
		WHERE %s
		ORDER BY j.featured DESC, j.created_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.JobWithEmployer
	for rows.Next() {
		j, err := scanJobWithEmployer(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, *j)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM jobs j WHERE %s`, where)
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *jobRepo) FetchFeatured(ctx context.Context, limit int) ([]domain.JobWithEmployer, error) {
	query := jobWithEmployerSelect + `
		WHERE j.featured AND j.status = 'active'
		ORDER BY j.created_at DESC
		LIMIT $1`
	return r.fetchList(ctx, query, limit)
}

func (r *jobRepo) FetchRecent(ctx context.Context, limit int) ([]domain.JobWithEmployer, error) {
	query := jobWithEmployerSelect + `
		WHERE j.status = 'active'
		ORDER BY j.created_at DESC
		LIMIT $1`
	return r.fetchList(ctx, query, limit)
}

func (r *jobRepo) fetchList(ctx context.Context, query string, args ...interface{}) ([]domain.JobWithEmployer, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.JobWithEmployer
	for rows.Next() {
		j, err := scanJobWithEmployer(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *j)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) FetchByEmployerID(ctx context.Context, employerID int64, status string, limit, offset int) ([]domain.Job, int64, error) {
	args := []interface{}{employerID}
	where := "employer_id = $1"
	if status != "" {
		args = append(args, status)
		where += " AND status = $2"
	}

	query := fmt.Sprintf(`SELECT `+jobColumnsBare+`
		FROM jobs WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, *j)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM jobs WHERE %s`, where)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *jobRepo) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	set, args := setClause(fields)
	query := fmt.Sprintf(`UPDATE jobs SET %s, updated_at = NOW() WHERE id = $%d`, set, len(args)+1)
	result, err := r.db.Exec(ctx, query, append(args, id)...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Stats(ctx context.Context) (*domain.JobStats, error) {
	query := `SELECT
		COUNT(*),
		COUNT(*) FILTER (WHERE status = 'active'),
		COUNT(*) FILTER (WHERE job_type = 'fixed_price' AND status = 'active'),
		COUNT(*) FILTER (WHERE job_type = 'hourly' AND status = 'active'),
		COUNT(*) FILTER (WHERE is_remote AND status = 'active'),
		COUNT(*) FILTER (WHERE featured AND status = 'active')
	FROM jobs`

	var s domain.JobStats
	err := r.db.QueryRow(ctx, query).Scan(
		&s.TotalJobs, &s.ActiveJobs, &s.FixedPriceJobs, &s.HourlyJobs, &s.RemoteJobs, &s.FeaturedJobs,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *jobRepo) GetSkills(ctx context.Context, jobID int64) ([]domain.JobSkill, error) {
	query := `SELECT s.id, s.name, s.category, js.is_required
		FROM job_skills js
		JOIN skills s ON js.skill_id = s.id
		WHERE js.job_id = $1
		ORDER BY s.name`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.JobSkill
	for rows.Next() {
		var s domain.JobSkill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.IsRequired); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *jobRepo) AddSkill(ctx context.Context, jobID, skillID int64, isRequired bool) error {
	query := `INSERT INTO job_skills (job_id, skill_id, is_required)
		VALUES ($1, $2, $3)
		ON CONFLICT (job_id, skill_id) DO UPDATE SET is_required = EXCLUDED.is_required`
	_, err := r.db.Exec(ctx, query, jobID, skillID, isRequired)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return apperror.BadRequest("Unknown skill")
		}
		return err
	}
	return nil
}

func (r *jobRepo) RemoveSkill(ctx context.Context, jobID, skillID int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM job_skills WHERE job_id = $1 AND skill_id = $2`, jobID, skillID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
