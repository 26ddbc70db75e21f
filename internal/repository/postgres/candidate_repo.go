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

const candidateColumns = `cp.id, cp.user_id, cp.title, cp.bio, cp.hourly_rate, cp.experience_level, cp.availability, cp.location, cp.website, cp.linkedin_url, cp.github_url, cp.portfolio_url, cp.resume_file, cp.total_earnings, cp.total_jobs_completed, cp.average_rating, cp.created_at, cp.updated_at, u.first_name, u.last_name, u.profile_image`

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

func scanCandidateWithUser(row pgx.Row) (*domain.CandidateWithUser, error) {
	var c domain.CandidateWithUser
	err := row.Scan(
		&c.ID, &c.UserID, &c.Title, &c.Bio, &c.HourlyRate, &c.ExperienceLevel,
		&c.Availability, &c.Location, &c.Website, &c.LinkedinURL, &c.GithubURL,
		&c.PortfolioURL, &c.ResumeFile, &c.TotalEarnings, &c.TotalJobsCompleted,
		&c.AverageRating, &c.CreatedAt, &c.UpdatedAt,
		&c.FirstName, &c.LastName, &c.ProfileImage,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *candidateRepo) GetByID(ctx context.Context, id int64) (*domain.CandidateWithUser, error) {
	query := `SELECT ` + candidateColumns + `
		FROM candidate_profiles cp
		JOIN users u ON cp.user_id = u.id
		WHERE cp.id = $1 AND u.is_active`
	return scanCandidateWithUser(r.db.QueryRow(ctx, query, id))
}

func (r *candidateRepo) GetByUserID(ctx context.Context, userID int64) (*domain.CandidateProfile, error) {
	query := `SELECT id, user_id, title, bio, hourly_rate, experience_level, availability, location, website, linkedin_url, github_url, portfolio_url, resume_file, total_earnings, total_jobs_completed, average_rating, created_at, updated_at
		FROM candidate_profiles WHERE user_id = $1`
	var p domain.CandidateProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Title, &p.Bio, &p.HourlyRate, &p.ExperienceLevel,
		&p.Availability, &p.Location, &p.Website, &p.LinkedinURL, &p.GithubURL,
		&p.PortfolioURL, &p.ResumeFile, &p.TotalEarnings, &p.TotalJobsCompleted,
		&p.AverageRating, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// candidateWhere renders the allow-listed filter into a WHERE fragment.
// Every value is a bind parameter; column names never come from input.
func candidateWhere(filter domain.CandidateFilter) (string, []interface{}) {
	conds := []string{"u.is_active"}
	var args []interface{}

	next := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Keywords != "" {
		p := next("%" + filter.Keywords + "%")
		conds = append(conds, fmt.Sprintf("(cp.title ILIKE %s OR cp.bio ILIKE %s OR u.first_name ILIKE %s OR u.last_name ILIKE %s)", p, p, p, p))
	}
	if filter.ExperienceLevel != "" {
		conds = append(conds, "cp.experience_level = "+next(filter.ExperienceLevel))
	}
	if filter.Availability != "" {
		conds = append(conds, "cp.availability = "+next(filter.Availability))
	}
	if filter.Location != "" {
		conds = append(conds, "cp.location ILIKE "+next("%"+filter.Location+"%"))
	}
	if filter.MinRate != nil {
		conds = append(conds, "cp.hourly_rate >= "+next(*filter.MinRate))
	}
	if filter.MaxRate != nil {
		conds = append(conds, "cp.hourly_rate <= "+next(*filter.MaxRate))
	}
	if len(filter.Skills) > 0 {
		p := next(pq.Array(filter.Skills))
		conds = append(conds, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM candidate_skills cs JOIN skills s ON cs.skill_id = s.id WHERE cs.candidate_id = cp.id AND s.name = ANY(%s))", p))
	}

	return strings.Join(conds, " AND "), args
}

func (r *candidateRepo) Fetch(ctx context.Context, filter domain.CandidateFilter, limit, offset int) ([]domain.CandidateWithUser, int64, error) {
	where, args := candidateWhere(filter)

	query := fmt.Sprintf(`SELECT `+candidateColumns+`
		FROM candidate_profiles cp
		JOIN users u ON cp.user_id = u.id
		WHERE %s
		ORDER BY cp.average_rating DESC, cp.created_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var candidates []domain.CandidateWithUser
	for rows.Next() {
		c, err := scanCandidateWithUser(rows)
		if err != nil {
			return nil, 0, err
		}
		candidates = append(candidates, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM candidate_profiles cp JOIN users u ON cp.user_id = u.id WHERE %s`, where)
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return candidates, total, nil
}

func (r *candidateRepo) FetchFeatured(ctx context.Context, limit int) ([]domain.CandidateWithUser, error) {
	query := `SELECT ` + candidateColumns + `
		FROM candidate_profiles cp
		JOIN users u ON cp.user_id = u.id
		WHERE u.is_active
		ORDER BY cp.average_rating DESC, cp.total_jobs_completed DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []domain.CandidateWithUser
	for rows.Next() {
		c, err := scanCandidateWithUser(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, *c)
	}
	return candidates, rows.Err()
}

func (r *candidateRepo) GetSkills(ctx context.Context, candidateID int64) ([]domain.CandidateSkill, error) {
	query := `SELECT s.id, s.name, s.category, cs.proficiency_level
		FROM candidate_skills cs
		JOIN skills s ON cs.skill_id = s.id
		WHERE cs.candidate_id = $1
		ORDER BY s.name`

	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.CandidateSkill
	for rows.Next() {
		var s domain.CandidateSkill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.ProficiencyLevel); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *candidateRepo) AddSkill(ctx context.Context, candidateID, skillID int64, proficiency string) error {
	query := `INSERT INTO candidate_skills (candidate_id, skill_id, proficiency_level)
		VALUES ($1, $2, $3)
		ON CONFLICT (candidate_id, skill_id) DO UPDATE SET proficiency_level = EXCLUDED.proficiency_level`
	_, err := r.db.Exec(ctx, query, candidateID, skillID, proficiency)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return apperror.BadRequest("Unknown skill")
		}
		return err
	}
	return nil
}

func (r *candidateRepo) RemoveSkill(ctx context.Context, candidateID, skillID int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM candidate_skills WHERE candidate_id = $1 AND skill_id = $2`, candidateID, skillID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) UpdateFields(ctx context.Context, userID int64, fields map[string]interface{}) error {
	set, args := setClause(fields)
	query := fmt.Sprintf(`UPDATE candidate_profiles SET %s, updated_at = NOW() WHERE user_id = $%d`, set, len(args)+1)
	result, err := r.db.Exec(ctx, query, append(args, userID)...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
