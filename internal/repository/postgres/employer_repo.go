package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hossamaboassi/Busylancer/internal/domain"
)

const employerColumns = `id, user_id, company_name, company_description, company_size, industry, website, company_logo, location, total_spent, total_jobs_posted, average_rating, created_at, updated_at`

type employerRepo struct {
	db *pgxpool.Pool
}

func NewEmployerRepository(db *pgxpool.Pool) domain.EmployerRepository {
	return &employerRepo{db: db}
}

func scanEmployer(row pgx.Row) (*domain.EmployerProfile, error) {
	var p domain.EmployerProfile
	err := row.Scan(
		&p.ID, &p.UserID, &p.CompanyName, &p.CompanyDescription, &p.CompanySize,
		&p.Industry, &p.Website, &p.CompanyLogo, &p.Location,
		&p.TotalSpent, &p.TotalJobsPosted, &p.AverageRating,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *employerRepo) GetByID(ctx context.Context, id int64) (*domain.EmployerProfile, error) {
	query := `SELECT ` + employerColumns + ` FROM employer_profiles WHERE id = $1`
	return scanEmployer(r.db.QueryRow(ctx, query, id))
}

func (r *employerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.EmployerProfile, error) {
	query := `SELECT ` + employerColumns + ` FROM employer_profiles WHERE user_id = $1`
	return scanEmployer(r.db.QueryRow(ctx, query, userID))
}

// IncrementJobsPosted bumps the counter atomically in SQL, never
// read-modify-write in Go.
func (r *employerRepo) IncrementJobsPosted(ctx context.Context, id int64) error {
	query := `UPDATE employer_profiles SET total_jobs_posted = total_jobs_posted + 1, updated_at = NOW() WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *employerRepo) UpdateFields(ctx context.Context, userID int64, fields map[string]interface{}) error {
	set, args := setClause(fields)
	query := fmt.Sprintf(`UPDATE employer_profiles SET %s, updated_at = NOW() WHERE user_id = $%d`, set, len(args)+1)
	result, err := r.db.Exec(ctx, query, append(args, userID)...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
