package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hossamaboassi/Busylancer/internal/domain"
)

type skillRepo struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

func (r *skillRepo) Fetch(ctx context.Context, category string, limit, offset int) ([]domain.Skill, int64, error) {
	query := `SELECT id, name, category FROM skills ORDER BY name LIMIT $1 OFFSET $2`
	args := []interface{}{limit, offset}
	countQuery := `SELECT COUNT(*) FROM skills`
	countArgs := []interface{}{}

	if category != "" {
		query = `SELECT id, name, category FROM skills WHERE category = $1 ORDER BY name LIMIT $2 OFFSET $3`
		args = []interface{}{category, limit, offset}
		countQuery = `SELECT COUNT(*) FROM skills WHERE category = $1`
		countArgs = []interface{}{category}
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category); err != nil {
			return nil, 0, err
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return skills, total, nil
}

func (r *skillRepo) Search(ctx context.Context, keywords string, limit int) ([]domain.Skill, error) {
	query := `SELECT id, name, category FROM skills WHERE name ILIKE $1 ORDER BY name LIMIT $2`
	rows, err := r.db.Query(ctx, query, "%"+keywords+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *skillRepo) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT category FROM skills WHERE category IS NOT NULL ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *skillRepo) GetByID(ctx context.Context, id int64) (*domain.Skill, error) {
	var s domain.Skill
	err := r.db.QueryRow(ctx, `SELECT id, name, category FROM skills WHERE id = $1`, id).Scan(&s.ID, &s.Name, &s.Category)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}
