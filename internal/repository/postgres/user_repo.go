package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hossamaboassi/Busylancer/internal/domain"
	"github.com/hossamaboassi/Busylancer/pkg/apperror"
)

const userColumns = `id, email, password_hash, user_type, first_name, last_name, phone, profile_image, is_active, email_verified, email_verification_token, password_reset_token, password_reset_expires, created_at, updated_at`

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.UserType, &u.FirstName, &u.LastName,
		&u.Phone, &u.ProfileImage, &u.IsActive, &u.EmailVerified,
		&u.EmailVerificationToken, &u.PasswordResetToken, &u.PasswordResetExpires,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// CreateWithProfile inserts the user and its empty candidate or employer
// profile in one transaction, so no account exists without a profile row.
func (r *userRepo) CreateWithProfile(ctx context.Context, user *domain.User) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO users (email, password_hash, user_type, first_name, last_name, phone, email_verification_token)
              VALUES ($1, $2, $3, $4, $5, $6, $7)
              RETURNING id, is_active, email_verified, created_at, updated_at`
	err = tx.QueryRow(ctx, query,
		user.Email, user.PasswordHash, user.UserType, user.FirstName, user.LastName,
		user.Phone, user.EmailVerificationToken,
	).Scan(&user.ID, &user.IsActive, &user.EmailVerified, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("User with this email already exists")
		}
		return err
	}

	switch user.UserType {
	case domain.UserTypeCandidate:
		_, err = tx.Exec(ctx, `INSERT INTO candidate_profiles (user_id) VALUES ($1)`, user.ID)
	case domain.UserTypeEmployer:
		_, err = tx.Exec(ctx, `INSERT INTO employer_profiles (user_id) VALUES ($1)`, user.ID)
	default:
		return fmt.Errorf("unknown user type %q", user.UserType)
	}
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *userRepo) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	set, args := setClause(fields)
	query := fmt.Sprintf(`UPDATE users SET %s, updated_at = NOW() WHERE id = $%d`, set, len(args)+1)
	result, err := r.db.Exec(ctx, query, append(args, id)...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) SetPasswordReset(ctx context.Context, email, token string, expires time.Time) error {
	query := `UPDATE users SET password_reset_token = $2, password_reset_expires = $3, updated_at = NOW() WHERE email = $1`
	result, err := r.db.Exec(ctx, query, email, token, expires)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) GetByResetToken(ctx context.Context, token string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE password_reset_token = $1 AND password_reset_expires > NOW()`
	return scanUser(r.db.QueryRow(ctx, query, token))
}

// UpdatePassword stores the new hash and invalidates any pending reset token.
func (r *userRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2, password_reset_token = NULL, password_reset_expires = NULL, updated_at = NOW() WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) VerifyEmail(ctx context.Context, token string) error {
	query := `UPDATE users SET email_verified = TRUE, email_verification_token = NULL, updated_at = NOW() WHERE email_verification_token = $1`
	result, err := r.db.Exec(ctx, query, token)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
