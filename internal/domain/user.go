package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

const (
	UserTypeCandidate = "candidate"
	UserTypeEmployer  = "employer"
)

type User struct {
	ID                     int64      `json:"id"`
	Email                  string     `json:"email"`
	PasswordHash           string     `json:"-"`
	UserType               string     `json:"user_type"`
	FirstName              string     `json:"first_name"`
	LastName               string     `json:"last_name"`
	Phone                  *string    `json:"phone"`
	ProfileImage           *string    `json:"profile_image"`
	IsActive               bool       `json:"is_active"`
	EmailVerified          bool       `json:"email_verified"`
	EmailVerificationToken *string    `json:"-"`
	PasswordResetToken     *string    `json:"-"`
	PasswordResetExpires   *time.Time `json:"-"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

// Profile is the merged account view returned by GET /auth/profile. Exactly
// one of Candidate or Employer is set, matching the user type.
type Profile struct {
	User      User              `json:"user"`
	Candidate *CandidateProfile `json:"candidate_profile,omitempty"`
	Employer  *EmployerProfile  `json:"employer_profile,omitempty"`
}

type UserRepository interface {
	// CreateWithProfile inserts the user row and the matching empty
	// candidate or employer profile in one transaction.
	CreateWithProfile(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// UpdateFields applies a column->value map; callers pass allow-listed
	// columns only.
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
	SetPasswordReset(ctx context.Context, email, token string, expires time.Time) error
	GetByResetToken(ctx context.Context, token string) (*User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	VerifyEmail(ctx context.Context, token string) error
}

type RegisterInput struct {
	Email     string
	Password  string
	UserType  string
	FirstName string
	LastName  string
	Phone     *string
}

type AuthResult struct {
	UserID                 int64  `json:"user_id"`
	Token                  string `json:"token"`
	UserType               string `json:"user_type"`
	EmailVerificationToken string `json:"email_verification_token,omitempty"`
}

type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetProfile(ctx context.Context, userID int64) (*Profile, error)
	UpdateProfile(ctx context.Context, actor Actor, updates map[string]interface{}) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	VerifyEmail(ctx context.Context, token string) error
}
