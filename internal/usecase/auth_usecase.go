package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hossamaboassi/Busylancer/internal/domain"
	"github.com/hossamaboassi/Busylancer/pkg/apperror"
	"github.com/hossamaboassi/Busylancer/pkg/logger"
	"github.com/hossamaboassi/Busylancer/pkg/token"
)

const resetTokenTTL = time.Hour

type authUsecase struct {
	userRepo      domain.UserRepository
	candidateRepo domain.CandidateRepository
	employerRepo  domain.EmployerRepository
	tokens        *token.Manager
	mailer        domain.Mailer
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	candidateRepo domain.CandidateRepository,
	employerRepo domain.EmployerRepository,
	tokens *token.Manager,
	mailer domain.Mailer,
) domain.AuthUsecase {
	return &authUsecase{
		userRepo:      userRepo,
		candidateRepo: candidateRepo,
		employerRepo:  employerRepo,
		tokens:        tokens,
		mailer:        mailer,
	}
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func (u *authUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.AuthResult, error) {
	if input.UserType != domain.UserTypeCandidate && input.UserType != domain.UserTypeEmployer {
		return nil, apperror.BadRequest("User type must be candidate or employer")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	verificationToken, err := randomToken()
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:                  input.Email,
		PasswordHash:           string(hash),
		UserType:               input.UserType,
		FirstName:              input.FirstName,
		LastName:               input.LastName,
		Phone:                  input.Phone,
		EmailVerificationToken: &verificationToken,
	}
	if err := u.userRepo.CreateWithProfile(ctx, user); err != nil {
		return nil, err
	}

	jwt, err := u.tokens.Issue(user.ID, user.UserType, user.Email)
	if err != nil {
		return nil, err
	}

	if u.mailer.IsConfigured() {
		go func(to, firstName, userType string) {
			if err := u.mailer.SendWelcome(to, firstName, userType); err != nil {
				logger.Log.Warn("welcome email failed", "email", to, "error", err)
			}
		}(user.Email, user.FirstName, user.UserType)
	}

	return &domain.AuthResult{
		UserID:                 user.ID,
		Token:                  jwt,
		UserType:               user.UserType,
		EmailVerificationToken: verificationToken,
	}, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Invalid email or password")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperror.Unauthorized("Account is deactivated")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	jwt, err := u.tokens.Issue(user.ID, user.UserType, user.Email)
	if err != nil {
		return nil, err
	}

	return &domain.AuthResult{
		UserID:   user.ID,
		Token:    jwt,
		UserType: user.UserType,
	}, nil
}

func (u *authUsecase) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &domain.Profile{User: *user}
	switch user.UserType {
	case domain.UserTypeCandidate:
		profile.Candidate, err = u.candidateRepo.GetByUserID(ctx, userID)
	case domain.UserTypeEmployer:
		profile.Employer, err = u.employerRepo.GetByUserID(ctx, userID)
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

var (
	userUpdateFields      = []string{"first_name", "last_name", "phone", "profile_image"}
	candidateUpdateFields = []string{"title", "bio", "hourly_rate", "experience_level", "availability", "location", "website", "linkedin_url", "github_url", "portfolio_url"}
	employerUpdateFields  = []string{"company_name", "company_description", "company_size", "industry", "website", "company_logo", "location"}
)

// UpdateProfile applies allow-listed fields to the user row and the matching
// profile row. Unknown keys are silently dropped.
func (u *authUsecase) UpdateProfile(ctx context.Context, actor domain.Actor, updates map[string]interface{}) error {
	userFields := filterAllowed(updates, userUpdateFields...)

	var profileFields map[string]interface{}
	switch actor.UserType {
	case domain.UserTypeCandidate:
		profileFields = filterAllowed(updates, candidateUpdateFields...)
	case domain.UserTypeEmployer:
		profileFields = filterAllowed(updates, employerUpdateFields...)
	}

	if len(userFields) == 0 && len(profileFields) == 0 {
		return apperror.BadRequest("Nothing to update")
	}

	if len(userFields) > 0 {
		if err := u.userRepo.UpdateFields(ctx, actor.UserID, userFields); err != nil {
			return err
		}
	}
	if len(profileFields) > 0 {
		var err error
		switch actor.UserType {
		case domain.UserTypeCandidate:
			err = u.candidateRepo.UpdateFields(ctx, actor.UserID, profileFields)
		case domain.UserTypeEmployer:
			err = u.employerRepo.UpdateFields(ctx, actor.UserID, profileFields)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// ForgotPassword never reveals whether the email exists.
func (u *authUsecase) ForgotPassword(ctx context.Context, email string) error {
	resetToken, err := randomToken()
	if err != nil {
		return err
	}

	err = u.userRepo.SetPasswordReset(ctx, email, resetToken, time.Now().Add(resetTokenTTL))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	return nil
}

func (u *authUsecase) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	user, err := u.userRepo.GetByResetToken(ctx, resetToken)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.BadRequest("Invalid or expired reset token")
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return u.userRepo.UpdatePassword(ctx, user.ID, string(hash))
}

func (u *authUsecase) VerifyEmail(ctx context.Context, verificationToken string) error {
	err := u.userRepo.VerifyEmail(ctx, verificationToken)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.BadRequest("Invalid verification token")
		}
		return err
	}
	return nil
}
