package domain

import (
	"context"
	"time"
)

type EmployerProfile struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"user_id"`
	CompanyName        *string   `json:"company_name"`
	CompanyDescription *string   `json:"company_description"`
	CompanySize        *string   `json:"company_size"`
	Industry           *string   `json:"industry"`
	Website            *string   `json:"website"`
	CompanyLogo        *string   `json:"company_logo"`
	Location           *string   `json:"location"`
	TotalSpent         float64   `json:"total_spent"`
	TotalJobsPosted    int       `json:"total_jobs_posted"`
	AverageRating      float64   `json:"average_rating"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type EmployerRepository interface {
	GetByID(ctx context.Context, id int64) (*EmployerProfile, error)
	GetByUserID(ctx context.Context, userID int64) (*EmployerProfile, error)
	IncrementJobsPosted(ctx context.Context, id int64) error
	UpdateFields(ctx context.Context, userID int64, fields map[string]interface{}) error
}
