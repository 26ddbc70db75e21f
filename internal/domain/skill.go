package domain

import "context"

type Skill struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category *string `json:"category"`
}

type CandidateSkill struct {
	Skill
	ProficiencyLevel string `json:"proficiency_level"`
}

type JobSkill struct {
	Skill
	IsRequired bool `json:"is_required"`
}

type SkillRepository interface {
	Fetch(ctx context.Context, category string, limit, offset int) ([]Skill, int64, error)
	Search(ctx context.Context, keywords string, limit int) ([]Skill, error)
	Categories(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id int64) (*Skill, error)
}

type SkillUsecase interface {
	ListSkills(ctx context.Context, category string, page, limit int) ([]Skill, int64, error)
	SearchSkills(ctx context.Context, keywords string) ([]Skill, error)
	ListCategories(ctx context.Context) ([]string, error)
}
