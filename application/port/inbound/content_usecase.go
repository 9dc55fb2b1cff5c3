package inbound

import (
	"context"

	"github.com/kineticdrop/portfolio-api/domain/entity"
)

type UpsertSkillRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	Level    string `json:"level"`
	Order    int    `json:"order"`
}

type SkillUseCase interface {
	List(ctx context.Context) ([]*entity.Skill, error)
	Create(ctx context.Context, req UpsertSkillRequest) (*entity.Skill, error)
	Update(ctx context.Context, id string, req UpsertSkillRequest) (*entity.Skill, error)
	Delete(ctx context.Context, id string) error
}

type UpsertProjectRequest struct {
	Title           string              `json:"title"`
	Slug            string              `json:"slug"`
	Description     string              `json:"description"`
	FullDescription string              `json:"full_description"`
	TechStack       []string            `json:"tech_stack"`
	Features        []string            `json:"features"`
	Gradient        string              `json:"gradient"`
	Links           entity.ProjectLinks `json:"links"`
	ImageURL        string              `json:"image_url"`
	Featured        bool                `json:"featured"`
	Order           int                 `json:"order"`
}

type ProjectUseCase interface {
	List(ctx context.Context) ([]*entity.Project, error)
	Create(ctx context.Context, req UpsertProjectRequest) (*entity.Project, error)
	Update(ctx context.Context, id string, req UpsertProjectRequest) (*entity.Project, error)
	Delete(ctx context.Context, id string) error
}

type UpsertExperienceRequest struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	StartDate        string   `json:"start_date"`
	EndDate          string   `json:"end_date"`
	Location         string   `json:"location"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	Order            int      `json:"order"`
}

type ExperienceUseCase interface {
	List(ctx context.Context) ([]*entity.Experience, error)
	Create(ctx context.Context, req UpsertExperienceRequest) (*entity.Experience, error)
	Update(ctx context.Context, id string, req UpsertExperienceRequest) (*entity.Experience, error)
	Delete(ctx context.Context, id string) error
}

type UpsertCertificateRequest struct {
	Title           string   `json:"title"`
	Issuer          string   `json:"issuer"`
	IssueDate       string   `json:"issue_date"`
	ExpiryDate      string   `json:"expiry_date"`
	CredentialID    string   `json:"credential_id"`
	Description     string   `json:"description"`
	Skills          []string `json:"skills"`
	Highlights      []string `json:"highlights"`
	Gradient        string   `json:"gradient"`
	VerificationURL string   `json:"verification_url"`
	Order           int      `json:"order"`
}

type CertificateUseCase interface {
	List(ctx context.Context) ([]*entity.Certificate, error)
	Create(ctx context.Context, req UpsertCertificateRequest) (*entity.Certificate, error)
	Update(ctx context.Context, id string, req UpsertCertificateRequest) (*entity.Certificate, error)
	Delete(ctx context.Context, id string) error
}

type CreateMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type MessageUseCase interface {
	List(ctx context.Context) ([]*entity.Message, error)
	Create(ctx context.Context, req CreateMessageRequest) (*entity.Message, error)
	Delete(ctx context.Context, id string) error
}
