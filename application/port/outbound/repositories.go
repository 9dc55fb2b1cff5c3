package outbound

import (
	"context"
	"errors"

	"github.com/kineticdrop/portfolio-api/domain/entity"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateSlug     = errors.New("slug already exists")
)

// UserRepository persists the single administrative account. The
// account is written once at bootstrap and only read afterwards.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
}

type SkillRepository interface {
	List(ctx context.Context) ([]*entity.Skill, error)
	Create(ctx context.Context, skill *entity.Skill) error
	Update(ctx context.Context, skill *entity.Skill) error
	Delete(ctx context.Context, id string) error
}

type ProjectRepository interface {
	List(ctx context.Context) ([]*entity.Project, error)
	Create(ctx context.Context, project *entity.Project) error
	Update(ctx context.Context, project *entity.Project) error
	Delete(ctx context.Context, id string) error
}

type ExperienceRepository interface {
	List(ctx context.Context) ([]*entity.Experience, error)
	Create(ctx context.Context, experience *entity.Experience) error
	Update(ctx context.Context, experience *entity.Experience) error
	Delete(ctx context.Context, id string) error
}

type CertificateRepository interface {
	List(ctx context.Context) ([]*entity.Certificate, error)
	Create(ctx context.Context, certificate *entity.Certificate) error
	Update(ctx context.Context, certificate *entity.Certificate) error
	Delete(ctx context.Context, id string) error
}

type MessageRepository interface {
	List(ctx context.Context) ([]*entity.Message, error)
	Create(ctx context.Context, message *entity.Message) error
	Delete(ctx context.Context, id string) error
}
