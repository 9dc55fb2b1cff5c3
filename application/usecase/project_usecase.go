package usecase

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/kineticdrop/portfolio-api/application/port/inbound"
	"github.com/kineticdrop/portfolio-api/application/port/outbound"
	"github.com/kineticdrop/portfolio-api/domain/apperror"
	"github.com/kineticdrop/portfolio-api/domain/entity"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

type ProjectUseCase struct {
	repo outbound.ProjectRepository
}

func NewProjectUseCase(repo outbound.ProjectRepository) inbound.ProjectUseCase {
	return &ProjectUseCase{repo: repo}
}

func (uc *ProjectUseCase) List(ctx context.Context) ([]*entity.Project, error) {
	projects, err := uc.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return projects, nil
}

func (uc *ProjectUseCase) Create(ctx context.Context, req inbound.UpsertProjectRequest) (*entity.Project, error) {
	if err := validateProject(req); err != nil {
		return nil, err
	}

	now := time.Now()
	project := projectFromRequest(req)
	project.ID = uuid.New().String()
	project.CreatedAt = now
	project.UpdatedAt = now

	if err := uc.repo.Create(ctx, project); err != nil {
		if errors.Is(err, outbound.ErrDuplicateSlug) {
			return nil, apperror.Conflict("Slug already in use", err)
		}
		return nil, apperror.Internal(err)
	}
	return project, nil
}

func (uc *ProjectUseCase) Update(ctx context.Context, id string, req inbound.UpsertProjectRequest) (*entity.Project, error) {
	if err := validateProject(req); err != nil {
		return nil, err
	}

	project := projectFromRequest(req)
	project.ID = id
	project.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, project); err != nil {
		if errors.Is(err, outbound.ErrNotFound) {
			return nil, apperror.NotFound("Project")
		}
		if errors.Is(err, outbound.ErrDuplicateSlug) {
			return nil, apperror.Conflict("Slug already in use", err)
		}
		return nil, apperror.Internal(err)
	}
	return project, nil
}

func (uc *ProjectUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, outbound.ErrNotFound) {
			return apperror.NotFound("Project")
		}
		return apperror.Internal(err)
	}
	return nil
}

func projectFromRequest(req inbound.UpsertProjectRequest) *entity.Project {
	return &entity.Project{
		Title:           req.Title,
		Slug:            req.Slug,
		Description:     req.Description,
		FullDescription: req.FullDescription,
		TechStack:       req.TechStack,
		Features:        req.Features,
		Gradient:        req.Gradient,
		Links:           req.Links,
		ImageURL:        req.ImageURL,
		Featured:        req.Featured,
		Order:           req.Order,
	}
}

func validateProject(req inbound.UpsertProjectRequest) error {
	switch {
	case req.Title == "":
		return apperror.Validation("Project title is required")
	case req.Slug == "":
		return apperror.Validation("Slug is required")
	case !slugPattern.MatchString(req.Slug):
		return apperror.Validation("Slug must contain only lowercase letters, numbers, and hyphens")
	case req.Description == "":
		return apperror.Validation("Short description is required")
	case req.FullDescription == "":
		return apperror.Validation("Full description is required")
	case req.Gradient == "":
		return apperror.Validation("Gradient is required")
	}
	return nil
}
