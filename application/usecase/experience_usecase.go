package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/kineticdrop/portfolio-api/application/port/inbound"
	"github.com/kineticdrop/portfolio-api/application/port/outbound"
	"github.com/kineticdrop/portfolio-api/domain/apperror"
	"github.com/kineticdrop/portfolio-api/domain/entity"
)

type ExperienceUseCase struct {
	repo outbound.ExperienceRepository
}

func NewExperienceUseCase(repo outbound.ExperienceRepository) inbound.ExperienceUseCase {
	return &ExperienceUseCase{repo: repo}
}

func (uc *ExperienceUseCase) List(ctx context.Context) ([]*entity.Experience, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return items, nil
}

func (uc *ExperienceUseCase) Create(ctx context.Context, req inbound.UpsertExperienceRequest) (*entity.Experience, error) {
	item, err := experienceFromRequest(req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	item.ID = uuid.New().String()
	item.CreatedAt = now
	item.UpdatedAt = now

	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, apperror.Internal(err)
	}
	return item, nil
}

func (uc *ExperienceUseCase) Update(ctx context.Context, id string, req inbound.UpsertExperienceRequest) (*entity.Experience, error) {
	item, err := experienceFromRequest(req)
	if err != nil {
		return nil, err
	}

	item.ID = id
	item.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, item); err != nil {
		if errors.Is(err, outbound.ErrNotFound) {
			return nil, apperror.NotFound("Experience")
		}
		return nil, apperror.Internal(err)
	}
	return item, nil
}

func (uc *ExperienceUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, outbound.ErrNotFound) {
			return apperror.NotFound("Experience")
		}
		return apperror.Internal(err)
	}
	return nil
}

func experienceFromRequest(req inbound.UpsertExperienceRequest) (*entity.Experience, error) {
	if req.Title == "" {
		return nil, apperror.Validation("Job title is required")
	}
	if req.Company == "" {
		return nil, apperror.Validation("Company name is required")
	}

	startDate, err := ParseDate(req.StartDate)
	if err != nil {
		return nil, apperror.Validation("Invalid start date format")
	}

	var endDate *time.Time
	if req.EndDate != "" {
		parsed, err := ParseDate(req.EndDate)
		if err != nil {
			return nil, apperror.Validation("Invalid end date format")
		}
		endDate = &parsed
	}

	return &entity.Experience{
		Title:            req.Title,
		Company:          req.Company,
		StartDate:        startDate,
		EndDate:          endDate,
		Location:         req.Location,
		Description:      req.Description,
		Responsibilities: req.Responsibilities,
		Order:            req.Order,
	}, nil
}

// ParseDate accepts the two formats the admin frontend sends.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
