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

type SkillUseCase struct {
	repo outbound.SkillRepository
}

func NewSkillUseCase(repo outbound.SkillRepository) inbound.SkillUseCase {
	return &SkillUseCase{repo: repo}
}

func (uc *SkillUseCase) List(ctx context.Context) ([]*entity.Skill, error) {
	skills, err := uc.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return skills, nil
}

func (uc *SkillUseCase) Create(ctx context.Context, req inbound.UpsertSkillRequest) (*entity.Skill, error) {
	if err := validateSkill(req); err != nil {
		return nil, err
	}

	now := time.Now()
	skill := &entity.Skill{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Category:  req.Category,
		Icon:      req.Icon,
		Color:     req.Color,
		Level:     req.Level,
		Order:     req.Order,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.repo.Create(ctx, skill); err != nil {
		return nil, apperror.Internal(err)
	}
	return skill, nil
}

func (uc *SkillUseCase) Update(ctx context.Context, id string, req inbound.UpsertSkillRequest) (*entity.Skill, error) {
	if err := validateSkill(req); err != nil {
		return nil, err
	}

	skill := &entity.Skill{
		ID:        id,
		Name:      req.Name,
		Category:  req.Category,
		Icon:      req.Icon,
		Color:     req.Color,
		Level:     req.Level,
		Order:     req.Order,
		UpdatedAt: time.Now(),
	}

	if err := uc.repo.Update(ctx, skill); err != nil {
		if errors.Is(err, outbound.ErrNotFound) {
			return nil, apperror.NotFound("Skill")
		}
		return nil, apperror.Internal(err)
	}
	return skill, nil
}

func (uc *SkillUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, outbound.ErrNotFound) {
			return apperror.NotFound("Skill")
		}
		return apperror.Internal(err)
	}
	return nil
}

func validateSkill(req inbound.UpsertSkillRequest) error {
	switch {
	case req.Name == "":
		return apperror.Validation("Skill name is required")
	case req.Category == "":
		return apperror.Validation("Category is required")
	case req.Icon == "":
		return apperror.Validation("Icon is required")
	case req.Color == "":
		return apperror.Validation("Color is required")
	}
	return nil
}
