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

type CertificateUseCase struct {
	repo outbound.CertificateRepository
}

func NewCertificateUseCase(repo outbound.CertificateRepository) inbound.CertificateUseCase {
	return &CertificateUseCase{repo: repo}
}

func (uc *CertificateUseCase) List(ctx context.Context) ([]*entity.Certificate, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return items, nil
}

func (uc *CertificateUseCase) Create(ctx context.Context, req inbound.UpsertCertificateRequest) (*entity.Certificate, error) {
	item, err := certificateFromRequest(req)
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

func (uc *CertificateUseCase) Update(ctx context.Context, id string, req inbound.UpsertCertificateRequest) (*entity.Certificate, error) {
	item, err := certificateFromRequest(req)
	if err != nil {
		return nil, err
	}

	item.ID = id
	item.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, item); err != nil {
		if errors.Is(err, outbound.ErrNotFound) {
			return nil, apperror.NotFound("Certificate")
		}
		return nil, apperror.Internal(err)
	}
	return item, nil
}

func (uc *CertificateUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, outbound.ErrNotFound) {
			return apperror.NotFound("Certificate")
		}
		return apperror.Internal(err)
	}
	return nil
}

func certificateFromRequest(req inbound.UpsertCertificateRequest) (*entity.Certificate, error) {
	if req.Title == "" {
		return nil, apperror.Validation("Certificate title is required")
	}
	if req.Issuer == "" {
		return nil, apperror.Validation("Issuer name is required")
	}
	if req.Gradient == "" {
		return nil, apperror.Validation("Gradient is required")
	}

	issueDate, err := ParseDate(req.IssueDate)
	if err != nil {
		return nil, apperror.Validation("Invalid issue date format")
	}

	var expiryDate *time.Time
	if req.ExpiryDate != "" {
		parsed, err := ParseDate(req.ExpiryDate)
		if err != nil {
			return nil, apperror.Validation("Invalid expiry date format")
		}
		expiryDate = &parsed
	}

	return &entity.Certificate{
		Title:           req.Title,
		Issuer:          req.Issuer,
		IssueDate:       issueDate,
		ExpiryDate:      expiryDate,
		CredentialID:    req.CredentialID,
		Description:     req.Description,
		Skills:          req.Skills,
		Highlights:      req.Highlights,
		Gradient:        req.Gradient,
		VerificationURL: req.VerificationURL,
		Order:           req.Order,
	}, nil
}
