package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/kineticdrop/portfolio-api/application/port/outbound"
	"github.com/kineticdrop/portfolio-api/domain/entity"
)

type certificateRepository struct {
	db *sql.DB
}

func NewCertificateRepository(db *sql.DB) outbound.CertificateRepository {
	return &certificateRepository{db: db}
}

func (r *certificateRepository) List(ctx context.Context) ([]*entity.Certificate, error) {
	query := `
		SELECT id, title, issuer, issue_date, expiry_date, credential_id, verification_url,
		       description, skills, highlights, gradient, display_order, created_at, updated_at
		FROM certificates
		ORDER BY display_order ASC, issue_date DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list certificates: %w", err)
	}
	defer rows.Close()

	certificates := make([]*entity.Certificate, 0)
	for rows.Next() {
		var cert entity.Certificate
		err := rows.Scan(
			&cert.ID,
			&cert.Title,
			&cert.Issuer,
			&cert.IssueDate,
			&cert.ExpiryDate,
			&cert.CredentialID,
			&cert.VerificationURL,
			&cert.Description,
			pq.Array(&cert.Skills),
			pq.Array(&cert.Highlights),
			&cert.Gradient,
			&cert.Order,
			&cert.CreatedAt,
			&cert.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan certificate: %w", err)
		}
		certificates = append(certificates, &cert)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate certificates: %w", err)
	}

	return certificates, nil
}

func (r *certificateRepository) Create(ctx context.Context, cert *entity.Certificate) error {
	query := `
		INSERT INTO certificates (id, title, issuer, issue_date, expiry_date, credential_id,
		                          verification_url, description, skills, highlights, gradient,
		                          display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.ExecContext(ctx, query,
		cert.ID,
		cert.Title,
		cert.Issuer,
		cert.IssueDate,
		cert.ExpiryDate,
		cert.CredentialID,
		cert.VerificationURL,
		cert.Description,
		pq.Array(cert.Skills),
		pq.Array(cert.Highlights),
		cert.Gradient,
		cert.Order,
		cert.CreatedAt,
		cert.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create certificate: %w", err)
	}

	return nil
}

func (r *certificateRepository) Update(ctx context.Context, cert *entity.Certificate) error {
	query := `
		UPDATE certificates
		SET title = $2, issuer = $3, issue_date = $4, expiry_date = $5, credential_id = $6,
		    verification_url = $7, description = $8, skills = $9, highlights = $10,
		    gradient = $11, display_order = $12, updated_at = $13
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		cert.ID,
		cert.Title,
		cert.Issuer,
		cert.IssueDate,
		cert.ExpiryDate,
		cert.CredentialID,
		cert.VerificationURL,
		cert.Description,
		pq.Array(cert.Skills),
		pq.Array(cert.Highlights),
		cert.Gradient,
		cert.Order,
		cert.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update certificate: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}
	if affected == 0 {
		return outbound.ErrNotFound
	}

	return nil
}

func (r *certificateRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM certificates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete certificate: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return outbound.ErrNotFound
	}

	return nil
}
