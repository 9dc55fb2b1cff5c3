package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/kineticdrop/portfolio-api/application/port/outbound"
	"github.com/kineticdrop/portfolio-api/domain/entity"
)

type experienceRepository struct {
	db *sql.DB
}

func NewExperienceRepository(db *sql.DB) outbound.ExperienceRepository {
	return &experienceRepository{db: db}
}

func (r *experienceRepository) List(ctx context.Context) ([]*entity.Experience, error) {
	query := `
		SELECT id, title, company, location, start_date, end_date, description,
		       responsibilities, display_order, created_at, updated_at
		FROM experience
		ORDER BY display_order ASC, start_date DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list experience: %w", err)
	}
	defer rows.Close()

	entries := make([]*entity.Experience, 0)
	for rows.Next() {
		var exp entity.Experience
		err := rows.Scan(
			&exp.ID,
			&exp.Title,
			&exp.Company,
			&exp.Location,
			&exp.StartDate,
			&exp.EndDate,
			&exp.Description,
			pq.Array(&exp.Responsibilities),
			&exp.Order,
			&exp.CreatedAt,
			&exp.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan experience: %w", err)
		}
		entries = append(entries, &exp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate experience: %w", err)
	}

	return entries, nil
}

func (r *experienceRepository) Create(ctx context.Context, exp *entity.Experience) error {
	query := `
		INSERT INTO experience (id, title, company, location, start_date, end_date,
		                        description, responsibilities, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.ExecContext(ctx, query,
		exp.ID,
		exp.Title,
		exp.Company,
		exp.Location,
		exp.StartDate,
		exp.EndDate,
		exp.Description,
		pq.Array(exp.Responsibilities),
		exp.Order,
		exp.CreatedAt,
		exp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create experience: %w", err)
	}

	return nil
}

func (r *experienceRepository) Update(ctx context.Context, exp *entity.Experience) error {
	query := `
		UPDATE experience
		SET title = $2, company = $3, location = $4, start_date = $5, end_date = $6,
		    description = $7, responsibilities = $8, display_order = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		exp.ID,
		exp.Title,
		exp.Company,
		exp.Location,
		exp.StartDate,
		exp.EndDate,
		exp.Description,
		pq.Array(exp.Responsibilities),
		exp.Order,
		exp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update experience: %w", err)
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

func (r *experienceRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM experience WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete experience: %w", err)
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
