package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/kineticdrop/portfolio-api/application/port/outbound"
	"github.com/kineticdrop/portfolio-api/domain/entity"
)

type projectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) outbound.ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) List(ctx context.Context) ([]*entity.Project, error) {
	query := `
		SELECT id, title, slug, description, full_description, tech_stack, features,
		       gradient, live_url, repo_url, image_url, featured, display_order,
		       created_at, updated_at
		FROM projects
		ORDER BY display_order ASC, created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]*entity.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}

	return projects, nil
}

func scanProject(rows *sql.Rows) (*entity.Project, error) {
	var project entity.Project
	err := rows.Scan(
		&project.ID,
		&project.Title,
		&project.Slug,
		&project.Description,
		&project.FullDescription,
		pq.Array(&project.TechStack),
		pq.Array(&project.Features),
		&project.Gradient,
		&project.Links.Live,
		&project.Links.Repo,
		&project.ImageURL,
		&project.Featured,
		&project.Order,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan project: %w", err)
	}
	return &project, nil
}

func (r *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	query := `
		INSERT INTO projects (id, title, slug, description, full_description, tech_stack,
		                      features, gradient, live_url, repo_url, image_url, featured,
		                      display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.db.ExecContext(ctx, query,
		project.ID,
		project.Title,
		project.Slug,
		project.Description,
		project.FullDescription,
		pq.Array(project.TechStack),
		pq.Array(project.Features),
		project.Gradient,
		project.Links.Live,
		project.Links.Repo,
		project.ImageURL,
		project.Featured,
		project.Order,
		project.CreatedAt,
		project.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return outbound.ErrDuplicateSlug
		}
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

func (r *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	query := `
		UPDATE projects
		SET title = $2, slug = $3, description = $4, full_description = $5, tech_stack = $6,
		    features = $7, gradient = $8, live_url = $9, repo_url = $10, image_url = $11,
		    featured = $12, display_order = $13, updated_at = $14
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		project.ID,
		project.Title,
		project.Slug,
		project.Description,
		project.FullDescription,
		pq.Array(project.TechStack),
		pq.Array(project.Features),
		project.Gradient,
		project.Links.Live,
		project.Links.Repo,
		project.ImageURL,
		project.Featured,
		project.Order,
		project.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return outbound.ErrDuplicateSlug
		}
		return fmt.Errorf("failed to update project: %w", err)
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

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
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
