package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kineticdrop/portfolio-api/application/port/outbound"
	"github.com/kineticdrop/portfolio-api/domain/entity"
)

type skillRepository struct {
	db *sql.DB
}

func NewSkillRepository(db *sql.DB) outbound.SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) List(ctx context.Context) ([]*entity.Skill, error) {
	query := `
		SELECT id, name, category, icon, color, level, display_order, created_at, updated_at
		FROM skills
		ORDER BY display_order ASC, created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	skills := make([]*entity.Skill, 0)
	for rows.Next() {
		var skill entity.Skill
		err := rows.Scan(
			&skill.ID,
			&skill.Name,
			&skill.Category,
			&skill.Icon,
			&skill.Color,
			&skill.Level,
			&skill.Order,
			&skill.CreatedAt,
			&skill.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, &skill)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate skills: %w", err)
	}

	return skills, nil
}

func (r *skillRepository) Create(ctx context.Context, skill *entity.Skill) error {
	query := `
		INSERT INTO skills (id, name, category, icon, color, level, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		skill.ID,
		skill.Name,
		skill.Category,
		skill.Icon,
		skill.Color,
		skill.Level,
		skill.Order,
		skill.CreatedAt,
		skill.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create skill: %w", err)
	}

	return nil
}

func (r *skillRepository) Update(ctx context.Context, skill *entity.Skill) error {
	query := `
		UPDATE skills
		SET name = $2, category = $3, icon = $4, color = $5, level = $6, display_order = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		skill.ID,
		skill.Name,
		skill.Category,
		skill.Icon,
		skill.Color,
		skill.Level,
		skill.Order,
		skill.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update skill: %w", err)
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

func (r *skillRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
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
