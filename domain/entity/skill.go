package entity

import (
	"time"
)

// Skill is a single entry in the skills grid. Icon holds an emoji or
// icon identifier, Color a CSS color the frontend renders with.
type Skill struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	Level     string    `json:"level,omitempty"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
