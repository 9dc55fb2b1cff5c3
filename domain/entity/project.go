package entity

import (
	"time"
)

// ProjectLinks holds the optional outbound links of a project card.
type ProjectLinks struct {
	Live string `json:"live,omitempty"`
	Repo string `json:"repo,omitempty"`
}

type Project struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Slug            string       `json:"slug"`
	Description     string       `json:"description"`
	FullDescription string       `json:"full_description"`
	TechStack       []string     `json:"tech_stack"`
	Features        []string     `json:"features"`
	Gradient        string       `json:"gradient"`
	Links           ProjectLinks `json:"links"`
	ImageURL        string       `json:"image_url,omitempty"`
	Featured        bool         `json:"featured"`
	Order           int          `json:"order"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}
