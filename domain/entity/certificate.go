package entity

import (
	"time"
)

type Certificate struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Issuer          string     `json:"issuer"`
	IssueDate       time.Time  `json:"issue_date"`
	ExpiryDate      *time.Time `json:"expiry_date,omitempty"`
	CredentialID    string     `json:"credential_id,omitempty"`
	Description     string     `json:"description,omitempty"`
	Skills          []string   `json:"skills"`
	Highlights      []string   `json:"highlights"`
	Gradient        string     `json:"gradient"`
	VerificationURL string     `json:"verification_url,omitempty"`
	Order           int        `json:"order"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
