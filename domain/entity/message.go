package entity

import (
	"time"
)

// Message is a contact-form submission. Messages are created by
// anonymous visitors and read or deleted by the admin.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
