package domain

import (
	"errors"
	"time"
)

var ErrMessageNotFound = errors.New("message not found")
var ErrDuplicateSubmission = errors.New("duplicate submission")

// ContactMessage is a contact-form submission. Reference is the opaque id
// returned to the visitor so they can quote it in follow-ups.
type ContactMessage struct {
	ID        string    `json:"id"`
	Reference string    `json:"reference"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
