package domain

import (
	"errors"
	"time"
)

var ErrCertificateNotFound = errors.New("certificate not found")

// Certificate is a professional certification or course completion.
type Certificate struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Issuer        string    `json:"issuer"`
	IssueDate     time.Time `json:"issue_date"`
	CredentialURL string    `json:"credential_url,omitempty"`
	SortOrder     int       `json:"sort_order"`
}
