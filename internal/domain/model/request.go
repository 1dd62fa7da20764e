package model

import "time"

type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusDenied   RequestStatus = "denied"
)

// IsDecision reports whether s is a terminal admin decision. Requests never
// transition back to pending.
func (s RequestStatus) IsDecision() bool {
	return s == StatusApproved || s == StatusDenied
}

type Request struct {
	ID           int           `json:"id"`
	Reference    string        `json:"reference"` // public correlation id, server-assigned
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Category     string        `json:"category"`
	Status       RequestStatus `json:"status"`
	AdminComment *string       `json:"admin_comment"`
	RequestedBy  int           `json:"requested_by"`
	CreatedAt    time.Time     `json:"created_at"`
}
