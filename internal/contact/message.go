package contact

import (
	"fmt"
	"time"
)

// Status is the triage state of a stored message.
type Status string

const (
	StatusNew     Status = "new"
	StatusRead    Status = "read"
	StatusReplied Status = "replied"
)

func ParseStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusNew, StatusRead, StatusReplied:
		return Status(value), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrStatus, value)
	}
}

// Message is a submission as persisted by the server.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Status    Status    `json:"status"`
	IPAddress string    `json:"ip_address,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	Country   string    `json:"country,omitempty"`
}

// Stats are the headline numbers shown on the home section.
type Stats struct {
	TotalProjects   int `json:"total_projects"`
	TotalContacts   int `json:"total_contacts"`
	Technologies    int `json:"technologies"`
	YearsExperience int `json:"years_experience"`
}
