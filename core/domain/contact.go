package domain

import (
	"errors"
	"strings"
)

// Message represents a contact form submission.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"message"`
}

// Validate checks if the message has valid required fields
func (m *Message) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return errors.New("name cannot be empty")
	}

	if !strings.Contains(m.Email, "@") || strings.HasPrefix(m.Email, "@") || strings.HasSuffix(m.Email, "@") {
		return errors.New("email is not valid format")
	}

	if strings.TrimSpace(m.Body) == "" {
		return errors.New("message cannot be empty")
	}

	return nil
}
