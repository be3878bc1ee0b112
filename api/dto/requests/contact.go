// ABOUTME: Request DTOs for the contact form endpoint
// ABOUTME: Provides validation constraints for incoming submissions

package requests

// ContactRequest represents a contact form submission
type ContactRequest struct {
	// Name is the sender's name
	Name string `json:"name" required:"true" minLength:"1" maxLength:"200" doc:"Sender name"`

	// Email is the sender's address
	Email string `json:"email" required:"true" format:"email" doc:"Sender email address"`

	// Subject is an optional message subject
	Subject string `json:"subject,omitempty" maxLength:"300" doc:"Message subject"`

	// Message is the message body
	Message string `json:"message" required:"true" minLength:"1" maxLength:"10000" doc:"Message body"`
}
