// ABOUTME: Contact form handler for the Huma API
// ABOUTME: Validates submissions and forwards them to the contact service

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/lolimmlost/appahouse-portfolio/api/dto/requests"
	"github.com/lolimmlost/appahouse-portfolio/api/dto/responses"
	"github.com/lolimmlost/appahouse-portfolio/core/domain"
)

// ContactService interface defines the methods needed from the contact service
type ContactService interface {
	Submit(ctx context.Context, msg *domain.Message) error
}

// ContactHandler handles contact form HTTP requests
type ContactHandler struct {
	contact ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contact ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// RegisterRoutes registers the contact form route
func (h *ContactHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "submitContact",
		Method:        http.MethodPost,
		Path:          "/contact",
		Summary:       "Submit a contact message",
		DefaultStatus: http.StatusAccepted,
		Tags:          []string{"Contact"},
	}, h.Submit)
}

// SubmitInput defines the input for the Submit operation
type SubmitInput struct {
	Body requests.ContactRequest
}

// SubmitOutput defines the output for the Submit operation
type SubmitOutput struct {
	Body responses.ContactResponse
}

// Submit handles the POST /contact endpoint
func (h *ContactHandler) Submit(ctx context.Context, input *SubmitInput) (*SubmitOutput, error) {
	msg := &domain.Message{
		Name:    input.Body.Name,
		Email:   input.Body.Email,
		Subject: input.Body.Subject,
		Body:    input.Body.Message,
	}

	if err := h.contact.Submit(ctx, msg); err != nil {
		return nil, toHumaError(err)
	}

	return &SubmitOutput{
		Body: responses.ContactResponse{Status: "accepted"},
	}, nil
}
