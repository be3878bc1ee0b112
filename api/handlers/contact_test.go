package handlers

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"

	"github.com/lolimmlost/appahouse-portfolio/core/domain"
	coreerrors "github.com/lolimmlost/appahouse-portfolio/core/errors"
)

// mockContactService is a mock implementation of the contact service
type mockContactService struct {
	submitFunc func(ctx context.Context, msg *domain.Message) error
}

func (m *mockContactService) Submit(ctx context.Context, msg *domain.Message) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, msg)
	}
	return nil
}

func TestContactHandler_Submit(t *testing.T) {
	var got *domain.Message
	service := &mockContactService{
		submitFunc: func(ctx context.Context, msg *domain.Message) error {
			got = msg
			return nil
		},
	}
	handler := NewContactHandler(service)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/contact", map[string]interface{}{
		"name":    "Appa",
		"email":   "appa@example.com",
		"subject": "Hello",
		"message": "A question about the blog.",
	})

	if resp.Code != 202 {
		t.Fatalf("status = %d, want 202", resp.Code)
	}
	if got == nil || got.Email != "appa@example.com" || got.Body != "A question about the blog." {
		t.Errorf("message = %+v", got)
	}
}

func TestContactHandler_Submit_MissingFields(t *testing.T) {
	handler := NewContactHandler(&mockContactService{})
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/contact", map[string]interface{}{
		"email": "appa@example.com",
	})

	if resp.Code != 422 {
		t.Errorf("status = %d, want validation failure", resp.Code)
	}
}

func TestContactHandler_Submit_ServiceValidation(t *testing.T) {
	service := &mockContactService{
		submitFunc: func(ctx context.Context, msg *domain.Message) error {
			return &coreerrors.ValidationError{Field: "message", Message: "email is not valid format"}
		},
	}
	handler := NewContactHandler(service)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/contact", map[string]interface{}{
		"name":    "Appa",
		"email":   "appa@example.com",
		"message": "   ",
	})

	if resp.Code != 400 {
		t.Errorf("status = %d, want 400", resp.Code)
	}
}

func TestContactHandler_Submit_ForwardingFailure(t *testing.T) {
	service := &mockContactService{
		submitFunc: func(ctx context.Context, msg *domain.Message) error {
			return &coreerrors.ExternalAPIError{StatusCode: 502, Message: "rejected", API: "contact form"}
		},
	}
	handler := NewContactHandler(service)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/contact", map[string]interface{}{
		"name":    "Appa",
		"email":   "appa@example.com",
		"message": "hi",
	})

	if resp.Code != 503 {
		t.Errorf("status = %d, want 503", resp.Code)
	}
}
