package contact

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/lolimmlost/appahouse-portfolio/core/domain"
	coreerrors "github.com/lolimmlost/appahouse-portfolio/core/errors"
	"github.com/lolimmlost/appahouse-portfolio/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	postFunc func(ctx context.Context, url string, body io.Reader) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	return nil, nil
}

func (m *mockHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	return m.postFunc(ctx, url, body)
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
}

func (m *mockResponse) StatusCode() int      { return m.statusCode }
func (m *mockResponse) Header(string) string { return "" }
func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(""))
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	infoFunc func(msg string, fields map[string]interface{})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{}) {
	if m.infoFunc != nil {
		m.infoFunc(msg, fields)
	}
}

func validMessage() *domain.Message {
	return &domain.Message{
		Name:    "Appa",
		Email:   "appa@example.com",
		Subject: "Hello",
		Body:    "I have a question.",
	}
}

func TestSubmit_ForwardsAsJSON(t *testing.T) {
	var gotURL string
	var gotBody []byte
	client := &mockHTTPClient{
		postFunc: func(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
			gotURL = url
			gotBody, _ = io.ReadAll(body)
			return &mockResponse{statusCode: 200}, nil
		},
	}
	svc := NewService(interfaces.Dependencies{HTTPClient: client, Logger: &mockLogger{}},
		Options{Endpoint: "https://forms.example.com/submit"})

	if err := svc.Submit(context.Background(), validMessage()); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if gotURL != "https://forms.example.com/submit" {
		t.Errorf("posted to %q", gotURL)
	}
	var decoded map[string]string
	if err := json.Unmarshal(gotBody, &decoded); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if decoded["email"] != "appa@example.com" || decoded["message"] != "I have a question." {
		t.Errorf("payload = %v", decoded)
	}
}

func TestSubmit_InvalidMessage(t *testing.T) {
	svc := NewService(interfaces.Dependencies{Logger: &mockLogger{}}, Options{})

	err := svc.Submit(context.Background(), &domain.Message{Email: "not-an-email"})

	if !coreerrors.IsValidation(err) {
		t.Errorf("want ValidationError, got %v", err)
	}
}

func TestSubmit_EndpointRejection(t *testing.T) {
	client := &mockHTTPClient{
		postFunc: func(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
			return &mockResponse{statusCode: 500}, nil
		},
	}
	svc := NewService(interfaces.Dependencies{HTTPClient: client, Logger: &mockLogger{}},
		Options{Endpoint: "https://forms.example.com/submit"})

	err := svc.Submit(context.Background(), validMessage())

	if !coreerrors.IsExternalAPI(err) {
		t.Errorf("want ExternalAPIError, got %v", err)
	}
}

func TestSubmit_UnconfiguredEndpointAccepts(t *testing.T) {
	logged := false
	svc := NewService(interfaces.Dependencies{
		Logger: &mockLogger{infoFunc: func(string, map[string]interface{}) { logged = true }},
	}, Options{})

	if err := svc.Submit(context.Background(), validMessage()); err != nil {
		t.Fatalf("unconfigured endpoint must accept: %v", err)
	}
	if !logged {
		t.Error("acceptance without forwarding should be logged")
	}
}
