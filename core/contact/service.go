// ABOUTME: Contact service validates and forwards contact form submissions
// ABOUTME: Posts messages as JSON to a configured form endpoint

package contact

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/lolimmlost/appahouse-portfolio/core/domain"
	coreerrors "github.com/lolimmlost/appahouse-portfolio/core/errors"
	"github.com/lolimmlost/appahouse-portfolio/core/interfaces"
)

// Options configures the contact service.
type Options struct {
	// Endpoint receives submissions as a JSON POST. When empty,
	// submissions are accepted and logged but not forwarded.
	Endpoint string
}

// Service handles contact form submissions
type Service struct {
	deps interfaces.Dependencies
	opts Options
}

// NewService creates a new contact service instance
func NewService(deps interfaces.Dependencies, opts Options) *Service {
	return &Service{deps: deps, opts: opts}
}

// Submit validates the message and forwards it to the configured
// endpoint.
func (s *Service) Submit(ctx context.Context, msg *domain.Message) error {
	if err := msg.Validate(); err != nil {
		return &coreerrors.ValidationError{Field: "message", Message: err.Error()}
	}

	if s.opts.Endpoint == "" {
		if s.deps.Logger != nil {
			s.deps.Logger.Info("Contact endpoint not configured, accepting without forwarding", map[string]interface{}{
				"from": msg.Email,
			})
		}
		return nil
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return coreerrors.WrapError(err, "encoding contact message")
	}

	resp, err := s.deps.HTTPClient.Post(ctx, s.opts.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return coreerrors.WrapError(err, "forwarding contact message")
	}
	defer resp.Body().Close()

	if status := resp.StatusCode(); status < 200 || status > 299 {
		return &coreerrors.ExternalAPIError{
			StatusCode: status,
			Message:    "contact endpoint rejected the submission",
			API:        "contact form",
		}
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Info("Contact message forwarded", map[string]interface{}{
			"from":    msg.Email,
			"subject": msg.Subject,
		})
	}
	return nil
}
