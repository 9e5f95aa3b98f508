package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/YT-Kowshick/Women-Safety-Ai/internal/models"
	"github.com/google/uuid"
)

// National emergency helplines included in every composed message.
const (
	emergencyNumber     = "112"
	womenHelplineNumber = "1091"
)

// SOSService composes SOS alert messages for the dashboard's emergency
// feature. The server only builds the text; delivery is the client's job.
type SOSService interface {
	Compose(ctx context.Context, req models.SOSRequest) (models.SOSMessage, error)
}

type sosService struct {
	now func() time.Time
}

// NewSOSService returns an SOSService using the wall clock.
func NewSOSService() SOSService {
	return &sosService{now: time.Now}
}

func (s *sosService) Compose(_ context.Context, req models.SOSRequest) (models.SOSMessage, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.SOSMessage{}, fmt.Errorf("name must not be blank: %w", ErrInvalidInput)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "EMERGENCY! %s needs help.", name)
	fmt.Fprintf(&b, " Location: https://maps.google.com/?q=%.6f,%.6f.", req.Latitude, req.Longitude)
	if note := strings.TrimSpace(req.Note); note != "" {
		fmt.Fprintf(&b, " Note: %s.", note)
	}
	if contact := strings.TrimSpace(req.Contact); contact != "" {
		fmt.Fprintf(&b, " Reach them at %s.", contact)
	}
	fmt.Fprintf(&b, " Call %s (emergency) or %s (women helpline).",
		emergencyNumber, womenHelplineNumber)

	return models.SOSMessage{
		ID:        uuid.New().String(),
		Message:   b.String(),
		CreatedAt: s.now().UTC(),
	}, nil
}
