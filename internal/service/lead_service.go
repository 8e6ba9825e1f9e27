package service

import (
	"context"

	"github.com/jjrsoftware/backend/internal/model"
)

// LeadService defines the business logic for lead submissions.
type LeadService interface {
	// Submit validates the lead and dispatches it to the configured sink.
	// Validation failures wrap ErrValidation and occur before any network
	// call; sink failures are returned as-is for the caller to surface.
	// Fire-and-forget: nothing is persisted locally and nothing is retried.
	Submit(ctx context.Context, lead *model.Lead) error
}

// LeadSink receives a validated lead submission. Exactly one sink is
// chosen at startup from configuration; sinks perform no validation of
// their own.
type LeadSink interface {
	Submit(ctx context.Context, lead *model.Lead) error
}
