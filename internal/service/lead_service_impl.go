package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jjrsoftware/backend/internal/model"
	"github.com/jjrsoftware/backend/internal/repository"
	"github.com/jjrsoftware/backend/pkg/sheets"
)

// Pragmatic syntactic check, not full RFC 5322.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether email passes the pragmatic syntax check.
func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// leadServiceImpl is the production implementation of LeadService.
type leadServiceImpl struct {
	sink LeadSink
}

// NewLeadService creates a LeadService dispatching to the given sink.
func NewLeadService(sink LeadSink) LeadService {
	return &leadServiceImpl{sink: sink}
}

func (s *leadServiceImpl) Submit(ctx context.Context, lead *model.Lead) error {
	if strings.TrimSpace(lead.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(lead.Message) == "" {
		return fmt.Errorf("%w: message is required", ErrValidation)
	}
	if !ValidEmail(lead.Email) {
		return fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	lead.Phone = strings.TrimSpace(lead.Phone)

	return s.sink.Submit(ctx, lead)
}

// storeSink inserts leads into the database via insert-only credentials.
type storeSink struct {
	repo repository.LeadRepository
}

// NewStoreSink creates the database lead sink.
func NewStoreSink(repo repository.LeadRepository) LeadSink {
	return &storeSink{repo: repo}
}

func (s *storeSink) Submit(ctx context.Context, lead *model.Lead) error {
	return s.repo.Insert(ctx, lead)
}

// sheetsSink posts leads to the spreadsheet webhook. Unlike the store
// sink it stamps the payload with a client-generated timestamp.
type sheetsSink struct {
	client sheets.Client
	now    func() time.Time
}

// NewSheetsSink creates the spreadsheet webhook lead sink.
func NewSheetsSink(client sheets.Client) LeadSink {
	return &sheetsSink{client: client, now: time.Now}
}

func (s *sheetsSink) Submit(ctx context.Context, lead *model.Lead) error {
	return s.client.Submit(ctx, sheets.LeadPayload{
		Name:      lead.Name,
		Email:     lead.Email,
		Phone:     lead.Phone,
		Subject:   lead.Subject,
		Message:   lead.Message,
		Page:      lead.Page,
		Timestamp: s.now().UTC().Format(time.RFC3339),
	})
}
