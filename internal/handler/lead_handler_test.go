package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jjrsoftware/backend/internal/model"
	"github.com/jjrsoftware/backend/internal/service"
)

type mockLeadService struct {
	submitFunc func(ctx context.Context, lead *model.Lead) error
}

func (m *mockLeadService) Submit(ctx context.Context, lead *model.Lead) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, lead)
	}
	return nil
}

func TestLeadHandler_Submit_Success(t *testing.T) {
	var captured *model.Lead
	mock := &mockLeadService{
		submitFunc: func(ctx context.Context, lead *model.Lead) error {
			captured = lead
			return nil
		},
	}
	h := NewLeadHandler(mock)

	body := `{"name":"Alice","email":"alice@example.com","message":"Hi","page":"contact"}`
	req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if captured == nil || captured.Page != "contact" {
		t.Errorf("unexpected lead %+v", captured)
	}
}

func TestLeadHandler_Submit_ValidationIs400(t *testing.T) {
	mock := &mockLeadService{
		submitFunc: func(ctx context.Context, lead *model.Lead) error {
			return service.ErrValidation
		},
	}
	h := NewLeadHandler(mock)

	body := `{"name":"Alice","email":"not-an-email","message":"Hi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestLeadHandler_Submit_SinkFailureIs502(t *testing.T) {
	mock := &mockLeadService{
		submitFunc: func(ctx context.Context, lead *model.Lead) error {
			return errors.New("webhook timeout")
		},
	}
	h := NewLeadHandler(mock)

	body := `{"name":"Alice","email":"alice@example.com","message":"Hi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if !strings.Contains(resp["message"], "webhook timeout") {
		t.Errorf("expected human-readable message, got %+v", resp)
	}
}

func TestLeadHandler_Submit_InvalidJSON(t *testing.T) {
	h := NewLeadHandler(&mockLeadService{})

	req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
