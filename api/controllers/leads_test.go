package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/restaurantelilica/cardapio-backend/internal/leads"
	pkgerrors "github.com/restaurantelilica/cardapio-backend/pkg/errors"
)

type stubLeadService struct {
	result leads.Result
	err    error
	got    []leads.Lead
}

func (s *stubLeadService) Submit(_ context.Context, lead leads.Lead) (leads.Result, error) {
	s.got = append(s.got, lead)
	return s.result, s.err
}

func postLead(t *testing.T, svc LeadService, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	LeadCreate(svc, quietLogger()).ServeHTTP(rec, req)
	return rec
}

func TestLeadCreate(t *testing.T) {
	t.Parallel()

	svc := &stubLeadService{result: leads.Result{Delivered: []string{"webhook"}}}
	rec := postLead(t, svc, `{"name":"  Maria  ","email":"maria@example.com","whatsapp":"5511999990000","city":"São Paulo"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("unexpected status: %d body %s", rec.Code, rec.Body.String())
	}
	if len(svc.got) != 1 || svc.got[0].Name != "Maria" {
		t.Fatalf("expected trimmed lead, got %+v", svc.got)
	}

	var envelope struct {
		Data leadResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(envelope.Data.Delivered) != 1 || envelope.Data.Delivered[0] != "webhook" {
		t.Fatalf("unexpected response: %+v", envelope.Data)
	}
}

func TestLeadCreateMissingFields(t *testing.T) {
	t.Parallel()

	svc := &stubLeadService{}
	rec := postLead(t, svc, `{"name":"Maria"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if len(svc.got) != 0 {
		t.Fatal("invalid lead must not reach the service")
	}
}

func TestLeadCreateAllChannelsDown(t *testing.T) {
	t.Parallel()

	svc := &stubLeadService{err: pkgerrors.New(pkgerrors.CodeDependency, leads.RetryMessage)}
	rec := postLead(t, svc, `{"name":"Maria","email":"maria@example.com","whatsapp":"5511999990000"}`)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), leads.RetryMessage) {
		t.Fatalf("expected retry copy in response, got %s", rec.Body.String())
	}
}

func TestLeadCreateInactiveWebhookSucceedsWithNote(t *testing.T) {
	t.Parallel()

	svc := &stubLeadService{result: leads.Result{Inactive: []string{"webhook"}}}
	rec := postLead(t, svc, `{"name":"Maria","email":"maria@example.com","whatsapp":"5511999990000"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("idle webhook must still create the lead, got %d body %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data leadResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(envelope.Data.Inactive) != 1 || envelope.Data.Inactive[0] != "webhook" {
		t.Fatalf("inactive channel must surface in the response: %+v", envelope.Data)
	}
	if envelope.Data.Note != leads.InactiveNote {
		t.Fatalf("expected inactive note, got %q", envelope.Data.Note)
	}
}

func TestLeadCreatePartialDeliveryReported(t *testing.T) {
	t.Parallel()

	svc := &stubLeadService{result: leads.Result{Delivered: []string{"sheet_append"}, Failed: []string{"webhook"}}}
	rec := postLead(t, svc, `{"name":"Maria","email":"maria@example.com","whatsapp":"5511999990000"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("partial delivery must still be a success, got %d", rec.Code)
	}

	var envelope struct {
		Data leadResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(envelope.Data.Failed) != 1 || envelope.Data.Failed[0] != "webhook" {
		t.Fatalf("failed channels must surface in the response: %+v", envelope.Data)
	}
}
