package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gsccapital/website/api/internal/dto"
	"github.com/gsccapital/website/api/internal/entity"
	"github.com/gsccapital/website/api/internal/repository"
	"github.com/gsccapital/website/api/internal/service"
)

func newContactHandler(repo repository.ContactMessagesRepository) *ContactHandler {
	return NewContactHandler(service.NewContactService(repo, service.NewContactNormalizer("US")))
}

func TestContactHandler_Submit(t *testing.T) {
	e := echo.New()
	var stored *entity.ContactMessage
	repo := &contactRepoStub{
		create: func(ctx context.Context, msg *entity.ContactMessage) error {
			msg.ID = uuid.New()
			stored = msg
			return nil
		},
	}
	handler := newContactHandler(repo)

	rec := httptest.NewRecorder()
	body := `{"name":"Jane","email":"Jane@Example.COM","phone":"(415) 555-2671","message":"Hello"}`
	if err := handler.Submit(e.NewContext(jsonRequest(http.MethodPost, "/api/contact", body), rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.ContactAccepted
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID != stored.ID || resp.Message == "" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if stored.Email != "jane@example.com" || stored.IsRead {
		t.Fatalf("unexpected stored message: %+v", stored)
	}
	if stored.Phone == nil || *stored.Phone != "+14155552671" {
		t.Fatalf("expected E.164 phone, got %v", stored.Phone)
	}
}

func TestContactHandler_SubmitRejected(t *testing.T) {
	tests := map[string]struct {
		body        string
		expectField string
	}{
		"missing message": {body: `{"name":"Jane","email":"jane@example.com"}`, expectField: "message"},
		"bad email":       {body: `{"name":"Jane","email":"nope","message":"hi"}`, expectField: "email"},
		"bad phone":       {body: `{"name":"Jane","email":"jane@example.com","phone":"12","message":"hi"}`, expectField: "phone"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			called := false
			handler := newContactHandler(&contactRepoStub{
				create: func(ctx context.Context, msg *entity.ContactMessage) error {
					called = true
					return nil
				},
			})

			rec := httptest.NewRecorder()
			_ = handler.Submit(e.NewContext(jsonRequest(http.MethodPost, "/api/contact", tt.body), rec))
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			var body ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if _, ok := body.Details[tt.expectField]; !ok {
				t.Fatalf("expected %s in details, got %v", tt.expectField, body.Details)
			}
			if called {
				t.Fatalf("expected nothing stored")
			}
		})
	}
}

func TestContactHandler_Admin(t *testing.T) {
	e := echo.New()
	known := uuid.New()
	repo := &contactRepoStub{
		list: func(ctx context.Context) ([]entity.ContactMessage, error) {
			return []entity.ContactMessage{{ID: known, Name: "Jane"}}, nil
		},
		markRead: func(ctx context.Context, id uuid.UUID, isRead bool) (*entity.ContactMessage, error) {
			if id != known {
				return nil, repository.ErrContactMessageNotFound
			}
			return &entity.ContactMessage{ID: id, IsRead: isRead}, nil
		},
		delete: func(ctx context.Context, id uuid.UUID) error {
			if id != known {
				return repository.ErrContactMessageNotFound
			}
			return nil
		},
	}
	handler := newContactHandler(repo)

	rec := httptest.NewRecorder()
	_ = handler.List(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/contact", nil), rec))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	tests := map[string]struct {
		fn         echo.HandlerFunc
		method     string
		id         string
		body       string
		expectCode int
	}{
		"mark read":          {fn: handler.MarkRead, method: http.MethodPut, id: known.String(), body: `{"isRead":true}`, expectCode: http.StatusOK},
		"mark read missing":  {fn: handler.MarkRead, method: http.MethodPut, id: uuid.NewString(), body: `{"isRead":true}`, expectCode: http.StatusNotFound},
		"mark read no field": {fn: handler.MarkRead, method: http.MethodPut, id: known.String(), body: `{"message":"edited"}`, expectCode: http.StatusBadRequest},
		"get missing":        {fn: handler.Get, method: http.MethodGet, id: known.String(), expectCode: http.StatusNotFound},
		"delete":             {fn: handler.Delete, method: http.MethodDelete, id: known.String(), expectCode: http.StatusOK},
		"delete missing":     {fn: handler.Delete, method: http.MethodDelete, id: uuid.NewString(), expectCode: http.StatusNotFound},
		"delete bad id":      {fn: handler.Delete, method: http.MethodDelete, id: "x", expectCode: http.StatusBadRequest},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(jsonRequest(tt.method, "/api/contact/"+tt.id, tt.body), rec)
			c.SetParamNames("id")
			c.SetParamValues(tt.id)
			if err := tt.fn(c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Code != tt.expectCode {
				t.Fatalf("expected %d, got %d: %s", tt.expectCode, rec.Code, rec.Body.String())
			}
		})
	}

	repo.list = func(ctx context.Context) ([]entity.ContactMessage, error) { return nil, errors.New("boom") }
	rec = httptest.NewRecorder()
	_ = handler.List(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/contact", nil), rec))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
