package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blogging-platform/internal/core/domain"
	"github.com/inkwell/blogging-platform/internal/core/ports"
)

type stubPostService struct {
	createFn        func(ctx context.Context, actor domain.Actor, in ports.CreatePostInput) (*domain.Post, error)
	getFn           func(ctx context.Context, id string) (*domain.Post, error)
	listPublishedFn func(ctx context.Context) ([]*domain.Post, error)
	listByAuthorFn  func(ctx context.Context, authorID string) ([]*domain.Post, error)
	listAllFn       func(ctx context.Context) ([]*domain.Post, error)
	updateFn        func(ctx context.Context, actor domain.Actor, id string, in ports.UpdatePostInput) (*domain.Post, error)
	deleteFn        func(ctx context.Context, actor domain.Actor, id string) error
}

func (s *stubPostService) Create(ctx context.Context, actor domain.Actor, in ports.CreatePostInput) (*domain.Post, error) {
	return s.createFn(ctx, actor, in)
}

func (s *stubPostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.getFn(ctx, id)
}

func (s *stubPostService) ListPublished(ctx context.Context) ([]*domain.Post, error) {
	return s.listPublishedFn(ctx)
}

func (s *stubPostService) ListByAuthor(ctx context.Context, authorID string) ([]*domain.Post, error) {
	return s.listByAuthorFn(ctx, authorID)
}

func (s *stubPostService) ListAll(ctx context.Context) ([]*domain.Post, error) {
	return s.listAllFn(ctx)
}

func (s *stubPostService) Update(ctx context.Context, actor domain.Actor, id string, in ports.UpdatePostInput) (*domain.Post, error) {
	return s.updateFn(ctx, actor, id, in)
}

func (s *stubPostService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	return s.deleteFn(ctx, actor, id)
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, userID, role string) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("role", role)
	return c
}

func TestPostHandler_List_PublishedOnly(t *testing.T) {
	e := newTestEcho()
	now := time.Now()
	stub := &stubPostService{
		listPublishedFn: func(ctx context.Context) ([]*domain.Post, error) {
			return []*domain.Post{
				{ID: "p1", Title: "First", AuthorID: "u1", Status: domain.StatusPublished, CreatedAt: now, UpdatedAt: now},
				{ID: "p2", Title: "Second", AuthorID: "u2", Status: domain.StatusPublished, CreatedAt: now, UpdatedAt: now},
			}, nil
		},
	}
	handler := NewPostHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[0]["id"] != "p1" {
		t.Fatalf("unexpected listing: %+v", resp)
	}
}

func TestPostHandler_ListMine_UsesCallerID(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		listByAuthorFn: func(ctx context.Context, authorID string) ([]*domain.Post, error) {
			if authorID != "u1" {
				t.Fatalf("expected caller id u1, got %s", authorID)
			}
			return []*domain.Post{{ID: "p1", AuthorID: "u1", Status: domain.StatusDraft}}, nil
		},
	}
	handler := NewPostHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/posts/my", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", "user")

	if err := handler.ListMine(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPostHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		createFn: func(ctx context.Context, actor domain.Actor, in ports.CreatePostInput) (*domain.Post, error) {
			if actor.ID != "u1" {
				t.Fatalf("expected actor u1, got %s", actor.ID)
			}
			if in.Status != domain.StatusPublished {
				t.Fatalf("expected default published, got %s", in.Status)
			}
			return &domain.Post{ID: "p1", Title: in.Title, Content: in.Content, AuthorID: actor.ID, Status: in.Status}, nil
		},
	}
	handler := NewPostHandler(stub)

	body := strings.NewReader(`{"title":"Hello","content":"World"}`)
	req := httptest.NewRequest(http.MethodPost, "/posts", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", "user")

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["author_id"] != "u1" || resp["status"] != "published" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestPostHandler_Create_MissingTitle(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		createFn: func(ctx context.Context, actor domain.Actor, in ports.CreatePostInput) (*domain.Post, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewPostHandler(stub)

	body := strings.NewReader(`{"content":"World"}`)
	req := httptest.NewRequest(http.MethodPost, "/posts", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", "user")

	err := handler.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestPostHandler_Create_BadStatus(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		createFn: func(ctx context.Context, actor domain.Actor, in ports.CreatePostInput) (*domain.Post, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewPostHandler(stub)

	body := strings.NewReader(`{"title":"Hello","content":"World","status":"archived"}`)
	req := httptest.NewRequest(http.MethodPost, "/posts", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", "user")

	err := handler.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestPostHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		getFn: func(ctx context.Context, id string) (*domain.Post, error) {
			return nil, domain.ErrPostNotFound
		},
	}
	handler := NewPostHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/posts/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := handler.Get(c)
	if !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostHandler_Update_PartialBody(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		updateFn: func(ctx context.Context, actor domain.Actor, id string, in ports.UpdatePostInput) (*domain.Post, error) {
			if id != "p1" {
				t.Fatalf("expected post p1, got %s", id)
			}
			if in.Title != nil || in.Content == nil || *in.Content != "Updated" {
				t.Fatalf("unexpected input: %+v", in)
			}
			if in.Status == nil || *in.Status != domain.StatusDraft {
				t.Fatalf("expected draft status, got %+v", in.Status)
			}
			return &domain.Post{ID: id, Title: "Old", Content: *in.Content, AuthorID: actor.ID, Status: *in.Status}, nil
		},
	}
	handler := NewPostHandler(stub)

	body := strings.NewReader(`{"content":"Updated","status":"draft"}`)
	req := httptest.NewRequest(http.MethodPut, "/posts/p1", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", "user")
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPostHandler_Update_Forbidden(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		updateFn: func(ctx context.Context, actor domain.Actor, id string, in ports.UpdatePostInput) (*domain.Post, error) {
			return nil, domain.ErrForbidden
		},
	}
	handler := NewPostHandler(stub)

	body := strings.NewReader(`{"title":"Hijack"}`)
	req := httptest.NewRequest(http.MethodPut, "/posts/p1", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u2", "user")
	c.SetParamNames("id")
	c.SetParamValues("p1")

	err := handler.Update(c)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestPostHandler_Delete_Success(t *testing.T) {
	e := newTestEcho()
	called := false
	stub := &stubPostService{
		deleteFn: func(ctx context.Context, actor domain.Actor, id string) error {
			called = true
			if actor.ID != "u1" || id != "p1" {
				t.Fatalf("unexpected args: %s %s", actor.ID, id)
			}
			return nil
		},
	}
	handler := NewPostHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/posts/p1", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", "user")
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("service delete was not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
