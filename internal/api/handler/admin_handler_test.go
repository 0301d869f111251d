package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blogging-platform/internal/core/domain"
	"github.com/inkwell/blogging-platform/internal/core/ports"
)

type stubAdminService struct {
	listUsersFn  func(ctx context.Context) ([]*domain.User, error)
	changeRoleFn func(ctx context.Context, actor domain.Actor, targetID string, role domain.Role) (*domain.User, error)
	deleteUserFn func(ctx context.Context, actor domain.Actor, targetID string) error
	statsFn      func(ctx context.Context) (*ports.Stats, error)
}

func (s *stubAdminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.listUsersFn(ctx)
}

func (s *stubAdminService) ChangeRole(ctx context.Context, actor domain.Actor, targetID string, role domain.Role) (*domain.User, error) {
	return s.changeRoleFn(ctx, actor, targetID, role)
}

func (s *stubAdminService) DeleteUser(ctx context.Context, actor domain.Actor, targetID string) error {
	return s.deleteUserFn(ctx, actor, targetID)
}

func (s *stubAdminService) Stats(ctx context.Context) (*ports.Stats, error) {
	return s.statsFn(ctx)
}

func TestAdminHandler_ListUsers(t *testing.T) {
	e := newTestEcho()
	stub := &stubAdminService{
		listUsersFn: func(ctx context.Context) ([]*domain.User, error) {
			return []*domain.User{
				{ID: "u1", Name: "Alice", Email: "alice@example.com", Role: domain.RoleAdmin},
				{ID: "u2", Name: "Bob", Email: "bob@example.com", Role: domain.RoleUser},
			}, nil
		},
	}
	handler := NewAdminHandler(stub, &stubPostService{})

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", "admin")

	if err := handler.ListUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 users, got %d", len(resp))
	}
	for _, u := range resp {
		if _, leaked := u["password_hash"]; leaked {
			t.Fatalf("password hash must never be serialized")
		}
	}
}

func TestAdminHandler_ChangeRole_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAdminService{
		changeRoleFn: func(ctx context.Context, actor domain.Actor, targetID string, role domain.Role) (*domain.User, error) {
			if actor.ID != "u1" || targetID != "u2" || role != domain.RoleAdmin {
				t.Fatalf("unexpected args: %s %s %s", actor.ID, targetID, role)
			}
			return &domain.User{ID: targetID, Name: "Bob", Email: "bob@example.com", Role: role}, nil
		},
	}
	handler := NewAdminHandler(stub, &stubPostService{})

	body := strings.NewReader(`{"role":"admin"}`)
	req := httptest.NewRequest(http.MethodPut, "/admin/users/u2/role", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", "admin")
	c.SetParamNames("id")
	c.SetParamValues("u2")

	if err := handler.ChangeRole(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["role"] != "admin" {
		t.Fatalf("expected admin role, got %v", resp["role"])
	}
}

func TestAdminHandler_ChangeRole_UnknownRole(t *testing.T) {
	e := newTestEcho()
	stub := &stubAdminService{
		changeRoleFn: func(ctx context.Context, actor domain.Actor, targetID string, role domain.Role) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAdminHandler(stub, &stubPostService{})

	body := strings.NewReader(`{"role":"superuser"}`)
	req := httptest.NewRequest(http.MethodPut, "/admin/users/u2/role", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", "admin")
	c.SetParamNames("id")
	c.SetParamValues("u2")

	err := handler.ChangeRole(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAdminHandler_ChangeRole_SelfDenied(t *testing.T) {
	e := newTestEcho()
	stub := &stubAdminService{
		changeRoleFn: func(ctx context.Context, actor domain.Actor, targetID string, role domain.Role) (*domain.User, error) {
			return nil, domain.ErrSelfModification
		},
	}
	handler := NewAdminHandler(stub, &stubPostService{})

	body := strings.NewReader(`{"role":"user"}`)
	req := httptest.NewRequest(http.MethodPut, "/admin/users/u1/role", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", "admin")
	c.SetParamNames("id")
	c.SetParamValues("u1")

	err := handler.ChangeRole(c)
	if !errors.Is(err, domain.ErrSelfModification) {
		t.Fatalf("expected ErrSelfModification, got %v", err)
	}
}

func TestAdminHandler_DeleteUser_Success(t *testing.T) {
	e := newTestEcho()
	called := false
	stub := &stubAdminService{
		deleteUserFn: func(ctx context.Context, actor domain.Actor, targetID string) error {
			called = true
			if targetID != "u2" {
				t.Fatalf("expected target u2, got %s", targetID)
			}
			return nil
		},
	}
	handler := NewAdminHandler(stub, &stubPostService{})

	req := httptest.NewRequest(http.MethodDelete, "/admin/users/u2", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", "admin")
	c.SetParamNames("id")
	c.SetParamValues("u2")

	if err := handler.DeleteUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("service delete was not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAdminHandler_DeleteUser_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubAdminService{
		deleteUserFn: func(ctx context.Context, actor domain.Actor, targetID string) error {
			return domain.ErrUserNotFound
		},
	}
	handler := NewAdminHandler(stub, &stubPostService{})

	req := httptest.NewRequest(http.MethodDelete, "/admin/users/ghost", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", "admin")
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	err := handler.DeleteUser(c)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAdminHandler_ListPosts_AllStatuses(t *testing.T) {
	e := newTestEcho()
	posts := &stubPostService{
		listAllFn: func(ctx context.Context) ([]*domain.Post, error) {
			return []*domain.Post{
				{ID: "p1", Status: domain.StatusPublished},
				{ID: "p2", Status: domain.StatusDraft},
			}, nil
		},
	}
	handler := NewAdminHandler(&stubAdminService{}, posts)

	req := httptest.NewRequest(http.MethodGet, "/admin/posts", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", "admin")

	if err := handler.ListPosts(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[1]["status"] != "draft" {
		t.Fatalf("expected drafts included, got %+v", resp)
	}
}

func TestAdminHandler_Stats(t *testing.T) {
	e := newTestEcho()
	stub := &stubAdminService{
		statsFn: func(ctx context.Context) (*ports.Stats, error) {
			return &ports.Stats{TotalUsers: 3, TotalPosts: 5, PublishedPosts: 4, DraftPosts: 1, AdminUsers: 1}, nil
		},
	}
	handler := NewAdminHandler(stub, &stubPostService{})

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", "admin")

	if err := handler.Stats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]int64
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["total_posts"] != 5 || resp["published_posts"]+resp["draft_posts"] != resp["total_posts"] {
		t.Fatalf("inconsistent stats: %+v", resp)
	}
}
