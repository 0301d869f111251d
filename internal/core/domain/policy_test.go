package domain

import "testing"

func TestAuthorizePostWrite(t *testing.T) {
	post := &Post{ID: "p1", AuthorID: "alice"}

	cases := []struct {
		name  string
		actor Actor
		want  error
	}{
		{"author may write", Actor{ID: "alice", Role: RoleUser}, nil},
		{"admin may write any", Actor{ID: "root", Role: RoleAdmin}, nil},
		{"other user denied", Actor{ID: "bob", Role: RoleUser}, ErrForbidden},
		{"unknown role denied", Actor{ID: "bob", Role: Role("superuser")}, ErrForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AuthorizePostWrite(tc.actor, post); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAuthorizeUserManagement(t *testing.T) {
	cases := []struct {
		name   string
		actor  Actor
		target string
		want   error
	}{
		{"admin manages other", Actor{ID: "root", Role: RoleAdmin}, "alice", nil},
		{"admin self-target denied", Actor{ID: "root", Role: RoleAdmin}, "root", ErrSelfModification},
		{"non-admin denied", Actor{ID: "alice", Role: RoleUser}, "bob", ErrForbidden},
		{"non-admin self-target still forbidden", Actor{ID: "alice", Role: RoleUser}, "alice", ErrForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AuthorizeUserManagement(tc.actor, tc.target); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseRole(t *testing.T) {
	if r, err := ParseRole("admin"); err != nil || r != RoleAdmin {
		t.Fatalf("ParseRole(admin) = %v, %v", r, err)
	}
	if r, err := ParseRole("user"); err != nil || r != RoleUser {
		t.Fatalf("ParseRole(user) = %v, %v", r, err)
	}
	if _, err := ParseRole("moderator"); err != ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestParsePostStatus(t *testing.T) {
	if s, err := ParsePostStatus(""); err != nil || s != StatusPublished {
		t.Fatalf("empty status should default to published, got %v, %v", s, err)
	}
	if s, err := ParsePostStatus("draft"); err != nil || s != StatusDraft {
		t.Fatalf("ParsePostStatus(draft) = %v, %v", s, err)
	}
	if _, err := ParsePostStatus("archived"); err != ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}
