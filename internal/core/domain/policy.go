package domain

import "errors"

var (
	ErrForbidden        = errors.New("access forbidden")
	ErrSelfModification = errors.New("cannot modify own account")
)

// Actor is the authenticated identity performing an operation, as decoded
// from a token. It carries no store-backed state: the role embedded at
// issuance is trusted for the token's lifetime.
type Actor struct {
	ID   string
	Role Role
}

// IsAdmin reports whether the actor holds the admin role. The switch is
// exhaustive over the closed Role set so an unknown role never passes.
func (a Actor) IsAdmin() bool {
	switch a.Role {
	case RoleAdmin:
		return true
	case RoleUser:
		return false
	default:
		return false
	}
}

// AuthorizePostWrite decides whether the actor may update or delete the
// given post: admins always may, otherwise only the post's author.
func AuthorizePostWrite(actor Actor, post *Post) error {
	if actor.IsAdmin() || actor.ID == post.AuthorID {
		return nil
	}
	return ErrForbidden
}

// AuthorizeUserManagement decides whether the actor may change the role of,
// or delete, the account identified by targetID. Admin-only, and never the
// actor's own account — an admin locking themselves out via self-demotion or
// self-deletion is denied as a distinct case.
func AuthorizeUserManagement(actor Actor, targetID string) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	if actor.ID == targetID {
		return ErrSelfModification
	}
	return nil
}
