package domain

import (
	"errors"
	"time"
)

// PostStatus represents the visibility state of a post.
type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPublished PostStatus = "published"
)

var ErrInvalidStatus = errors.New("invalid post status")

// ParsePostStatus converts a raw string into a PostStatus. The empty string
// defaults to published, matching the creation default.
func ParsePostStatus(s string) (PostStatus, error) {
	switch PostStatus(s) {
	case StatusDraft:
		return StatusDraft, nil
	case StatusPublished, "":
		return StatusPublished, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Post is a blog entry. AuthorID is a weak reference to a User: deleting the
// author cascades to the author's posts, but a post never owns its author.
type Post struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	AuthorID    string     `json:"author_id"`
	AuthorName  string     `json:"author_name,omitempty"`
	AuthorEmail string     `json:"author_email,omitempty"`
	Status      PostStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

var (
	ErrPostNotFound = errors.New("post not found")
	ErrInvalidInput = errors.New("invalid input")
)
