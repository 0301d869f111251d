package handler

import "time"

type createPostRequest struct {
	Title   string `json:"title"   validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
	// Status defaults to published when omitted.
	Status string `json:"status" validate:"omitempty,oneof=draft published"`
}

// updatePostRequest is a partial update: absent fields are left untouched.
type updatePostRequest struct {
	Title   *string `json:"title"   validate:"omitempty,min=1,max=200"`
	Content *string `json:"content" validate:"omitempty,min=1"`
	Status  *string `json:"status"  validate:"omitempty,oneof=draft published"`
}

type postResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	AuthorID    string    `json:"author_id"`
	AuthorName  string    `json:"author_name,omitempty"`
	AuthorEmail string    `json:"author_email,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type deletedResponse struct {
	Message string `json:"message"`
}
