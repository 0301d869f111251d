package handler

type changeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

type statsResponse struct {
	TotalUsers     int64 `json:"total_users"`
	TotalPosts     int64 `json:"total_posts"`
	PublishedPosts int64 `json:"published_posts"`
	DraftPosts     int64 `json:"draft_posts"`
	AdminUsers     int64 `json:"admin_users"`
}
