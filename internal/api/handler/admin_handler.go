package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blogging-platform/internal/api/metrics"
	"github.com/inkwell/blogging-platform/internal/core/domain"
	"github.com/inkwell/blogging-platform/internal/core/ports"
)

// AdminHandler handles the admin-only management endpoints. Route-level role
// enforcement happens in the RequireRole middleware; the service layer checks
// again so a misconfigured route cannot leak admin operations.
type AdminHandler struct {
	adminService ports.AdminService
	postService  ports.PostService
}

func NewAdminHandler(adminService ports.AdminService, postService ports.PostService) *AdminHandler {
	return &AdminHandler{adminService: adminService, postService: postService}
}

// ListUsers handles GET /admin/users.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserListResponse(users))
}

// ChangeRole handles PUT /admin/users/:id/role.
//
// @Summary      Change a user's role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      changeRoleRequest  true  "New role"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/users/{id}/role [put]
func (h *AdminHandler) ChangeRole(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req changeRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "role must be user or admin")
	}

	user, err := h.adminService.ChangeRole(c.Request().Context(), actor, c.Param("id"), role)
	if err != nil {
		return err
	}

	metrics.AdminActionsTotal.WithLabelValues("change_role").Inc()
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// DeleteUser handles DELETE /admin/users/:id. Deleting an account removes all
// of its posts as well.
//
// @Summary      Delete a user and their posts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  deletedResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.adminService.DeleteUser(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}

	metrics.AdminActionsTotal.WithLabelValues("delete_user").Inc()
	return c.JSON(http.StatusOK, deletedResponse{Message: "user removed"})
}

// ListPosts handles GET /admin/posts — every post regardless of status.
//
// @Summary      List all posts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   postResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/posts [get]
func (h *AdminHandler) ListPosts(c echo.Context) error {
	posts, err := h.postService.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostListResponse(posts))
}

// Stats handles GET /admin/stats.
//
// @Summary      Platform statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.adminService.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statsResponse{
		TotalUsers:     stats.TotalUsers,
		TotalPosts:     stats.TotalPosts,
		PublishedPosts: stats.PublishedPosts,
		DraftPosts:     stats.DraftPosts,
		AdminUsers:     stats.AdminUsers,
	})
}
