package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blogging-platform/internal/api/metrics"
	"github.com/inkwell/blogging-platform/internal/core/domain"
	"github.com/inkwell/blogging-platform/internal/core/ports"
)

// PostHandler handles HTTP requests for post operations. Domain errors are
// returned as-is and resolved by the central error handler.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// List handles GET /posts — the anonymous listing of published posts.
//
// @Summary      List published posts
// @Tags         posts
// @Produce      json
// @Success      200  {array}  postResponse
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.ListPublished(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostListResponse(posts))
}

// ListMine handles GET /posts/my — the caller's own posts, any status.
//
// @Summary      List the caller's posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   postResponse
// @Failure      401  {object}  errorResponse
// @Router       /posts/my [get]
func (h *PostHandler) ListMine(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	posts, err := h.service.ListByAuthor(c.Request().Context(), actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostListResponse(posts))
}

// Get handles GET /posts/:id.
//
// @Summary      Fetch one post by id
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  postResponse
// @Failure      404  {object}  errorResponse
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponse(post))
}

// Create handles POST /posts. The author is always the caller.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post details"
// @Success      201   {object}  postResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	status, err := domain.ParsePostStatus(req.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "status must be draft or published")
	}

	post, err := h.service.Create(c.Request().Context(), actor, ports.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
		Status:  status,
	})
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.WithLabelValues(string(post.Status)).Inc()
	return c.JSON(http.StatusCreated, toPostResponse(post))
}

// Update handles PUT /posts/:id — author or admin only.
//
// @Summary      Update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Post id"
// @Param        body  body      updatePostRequest  true  "Fields to update"
// @Success      200   {object}  postResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.UpdatePostInput{Title: req.Title, Content: req.Content}
	if req.Status != nil {
		status, err := domain.ParsePostStatus(*req.Status)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "status must be draft or published")
		}
		in.Status = &status
	}

	post, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponse(post))
}

// Delete handles DELETE /posts/:id — author or admin only.
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  deletedResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deletedResponse{Message: "post removed"})
}
