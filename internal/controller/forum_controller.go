package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/preptalk/preptalk/internal/dto"
	"github.com/preptalk/preptalk/internal/middleware"
	"github.com/preptalk/preptalk/internal/service"
)

type ForumController struct {
	forumService service.ForumService
}

func NewForumController(forumService service.ForumService) *ForumController {
	return &ForumController{forumService: forumService}
}

// ListPosts godoc
// @Summary List forum posts
// @Tags Forum
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.PostListResponse
// @Router /forum/posts [get]
func (c *ForumController) ListPosts(ctx *gin.Context) {
	resp, err := c.forumService.ListPosts()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetPost godoc
// @Summary Get one forum post
// @Tags Forum
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} dto.PostResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /forum/posts/{id} [get]
func (c *ForumController) GetPost(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	resp, err := c.forumService.GetPost(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreatePost godoc
// @Summary Create a forum post
// @Tags Forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param post body dto.CreatePostRequest true "Title and content"
// @Success 201 {object} dto.PostResponse
// @Router /forum/posts [post]
func (c *ForumController) CreatePost(ctx *gin.Context) {
	var req dto.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("Invalid request body: "+err.Error()))
		return
	}

	resp, err := c.forumService.CreatePost(middleware.Principal(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// UpdatePost godoc
// @Summary Update own forum post
// @Tags Forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param patch body dto.UpdatePostRequest true "Fields to change"
// @Success 200 {object} dto.PostResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /forum/posts/{id} [patch]
func (c *ForumController) UpdatePost(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("Invalid request body: "+err.Error()))
		return
	}

	resp, err := c.forumService.UpdatePost(middleware.Principal(ctx), id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeletePost godoc
// @Summary Delete own forum post
// @Tags Forum
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /forum/posts/{id} [delete]
func (c *ForumController) DeletePost(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.forumService.DeletePost(middleware.Principal(ctx), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Post removed"})
}

// AddComment godoc
// @Summary Comment on a forum post
// @Tags Forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param comment body dto.AddCommentRequest true "Comment content"
// @Success 201 {object} dto.PostResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /forum/posts/{id}/comments [post]
func (c *ForumController) AddComment(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req dto.AddCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("Invalid request body: "+err.Error()))
		return
	}

	resp, err := c.forumService.AddComment(middleware.Principal(ctx), id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// LikePost godoc
// @Summary Like a forum post
// @Description Plain counter increment; repeated likes are not deduplicated.
// @Tags Forum
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} dto.LikeResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /forum/posts/{id}/like [post]
func (c *ForumController) LikePost(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	resp, err := c.forumService.LikePost(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
