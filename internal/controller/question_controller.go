package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/preptalk/preptalk/internal/dto"
	"github.com/preptalk/preptalk/internal/middleware"
	"github.com/preptalk/preptalk/internal/service"
)

type QuestionController struct {
	questionService service.QuestionService
}

func NewQuestionController(questionService service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// List godoc
// @Summary List catalog questions
// @Description Paginated, filtered question listing ordered newest-first.
// @Tags Questions
// @Produce json
// @Security BearerAuth
// @Param jobRole query string false "Exact job role"
// @Param category query string false "Category"
// @Param difficulty query string false "easy, medium or hard"
// @Param search query string false "Case-insensitive substring over text/tags/job role"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {object} dto.QuestionListResponse
// @Router /questions [get]
func (c *QuestionController) List(ctx *gin.Context) {
	filter := dto.QuestionFilter{
		JobRole:    ctx.Query("jobRole"),
		Category:   ctx.Query("category"),
		Difficulty: ctx.Query("difficulty"),
		Search:     ctx.Query("search"),
	}
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	resp, err := c.questionService.List(filter, page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetByID godoc
// @Summary Get a question
// @Tags Questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionDetailResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [get]
func (c *QuestionController) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	resp, err := c.questionService.GetByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary Create a question
// @Description Recruiter/admin only.
// @Tags Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question body dto.CreateQuestionRequest true "Question fields"
// @Success 201 {object} dto.QuestionDetailResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("Invalid request body: "+err.Error()))
		return
	}

	resp, err := c.questionService.Create(middleware.Principal(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// Update godoc
// @Summary Update a question
// @Description Permitted for the creator or recruiter/admin roles.
// @Tags Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Param patch body dto.UpdateQuestionRequest true "Fields to change"
// @Success 200 {object} dto.QuestionDetailResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("Invalid request body: "+err.Error()))
		return
	}

	resp, err := c.questionService.Update(middleware.Principal(ctx), id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Delete a question
// @Tags Questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /questions/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.questionService.Delete(middleware.Principal(ctx), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Question removed"})
}

// RandomSample godoc
// @Summary Sample random questions
// @Description Uniform sample without replacement for a job role.
// @Tags Questions
// @Produce json
// @Security BearerAuth
// @Param jobRole query string true "Job role"
// @Param difficulty query string false "easy, medium or hard"
// @Param count query int false "Sample size (default 5)"
// @Success 200 {object} dto.QuestionsResponse
// @Failure 400 {object} dto.ErrorResponse "Missing job role"
// @Router /questions/random [get]
func (c *QuestionController) RandomSample(ctx *gin.Context) {
	count, _ := strconv.Atoi(ctx.DefaultQuery("count", "5"))
	resp, err := c.questionService.RandomSample(ctx.Query("jobRole"), ctx.Query("difficulty"), count)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Generate godoc
// @Summary Generate questions from the canned bank
// @Tags Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GenerateQuestionsRequest true "Job role, difficulty, count"
// @Success 201 {object} dto.QuestionsResponse
// @Router /questions/generate [post]
func (c *QuestionController) Generate(ctx *gin.Context) {
	var req dto.GenerateQuestionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("Invalid request body: "+err.Error()))
		return
	}

	resp, err := c.questionService.Generate(middleware.Principal(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// pathID parses an unsigned id path parameter, answering 400 on garbage.
func pathID(ctx *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("Invalid "+name+" format"))
		return 0, false
	}
	return uint(value), true
}
