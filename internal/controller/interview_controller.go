package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/preptalk/preptalk/internal/dto"
	"github.com/preptalk/preptalk/internal/middleware"
	"github.com/preptalk/preptalk/internal/service"
	"github.com/rs/zerolog/log"
)

type InterviewController struct {
	interviewService service.InterviewService
}

func NewInterviewController(interviewService service.InterviewService) *InterviewController {
	return &InterviewController{interviewService: interviewService}
}

// Create godoc
// @Summary Start an interview session
// @Description Builds a session with one empty slot per question id, in order.
// @Tags Interviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session body dto.CreateInterviewRequest true "Title, job role, question ids, mode"
// @Success 201 {object} dto.InterviewResponse
// @Failure 400 {object} dto.ErrorResponse "Empty question list"
// @Router /interviews [post]
func (c *InterviewController) Create(ctx *gin.Context) {
	var req dto.CreateInterviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("Invalid request body: "+err.Error()))
		return
	}

	resp, err := c.interviewService.Create(middleware.Principal(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	log.Info().Uint("interviewID", resp.Interview.ID).Int("slots", len(resp.Interview.Slots)).Msg("Interview created")
	ctx.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary List own interview sessions
// @Description Newest first, with question display fields resolved.
// @Tags Interviews
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.InterviewListResponse
// @Router /interviews [get]
func (c *InterviewController) List(ctx *gin.Context) {
	resp, err := c.interviewService.ListForUser(middleware.Principal(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Get one interview session
// @Description Owner or admin only; resolves sample answers too.
// @Tags Interviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Interview ID"
// @Success 200 {object} dto.InterviewResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /interviews/{id} [get]
func (c *InterviewController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	resp, err := c.interviewService.Get(middleware.Principal(ctx), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitAnswer godoc
// @Summary Submit an answer to one slot
// @Description Records the answer, scores it, and auto-completes the session once every slot is answered.
// @Tags Interviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Interview ID"
// @Param slotIndex path int true "Slot index (0-based)"
// @Param answer body dto.SubmitAnswerRequest true "Answer text and optional media URL"
// @Success 200 {object} dto.InterviewResponse
// @Failure 400 {object} dto.ErrorResponse "Slot index out of range"
// @Failure 403 {object} dto.ErrorResponse
// @Router /interviews/{id}/answer/{slotIndex} [put]
func (c *InterviewController) SubmitAnswer(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	slotIndex, err := strconv.Atoi(ctx.Param("slotIndex"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("Invalid slotIndex format"))
		return
	}
	var req dto.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("Invalid request body: "+err.Error()))
		return
	}

	resp, err := c.interviewService.SubmitAnswer(middleware.Principal(ctx), id, slotIndex, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Complete godoc
// @Summary Complete an interview session
// @Description Marks the session completed; the score averages only the answered slots.
// @Tags Interviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Interview ID"
// @Success 200 {object} dto.InterviewResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /interviews/{id}/complete [put]
func (c *InterviewController) Complete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	resp, err := c.interviewService.Complete(middleware.Principal(ctx), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Bookmark godoc
// @Summary Toggle the bookmark flag
// @Tags Interviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Interview ID"
// @Success 200 {object} dto.BookmarkResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /interviews/{id}/bookmark [put]
func (c *InterviewController) Bookmark(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	resp, err := c.interviewService.Bookmark(middleware.Principal(ctx), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Analytics godoc
// @Summary Performance analytics over completed sessions
// @Description Zeroed record when the principal has no completed sessions.
// @Tags Interviews
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AnalyticsResponse
// @Router /interviews/analytics [get]
func (c *InterviewController) Analytics(ctx *gin.Context) {
	resp, err := c.interviewService.Analytics(middleware.Principal(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
