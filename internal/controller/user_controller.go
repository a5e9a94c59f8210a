package controller

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/preptalk/preptalk/internal/dto"
	"github.com/preptalk/preptalk/internal/middleware"
	"github.com/preptalk/preptalk/internal/service"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetProfile godoc
// @Summary Get own profile
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /users/me [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	resp, err := c.userService.GetProfile(middleware.Principal(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateProfile godoc
// @Summary Update own profile
// @Description Patches the calling user's record; empty fields keep their stored value.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param patch body dto.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /users/me [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("Invalid request body: "+err.Error()))
		return
	}

	resp, err := c.userService.UpdateProfile(middleware.Principal(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UploadResume godoc
// @Summary Upload a resume
// @Description Accepts a PDF or Word document and attaches its stored path to the profile.
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Resume file"
// @Success 200 {object} dto.UploadResponse
// @Failure 413 {object} dto.ErrorResponse "File exceeds 50MB"
// @Failure 415 {object} dto.ErrorResponse "Disallowed MIME type"
// @Router /users/me/resume [post]
func (c *UserController) UploadResume(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("Missing file in multipart form"))
		return
	}
	file, err := header.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("Could not read uploaded file"))
		return
	}
	defer file.Close()

	path, err := c.userService.AttachResume(
		ctx.Request.Context(), middleware.Principal(ctx),
		file, header.Size, contentType(header), header.Filename,
	)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.UploadResponse{Success: true, Path: path})
}

// UploadAvatar godoc
// @Summary Upload a profile picture
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file"
// @Success 200 {object} dto.UploadResponse
// @Failure 415 {object} dto.ErrorResponse "Disallowed MIME type"
// @Router /users/me/avatar [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("Missing file in multipart form"))
		return
	}
	file, err := header.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("Could not read uploaded file"))
		return
	}
	defer file.Close()

	path, err := c.userService.AttachAvatar(
		ctx.Request.Context(), middleware.Principal(ctx),
		file, header.Size, contentType(header), header.Filename,
	)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.UploadResponse{Success: true, Path: path})
}

func contentType(header *multipart.FileHeader) string {
	return header.Header.Get("Content-Type")
}
