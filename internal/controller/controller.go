package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/preptalk/preptalk/internal/apperror"
	"github.com/preptalk/preptalk/internal/dto"
	"github.com/rs/zerolog/log"
)

// respondError converts a service error into the uniform failure envelope.
// Internal errors are logged with detail but surfaced with a generic
// message.
func respondError(ctx *gin.Context, err error) {
	status := apperror.StatusCode(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Request failed")
		ctx.JSON(status, dto.Error("Internal server error"))
		return
	}
	ctx.JSON(status, dto.Error(err.Error()))
}
