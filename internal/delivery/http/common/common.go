package http_common

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/humanbelnik/movierama/core/internal/model"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type DataResponse struct {
	Data any `json:"data"`
}

const genericErrorMessage = "Something went wrong!"

// RespondError maps a usecase failure onto the API's two error shapes:
// business-rule violations become a 400 carrying their client-safe
// message, everything else becomes a generic 500 with the detail kept
// in the server log.
func RespondError(ctx *gin.Context, logger *slog.Logger, err error) {
	var rule *model.RuleError
	if errors.As(err, &rule) {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: rule.Message})
		return
	}

	logger.Error("request failed",
		slog.String("method", ctx.Request.Method),
		slog.String("path", ctx.Request.URL.Path),
		slog.String("error", err.Error()),
	)
	ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: genericErrorMessage})
}
