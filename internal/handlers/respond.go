// Package handlers binds HTTP requests, invokes the core, and writes the
// uniform response envelope. Success bodies are {"success":true,"data":...};
// failures are {"success":false,"error":{"code","message"}} and consumers
// match on the code, never the message.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/upcheck-dev/upcheck/internal/apperr"
)

func respondSuccess(ctx *gin.Context, status int, data interface{}) {
	ctx.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondError maps taxonomy errors to their status category. Anything else
// is an unexpected store failure: logged, surfaced as a generic internal
// error.
func respondError(ctx *gin.Context, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		ctx.JSON(appErr.Status, gin.H{
			"success": false,
			"error":   gin.H{"code": appErr.Code, "message": appErr.Message},
		})
		return
	}

	log.WithError(err).Error("unexpected error handling request")

	ctx.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   gin.H{"code": apperr.CodeInternal, "message": "Internal server error"},
	})
}

func respondValidation(ctx *gin.Context, message string) {
	respondError(ctx, apperr.Validation(message))
}

func errUnauthenticated() error {
	return apperr.ErrUnauthorized()
}

// pathID parses a numeric path parameter. A malformed id is a validation
// failure, not a not-found.
func pathID(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		respondValidation(ctx, "Invalid "+name)
		return 0, false
	}

	return uint(id), true
}
