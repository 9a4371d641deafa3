package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taskhub-dev/taskhub/internal/services"
	"gorm.io/datatypes"
)

func statusForKind(kind services.Kind) int {
	switch kind {
	case services.KindValidation:
		return http.StatusBadRequest
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindUnauthorized:
		return http.StatusForbidden
	case services.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError maps a domain error to its status code; anything else is a 500.
func respondError(ctx *gin.Context, err error) {
	var domainErr *services.Error

	if errors.As(err, &domainErr) {
		ctx.JSON(statusForKind(domainErr.Kind), gin.H{"error": domainErr.Message})
		return
	}

	slog.ErrorContext(ctx.Request.Context(), "unexpected error", "error", err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

const dateLayout = "2006-01-02"

// parseDate converts a yyyy-mm-dd string into a date column value. An empty
// string means the field was not supplied.
func parseDate(value string) (*datatypes.Date, error) {
	if value == "" {
		return nil, nil
	}

	t, err := time.Parse(dateLayout, value)

	if err != nil {
		return nil, err
	}

	date := datatypes.Date(t)
	return &date, nil
}
