package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"talent-match/internal/repository"
	"talent-match/internal/service"
)

// respondError traduce errores de servicio/repositorio a codigos HTTP.
func respondError(c *gin.Context, logger *zap.Logger, err error, msg string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrUnknownFramework),
		errors.Is(err, service.ErrIncompleteAssessment),
		errors.Is(err, service.ErrInvalidAnswer),
		errors.Is(err, service.ErrInvalidEmployee),
		errors.Is(err, repository.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(msg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}
