package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"talent-match/internal/domain"
	"talent-match/internal/repository"
	"talent-match/internal/service"
)

// AssessmentHandler expone los cuestionarios y el flujo de resultados.
type AssessmentHandler struct {
	logger  *zap.Logger
	svc     *service.AssessmentService
	results repository.AssessmentRepository
}

func NewAssessmentHandler(logger *zap.Logger, svc *service.AssessmentService, results repository.AssessmentRepository) *AssessmentHandler {
	return &AssessmentHandler{logger: logger, svc: svc, results: results}
}

// GetQuestions maneja GET /assessments/:framework/questions.
func (h *AssessmentHandler) GetQuestions(c *gin.Context) {
	framework := domain.Framework(c.Param("framework"))
	qs, err := service.Questions(framework)
	if err != nil {
		respondError(c, h.logger, err, "could not load questions")
		return
	}
	c.JSON(http.StatusOK, gin.H{"framework": framework, "questions": qs})
}

// Submit maneja POST /assessments/:framework.
func (h *AssessmentHandler) Submit(c *gin.Context) {
	var req struct {
		EmployeeID string         `json:"employee_id" binding:"required"`
		Answers    map[string]int `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid assessment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.svc.Submit(c.Request.Context(), req.EmployeeID, domain.Framework(c.Param("framework")), req.Answers)
	if err != nil {
		respondError(c, h.logger, err, "could not score assessment")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"result": result})
}

// GetResult maneja GET /assessment-results/:id.
func (h *AssessmentHandler) GetResult(c *gin.Context) {
	result, err := h.results.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "could not load assessment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

// Merge maneja POST /assessment-results/:id/merge.
func (h *AssessmentHandler) Merge(c *gin.Context) {
	employee, err := h.svc.MergeIntoProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "could not merge assessment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"employee": employee})
}
