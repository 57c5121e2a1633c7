package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"talent-match/internal/repository"
	"talent-match/internal/seed"
	"talent-match/internal/service"
)

// EmployeeHandler mantiene dependencias para endpoints de empleados.
type EmployeeHandler struct {
	logger    *zap.Logger
	employees repository.EmployeeRepository
	generator *service.TraitGenerator
	rng       service.RandomSource
}

func NewEmployeeHandler(logger *zap.Logger, employees repository.EmployeeRepository, generator *service.TraitGenerator, rng service.RandomSource) *EmployeeHandler {
	return &EmployeeHandler{
		logger:    logger,
		employees: employees,
		generator: generator,
		rng:       rng,
	}
}

// ListEmployees maneja GET /employees.
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	list, err := h.employees.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "could not list employees")
		return
	}
	c.JSON(http.StatusOK, gin.H{"employees": list})
}

// GetEmployee maneja GET /employees/:id.
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	e, err := h.employees.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "could not load employee")
		return
	}
	c.JSON(http.StatusOK, gin.H{"employee": e})
}

// GetInsights maneja GET /employees/:id/insights.
func (h *EmployeeHandler) GetInsights(c *gin.Context) {
	e, err := h.employees.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "could not load employee")
		return
	}
	p := e.Personality
	resp := gin.H{
		"employee_id": e.ID,
		"big_five":    service.GetBigFiveInsights(p.BigFive),
		"disc":        service.GetDISCInsights(p.DISC),
		"disc_style":  service.DominantDISCStyle(p.DISC),
	}
	if desc, ok := service.GetMBTIDescription(p.MBTI.Type); ok {
		resp["mbti"] = desc
	}
	c.JSON(http.StatusOK, resp)
}

// SynthesizeEmployee maneja POST /employees/synthesize.
func (h *EmployeeHandler) SynthesizeEmployee(c *gin.Context) {
	var req seed.SynthesizeRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warn("invalid synthesize request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
	}

	e := seed.Synthesize(h.generator, h.rng, req)
	if err := h.employees.Upsert(c.Request.Context(), e); err != nil {
		respondError(c, h.logger, err, "could not store employee")
		return
	}
	h.logger.Info("employee synthesized", zap.String("employee_id", e.ID), zap.String("mbti", string(e.Personality.MBTI.Type)))
	c.JSON(http.StatusCreated, gin.H{"employee": e})
}
