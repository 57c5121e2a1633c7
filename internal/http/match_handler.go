package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"talent-match/internal/domain"
	"talent-match/internal/repository"
	"talent-match/internal/service"
)

// MatchHandler expone puestos, rankings y el ensamble de personalidad.
type MatchHandler struct {
	logger    *zap.Logger
	employees repository.EmployeeRepository
	jobs      repository.JobRepository
	matcher   *service.JobMatcher
}

func NewMatchHandler(logger *zap.Logger, employees repository.EmployeeRepository, jobs repository.JobRepository, matcher *service.JobMatcher) *MatchHandler {
	return &MatchHandler{
		logger:    logger,
		employees: employees,
		jobs:      jobs,
		matcher:   matcher,
	}
}

// ListJobs maneja GET /jobs.
func (h *MatchHandler) ListJobs(c *gin.Context) {
	list, err := h.jobs.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "could not list jobs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": list})
}

// GetJob maneja GET /jobs/:id.
func (h *MatchHandler) GetJob(c *gin.Context) {
	job, err := h.jobs.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "could not load job")
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

// GetMatch maneja GET /matches/:employeeID/:jobID.
func (h *MatchHandler) GetMatch(c *gin.Context) {
	ctx := c.Request.Context()
	employee, err := h.employees.GetByID(ctx, c.Param("employeeID"))
	if err != nil {
		respondError(c, h.logger, err, "could not load employee")
		return
	}
	job, err := h.jobs.GetByID(ctx, c.Param("jobID"))
	if err != nil {
		respondError(c, h.logger, err, "could not load job")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"match":   h.matcher.Match(ctx, employee, job),
		"summary": service.GenerateSummaryReason(employee, job),
	})
}

// RankJobsForEmployee maneja GET /employees/:id/matches.
func (h *MatchHandler) RankJobsForEmployee(c *gin.Context) {
	ctx := c.Request.Context()
	employee, err := h.employees.GetByID(ctx, c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "could not load employee")
		return
	}
	jobs, err := h.jobs.List(ctx)
	if err != nil {
		respondError(c, h.logger, err, "could not list jobs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": h.matcher.RankJobs(ctx, employee, jobs)})
}

// RankCandidatesForJob maneja GET /jobs/:id/candidates.
func (h *MatchHandler) RankCandidatesForJob(c *gin.Context) {
	ctx := c.Request.Context()
	job, err := h.jobs.GetByID(ctx, c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "could not load job")
		return
	}
	employees, err := h.employees.List(ctx)
	if err != nil {
		respondError(c, h.logger, err, "could not list employees")
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": h.matcher.RankCandidates(ctx, job, employees)})
}

// ScorePersonality maneja POST /personality/match con perfiles arbitrarios.
func (h *MatchHandler) ScorePersonality(c *gin.Context) {
	var req struct {
		Candidate domain.PersonalityProfile `json:"candidate"`
		Target    domain.IdealPersonality   `json:"target"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid personality match request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"match": service.CalculatePersonalityMatch(req.Candidate, req.Target)})
}

// GetMBTIDescription maneja GET /mbti/:type.
func (h *MatchHandler) GetMBTIDescription(c *gin.Context) {
	t, ok := domain.ParseMBTIType(c.Param("type"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown mbti type"})
		return
	}
	desc, _ := service.GetMBTIDescription(t)
	c.JSON(http.StatusOK, gin.H{"type": t, "description": desc})
}
