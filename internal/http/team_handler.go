package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"talent-match/internal/repository"
	"talent-match/internal/service"
)

// TeamHandler expone analitica de equipos.
type TeamHandler struct {
	logger    *zap.Logger
	teams     repository.TeamRepository
	employees repository.EmployeeRepository
}

func NewTeamHandler(logger *zap.Logger, teams repository.TeamRepository, employees repository.EmployeeRepository) *TeamHandler {
	return &TeamHandler{logger: logger, teams: teams, employees: employees}
}

// ListTeams maneja GET /teams.
func (h *TeamHandler) ListTeams(c *gin.Context) {
	list, err := h.teams.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "could not list teams")
		return
	}
	c.JSON(http.StatusOK, gin.H{"teams": list})
}

// GetDynamics maneja GET /teams/:id/dynamics.
func (h *TeamHandler) GetDynamics(c *gin.Context) {
	ctx := c.Request.Context()
	team, err := h.teams.GetByID(ctx, c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "could not load team")
		return
	}
	members, err := h.employees.GetMany(ctx, team.MemberIDs())
	if err != nil {
		respondError(c, h.logger, err, "could not load team members")
		return
	}
	c.JSON(http.StatusOK, gin.H{"dynamics": service.AnalyzeTeam(team, members)})
}

// SimulateAddition maneja GET /teams/:id/simulate/:employeeID.
func (h *TeamHandler) SimulateAddition(c *gin.Context) {
	ctx := c.Request.Context()
	team, err := h.teams.GetByID(ctx, c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "could not load team")
		return
	}
	candidate, err := h.employees.GetByID(ctx, c.Param("employeeID"))
	if err != nil {
		respondError(c, h.logger, err, "could not load candidate")
		return
	}
	for _, id := range team.MemberIDs() {
		if id == candidate.ID {
			c.JSON(http.StatusConflict, gin.H{"error": "employee already on team"})
			return
		}
	}
	members, err := h.employees.GetMany(ctx, team.MemberIDs())
	if err != nil {
		respondError(c, h.logger, err, "could not load team members")
		return
	}
	c.JSON(http.StatusOK, gin.H{"simulation": service.SimulateAddition(team, members, candidate)})
}
