package domain

import "time"

type TeamMember struct {
	EmployeeID string    `json:"employee_id"`
	Role       string    `json:"role"`
	JoinedDate time.Time `json:"joined_date"`
}

type Team struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Department  string       `json:"department"`
	ManagerID   string       `json:"manager_id"`
	Members     []TeamMember `json:"members"`
	Description string       `json:"description"`
	Goals       []string     `json:"goals"`
}

// MemberIDs devuelve los IDs de empleados del equipo en orden.
func (t Team) MemberIDs() []string {
	ids := make([]string, 0, len(t.Members))
	for _, m := range t.Members {
		ids = append(ids, m.EmployeeID)
	}
	return ids
}

const (
	InsightStrength    = "strength"
	InsightOpportunity = "opportunity"
	InsightWarning     = "warning"
)

type TeamInsight struct {
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type HiringRecommendation struct {
	Personality string `json:"personality"`
	Reasoning   string `json:"reasoning"`
	Impact      string `json:"impact"`
}

// TeamFitMetrics proyecta los rasgos a cinco dimensiones de equipo.
type TeamFitMetrics struct {
	Technical     int `json:"technical"`
	Collaboration int `json:"collaboration"`
	Innovation    int `json:"innovation"`
	Leadership    int `json:"leadership"`
	Execution     int `json:"execution"`
}

type TeamDynamics struct {
	TeamID                string                 `json:"team_id"`
	Size                  int                    `json:"size"`
	AverageBigFive        BigFiveTraits          `json:"average_big_five"`
	AverageDISC           DISCTraits             `json:"average_disc"`
	MBTIDistribution      map[MBTIType]int       `json:"mbti_distribution"`
	Diversity             int                    `json:"diversity"`
	Insights              []TeamInsight          `json:"insights"`
	HiringRecommendations []HiringRecommendation `json:"hiring_recommendations"`
	FitMetrics            TeamFitMetrics         `json:"fit_metrics"`
}

// TeamSimulation compara el equipo actual con el equipo mas un candidato.
type TeamSimulation struct {
	TeamID      string         `json:"team_id"`
	CandidateID string         `json:"candidate_id"`
	Current     TeamFitMetrics `json:"current"`
	Simulated   TeamFitMetrics `json:"simulated"`
	Impact      string         `json:"impact"`
}
