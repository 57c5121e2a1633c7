package domain

import (
	"strings"
	"time"
)

type RemotePolicy string

const (
	RemotePolicyRemote RemotePolicy = "remote"
	RemotePolicyHybrid RemotePolicy = "hybrid"
	RemotePolicyOnsite RemotePolicy = "onsite"
)

type JobSkill struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
}

type JobRequirements struct {
	Required  []string `json:"required"`
	Preferred []string `json:"preferred"`
}

type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

type Job struct {
	ID               string           `json:"id"`
	CompanyID        string           `json:"company_id"`
	Title            string           `json:"title"`
	Department       string           `json:"department"`
	Location         string           `json:"location"`
	Type             string           `json:"type"` // full-time, part-time, contract, internship
	RemotePolicy     RemotePolicy     `json:"remote_policy"`
	Description      string           `json:"description"`
	Responsibilities []string         `json:"responsibilities"`
	Requirements     JobRequirements  `json:"requirements"`
	Skills           []JobSkill       `json:"skills"`
	SalaryRange      SalaryRange      `json:"salary_range"`
	PostedDate       time.Time        `json:"posted_date"`
	IdealPersonality IdealPersonality `json:"ideal_personality"`
	TeamID           string           `json:"team_id,omitempty"`
}

// RequiredSkills devuelve los nombres de skills marcados como obligatorios.
func (j Job) RequiredSkills() []string {
	var out []string
	for _, s := range j.Skills {
		if s.Required && strings.TrimSpace(s.Name) != "" {
			out = append(out, s.Name)
		}
	}
	return out
}
