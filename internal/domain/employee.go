package domain

import "time"

// SkillLevel es un enum ordenado: beginner < intermediate < advanced < expert.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillExpert       SkillLevel = "expert"
)

// Rank devuelve la posicion del nivel; 0 para valores desconocidos.
func (l SkillLevel) Rank() int {
	switch l {
	case SkillBeginner:
		return 1
	case SkillIntermediate:
		return 2
	case SkillAdvanced:
		return 3
	case SkillExpert:
		return 4
	}
	return 0
}

// AtLeast compara niveles segun su orden.
func (l SkillLevel) AtLeast(other SkillLevel) bool {
	return l.Rank() >= other.Rank()
}

type Skill struct {
	Name              string     `json:"name"`
	Level             SkillLevel `json:"level"`
	YearsOfExperience int        `json:"years_of_experience"`
	Verified          bool       `json:"verified"`
}

type Interest struct {
	Category  string   `json:"category"`
	Topics    []string `json:"topics"`
	Intensity int      `json:"intensity"`
}

// Project es un proyecto personal o laboral; EndDate nil significa en curso.
type Project struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Role         string     `json:"role"`
	Technologies []string   `json:"technologies"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Achievements []string   `json:"achievements"`
	URL          string     `json:"url,omitempty"`
}

func (p Project) Ongoing() bool { return p.EndDate == nil }

// WorkExperience es un puesto previo o actual; EndDate nil significa actual.
type WorkExperience struct {
	ID           string     `json:"id"`
	Company      string     `json:"company"`
	Position     string     `json:"position"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Description  string     `json:"description"`
	Achievements []string   `json:"achievements"`
	Skills       []string   `json:"skills"`
}

func (w WorkExperience) Ongoing() bool { return w.EndDate == nil }

type Review struct {
	ID               string    `json:"id"`
	ReviewerName     string    `json:"reviewer_name"`
	ReviewerPosition string    `json:"reviewer_position"`
	ReviewerCompany  string    `json:"reviewer_company"`
	Rating           int       `json:"rating"` // 1-5
	Comment          string    `json:"comment"`
	Skills           []string  `json:"skills"`
	Date             time.Time `json:"date"`
	Verified         bool      `json:"verified"`
}

type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Location string `json:"location"`
	Title    string `json:"title"`
	Bio      string `json:"bio,omitempty"`
}

type Preferences struct {
	RemoteWork          bool     `json:"remote_work"`
	WillingToRelocate   bool     `json:"willing_to_relocate"`
	PreferredRoles      []string `json:"preferred_roles"`
	PreferredIndustries []string `json:"preferred_industries"`
	MinimumSalary       *int     `json:"minimum_salary,omitempty"`
}

// EmployeeProfile es dueño exclusivo de su PersonalityProfile.
type EmployeeProfile struct {
	ID             string             `json:"id"`
	PersonalInfo   PersonalInfo       `json:"personal_info"`
	Personality    PersonalityProfile `json:"personality"`
	Skills         []Skill            `json:"skills"`
	Interests      []Interest         `json:"interests"`
	WorkExperience []WorkExperience   `json:"work_experience"`
	Projects       []Project          `json:"projects"`
	Reviews        []Review           `json:"reviews"`
	Preferences    Preferences        `json:"preferences"`
}
