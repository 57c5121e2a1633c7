package seed

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"talent-match/internal/domain"
	"talent-match/internal/service"
)

var (
	rosterNames = []string{
		"James Wilson", "Emma Davis", "Alex Kim", "Sofia Rodriguez", "Liam O'Connor",
		"Olivia Martinez", "Noah Brown", "Ava Taylor", "Ethan Anderson", "Mia Thomas",
		"Lucas Jackson", "Isabella White", "Mason Harris", "Charlotte Martin", "Logan Thompson",
		"Amelia Garcia", "Jackson Lee", "Harper Walker", "Aiden Hall", "Evelyn Allen",
	}
	rosterTitles = []string{
		"Software Engineer", "Senior Software Engineer", "Product Manager", "Data Scientist",
		"DevOps Engineer", "Frontend Developer", "Backend Developer", "QA Engineer",
		"Security Engineer", "Cloud Architect", "Site Reliability Engineer", "Tech Lead",
	}
	rosterCompanies = []string{
		"TechCorp Inc.", "InnovateTech", "CloudSystems", "DataFlow", "WebScale",
		"CodeCraft", "DigitalWorks", "SmartSolutions", "FutureTech", "DevHub",
	}
	rosterLocations = []string{
		"San Francisco, CA", "New York, NY", "Austin, TX", "Seattle, WA", "Boston, MA",
	}
	rosterSkills = []string{
		"JavaScript", "Python", "Java", "TypeScript", "React", "Go", "Node.js", "Django",
		"Docker", "Kubernetes", "AWS", "Terraform", "PostgreSQL", "MongoDB", "Redis",
		"GraphQL", "REST API", "Microservices",
	}
	skillLevels = []domain.SkillLevel{
		domain.SkillBeginner, domain.SkillIntermediate, domain.SkillAdvanced, domain.SkillExpert,
	}
	rosterAchievements = []string{
		"Delivered key features on time",
		"Collaborated with cross-functional teams",
		"Improved system performance",
	}
)

// rosterEmployee genera el empleado i del roster; el ID es estable (emp-004, emp-005, ...).
func rosterEmployee(gen *service.TraitGenerator, rng service.RandomSource, i int) domain.EmployeeProfile {
	name := rosterNames[i%len(rosterNames)]
	if i >= len(rosterNames) {
		name = fmt.Sprintf("%s %d", name, i/len(rosterNames)+1)
	}
	title := rosterTitles[rng.Intn(len(rosterTitles))]
	company := rosterCompanies[rng.Intn(len(rosterCompanies))]
	id := fmt.Sprintf("emp-%03d", i+4)

	skills := randomSkills(rng, 4+rng.Intn(4))
	skillNames := make([]string, 0, 3)
	for _, s := range skills[:3] {
		skillNames = append(skillNames, s.Name)
	}

	start := date(2020, time.January, 1).AddDate(0, rng.Intn(36), 0)
	var end *time.Time
	if rng.Float64() < 0.3 {
		e := start.AddDate(1, rng.Intn(12), 0)
		end = &e
	}

	return domain.EmployeeProfile{
		ID: id,
		PersonalInfo: domain.PersonalInfo{
			Name:     name,
			Email:    strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(name, "'", ""), " ", ".")) + "@example.com",
			Location: rosterLocations[rng.Intn(len(rosterLocations))],
			Title:    title,
			Bio:      fmt.Sprintf("Experienced %s with passion for building great products.", strings.ToLower(title)),
		},
		Personality: gen.GeneratePersonalityProfile("", domain.PartialBigFive{}, domain.PartialDISC{}),
		Skills:      skills,
		Interests: []domain.Interest{
			{Category: "Technology", Topics: skillNames, Intensity: 60 + rng.Intn(35)},
		},
		WorkExperience: []domain.WorkExperience{
			{
				ID:           id + "-exp-1",
				Company:      company,
				Position:     title,
				StartDate:    start,
				EndDate:      end,
				Description:  fmt.Sprintf("Working as %s at %s.", strings.ToLower(title), company),
				Achievements: append([]string(nil), rosterAchievements...),
				Skills:       skillNames,
			},
		},
		Preferences: domain.Preferences{
			RemoteWork:          rng.Float64() > 0.3,
			WillingToRelocate:   rng.Float64() > 0.5,
			PreferredRoles:      []string{title},
			PreferredIndustries: []string{"Technology", "SaaS"},
			MinimumSalary:       domain.IntPtr(80000 + rng.Intn(120000)),
		},
	}
}

// randomSkills toma n skills distintos con un Fisher-Yates parcial.
func randomSkills(rng service.RandomSource, n int) []domain.Skill {
	pool := append([]string(nil), rosterSkills...)
	n = min(n, len(pool))
	out := make([]domain.Skill, 0, n)
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
		out = append(out, domain.Skill{
			Name:              pool[i],
			Level:             skillLevels[rng.Intn(len(skillLevels))],
			YearsOfExperience: 1 + rng.Intn(8),
			Verified:          rng.Float64() > 0.3,
		})
	}
	return out
}

// SynthesizeRequest fija las partes conocidas de un perfil sintetico.
type SynthesizeRequest struct {
	Name     string                `json:"name"`
	Title    string                `json:"title"`
	MBTIType domain.MBTIType       `json:"mbti_type"`
	BigFive  domain.PartialBigFive `json:"big_five"`
	DISC     domain.PartialDISC    `json:"disc"`
	Skills   []string              `json:"skills"`
}

// Synthesize arma un empleado nuevo con ID uuid y personalidad generada.
func Synthesize(gen *service.TraitGenerator, rng service.RandomSource, req SynthesizeRequest) domain.EmployeeProfile {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = rosterNames[rng.Intn(len(rosterNames))]
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = rosterTitles[rng.Intn(len(rosterTitles))]
	}

	// acepta minusculas y espacios; un tipo no reconocido lo sortea el generador
	mbtiType, _ := domain.ParseMBTIType(string(req.MBTIType))

	var skills []domain.Skill
	for _, s := range req.Skills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, domain.Skill{Name: s, Level: domain.SkillIntermediate, YearsOfExperience: 1})
		}
	}
	if len(skills) == 0 {
		skills = randomSkills(rng, 4)
	}

	return domain.EmployeeProfile{
		ID: uuid.NewString(),
		PersonalInfo: domain.PersonalInfo{
			Name:  name,
			Title: title,
		},
		Personality: gen.GeneratePersonalityProfile(mbtiType, req.BigFive, req.DISC),
		Skills:      skills,
		Preferences: domain.Preferences{PreferredRoles: []string{title}},
	}
}
