package service

import (
	"fmt"
	"regexp"
	"strings"

	"talent-match/internal/domain"
)

const maxPlainEnglishReasons = 4

// reasonRule inspecciona un par empleado/puesto y opcionalmente emite una razon con evidencia.
type reasonRule func(employee domain.EmployeeProfile, job domain.Job) (domain.MatchReason, bool)

// Orden fijo de evaluacion; el resultado respeta este orden.
var plainEnglishRules = []reasonRule{
	skillBackedByProjectRule,
	leadershipRule,
	quantifiedImpactRule,
	industryOverlapRule,
	userImpactRule,
	collaborationReviewRule,
	problemSolvingRule,
	cultureReviewRule,
	scaleRule,
}

var (
	quantifiedPattern = regexp.MustCompile(`\d+(\.\d+)?%|\b\d+(\.\d+)?x\b|\d+\+`)

	leadershipRoleSignals    = []string{"senior", "lead", "mentor"}
	leadershipAchievements   = []string{"mentor", "lead", "trained"}
	industryKeywords         = []string{"saas", "platform", "cloud", "infrastructure"}
	userImpactKeywords       = []string{"user", "performance", "revenue", "efficiency"}
	collaborationJobSignals  = []string{"collaborat", "team", "cross-functional"}
	collaborationReviewWords = []string{"collaborat", "team"}
	problemSolvingWords      = []string{"optimized", "reduced", "improved", "solved"}
	cultureReviewWords       = []string{"culture", "value", "attitude"}
	scaleJobSignals          = []string{"scale", "million"}
	scaleAchievementWords    = []string{"million", "scale", "thousands"}
)

// GeneratePlainEnglishReasons evalua la bateria de reglas en orden y devuelve hasta 4 razones.
// Si ninguna regla aplica devuelve una lista vacia; el fallback generico queda en manos del llamador.
func GeneratePlainEnglishReasons(employee domain.EmployeeProfile, job domain.Job) []domain.MatchReason {
	reasons := make([]domain.MatchReason, 0, maxPlainEnglishReasons)
	for _, rule := range plainEnglishRules {
		if len(reasons) == maxPlainEnglishReasons {
			break
		}
		if reason, ok := rule(employee, job); ok {
			reasons = append(reasons, reason)
		}
	}
	return reasons
}

// GenerateSummaryReason produce una sola linea para vistas compactas.
func GenerateSummaryReason(employee domain.EmployeeProfile, job domain.Job) string {
	var shared []string
	for _, s := range employee.Skills {
		for _, js := range job.Skills {
			if sameName(s.Name, js.Name) {
				shared = append(shared, s.Name)
				break
			}
		}
		if len(shared) == 2 {
			break
		}
	}

	switch len(shared) {
	case 2:
		return fmt.Sprintf("%s + %s expertise matches team needs", shared[0], shared[1])
	case 1:
		return fmt.Sprintf("%s experience aligns with role", shared[0])
	}

	bf := employee.Personality.BigFive
	switch {
	case bf.Openness > 75:
		return "Innovative mindset fits their culture"
	case bf.Conscientiousness > 75:
		return "Detail-oriented approach matches requirements"
	case bf.Agreeableness > 75:
		return "Collaborative style fits team dynamic"
	}
	return "Experience and skills align well"
}

func skillBackedByProjectRule(employee domain.EmployeeProfile, job domain.Job) (domain.MatchReason, bool) {
	for _, js := range job.Skills {
		if !hasSkill(employee, js.Name) {
			continue
		}
		skill := normalize(strings.TrimSpace(js.Name))
		for _, p := range employee.Projects {
			for _, tech := range p.Technologies {
				if strings.Contains(normalize(tech), skill) {
					return domain.MatchReason{
						Point:    fmt.Sprintf("Hands-on %s experience the role asks for", js.Name),
						Evidence: fmt.Sprintf("Built %s using %s", p.Title, tech),
					}, true
				}
			}
		}
	}
	return domain.MatchReason{}, false
}

func leadershipRule(employee domain.EmployeeProfile, job domain.Job) (domain.MatchReason, bool) {
	roleText := normalize(job.Title + " " + strings.Join(job.Responsibilities, " "))
	if !containsAny(roleText, leadershipRoleSignals) {
		return domain.MatchReason{}, false
	}
	for _, exp := range employee.WorkExperience {
		for _, a := range exp.Achievements {
			if containsAny(normalize(a), leadershipAchievements) {
				return domain.MatchReason{
					Point:    "Proven mentorship and leadership from past roles",
					Evidence: fmt.Sprintf("%s at %s", a, exp.Company),
				}, true
			}
		}
	}
	return domain.MatchReason{}, false
}

func quantifiedImpactRule(employee domain.EmployeeProfile, _ domain.Job) (domain.MatchReason, bool) {
	for _, a := range allAchievements(employee) {
		if quantifiedPattern.MatchString(a) {
			return domain.MatchReason{
				Point:    "Delivers measurable, quantified impact",
				Evidence: a,
			}, true
		}
	}
	return domain.MatchReason{}, false
}

func industryOverlapRule(employee domain.EmployeeProfile, job domain.Job) (domain.MatchReason, bool) {
	desc := normalize(job.Description)
	for _, exp := range employee.WorkExperience {
		background := normalize(exp.Position + " " + exp.Company)
		for _, kw := range industryKeywords {
			if strings.Contains(desc, kw) && strings.Contains(background, kw) {
				return domain.MatchReason{
					Point:    fmt.Sprintf("Background in %s work similar to theirs", kw),
					Evidence: fmt.Sprintf("%s at %s", exp.Position, exp.Company),
				}, true
			}
		}
	}
	return domain.MatchReason{}, false
}

func userImpactRule(employee domain.EmployeeProfile, job domain.Job) (domain.MatchReason, bool) {
	if !strings.Contains(normalize(job.Description), "user") {
		return domain.MatchReason{}, false
	}
	for _, p := range employee.Projects {
		for _, a := range p.Achievements {
			if containsAny(normalize(a), userImpactKeywords) {
				return domain.MatchReason{
					Point:    "Ships work that moves user and business outcomes",
					Evidence: fmt.Sprintf("%s: %s", p.Title, a),
				}, true
			}
		}
	}
	return domain.MatchReason{}, false
}

func collaborationReviewRule(employee domain.EmployeeProfile, job domain.Job) (domain.MatchReason, bool) {
	if !containsAny(jobText(job), collaborationJobSignals) {
		return domain.MatchReason{}, false
	}
	return reviewQuote(employee, collaborationReviewWords, 60, "Colleagues call out strong collaboration")
}

func problemSolvingRule(employee domain.EmployeeProfile, job domain.Job) (domain.MatchReason, bool) {
	if !strings.Contains(normalize(job.Description), "optimiz") {
		return domain.MatchReason{}, false
	}
	for _, exp := range employee.WorkExperience {
		for _, a := range exp.Achievements {
			if containsAny(normalize(a), problemSolvingWords) {
				return domain.MatchReason{
					Point:    "Track record of solving hard optimization problems",
					Evidence: fmt.Sprintf("%s at %s", a, exp.Company),
				}, true
			}
		}
	}
	return domain.MatchReason{}, false
}

func cultureReviewRule(employee domain.EmployeeProfile, job domain.Job) (domain.MatchReason, bool) {
	if !strings.Contains(normalize(job.Description), "culture") {
		return domain.MatchReason{}, false
	}
	return reviewQuote(employee, cultureReviewWords, 50, "Recognized for adding to team culture")
}

func scaleRule(employee domain.EmployeeProfile, job domain.Job) (domain.MatchReason, bool) {
	if !containsAny(normalize(job.Description), scaleJobSignals) {
		return domain.MatchReason{}, false
	}
	for _, a := range allAchievements(employee) {
		if containsAny(normalize(a), scaleAchievementWords) {
			return domain.MatchReason{
				Point:    "Has operated systems at real scale",
				Evidence: a,
			}, true
		}
	}
	return domain.MatchReason{}, false
}

func reviewQuote(employee domain.EmployeeProfile, words []string, limit int, point string) (domain.MatchReason, bool) {
	for _, r := range employee.Reviews {
		if containsAny(normalize(r.Comment), words) {
			return domain.MatchReason{
				Point:    point,
				Evidence: fmt.Sprintf("\"%s\" - %s", truncateQuote(r.Comment, limit), r.ReviewerName),
			}, true
		}
	}
	return domain.MatchReason{}, false
}

func hasSkill(employee domain.EmployeeProfile, name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	for _, s := range employee.Skills {
		if sameName(s.Name, name) {
			return true
		}
	}
	return false
}

// allAchievements recorre primero la experiencia laboral y luego los proyectos.
func allAchievements(employee domain.EmployeeProfile) []string {
	var out []string
	for _, exp := range employee.WorkExperience {
		out = append(out, exp.Achievements...)
	}
	for _, p := range employee.Projects {
		out = append(out, p.Achievements...)
	}
	return out
}

func jobText(job domain.Job) string {
	parts := []string{job.Description}
	parts = append(parts, job.Responsibilities...)
	parts = append(parts, job.Requirements.Required...)
	parts = append(parts, job.Requirements.Preferred...)
	return normalize(strings.Join(parts, " "))
}
