package service

import (
	"context"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"talent-match/internal/domain"
)

// Pesos del puntaje global de un JobMatch.
const (
	personalityComponentWeight = 0.35
	skillsComponentWeight      = 0.35
	interestsComponentWeight   = 0.15
	preferencesComponentWeight = 0.15

	interestsBase   = 70
	interestsSpread = 20
)

// fallbackReason se usa cuando ninguna regla del razonador encontro evidencia.
var fallbackReason = domain.MatchReason{
	Point:    "Good potential match",
	Evidence: "Skills and personality profile align with this role",
}

// JobMatcher envuelve el ensamble de personalidad con skills, intereses y preferencias.
type JobMatcher struct {
	rng    RandomSource
	cache  MatchCache
	logger *zap.Logger
}

func NewJobMatcher(rng RandomSource, cache MatchCache, logger *zap.Logger) *JobMatcher {
	if rng == nil {
		rng = NewRandomSource(0)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobMatcher{rng: rng, cache: cache, logger: logger}
}

// Match devuelve el JobMatch del par, usando el cache si esta configurado.
// Los errores de cache se registran y no interrumpen el calculo.
func (m *JobMatcher) Match(ctx context.Context, employee domain.EmployeeProfile, job domain.Job) domain.JobMatch {
	if m.cache != nil {
		cached, ok, err := m.cache.Get(ctx, employee.ID, job.ID)
		if err != nil {
			m.logger.Warn("match cache get failed", zap.Error(err), zap.String("employee_id", employee.ID), zap.String("job_id", job.ID))
		} else if ok {
			return cached
		}
	}

	match := m.compute(employee, job)

	if m.cache != nil {
		if err := m.cache.Set(ctx, match); err != nil {
			m.logger.Warn("match cache set failed", zap.Error(err), zap.String("employee_id", employee.ID), zap.String("job_id", job.ID))
		}
	}
	return match
}

func (m *JobMatcher) compute(employee domain.EmployeeProfile, job domain.Job) domain.JobMatch {
	personality := CalculatePersonalityMatch(employee.Personality, job.IdealPersonality)
	skills := SkillsMatch(employee, job)
	interests := m.InterestsMatch()
	preferences := PreferencesMatch(employee, job)

	overall := int(math.Round(
		float64(personality.Score)*personalityComponentWeight +
			float64(skills)*skillsComponentWeight +
			float64(interests)*interestsComponentWeight +
			float64(preferences)*preferencesComponentWeight,
	))

	reasoning := GeneratePlainEnglishReasons(employee, job)
	if len(reasoning) == 0 {
		reasoning = []domain.MatchReason{fallbackReason}
	}

	return domain.JobMatch{
		EmployeeID:       employee.ID,
		JobID:            job.ID,
		OverallScore:     overall,
		PersonalityMatch: personality,
		SkillsMatch:      skills,
		InterestsMatch:   interests,
		PreferencesMatch: preferences,
		Reasoning:        reasoning,
	}
}

// InterestsMatch es un placeholder aleatorio en [70,90) para una senal que no se modela.
func (m *JobMatcher) InterestsMatch() int {
	return interestsBase + m.rng.Intn(interestsSpread)
}

// RankJobs ordena los puestos para un empleado por puntaje descendente.
func (m *JobMatcher) RankJobs(ctx context.Context, employee domain.EmployeeProfile, jobs []domain.Job) []domain.JobMatch {
	matches := make([]domain.JobMatch, 0, len(jobs))
	for _, job := range jobs {
		matches = append(matches, m.Match(ctx, employee, job))
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].OverallScore != matches[j].OverallScore {
			return matches[i].OverallScore > matches[j].OverallScore
		}
		return matches[i].JobID < matches[j].JobID
	})
	return matches
}

// RankCandidates ordena empleados para un puesto por puntaje descendente.
func (m *JobMatcher) RankCandidates(ctx context.Context, job domain.Job, employees []domain.EmployeeProfile) []domain.JobMatch {
	matches := make([]domain.JobMatch, 0, len(employees))
	for _, e := range employees {
		matches = append(matches, m.Match(ctx, e, job))
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].OverallScore != matches[j].OverallScore {
			return matches[i].OverallScore > matches[j].OverallScore
		}
		return matches[i].EmployeeID < matches[j].EmployeeID
	})
	return matches
}

// SkillsMatch es el porcentaje de skills obligatorios cubiertos; 50 si el puesto no exige ninguno.
func SkillsMatch(employee domain.EmployeeProfile, job domain.Job) int {
	required := job.RequiredSkills()
	if len(required) == 0 {
		return domain.NeutralScore
	}
	matched := 0
	for _, name := range required {
		if hasSkill(employee, name) {
			matched++
		}
	}
	return int(math.Round(float64(matched) / float64(len(required)) * 100))
}

// PreferencesMatch parte de 50: +25 por remoto alineado, +25 si algun rol preferido aparece en el titulo.
func PreferencesMatch(employee domain.EmployeeProfile, job domain.Job) int {
	score := domain.NeutralScore
	if employee.Preferences.RemoteWork && job.RemotePolicy == domain.RemotePolicyRemote {
		score += 25
	}
	title := strings.ToLower(job.Title)
	for _, role := range employee.Preferences.PreferredRoles {
		role = strings.ToLower(strings.TrimSpace(role))
		if role != "" && strings.Contains(title, role) {
			score += 25
			break
		}
	}
	return score
}
