package service

import (
	"fmt"
	"math"
	"strings"

	"talent-match/internal/domain"
)

const (
	highDiversityRatio   = 0.7
	lowDiversityRatio    = 0.3
	balancedDISCSpread   = 20
	improvementThreshold = 3
)

// AnalyzeTeam agrega la personalidad de los miembros del equipo.
// Un equipo sin miembros devuelve dinamicas en cero.
func AnalyzeTeam(team domain.Team, members []domain.EmployeeProfile) domain.TeamDynamics {
	dyn := domain.TeamDynamics{
		TeamID:                team.ID,
		Size:                  len(members),
		MBTIDistribution:      map[domain.MBTIType]int{},
		Insights:              []domain.TeamInsight{},
		HiringRecommendations: []domain.HiringRecommendation{},
	}
	if len(members) == 0 {
		return dyn
	}

	var bf [5]int
	var disc [4]int
	for _, m := range members {
		p := m.Personality
		bf[0] += p.BigFive.Openness
		bf[1] += p.BigFive.Conscientiousness
		bf[2] += p.BigFive.Extraversion
		bf[3] += p.BigFive.Agreeableness
		bf[4] += p.BigFive.Neuroticism
		disc[0] += p.DISC.Dominance
		disc[1] += p.DISC.Influence
		disc[2] += p.DISC.Steadiness
		disc[3] += p.DISC.Conscientiousness
		dyn.MBTIDistribution[p.MBTI.Type]++
	}
	n := len(members)
	dyn.AverageBigFive = domain.BigFiveTraits{
		Openness:          average(bf[0], n),
		Conscientiousness: average(bf[1], n),
		Extraversion:      average(bf[2], n),
		Agreeableness:     average(bf[3], n),
		Neuroticism:       average(bf[4], n),
	}
	dyn.AverageDISC = domain.DISCTraits{
		Dominance:         average(disc[0], n),
		Influence:         average(disc[1], n),
		Steadiness:        average(disc[2], n),
		Conscientiousness: average(disc[3], n),
	}

	unique := len(dyn.MBTIDistribution)
	dyn.Diversity = average(unique*100, n)
	dyn.Insights = teamInsights(dyn, unique)
	dyn.HiringRecommendations = hiringRecommendations(dyn)
	dyn.FitMetrics = FitMetrics(members)
	return dyn
}

func average(sum, n int) int {
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}

func teamInsights(dyn domain.TeamDynamics, unique int) []domain.TeamInsight {
	insights := []domain.TeamInsight{}
	ratio := float64(unique) / float64(dyn.Size)
	switch {
	case ratio >= highDiversityRatio:
		insights = append(insights, domain.TeamInsight{
			Kind:        domain.InsightStrength,
			Title:       "High Personality Diversity",
			Description: fmt.Sprintf("Team has %d different MBTI types, promoting diverse perspectives and creative problem-solving.", unique),
		})
	case ratio <= lowDiversityRatio:
		insights = append(insights, domain.TeamInsight{
			Kind:        domain.InsightWarning,
			Title:       "Low Personality Diversity",
			Description: "Team may benefit from more diverse personality types to avoid groupthink.",
		})
	}

	bf := dyn.AverageBigFive
	switch {
	case bf.Extraversion > 70:
		insights = append(insights, domain.TeamInsight{
			Kind:        domain.InsightOpportunity,
			Title:       "Highly Extraverted Team",
			Description: "Team is very social and collaborative. Consider providing quiet focus time for deep work.",
		})
	case bf.Extraversion < 30:
		insights = append(insights, domain.TeamInsight{
			Kind:        domain.InsightOpportunity,
			Title:       "Highly Introverted Team",
			Description: "Team prefers independent work. Structured collaboration sessions may enhance team cohesion.",
		})
	}
	if bf.Conscientiousness > 75 {
		insights = append(insights, domain.TeamInsight{
			Kind:        domain.InsightStrength,
			Title:       "Highly Organized Team",
			Description: "Team is detail-oriented and organized. Great for complex, structured projects.",
		})
	}
	if bf.Openness > 75 {
		insights = append(insights, domain.TeamInsight{
			Kind:        domain.InsightStrength,
			Title:       "Innovation-Focused",
			Description: "Team is highly creative and open to new ideas. Excellent for innovation and R&D projects.",
		})
	}

	d := dyn.AverageDISC
	values := []int{d.Dominance, d.Influence, d.Steadiness, d.Conscientiousness}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if hi-lo < balancedDISCSpread {
		insights = append(insights, domain.TeamInsight{
			Kind:        domain.InsightStrength,
			Title:       "Balanced Work Styles",
			Description: "Team has a good balance across all DISC dimensions, supporting various work approaches.",
		})
	}
	return insights
}

func hiringRecommendations(dyn domain.TeamDynamics) []domain.HiringRecommendation {
	recs := []domain.HiringRecommendation{}
	if dyn.AverageBigFive.Extraversion < 40 {
		recs = append(recs, domain.HiringRecommendation{
			Personality: "Extraverted (ENFP, ENTP, ENFJ, ENTJ)",
			Reasoning:   "Team is predominantly introverted. An extraverted team member could improve communication and collaboration.",
			Impact:      "Enhanced team cohesion and external stakeholder engagement",
		})
	}
	if dyn.AverageBigFive.Conscientiousness < 50 {
		recs = append(recs, domain.HiringRecommendation{
			Personality: "Organized & Detail-oriented (ISTJ, ESTJ, ISFJ)",
			Reasoning:   "Team could benefit from more structure and organization.",
			Impact:      "Improved project management and attention to detail",
		})
	}
	if dyn.AverageDISC.Influence < 40 {
		recs = append(recs, domain.HiringRecommendation{
			Personality: "High Influence (Persuasive & Enthusiastic)",
			Reasoning:   "Team has low influence scores. Someone persuasive could help with stakeholder buy-in.",
			Impact:      "Better cross-team collaboration and influence",
		})
	}
	return recs
}

// FitMetrics promedia las cinco dimensiones de equipo sobre los perfiles dados.
func FitMetrics(members []domain.EmployeeProfile) domain.TeamFitMetrics {
	if len(members) == 0 {
		return domain.TeamFitMetrics{}
	}
	var tech, collab, innov, lead, exec int
	for _, m := range members {
		p := m.Personality
		tech += p.BigFive.Conscientiousness
		collab += p.BigFive.Agreeableness
		innov += p.BigFive.Openness
		lead += p.DISC.Dominance
		exec += p.DISC.Conscientiousness
	}
	n := len(members)
	return domain.TeamFitMetrics{
		Technical:     average(tech, n),
		Collaboration: average(collab, n),
		Innovation:    average(innov, n),
		Leadership:    average(lead, n),
		Execution:     average(exec, n),
	}
}

// SimulateAddition compara las metricas del equipo con y sin el candidato.
func SimulateAddition(team domain.Team, members []domain.EmployeeProfile, candidate domain.EmployeeProfile) domain.TeamSimulation {
	current := FitMetrics(members)
	with := make([]domain.EmployeeProfile, 0, len(members)+1)
	with = append(with, members...)
	with = append(with, candidate)
	simulated := FitMetrics(with)

	return domain.TeamSimulation{
		TeamID:      team.ID,
		CandidateID: candidate.ID,
		Current:     current,
		Simulated:   simulated,
		Impact:      impactStatement(candidate, current, simulated),
	}
}

func impactStatement(candidate domain.EmployeeProfile, current, simulated domain.TeamFitMetrics) string {
	name := strings.TrimSpace(candidate.PersonalInfo.Name)
	if name == "" {
		name = "this candidate"
	}

	var improvements []string
	if simulated.Innovation > current.Innovation+improvementThreshold {
		improvements = append(improvements, "innovation")
	}
	if simulated.Collaboration > current.Collaboration+improvementThreshold {
		improvements = append(improvements, "collaboration")
	}
	if simulated.Technical > current.Technical+improvementThreshold {
		improvements = append(improvements, "technical execution")
	}
	if simulated.Leadership > current.Leadership+improvementThreshold {
		improvements = append(improvements, "leadership")
	}
	if len(improvements) > 0 {
		if len(improvements) > 2 {
			improvements = improvements[:2]
		}
		return fmt.Sprintf("Adding %s increases %s for this team.", name, strings.Join(improvements, " and "))
	}

	var skills []string
	for _, s := range candidate.Skills {
		if strings.TrimSpace(s.Name) == "" {
			continue
		}
		skills = append(skills, s.Name)
		if len(skills) == 2 {
			break
		}
	}
	if len(skills) > 0 {
		return fmt.Sprintf("Adding %s brings %s expertise to the team.", name, strings.Join(skills, " and "))
	}
	return fmt.Sprintf("Adding %s keeps the team's current balance.", name)
}
