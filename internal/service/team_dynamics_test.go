package service

import (
	"testing"

	"talent-match/internal/domain"
)

func member(id string, t domain.MBTIType, bf domain.BigFiveTraits, disc domain.DISCTraits) domain.EmployeeProfile {
	return domain.EmployeeProfile{
		ID:           id,
		PersonalInfo: domain.PersonalInfo{Name: id},
		Personality:  domain.PersonalityProfile{BigFive: bf, MBTI: domain.MBTITraits{Type: t}, DISC: disc},
	}
}

func TestAnalyzeTeamEmpty(t *testing.T) {
	dyn := AnalyzeTeam(domain.Team{ID: "team-x"}, nil)
	if dyn.TeamID != "team-x" || dyn.Size != 0 || dyn.Diversity != 0 {
		t.Fatalf("expected zero dynamics, got %+v", dyn)
	}
	if dyn.Insights == nil || dyn.HiringRecommendations == nil || dyn.MBTIDistribution == nil {
		t.Fatalf("expected non-nil collections")
	}
	if len(dyn.Insights) != 0 || len(dyn.HiringRecommendations) != 0 {
		t.Fatalf("expected no insights or recommendations")
	}
}

func TestAnalyzeTeamDiverseOutgoingTeam(t *testing.T) {
	members := []domain.EmployeeProfile{
		member("a", domain.INTJ, domain.BigFiveTraits{Openness: 80, Conscientiousness: 80, Extraversion: 75, Agreeableness: 60, Neuroticism: 30}, domain.DISCTraits{Dominance: 50, Influence: 45, Steadiness: 55, Conscientiousness: 60}),
		member("b", domain.ENFP, domain.BigFiveTraits{Openness: 90, Conscientiousness: 85, Extraversion: 80, Agreeableness: 70, Neuroticism: 20}, domain.DISCTraits{Dominance: 55, Influence: 50, Steadiness: 50, Conscientiousness: 65}),
		member("c", domain.ESTJ, domain.BigFiveTraits{Openness: 70, Conscientiousness: 70, Extraversion: 70, Agreeableness: 80, Neuroticism: 40}, domain.DISCTraits{Dominance: 45, Influence: 55, Steadiness: 60, Conscientiousness: 55}),
	}
	dyn := AnalyzeTeam(domain.Team{ID: "team-1"}, members)

	wantBF := domain.BigFiveTraits{Openness: 80, Conscientiousness: 78, Extraversion: 75, Agreeableness: 70, Neuroticism: 30}
	if dyn.AverageBigFive != wantBF {
		t.Fatalf("expected big five %+v, got %+v", wantBF, dyn.AverageBigFive)
	}
	wantDISC := domain.DISCTraits{Dominance: 50, Influence: 50, Steadiness: 55, Conscientiousness: 60}
	if dyn.AverageDISC != wantDISC {
		t.Fatalf("expected disc %+v, got %+v", wantDISC, dyn.AverageDISC)
	}
	if dyn.Diversity != 100 {
		t.Fatalf("expected diversity 100, got %d", dyn.Diversity)
	}
	if dyn.MBTIDistribution[domain.ENFP] != 1 || len(dyn.MBTIDistribution) != 3 {
		t.Fatalf("unexpected distribution %v", dyn.MBTIDistribution)
	}

	wantTitles := []string{
		"High Personality Diversity",
		"Highly Extraverted Team",
		"Highly Organized Team",
		"Innovation-Focused",
		"Balanced Work Styles",
	}
	if len(dyn.Insights) != len(wantTitles) {
		t.Fatalf("expected %d insights, got %+v", len(wantTitles), dyn.Insights)
	}
	for i, title := range wantTitles {
		if dyn.Insights[i].Title != title {
			t.Fatalf("insight %d: expected %q, got %q", i, title, dyn.Insights[i].Title)
		}
	}
	if dyn.Insights[0].Kind != domain.InsightStrength || dyn.Insights[1].Kind != domain.InsightOpportunity {
		t.Fatalf("unexpected insight kinds %+v", dyn.Insights)
	}
	if len(dyn.HiringRecommendations) != 0 {
		t.Fatalf("expected no hiring recommendations, got %+v", dyn.HiringRecommendations)
	}

	wantFit := domain.TeamFitMetrics{Technical: 78, Collaboration: 70, Innovation: 80, Leadership: 50, Execution: 60}
	if dyn.FitMetrics != wantFit {
		t.Fatalf("expected fit %+v, got %+v", wantFit, dyn.FitMetrics)
	}
}

func TestAnalyzeTeamHomogeneousQuietTeam(t *testing.T) {
	bf := domain.BigFiveTraits{Openness: 50, Conscientiousness: 40, Extraversion: 20, Agreeableness: 50, Neuroticism: 50}
	disc := domain.DISCTraits{Dominance: 80, Influence: 30, Steadiness: 50, Conscientiousness: 50}
	var members []domain.EmployeeProfile
	for _, id := range []string{"a", "b", "c", "d"} {
		members = append(members, member(id, domain.ISTJ, bf, disc))
	}
	dyn := AnalyzeTeam(domain.Team{ID: "team-2"}, members)

	if dyn.Diversity != 25 {
		t.Fatalf("expected diversity 25, got %d", dyn.Diversity)
	}
	if len(dyn.Insights) != 2 || dyn.Insights[0].Title != "Low Personality Diversity" || dyn.Insights[1].Title != "Highly Introverted Team" {
		t.Fatalf("unexpected insights %+v", dyn.Insights)
	}
	if dyn.Insights[0].Kind != domain.InsightWarning {
		t.Fatalf("expected warning kind, got %s", dyn.Insights[0].Kind)
	}
	if len(dyn.HiringRecommendations) != 3 {
		t.Fatalf("expected 3 hiring recommendations, got %+v", dyn.HiringRecommendations)
	}
	if dyn.HiringRecommendations[0].Personality != "Extraverted (ENFP, ENTP, ENFJ, ENTJ)" {
		t.Fatalf("unexpected first recommendation %+v", dyn.HiringRecommendations[0])
	}
}

func TestSimulateAdditionImprovements(t *testing.T) {
	bf := domain.BigFiveTraits{Openness: 50, Conscientiousness: 50, Extraversion: 50, Agreeableness: 50, Neuroticism: 50}
	disc := domain.DISCTraits{Dominance: 50, Influence: 50, Steadiness: 50, Conscientiousness: 50}
	members := []domain.EmployeeProfile{member("a", domain.ISTJ, bf, disc), member("b", domain.ESTJ, bf, disc)}

	candidate := member("cand", domain.ENFP, domain.BigFiveTraits{Openness: 90, Conscientiousness: 90, Extraversion: 50, Agreeableness: 90, Neuroticism: 50}, disc)
	candidate.PersonalInfo.Name = "Ana Torres"

	sim := SimulateAddition(domain.Team{ID: "team-3"}, members, candidate)
	if sim.Current.Innovation != 50 || sim.Simulated.Innovation != 63 {
		t.Fatalf("unexpected innovation %d -> %d", sim.Current.Innovation, sim.Simulated.Innovation)
	}
	want := "Adding Ana Torres increases innovation and collaboration for this team."
	if sim.Impact != want {
		t.Fatalf("expected %q, got %q", want, sim.Impact)
	}
	if sim.CandidateID != "cand" || sim.TeamID != "team-3" {
		t.Fatalf("unexpected ids %+v", sim)
	}
}

func TestSimulateAdditionFallsBackToSkills(t *testing.T) {
	bf := domain.BigFiveTraits{Openness: 50, Conscientiousness: 50, Extraversion: 50, Agreeableness: 50, Neuroticism: 50}
	disc := domain.DISCTraits{Dominance: 50, Influence: 50, Steadiness: 50, Conscientiousness: 50}
	members := []domain.EmployeeProfile{member("a", domain.ISTJ, bf, disc)}

	candidate := member("cand", domain.ISTJ, bf, disc)
	candidate.PersonalInfo.Name = "Leo"
	candidate.Skills = []domain.Skill{{Name: "Go"}, {Name: "Docker"}, {Name: "SQL"}}

	sim := SimulateAddition(domain.Team{ID: "team-4"}, members, candidate)
	if want := "Adding Leo brings Go and Docker expertise to the team."; sim.Impact != want {
		t.Fatalf("expected %q, got %q", want, sim.Impact)
	}

	candidate.Skills = nil
	sim = SimulateAddition(domain.Team{ID: "team-4"}, members, candidate)
	if want := "Adding Leo keeps the team's current balance."; sim.Impact != want {
		t.Fatalf("expected %q, got %q", want, sim.Impact)
	}
}
