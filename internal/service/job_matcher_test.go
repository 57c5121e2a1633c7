package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"talent-match/internal/domain"
)

func matcherJob() domain.Job {
	return domain.Job{
		ID:           "job-1",
		Title:        "Backend Engineer",
		RemotePolicy: domain.RemotePolicyRemote,
		Skills: []domain.JobSkill{
			{Name: "Go", Required: true},
			{Name: "Kubernetes", Required: true},
			{Name: "Terraform", Required: false},
		},
	}
}

func matcherEmployee(id string) domain.EmployeeProfile {
	return domain.EmployeeProfile{
		ID:          id,
		Skills:      []domain.Skill{{Name: " go "}, {Name: "Python"}},
		Preferences: domain.Preferences{RemoteWork: true, PreferredRoles: []string{"", "backend"}},
	}
}

func TestSkillsMatch(t *testing.T) {
	if got := SkillsMatch(matcherEmployee("e"), matcherJob()); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
	if got := SkillsMatch(matcherEmployee("e"), domain.Job{}); got != 50 {
		t.Fatalf("expected neutral 50 without required skills, got %d", got)
	}
	emp := matcherEmployee("e")
	emp.Skills = append(emp.Skills, domain.Skill{Name: "KUBERNETES"})
	if got := SkillsMatch(emp, matcherJob()); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestPreferencesMatch(t *testing.T) {
	cases := []struct {
		name string
		emp  domain.EmployeeProfile
		job  domain.Job
		want int
	}{
		{"remote and role", matcherEmployee("e"), matcherJob(), 100},
		{"role only", matcherEmployee("e"), domain.Job{Title: "Senior Backend Dev", RemotePolicy: domain.RemotePolicyOnsite}, 75},
		{"blank role ignored", domain.EmployeeProfile{Preferences: domain.Preferences{PreferredRoles: []string{"  "}}}, domain.Job{Title: "Anything"}, 50},
		{"remote preference on hybrid job", domain.EmployeeProfile{Preferences: domain.Preferences{RemoteWork: true}}, domain.Job{RemotePolicy: domain.RemotePolicyHybrid}, 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PreferencesMatch(tc.emp, tc.job); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestJobMatcherMatch(t *testing.T) {
	matcher := NewJobMatcher(&fixedRandom{intVal: 5}, nil, zap.NewNop())
	match := matcher.Match(context.Background(), matcherEmployee("emp-1"), matcherJob())

	if match.EmployeeID != "emp-1" || match.JobID != "job-1" {
		t.Fatalf("unexpected ids %+v", match)
	}
	if match.InterestsMatch != 75 {
		t.Fatalf("expected interests 75, got %d", match.InterestsMatch)
	}
	if match.PersonalityMatch.Score != 50 || match.SkillsMatch != 50 || match.PreferencesMatch != 100 {
		t.Fatalf("unexpected sub-scores %+v", match)
	}
	// 0.35*50 + 0.35*50 + 0.15*75 + 0.15*100 = 61.25
	if match.OverallScore != 61 {
		t.Fatalf("expected overall 61, got %d", match.OverallScore)
	}
	if len(match.Reasoning) != 1 || match.Reasoning[0].Point != "Good potential match" {
		t.Fatalf("expected generic fallback reason, got %+v", match.Reasoning)
	}
}

func TestInterestsMatchRange(t *testing.T) {
	matcher := NewJobMatcher(NewRandomSource(1), nil, zap.NewNop())
	for i := 0; i < 200; i++ {
		if v := matcher.InterestsMatch(); v < 70 || v >= 90 {
			t.Fatalf("interests out of range: %d", v)
		}
	}
}

func TestJobMatcherUsesCache(t *testing.T) {
	rng := &fixedRandom{intVal: 5}
	matcher := NewJobMatcher(rng, NewMemoryMatchCache(0), zap.NewNop())
	ctx := context.Background()

	first := matcher.Match(ctx, matcherEmployee("emp-1"), matcherJob())
	rng.intVal = 15
	second := matcher.Match(ctx, matcherEmployee("emp-1"), matcherJob())

	if rng.intCalls != 1 {
		t.Fatalf("expected a single random draw, got %d", rng.intCalls)
	}
	if first.InterestsMatch != second.InterestsMatch || first.OverallScore != second.OverallScore {
		t.Fatalf("expected cached match, got %+v and %+v", first, second)
	}
}

func TestRankCandidatesOrdersByScoreThenID(t *testing.T) {
	matcher := NewJobMatcher(&fixedRandom{intVal: 0}, nil, zap.NewNop())
	strong := matcherEmployee("emp-b")
	strong.Skills = append(strong.Skills, domain.Skill{Name: "Kubernetes"})

	ranked := matcher.RankCandidates(context.Background(), matcherJob(), []domain.EmployeeProfile{
		matcherEmployee("emp-c"),
		strong,
		matcherEmployee("emp-a"),
	})
	got := []string{ranked[0].EmployeeID, ranked[1].EmployeeID, ranked[2].EmployeeID}
	want := []string{"emp-b", "emp-a", "emp-c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestRankJobsOrdersByScoreThenID(t *testing.T) {
	matcher := NewJobMatcher(&fixedRandom{intVal: 0}, nil, zap.NewNop())
	weak := matcherJob()
	weak.ID = "job-z"
	weak.RemotePolicy = domain.RemotePolicyOnsite
	tieA := matcherJob()
	tieA.ID = "job-b"
	tieB := matcherJob()
	tieB.ID = "job-a"

	ranked := matcher.RankJobs(context.Background(), matcherEmployee("emp-1"), []domain.Job{weak, tieA, tieB})
	want := []string{"job-a", "job-b", "job-z"}
	for i, id := range want {
		if ranked[i].JobID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, ranked[i].JobID)
		}
	}
}
