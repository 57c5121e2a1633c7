package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"talent-match/internal/domain"
	"talent-match/internal/repository"
)

// answerAll responde cada pregunta con fn(pregunta).
func answerAll(qs []domain.AssessmentQuestion, fn func(domain.AssessmentQuestion) int) map[string]int {
	answers := make(map[string]int, len(qs))
	for _, q := range qs {
		answers[q.ID] = fn(q)
	}
	return answers
}

func TestQuestionsCounts(t *testing.T) {
	cases := []struct {
		framework domain.Framework
		want      int
	}{
		{domain.FrameworkBigFive, 30},
		{domain.FrameworkDISC, 24},
		{domain.FrameworkMBTI, 32},
	}
	for _, tc := range cases {
		qs, err := Questions(tc.framework)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.framework, err)
		}
		if len(qs) != tc.want {
			t.Fatalf("%s: expected %d questions, got %d", tc.framework, tc.want, len(qs))
		}
	}
	if _, err := Questions("enneagram"); !errors.Is(err, ErrUnknownFramework) {
		t.Fatalf("expected ErrUnknownFramework, got %v", err)
	}
}

func TestScoreBigFive(t *testing.T) {
	maxed := answerAll(bigFiveQuestions, func(q domain.AssessmentQuestion) int {
		if q.Reverse {
			return 1
		}
		return 5
	})
	bf, err := ScoreBigFive(maxed)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	want := domain.BigFiveTraits{Openness: 100, Conscientiousness: 100, Extraversion: 100, Agreeableness: 100, Neuroticism: 100}
	if bf != want {
		t.Fatalf("expected %+v, got %+v", want, bf)
	}

	neutral := answerAll(bigFiveQuestions, func(domain.AssessmentQuestion) int { return 3 })
	bf, _ = ScoreBigFive(neutral)
	if bf.Openness != 50 || bf.Neuroticism != 50 {
		t.Fatalf("expected neutral 50s, got %+v", bf)
	}

	// openness: 5,5,5,(6-5)=1,5,5 -> mean 26/6 -> round((26/6-1)/4*100) = 83
	allFives := answerAll(bigFiveQuestions, func(domain.AssessmentQuestion) int { return 5 })
	bf, _ = ScoreBigFive(allFives)
	if bf.Openness != 83 {
		t.Fatalf("expected openness 83, got %d", bf.Openness)
	}
}

func TestScoreDISC(t *testing.T) {
	answers := answerAll(discQuestions, func(q domain.AssessmentQuestion) int {
		if q.Trait == "dominance" {
			return 5
		}
		return 1
	})
	disc, err := ScoreDISC(answers)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	want := domain.DISCTraits{Dominance: 100, Influence: 0, Steadiness: 0, Conscientiousness: 0}
	if disc != want {
		t.Fatalf("expected %+v, got %+v", want, disc)
	}
}

func TestScoreMBTI(t *testing.T) {
	second := answerAll(mbtiQuestions, func(q domain.AssessmentQuestion) int {
		if q.Direction == directionSecond {
			return 5
		}
		return 1
	})
	m, err := ScoreMBTI(second)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if m.Type != domain.ENFP {
		t.Fatalf("expected ENFP, got %s", m.Type)
	}
	if m.IntroversionExtraversion != 100 || m.JudgingPerceiving != 100 {
		t.Fatalf("expected axes at 100, got %+v", m)
	}

	first := answerAll(mbtiQuestions, func(q domain.AssessmentQuestion) int {
		if q.Direction == directionFirst {
			return 5
		}
		return 1
	})
	m, _ = ScoreMBTI(first)
	if m.Type != domain.ISTJ || m.ThinkingFeeling != 0 {
		t.Fatalf("expected ISTJ with zero axes, got %+v", m)
	}

	neutral := answerAll(mbtiQuestions, func(domain.AssessmentQuestion) int { return 3 })
	m, _ = ScoreMBTI(neutral)
	if m.Type != domain.ENFP || m.IntuitionSensing != 50 {
		t.Fatalf("expected ENFP at 50 on a tie, got %+v", m)
	}
	if !m.Consistent() {
		t.Fatalf("expected consistent traits %+v", m)
	}
}

func TestScoreValidation(t *testing.T) {
	answers := answerAll(discQuestions, func(domain.AssessmentQuestion) int { return 3 })
	delete(answers, "s3")
	if _, err := ScoreDISC(answers); !errors.Is(err, ErrIncompleteAssessment) {
		t.Fatalf("expected ErrIncompleteAssessment, got %v", err)
	}

	answers = answerAll(discQuestions, func(domain.AssessmentQuestion) int { return 3 })
	answers["d1"] = 6
	if _, err := ScoreDISC(answers); !errors.Is(err, ErrInvalidAnswer) {
		t.Fatalf("expected ErrInvalidAnswer, got %v", err)
	}

	answers = answerAll(discQuestions, func(domain.AssessmentQuestion) int { return 3 })
	answers["unknown"] = 42
	if _, err := ScoreDISC(answers); err != nil {
		t.Fatalf("expected unknown ids to be ignored, got %v", err)
	}
}

func newAssessmentFixture(t *testing.T) (*AssessmentService, *repository.MemoryEmployeeRepository, *repository.MemoryAssessmentRepository, MatchCache) {
	t.Helper()
	employees := repository.NewMemoryEmployeeRepository(domain.EmployeeProfile{
		ID: "emp-1",
		Personality: domain.PersonalityProfile{
			BigFive: domain.BigFiveTraits{Openness: 10, Conscientiousness: 10, Extraversion: 10, Agreeableness: 10, Neuroticism: 10},
			MBTI:    domain.MBTITraits{Type: domain.ISTJ},
		},
	})
	assessments := repository.NewMemoryAssessmentRepository()
	cache := NewMemoryMatchCache(time.Minute)
	svc := NewAssessmentService(assessments, employees, cache, zap.NewNop())
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	svc.newID = func() string { return "assessment-1" }
	return svc, employees, assessments, cache
}

func TestAssessmentSubmitAndMerge(t *testing.T) {
	svc, employees, assessments, cache := newAssessmentFixture(t)
	ctx := context.Background()
	_ = cache.Set(ctx, sampleMatch("emp-1", "job-1", 40))

	answers := answerAll(bigFiveQuestions, func(q domain.AssessmentQuestion) int {
		if q.Reverse {
			return 1
		}
		return 5
	})
	result, err := svc.Submit(ctx, "emp-1", domain.FrameworkBigFive, answers)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.ID != "assessment-1" || result.BigFive == nil || result.BigFive.Openness != 100 {
		t.Fatalf("unexpected result %+v", result)
	}

	before, _ := employees.GetByID(ctx, "emp-1")
	if before.Personality.BigFive.Openness != 10 {
		t.Fatalf("submit must not touch the profile, got %+v", before.Personality.BigFive)
	}

	updated, err := svc.MergeIntoProfile(ctx, result.ID)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if updated.Personality.BigFive.Openness != 100 {
		t.Fatalf("expected merged openness 100, got %d", updated.Personality.BigFive.Openness)
	}
	if updated.Personality.MBTI.Type != domain.ISTJ {
		t.Fatalf("merge must keep other frameworks, got %s", updated.Personality.MBTI.Type)
	}
	if !updated.Personality.LastAssessed.Equal(svc.now()) {
		t.Fatalf("expected last assessed stamped, got %v", updated.Personality.LastAssessed)
	}

	stored, _ := assessments.GetByID(ctx, result.ID)
	if stored.MergedAt == nil {
		t.Fatalf("expected merged timestamp")
	}
	if _, ok, _ := cache.Get(ctx, "emp-1", "job-1"); ok {
		t.Fatalf("expected cached matches invalidated")
	}
}

func TestAssessmentSubmitErrors(t *testing.T) {
	svc, _, _, _ := newAssessmentFixture(t)
	ctx := context.Background()

	if _, err := svc.Submit(ctx, " ", domain.FrameworkDISC, nil); !errors.Is(err, ErrInvalidEmployee) {
		t.Fatalf("expected ErrInvalidEmployee, got %v", err)
	}
	if _, err := svc.Submit(ctx, "ghost", domain.FrameworkDISC, nil); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Submit(ctx, "emp-1", "enneagram", nil); !errors.Is(err, ErrUnknownFramework) {
		t.Fatalf("expected ErrUnknownFramework, got %v", err)
	}
	if _, err := svc.Submit(ctx, "emp-1", domain.FrameworkMBTI, map[string]int{}); !errors.Is(err, ErrIncompleteAssessment) {
		t.Fatalf("expected ErrIncompleteAssessment, got %v", err)
	}
	if _, err := svc.MergeIntoProfile(ctx, "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on merge, got %v", err)
	}

	var nilSvc *AssessmentService
	if _, err := nilSvc.Submit(ctx, "emp-1", domain.FrameworkDISC, nil); !errors.Is(err, ErrAssessmentNotConfigured) {
		t.Fatalf("expected ErrAssessmentNotConfigured, got %v", err)
	}
}
