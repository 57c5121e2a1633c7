package seed

import (
	"testing"

	"talent-match/internal/domain"
	"talent-match/internal/service"
)

func TestBuildCatalog(t *testing.T) {
	rng := service.NewRandomSource(1)
	cat := Build(service.NewTraitGenerator(rng), rng, 6)

	if len(cat.Employees) != 9 {
		t.Fatalf("expected 9 employees, got %d", len(cat.Employees))
	}
	seen := map[string]bool{}
	for _, e := range cat.Employees {
		if seen[e.ID] {
			t.Fatalf("duplicate employee id %s", e.ID)
		}
		seen[e.ID] = true
		if !e.Personality.MBTI.Type.Valid() || !e.Personality.MBTI.Consistent() {
			t.Fatalf("employee %s has invalid mbti %+v", e.ID, e.Personality.MBTI)
		}
	}
	if cat.Employees[0].Personality.BigFive.Openness != 85 {
		t.Fatalf("expected base openness kept for emp-001")
	}
	if cat.Employees[0].Personality.MBTI.Type != domain.INTJ {
		t.Fatalf("expected INTJ for emp-001")
	}

	if len(cat.Jobs) == 0 || len(cat.Teams) != 2 {
		t.Fatalf("expected jobs and 2 teams, got %d jobs %d teams", len(cat.Jobs), len(cat.Teams))
	}
	for _, team := range cat.Teams {
		for _, id := range team.MemberIDs() {
			if !seen[id] {
				t.Fatalf("team %s references unknown employee %s", team.ID, id)
			}
			if id == "emp-003" {
				t.Fatalf("emp-003 must stay outside teams")
			}
		}
	}
}

func TestBuildCatalogIsDeterministic(t *testing.T) {
	a := service.NewRandomSource(9)
	b := service.NewRandomSource(9)
	ca := Build(service.NewTraitGenerator(a), a, 5)
	cb := Build(service.NewTraitGenerator(b), b, 5)
	for i := range ca.Employees {
		ea, eb := ca.Employees[i], cb.Employees[i]
		if ea.ID != eb.ID || ea.PersonalInfo.Name != eb.PersonalInfo.Name || ea.Personality.BigFive != eb.Personality.BigFive {
			t.Fatalf("employee %d differs between runs", i)
		}
	}
}

func TestSynthesize(t *testing.T) {
	rng := service.NewRandomSource(3)
	e := Synthesize(service.NewTraitGenerator(rng), rng, SynthesizeRequest{
		Name:     "Test Person",
		MBTIType: domain.ENFJ,
		BigFive:  domain.PartialBigFive{Conscientiousness: domain.IntPtr(72)},
		Skills:   []string{"Go", " "},
	})
	if e.ID == "" {
		t.Fatalf("expected generated id")
	}
	if e.PersonalInfo.Name != "Test Person" || e.PersonalInfo.Title == "" {
		t.Fatalf("unexpected personal info %+v", e.PersonalInfo)
	}
	if e.Personality.MBTI.Type != domain.ENFJ || e.Personality.BigFive.Conscientiousness != 72 {
		t.Fatalf("unexpected personality %+v", e.Personality)
	}
	if len(e.Skills) != 1 || e.Skills[0].Name != "Go" {
		t.Fatalf("unexpected skills %+v", e.Skills)
	}
}

func TestSynthesizeNormalizesMBTIType(t *testing.T) {
	rng := service.NewRandomSource(5)
	gen := service.NewTraitGenerator(rng)
	for _, in := range []domain.MBTIType{"intj", " Intj "} {
		e := Synthesize(gen, rng, SynthesizeRequest{MBTIType: in})
		if e.Personality.MBTI.Type != domain.INTJ {
			t.Fatalf("expected %q to become INTJ, got %s", in, e.Personality.MBTI.Type)
		}
		if !e.Personality.MBTI.Consistent() {
			t.Fatalf("inconsistent mbti %+v", e.Personality.MBTI)
		}
	}
}
