package service

import (
	"time"

	"talent-match/internal/domain"
)

// Rangos de generacion por rasgo (inclusivos).
var (
	opennessRange          = [2]int{30, 90}
	conscientiousnessRange = [2]int{30, 90}
	extraversionRange      = [2]int{20, 90}
	agreeablenessRange     = [2]int{30, 90}
	neuroticismRange       = [2]int{20, 70}
	discRange              = [2]int{20, 85}
)

const assessmentWindow = 365 * 24 * time.Hour

// TraitGenerator sintetiza perfiles de personalidad internamente consistentes.
// Solo se usa para datos de demo; nunca en el camino de matching.
type TraitGenerator struct {
	rng RandomSource
	now func() time.Time
}

func NewTraitGenerator(rng RandomSource) *TraitGenerator {
	if rng == nil {
		rng = NewRandomSource(0)
	}
	return &TraitGenerator{rng: rng, now: time.Now}
}

// GenerateBigFive usa los valores de base presentes y sortea el resto.
func (g *TraitGenerator) GenerateBigFive(base domain.PartialBigFive) domain.BigFiveTraits {
	return domain.BigFiveTraits{
		Openness:          g.pick(base.Openness, opennessRange),
		Conscientiousness: g.pick(base.Conscientiousness, conscientiousnessRange),
		Extraversion:      g.pick(base.Extraversion, extraversionRange),
		Agreeableness:     g.pick(base.Agreeableness, agreeablenessRange),
		Neuroticism:       g.pick(base.Neuroticism, neuroticismRange),
	}
}

// GenerateMBTI sortea un tipo si t esta vacio o no es valido, y deriva los cuatro ejes.
// Letra alta del eje => [60,100); letra baja => [0,40).
func (g *TraitGenerator) GenerateMBTI(t domain.MBTIType) domain.MBTITraits {
	if !t.Valid() {
		all := domain.AllMBTITypes()
		t = all[g.rng.Intn(len(all))]
	}

	traits := domain.MBTITraits{Type: t}
	for _, axis := range domain.MBTIAxes {
		if t.Letter(axis) == axis.High() {
			traits.SetAxis(axis, 60+g.rng.Float64()*40)
		} else {
			traits.SetAxis(axis, g.rng.Float64()*40)
		}
	}
	return traits
}

// GenerateDISC usa los valores de base presentes y sortea el resto en [20,85].
func (g *TraitGenerator) GenerateDISC(base domain.PartialDISC) domain.DISCTraits {
	return domain.DISCTraits{
		Dominance:         g.pick(base.Dominance, discRange),
		Influence:         g.pick(base.Influence, discRange),
		Steadiness:        g.pick(base.Steadiness, discRange),
		Conscientiousness: g.pick(base.Conscientiousness, discRange),
	}
}

// GeneratePersonalityProfile compone los tres marcos y alinea el Big Five con el tipo MBTI.
func (g *TraitGenerator) GeneratePersonalityProfile(t domain.MBTIType, bigFiveBase domain.PartialBigFive, discBase domain.PartialDISC) domain.PersonalityProfile {
	mbti := g.GenerateMBTI(t)
	bigFive := g.GenerateBigFive(bigFiveBase)
	disc := g.GenerateDISC(discBase)

	switch mbti.Type.Letter(domain.AxisIE) {
	case 'E':
		bigFive.Extraversion = max(bigFive.Extraversion, 60)
	case 'I':
		bigFive.Extraversion = min(bigFive.Extraversion, 40)
	}
	if mbti.Type.Letter(domain.AxisSN) == 'N' {
		bigFive.Openness = max(bigFive.Openness, 60)
	}
	if mbti.Type.Letter(domain.AxisTF) == 'F' {
		bigFive.Agreeableness = max(bigFive.Agreeableness, 60)
	}

	age := time.Duration(g.rng.Float64() * float64(assessmentWindow))
	return domain.PersonalityProfile{
		BigFive:      bigFive,
		MBTI:         mbti,
		DISC:         disc,
		LastAssessed: g.now().UTC().Add(-age),
	}
}

func (g *TraitGenerator) pick(base *int, bounds [2]int) int {
	if base != nil {
		return domain.ClampScore(*base)
	}
	return bounds[0] + g.rng.Intn(bounds[1]-bounds[0]+1)
}
