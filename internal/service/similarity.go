package service

import (
	"math"

	"talent-match/internal/domain"
)

const (
	maxTraitDistance   = 100.0
	mbtiLetterWeight   = 25
	complementaryBonus = 15
)

type traitPair struct {
	value  int
	target *int
}

// CalculateBigFiveMatch compara solo los rasgos presentes en el objetivo.
// Sin rasgos comparables devuelve 50 (sin datos).
func CalculateBigFiveMatch(profile domain.BigFiveTraits, target domain.PartialBigFive) int {
	return traitSimilarity([]traitPair{
		{profile.Openness, target.Openness},
		{profile.Conscientiousness, target.Conscientiousness},
		{profile.Extraversion, target.Extraversion},
		{profile.Agreeableness, target.Agreeableness},
		{profile.Neuroticism, target.Neuroticism},
	})
}

// CalculateDISCMatch aplica el mismo algoritmo que Big Five sobre los cuatro rasgos DISC.
func CalculateDISCMatch(profile domain.DISCTraits, target domain.PartialDISC) int {
	return traitSimilarity([]traitPair{
		{profile.Dominance, target.Dominance},
		{profile.Influence, target.Influence},
		{profile.Steadiness, target.Steadiness},
		{profile.Conscientiousness, target.Conscientiousness},
	})
}

// traitSimilarity = max(0, 100 - RMS/100*100), redondeado.
func traitSimilarity(pairs []traitPair) int {
	var sumSquaredDiff float64
	count := 0
	for _, p := range pairs {
		if p.target == nil {
			continue
		}
		diff := float64(p.value - *p.target)
		sumSquaredDiff += diff * diff
		count++
	}
	if count == 0 {
		return domain.NeutralScore
	}

	distance := math.Sqrt(sumSquaredDiff / float64(count))
	similarity := math.Max(0, 100-(distance/maxTraitDistance)*100)
	return int(math.Round(similarity))
}

// CalculateMBTIMatch devuelve el mejor puntaje contra cualquiera de los tipos objetivo.
// Sin objetivos devuelve 50.
func CalculateMBTIMatch(t domain.MBTIType, targets ...domain.MBTIType) int {
	if len(targets) == 0 {
		return domain.NeutralScore
	}
	best := 0
	for _, target := range targets {
		best = max(best, mbtiPairScore(t, target))
	}
	return best
}

// mbtiPairScore: 25 por letra coincidente, +15 a tipos casi opuestos (0 o 1 coincidencias).
// Un tipo fuera del enum puntua 0 contra cualquiera, incluso contra si mismo.
func mbtiPairScore(a, b domain.MBTIType) int {
	if !a.Valid() || !b.Valid() {
		return 0
	}
	if a == b {
		return domain.MaxScore
	}
	matches := 0
	for _, axis := range domain.MBTIAxes {
		if l := a.Letter(axis); l != 0 && l == b.Letter(axis) {
			matches++
		}
	}
	score := matches * mbtiLetterWeight
	if matches <= 1 {
		score += complementaryBonus
	}
	return min(domain.MaxScore, score)
}
