package service

import (
	"math"

	"talent-match/internal/domain"
)

// Pesos del ensamble.
const (
	bigFiveWeight = 0.4
	mbtiWeight    = 0.3
	discWeight    = 0.3
)

// CalculatePersonalityMatch combina los tres marcos en un puntaje y etiquetas cualitativas.
// Cada marco sin objetivo aporta 50.
func CalculatePersonalityMatch(candidate domain.PersonalityProfile, target domain.IdealPersonality) domain.PersonalityMatch {
	bigFiveScore := domain.NeutralScore
	if target.BigFive != nil {
		bigFiveScore = CalculateBigFiveMatch(candidate.BigFive, *target.BigFive)
	}

	mbtiScore := CalculateMBTIMatch(candidate.MBTI.Type, target.MBTITypes...)

	discScore := domain.NeutralScore
	if target.DISC != nil {
		discScore = CalculateDISCMatch(candidate.DISC, *target.DISC)
	}

	overall := int(math.Round(
		float64(bigFiveScore)*bigFiveWeight +
			float64(mbtiScore)*mbtiWeight +
			float64(discScore)*discWeight,
	))

	strengths := []string{}
	considerations := []string{}

	if bigFiveScore >= 70 {
		strengths = append(strengths, "Strong alignment with Big Five personality traits")
	} else if bigFiveScore < 50 {
		considerations = append(considerations, "Some personality trait differences to consider")
	}

	if mbtiScore >= 80 {
		strengths = append(strengths, "Excellent MBTI type compatibility")
	} else if mbtiScore < 50 {
		considerations = append(considerations, "Different MBTI preferences may require adaptation")
	}

	if discScore >= 70 {
		strengths = append(strengths, "Well-matched work style (DISC) profile")
	} else if discScore < 50 {
		considerations = append(considerations, "Different work style approaches")
	}

	return domain.PersonalityMatch{
		Score: overall,
		Breakdown: domain.PersonalityBreakdown{
			BigFive: bigFiveScore,
			MBTI:    mbtiScore,
			DISC:    discScore,
		},
		Strengths:      strengths,
		Considerations: considerations,
	}
}
