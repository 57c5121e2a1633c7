package service

import "talent-match/internal/domain"

// MBTIDescription es la ficha estatica de un tipo.
type MBTIDescription struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Strengths   []string `json:"strengths"`
}

var mbtiDescriptions = map[domain.MBTIType]MBTIDescription{
	domain.INTJ: {Title: "The Architect", Description: "Strategic, logical, and independent thinkers", Strengths: []string{"Strategic planning", "Problem solving", "Independent work", "Long-term vision"}},
	domain.INTP: {Title: "The Logician", Description: "Innovative inventors with unquenchable thirst for knowledge", Strengths: []string{"Analytical thinking", "Innovation", "Theoretical concepts", "Objective analysis"}},
	domain.ENTJ: {Title: "The Commander", Description: "Bold, imaginative, and strong-willed leaders", Strengths: []string{"Leadership", "Strategic thinking", "Efficiency", "Decision making"}},
	domain.ENTP: {Title: "The Debater", Description: "Smart and curious thinkers who love intellectual challenges", Strengths: []string{"Innovation", "Quick thinking", "Debate", "Adaptability"}},
	domain.INFJ: {Title: "The Advocate", Description: "Quiet and mystical, yet inspiring idealists", Strengths: []string{"Empathy", "Insight", "Idealism", "Planning"}},
	domain.INFP: {Title: "The Mediator", Description: "Poetic, kind, and altruistic people", Strengths: []string{"Creativity", "Empathy", "Idealism", "Open-mindedness"}},
	domain.ENFJ: {Title: "The Protagonist", Description: "Charismatic and inspiring leaders", Strengths: []string{"Leadership", "Communication", "Empathy", "Organization"}},
	domain.ENFP: {Title: "The Campaigner", Description: "Enthusiastic, creative, and sociable free spirits", Strengths: []string{"Enthusiasm", "Creativity", "Communication", "Flexibility"}},
	domain.ISTJ: {Title: "The Logistician", Description: "Practical and fact-minded individuals", Strengths: []string{"Reliability", "Organization", "Attention to detail", "Practicality"}},
	domain.ISFJ: {Title: "The Defender", Description: "Very dedicated and warm protectors", Strengths: []string{"Supportiveness", "Reliability", "Attention to detail", "Patience"}},
	domain.ESTJ: {Title: "The Executive", Description: "Excellent administrators, managing things and people", Strengths: []string{"Organization", "Leadership", "Efficiency", "Decisiveness"}},
	domain.ESFJ: {Title: "The Consul", Description: "Caring, social, and community-minded", Strengths: []string{"Cooperation", "Organization", "Practicality", "Warmth"}},
	domain.ISTP: {Title: "The Virtuoso", Description: "Bold and practical experimenters", Strengths: []string{"Problem solving", "Technical skills", "Adaptability", "Hands-on approach"}},
	domain.ISFP: {Title: "The Adventurer", Description: "Flexible and charming artists", Strengths: []string{"Creativity", "Flexibility", "Empathy", "Aesthetics"}},
	domain.ESTP: {Title: "The Entrepreneur", Description: "Smart, energetic, and perceptive", Strengths: []string{"Action-oriented", "Problem solving", "Adaptability", "Social skills"}},
	domain.ESFP: {Title: "The Entertainer", Description: "Spontaneous, energetic, and enthusiastic", Strengths: []string{"Enthusiasm", "Creativity", "Social skills", "Adaptability"}},
}

// GetMBTIDescription devuelve una copia de la ficha; ok=false para tipos fuera del enum.
func GetMBTIDescription(t domain.MBTIType) (MBTIDescription, bool) {
	d, ok := mbtiDescriptions[t]
	if !ok {
		return MBTIDescription{}, false
	}
	d.Strengths = append([]string(nil), d.Strengths...)
	return d, true
}

// GetBigFiveInsights emite una frase por rasgo fuera de la banda 31-69.
func GetBigFiveInsights(traits domain.BigFiveTraits) []string {
	insights := []string{}

	if traits.Openness >= 70 {
		insights = append(insights, "Highly creative and open to new experiences")
	} else if traits.Openness <= 30 {
		insights = append(insights, "Prefers structure and proven methods")
	}

	if traits.Conscientiousness >= 70 {
		insights = append(insights, "Very organized and detail-oriented")
	} else if traits.Conscientiousness <= 30 {
		insights = append(insights, "Flexible and spontaneous approach")
	}

	if traits.Extraversion >= 70 {
		insights = append(insights, "Energized by social interaction")
	} else if traits.Extraversion <= 30 {
		insights = append(insights, "Thrives in focused, independent work")
	}

	if traits.Agreeableness >= 70 {
		insights = append(insights, "Highly collaborative and empathetic")
	} else if traits.Agreeableness <= 30 {
		insights = append(insights, "Direct and competitive approach")
	}

	if traits.Neuroticism <= 30 {
		insights = append(insights, "Calm under pressure and emotionally stable")
	} else if traits.Neuroticism >= 70 {
		insights = append(insights, "Sensitive to stress and emotionally reactive")
	}

	return insights
}

// DISCStyle nombra el rasgo DISC dominante.
type DISCStyle string

const (
	DISCDominance         DISCStyle = "dominance"
	DISCInfluence         DISCStyle = "influence"
	DISCSteadiness        DISCStyle = "steadiness"
	DISCConscientiousness DISCStyle = "conscientiousness"
)

var discStyleInsights = map[DISCStyle][2]string{
	DISCDominance:         {"Results-oriented and direct communication style", "Comfortable making quick decisions"},
	DISCInfluence:         {"Enthusiastic and persuasive communicator", "Thrives in collaborative environments"},
	DISCSteadiness:        {"Patient and reliable team member", "Values stability and consistency"},
	DISCConscientiousness: {"Detail-oriented and systematic approach", "Values accuracy and quality"},
}

// DominantDISCStyle recorre D, I, S, C; en empate gana el primero.
func DominantDISCStyle(disc domain.DISCTraits) DISCStyle {
	ordered := []struct {
		style DISCStyle
		value int
	}{
		{DISCDominance, disc.Dominance},
		{DISCInfluence, disc.Influence},
		{DISCSteadiness, disc.Steadiness},
		{DISCConscientiousness, disc.Conscientiousness},
	}
	best := ordered[0]
	for _, o := range ordered[1:] {
		if o.value > best.value {
			best = o
		}
	}
	return best.style
}

// GetDISCInsights devuelve las dos frases del estilo dominante.
func GetDISCInsights(disc domain.DISCTraits) []string {
	pair := discStyleInsights[DominantDISCStyle(disc)]
	return []string{pair[0], pair[1]}
}
