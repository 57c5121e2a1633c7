package domain

import "time"

// Escala comun de todos los rasgos.
const (
	MinScore     = 0
	MaxScore     = 100
	NeutralScore = 50
)

// BigFiveTraits es el perfil OCEAN completo (0-100 por rasgo).
type BigFiveTraits struct {
	Openness          int `json:"openness"`          // Curiosidad vs. rutina
	Conscientiousness int `json:"conscientiousness"` // Orden vs. espontaneidad
	Extraversion      int `json:"extraversion"`      // Energia social
	Agreeableness     int `json:"agreeableness"`     // Cooperacion
	Neuroticism       int `json:"neuroticism"`       // Reactividad al estres
}

// Clamp devuelve una copia con todos los rasgos dentro de [0,100].
func (b BigFiveTraits) Clamp() BigFiveTraits {
	return BigFiveTraits{
		Openness:          ClampScore(b.Openness),
		Conscientiousness: ClampScore(b.Conscientiousness),
		Extraversion:      ClampScore(b.Extraversion),
		Agreeableness:     ClampScore(b.Agreeableness),
		Neuroticism:       ClampScore(b.Neuroticism),
	}
}

// PartialBigFive es un objetivo Big Five donde cada rasgo es opcional.
type PartialBigFive struct {
	Openness          *int `json:"openness,omitempty"`
	Conscientiousness *int `json:"conscientiousness,omitempty"`
	Extraversion      *int `json:"extraversion,omitempty"`
	Agreeableness     *int `json:"agreeableness,omitempty"`
	Neuroticism       *int `json:"neuroticism,omitempty"`
}

// IsEmpty indica que ningun rasgo fue especificado.
func (p PartialBigFive) IsEmpty() bool {
	return p.Openness == nil && p.Conscientiousness == nil && p.Extraversion == nil &&
		p.Agreeableness == nil && p.Neuroticism == nil
}

// DISCTraits describe el estilo de trabajo. Su "conscientiousness" no es la del Big Five.
type DISCTraits struct {
	Dominance         int `json:"dominance"`
	Influence         int `json:"influence"`
	Steadiness        int `json:"steadiness"`
	Conscientiousness int `json:"conscientiousness"`
}

// Clamp devuelve una copia con todos los rasgos dentro de [0,100].
func (d DISCTraits) Clamp() DISCTraits {
	return DISCTraits{
		Dominance:         ClampScore(d.Dominance),
		Influence:         ClampScore(d.Influence),
		Steadiness:        ClampScore(d.Steadiness),
		Conscientiousness: ClampScore(d.Conscientiousness),
	}
}

// PartialDISC es un objetivo DISC donde cada rasgo es opcional.
type PartialDISC struct {
	Dominance         *int `json:"dominance,omitempty"`
	Influence         *int `json:"influence,omitempty"`
	Steadiness        *int `json:"steadiness,omitempty"`
	Conscientiousness *int `json:"conscientiousness,omitempty"`
}

// IsEmpty indica que ningun rasgo fue especificado.
func (p PartialDISC) IsEmpty() bool {
	return p.Dominance == nil && p.Influence == nil && p.Steadiness == nil && p.Conscientiousness == nil
}

// PersonalityProfile agrega los tres marcos. Se reemplaza entero en cada reevaluacion.
type PersonalityProfile struct {
	BigFive      BigFiveTraits `json:"big_five"`
	MBTI         MBTITraits    `json:"mbti"`
	DISC         DISCTraits    `json:"disc"`
	LastAssessed time.Time     `json:"last_assessed"`
}

// IdealPersonality es el objetivo de un puesto; cualquier marco puede faltar.
type IdealPersonality struct {
	BigFive   *PartialBigFive `json:"big_five,omitempty"`
	DISC      *PartialDISC    `json:"disc,omitempty"`
	MBTITypes []MBTIType      `json:"mbti_types,omitempty"`
}

// ClampScore limita un valor a la escala [0,100].
func ClampScore(v int) int {
	if v < MinScore {
		return MinScore
	}
	if v > MaxScore {
		return MaxScore
	}
	return v
}

// IntPtr simplifica construir objetivos parciales.
func IntPtr(v int) *int {
	return &v
}
