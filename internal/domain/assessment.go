package domain

import "time"

// Framework identifica el cuestionario de una evaluacion.
type Framework string

const (
	FrameworkBigFive Framework = "big_five"
	FrameworkDISC    Framework = "disc"
	FrameworkMBTI    Framework = "mbti"
)

func (f Framework) Valid() bool {
	return f == FrameworkBigFive || f == FrameworkDISC || f == FrameworkMBTI
}

// AssessmentQuestion es un item Likert 1-5.
// Trait aplica a Big Five y DISC; Dimension/Direction a MBTI.
type AssessmentQuestion struct {
	ID        string    `json:"id"`
	Framework Framework `json:"framework"`
	Text      string    `json:"text"`
	Trait     string    `json:"trait,omitempty"`
	Reverse   bool      `json:"reverse,omitempty"`
	Dimension string    `json:"dimension,omitempty"` // IE, SN, TF, JP
	Direction string    `json:"direction,omitempty"` // first = I/S/T/J, second = E/N/F/P
}

// AssessmentResult se guarda aparte hasta fusionarse con el perfil.
type AssessmentResult struct {
	ID          string         `json:"id"`
	EmployeeID  string         `json:"employee_id"`
	Framework   Framework      `json:"framework"`
	BigFive     *BigFiveTraits `json:"big_five,omitempty"`
	DISC        *DISCTraits    `json:"disc,omitempty"`
	MBTI        *MBTITraits    `json:"mbti,omitempty"`
	CompletedAt time.Time      `json:"completed_at"`
	MergedAt    *time.Time     `json:"merged_at,omitempty"`
}
