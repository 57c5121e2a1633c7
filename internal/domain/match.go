package domain

// PersonalityBreakdown guarda los sub-puntajes de cada marco.
type PersonalityBreakdown struct {
	BigFive int `json:"big_five"`
	MBTI    int `json:"mbti"`
	DISC    int `json:"disc"`
}

// PersonalityMatch es el resultado del ensamble de los tres marcos.
type PersonalityMatch struct {
	Score          int                  `json:"score"`
	Breakdown      PersonalityBreakdown `json:"breakdown"`
	Strengths      []string             `json:"strengths"`
	Considerations []string             `json:"considerations"`
}

// MatchReason es una afirmacion con su evidencia textual concreta.
type MatchReason struct {
	Point    string `json:"point"`
	Evidence string `json:"evidence"`
}

// JobMatch se calcula por consulta; no se persiste.
type JobMatch struct {
	EmployeeID       string           `json:"employee_id"`
	JobID            string           `json:"job_id"`
	OverallScore     int              `json:"overall_score"`
	PersonalityMatch PersonalityMatch `json:"personality_match"`
	SkillsMatch      int              `json:"skills_match"`
	InterestsMatch   int              `json:"interests_match"`
	PreferencesMatch int              `json:"preferences_match"`
	Reasoning        []MatchReason    `json:"reasoning"`
}
