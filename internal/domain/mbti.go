package domain

import "strings"

// MBTIType es uno de los 16 tipos cerrados.
type MBTIType string

const (
	INTJ MBTIType = "INTJ"
	INTP MBTIType = "INTP"
	ENTJ MBTIType = "ENTJ"
	ENTP MBTIType = "ENTP"
	INFJ MBTIType = "INFJ"
	INFP MBTIType = "INFP"
	ENFJ MBTIType = "ENFJ"
	ENFP MBTIType = "ENFP"
	ISTJ MBTIType = "ISTJ"
	ISFJ MBTIType = "ISFJ"
	ESTJ MBTIType = "ESTJ"
	ESFJ MBTIType = "ESFJ"
	ISTP MBTIType = "ISTP"
	ISFP MBTIType = "ISFP"
	ESTP MBTIType = "ESTP"
	ESFP MBTIType = "ESFP"
)

var mbtiTypes = [...]MBTIType{
	INTJ, INTP, ENTJ, ENTP,
	INFJ, INFP, ENFJ, ENFP,
	ISTJ, ISFJ, ESTJ, ESFJ,
	ISTP, ISFP, ESTP, ESFP,
}

// AllMBTITypes devuelve los 16 tipos en orden fijo.
func AllMBTITypes() []MBTIType {
	out := make([]MBTIType, len(mbtiTypes))
	copy(out, mbtiTypes[:])
	return out
}

// ParseMBTIType normaliza y valida un tipo recibido como texto.
func ParseMBTIType(s string) (MBTIType, bool) {
	t := MBTIType(strings.ToUpper(strings.TrimSpace(s)))
	return t, t.Valid()
}

// Valid indica si el tipo pertenece al enum.
func (t MBTIType) Valid() bool {
	for _, known := range mbtiTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Letter devuelve la letra del tipo en el eje dado.
func (t MBTIType) Letter(axis MBTIAxis) byte {
	if len(t) != 4 || axis < AxisIE || axis > AxisJP {
		return 0
	}
	return t[axis]
}

// MBTIAxis identifica una de las cuatro dicotomias.
type MBTIAxis int

const (
	AxisIE MBTIAxis = iota
	AxisSN
	AxisTF
	AxisJP
)

// MBTIAxes en orden de posicion dentro del tipo.
var MBTIAxes = [...]MBTIAxis{AxisIE, AxisSN, AxisTF, AxisJP}

var axisLetters = [...][2]byte{
	{'I', 'E'},
	{'S', 'N'},
	{'T', 'F'},
	{'J', 'P'},
}

// String devuelve el par de letras del eje, p.ej. "IE".
func (a MBTIAxis) String() string {
	if a < AxisIE || a > AxisJP {
		return ""
	}
	return string(axisLetters[a][:])
}

// ParseMBTIAxis convierte "IE", "SN", "TF" o "JP" en su eje.
func ParseMBTIAxis(s string) (MBTIAxis, bool) {
	for _, axis := range MBTIAxes {
		if axis.String() == s {
			return axis, true
		}
	}
	return 0, false
}

// Low es la primera letra del par (puntaje < 50).
func (a MBTIAxis) Low() byte { return axisLetters[a][0] }

// High es la segunda letra del par (puntaje > 50).
func (a MBTIAxis) High() byte { return axisLetters[a][1] }

// MBTITraits combina el tipo con los cuatro puntajes continuos.
// Cada puntaje va de la primera letra del par (0) a la segunda (100).
type MBTITraits struct {
	Type                     MBTIType `json:"type"`
	IntroversionExtraversion float64  `json:"introversion_extraversion"` // 0=I, 100=E
	IntuitionSensing         float64  `json:"intuition_sensing"`         // 0=S, 100=N
	ThinkingFeeling          float64  `json:"thinking_feeling"`          // 0=T, 100=F
	JudgingPerceiving        float64  `json:"judging_perceiving"`        // 0=J, 100=P
}

// Axis devuelve el puntaje continuo del eje.
func (m MBTITraits) Axis(axis MBTIAxis) float64 {
	switch axis {
	case AxisIE:
		return m.IntroversionExtraversion
	case AxisSN:
		return m.IntuitionSensing
	case AxisTF:
		return m.ThinkingFeeling
	case AxisJP:
		return m.JudgingPerceiving
	}
	return NeutralScore
}

// SetAxis asigna el puntaje de un eje.
func (m *MBTITraits) SetAxis(axis MBTIAxis, v float64) {
	switch axis {
	case AxisIE:
		m.IntroversionExtraversion = v
	case AxisSN:
		m.IntuitionSensing = v
	case AxisTF:
		m.ThinkingFeeling = v
	case AxisJP:
		m.JudgingPerceiving = v
	}
}

// Consistent verifica que tipo y puntajes no se contradigan.
// Un 50 exacto es compatible con cualquiera de las dos letras.
func (m MBTITraits) Consistent() bool {
	if !m.Type.Valid() {
		return false
	}
	for _, axis := range MBTIAxes {
		score := m.Axis(axis)
		if score < MinScore || score > MaxScore {
			return false
		}
		if m.Type.Letter(axis) == axis.High() && score < NeutralScore {
			return false
		}
		if m.Type.Letter(axis) == axis.Low() && score > NeutralScore {
			return false
		}
	}
	return true
}

// TypeFromAxes deriva el tipo a partir de los puntajes; 50 cae en la segunda letra.
func TypeFromAxes(ie, sn, tf, jp float64) MBTIType {
	scores := [...]float64{ie, sn, tf, jp}
	b := make([]byte, 0, 4)
	for i, axis := range MBTIAxes {
		if scores[i] >= NeutralScore {
			b = append(b, axis.High())
		} else {
			b = append(b, axis.Low())
		}
	}
	return MBTIType(b)
}
