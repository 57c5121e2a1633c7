package service

// fixedRandom devuelve siempre los mismos valores para tests deterministas.
type fixedRandom struct {
	intVal   int
	floatVal float64
	intCalls int
}

func (f *fixedRandom) Intn(n int) int {
	f.intCalls++
	if n <= 0 {
		return 0
	}
	return f.intVal % n
}

func (f *fixedRandom) Float64() float64 {
	return f.floatVal
}
