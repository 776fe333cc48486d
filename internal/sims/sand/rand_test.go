package sand

// scriptedRand replays fixed sequences. Exhausted sequences return false and
// 0, which keeps the gravity rule deterministic and opens the paint gate.
type scriptedRand struct {
	bools  []bool
	floats []float64
}

func (r *scriptedRand) Bool() bool {
	if len(r.bools) == 0 {
		return false
	}
	b := r.bools[0]
	r.bools = r.bools[1:]
	return b
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}
