package config

// UpperAt returns the upper bound of the base range at the given difficulty.
// The bound moves in discrete steps, not continuously: each step whose
// threshold the difficulty exceeds replaces the previous bound.
func (r RampConfig) UpperAt(difficulty int) int {
	upper := r.BaseMax
	for _, s := range r.Steps {
		if difficulty > s.Above {
			upper = s.Max
		}
	}
	return upper
}
