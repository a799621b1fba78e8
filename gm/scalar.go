package gm

// Clamp limits value to the closed range [lo, hi].
func Clamp[S Scalar](value, lo, hi S) S {
	if value < lo {
		return lo
	}

	if value > hi {
		return hi
	}

	return value
}

func Lerp[S Scalar](a, b, t S) S {
	return a + (b-a)*t
}
