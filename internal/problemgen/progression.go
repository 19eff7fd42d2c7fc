package problemgen

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Progress maps a question's position within a test to [0, 1]:
// 0 for the first question and 1 for the last. Count must be at least 2.
func Progress(index, count int) float64 {
	if count < 2 {
		panic(fmt.Sprintf("problemgen: progress needs at least 2 questions, got %d", count))
	}
	return float64(index) / float64(count-1)
}

// ScaleRange linearly interpolates between outMin and outMax.
func ScaleRange(progress, outMin, outMax float64) float64 {
	return outMin + progress*(outMax-outMin)
}

// scaledInt is ScaleRange rounded to the nearest integer.
func scaledInt(progress, outMin, outMax float64) int {
	return int(math.Round(ScaleRange(progress, outMin, outMax)))
}

// randRange returns a uniform integer in [lo, hi]. The bounds may be given
// in either order.
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + rng.IntN(hi-lo+1)
}

// randSign returns -1 or 1 with equal probability.
func randSign(rng *rand.Rand) int {
	if rng.IntN(2) == 0 {
		return -1
	}
	return 1
}
