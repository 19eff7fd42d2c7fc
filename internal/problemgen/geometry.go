package problemgen

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// maxDecimalPlaces is the most precision a geometry answer asks for.
const maxDecimalPlaces = 4

// shape holds the random dimensions available to one formula.
type shape struct {
	g    *GeometryGenerator
	max  int
	unit string
}

// length draws a side length in [1, max].
func (s shape) length() int { return randRange(s.g.rng, 1, s.max) }

// area draws an area in [1, max²].
func (s shape) area() int { return randRange(s.g.rng, 1, s.max*s.max) }

// perimeter draws a perimeter or circumference in [1, 4·max].
func (s shape) perimeter() int { return randRange(s.g.rng, 1, 4*s.max) }

func (s shape) sq() string { return s.unit + "²" }

// formula produces a prompt (without the precision clause), the exact
// answer, and the answer's unit.
type formula func(s shape) (prompt string, answer float64, unit string)

var formulas = []formula{
	// Circle.
	func(s shape) (string, float64, string) {
		r := s.length()
		return fmt.Sprintf("A circle has a radius of %d%s. What is its area?", r, s.unit),
			math.Pi * float64(r*r), s.sq()
	},
	func(s shape) (string, float64, string) {
		d := s.length()
		return fmt.Sprintf("A circle has a diameter of %d%s. What is its area?", d, s.unit),
			math.Pi * float64(d*d) / 4, s.sq()
	},
	func(s shape) (string, float64, string) {
		c := s.perimeter()
		return fmt.Sprintf("A circle has a circumference of %d%s. What is its area?", c, s.unit),
			float64(c*c) / (4 * math.Pi), s.sq()
	},
	func(s shape) (string, float64, string) {
		r := s.length()
		return fmt.Sprintf("A circle has a radius of %d%s. What is its circumference?", r, s.unit),
			2 * math.Pi * float64(r), s.unit
	},
	func(s shape) (string, float64, string) {
		d := s.length()
		return fmt.Sprintf("A circle has a diameter of %d%s. What is its circumference?", d, s.unit),
			math.Pi * float64(d), s.unit
	},
	func(s shape) (string, float64, string) {
		a := s.area()
		return fmt.Sprintf("A circle has an area of %d%s. What is its circumference?", a, s.sq()),
			2 * math.Sqrt(math.Pi*float64(a)), s.unit
	},
	func(s shape) (string, float64, string) {
		d := s.length()
		return fmt.Sprintf("A circle has a diameter of %d%s. What is its radius?", d, s.unit),
			float64(d) / 2, s.unit
	},
	func(s shape) (string, float64, string) {
		c := s.perimeter()
		return fmt.Sprintf("A circle has a circumference of %d%s. What is its radius?", c, s.unit),
			float64(c) / (2 * math.Pi), s.unit
	},
	func(s shape) (string, float64, string) {
		a := s.area()
		return fmt.Sprintf("A circle has an area of %d%s. What is its radius?", a, s.sq()),
			math.Sqrt(float64(a) / math.Pi), s.unit
	},
	func(s shape) (string, float64, string) {
		r := s.length()
		return fmt.Sprintf("A circle has a radius of %d%s. What is its diameter?", r, s.unit),
			float64(2 * r), s.unit
	},
	func(s shape) (string, float64, string) {
		c := s.perimeter()
		return fmt.Sprintf("A circle has a circumference of %d%s. What is its diameter?", c, s.unit),
			float64(c) / math.Pi, s.unit
	},
	func(s shape) (string, float64, string) {
		a := s.area()
		return fmt.Sprintf("A circle has an area of %d%s. What is its diameter?", a, s.sq()),
			2 * math.Sqrt(float64(a)/math.Pi), s.unit
	},

	// Square.
	func(s shape) (string, float64, string) {
		l := s.length()
		return fmt.Sprintf("A square has sides of %d%s. What is its area?", l, s.unit),
			float64(l * l), s.sq()
	},
	func(s shape) (string, float64, string) {
		l := s.length()
		return fmt.Sprintf("A square has sides of %d%s. What is its perimeter?", l, s.unit),
			float64(4 * l), s.unit
	},
	func(s shape) (string, float64, string) {
		a := s.area()
		return fmt.Sprintf("A square has an area of %d%s. How long is each side?", a, s.sq()),
			math.Sqrt(float64(a)), s.unit
	},
	func(s shape) (string, float64, string) {
		p := s.perimeter()
		return fmt.Sprintf("A square has a perimeter of %d%s. How long is each side?", p, s.unit),
			float64(p) / 4, s.unit
	},

	// Rectangle.
	func(s shape) (string, float64, string) {
		l, w := s.length(), s.length()
		return fmt.Sprintf("A rectangle is %d%s long and %d%s wide. What is its area?", l, s.unit, w, s.unit),
			float64(l * w), s.sq()
	},
	func(s shape) (string, float64, string) {
		l, w := s.length(), s.length()
		return fmt.Sprintf("A rectangle is %d%s long and %d%s wide. What is its perimeter?", l, s.unit, w, s.unit),
			float64(2 * (l + w)), s.unit
	},
	func(s shape) (string, float64, string) {
		l, a := s.length(), s.area()
		return fmt.Sprintf("A rectangle is %d%s long and has an area of %d%s. How wide is it?", l, s.unit, a, s.sq()),
			float64(a) / float64(l), s.unit
	},
	func(s shape) (string, float64, string) {
		l := s.length()
		p := 2*l + randRange(s.g.rng, 1, 2*s.max)
		return fmt.Sprintf("A rectangle is %d%s long and has a perimeter of %d%s. How wide is it?", l, s.unit, p, s.unit),
			float64(p-2*l) / 2, s.unit
	},

	// Triangle.
	func(s shape) (string, float64, string) {
		b, h := s.length(), s.length()
		return fmt.Sprintf("A triangle has a base of %d%s and a height of %d%s. What is its area?", b, s.unit, h, s.unit),
			float64(b*h) / 2, s.sq()
	},
	func(s shape) (string, float64, string) {
		a, b := s.area(), s.length()
		return fmt.Sprintf("A triangle has an area of %d%s and a base of %d%s. What is its height?", a, s.sq(), b, s.unit),
			2 * float64(a) / float64(b), s.unit
	},
	func(s shape) (string, float64, string) {
		a, h := s.area(), s.length()
		return fmt.Sprintf("A triangle has an area of %d%s and a height of %d%s. How long is its base?", a, s.sq(), h, s.unit),
			2 * float64(a) / float64(h), s.unit
	},

	// Trapezoid.
	func(s shape) (string, float64, string) {
		a, b, h := s.length(), s.length(), s.length()
		return fmt.Sprintf("A trapezoid has parallel sides of %d%s and %d%s and a height of %d%s. What is its area?",
				a, s.unit, b, s.unit, h, s.unit),
			float64((a+b)*h) / 2, s.sq()
	},

	// Rhombus.
	func(s shape) (string, float64, string) {
		p, q := s.length(), s.length()
		return fmt.Sprintf("A rhombus has diagonals of %d%s and %d%s. What is its area?", p, s.unit, q, s.unit),
			float64(p*q) / 2, s.sq()
	},
	func(s shape) (string, float64, string) {
		l := s.length()
		return fmt.Sprintf("A rhombus has sides of %d%s. What is its perimeter?", l, s.unit),
			float64(4 * l), s.unit
	},

	// Kite.
	func(s shape) (string, float64, string) {
		p, q := s.length(), s.length()
		return fmt.Sprintf("A kite has diagonals of %d%s and %d%s. What is its area?", p, s.unit, q, s.unit),
			float64(p*q) / 2, s.sq()
	},

	// Parallelogram.
	func(s shape) (string, float64, string) {
		b, h := s.length(), s.length()
		return fmt.Sprintf("A parallelogram has a base of %d%s and a perpendicular height of %d%s. What is its area?",
				b, s.unit, h, s.unit),
			float64(b * h), s.sq()
	},
}

// FormulaCount returns the number of geometry formula variants.
func FormulaCount() int { return len(formulas) }

// GeometryGenerator asks for areas, perimeters and lengths of 2D shapes.
type GeometryGenerator struct {
	rng *rand.Rand
}

var _ Generator = (*GeometryGenerator)(nil)

// NewGeometryGenerator creates a GeometryGenerator.
func NewGeometryGenerator(rng *rand.Rand) *GeometryGenerator {
	return &GeometryGenerator{rng: rng}
}

func (g *GeometryGenerator) Name() string { return "geometry" }

// precision returns 0 for whole answers, otherwise a random number of
// decimal places in [0, maxDecimalPlaces]. Small answers get enough places
// that they do not round to zero.
func (g *GeometryGenerator) precision(answer float64) int {
	if isWhole(answer) {
		return 0
	}
	dp := g.rng.IntN(maxDecimalPlaces + 1)
	for dp < maxDecimalPlaces && roundTo(answer, dp) == 0 {
		dp++
	}
	return dp
}

func precisionClause(dp int, unit string) string {
	switch dp {
	case 0:
		return fmt.Sprintf("Give your answer in %s to the nearest whole number.", unit)
	case 1:
		return fmt.Sprintf("Give your answer in %s to 1 decimal place.", unit)
	default:
		return fmt.Sprintf("Give your answer in %s to %d decimal places.", unit, dp)
	}
}

func (g *GeometryGenerator) Generate(in GenerateInput) Question {
	s := shape{
		g:    g,
		max:  int(float64(scaledInt(in.Progress(), 10, 30)) * in.multiplier(4)),
		unit: lengthUnits[g.rng.IntN(len(lengthUnits))],
	}
	text, exact, unit := formulas[g.rng.IntN(len(formulas))](s)
	dp := g.precision(exact)
	prompt := text + " " + precisionClause(dp, unit)
	answer := formatDecimal(exact, dp)

	if g.rng.IntN(2) == 0 {
		return NewInput(prompt, answer, decimalCheck(answer, dp))
	}

	wrong := Distractors(answer, ChoiceCount-1, func(widen int) string {
		lo := exact / float64(3*widen)
		hi := exact * float64(3*widen)
		v := roundTo(lo+g.rng.Float64()*(hi-lo), dp)
		if v <= 0 {
			return answer
		}
		return formatDecimal(v, dp)
	})
	return newMultipleChoice(g.rng, prompt, answer, wrong)
}
