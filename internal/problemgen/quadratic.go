package problemgen

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// QuadraticGenerator produces "Factorise ..." questions for polynomials
// of the form k(x+a)(x+b).
type QuadraticGenerator struct {
	rng *rand.Rand
}

var _ Generator = (*QuadraticGenerator)(nil)

// NewQuadraticGenerator creates a QuadraticGenerator.
func NewQuadraticGenerator(rng *rand.Rand) *QuadraticGenerator {
	return &QuadraticGenerator{rng: rng}
}

func (g *QuadraticGenerator) Name() string { return "quadratic" }

// quadratic is k(x+a)(x+b).
type quadratic struct {
	k, a, b int
}

// coefficients returns the standard-form coefficients of k(x+a)(x+b).
func (q quadratic) coefficients() (int, int, int) {
	return q.k, q.k * (q.a + q.b), q.k * q.a * q.b
}

// Polynomial renders the expanded form, e.g. "x^2 - x - 6". Unit
// coefficients are elided and zero terms omitted.
func (q quadratic) Polynomial() string {
	x2, x1, x0 := q.coefficients()
	var b strings.Builder
	b.WriteString(leadingTerm(x2, "x^2"))
	if x1 != 0 {
		b.WriteString(joinSign(x1))
		b.WriteString(coefficientTerm(absInt(x1), "x"))
	}
	if x0 != 0 {
		b.WriteString(joinSign(x0))
		b.WriteString(strconv.Itoa(absInt(x0)))
	}
	return b.String()
}

// Factored renders the canonical factored form. Factors are ordered by
// descending constant, a zero constant renders as a bare x placed first,
// and a repeated factor is squared: "(x+2)(x-3)", "x(x+4)", "3(x-1)^2".
func (q quadratic) Factored() string {
	a, b := q.a, q.b
	if a < b {
		a, b = b, a
	}
	var body string
	switch {
	case a == b && a == 0:
		body = "x^2"
	case a == b:
		body = factor(a) + "^2"
	case b == 0:
		body = "x" + factor(a)
	case a == 0:
		body = "x" + factor(b)
	default:
		body = factor(a) + factor(b)
	}
	if q.k == 1 {
		return body
	}
	return strconv.Itoa(q.k) + body
}

// factor renders (x+c) for a non-zero c.
func factor(c int) string {
	if c < 0 {
		return fmt.Sprintf("(x-%d)", -c)
	}
	return fmt.Sprintf("(x+%d)", c)
}

func (g *QuadraticGenerator) draw(in GenerateInput) quadratic {
	p := in.Progress()
	maxRoot := int(float64(scaledInt(p, 3, 9)) * in.multiplier(2))
	q := quadratic{
		k: 1,
		a: randRange(g.rng, -maxRoot, maxRoot),
		b: randRange(g.rng, -maxRoot, maxRoot),
	}
	if in.Difficulty == Hard {
		q.k = randRange(g.rng, 2, scaledInt(p, 3, 6))
	}
	return q
}

// perturb moves a and b by up to half their magnitude plus two.
func (g *QuadraticGenerator) perturb(q quadratic, widen int) quadratic {
	shift := func(v int) int {
		r := (absInt(v)/2 + 2) * widen
		return v + randRange(g.rng, -r, r)
	}
	return quadratic{k: q.k, a: shift(q.a), b: shift(q.b)}
}

func (g *QuadraticGenerator) Generate(in GenerateInput) Question {
	q := g.draw(in)
	answer := q.Factored()
	wrong := Distractors(answer, ChoiceCount-1, func(widen int) string {
		return g.perturb(q, widen).Factored()
	})
	return newMultipleChoice(g.rng, "Factorise "+q.Polynomial(), answer, wrong)
}

// leadingTerm renders the first term of a polynomial with its sign attached.
func leadingTerm(coef int, symbol string) string {
	if coef < 0 {
		return "-" + coefficientTerm(-coef, symbol)
	}
	return coefficientTerm(coef, symbol)
}

// coefficientTerm renders a positive coefficient, eliding 1.
func coefficientTerm(coef int, symbol string) string {
	if coef == 1 {
		return symbol
	}
	return strconv.Itoa(coef) + symbol
}

// joinSign returns the separator placed before a term with the given sign.
func joinSign(coef int) string {
	if coef < 0 {
		return " - "
	}
	return " + "
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
