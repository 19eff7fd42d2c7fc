package problemgen

import (
	"math/rand/v2"
	"slices"
	"strings"
)

// LinearGenerator produces "Simplify ..." questions that collect like terms
// of a linear expression.
type LinearGenerator struct {
	rng *rand.Rand
}

var _ Generator = (*LinearGenerator)(nil)

// NewLinearGenerator creates a LinearGenerator.
func NewLinearGenerator(rng *rand.Rand) *LinearGenerator {
	return &LinearGenerator{rng: rng}
}

func (g *LinearGenerator) Name() string { return "linear" }

type term struct {
	coef     int
	variable string
}

// renderTerms joins terms into an expression such as "3a - b + 2c".
// Zero terms are skipped; an empty expression renders as "0".
func renderTerms(terms []term) string {
	var b strings.Builder
	for _, t := range terms {
		if t.coef == 0 {
			continue
		}
		if b.Len() == 0 {
			b.WriteString(leadingTerm(t.coef, t.variable))
			continue
		}
		b.WriteString(joinSign(t.coef))
		b.WriteString(coefficientTerm(absInt(t.coef), t.variable))
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

// simplified renders per-variable sums in alphabetical order.
func simplified(vars []string, sums map[string]int) string {
	terms := make([]term, 0, len(vars))
	for _, v := range vars {
		terms = append(terms, term{coef: sums[v], variable: v})
	}
	return renderTerms(terms)
}

func (g *LinearGenerator) pickVariables(in GenerateInput) []string {
	n := randRange(g.rng, 1, 2)
	if in.Difficulty == Hard {
		n = randRange(g.rng, 3, 8)
	}
	alphabet := strings.Split("abcdefghijklmnopqrstuvwxyz", "")
	g.rng.Shuffle(len(alphabet), func(i, j int) {
		alphabet[i], alphabet[j] = alphabet[j], alphabet[i]
	})
	vars := alphabet[:n]
	slices.Sort(vars)
	return vars
}

func (g *LinearGenerator) Generate(in GenerateInput) Question {
	p := in.Progress()
	vars := g.pickVariables(in)
	maxCoef := int(float64(scaledInt(p, 5, 12)) * in.multiplier(3))
	maxTerms := scaledInt(p, 2, 4)
	if in.Difficulty == Hard {
		maxTerms = scaledInt(p, 3, 5)
	}

	var terms []term
	sums := make(map[string]int, len(vars))
	for _, v := range vars {
		for range randRange(g.rng, 2, maxTerms) {
			c := randSign(g.rng) * randRange(g.rng, 1, maxCoef)
			terms = append(terms, term{coef: c, variable: v})
			sums[v] += c
		}
	}
	g.rng.Shuffle(len(terms), func(i, j int) {
		terms[i], terms[j] = terms[j], terms[i]
	})

	answer := simplified(vars, sums)
	wrong := Distractors(answer, ChoiceCount-1, func(widen int) string {
		perturbed := make(map[string]int, len(sums))
		for v, s := range sums {
			r := (absInt(s)/2 + 2) * widen
			perturbed[v] = s + randRange(g.rng, -r, r)
		}
		return simplified(vars, perturbed)
	})
	return newMultipleChoice(g.rng, "Simplify "+renderTerms(terms), answer, wrong)
}
