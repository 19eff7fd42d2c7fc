package problemgen

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
)

// DefaultMaxLeg is the largest leg length in the default triple table.
const DefaultMaxLeg = 2000

// Triple is an integer right triangle with legs A <= B and hypotenuse C.
type Triple struct {
	A, B, C int
}

// Triples is an immutable table of Pythagorean triples ordered by legs,
// so later entries have larger numbers.
type Triples struct {
	list []Triple
}

// NewTriples computes every triple with both legs at most maxLeg. It is
// meant to be called once at startup and shared.
func NewTriples(maxLeg int) *Triples {
	if maxLeg < 4 {
		maxLeg = 4
	}
	maxHyp := maxLeg * 3 / 2
	roots := make(map[int]int, maxHyp)
	for c := 1; c <= maxHyp; c++ {
		roots[c*c] = c
	}
	var list []Triple
	for a := 1; a <= maxLeg; a++ {
		for b := a; b <= maxLeg; b++ {
			if c, ok := roots[a*a+b*b]; ok {
				list = append(list, Triple{A: a, B: b, C: c})
			}
		}
	}
	return &Triples{list: list}
}

// Len returns the number of triples in the table.
func (t *Triples) Len() int { return len(t.list) }

// At returns the i-th triple.
func (t *Triples) At(i int) Triple { return t.list[i] }

var lengthUnits = []string{"mm", "cm", "m", "km"}

// HypotenuseGenerator asks for the hypotenuse of an integer right triangle.
// Distractors come from neighbouring triples, which share a magnitude with
// the answer.
type HypotenuseGenerator struct {
	rng     *rand.Rand
	triples *Triples
}

var _ Generator = (*HypotenuseGenerator)(nil)

// NewHypotenuseGenerator creates a HypotenuseGenerator over a triple table.
func NewHypotenuseGenerator(rng *rand.Rand, triples *Triples) *HypotenuseGenerator {
	return &HypotenuseGenerator{rng: rng, triples: triples}
}

func (g *HypotenuseGenerator) Name() string { return "hypotenuse" }

// index picks a table position. The window slides up the table with
// progression and reaches further on Hard.
func (g *HypotenuseGenerator) index(in GenerateInput) int {
	n := g.triples.Len()
	frac := ScaleRange(in.Progress(), 0.02, 0.2) * in.multiplier(4)
	hi := min(int(frac*float64(n)), n-1)
	return randRange(g.rng, hi/2, hi)
}

// neighbours collects up to count values from triples adjacent to idx,
// walking outward and skipping the answer and values already taken.
func (g *HypotenuseGenerator) neighbours(idx, answer, count int) []int {
	seen := map[int]bool{answer: true}
	var out []int
	for step := 1; len(out) < count && step < g.triples.Len(); step++ {
		for _, j := range []int{idx + step, idx - step} {
			if j < 0 || j >= g.triples.Len() {
				continue
			}
			t := g.triples.At(j)
			for _, v := range []int{t.C, t.B, t.A} {
				if len(out) == count || seen[v] {
					continue
				}
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

func (g *HypotenuseGenerator) Generate(in GenerateInput) Question {
	idx := g.index(in)
	t := g.triples.At(idx)
	unit := lengthUnits[g.rng.IntN(len(lengthUnits))]

	a, b := t.A, t.B
	if g.rng.IntN(2) == 0 {
		a, b = b, a
	}
	prompt := fmt.Sprintf(
		"A right-angled triangle has legs of %d%s and %d%s. How long is its hypotenuse?",
		a, unit, b, unit)

	label := func(v int) string { return strconv.Itoa(v) + unit }
	near := g.neighbours(idx, t.C, ChoiceCount-1)
	wrong := make([]string, 0, ChoiceCount-1)
	for _, v := range near {
		wrong = append(wrong, label(v))
	}
	// Tiny tables (only in tests) may not have enough neighbours.
	if len(wrong) < ChoiceCount-1 {
		extra := Distractors(t.C, ChoiceCount-1, func(widen int) int {
			return randRange(g.rng, 1, (t.C+5)*2*widen)
		})
		for _, v := range extra {
			if len(wrong) == ChoiceCount-1 {
				break
			}
			if !slices.Contains(wrong, label(v)) {
				wrong = append(wrong, label(v))
			}
		}
	}
	return newMultipleChoice(g.rng, prompt, label(t.C), wrong)
}
