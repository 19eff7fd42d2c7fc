package problemgen

import (
	"fmt"
	"math/rand/v2"
)

// geometryFormulaWeight is how many times the formula generator is listed
// in the geometry pool for each listing of the hypotenuse generator.
const geometryFormulaWeight = 4

// Bank maps content areas to generator pools and builds question lists.
type Bank struct {
	rng   *rand.Rand
	pools map[ContentArea][]Generator
}

// NewBank wires the five generators into their content-area pools. All
// generators share rng; triples is the precomputed hypotenuse table.
func NewBank(rng *rand.Rand, triples *Triples) *Bank {
	formula := NewGeometryGenerator(rng)
	geometry := make([]Generator, 0, geometryFormulaWeight+1)
	for range geometryFormulaWeight {
		geometry = append(geometry, formula)
	}
	geometry = append(geometry, NewHypotenuseGenerator(rng, triples))

	return &Bank{
		rng: rng,
		pools: map[ContentArea][]Generator{
			NumberTheory: {NewArithmeticGenerator(rng)},
			Algebra:      {NewQuadraticGenerator(rng), NewLinearGenerator(rng)},
			Geometry:     geometry,
		},
	}
}

// Pool returns the generators eligible for a content area. The same pools
// serve both difficulties; generators scale themselves from the input.
func (b *Bank) Pool(area ContentArea) []Generator {
	return b.pools[area]
}

// Pick selects a content area uniformly from areas, then a generator
// uniformly from that area's pool.
func (b *Bank) Pick(areas []ContentArea) (Generator, error) {
	if len(areas) == 0 {
		return nil, fmt.Errorf("no content areas enabled")
	}
	area := areas[b.rng.IntN(len(areas))]
	pool := b.pools[area]
	if len(pool) == 0 {
		return nil, fmt.Errorf("no generators for content area %q", area)
	}
	return pool[b.rng.IntN(len(pool))], nil
}

// Build generates count questions. Question i is generated with index i so
// difficulty ramps across the list.
func (b *Bank) Build(difficulty Difficulty, areas []ContentArea, count int) ([]Question, error) {
	questions := make([]Question, 0, count)
	for i := range count {
		gen, err := b.Pick(areas)
		if err != nil {
			return nil, err
		}
		questions = append(questions, gen.Generate(GenerateInput{
			Difficulty: difficulty,
			Index:      i,
			Count:      count,
		}))
	}
	return questions, nil
}

// Generators returns every distinct generator in the bank, in content-area
// order.
func (b *Bank) Generators() []Generator {
	var out []Generator
	seen := make(map[string]bool)
	for _, area := range AllContentAreas() {
		for _, g := range b.pools[area] {
			if seen[g.Name()] {
				continue
			}
			seen[g.Name()] = true
			out = append(out, g)
		}
	}
	return out
}

// Generator looks up a generator by name.
func (b *Bank) Generator(name string) (Generator, error) {
	for _, g := range b.Generators() {
		if g.Name() == name {
			return g, nil
		}
	}
	return nil, fmt.Errorf("unknown generator %q", name)
}
