package problemgen

import (
	"math/rand/v2"
	"strconv"
	"strings"
)

// maxExpressionMagnitude bounds every intermediate value so int64
// arithmetic can never overflow.
const maxExpressionMagnitude = 1_000_000_000

// bodmasPadding widens the multiple-choice sampling range beyond |answer|.
const bodmasPadding = 15

// fragment is a partially built expression.
type fragment struct {
	text  string
	value int64

	// atomic fragments need no parentheses as operands of multiplication,
	// division, or negation: non-negative literals, products, quotients,
	// powers and parenthesized expressions.
	atomic bool

	// literal is set for bare numbers, including negative ones.
	literal bool

	// parenthesized is set when the whole text is wrapped in one pair of
	// parentheses.
	parenthesized bool
}

func literalFragment(n int64) fragment {
	return fragment{
		text:    strconv.FormatInt(n, 10),
		value:   n,
		atomic:  n >= 0,
		literal: true,
	}
}

func wrap(text string) string { return "(" + text + ")" }

// operand renders f for use where non-atomic operands need grouping.
func (f fragment) operand() string {
	if f.atomic {
		return f.text
	}
	return wrap(f.text)
}

type opKind int

const (
	opNone opKind = iota
	opAdd
	opSubtract
	opMultiply
	opDivide
	opPower
	opNegate
	opParenthesize
)

var (
	binaryOps = []opKind{opAdd, opSubtract, opMultiply}
	unaryOps  = []opKind{opDivide, opPower, opNegate, opParenthesize}
)

var superscripts = []rune("⁰¹²³⁴⁵⁶⁷⁸⁹")

func superscript(n int) string {
	var b strings.Builder
	for _, d := range strconv.Itoa(n) {
		b.WriteRune(superscripts[d-'0'])
	}
	return b.String()
}

func withinBounds(v int64) bool {
	return v <= maxExpressionMagnitude && v >= -maxExpressionMagnitude
}

// expressionBuilder applies random operators to a running fragment.
// Each operator returns ok=false when it does not apply to its operands.
type expressionBuilder struct {
	rng *rand.Rand
}

func (b expressionBuilder) randomLiteral() fragment {
	return literalFragment(int64(randRange(b.rng, -10, 10)))
}

func (b expressionBuilder) add(lhs, rhs fragment) (fragment, bool) {
	v := lhs.value + rhs.value
	if !withinBounds(v) {
		return fragment{}, false
	}
	right := rhs.text
	if strings.HasPrefix(right, "-") {
		right = wrap(right)
	}
	return fragment{text: lhs.text + " + " + right, value: v}, true
}

func (b expressionBuilder) subtract(lhs, rhs fragment) (fragment, bool) {
	v := lhs.value - rhs.value
	if !withinBounds(v) {
		return fragment{}, false
	}
	return fragment{text: lhs.text + " - " + rhs.operand(), value: v}, true
}

func (b expressionBuilder) multiply(lhs, rhs fragment) (fragment, bool) {
	v := lhs.value * rhs.value
	if !withinBounds(v) {
		return fragment{}, false
	}
	return fragment{text: lhs.operand() + " × " + rhs.operand(), value: v, atomic: true}, true
}

// divide picks a divisor that divides the operand exactly, so the result
// is always an integer and the divisor is never zero.
func (b expressionBuilder) divide(f fragment) (fragment, bool) {
	var divisor int64
	if f.value == 0 {
		divisor = int64(randRange(b.rng, 1, 10))
	} else {
		fs := factors(abs(f.value))
		divisor = fs[b.rng.IntN(len(fs))]
	}
	return fragment{
		text:   f.operand() + " ÷ " + strconv.FormatInt(divisor, 10),
		value:  f.value / divisor,
		atomic: true,
	}, true
}

// power rejects negative or large bases; larger bases get smaller exponents.
func (b expressionBuilder) power(f fragment) (fragment, bool) {
	if f.value < 0 || f.value > 20 {
		return fragment{}, false
	}
	maxExp := 2
	switch {
	case f.value <= 2:
		maxExp = 5
	case f.value <= 4:
		maxExp = 3
	}
	exp := randRange(b.rng, 1, maxExp)
	v := int64(1)
	for range exp {
		v *= f.value
	}
	base := f.text
	if !f.literal && !f.parenthesized {
		base = wrap(base)
	}
	return fragment{text: base + superscript(exp), value: v, atomic: true}, true
}

func (b expressionBuilder) negate(f fragment) (fragment, bool) {
	return fragment{text: "-" + f.operand(), value: -f.value}, true
}

// parenthesize only applies to fragments that are not already grouped.
func (b expressionBuilder) parenthesize(f fragment) (fragment, bool) {
	if f.literal || f.atomic {
		return fragment{}, false
	}
	return fragment{text: wrap(f.text), value: f.value, atomic: true, parenthesized: true}, true
}

func (b expressionBuilder) applyBinary(op opKind, lhs, rhs fragment) (fragment, bool) {
	switch op {
	case opAdd:
		return b.add(lhs, rhs)
	case opSubtract:
		return b.subtract(lhs, rhs)
	default:
		return b.multiply(lhs, rhs)
	}
}

func (b expressionBuilder) applyUnary(op opKind, f fragment) (fragment, bool) {
	switch op {
	case opDivide:
		return b.divide(f)
	case opPower:
		return b.power(f)
	case opNegate:
		return b.negate(f)
	default:
		return b.parenthesize(f)
	}
}

// build runs iterations successful operator steps starting from a random
// literal. An operator equal to the previous successful one, or one that
// does not apply, is discarded without consuming an iteration.
func (b expressionBuilder) build(iterations int) fragment {
	expr := b.randomLiteral()
	previous := opNone
	for iterations > 0 {
		var (
			op   opKind
			next fragment
			ok   bool
		)
		if b.rng.IntN(2) == 0 {
			op = binaryOps[b.rng.IntN(len(binaryOps))]
			if op == previous {
				continue
			}
			other := b.randomLiteral()
			if b.rng.IntN(2) == 0 {
				next, ok = b.applyBinary(op, expr, other)
			} else {
				next, ok = b.applyBinary(op, other, expr)
			}
		} else {
			op = unaryOps[b.rng.IntN(len(unaryOps))]
			if op == previous {
				continue
			}
			next, ok = b.applyUnary(op, expr)
		}
		if !ok {
			continue
		}
		expr = next
		previous = op
		iterations--
	}
	return expr
}

// ArithmeticGenerator produces "Evaluate ..." questions over integer
// expressions rendered with standard operator precedence.
type ArithmeticGenerator struct {
	rng *rand.Rand
}

var _ Generator = (*ArithmeticGenerator)(nil)

// NewArithmeticGenerator creates an ArithmeticGenerator.
func NewArithmeticGenerator(rng *rand.Rand) *ArithmeticGenerator {
	return &ArithmeticGenerator{rng: rng}
}

func (g *ArithmeticGenerator) Name() string { return "bodmas" }

// iterations returns how many operator steps to apply. Both the base range
// and the progression bonus are larger on Hard.
func (g *ArithmeticGenerator) iterations(in GenerateInput) int {
	p := in.Progress()
	if in.Difficulty == Hard {
		f := scaledInt(p, 0, 15)
		return randRange(g.rng, 5+f, 10+f)
	}
	f := scaledInt(p, 0, 4)
	return randRange(g.rng, 2+f, 4+f)
}

func (g *ArithmeticGenerator) Generate(in GenerateInput) Question {
	expr := expressionBuilder{rng: g.rng}.build(g.iterations(in))
	prompt := "Evaluate " + expr.text
	answer := strconv.FormatInt(expr.value, 10)

	if g.rng.IntN(2) == 0 {
		return NewInput(prompt, answer, integerCheck(expr.value))
	}

	// Candidates span ±(|answer|+padding) around zero.
	spread := abs(expr.value) + bodmasPadding
	wrong := Distractors(expr.value, ChoiceCount-1, func(widen int) int64 {
		r := spread * int64(widen)
		return g.rng.Int64N(2*r+1) - r
	})
	labels := make([]string, len(wrong))
	for i, w := range wrong {
		labels[i] = strconv.FormatInt(w, 10)
	}
	return newMultipleChoice(g.rng, prompt, answer, labels)
}

// factors returns every positive divisor of n (n > 0) in ascending order.
func factors(n int64) []int64 {
	var small, large []int64
	for i := int64(1); i*i <= n; i++ {
		if n%i != 0 {
			continue
		}
		small = append(small, i)
		if j := n / i; j != i {
			large = append(large, j)
		}
	}
	for i := len(large) - 1; i >= 0; i-- {
		small = append(small, large[i])
	}
	return small
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
