package problemgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBank(seed uint64) *Bank {
	return NewBank(testRNG(seed), NewTriples(300))
}

func poolNames(gens []Generator) []string {
	names := make([]string, len(gens))
	for i, g := range gens {
		names[i] = g.Name()
	}
	return names
}

func TestBank_Pools(t *testing.T) {
	b := newTestBank(31)

	assert.Equal(t, []string{"bodmas"}, poolNames(b.Pool(NumberTheory)))
	assert.Equal(t, []string{"quadratic", "linear"}, poolNames(b.Pool(Algebra)))
	assert.Equal(t,
		[]string{"geometry", "geometry", "geometry", "geometry", "hypotenuse"},
		poolNames(b.Pool(Geometry)))
}

func TestBank_Generators(t *testing.T) {
	b := newTestBank(32)
	assert.Equal(t,
		[]string{"bodmas", "quadratic", "linear", "geometry", "hypotenuse"},
		poolNames(b.Generators()))

	g, err := b.Generator("linear")
	require.NoError(t, err)
	assert.Equal(t, "linear", g.Name())

	_, err = b.Generator("calculus")
	assert.Error(t, err)
}

func TestBank_PickRespectsAreas(t *testing.T) {
	b := newTestBank(33)
	for range 100 {
		g, err := b.Pick([]ContentArea{Algebra})
		require.NoError(t, err)
		assert.Contains(t, []string{"quadratic", "linear"}, g.Name())
	}

	_, err := b.Pick(nil)
	assert.Error(t, err)
}

func TestBank_Build(t *testing.T) {
	b := newTestBank(34)
	for _, count := range []int{1, 15, 30, 60} {
		for _, diff := range []Difficulty{Normal, Hard} {
			qs, err := b.Build(diff, AllContentAreas(), count)
			require.NoError(t, err)
			require.Len(t, qs, count)
			for _, q := range qs {
				assert.NotEmpty(t, q.Text())
				assert.True(t, q.Validate(q.CorrectAnswer()).IsCorrect(), q.Text())
				if mc, ok := q.(*MultipleChoice); ok {
					assertWellFormedChoices(t, mc)
				}
			}
		}
	}
}

func TestBank_BuildNumberTheoryOnly(t *testing.T) {
	b := newTestBank(35)
	qs, err := b.Build(Normal, []ContentArea{NumberTheory}, 15)
	require.NoError(t, err)
	for _, q := range qs {
		assert.Regexp(t, `^Evaluate `, q.Text())
	}
}

func TestParseContentArea(t *testing.T) {
	tests := []struct {
		in   string
		want ContentArea
	}{
		{"number-theory", NumberTheory},
		{"Number_Theory", NumberTheory},
		{"algebra", Algebra},
		{" GEOMETRY ", Geometry},
	}
	for _, tt := range tests {
		got, err := ParseContentArea(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseContentArea("calculus")
	assert.Error(t, err)
}

func TestDifficulty_Text(t *testing.T) {
	var d Difficulty
	require.NoError(t, d.UnmarshalText([]byte("Hard")))
	assert.Equal(t, Hard, d)

	out, err := Normal.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "normal", string(out))

	assert.Error(t, d.UnmarshalText([]byte("extreme")))
}
