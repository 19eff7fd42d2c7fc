package problemgen

import "testing"

func TestIntegerCheck(t *testing.T) {
	check := integerCheck(42)

	tests := []struct {
		input string
		want  Verdict
	}{
		{"42", VerdictCorrect},
		{" 42 ", VerdictCorrect},
		{"042", VerdictCorrect},
		{"+42", VerdictCorrect},
		{"43", VerdictIncorrect},
		{"-42", VerdictIncorrect},
		{"", VerdictInvalid},
		{"abc", VerdictInvalid},
		{"42.0", VerdictInvalid},
	}

	for _, tc := range tests {
		got := check(tc.input)
		if got.Verdict != tc.want {
			t.Errorf("integerCheck(42)(%q) = %v, want %v", tc.input, got.Verdict, tc.want)
		}
	}
}

func TestIntegerCheck_InvalidReason(t *testing.T) {
	got := integerCheck(7)("seven")
	if !got.IsInvalid() {
		t.Fatalf("expected invalid, got %v", got.Verdict)
	}
	if got.Reason != "Please enter an integer." {
		t.Errorf("Reason = %q", got.Reason)
	}
}

func TestDecimalCheck(t *testing.T) {
	check := decimalCheck("3.14", 2)

	tests := []struct {
		input string
		want  Verdict
	}{
		{"3.14", VerdictCorrect},
		{"3.140", VerdictCorrect},
		{"3.14159", VerdictCorrect},
		{" 3.14 ", VerdictCorrect},
		{"3.15", VerdictIncorrect},
		{"3.1", VerdictIncorrect},
		{"pi", VerdictInvalid},
		{"NaN", VerdictInvalid},
		{"Inf", VerdictInvalid},
		{"", VerdictInvalid},
	}

	for _, tc := range tests {
		got := check(tc.input)
		if got.Verdict != tc.want {
			t.Errorf("decimalCheck(3.14, 2)(%q) = %v, want %v", tc.input, got.Verdict, tc.want)
		}
	}
}

func TestDecimalCheck_WholeNumber(t *testing.T) {
	check := decimalCheck("12", 0)

	for _, input := range []string{"12", "12.0", "11.6", "12.4"} {
		if got := check(input); !got.IsCorrect() {
			t.Errorf("decimalCheck(12, 0)(%q) = %v, want correct", input, got.Verdict)
		}
	}
	if got := check("12.5"); got.IsCorrect() {
		t.Errorf("decimalCheck(12, 0)(12.5) should round away from 12")
	}
}

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		x    float64
		dp   int
		want string
	}{
		{3.14159, 2, "3.14"},
		{2.5, 0, "3"},
		{7, 3, "7.000"},
		{-0.0001, 2, "0.00"},
		{12.345, 1, "12.3"},
	}

	for _, tc := range tests {
		if got := formatDecimal(tc.x, tc.dp); got != tc.want {
			t.Errorf("formatDecimal(%v, %d) = %q, want %q", tc.x, tc.dp, got, tc.want)
		}
	}
}

func TestIsWhole(t *testing.T) {
	if !isWhole(4) || !isWhole(4.0000000001) {
		t.Error("expected whole")
	}
	if isWhole(4.5) {
		t.Error("4.5 is not whole")
	}
}
