package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	var picked string
	pick := func(label string) func() tea.Cmd {
		return func() tea.Cmd {
			picked = label
			return nil
		}
	}
	m := NewMenu([]MenuItem{
		{Label: "A", Disabled: true},
		{Label: "B", Action: pick("B")},
		{Label: "C", Disabled: true},
		{Label: "D", Action: pick("D")},
	})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want 1", m.Selected)
	}

	m, _ = m.Update(specialKey(tea.KeyDown))
	if m.Selected != 3 {
		t.Errorf("after down Selected = %d, want 3", m.Selected)
	}
	m, _ = m.Update(specialKey(tea.KeyDown))
	if m.Selected != 3 {
		t.Errorf("down at the end moved to %d", m.Selected)
	}
	m, _ = m.Update(specialKey(tea.KeyEnter))
	if picked != "D" {
		t.Errorf("picked = %q, want D", picked)
	}

	m, _ = m.Update(specialKey(tea.KeyUp))
	if m.Selected != 1 {
		t.Errorf("after up Selected = %d, want 1", m.Selected)
	}
}

func TestMenu_DigitShortcuts(t *testing.T) {
	var picked []string
	item := func(label string, disabled bool) MenuItem {
		return MenuItem{Label: label, Disabled: disabled, Action: func() tea.Cmd {
			picked = append(picked, label)
			return nil
		}}
	}
	m := NewMenu([]MenuItem{item("START", false), item("RETRY", true), item("QUIT", false)})

	m, _ = m.Update(keyPress('3'))
	m, _ = m.Update(keyPress('2'))
	m, _ = m.Update(keyPress('9'))
	m, _ = m.Update(keyPress('0'))

	if strings.Join(picked, ",") != "QUIT" {
		t.Errorf("picked = %v, want only QUIT", picked)
	}
	if m.Selected != 2 {
		t.Errorf("Selected = %d, want 2", m.Selected)
	}
}

func TestMenu_AllDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "A", Disabled: true}})
	if m.Selected != 0 {
		t.Errorf("Selected = %d, want 0", m.Selected)
	}
	if _, cmd := m.Update(specialKey(tea.KeyEnter)); cmd != nil {
		t.Error("enter on a disabled item should do nothing")
	}
}

func TestMenu_Views(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "START"}, {Label: "QUIT"}})
	if v := m.View(); !strings.Contains(v, "▸ START") || !strings.Contains(v, "QUIT") {
		t.Errorf("View = %q", v)
	}
	if v := m.ButtonView(40); !strings.Contains(v, "START") {
		t.Errorf("ButtonView missing label: %q", v)
	}
}

func TestMultiChoice_Keys(t *testing.T) {
	mc := NewMultiChoice([]string{"3", "5", "7", "9"})

	tests := []struct {
		key  string
		want int
		ok   bool
	}{
		{"1", 0, true},
		{"4", 3, true},
		{"5", 4, false},
		{"0", 0, false},
		{"a", 0, false},
		{"12", 0, false},
	}
	for _, tt := range tests {
		got, ok := mc.IndexForKey(tt.key)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("IndexForKey(%q) = %d, %v; want %d, %v", tt.key, got, ok, tt.want, tt.ok)
		}
	}

	mc, _ = mc.Update(specialKey(tea.KeyDown))
	mc, _ = mc.Update(specialKey(tea.KeyDown))
	if mc.Selected != 2 {
		t.Errorf("Selected = %d, want 2", mc.Selected)
	}
	mc, _ = mc.Update(specialKey(tea.KeyUp))
	if mc.Selected != 1 {
		t.Errorf("Selected = %d, want 1", mc.Selected)
	}
}

func TestMultiChoice_Lock(t *testing.T) {
	mc := NewMultiChoice([]string{"3", "5", "7", "9"})
	mc.Lock(2, 0)

	mc, _ = mc.Update(specialKey(tea.KeyDown))
	if mc.Selected != 2 {
		t.Errorf("locked selector moved to %d", mc.Selected)
	}
	view := mc.View()
	if !strings.Contains(view, "1)  3  ✓") {
		t.Errorf("correct option not marked: %q", view)
	}
	if !strings.Contains(view, "3)  7  ✗") {
		t.Errorf("chosen option not marked: %q", view)
	}
}

func TestTextInput_NumericFilter(t *testing.T) {
	ti := NewTextInput("", true, 10)
	for _, r := range "-1a2.5x" {
		ti, _ = ti.Update(keyPress(r))
	}
	if got := ti.Value(); got != "-12.5" {
		t.Errorf("Value = %q, want -12.5", got)
	}

	ti.Submit(true)
	ti, _ = ti.Update(keyPress('9'))
	if got := ti.Value(); got != "-12.5" {
		t.Errorf("submitted input changed to %q", got)
	}
	if !ti.Submitted() || !strings.Contains(ti.View(), "✓") {
		t.Error("expected submitted input to show a check mark")
	}
}

func TestAnswerTrack(t *testing.T) {
	marks := make([]Mark, 15)
	marks[0], marks[1], marks[2] = MarkCorrect, MarkCorrect, MarkCorrect
	marks[3] = MarkIncorrect

	got := stripANSI(AnswerTrack{Marks: marks, Cursor: 4, Width: 30}.View())
	want := "■■■■◆" + strings.Repeat("·", 10) + "  4/15"
	if got != want {
		t.Errorf("View = %q, want %q", got, want)
	}
}

func TestAnswerTrack_Compresses(t *testing.T) {
	marks := make([]Mark, 60)
	for i := range 30 {
		marks[i] = MarkCorrect
	}
	marks[7] = MarkIncorrect

	track := AnswerTrack{Marks: marks, Cursor: 59, Width: 20}
	cells, cursor := track.cells()
	if len(cells) != 20 || cursor != 19 {
		t.Fatalf("cells = %d, cursor = %d; want 20, 19", len(cells), cursor)
	}
	if cells[0] != MarkCorrect || cells[2] != MarkIncorrect || cells[10] != MarkPending {
		t.Errorf("cells = %v", cells)
	}
	if got := stripANSI(track.View()); !strings.HasSuffix(got, "  30/60") {
		t.Errorf("View = %q", got)
	}
}

// stripANSI removes CSI escape sequences.
func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && (s[i] < '@' || s[i] > '~') {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
