package main

import (
	"strings"
	"testing"
)

func testNavigator() *Navigator {
	return NewNavigator(nil, nil)
}

func completions(t *testing.T, c *Completer, line string) []string {
	t.Helper()
	runes := []rune(line)
	suggestions, _ := c.Do(runes, len(runes))
	out := make([]string, len(suggestions))
	for i, s := range suggestions {
		out[i] = strings.TrimSpace(string(s))
	}
	return out
}

func TestCompleteCommand(t *testing.T) {
	c := NewCompleter(testNavigator())

	got := completions(t, c, "c")
	want := map[string]bool{"d": true, "lear": true}
	if len(got) != len(want) {
		t.Fatalf("completions for %q = %v, want cd and clear remainders", "c", got)
	}
	for _, g := range got {
		if !want[g] {
			t.Errorf("unexpected completion remainder %q", g)
		}
	}
}

func TestCompletePathTopLevel(t *testing.T) {
	c := NewCompleter(testNavigator())

	got := completions(t, c, "cd ")
	joined := strings.Join(got, " ")
	for _, area := range []string{"finanzas/", "comercial/", "ine/"} {
		if !strings.Contains(joined, area) {
			t.Errorf("top level completions missing %q: %v", area, got)
		}
	}
}

func TestCompletePathPrefix(t *testing.T) {
	c := NewCompleter(testNavigator())

	got := completions(t, c, "cd fin")
	if len(got) != 1 || got[0] != "anzas/" {
		t.Errorf("completions for fin = %v, want single finanzas remainder", got)
	}
}

func TestCompletePathNested(t *testing.T) {
	c := NewCompleter(testNavigator())

	got := completions(t, c, "run comercial/comercial-21/")
	if len(got) != 3 {
		t.Fatalf("expected 3 drill-down cards, got %v", got)
	}
	for _, g := range got {
		if !strings.HasPrefix(g, "comercial-21") {
			t.Errorf("unexpected nested completion %q", g)
		}
	}
}

func TestCompletePathAfterCd(t *testing.T) {
	nav := testNavigator()
	c := NewCompleter(nav)

	walk, err := nav.resolve("comercial")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	nav.path = walk

	got := completions(t, c, "ls comercial-2")
	if len(got) != 2 {
		t.Errorf("expected comercial-21 and comercial-22, got %v", got)
	}

	got = completions(t, c, "cd .")
	found := false
	for _, g := range got {
		if g == "./" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected ../ among completions below the root, got %v", got)
	}
}

func TestCompletePathBadBase(t *testing.T) {
	c := NewCompleter(testNavigator())

	got := completions(t, c, "cd nosuch/")
	if len(got) != 0 {
		t.Errorf("expected no completions for unknown base, got %v", got)
	}
}

func TestCompleteAuto(t *testing.T) {
	c := NewCompleter(testNavigator())

	got := completions(t, c, "auto ")
	joined := strings.Join(got, " ")
	for _, want := range []string{"list", "run", "contabilidad"} {
		if !strings.Contains(joined, want) {
			t.Errorf("auto completions missing %q: %v", want, got)
		}
	}
}

func TestSplitForCompletion(t *testing.T) {
	tests := []struct {
		partial    string
		wantBase   string
		wantPrefix string
	}{
		{"comercial/comer", "comercial", "comer"},
		{"comercial/", "comercial", ""},
		{"/fin", "/", "fin"},
		{"fin", "", "fin"},
		{"", "", ""},
	}

	for _, tt := range tests {
		base, prefix := splitForCompletion(tt.partial)
		if base != tt.wantBase || prefix != tt.wantPrefix {
			t.Errorf("splitForCompletion(%q) = (%q, %q), want (%q, %q)",
				tt.partial, base, prefix, tt.wantBase, tt.wantPrefix)
		}
	}
}
