package main

import (
	"testing"

	"finchat/catalog"
)

func TestResolvePaths(t *testing.T) {
	nav := testNavigator()

	tests := []struct {
		name    string
		target  string
		wantLen int
		wantID  string
		wantErr bool
	}{
		{"top level area", "finanzas", 1, "finanzas", false},
		{"two levels", "comercial/comercial-21", 2, "comercial-21", false},
		{"three levels", "comercial/comercial-21/comercial-211", 3, "comercial-211", false},
		{"absolute", "/ine", 1, "ine", false},
		{"tilde", "~/finanzas", 1, "finanzas", false},
		{"label prefix", "comer", 1, "comercial", false},
		{"dot segments", "finanzas/./.", 1, "finanzas", false},
		{"unknown", "nada", 0, "", true},
		{"unknown child", "finanzas/nada", 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			walk, err := nav.resolve(tt.target)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("resolve(%q) succeeded, want error", tt.target)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolve(%q): %v", tt.target, err)
			}
			if len(walk) != tt.wantLen {
				t.Fatalf("resolve(%q) depth = %d, want %d", tt.target, len(walk), tt.wantLen)
			}
			if walk[len(walk)-1].ID != tt.wantID {
				t.Errorf("resolve(%q) last = %s, want %s", tt.target, walk[len(walk)-1].ID, tt.wantID)
			}
		})
	}
}

func TestResolveDotDot(t *testing.T) {
	nav := testNavigator()

	walk, err := nav.resolve("comercial")
	if err != nil {
		t.Fatal(err)
	}
	nav.path = walk

	up, err := nav.resolve("..")
	if err != nil {
		t.Fatal(err)
	}
	if len(up) != 0 {
		t.Errorf("expected root after .., got depth %d", len(up))
	}

	sibling, err := nav.resolve("../finanzas")
	if err != nil {
		t.Fatal(err)
	}
	if len(sibling) != 1 || sibling[0].ID != "finanzas" {
		t.Errorf("expected finanzas via .., got %v", sibling)
	}
}

func TestResolveRelativeFromPosition(t *testing.T) {
	nav := testNavigator()

	walk, err := nav.resolve("comercial")
	if err != nil {
		t.Fatal(err)
	}
	nav.path = walk

	nested, err := nav.resolve("comercial-21/comercial-212")
	if err != nil {
		t.Fatal(err)
	}
	if len(nested) != 3 || nested[2].ID != "comercial-212" {
		t.Errorf("unexpected walk: %v", nested)
	}
}

func TestSelectionFor(t *testing.T) {
	nav := testNavigator()

	walk, err := nav.resolve("comercial/comercial-21/comercial-211")
	if err != nil {
		t.Fatal(err)
	}

	sel := selectionFor(walk)
	if sel.Level1 == nil || sel.Level1.ID != "comercial" {
		t.Errorf("Level1 = %v", sel.Level1)
	}
	if sel.Level2 == nil || sel.Level2.ID != "comercial-21" {
		t.Errorf("Level2 = %v", sel.Level2)
	}
	if sel.Level3 == nil || sel.Level3.ID != "comercial-211" {
		t.Errorf("Level3 = %v", sel.Level3)
	}

	final := sel.Final()
	if final == nil || final.ID != "comercial-211" {
		t.Errorf("Final = %v, want comercial-211", final)
	}
}

func TestMatchNode(t *testing.T) {
	level := []catalog.Node{
		{ID: "a-1", Label: "Informe Primas"},
		{ID: "a-2", Label: "Informe Comisiones"},
		{ID: "a-3", Label: "Cartera"},
	}

	if got := matchNode(level, "a-2"); got == nil || got.ID != "a-2" {
		t.Errorf("exact id lookup failed: %v", got)
	}
	if got := matchNode(level, "cart"); got == nil || got.ID != "a-3" {
		t.Errorf("unique label prefix failed: %v", got)
	}
	if got := matchNode(level, "informe"); got != nil {
		t.Errorf("ambiguous prefix resolved to %s", got.ID)
	}
	if got := matchNode(level, "zzz"); got != nil {
		t.Errorf("unknown segment resolved to %s", got.ID)
	}
}

func TestEntriesSummary(t *testing.T) {
	nav := testNavigator()

	got := entriesSummary(nav.children())
	if got != "3 grupos" {
		t.Errorf("root summary = %q, want 3 grupos", got)
	}

	walk, err := nav.resolve("finanzas")
	if err != nil {
		t.Fatal(err)
	}
	nav.path = walk
	got = entriesSummary(nav.children())
	if got != "3 cards" {
		t.Errorf("finanzas summary = %q, want 3 cards", got)
	}

	if s := entriesSummary(nil); s != "vacío" {
		t.Errorf("empty summary = %q", s)
	}
}

func TestPwd(t *testing.T) {
	nav := testNavigator()
	if nav.pwd() != "/" {
		t.Errorf("root pwd = %q", nav.pwd())
	}

	walk, err := nav.resolve("comercial/comercial-21")
	if err != nil {
		t.Fatal(err)
	}
	nav.path = walk
	if nav.pwd() != "/comercial/comercial-21" {
		t.Errorf("pwd = %q", nav.pwd())
	}
}
