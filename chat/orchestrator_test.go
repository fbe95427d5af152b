package chat

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"finchat/catalog"
	"finchat/report"
)

func testSelection() catalog.Selection {
	roots := catalog.Default()
	comercial := catalog.Find(roots, "comercial")
	vision := catalog.Find(roots, "comercial-21")
	sucursal := catalog.Find(roots, "comercial-211")
	return catalog.Selection{Level1: comercial, Level2: vision, Level3: sucursal}
}

func newOrchestrator(baseURL string) *Orchestrator {
	client := report.NewClient(report.Config{BaseURL: baseURL, Timeout: 2 * time.Second})
	return New(client, NewConversation("test"))
}

func TestRunAction_BlocksResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text_resumen": "ventas al alza", "image_grafico": "http://x/g.png"}`))
	}))
	defer srv.Close()

	o := newOrchestrator(srv.URL)
	turn := o.RunAction(testSelection(), "Madrid")

	if turn.Role != RoleAssistant {
		t.Errorf("Role = %v", turn.Role)
	}
	if len(turn.Blocks) != 2 {
		t.Fatalf("blocks = %d, want 2", len(turn.Blocks))
	}
	if turn.Blocks[0].Kind != report.BlockText || turn.Blocks[0].Value != "ventas al alza" {
		t.Errorf("block[0] = %v", turn.Blocks[0])
	}
	if turn.Meta == nil || turn.Meta.Params["unidad"] != "Madrid" {
		t.Errorf("Meta = %v", turn.Meta)
	}

	turns := o.Turns()
	userTurn := turns[len(turns)-2]
	if userTurn.Role != RoleUser {
		t.Fatalf("penultimate turn role = %v, want user", userTurn.Role)
	}
	if !strings.Contains(userTurn.Content, "Comercial / Visión Comercial / Sucursal") {
		t.Errorf("user echo = %q, missing action path", userTurn.Content)
	}
	if !strings.Contains(userTurn.Content, "unidad: Madrid") {
		t.Errorf("user echo = %q, missing input", userTurn.Content)
	}

	if o.Thinking() {
		t.Error("thinking should clear after success")
	}
}

func TestRunAction_FallbackText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count": 3}`))
	}))
	defer srv.Close()

	o := newOrchestrator(srv.URL)
	turn := o.RunAction(testSelection(), "Madrid")

	if len(turn.Blocks) != 0 {
		t.Fatalf("blocks = %v, want none", turn.Blocks)
	}
	if !strings.Contains(turn.Content, "\"count\": 3") {
		t.Errorf("fallback missing pretty JSON: %q", turn.Content)
	}
	if !strings.Contains(turn.Content, "Endpoint: ") {
		t.Errorf("fallback missing endpoint: %q", turn.Content)
	}
	if !strings.Contains(turn.Content, "Parámetros: ") {
		t.Errorf("fallback missing params: %q", turn.Content)
	}
}

func TestRunAction_PlainTextBody(t *testing.T) {
	body := `{"text_resumen": "parece JSON pero llegó como texto"}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(body))
	}))
	defer srv.Close()

	o := newOrchestrator(srv.URL)
	turn := o.RunAction(testSelection(), "Madrid")

	if len(turn.Blocks) != 0 {
		t.Fatalf("blocks = %v, want none for a text body", turn.Blocks)
	}
	if !strings.Contains(turn.Content, body) {
		t.Errorf("fallback missing the raw text: %q", turn.Content)
	}
	if !strings.Contains(turn.Content, "Endpoint: ") {
		t.Errorf("fallback missing endpoint: %q", turn.Content)
	}
}

func TestRunAction_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"bad unit"}`))
	}))
	defer srv.Close()

	o := newOrchestrator(srv.URL)
	turn := o.RunAction(testSelection(), "Madrid")

	if !strings.Contains(turn.Content, "Comercial / Visión Comercial / Sucursal") {
		t.Errorf("failure turn missing action path: %q", turn.Content)
	}
	if !strings.Contains(turn.Content, "500") || !strings.Contains(turn.Content, "bad unit") {
		t.Errorf("failure turn missing error detail: %q", turn.Content)
	}
	if o.Thinking() {
		t.Error("thinking should clear on failure too")
	}
}

func TestRunAction_ConfigError(t *testing.T) {
	roots := catalog.Default()
	sel := catalog.Selection{Level1: catalog.Find(roots, "finanzas"), Level2: catalog.Find(roots, "finanzas-11")}

	// Base URL points nowhere; the config check must fail before any
	// network activity.
	o := newOrchestrator("http://127.0.0.1:1")
	turn := o.RunAction(sel, "")

	if !strings.Contains(turn.Content, "Finanzas / Informe Siniestralidad") {
		t.Errorf("turn missing path: %q", turn.Content)
	}
	if !strings.Contains(turn.Content, "endpoint") {
		t.Errorf("turn missing configuration detail: %q", turn.Content)
	}
	if o.Thinking() {
		t.Error("thinking should clear")
	}
}

func TestFinish_DiscardsStaleGeneration(t *testing.T) {
	o := newOrchestrator("http://127.0.0.1:1")
	sel := testSelection()

	gen1 := o.Begin(sel, "vieja")
	gen2 := o.Begin(sel, "nueva")

	newer := Turn{ID: "new", Role: RoleAssistant, Content: "respuesta nueva"}
	if applied := o.Finish(gen2, newer); !applied {
		t.Fatal("newest generation should apply")
	}

	stale := Turn{ID: "old", Role: RoleAssistant, Content: "respuesta vieja"}
	if applied := o.Finish(gen1, stale); applied {
		t.Error("stale generation should be discarded")
	}

	for _, turn := range o.Turns() {
		if turn.ID == "old" {
			t.Error("stale turn appended to transcript")
		}
	}
	if o.Thinking() {
		t.Error("thinking should stay cleared")
	}
}

func TestUpdateTurn(t *testing.T) {
	o := newOrchestrator("http://127.0.0.1:1")
	id := o.Append(Turn{Role: RoleAssistant, Content: "", Streaming: true})

	o.UpdateTurn(id, "parcial", true)
	o.UpdateTurn(id, "completo", false)

	turns := o.Turns()
	last := turns[len(turns)-1]
	if last.Content != "completo" || last.Streaming {
		t.Errorf("turn = %+v", last)
	}
}
