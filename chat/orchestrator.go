package chat

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"finchat/catalog"
	"finchat/report"
)

// Orchestrator owns conversation state and the action dispatch cycle:
// Idle → Dispatching → (Success | Failure) → Idle. The thinking flag
// clears on every terminal outcome.
//
// Begin/Execute/Finish split the cycle so UIs can run Execute off
// their event loop; RunAction chains all three for synchronous
// callers. Completions are paired with their dispatch by generation:
// a completion older than the newest dispatch is discarded, so a slow
// response can never overwrite a newer action's turn.
type Orchestrator struct {
	mu       sync.Mutex
	client   *report.Client
	conv     *Conversation
	thinking bool
	lastGen  uint64
}

// New creates an orchestrator around an existing conversation.
func New(client *report.Client, conv *Conversation) *Orchestrator {
	return &Orchestrator{client: client, conv: conv}
}

// Conversation returns the owned conversation.
func (o *Orchestrator) Conversation() *Conversation {
	return o.conv
}

// Turns returns a snapshot of the transcript.
func (o *Orchestrator) Turns() []Turn {
	o.mu.Lock()
	defer o.mu.Unlock()
	turns := make([]Turn, len(o.conv.Turns))
	copy(turns, o.conv.Turns)
	return turns
}

// Thinking reports whether a dispatch is in flight.
func (o *Orchestrator) Thinking() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.thinking
}

// Begin appends the echoed user turn for an action and marks the
// orchestrator as thinking. It returns the generation that pairs the
// eventual completion with this dispatch.
func (o *Orchestrator) Begin(sel catalog.Selection, input string) uint64 {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.lastGen++
	o.thinking = true

	content := "Action Card: " + sel.PathString()
	if trimmed := strings.TrimSpace(input); trimmed != "" {
		content += " | unidad: " + trimmed
	}
	o.conv.Turns = append(o.conv.Turns, Turn{ID: newID(), Role: RoleUser, Content: content})
	return o.lastGen
}

// Execute resolves and runs the action, producing the assistant turn
// for either outcome. It touches no orchestrator state, so it is safe
// to call off the main loop.
func (o *Orchestrator) Execute(sel catalog.Selection, input string) Turn {
	readable := sel.PathString()

	req, err := sel.Resolve(strings.TrimSpace(input))
	if err != nil {
		return failureTurn(readable, err)
	}

	result, err := o.client.Run(req)
	if err != nil {
		return failureTurn(readable, err)
	}

	// Non-JSON bodies decode to a raw string payload. Only decoded
	// JSON is classified; text that merely looks like JSON stays on
	// the fallback path.
	var blocks []report.Block
	if _, isText := result.Payload.(string); !isText {
		blocks = report.Classify(result.Raw)
	}
	meta := &Meta{URL: result.URL, Params: result.Params}

	if len(blocks) > 0 {
		return Turn{
			ID:      newID(),
			Role:    RoleAssistant,
			Content: fmt.Sprintf("Respuesta de la API para %q:", readable),
			Blocks:  blocks,
			Meta:    meta,
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Respuesta de la API para %q:\n", readable)
	sb.WriteString(report.FormatPayload(result.Payload))
	if len(result.Params) > 0 {
		if encoded, err := json.Marshal(result.Params); err == nil {
			sb.WriteString("\nParámetros: " + string(encoded))
		}
	}
	sb.WriteString("\nEndpoint: " + result.URL)

	return Turn{ID: newID(), Role: RoleAssistant, Content: sb.String(), Meta: meta}
}

// failureTurn builds the single visible assistant message for a
// failed action, naming what was attempted and what went wrong.
func failureTurn(readable string, err error) Turn {
	return Turn{
		ID:      newID(),
		Role:    RoleAssistant,
		Content: fmt.Sprintf("No se pudo recuperar datos para %q. Detalle: %v", readable, err),
	}
}

// Finish applies a completed dispatch. It reports whether the turn
// was appended; stale generations are discarded. Thinking clears
// whenever the newest dispatch settles, success or failure.
func (o *Orchestrator) Finish(gen uint64, turn Turn) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if gen < o.lastGen {
		return false
	}
	o.thinking = false
	o.conv.Turns = append(o.conv.Turns, turn)
	return true
}

// RunAction executes the full dispatch cycle synchronously and
// returns the assistant turn.
func (o *Orchestrator) RunAction(sel catalog.Selection, input string) Turn {
	gen := o.Begin(sel, input)
	turn := o.Execute(sel, input)
	o.Finish(gen, turn)
	return turn
}

// Append adds a turn to the transcript and returns its id.
func (o *Orchestrator) Append(turn Turn) string {
	o.mu.Lock()
	defer o.mu.Unlock()
	if turn.ID == "" {
		turn.ID = newID()
	}
	o.conv.Turns = append(o.conv.Turns, turn)
	return turn.ID
}

// UpdateTurn replaces a turn's content, used by the streaming reveal.
func (o *Orchestrator) UpdateTurn(id, content string, streaming bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i := range o.conv.Turns {
		if o.conv.Turns[i].ID == id {
			o.conv.Turns[i].Content = content
			o.conv.Turns[i].Streaming = streaming
			return
		}
	}
}
