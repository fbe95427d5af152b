package chat

import (
	"fmt"
	"sync/atomic"

	"finchat/report"
)

// Role identifies the author of a turn
type Role int

const (
	RoleUser Role = iota
	RoleAssistant
)

func (r Role) String() string {
	if r == RoleUser {
		return "user"
	}
	return "assistant"
}

// Meta records where an assistant turn's data came from
type Meta struct {
	URL    string
	Params map[string]string
}

// Turn is one entry in a conversation transcript. Turns are immutable
// once their response completes; only the simulated streaming reveal
// mutates Content incrementally, and never for API-sourced turns.
type Turn struct {
	ID        string
	Role      Role
	Content   string
	Blocks    []report.Block
	Meta      *Meta
	Streaming bool
}

// Conversation holds an ordered transcript
type Conversation struct {
	ID    string
	Title string
	Turns []Turn
}

// Greeting opens every new conversation.
const Greeting = "Hola, soy tu asistente de reporting financiero. Elige una Action Card del catálogo o escríbeme directamente."

// NewConversation seeds a conversation with the assistant greeting.
func NewConversation(title string) *Conversation {
	return &Conversation{
		ID:    newID(),
		Title: title,
		Turns: []Turn{{ID: newID(), Role: RoleAssistant, Content: Greeting}},
	}
}

var idCounter uint64

// newID returns a process-unique turn id
func newID() string {
	return fmt.Sprintf("t-%d", atomic.AddUint64(&idCounter, 1))
}
