package chat

import (
	"strings"
	"testing"
)

func TestStream_RevealsFullReply(t *testing.T) {
	full := "Recibido: una respuesta generada con acentuación añadida."
	s := NewStream(full)

	var last string
	steps := 0
	for {
		partial, more := s.Next()
		steps++
		if !strings.HasPrefix(full, partial) {
			t.Fatalf("partial %q is not a prefix of the reply", partial)
		}
		last = partial
		if !more {
			break
		}
		if steps > len(full) {
			t.Fatal("stream did not terminate")
		}
	}

	if last != full {
		t.Errorf("final partial = %q, want the full reply", last)
	}
	if !s.Done() {
		t.Error("Done should report true after full reveal")
	}
}

func TestStream_ShortReplyMinimumChunk(t *testing.T) {
	s := NewStream("hey")
	partial, more := s.Next()
	if partial != "hey" || more {
		t.Errorf("Next = %q, %v; want full reveal in one step", partial, more)
	}
}

func TestStream_ChunkScalesWithLength(t *testing.T) {
	long := strings.Repeat("palabra ", 40) // 320 runes
	s := NewStream(long)

	steps := 0
	for {
		_, more := s.Next()
		steps++
		if !more {
			break
		}
	}
	// chunk = len/28, so the reveal takes about 28-29 steps
	if steps < 20 || steps > 35 {
		t.Errorf("steps = %d, want roughly 28", steps)
	}
}

func TestGenerateReply(t *testing.T) {
	t.Run("echoes prompt", func(t *testing.T) {
		reply := GenerateReply("dame el informe de primas")
		if !strings.Contains(reply, "dame el informe de primas") {
			t.Errorf("reply = %q, missing prompt echo", reply)
		}
	})

	t.Run("caps long prompts at 90 runes", func(t *testing.T) {
		long := strings.Repeat("á", 200)
		reply := GenerateReply(long)
		if strings.Contains(reply, strings.Repeat("á", 91)) {
			t.Errorf("prompt echo not capped: %q", reply)
		}
		if !strings.Contains(reply, strings.Repeat("á", 90)) {
			t.Errorf("rune-safe cap broken: %q", reply)
		}
	})
}

func TestHintRotator(t *testing.T) {
	var h HintRotator
	if h.Current() != Hints[0] {
		t.Errorf("Current = %q", h.Current())
	}
	h.Advance()
	if h.Current() != Hints[1] {
		t.Errorf("after Advance, Current = %q", h.Current())
	}
	for range Hints {
		h.Advance()
	}
	// wraps around
	if h.Current() != Hints[1] {
		t.Errorf("rotator should wrap, Current = %q", h.Current())
	}
	h.Reset()
	if h.Current() != Hints[0] {
		t.Errorf("after Reset, Current = %q", h.Current())
	}
}
