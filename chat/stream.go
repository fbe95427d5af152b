package chat

// Stream reveals an already-complete reply in chunks, simulating
// token-by-token output over a string that has been fully received.
// The chunk size scales with the reply so long replies take roughly
// the same number of steps.
type Stream struct {
	runes []rune
	chunk int
	pos   int
}

// NewStream prepares a reveal over the full reply.
func NewStream(full string) *Stream {
	runes := []rune(full)
	chunk := len(runes) / 28
	if chunk < 3 {
		chunk = 3
	}
	return &Stream{runes: runes, chunk: chunk}
}

// Next advances the reveal and returns the partial string plus
// whether more remains.
func (s *Stream) Next() (string, bool) {
	s.pos += s.chunk
	if s.pos > len(s.runes) {
		s.pos = len(s.runes)
	}
	return string(s.runes[:s.pos]), s.pos < len(s.runes)
}

// Done reports whether the full reply has been revealed.
func (s *Stream) Done() bool {
	return s.pos >= len(s.runes)
}
