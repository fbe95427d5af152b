package chat

// Hints are shown beside the thinking indicator while a request runs.
var Hints = []string{
	"Consultando la API de reporting...",
	"Cruzando datos de primas y siniestros...",
	"Preparando los bloques de respuesta...",
	"Dando formato a los resultados...",
}

// HintRotator cycles through Hints.
type HintRotator struct {
	idx int
}

// Current returns the hint under the cursor.
func (h *HintRotator) Current() string {
	return Hints[h.idx%len(Hints)]
}

// Advance moves to the next hint and returns it.
func (h *HintRotator) Advance() string {
	h.idx++
	return h.Current()
}

// Reset rewinds to the first hint.
func (h *HintRotator) Reset() {
	h.idx = 0
}
