package chat

import (
	"fmt"
	"math/rand"
)

var replyIdeas = []string{
	"Voy a resumir en 3 bullets y darte un CTA para probarlo.",
	"Te devuelvo un paso a paso corto para que puedas iterar rápido.",
	"Añado un bloque de contexto y sugerencias de tono.",
	"Incluyo un ejemplo en JSON listo para probar.",
}

// GenerateReply produces a canned assistant reply for a free-typed
// prompt. The prompt echo is capped at 90 characters.
func GenerateReply(prompt string) string {
	runes := []rune(prompt)
	if len(runes) > 90 {
		runes = runes[:90]
	}
	idea := replyIdeas[rand.Intn(len(replyIdeas))]
	return fmt.Sprintf("Recibido: %q. %s", string(runes), idea)
}
