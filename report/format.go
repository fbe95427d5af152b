package report

import (
	"encoding/json"
	"fmt"
)

// EmptyPayloadText is shown when the API returned no content.
const EmptyPayloadText = "La API no devolvió contenido."

// FormatPayload renders a full payload as display text, used when
// classification produced no blocks: strings pass through, structured
// values are pretty-printed JSON, absent payloads get a placeholder.
func FormatPayload(payload any) string {
	if payload == nil {
		return EmptyPayloadText
	}
	if s, ok := payload.(string); ok {
		return s
	}
	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Sprint(payload)
	}
	return string(b)
}
