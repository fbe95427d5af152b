package catalog

import (
	"fmt"
	"strings"

	"finchat/report"
)

// Selection tracks the user's drill-down through the catalog, one
// node per level. Each level is constrained to be a child of the
// previous one; unused levels stay nil.
type Selection struct {
	Level1 *Node
	Level2 *Node
	Level3 *Node
}

// Final resolves the selection to the node an invocation would run.
// Precedence, top-down: level3 if selected; else level2 if selected
// and childless; else level1 if selected and childless; else nil. A
// node with unselected children can never be final, but a childless
// node serves as its own leaf at any level.
func (s Selection) Final() *Node {
	switch {
	case s.Level3 != nil:
		return s.Level3
	case s.Level2 != nil && s.Level2.IsLeaf():
		return s.Level2
	case s.Level1 != nil && s.Level1.IsLeaf():
		return s.Level1
	}
	return nil
}

// CanRun reports whether the selection is runnable with the given
// free-text input: a final option exists and, when it needs input,
// the trimmed input is non-empty.
func (s Selection) CanRun(input string) bool {
	final := s.Final()
	if final == nil {
		return false
	}
	if final.NeedsInput && strings.TrimSpace(input) == "" {
		return false
	}
	return true
}

// PathLabels returns the selected labels from the top down.
func (s Selection) PathLabels() []string {
	var labels []string
	for _, n := range []*Node{s.Level1, s.Level2, s.Level3} {
		if n != nil {
			labels = append(labels, n.Label)
		}
	}
	return labels
}

// PathString joins the selected labels into the readable action path.
func (s Selection) PathString() string {
	return strings.Join(s.PathLabels(), " / ")
}

// ConfigError indicates an actionable node without a request template.
// Detected before any network call; a catalog defect, not a runtime
// failure.
type ConfigError struct {
	Path string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("no hay endpoint configurado para %q", e.Path)
}

// Resolve builds the concrete request for the selection's final
// option. It fails fast when the node carries no request template.
func (s Selection) Resolve(input string) (report.Request, error) {
	final := s.Final()
	if final == nil || final.Request == nil {
		return report.Request{}, &ConfigError{Path: s.PathString()}
	}

	tpl := final.Request
	return report.Request{
		Path:    tpl.Path,
		Method:  tpl.Method,
		Params:  tpl.Params.Build(input),
		Headers: tpl.Headers,
		Timeout: tpl.Timeout,
	}, nil
}
