package main

import (
	"fmt"
	"strings"

	"finchat/catalog"
)

// SelectorModel manages the action catalog overlay: a drill-down list
// over the three-level tree.
type SelectorModel struct {
	roots  []catalog.Node
	path   []*catalog.Node // descended nodes, outermost first
	cursor int
}

func NewSelectorModel(roots []catalog.Node) SelectorModel {
	return SelectorModel{roots: roots}
}

// Options returns the entries at the current level
func (s *SelectorModel) Options() []catalog.Node {
	if len(s.path) == 0 {
		return s.roots
	}
	return s.path[len(s.path)-1].Children
}

// Current returns the option under the cursor, or nil
func (s *SelectorModel) Current() *catalog.Node {
	options := s.Options()
	if s.cursor < 0 || s.cursor >= len(options) {
		return nil
	}
	return &options[s.cursor]
}

func (s *SelectorModel) MoveUp() {
	if s.cursor > 0 {
		s.cursor--
	}
}

func (s *SelectorModel) MoveDown() {
	if s.cursor < len(s.Options())-1 {
		s.cursor++
	}
}

// Descend enters the option under the cursor. It returns false when
// the option is a leaf and there is nothing to descend into.
func (s *SelectorModel) Descend() bool {
	current := s.Current()
	if current == nil || current.IsLeaf() || len(s.path) >= 2 {
		return false
	}
	s.path = append(s.path, current)
	s.cursor = 0
	return true
}

// Ascend pops one level. It returns false at the top.
func (s *SelectorModel) Ascend() bool {
	if len(s.path) == 0 {
		return false
	}
	s.path = s.path[:len(s.path)-1]
	s.cursor = 0
	return true
}

// Reset returns the selector to the top level.
func (s *SelectorModel) Reset() {
	s.path = nil
	s.cursor = 0
}

// SelectionFor maps the descent path plus a chosen option onto the
// three selection levels.
func (s *SelectorModel) SelectionFor(option *catalog.Node) catalog.Selection {
	levels := make([]*catalog.Node, 0, 3)
	levels = append(levels, s.path...)
	levels = append(levels, option)

	var sel catalog.Selection
	if len(levels) > 0 {
		sel.Level1 = levels[0]
	}
	if len(levels) > 1 {
		sel.Level2 = levels[1]
	}
	if len(levels) > 2 {
		sel.Level3 = levels[2]
	}
	return sel
}

// Breadcrumb renders the descended labels.
func (s *SelectorModel) Breadcrumb() string {
	if len(s.path) == 0 {
		return "Action Cards"
	}
	labels := make([]string, 0, len(s.path)+1)
	labels = append(labels, "Action Cards")
	for _, n := range s.path {
		labels = append(labels, n.Label)
	}
	return strings.Join(labels, " / ")
}

// View renders the overlay.
func (s *SelectorModel) View(width int) string {
	var sb strings.Builder
	sb.WriteString(breadcrumbStyle.Render(s.Breadcrumb()))
	sb.WriteString("\n\n")

	for i, option := range s.Options() {
		line := option.Label
		if !option.IsLeaf() {
			line = fmt.Sprintf("%s (%d)", line, len(option.Children))
		}

		switch {
		case i == s.cursor:
			line = cursorStyle.Render(" " + line + " ")
		case !option.IsLeaf():
			line = groupStyle.Render(line)
		default:
			line = optionStyle.Render(line)
		}

		sb.WriteString(line)
		if option.NeedsInput && i == s.cursor {
			sb.WriteString(needsInputStyle.Render("  · pide unidad"))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(statusStyle.Render("enter: entrar/ejecutar · bs: subir · esc: cerrar"))
	return overlayStyle.Width(min(width-4, 60)).Render(sb.String())
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
