package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"finchat/chat"
	"finchat/report"
)

// chromeHeight is the vertical space reserved around the transcript:
// header, status line, and the bordered input area.
const chromeHeight = 6

// View implements tea.Model
func (m Model) View() string {
	if !m.ready {
		return "Cargando..."
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("finchat · Asistente Financiero"))
	sb.WriteString("\n")
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")
	sb.WriteString(m.statusLine())
	sb.WriteString("\n")

	switch m.mode {
	case ModeCatalog:
		sb.WriteString(m.selector.View(m.width))
	case ModeActionInput:
		sb.WriteString(m.actionInputView())
	case ModeHelp:
		sb.WriteString(helpView(m.width))
	default:
		sb.WriteString(inputBorderStyle.Width(m.width - 2).Render(m.input.View()))
	}

	return sb.String()
}

func (m Model) statusLine() string {
	if m.orch.Thinking() {
		return m.spinner.View() + " " + thinkingStyle.Render(m.hints.Current())
	}
	return statusStyle.Render("enter: enviar · ctrl+a: action cards · ctrl+h: ayuda · ctrl+c: salir")
}

func (m Model) actionInputView() string {
	label := breadcrumbStyle.Render(m.pendingSel.PathString())
	body := label + "\n" + m.actionInput.View()
	return inputBorderStyle.Width(m.width - 2).Render(body)
}

func helpView(width int) string {
	lines := []string{
		titleStyle.Render("Ayuda"),
		"",
		"enter        enviar el mensaje escrito",
		"ctrl+a       abrir el catálogo de Action Cards",
		"j/k, flechas moverse por el catálogo",
		"enter        entrar en un grupo o ejecutar una card",
		"backspace    subir un nivel en el catálogo",
		"esc          cerrar catálogo o entrada de unidad",
		"ctrl+c       salir",
		"",
		statusStyle.Render("pulsa cualquier tecla para volver"),
	}
	return overlayStyle.Width(min(width-4, 60)).Render(strings.Join(lines, "\n"))
}

// renderTranscript formats every turn for the viewport.
func renderTranscript(turns []chat.Turn, width int) string {
	var sb strings.Builder
	for i, turn := range turns {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(renderTurn(turn, width))
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderTurn(turn chat.Turn, width int) string {
	var sb strings.Builder

	label := assistantLabelStyle.Render("asistente")
	if turn.Role == chat.RoleUser {
		label = userLabelStyle.Render("tú")
	}
	sb.WriteString(label)
	sb.WriteString("\n")

	content := turn.Content
	if turn.Streaming {
		content += "▌"
	}
	sb.WriteString(wrapText(content, width))

	for _, block := range turn.Blocks {
		sb.WriteString("\n")
		sb.WriteString(renderBlock(block, width))
	}

	if turn.Meta != nil && len(turn.Blocks) > 0 {
		sb.WriteString("\n")
		sb.WriteString(metaStyle.Render("  fuente: " + turn.Meta.URL))
	}

	return sb.String()
}

func renderBlock(block report.Block, width int) string {
	var style lipgloss.Style
	var tag string
	switch block.Kind {
	case report.BlockImage:
		style, tag = blockImageStyle, "imagen"
	case report.BlockFile:
		style, tag = blockFileStyle, "archivo"
	default:
		style, tag = blockLabelStyle, "texto"
	}

	head := style.Render(fmt.Sprintf("  [%s] %s", tag, block.Label))
	if block.Kind == report.BlockText {
		return head + "\n" + wrapText("  "+block.Value, width)
	}
	return head + "\n" + metaStyle.Render("  "+block.Value)
}

// wrapText soft-wraps on spaces to the viewport width.
func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	var out []string
	for _, line := range strings.Split(s, "\n") {
		out = append(out, wrapLine(line, width)...)
	}
	return strings.Join(out, "\n")
}

func wrapLine(line string, width int) []string {
	if len([]rune(line)) <= width {
		return []string{line}
	}
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{line}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len([]rune(current))+1+len([]rune(word)) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	lines = append(lines, current)
	return lines
}
