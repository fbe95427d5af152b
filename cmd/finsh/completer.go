package main

import (
	"sort"
	"strings"

	"finchat/catalog"
)

// Completer provides tab completion for the shell
type Completer struct {
	nav *Navigator
}

// NewCompleter creates a new completer
func NewCompleter(nav *Navigator) *Completer {
	return &Completer{nav: nav}
}

// Do implements readline.AutoCompleter interface
func (c *Completer) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])
	words := strings.Fields(text)

	// Command completion
	if len(words) == 0 || (len(words) == 1 && !strings.HasSuffix(text, " ")) {
		return c.completeCommand(words)
	}

	// Argument completion
	cmd := words[0]
	partial := ""
	if !strings.HasSuffix(text, " ") && len(words) > 1 {
		partial = words[len(words)-1]
	}

	switch cmd {
	case "cd", "ls", "run":
		return c.completePath(partial)
	case "auto":
		return c.completeAuto(words, partial)
	}

	return nil, 0
}

// completeCommand completes command names
func (c *Completer) completeCommand(words []string) ([][]rune, int) {
	commands := []string{
		"cd", "ls", "pwd", "run", "auto", "upload", "say",
		"tree", "url", "clear", "help", "exit", "quit",
	}

	prefix := ""
	if len(words) == 1 {
		prefix = words[0]
	}

	var matches []string
	for _, cmd := range commands {
		if strings.HasPrefix(cmd, prefix) {
			matches = append(matches, cmd)
		}
	}

	return toRuneSlices(matches, len(prefix)), len(prefix)
}

// completePath completes catalog paths segment by segment
func (c *Completer) completePath(partial string) ([][]rune, int) {
	base, prefix := splitForCompletion(partial)

	level := c.nav.children()
	if base != "" || strings.HasPrefix(partial, "/") || strings.HasPrefix(partial, "~") {
		walk, err := c.nav.resolve(base)
		if err != nil {
			return nil, 0
		}
		if len(walk) == 0 {
			level = c.nav.roots
		} else {
			level = walk[len(walk)-1].Children
		}
	}

	var completions []string
	if base == "" {
		if strings.HasPrefix("..", prefix) && len(c.nav.path) > 0 {
			completions = append(completions, "../")
		}
	}

	for i := range level {
		if strings.HasPrefix(level[i].ID, prefix) {
			completions = append(completions, level[i].ID+completionSuffix(&level[i]))
		}
	}

	sort.Strings(completions)
	return toRuneSlices(completions, len(prefix)), len(prefix)
}

// completionSuffix marks groups as navigable
func completionSuffix(node *catalog.Node) string {
	if !node.IsLeaf() {
		return "/"
	}
	return " "
}

// splitForCompletion splits a partial path at the last separator.
// Examples:
//
//	"comercial/comer" → ("comercial", "comer")
//	"comercial/" → ("comercial", "")
//	"/fin" → ("/", "fin")
//	"fin" → ("", "fin")
func splitForCompletion(partial string) (base, prefix string) {
	lastSlash := strings.LastIndex(partial, "/")
	if lastSlash == -1 {
		return "", partial
	}
	base = partial[:lastSlash]
	if base == "" {
		base = "/"
	}
	return base, partial[lastSlash+1:]
}

// completeAuto completes automation subcommands and ids
func (c *Completer) completeAuto(words []string, partial string) ([][]rune, int) {
	var options []string
	if len(words) <= 2 {
		options = []string{"list", "run"}
	}
	for _, a := range catalog.Automations() {
		options = append(options, a.ID)
	}

	var matches []string
	for _, opt := range options {
		if strings.HasPrefix(opt, partial) {
			matches = append(matches, opt)
		}
	}

	sort.Strings(matches)
	return toRuneSlices(matches, len(partial)), len(partial)
}

// toRuneSlices converts string completions to rune slices
func toRuneSlices(strs []string, prefixLen int) [][]rune {
	result := make([][]rune, len(strs))
	for i, s := range strs {
		result[i] = []rune(s[prefixLen:])
	}
	return result
}
