package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"finchat/catalog"
	"finchat/chat"
	"finchat/report"
)

// Navigator manages shell state: a cursor into the action card tree.
type Navigator struct {
	client *report.Client
	orch   *chat.Orchestrator
	roots  []catalog.Node
	path   []*catalog.Node
}

// NewNavigator creates a navigator over the default catalog
func NewNavigator(client *report.Client, orch *chat.Orchestrator) *Navigator {
	return &Navigator{
		client: client,
		orch:   orch,
		roots:  catalog.Default(),
	}
}

// pwd renders the current position as a slash path of ids
func (n *Navigator) pwd() string {
	if len(n.path) == 0 {
		return "/"
	}
	ids := make([]string, len(n.path))
	for i, node := range n.path {
		ids[i] = node.ID
	}
	return "/" + strings.Join(ids, "/")
}

// children returns the nodes at the current position
func (n *Navigator) children() []catalog.Node {
	if len(n.path) == 0 {
		return n.roots
	}
	return n.path[len(n.path)-1].Children
}

// resolve walks a slash path of ids from the current position.
// Leading "/" or "~" rebases at the root; ".." pops a level.
func (n *Navigator) resolve(target string) ([]*catalog.Node, error) {
	walk := make([]*catalog.Node, len(n.path))
	copy(walk, n.path)

	if strings.HasPrefix(target, "/") || strings.HasPrefix(target, "~") {
		walk = nil
		target = strings.TrimLeft(target, "/~")
	}

	for _, segment := range strings.Split(target, "/") {
		switch segment {
		case "", ".":
			continue
		case "..":
			if len(walk) > 0 {
				walk = walk[:len(walk)-1]
			}
			continue
		}

		level := n.roots
		if len(walk) > 0 {
			level = walk[len(walk)-1].Children
		}

		found := matchNode(level, segment)
		if found == nil {
			return nil, fmt.Errorf("no existe: %s", segment)
		}
		walk = append(walk, found)
	}

	if len(walk) > 3 {
		return nil, fmt.Errorf("ruta demasiado profunda: %s", target)
	}
	return walk, nil
}

// matchNode finds a child by id, falling back to a unique label prefix
func matchNode(level []catalog.Node, segment string) *catalog.Node {
	for i := range level {
		if level[i].ID == segment {
			return &level[i]
		}
	}

	var match *catalog.Node
	lower := strings.ToLower(segment)
	for i := range level {
		if strings.HasPrefix(strings.ToLower(level[i].Label), lower) {
			if match != nil {
				return nil // ambiguous
			}
			match = &level[i]
		}
	}
	return match
}

// selectionFor maps a walked path onto the three selection levels
func selectionFor(walk []*catalog.Node) catalog.Selection {
	var sel catalog.Selection
	if len(walk) > 0 {
		sel.Level1 = walk[0]
	}
	if len(walk) > 1 {
		sel.Level2 = walk[1]
	}
	if len(walk) > 2 {
		sel.Level3 = walk[2]
	}
	return sel
}

func (n *Navigator) cd(target string) error {
	if target == "" || target == "~" || target == "/" {
		n.path = nil
		fmt.Printf("/  (%s)\n", entriesSummary(n.children()))
		return nil
	}

	walk, err := n.resolve(target)
	if err != nil {
		return err
	}
	if len(walk) > 0 && walk[len(walk)-1].IsLeaf() {
		return fmt.Errorf("es una card ejecutable, usa 'run %s'", target)
	}

	n.path = walk
	fmt.Printf("%s  (%s)\n", n.pwd(), entriesSummary(n.children()))
	return nil
}

func (n *Navigator) ls(target string) error {
	walk := n.path
	if target != "" && target != "." {
		resolved, err := n.resolve(target)
		if err != nil {
			return err
		}
		walk = resolved
	}

	level := n.roots
	if len(walk) > 0 {
		last := walk[len(walk)-1]
		if last.IsLeaf() {
			printCard(last, selectionFor(walk))
			return nil
		}
		level = last.Children
	}

	var items []string
	for i := range level {
		items = append(items, entryLabel(&level[i]))
	}
	fmt.Println(formatColumns(items))
	return nil
}

// entryLabel colors a node the way ls colors entry types
func entryLabel(node *catalog.Node) string {
	switch {
	case !node.IsLeaf():
		return colorBoldBlue.Sprint(node.ID) + "/"
	case node.NeedsInput:
		return colorPurple.Sprint(node.ID) + "*"
	default:
		return colorGreen.Sprint(node.ID)
	}
}

// printCard shows a leaf's label and endpoint template
func printCard(node *catalog.Node, sel catalog.Selection) {
	colorBold.Println(sel.PathString())
	if node.Request == nil {
		colorYellow.Println("  sin endpoint configurado")
		return
	}
	method := node.Request.Method
	if method == "" {
		method = "GET"
	}
	fmt.Printf("  %s %s\n", method, node.Request.Path)
	for k, v := range node.Request.Params.Fixed {
		fmt.Printf("  %s=%s\n", k, v)
	}
	if node.Request.Params.InputField != "" {
		colorPurple.Printf("  %s=<entrada>\n", node.Request.Params.InputField)
	}
}

// run executes an action card and prints the assistant turn
func (n *Navigator) run(target, input string) error {
	walk, err := n.resolve(target)
	if err != nil {
		return err
	}
	if len(walk) == 0 {
		return fmt.Errorf("usage: run <ruta> [unidad]")
	}

	last := walk[len(walk)-1]
	if !last.IsLeaf() {
		return fmt.Errorf("%s es un grupo, entra con 'cd'", last.ID)
	}

	sel := selectionFor(walk)
	if !sel.CanRun(input) {
		return fmt.Errorf("la card %q necesita una unidad: run %s <unidad>", last.Label, target)
	}

	fmt.Printf("Ejecutando %s...\n", colorBold.Sprint(sel.PathString()))
	turn := n.orch.RunAction(sel, input)
	printTurn(turn)
	return nil
}

// printTurn renders an assistant turn with its blocks
func printTurn(turn chat.Turn) {
	if len(turn.Blocks) == 0 {
		fmt.Println(turn.Content)
		return
	}

	fmt.Println(turn.Content)
	for _, block := range turn.Blocks {
		switch block.Kind {
		case report.BlockImage:
			colorPurple.Printf("  [imagen] %s: ", block.Label)
			fmt.Println(block.Value)
		case report.BlockFile:
			colorYellow.Printf("  [archivo] %s: ", block.Label)
			fmt.Println(block.Value)
		default:
			colorCyan.Printf("  [texto] %s\n", block.Label)
			fmt.Println("  " + strings.ReplaceAll(block.Value, "\n", "\n  "))
		}
	}
	if turn.Meta != nil {
		colorGray.Printf("  fuente: %s\n", turn.Meta.URL)
	}
}

// auto lists automations or runs one
func (n *Navigator) auto(args []string) error {
	autos := catalog.Automations()

	if len(args) == 0 || args[0] == "list" {
		for _, a := range autos {
			fmt.Printf("%s  %s\n", colorGreen.Sprint(a.ID), a.Label)
		}
		return nil
	}

	id := args[0]
	if args[0] == "run" {
		if len(args) < 2 {
			return fmt.Errorf("usage: auto run <id>")
		}
		id = args[1]
	}

	var found *catalog.Automation
	for i := range autos {
		if autos[i].ID == id {
			found = &autos[i]
			break
		}
	}
	if found == nil {
		return fmt.Errorf("automatización desconocida: %s", id)
	}

	fmt.Printf("Lanzando %s...\n", colorBold.Sprint(found.Label))
	result, err := n.client.RunAutomation(found.ID, found.RunPath)
	if err != nil {
		return err
	}
	fmt.Println(report.FormatPayload(result.Payload))
	return nil
}

// upload sends files to an automation intake
func (n *Navigator) upload(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: upload <automation_id> <file>...")
	}

	automationID := args[0]
	var files []report.UploadFile
	for _, path := range args[1:] {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		files = append(files, report.UploadFile{Name: filepath.Base(path), Data: data})
	}

	result, err := n.client.Upload(files, automationID)
	if err != nil {
		return err
	}
	colorGreen.Printf("Subidos %d archivos\n", len(files))
	fmt.Println(report.FormatPayload(result.Payload))
	return nil
}

// say prints the canned assistant reply for a free prompt
func (n *Navigator) say(prompt string) error {
	if prompt == "" {
		return fmt.Errorf("usage: say <mensaje>")
	}
	fmt.Println(chat.GenerateReply(prompt))
	return nil
}

// tree prints the whole catalog
func (n *Navigator) tree() {
	var walk func(nodes []catalog.Node, indent string)
	walk = func(nodes []catalog.Node, indent string) {
		for i := range nodes {
			fmt.Printf("%s%s  %s\n", indent, entryLabel(&nodes[i]), colorGray.Sprint(nodes[i].Label))
			walk(nodes[i].Children, indent+"  ")
		}
	}
	walk(n.roots, "")
}

func executeCommand(nav *Navigator, cmd string, args []string) error {
	switch cmd {
	case "cd":
		target := ""
		if len(args) > 0 {
			target = args[0]
		}
		return nav.cd(target)

	case "ls":
		target := ""
		if len(args) > 0 {
			target = args[0]
		}
		return nav.ls(target)

	case "pwd":
		fmt.Println(nav.pwd())

	case "run":
		if len(args) == 0 {
			return fmt.Errorf("usage: run <ruta> [unidad]")
		}
		return nav.run(args[0], strings.Join(args[1:], " "))

	case "auto":
		return nav.auto(args)

	case "upload":
		return nav.upload(args)

	case "say":
		return nav.say(strings.Join(args, " "))

	case "tree":
		nav.tree()

	case "url":
		fmt.Println(nav.client.BaseURL())

	case "clear":
		fmt.Print("\033[H\033[2J")

	case "help", "?":
		printHelp()

	case "exit", "quit", "q":
		// Handled in main loop
		return nil

	default:
		return fmt.Errorf("unknown command: %s (type 'help' for commands)", cmd)
	}

	return nil
}

func entriesSummary(nodes []catalog.Node) string {
	groups := 0
	cards := 0
	for i := range nodes {
		if nodes[i].IsLeaf() {
			cards++
		} else {
			groups++
		}
	}

	var parts []string
	if groups > 0 {
		parts = append(parts, fmt.Sprintf("%d grupos", groups))
	}
	if cards > 0 {
		parts = append(parts, fmt.Sprintf("%d cards", cards))
	}
	if len(parts) == 0 {
		return "vacío"
	}
	return strings.Join(parts, ", ")
}

func printHelp() {
	fmt.Print(`
finsh - Financial Reporting Shell Commands:

Navigation:
  cd <ruta>       Enter a catalog group (ids or label prefixes)
  pwd             Print current catalog position
  ls [ruta]       List groups and cards; on a card, show its endpoint
  tree            Show the whole catalog

Actions:
  run <ruta> [unidad]   Execute an action card
  auto [list]           List automations
  auto run <id>         Launch an automation
  upload <id> <file>... Upload files to an automation intake
  say <mensaje>         Free-form prompt (canned reply)

Settings:
  url             Show the API base URL
  clear           Clear screen

Control:
  help            Show help
  exit/quit       Exit shell

Path Notation:
  /               Path separator (comercial/comercial-21)
  ..              Parent level
  ~               Catalog root

Examples:
  ls                          List the three catalog areas
  cd comercial                Enter the comercial area
  ls comercial-21             List the drill-down cards
  run finanzas/finanzas-11    Run a card without input
  run comercial/comercial-21/comercial-211 Madrid
  auto run contabilidad       Launch the accounting automation

Display Symbols:
  blue/           Group (navigable)
  green           Card (runnable)
  purple*         Card that asks for a unidad
`)
}

// formatColumns formats items in columns like ls
func formatColumns(items []string) string {
	if len(items) == 0 {
		return ""
	}

	width := 100 // default
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			width = w
		}
	}

	maxLen := 0
	for _, item := range items {
		stripped := stripAnsi(item)
		if len(stripped) > maxLen {
			maxLen = len(stripped)
		}
	}

	colWidth := maxLen + 2
	numCols := width / colWidth
	if numCols < 1 {
		numCols = 1
	}

	var result strings.Builder
	for i, item := range items {
		result.WriteString(item)
		if (i+1)%numCols == 0 {
			result.WriteString("\n")
		} else if i < len(items)-1 {
			stripped := stripAnsi(item)
			padding := colWidth - len(stripped)
			result.WriteString(strings.Repeat(" ", padding))
		}
	}

	return result.String()
}

// stripAnsi removes ANSI escape codes from text
func stripAnsi(text string) string {
	var result strings.Builder
	inCode := false
	for _, ch := range text {
		if ch == '\033' {
			inCode = true
		} else if inCode {
			if ch == 'm' {
				inCode = false
			}
		} else {
			result.WriteRune(ch)
		}
	}
	return result.String()
}
