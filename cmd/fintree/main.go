package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"gopkg.in/yaml.v3"

	"finchat/catalog"
	"finchat/chat"
	"finchat/report"
)

// NodeRef holds what a tree node represents
type NodeRef struct {
	Node      *catalog.Node
	Selection catalog.Selection
	Auto      *catalog.Automation
}

type App struct {
	app    *tview.Application
	client *report.Client
	orch   *chat.Orchestrator

	tree   *tview.TreeView
	output *tview.TextView
	input  *tview.InputField
	status *tview.TextView
	layout *tview.Grid

	// Leaf waiting for its unidad while the input field has focus
	pending *NodeRef
}

// Config holds connection configuration
type Config struct {
	APIURL    string `yaml:"api_url"`
	TimeoutMS int    `yaml:"timeout_ms"`
}

func main() {
	if len(os.Args) > 2 {
		fmt.Println("Usage: fintree [CONFIG_FILE]")
		os.Exit(1)
	}

	cfg := report.LoadConfig()
	if len(os.Args) == 2 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Printf("Error reading config: %v\n", err)
			os.Exit(1)
		}
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			fmt.Printf("Error parsing config: %v\n", err)
			os.Exit(1)
		}
		cfg = report.NewConfig(fileCfg.APIURL)
		if fileCfg.TimeoutMS > 0 {
			cfg.Timeout = time.Duration(fileCfg.TimeoutMS) * time.Millisecond
		}
	}

	client := report.NewClient(cfg)
	orch := chat.New(client, chat.NewConversation("fintree"))

	a := NewApp(client, orch)
	if err := a.app.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func NewApp(client *report.Client, orch *chat.Orchestrator) *App {
	a := &App{
		app:    tview.NewApplication(),
		client: client,
		orch:   orch,
	}
	a.buildUI()
	return a
}

func (a *App) buildUI() {
	a.status = tview.NewTextView().
		SetDynamicColors(true).
		SetText("[yellow::b]FINTREE[-:-:-] | ↑↓:navigate | Enter:expand/run | q:quit")

	a.tree = tview.NewTreeView()
	a.tree.SetBorder(true).
		SetTitle("Action Cards").
		SetTitleAlign(tview.AlignLeft)

	a.output = tview.NewTextView().
		SetDynamicColors(true).
		SetWordWrap(true).
		SetScrollable(true)
	a.output.SetBorder(true).
		SetTitle("Respuesta").
		SetTitleAlign(tview.AlignLeft)
	fmt.Fprintf(a.output, "[green]%s[-]\n", tview.Escape(chat.Greeting))

	a.input = tview.NewInputField().
		SetLabel("unidad: ").
		SetFieldWidth(0)
	a.input.SetBorder(true)
	a.input.SetDoneFunc(a.handleInputDone)

	a.buildTree()

	a.tree.SetSelectedFunc(a.handleSelect)

	a.tree.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		current := a.tree.GetCurrentNode()
		if current == nil {
			return event
		}

		switch event.Rune() {
		case 'h':
			if current.IsExpanded() && len(current.GetChildren()) > 0 {
				current.SetExpanded(false)
			}
			return nil
		case 'l':
			if len(current.GetChildren()) > 0 {
				current.SetExpanded(true)
			}
			return nil
		case 'J':
			row, col := a.output.GetScrollOffset()
			a.output.ScrollTo(row+1, col)
			return nil
		case 'K':
			row, col := a.output.GetScrollOffset()
			if row > 0 {
				a.output.ScrollTo(row-1, col)
			}
			return nil
		}
		return event
	})

	a.layout = tview.NewGrid().
		SetRows(1, 0, 1).
		SetColumns(0, 0, 0).
		AddItem(a.status, 0, 0, 1, 3, 0, 0, false).
		AddItem(a.tree, 1, 0, 1, 1, 0, 0, true).
		AddItem(a.output, 1, 1, 1, 2, 0, 0, false).
		AddItem(a.makeHelpBar(), 2, 0, 1, 3, 0, 0, false)

	a.layout.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Rune() == 'q' && a.app.GetFocus() != a.input {
			a.app.Stop()
			return nil
		}
		return event
	})

	a.app.SetRoot(a.layout, true).SetFocus(a.tree)
}

func (a *App) makeHelpBar() *tview.TextView {
	return tview.NewTextView().
		SetDynamicColors(true).
		SetText("[gray]h:collapse | j/k:nav | l:expand | Enter:run | J/K:scroll | q:quit[-]")
}

func (a *App) buildTree() {
	root := tview.NewTreeNode("Catálogo").
		SetColor(tcell.ColorYellow).
		SetSelectable(true)

	cards := tview.NewTreeNode("Action Cards").SetColor(tcell.ColorYellow)
	roots := catalog.Default()
	for i := range roots {
		cards.AddChild(a.buildBranch(&roots[i], catalog.Selection{Level1: &roots[i]}))
	}
	root.AddChild(cards)

	autos := tview.NewTreeNode("Automatizaciones").SetColor(tcell.ColorYellow)
	for _, auto := range catalog.Automations() {
		auto := auto
		child := tview.NewTreeNode(auto.Label).
			SetColor(tcell.ColorAqua).
			SetReference(&NodeRef{Auto: &auto})
		autos.AddChild(child)
	}
	root.AddChild(autos)

	a.tree.SetRoot(root).SetCurrentNode(root)
}

// buildBranch creates tree nodes recursively, carrying the selection
// accumulated along the way.
func (a *App) buildBranch(node *catalog.Node, sel catalog.Selection) *tview.TreeNode {
	tn := tview.NewTreeNode(node.Label).SetReference(&NodeRef{Node: node, Selection: sel})

	switch {
	case !node.IsLeaf():
		tn.SetColor(tcell.ColorYellow)
		tn.SetExpanded(false)
	case node.NeedsInput:
		tn.SetColor(tcell.ColorFuchsia)
	default:
		tn.SetColor(tcell.ColorGreen)
	}

	for i := range node.Children {
		childSel := sel
		if childSel.Level2 == nil {
			childSel.Level2 = &node.Children[i]
		} else {
			childSel.Level3 = &node.Children[i]
		}
		tn.AddChild(a.buildBranch(&node.Children[i], childSel))
	}
	return tn
}

func (a *App) handleSelect(node *tview.TreeNode) {
	if len(node.GetChildren()) > 0 {
		node.SetExpanded(!node.IsExpanded())
		return
	}

	ref, ok := node.GetReference().(*NodeRef)
	if !ok || ref == nil {
		return
	}

	if ref.Auto != nil {
		a.runAutomation(ref.Auto)
		return
	}

	if ref.Node.NeedsInput {
		a.pending = ref
		a.showInput()
		return
	}

	a.runAction(ref.Selection, "")
}

// showInput swaps the help bar for the unidad field and focuses it
func (a *App) showInput() {
	a.layout.RemoveItem(a.input)
	a.layout.AddItem(a.input, 2, 0, 1, 3, 0, 0, true)
	a.input.SetText("")
	a.app.SetFocus(a.input)
}

func (a *App) hideInput() {
	a.layout.RemoveItem(a.input)
	a.app.SetFocus(a.tree)
}

func (a *App) handleInputDone(key tcell.Key) {
	pending := a.pending
	a.pending = nil
	text := strings.TrimSpace(a.input.GetText())
	a.hideInput()

	if key != tcell.KeyEnter || pending == nil || text == "" {
		return
	}
	a.runAction(pending.Selection, text)
}

// runAction dispatches off the UI loop and paints the turn when done
func (a *App) runAction(sel catalog.Selection, input string) {
	a.status.SetText(fmt.Sprintf("[yellow]Ejecutando %s...[-]", tview.Escape(sel.PathString())))

	gen := a.orch.Begin(sel, input)
	go func() {
		turn := a.orch.Execute(sel, input)
		applied := a.orch.Finish(gen, turn)
		a.app.QueueUpdateDraw(func() {
			if applied {
				a.paintTurn(turn)
			}
			a.status.SetText("[yellow::b]FINTREE[-:-:-] | ↑↓:navigate | Enter:expand/run | q:quit")
		})
	}()
}

func (a *App) runAutomation(auto *catalog.Automation) {
	a.status.SetText(fmt.Sprintf("[yellow]Lanzando %s...[-]", tview.Escape(auto.Label)))

	go func() {
		result, err := a.client.RunAutomation(auto.ID, auto.RunPath)
		a.app.QueueUpdateDraw(func() {
			a.output.Clear()
			if err != nil {
				fmt.Fprintf(a.output, "[red]%s[-]\n", tview.Escape(err.Error()))
			} else {
				fmt.Fprintln(a.output, tview.Escape(report.FormatPayload(result.Payload)))
			}
			a.status.SetText("[yellow::b]FINTREE[-:-:-] | ↑↓:navigate | Enter:expand/run | q:quit")
		})
	}()
}

// paintTurn renders an assistant turn into the output panel
func (a *App) paintTurn(turn chat.Turn) {
	a.output.Clear()
	fmt.Fprintln(a.output, tview.Escape(turn.Content))

	for _, block := range turn.Blocks {
		switch block.Kind {
		case report.BlockImage:
			fmt.Fprintf(a.output, "\n[fuchsia][imagen] %s[-]\n%s\n",
				tview.Escape(block.Label), tview.Escape(block.Value))
		case report.BlockFile:
			fmt.Fprintf(a.output, "\n[yellow][archivo] %s[-]\n%s\n",
				tview.Escape(block.Label), tview.Escape(block.Value))
		default:
			fmt.Fprintf(a.output, "\n[aqua][texto] %s[-]\n%s\n",
				tview.Escape(block.Label), tview.Escape(block.Value))
		}
	}

	if turn.Meta != nil {
		fmt.Fprintf(a.output, "\n[gray]fuente: %s[-]\n", tview.Escape(turn.Meta.URL))
	}
	a.output.ScrollToBeginning()
}
