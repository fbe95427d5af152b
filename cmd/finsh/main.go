package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"finchat/chat"
	"finchat/report"
)

// Colors for output
var (
	colorCyan     = color.New(color.FgCyan)
	colorGreen    = color.New(color.FgGreen)
	colorPurple   = color.New(color.FgMagenta)
	colorYellow   = color.New(color.FgYellow)
	colorGray     = color.New(color.FgHiBlack)
	colorBold     = color.New(color.Bold)
	colorBoldBlue = color.New(color.FgBlue, color.Bold)
)

// Config holds connection configuration
type Config struct {
	APIURL    string `yaml:"api_url"`
	TimeoutMS int    `yaml:"timeout_ms"`
}

// loadConfig reads configuration from a YAML file
func loadConfig(path string) (report.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return report.Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return report.Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := report.NewConfig(fileCfg.APIURL)
	if fileCfg.TimeoutMS > 0 {
		cfg.Timeout = time.Duration(fileCfg.TimeoutMS) * time.Millisecond
	}
	return cfg, nil
}

func main() {
	if len(os.Args) > 2 {
		fmt.Println("Usage: finsh [CONFIG_FILE]")
		fmt.Println("Example: finsh config.yaml")
		os.Exit(1)
	}

	cfg := report.LoadConfig()
	if len(os.Args) == 2 {
		loaded, err := loadConfig(os.Args[1])
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	client := report.NewClient(cfg)
	orch := chat.New(client, chat.NewConversation("finsh"))
	nav := NewNavigator(client, orch)

	fmt.Printf("API: %s\n", cfg.BaseURL)
	fmt.Printf("/  (%s)\n", entriesSummary(nav.children()))
	fmt.Println("Type 'help' for commands")

	completer := NewCompleter(nav)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            getPrompt(nav),
		HistoryFile:       os.ExpandEnv("$HOME/.finsh_history"),
		AutoComplete:      completer,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
		HistoryLimit:      1000,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	for {
		rl.SetPrompt(getPrompt(nav))

		line, err := rl.Readline()
		if err != nil {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		if err := executeCommand(nav, cmd, args); err != nil {
			fmt.Printf("Error: %v\n", err)
		}

		if cmd == "exit" || cmd == "quit" || cmd == "q" {
			break
		}
	}
}

func getPrompt(nav *Navigator) string {
	return fmt.Sprintf("%s> ", colorBoldBlue.Sprint(nav.pwd()))
}
