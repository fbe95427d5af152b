package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"

	"finchat/chat"
	"finchat/report"
)

// Config holds connection configuration
type Config struct {
	APIURL    string `yaml:"api_url"`
	TimeoutMS int    `yaml:"timeout_ms"`
}

func main() {
	if len(os.Args) > 2 {
		fmt.Println("Usage: finchat [CONFIG_FILE]")
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
	conv := chat.NewConversation("Asistente Financiero")
	orch := chat.New(client, conv)

	m := NewModel(orch)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
