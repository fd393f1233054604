package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/mahsaveysi0808-star/Focus-to-do/internal/config"
	"github.com/mahsaveysi0808-star/Focus-to-do/internal/database"
	"github.com/mahsaveysi0808-star/Focus-to-do/internal/notify"
	"github.com/mahsaveysi0808-star/Focus-to-do/internal/timer"
	"github.com/mahsaveysi0808-star/Focus-to-do/internal/tui"
	"github.com/mahsaveysi0808-star/Focus-to-do/internal/util"
)

func main() {
	if hasVersionFlag(os.Args[1:]) {
		fmt.Printf("%s %s (%s %s)\n", config.AppName, tui.AppVersion, tui.GitCommit, tui.BuildTime)
		return
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, config.AppName+" needs an interactive terminal")
		os.Exit(1)
	}

	ctx := context.Background()

	dataRoot := util.DataDir(config.AppName)
	util.MustSucceed("create data directory", os.MkdirAll(dataRoot, 0o755))

	db, err := database.Open(ctx, filepath.Join(dataRoot, config.DBFileName))
	util.MustSucceed("open database", err)
	defer util.LogClose("close database", db)

	engine := timer.New(db, notify.NewPlayer())
	model := tui.NewTimerModel(ctx, db, engine)

	p := tea.NewProgram(model, tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func hasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--version" || arg == "-v" {
			return true
		}
	}
	return false
}
