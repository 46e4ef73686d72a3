// nagbox - a notification dialog that launches commands.
// Shows a message with user-defined action buttons; a button runs a shell
// command, optionally inside an interactive terminal emulator.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nagbox/nagbox/internal/app"
	"github.com/nagbox/nagbox/internal/cli"
	"github.com/nagbox/nagbox/internal/launch"
	"github.com/nagbox/nagbox/internal/notify"
	"github.com/nagbox/nagbox/internal/ui"
)

const (
	appName    = "nagbox"
	appVersion = "0.1.0"
)

func main() {
	// A ".cmd" invocation path means a terminal emulator is executing one
	// of our links: run the paired script and do nothing else.
	if launch.IsScriptRelaunch(os.Args[0]) {
		if err := launch.RunScript(os.Args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	config, err := cli.Parse(os.Args)
	if err != nil {
		os.Exit(cli.HandleError(os.Stdout, err, appName, appVersion))
	}

	configDir, err := app.ConfigDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting config directory: %v\n", err)
		os.Exit(1)
	}
	appConfig, err := app.LoadConfig(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	terminal, err := appConfig.TerminalArgv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	launcher := launch.New(appName, terminal)
	notifier := notify.NewDispatcher(appConfig.Notify.Desktop)

	p := tea.NewProgram(
		ui.New(config, launcher, notifier),
		tea.WithAltScreen(),
	)
	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running dialog: %v\n", err)
		os.Exit(1)
	}

	// A failed spawn is an operator error, not something to recover from.
	if m, ok := finalModel.(ui.App); ok && m.ExecErr() != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", m.ExecErr())
		os.Exit(1)
	}
}
