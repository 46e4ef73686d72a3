// Package ui renders the dialog and routes button activations to the
// launcher.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nagbox/nagbox/internal/launch"
	"github.com/nagbox/nagbox/internal/model"
	"github.com/nagbox/nagbox/internal/notify"
	"github.com/nagbox/nagbox/internal/ui/keys"
	"github.com/nagbox/nagbox/internal/ui/styles"
)

// cancelLabel is the trailing button every dialog gets.
const cancelLabel = "Cancel"

// App is the dialog model.
type App struct {
	config   *model.Configuration
	launcher *launch.Launcher
	notifier *notify.Dispatcher
	keys     keys.KeyMap

	// cursor indexes the buttons; len(config.Buttons) is the Cancel button.
	cursor   int
	width    int
	height   int
	quitting bool
	execErr  error
}

// New creates the dialog for a parsed configuration.
func New(config *model.Configuration, launcher *launch.Launcher, notifier *notify.Dispatcher) App {
	return App{
		config:   config,
		launcher: launcher,
		notifier: notifier,
		keys:     keys.DefaultKeyMap(),
		cursor:   0,
	}
}

// ExecErr returns the launch failure that ended the dialog, if any.
func (a App) ExecErr() error {
	return a.execErr
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Up):
			a.cursor--
			if a.cursor < 0 {
				a.cursor = len(a.config.Buttons)
			}
		case key.Matches(msg, a.keys.Down):
			a.cursor++
			if a.cursor > len(a.config.Buttons) {
				a.cursor = 0
			}
		case key.Matches(msg, a.keys.Cancel):
			// Cancel ends the event loop only; already-spawned children
			// keep running detached.
			a.quitting = true
			return a, tea.Quit
		case key.Matches(msg, a.keys.Enter):
			return a.activate()
		}
	}

	return a, nil
}

// activate runs the command behind the selected button. A spawn failure is
// unrecoverable: the error is kept for main, a notification is dispatched,
// and the dialog quits.
func (a App) activate() (tea.Model, tea.Cmd) {
	if a.cursor >= len(a.config.Buttons) {
		a.quitting = true
		return a, tea.Quit
	}

	button := a.config.Buttons[a.cursor]
	if err := a.launcher.Exec(button.Command); err != nil {
		a.execErr = fmt.Errorf("launching %q: %w", button.Label, err)
		a.notifier.LaunchFailed(button.Label, err)
		a.quitting = true
		return a, tea.Quit
	}

	if a.config.ExitAfterAction {
		a.quitting = true
		return a, tea.Quit
	}
	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	if a.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(a.renderMessage())
	b.WriteString("\n\n")

	for i, button := range a.config.Buttons {
		b.WriteString(a.renderButton(button.Label, button.Icon, i == a.cursor))
		b.WriteString("\n")
	}
	b.WriteString(a.renderButton(cancelLabel, "", a.cursor == len(a.config.Buttons)))
	b.WriteString("\n")
	b.WriteString(styles.Help.Render(a.helpLine()))

	content := b.String()
	if a.width == 0 || a.height == 0 {
		return content
	}
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}

func (a App) renderMessage() string {
	marker := styles.ErrorMarker.Render("✖")
	if a.config.MessageType == model.MessageWarning {
		marker = styles.WarningMarker.Render("⚠")
	}
	return marker + " " + styles.Message.Render(a.config.Message)
}

func (a App) renderButton(label, icon string, focused bool) string {
	text := label
	if icon != "" {
		text += " " + styles.Icon.Render("("+icon+")")
	}
	if focused {
		return styles.ButtonFocused.Render(text)
	}
	return styles.Button.Render(text)
}

func (a App) helpLine() string {
	parts := make([]string, 0, 4)
	for _, binding := range a.keys.ShortHelp() {
		parts = append(parts, binding.Help().Key+" "+binding.Help().Desc)
	}
	return strings.Join(parts, " • ")
}
