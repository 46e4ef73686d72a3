package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nagbox/nagbox/internal/launch"
	"github.com/nagbox/nagbox/internal/model"
	"github.com/nagbox/nagbox/internal/notify"
)

func testConfig() *model.Configuration {
	return &model.Configuration{
		Message:     "Disk is almost full",
		MessageType: model.MessageWarning,
		Buttons: []model.Button{
			{Label: "Clean", Icon: "edit-clear", Command: model.NewCommand("true", model.StrategyShell)},
			{Label: "Inspect", Command: model.NewCommand("ncdu /", model.StrategyTerminal)},
		},
	}
}

func testApp(config *model.Configuration, launcher *launch.Launcher) App {
	return New(config, launcher, notify.NewDispatcher(false))
}

func press(t *testing.T, a App, msg tea.KeyMsg) (App, tea.Cmd) {
	t.Helper()
	m, cmd := a.Update(msg)
	next, ok := m.(App)
	if !ok {
		t.Fatalf("Update returned %T, want App", m)
	}
	return next, cmd
}

func TestNavigationWraps(t *testing.T) {
	a := testApp(testConfig(), launch.New("nagbox", nil))

	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}

	// Two buttons plus Cancel: cursor cycles 0 -> 1 -> 2 -> 0.
	for _, want := range []int{1, 2, 0} {
		a, _ = press(t, a, down)
		if a.cursor != want {
			t.Fatalf("cursor after down = %d, want %d", a.cursor, want)
		}
	}

	a, _ = press(t, a, up)
	if a.cursor != 2 {
		t.Errorf("cursor after up from 0 = %d, want 2 (Cancel)", a.cursor)
	}
}

func TestCancelQuits(t *testing.T) {
	a := testApp(testConfig(), launch.New("nagbox", nil))

	a, cmd := press(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	if !a.quitting {
		t.Error("esc did not quit")
	}
	if cmd == nil {
		t.Fatal("esc returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc command is not tea.Quit")
	}
	if a.ExecErr() != nil {
		t.Errorf("cancel set an exec error: %v", a.ExecErr())
	}
}

// TestActivateSpawnFailure verifies a failed spawn stores the error and
// ends the dialog.
func TestActivateSpawnFailure(t *testing.T) {
	// No terminal emulator configured, so the terminal-strategy button
	// cannot spawn.
	a := testApp(testConfig(), launch.New("nagbox", nil))
	a.cursor = 1

	a, cmd := press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	if a.ExecErr() == nil {
		t.Fatal("expected exec error")
	}
	if !strings.Contains(a.ExecErr().Error(), "Inspect") {
		t.Errorf("exec error %q does not name the button", a.ExecErr())
	}
	if cmd == nil {
		t.Fatal("failure did not quit the dialog")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("failure command is not tea.Quit")
	}
}

func TestExitAfterAction(t *testing.T) {
	config := testConfig()
	config.ExitAfterAction = true
	a := testApp(config, launch.New("nagbox", nil))

	// Cursor on the shell-strategy button running "true".
	a, cmd := press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	if a.ExecErr() != nil {
		t.Fatalf("exec error: %v", a.ExecErr())
	}
	if cmd == nil {
		t.Fatal("exit-after-action did not quit")
	}

	// Without the flag the dialog stays open.
	config2 := testConfig()
	b := testApp(config2, launch.New("nagbox", nil))
	b, cmd = press(t, b, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("dialog quit without exit-after-action")
	}
	if b.quitting {
		t.Error("dialog marked quitting without exit-after-action")
	}
}

func TestViewShowsConfiguration(t *testing.T) {
	a := testApp(testConfig(), launch.New("nagbox", nil))

	view := a.View()
	for _, want := range []string{"Disk is almost full", "Clean", "Inspect", "Cancel", "edit-clear"} {
		if !strings.Contains(view, want) {
			t.Errorf("view does not contain %q", want)
		}
	}
}
