// Package launch executes button commands and implements the terminal
// relaunch protocol.
//
// Terminal emulators disagree on how a "run this command" flag is
// interpreted, so commands destined for a terminal are never passed to the
// emulator directly. Instead a self-deleting script and a symlink back to
// this executable are written to a temp directory, and the emulator is asked
// to run the symlink. When the emulator executes it, the same binary starts
// again, recognizes the ".cmd" suffix on its own invocation path, and runs
// the paired script in a shell. This mirrors the approach used by i3-nagbar.
package launch

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/nagbox/nagbox/internal/model"
)

// Launcher executes commands for a dialog run.
type Launcher struct {
	program  string
	terminal []string
}

// New creates a Launcher. program names the script/link artifacts; terminal
// is the argv of the terminal emulator, e.g. ["i3-sensible-terminal", "-v", "-e"].
func New(program string, terminal []string) *Launcher {
	return &Launcher{program: program, terminal: terminal}
}

// Exec launches the command with its bound strategy. The child is not
// waited on; spawn failure is the only observable outcome.
func (l *Launcher) Exec(c model.Command) error {
	switch c.Strategy {
	case model.StrategyShell:
		return l.execShell(c)
	default:
		return l.execTerminal(c)
	}
}

// execShell runs the command with /bin/sh -c, fire and forget. Stdio is
// inherited from this process; no window is guaranteed.
func (l *Launcher) execShell(c model.Command) error {
	cmd := exec.Command("/bin/sh", "-c", c.Text)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawning shell: %w", err)
	}
	return nil
}

// execTerminal writes the script and link artifacts and spawns the terminal
// emulator on the link path, fire and forget.
func (l *Launcher) execTerminal(c model.Command) error {
	if len(l.terminal) == 0 {
		return fmt.Errorf("no terminal emulator configured")
	}

	_, linkPath, err := writeArtifacts(runtimeDir(), l.program, c.Text)
	if err != nil {
		return err
	}

	args := append(append([]string{}, l.terminal[1:]...), linkPath)
	cmd := exec.Command(l.terminal[0], args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawning terminal %s: %w", l.terminal[0], err)
	}
	return nil
}

// runtimeDir picks the directory for script/link artifacts: the user's
// runtime dir when available, the generic temp dir otherwise.
func runtimeDir() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return dir
	}
	return os.TempDir()
}
