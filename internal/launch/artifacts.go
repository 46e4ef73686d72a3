package launch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// suffixLength is the length of the random artifact suffix. The suffix is
// the sole collision-avoidance mechanism for the shared temp directory.
const suffixLength = 30

// writeArtifacts creates the two filesystem artifacts of one terminal
// execution: an executable script <program>_<suffix>.sh that deletes itself
// and then runs the command, and a symlink <program>_<suffix>.cmd pointing
// at the running executable. The two names share the same random suffix;
// ScriptPathForLink relies on that to find the script again after relaunch.
func writeArtifacts(dir, program, command string) (scriptPath, linkPath string, err error) {
	suffix := randomSuffix()
	scriptPath = filepath.Join(dir, fmt.Sprintf("%s_%s.sh", program, suffix))
	linkPath = filepath.Join(dir, fmt.Sprintf("%s_%s.cmd", program, suffix))

	script := "#!/bin/sh\nrm " + scriptPath + "\n" + command + "\n"
	if err := os.WriteFile(scriptPath, []byte(script), 0o700); err != nil {
		return "", "", fmt.Errorf("writing script file: %w", err)
	}
	// Creation-time permissions are subject to the umask; set the mode
	// explicitly so the terminal emulator can always execute the script.
	if err := os.Chmod(scriptPath, 0o700); err != nil {
		return "", "", fmt.Errorf("setting script permissions: %w", err)
	}

	exe, err := executablePath()
	if err != nil {
		return "", "", fmt.Errorf("resolving own executable: %w", err)
	}
	if err := os.Symlink(exe, linkPath); err != nil {
		return "", "", fmt.Errorf("creating link: %w", err)
	}

	return scriptPath, linkPath, nil
}

// randomSuffix returns a 30-character alphanumeric string. A dashless UUID
// is 32 hex characters, so truncating keeps 120 bits of entropy.
func randomSuffix() string {
	s := strings.ReplaceAll(uuid.New().String(), "-", "")
	return s[:suffixLength]
}

// executablePath returns the resolved path of the running executable.
func executablePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(exe)
}
