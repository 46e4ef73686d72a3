package launch

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// sentinelSuffix marks an invocation path as a relaunch through one of the
// links created by writeArtifacts.
const sentinelSuffix = ".cmd"

// IsScriptRelaunch reports whether the given invocation path (argv[0])
// identifies this process as a relaunch performed by a terminal emulator.
func IsScriptRelaunch(invocation string) bool {
	return strings.HasSuffix(invocation, sentinelSuffix)
}

// ScriptPathForLink derives the script path paired with a link path by
// swapping the trailing "cmd" for "sh". The result must reproduce the
// script name from writeArtifacts byte for byte; the shared random suffix
// is what lets the two process instances rendezvous.
func ScriptPathForLink(link string) string {
	return link[:len(link)-3] + "sh"
}

// RunScript performs the relaunch side of the protocol: remove the link at
// linkPath, then run the paired script with /bin/sh and wait for it. The
// script deletes its own file as its first instruction, so nothing is left
// on disk once this returns.
//
// Link removal is best-effort: the script still has to run even when the
// link is already gone. Script spawn or wait failures are returned and are
// fatal for the relaunched process.
func RunScript(linkPath string) error {
	if err := os.Remove(linkPath); err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't delete link %s: %v\n", linkPath, err)
	}

	cmd := exec.Command("/bin/sh", ScriptPathForLink(linkPath))
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running script for %s: %w", linkPath, err)
	}
	return nil
}
