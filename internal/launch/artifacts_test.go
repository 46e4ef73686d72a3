package launch

import (
	"fmt"
	"os"
	"strings"
	"testing"
)

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()

	scriptPath, linkPath, err := writeArtifacts(dir, "nagbox", "echo hello")
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}

	info, err := os.Stat(scriptPath)
	if err != nil {
		t.Fatalf("script file missing: %v", err)
	}
	if mode := info.Mode().Perm(); mode != 0o700 {
		t.Errorf("script mode = %o, want 700", mode)
	}

	data, err := os.ReadFile(scriptPath)
	if err != nil {
		t.Fatalf("reading script: %v", err)
	}
	want := fmt.Sprintf("#!/bin/sh\nrm %s\necho hello\n", scriptPath)
	if string(data) != want {
		t.Errorf("script content:\n%q\nwant:\n%q", data, want)
	}

	linkInfo, err := os.Lstat(linkPath)
	if err != nil {
		t.Fatalf("link missing: %v", err)
	}
	if linkInfo.Mode()&os.ModeSymlink == 0 {
		t.Errorf("link is not a symlink: mode %v", linkInfo.Mode())
	}
	target, err := os.Readlink(linkPath)
	if err != nil {
		t.Fatalf("readlink: %v", err)
	}
	exe, err := executablePath()
	if err != nil {
		t.Fatalf("executablePath: %v", err)
	}
	if target != exe {
		t.Errorf("link target = %q, want %q", target, exe)
	}
}

// TestArtifactNameCoupling verifies the two filename schemes stay in
// lockstep: deriving the script path from the link path reproduces the
// script name byte for byte.
func TestArtifactNameCoupling(t *testing.T) {
	dir := t.TempDir()

	scriptPath, linkPath, err := writeArtifacts(dir, "nagbox", "true")
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}
	if !strings.HasSuffix(linkPath, ".cmd") {
		t.Fatalf("link path %q does not end in .cmd", linkPath)
	}
	if got := ScriptPathForLink(linkPath); got != scriptPath {
		t.Errorf("ScriptPathForLink(%q) = %q, want %q", linkPath, got, scriptPath)
	}
}

func TestRandomSuffix(t *testing.T) {
	seen := make(map[string]bool, 10000)
	for i := 0; i < 10000; i++ {
		s := randomSuffix()
		if len(s) != suffixLength {
			t.Fatalf("suffix %q has length %d, want %d", s, len(s), suffixLength)
		}
		for _, r := range s {
			alnum := (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
			if !alnum {
				t.Fatalf("suffix %q contains non-alphanumeric %q", s, r)
			}
		}
		if seen[s] {
			t.Fatalf("suffix collision after %d generations: %q", i, s)
		}
		seen[s] = true
	}
}

func TestRuntimeDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", dir)
	if got := runtimeDir(); got != dir {
		t.Errorf("runtimeDir = %q, want XDG_RUNTIME_DIR %q", got, dir)
	}

	t.Setenv("XDG_RUNTIME_DIR", "")
	if got := runtimeDir(); got != os.TempDir() {
		t.Errorf("runtimeDir = %q, want temp dir %q", got, os.TempDir())
	}
}
