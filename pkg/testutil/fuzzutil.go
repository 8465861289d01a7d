package testutil

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const MaxFuzzBytes = 2048

func ClampBytes(data []byte, max int) []byte {
	if len(data) > max {
		return data[:max]
	}
	return data
}

// RunAppletInDir runs a command with dir as the working directory.
func RunAppletInDir(t *testing.T, run RunApplet, args []string, input string, dir string) (string, string, int) {
	t.Helper()
	t.Chdir(dir)

	stdio, out, errBuf := CaptureStdio(input)
	code := run(stdio, args)
	return out.String(), errBuf.String(), code
}

// RunReferenceInDir runs the system program prog with the same arguments.
// The final result is false when prog is not installed.
func RunReferenceInDir(t *testing.T, prog string, args []string, input string, dir string) (string, string, int, bool) {
	t.Helper()
	path, err := exec.LookPath(prog)
	if err != nil {
		return "", "", 0, false
	}
	cmd := exec.Command(path, args...) // #nosec G204 -- reference program under test
	cmd.Dir = dir
	cmd.Stdin = strings.NewReader(input)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	exitCode := 0
	if err := cmd.Run(); err != nil {
		var ee *exec.ExitError
		require.True(t, errors.As(err, &ee), "run %s: %v", prog, err)
		exitCode = ee.ExitCode()
	}
	return outBuf.String(), errBuf.String(), exitCode, true
}

// FuzzCompare runs our command and the system prog over the same files and
// input and fails on any stdout or exit code difference.
func FuzzCompare(t *testing.T, prog string, run RunApplet, args []string, input string, files map[string]string) {
	t.Helper()
	dir := TempDirWithFiles(t, files)
	ourOut, ourErr, ourCode := RunAppletInDir(t, run, args, input, dir)
	refOut, _, refCode, ok := RunReferenceInDir(t, prog, args, input, dir)
	if !ok {
		t.Skipf("%s not installed", prog)
	}
	if ourCode != refCode {
		t.Fatalf("exit code mismatch: ours=%d %s=%d (stderr %q)", ourCode, prog, refCode, ourErr)
	}
	if !outputsEqual(ourOut, refOut) {
		t.Fatalf("stdout mismatch:\nours: %q\n%s: %q", ourOut, prog, refOut)
	}
}

// outputsEqual ignores a single missing trailing newline: we always
// terminate the last line, cat copies it as found.
func outputsEqual(a, b string) bool {
	if a == b {
		return true
	}
	return strings.TrimSuffix(a, "\n") == strings.TrimSuffix(b, "\n")
}
