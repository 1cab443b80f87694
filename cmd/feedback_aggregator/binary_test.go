package main

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// getBinaryPath returns the path to the feedback_aggregator binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "feedback_aggregator"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/ ./cmd/...'", binaryPath)
	}

	return binaryPath
}

func TestBinary_ExitsWithStatusOne(t *testing.T) {
	binaryPath := getBinaryPath(t)
	missing := filepath.Join(t.TempDir(), "missing")

	cmd := exec.Command(binaryPath, "--config", writeConfig(t, missing))
	output, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "expected a non-zero exit")
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, string(output), "Error: The specified source folder '"+filepath.ToSlash(missing)+"' does not exist!")
}
