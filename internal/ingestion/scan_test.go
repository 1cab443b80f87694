package ingestion

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestIsAggregateFile(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		prefix string
		want   bool
	}{
		{name: "exact prefix", file: "- Aggregated Feedback-Business-Surveys-2024-01-02.csv", prefix: "Aggregated Feedback", want: true},
		{name: "different case", file: "- AGGREGATED FEEDBACK-Business.csv", prefix: "aggregated feedback", want: true},
		{name: "prefix in the middle", file: "old-aggregated feedback.json", prefix: "Aggregated Feedback", want: true},
		{name: "regular feedback", file: "feedback-001.json", prefix: "Aggregated Feedback", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAggregateFile(tt.file, tt.prefix))
		})
	}
}

func TestScanFolder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"b.json",
		"a.json",
		"notes.txt",
		".DS_Store",
		"- Aggregated Feedback-Business-Surveys-2024-01-02.csv",
		"- aggregated feedback-Non-Business-Surveys-2024-01-02.csv",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(`{}`), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "archive", "c.json"), []byte(`{}`), 0644))

	files, err := ScanFolder(dir, "Aggregated Feedback", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "b.json"),
		filepath.Join(dir, "notes.txt"),
	}, files)
}

func TestScanFolder_Empty(t *testing.T) {
	files, err := ScanFolder(t.TempDir(), "Aggregated Feedback", nil)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestScanFolder_MissingFolder(t *testing.T) {
	_, err := ScanFolder(filepath.Join(t.TempDir(), "missing"), "Aggregated Feedback", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read source folder")
}

func TestScanFolder_WarnsOnDanglingSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need extra privileges on windows")
	}

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte(`{}`), 0644))
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone.json"), filepath.Join(dir, "link.json")))

	core, logs := observer.New(zapcore.WarnLevel)
	files, err := ScanFolder(dir, "Aggregated Feedback", zap.New(core))
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, "a.json")}, files)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "file cannot be inspected and will be skipped", entry.Message)
	assert.Equal(t, "link.json", entry.ContextMap()["file"])
	assert.Contains(t, entry.ContextMap(), "error")
}
