package observability

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/jonathan/feedback-aggregator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintReport(&types.ReportResult{
		Category: types.CategoryBusiness,
		Earliest: time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
		Passed:   2,
		Total:    3,
	})

	assert.Equal(t, "Processed 2/3 'business' survey feedback files for 2024-01-02.\n", buf.String())
}

func TestPrintReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintReport(nil)

	assert.Empty(t, buf.String())
}

func TestPrintCategorySkipped(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCategorySkipped(types.CategoryNonBusiness)

	assert.Equal(t, "No valid 'non-business' survey feedback data found. Skipping ...\n", buf.String())
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintError(nil)
	assert.Empty(t, buf.String())

	p.PrintError(errors.New("boom"))
	assert.Equal(t, "Error: boom\n", buf.String())
}

func TestPrintRunSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	skipped := make([]types.SkippedFile, 0, 7)
	for i := 0; i < 7; i++ {
		skipped = append(skipped, types.SkippedFile{Filename: fmt.Sprintf("bad-%d.json", i), Reason: "invalid"})
	}

	p.PrintRunSummary(&types.RunSummary{
		RunID: "run-123",
		Reports: []types.ReportResult{
			{Category: types.CategoryBusiness, Passed: 4, Total: 5},
		},
		Skipped: skipped,
	})
	output := buf.String()

	assert.Contains(t, output, "AGGREGATION SUMMARY")
	assert.Contains(t, output, "run-123")
	assert.Contains(t, output, "business  4/5 rows")
	assert.Contains(t, output, "bad-0.json")
	assert.Contains(t, output, "bad-4.json")
	assert.NotContains(t, output, "bad-5.json")
	assert.Contains(t, output, "... and 2 more")
}

func TestPrintRunSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRunSummary(nil)

	assert.Empty(t, buf.String())
}

func TestPrintScanPlan(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScanPlan([]PlannedReport{
		{Category: types.CategoryNonBusiness, Filename: "- FB-Non-Business-Surveys-2024-01-02.csv", Records: 2},
	}, []types.SkippedFile{{Filename: "broken.json", Reason: "parse error"}})
	output := buf.String()

	assert.Contains(t, output, "SCAN PLAN")
	assert.Contains(t, output, "non-business: 2 records")
	assert.Contains(t, output, "- FB-Non-Business-Surveys-2024-01-02.csv")
	assert.Contains(t, output, "Skipped 1 files")
	assert.Contains(t, output, "broken.json")
}

func TestPrintScanPlan_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScanPlan(nil, nil)

	assert.Contains(t, buf.String(), "No reports would be written.")
}

func TestPrintScanPlan_LongNamesAreNotCut(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	longName := "- Aggregated Feedback-Non-Business-Surveys-2024-01-02.csv"
	wideSkip := strings.Repeat("x", 46) + "é.json"
	p.PrintScanPlan([]PlannedReport{
		{Category: types.CategoryNonBusiness, Filename: longName, Records: 3},
	}, []types.SkippedFile{{Filename: wideSkip, Reason: "parse error"}})
	output := buf.String()

	assert.Contains(t, output, longName)
	assert.Contains(t, output, wideSkip)
	assert.True(t, utf8.ValidString(output), "output must be valid UTF-8")

	lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")
	require.NotEmpty(t, lines)
	width := lipgloss.Width(lines[0])
	for _, line := range lines {
		assert.Equal(t, width, lipgloss.Width(line), "box line %q is misaligned", line)
	}
}

func TestPrintRunSummary_LongFilenames(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	name := "ünïcödé-" + strings.Repeat("feedback-", 8) + "submission.json"
	p.PrintRunSummary(&types.RunSummary{
		RunID:   "run-1",
		Skipped: []types.SkippedFile{{Filename: name, Reason: "invalid"}},
	})
	output := buf.String()

	assert.Contains(t, output, name)
	assert.True(t, utf8.ValidString(output), "output must be valid UTF-8")
}
