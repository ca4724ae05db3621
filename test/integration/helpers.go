package integration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/invectorlabs/bomsort/internal/clock"
	"github.com/invectorlabs/bomsort/internal/config"
	"github.com/invectorlabs/bomsort/internal/engine"
	"github.com/invectorlabs/bomsort/internal/fsops"
	"github.com/invectorlabs/bomsort/internal/hash"
	"github.com/invectorlabs/bomsort/internal/report"
)

// part describes count placements of one part type in a generated BOM.
type part struct {
	prefix string
	value  string
	pkg    string
	count  int
}

// buildBOM renders a whitespace-separated BOM placing each part count times.
func buildBOM(parts []part) string {
	var b strings.Builder
	for _, p := range parts {
		for i := 1; i <= p.count; i++ {
			fmt.Fprintf(&b, "%s%d %d.5 %d,25 90 %s %s\n", p.prefix, i, i, i*2, p.value, p.pkg)
		}
	}
	return b.String()
}

// setupEngine writes content to a temp BOM file and returns an engine on
// the real filesystem along with the BOM path and the temp directory.
func setupEngine(t *testing.T, content string) (*engine.Engine, string, string) {
	t.Helper()

	dir := t.TempDir()
	input := filepath.Join(dir, "board.txt")
	require.NoError(t, os.WriteFile(input, []byte(content), 0o644))

	eng := engine.New(
		fsops.NewRealFS(),
		hash.NewXXH3Hasher(),
		&clock.RealClock{},
		report.CSVWriter{},
		config.Default(),
		zaptest.NewLogger(t),
	)
	return eng, input, dir
}

// readCSV returns the data rows of a CSV artifact split into fields.
func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.NotEmpty(t, lines)

	rows := make([][]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rows = append(rows, strings.Split(line, ","))
	}
	return rows
}
