package engine

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/invectorlabs/bomsort/internal/bom"
	"github.com/invectorlabs/bomsort/internal/clock"
	"github.com/invectorlabs/bomsort/internal/config"
	"github.com/invectorlabs/bomsort/internal/fsops"
	"github.com/invectorlabs/bomsort/internal/hash"
	"github.com/invectorlabs/bomsort/internal/report"
)

const boardBOM = `R1 1 2 0 10k 0603
R2 3 4 90 10k 0603
C10 5 6 0 100n 0402
C2 7 8 0 100n 0402
C1 9 10 0 100n 0402
TP1 0 0 0 TP TP
U1 11 12 270 STM32 LQFP48
`

var fixedTime = time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC)

func newTestEngine(fs *fsops.MemFS, logger *zap.Logger) *Engine {
	hasher := hash.NewFakeHasher()
	hasher.SetHash(boardBOM, "boardhash")
	return New(fs, hasher, clock.NewFakeClock(fixedTime), report.CSVWriter{}, config.Default(), logger)
}

func boardFS() *fsops.MemFS {
	fs := fsops.NewMemFS()
	fs.Files["board.txt"] = []byte(boardBOM)
	return fs
}

func TestGenerate_AllArtifacts(t *testing.T) {
	fs := boardFS()
	eng := newTestEngine(fs, nil)

	result, err := eng.Generate(context.Background(), &GenerateRequest{
		Input:         "board.txt",
		PlacementPath: "out/board.csv",
		Sorted:        true,
		InventoryPath: "out/parts.csv",
		FeederPath:    "out/feeders.csv",
	})
	require.NoError(t, err)

	assert.Equal(t, "boardhash", result.Fingerprint)
	assert.Equal(t, 6, result.Records)
	assert.Equal(t, 3, result.Parts)
	assert.True(t, result.GeneratedAt.Equal(fixedTime))
	assert.NotEmpty(t, result.RunID)
	require.Len(t, result.Artifacts, 3)
	for _, a := range result.Artifacts {
		assert.True(t, a.Written, "%s not written", a.Kind)
		assert.Empty(t, a.Error)
	}

	assert.Equal(t,
		"Part,X,Y,A,Description,Package\n"+
			"C1,9,10,0,100n,0402\n"+
			"C2,7,8,0,100n,0402\n"+
			"C10,5,6,0,100n,0402\n"+
			"R1,1,2,0,10k,0603\n"+
			"R2,3,4,90,10k,0603\n"+
			"U1,11,12,270,STM32,LQFP48\n",
		string(fs.Files["out/board.csv"]))

	assert.Equal(t,
		"Part,Description,Package,Count\n"+
			"1,100n,0402,3\n"+
			"2,10k,0603,2\n"+
			"3,STM32,LQFP48,1\n",
		string(fs.Files["out/parts.csv"]))

	assert.Equal(t,
		"Feeder,Description,Package,Count\n"+
			"18,100n,0402,1\n"+
			"19,STM32,LQFP48,1\n"+
			"20,10k,0603,1\n"+
			"21,100n,0402,2\n"+
			"22,10k,0603,1\n",
		string(fs.Files["out/feeders.csv"]))

	require.NotNil(t, result.Optimizer)
	assert.True(t, result.Optimizer.Converged)
	assert.Equal(t, 2, result.Optimizer.Passes)
	require.NotNil(t, result.Travel)
	assert.Equal(t, 6, result.Travel.Placements)
}

func TestGenerate_UnsortedPlacementKeepsFileOrder(t *testing.T) {
	fs := boardFS()
	eng := newTestEngine(fs, nil)

	_, err := eng.Generate(context.Background(), &GenerateRequest{Input: "board.txt", PlacementPath: "p.csv"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(fs.Files["p.csv"])), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[1], "R1,"))
	assert.True(t, strings.HasPrefix(lines[3], "C10,"))
}

func TestGenerate_IngestionFailuresAbort(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  error
	}{
		{name: "missing input", files: map[string]string{}, want: bom.ErrInputNotFound},
		{name: "malformed record", files: map[string]string{"board.txt": "R1 1 2 0 10k 0603\nR2 1 2\n"}, want: bom.ErrMalformedRecord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := fsops.NewMemFS()
			for k, v := range tt.files {
				fs.Files[k] = []byte(v)
			}
			eng := newTestEngine(fs, nil)

			result, err := eng.Generate(context.Background(), &GenerateRequest{
				Input:         "board.txt",
				PlacementPath: "p.csv",
				FeederPath:    "f.csv",
			})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Nil(t, result)

			exists, _ := fs.Exists("p.csv")
			assert.False(t, exists)
			exists, _ = fs.Exists("f.csv")
			assert.False(t, exists)
		})
	}
}

func TestGenerate_Validation(t *testing.T) {
	eng := newTestEngine(boardFS(), nil)

	_, err := eng.Generate(context.Background(), &GenerateRequest{Input: "board.txt"})
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = eng.Generate(context.Background(), &GenerateRequest{PlacementPath: "p.csv"})
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestGenerate_OneArtifactFailureDoesNotBlockOthers(t *testing.T) {
	fs := boardFS()
	diskFull := errors.New("disk full")
	fs.WriteErr["parts.csv"] = diskFull
	eng := newTestEngine(fs, nil)

	result, err := eng.Generate(context.Background(), &GenerateRequest{
		Input:         "board.txt",
		PlacementPath: "board.csv",
		InventoryPath: "parts.csv",
		FeederPath:    "feeders.csv",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, diskFull))
	require.NotNil(t, result)

	require.Len(t, result.Artifacts, 3)
	assert.True(t, result.Artifacts[0].Written)
	assert.False(t, result.Artifacts[1].Written)
	assert.Contains(t, result.Artifacts[1].Error, "disk full")
	assert.True(t, result.Artifacts[2].Written)

	_, ok := fs.Files["board.csv"]
	assert.True(t, ok)
	_, ok = fs.Files["feeders.csv"]
	assert.True(t, ok)
}

func TestGenerate_EmptyBOMFeederList(t *testing.T) {
	fs := fsops.NewMemFS()
	fs.Files["empty.txt"] = []byte("TP1 0 0 0 TP TP\nFID1 1 1 0 FID FID\n")
	eng := newTestEngine(fs, nil)

	result, err := eng.Generate(context.Background(), &GenerateRequest{
		Input:         "empty.txt",
		PlacementPath: "board.csv",
		FeederPath:    "feeders.csv",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoParts))
	assert.Equal(t, "Part,X,Y,A,Description,Package\n", string(fs.Files["board.csv"]))
	assert.Nil(t, result.Optimizer)
}

func TestGenerate_DryRun(t *testing.T) {
	fs := boardFS()
	eng := newTestEngine(fs, nil)

	result, err := eng.Generate(context.Background(), &GenerateRequest{
		Input:         "board.txt",
		InventoryPath: "parts.csv",
		FeederPath:    "feeders.csv",
		DryRun:        true,
	})
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Len(t, fs.Files, 1)
	for _, a := range result.Artifacts {
		assert.False(t, a.Written)
		assert.Greater(t, a.Rows, 0)
	}
	assert.NotNil(t, result.Optimizer)
}

func TestGenerate_Stdout(t *testing.T) {
	eng := newTestEngine(boardFS(), nil)
	var out bytes.Buffer

	_, err := eng.Generate(context.Background(), &GenerateRequest{
		Input:         "board.txt",
		InventoryPath: StdoutPath,
		Stdout:        &out,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.String(), "Part,Description,Package,Count\n"))

	_, err = eng.Generate(context.Background(), &GenerateRequest{Input: "board.txt", InventoryPath: StdoutPath})
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestGenerate_CancelledContext(t *testing.T) {
	eng := newTestEngine(boardFS(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := eng.Generate(ctx, &GenerateRequest{Input: "board.txt", PlacementPath: "p.csv"})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestGenerate_LogsCarryRunID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	eng := newTestEngine(boardFS(), zap.New(core))

	result, err := eng.Generate(context.Background(), &GenerateRequest{Input: "board.txt", FeederPath: "f.csv"})
	require.NoError(t, err)

	loaded := logs.FilterMessage("bom loaded").All()
	require.Len(t, loaded, 1)
	assert.Equal(t, result.RunID, loaded[0].ContextMap()["run_id"])
	assert.Equal(t, 1, logs.FilterMessage("artifact written").Len())
}
