package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invectorlabs/bomsort/internal/feeder"
)

func TestLoad(t *testing.T) {
	eng := newTestEngine(boardFS(), nil)

	board, err := eng.Load(context.Background(), "board.txt")
	require.NoError(t, err)

	assert.Equal(t, "board.txt", board.Path)
	assert.Len(t, board.Records, 6)
	assert.Equal(t, len(board.Records), feeder.TotalQuantity(board.Parts))
	assert.Equal(t, "10k|0603", board.Parts[0].TypeKey)
}

func TestFeeders_Deterministic(t *testing.T) {
	eng := newTestEngine(boardFS(), nil)
	board, err := eng.Load(context.Background(), "board.txt")
	require.NoError(t, err)

	first, err := eng.Feeders(board)
	require.NoError(t, err)
	second, err := eng.Feeders(board)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 0, feeder.Collisions(first.Optimizer.Assignments))
}
