package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/domain"
)

// A classic, solvable Sudoku (0 = empty).
var sample = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func TestBlockIndex(t *testing.T) {
	cases := []struct {
		r, c, want int
	}{
		{0, 0, 0}, {0, 8, 2}, {2, 2, 0}, {3, 0, 3},
		{4, 4, 4}, {5, 8, 5}, {8, 0, 6}, {8, 8, 8}, {6, 3, 7},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, BlockIndex(tc.r, tc.c), "BlockIndex(%d,%d)", tc.r, tc.c)
	}
}

func TestInitAcceptsValidBoard(t *testing.T) {
	b := &domain.Board{Values: sample}
	assert.True(t, New(b).Init())
}

func TestInitRejectsDuplicates(t *testing.T) {
	dupRow := &domain.Board{}
	dupRow.Values[0][0] = 5
	dupRow.Values[0][7] = 5

	dupCol := &domain.Board{}
	dupCol.Values[1][3] = 2
	dupCol.Values[8][3] = 2

	// same box, different row and column
	dupBox := &domain.Board{}
	dupBox.Values[0][0] = 7
	dupBox.Values[1][1] = 7

	for name, b := range map[string]*domain.Board{"row": dupRow, "col": dupCol, "box": dupBox} {
		assert.False(t, New(b).Init(), "duplicate in %s should be rejected", name)
	}
}

func TestCandidates(t *testing.T) {
	b := &domain.Board{Values: sample}
	trk := New(b)
	require.True(t, trk.Init())

	// (0,2): row has {5,3,7}, col has {8}, box has {5,3,6,9,8}
	assert.Equal(t, []uint8{1, 2, 4}, Symbols(trk.Candidates(0, 2)))
}

func TestPlaceUnplaceRoundtrip(t *testing.T) {
	b := &domain.Board{Values: sample}
	trk := New(b)
	require.True(t, trk.Init())

	before := trk.Candidates(0, 2)
	require.NotZero(t, before&(1<<4))

	trk.Place(0, 2, 4, domain.OriginSolver)
	assert.Equal(t, uint8(4), b.Values[0][2])
	assert.Equal(t, domain.OriginSolver, b.Origin[0][2])
	assert.True(t, trk.RowHas(0, 4))
	assert.True(t, trk.ColHas(2, 4))
	assert.True(t, trk.BoxHas(0, 4))

	trk.Unplace(0, 2, 4)
	assert.True(t, b.Empty(0, 2))
	assert.Equal(t, domain.OriginNone, b.Origin[0][2])
	assert.Equal(t, before, trk.Candidates(0, 2))
}

func TestMaskHelpers(t *testing.T) {
	assert.Equal(t, 9, Count(AllSymbols))
	assert.Equal(t, []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}, Symbols(AllSymbols))
	assert.Equal(t, uint8(0), Single(AllSymbols))
	assert.Equal(t, uint8(7), Single(1<<7))
	assert.Empty(t, Symbols(0))
}
