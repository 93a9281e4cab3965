package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/domain"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSolveCommandGolden(t *testing.T) {
	out, err := runCmd(t, "solve", "testdata/classic.txt")
	require.NoError(t, err)
	goldie.New(t).Assert(t, "solve_classic", []byte(out))
}

func TestSolveCommandDLXEngine(t *testing.T) {
	out, err := runCmd(t, "solve", "--engine", "dlx", "testdata/classic.txt")
	require.NoError(t, err)
	// unique solution, so both engines render the same grid
	goldie.New(t).Assert(t, "solve_classic", []byte(out))
}

func TestPropagateCommandGolden(t *testing.T) {
	// the classic puzzle is fully determined by singles
	out, err := runCmd(t, "propagate", "testdata/classic.txt")
	require.NoError(t, err)
	goldie.New(t).Assert(t, "propagate_classic", []byte(out))
}

func TestValidateCommandOK(t *testing.T) {
	out, err := runCmd(t, "validate", "testdata/classic.txt")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)
}

func TestValidateCommandConflictGolden(t *testing.T) {
	out, err := runCmd(t, "validate", "testdata/conflict.txt")
	require.NoError(t, err)
	goldie.New(t).Assert(t, "validate_conflict", []byte(out))
}

func TestCandidatesCommand(t *testing.T) {
	out, err := runCmd(t, "candidates", "0", "2", "testdata/classic.txt")
	require.NoError(t, err)
	assert.Equal(t, "1 2 4\n", out)
}

func TestCandidatesCommandFilledCell(t *testing.T) {
	out, err := runCmd(t, "candidates", "0", "0", "testdata/classic.txt")
	require.NoError(t, err)
	assert.Equal(t, "none\n", out)
}

func TestCandidatesCommandRejectsBadCoordinates(t *testing.T) {
	_, err := runCmd(t, "candidates", "9", "0", "testdata/classic.txt")
	assert.Error(t, err)
}

func TestSolveCommandNoSolution(t *testing.T) {
	_, err := runCmd(t, "solve", "testdata/unsolvable.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no solution")
}

func TestHintCommand(t *testing.T) {
	out, err := runCmd(t, "hint", "testdata/classic.txt")
	require.NoError(t, err)
	assert.Equal(t, "Single: only 5 fits here\n  row 4, col 4\n", out)
}

func TestParseBoard(t *testing.T) {
	b, err := parseBoard(strings.NewReader(strings.Repeat(".", 80) + "7"))
	require.NoError(t, err)
	assert.Equal(t, uint8(7), b.Values[8][8])
	assert.Equal(t, domain.OriginUser, b.Origin[8][8])

	_, err = parseBoard(strings.NewReader(strings.Repeat(".", 80)))
	assert.Error(t, err, "short grid")

	_, err = parseBoard(strings.NewReader(strings.Repeat(".", 82)))
	assert.Error(t, err, "long grid")

	_, err = parseBoard(strings.NewReader(strings.Repeat("x", 81)))
	assert.Error(t, err, "bad character")
}

func TestRenderBoardEmptyCells(t *testing.T) {
	out := renderBoard(&domain.Board{})
	assert.Contains(t, out, ". . . | . . . | . . .")
}
