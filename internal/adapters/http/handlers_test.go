package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/hint"
	"svw.info/sudoku-engine/internal/propagate"
	"svw.info/sudoku-engine/internal/solver"
	"svw.info/sudoku-engine/internal/usecase"
	"svw.info/sudoku-engine/internal/validator"
)

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

func newMux(t *testing.T) *http.ServeMux {
	t.Helper()
	uc := usecase.NewService(
		solver.NewBacktrackingSolver(),
		propagate.New(),
		validator.New(),
		hint.NewSingles(),
	)
	mux := http.NewServeMux()
	New(uc).Register(mux)
	return mux
}

func post(t *testing.T, mux *http.ServeMux, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestSolveEndpoint(t *testing.T) {
	rec := post(t, newMux(t), "/api/solve", map[string]any{"board": sample})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp solveResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Error)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			assert.NotZero(t, resp.Board[r][c], "cell (%d,%d)", r, c)
			if sample[r][c] != 0 {
				assert.Equal(t, sample[r][c], resp.Board[r][c])
				assert.Equal(t, domain.OriginUser, resp.Origin[r][c])
			} else {
				assert.Equal(t, domain.OriginSolver, resp.Origin[r][c])
			}
		}
	}
}

func TestSolveEndpointRejectsInvalidBoard(t *testing.T) {
	var grid [9][9]uint8
	grid[0][0] = 7
	grid[0][4] = 7
	rec := post(t, newMux(t), "/api/solve", map[string]any{"board": grid})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSolveEndpointRejectsOutOfAlphabetValue(t *testing.T) {
	var grid [9][9]uint8
	grid[0][0] = 10
	rec := post(t, newMux(t), "/api/solve", map[string]any{"board": grid})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSolveEndpointClampsUnknownOriginValues(t *testing.T) {
	var origin [9][9]int
	origin[0][0] = 7 // not a member of the Origin enum
	rec := post(t, newMux(t), "/api/solve", map[string]any{"board": sample, "origin": origin})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp solveResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.OriginUser, resp.Origin[0][0])
}

func TestSolveEndpointMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/solve", nil)
	rec := httptest.NewRecorder()
	newMux(t).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestValidateEndpointReportsConflicts(t *testing.T) {
	var grid [9][9]uint8
	grid[3][0] = 2
	grid[3][6] = 2
	rec := post(t, newMux(t), "/api/validate", map[string]any{"board": grid})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp validateResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.Contains(t, resp.Conflicts, domain.CellCoord{Row: 3, Col: 6})
}

func TestPropagateEndpointReturnsInputOnInvalidBoard(t *testing.T) {
	var grid [9][9]uint8
	grid[8][1] = 4
	grid[8][5] = 4
	rec := post(t, newMux(t), "/api/propagate", map[string]any{"board": grid})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp propagateResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, grid, resp.Board)
	assert.NotEmpty(t, resp.Error)
}

func TestPropagateEndpointFillsForcedCells(t *testing.T) {
	rec := post(t, newMux(t), "/api/propagate", map[string]any{"board": sample})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp propagateResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Positive(t, resp.Steps)
	assert.Equal(t, domain.OriginSolver, resp.Origin[0][2])
	assert.NotZero(t, resp.Board[0][2])
}

func TestCandidatesEndpoint(t *testing.T) {
	rec := post(t, newMux(t), "/api/candidates", map[string]any{"board": sample, "row": 0, "col": 2})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp candidatesResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []int{1, 2, 4}, resp.Candidates)
}

func TestCandidatesEndpointRejectsBadCoordinates(t *testing.T) {
	rec := post(t, newMux(t), "/api/candidates", map[string]any{"board": sample, "row": 9, "col": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHintEndpoint(t *testing.T) {
	rec := post(t, newMux(t), "/api/hint", map[string]any{"board": sample})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp hintResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Found)
	assert.Equal(t, []domain.CellCoord{{Row: 4, Col: 4}}, resp.Hint.Cells)
	assert.Equal(t, uint8(5), resp.Hint.Value)
}
