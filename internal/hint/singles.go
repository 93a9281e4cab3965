// Package hint suggests the next logical step for a display layer.
package hint

import (
	"context"
	"fmt"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/tracker"
)

// Singles finds naked and hidden singles; with a high enough tier it
// also reports box/line eliminations. Scan order is fixed (rows 0→8,
// cols 0→8, boxes 0→8, symbols 1→9), so the same board always yields
// the same hint.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first applicable suggestion within the tier cap.
func (h *Singles) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	t := tracker.New(b.Clone())
	if !t.Init() {
		return domain.Hint{}, false, domain.ErrInvalidBoard
	}
	if hh, ok := nakedSingle(t, b); ok {
		return hh, true, nil
	}
	if hh, ok := hiddenSingle(t, b); ok {
		return hh, true, nil
	}
	if max >= domain.StrategyAdvanced {
		if hh, ok := boxLine(t, b); ok {
			return hh, true, nil
		}
	}
	return domain.Hint{}, false, nil
}

func nakedSingle(t *tracker.Tracker, b *domain.Board) (domain.Hint, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if !b.Empty(r, c) {
				continue
			}
			if v := tracker.Single(t.Candidates(r, c)); v != 0 {
				return domain.Hint{
					Message:  fmt.Sprintf("Single: only %d fits here", v),
					Cells:    []domain.CellCoord{{Row: r, Col: c}},
					Value:    v,
					Strategy: domain.StrategySingles,
				}, true
			}
		}
	}
	return domain.Hint{}, false
}

func hiddenSingle(t *tracker.Tracker, b *domain.Board) (domain.Hint, bool) {
	for r := 0; r < 9; r++ {
		for v := uint8(1); v <= 9; v++ {
			if t.RowHas(r, v) {
				continue
			}
			spot, n := -1, 0
			for c := 0; c < 9; c++ {
				if b.Empty(r, c) && t.Candidates(r, c)&(1<<v) != 0 {
					spot, n = c, n+1
				}
			}
			if n == 1 {
				return hiddenHint(r, spot, v, "row"), true
			}
		}
	}
	for c := 0; c < 9; c++ {
		for v := uint8(1); v <= 9; v++ {
			if t.ColHas(c, v) {
				continue
			}
			spot, n := -1, 0
			for r := 0; r < 9; r++ {
				if b.Empty(r, c) && t.Candidates(r, c)&(1<<v) != 0 {
					spot, n = r, n+1
				}
			}
			if n == 1 {
				return hiddenHint(spot, c, v, "column"), true
			}
		}
	}
	for box := 0; box < 9; box++ {
		br, bc := (box/3)*3, (box%3)*3
		for v := uint8(1); v <= 9; v++ {
			if t.BoxHas(box, v) {
				continue
			}
			sr, sc, n := -1, -1, 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r, c := br+dr, bc+dc
					if b.Empty(r, c) && t.Candidates(r, c)&(1<<v) != 0 {
						sr, sc, n = r, c, n+1
					}
				}
			}
			if n == 1 {
				return hiddenHint(sr, sc, v, "box"), true
			}
		}
	}
	return domain.Hint{}, false
}

func hiddenHint(r, c int, v uint8, unit string) domain.Hint {
	return domain.Hint{
		Message:  fmt.Sprintf("Hidden single: %d has only one place in this %s", v, unit),
		Cells:    []domain.CellCoord{{Row: r, Col: c}},
		Value:    v,
		Strategy: domain.StrategySingles,
	}
}

// boxLine reports a pointing pair/triple: a symbol whose in-box
// candidates share one line, eliminating it from the rest of the
// line. Cells lists the pointing cells; the elimination is implied.
func boxLine(t *tracker.Tracker, b *domain.Board) (domain.Hint, bool) {
	for box := 0; box < 9; box++ {
		br, bc := (box/3)*3, (box%3)*3
		for v := uint8(1); v <= 9; v++ {
			if t.BoxHas(box, v) {
				continue
			}
			var cells []domain.CellCoord
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r, c := br+dr, bc+dc
					if b.Empty(r, c) && t.Candidates(r, c)&(1<<v) != 0 {
						cells = append(cells, domain.CellCoord{Row: r, Col: c})
					}
				}
			}
			if len(cells) < 2 {
				continue
			}
			sameRow, sameCol := true, true
			for _, cc := range cells[1:] {
				if cc.Row != cells[0].Row {
					sameRow = false
				}
				if cc.Col != cells[0].Col {
					sameCol = false
				}
			}
			if !sameRow && !sameCol {
				continue
			}
			// only worth reporting when it eliminates something
			if !eliminatesOutsideBox(t, b, cells[0], v, sameRow, bc, br) {
				continue
			}
			unit := "row"
			if !sameRow {
				unit = "column"
			}
			return domain.Hint{
				Message:  fmt.Sprintf("Pointing: %d in this box is confined to one %s", v, unit),
				Cells:    cells,
				Value:    v,
				Strategy: domain.StrategyAdvanced,
			}, true
		}
	}
	return domain.Hint{}, false
}

func eliminatesOutsideBox(t *tracker.Tracker, b *domain.Board, at domain.CellCoord, v uint8, alongRow bool, bc, br int) bool {
	if alongRow {
		for c := 0; c < 9; c++ {
			if c/3 == bc/3 {
				continue
			}
			if b.Empty(at.Row, c) && t.Candidates(at.Row, c)&(1<<v) != 0 {
				return true
			}
		}
		return false
	}
	for r := 0; r < 9; r++ {
		if r/3 == br/3 {
			continue
		}
		if b.Empty(r, at.Col) && t.Candidates(r, at.Col)&(1<<v) != 0 {
			return true
		}
	}
	return false
}
