package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"svw.info/sudoku-engine/internal/domain"
)

// parseBoard reads an 81-character grid: digits 1-9 for filled cells,
// '.' or '0' for empty. Whitespace is ignored. Filled cells are
// tagged OriginUser; this is the only place the CLI assigns
// provenance.
func parseBoard(rd io.Reader) (*domain.Board, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, err
	}
	b := &domain.Board{}
	i := 0
	for _, ch := range string(data) {
		if unicode.IsSpace(ch) {
			continue
		}
		if i >= 81 {
			return nil, fmt.Errorf("grid has more than 81 cells")
		}
		r, c := i/9, i%9
		switch {
		case ch == '.' || ch == '0':
			// empty
		case ch >= '1' && ch <= '9':
			b.Set(r, c, uint8(ch-'0'), domain.OriginUser)
		default:
			return nil, fmt.Errorf("cell %d: invalid character %q", i, ch)
		}
		i++
	}
	if i != 81 {
		return nil, fmt.Errorf("grid has %d cells, want 81", i)
	}
	return b, nil
}

// loadBoard reads the grid named by args[0], or stdin when no
// argument (or "-") is given.
func loadBoard(args []string) (*domain.Board, error) {
	if len(args) == 0 || args[0] == "-" {
		return parseBoard(os.Stdin)
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseBoard(f)
}

// renderBoard draws the grid with box separators, '.' for empty.
func renderBoard(b *domain.Board) string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		if r == 3 || r == 6 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c == 3 || c == 6 {
				sb.WriteString("| ")
			}
			if v := b.Values[r][c]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
			if c < 8 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
