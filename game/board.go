package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrInvalidPiece = errors.New("invalid piece")
)

// Board is a rows x cols grid under gravity. Row 0 is the bottom row.
// It carries no turn or history information.
type Board struct {
	rows  int
	cols  int
	k     int
	cells []Piece // Row-major, indexed by row*cols + col
}

// NewBoard returns an empty board. It panics on dimensions that cannot hold a
// run of k cells; use Variant.NewBoard to get an error instead.
func NewBoard(rows, cols, k int) *Board {
	if err := (Variant{Rows: rows, Cols: cols, K: k}).Validate(); err != nil {
		panic(err)
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		k:     k,
		cells: make([]Piece, rows*cols),
	}
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }
func (b *Board) K() int    { return b.k }

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// At returns the piece at (row, col), or Empty outside the board.
func (b *Board) At(row, col int) Piece {
	if !b.inBounds(row, col) {
		return Empty
	}
	return b.cells[row*b.cols+col]
}

// IsValidColumn reports whether col can accept another piece.
func (b *Board) IsValidColumn(col int) bool {
	if col < 0 || col >= b.cols {
		return false
	}
	return b.At(b.rows-1, col) == Empty
}

// NextOpenRow returns the lowest empty row of col, or false if the column is
// full or out of range.
func (b *Board) NextOpenRow(col int) (int, bool) {
	if col < 0 || col >= b.cols {
		return -1, false
	}
	for row := 0; row < b.rows; row++ {
		if b.At(row, col) == Empty {
			return row, true
		}
	}
	return -1, false
}

// Place puts piece on an empty cell. Callers resolve the row with NextOpenRow
// first; Place itself does not enforce gravity.
func (b *Board) Place(row, col int, piece Piece) error {
	if piece != PlayerPiece && piece != AIPiece {
		return fmt.Errorf("%w: %d", ErrInvalidPiece, piece)
	}
	if !b.inBounds(row, col) {
		return fmt.Errorf("%w: cell (%d, %d) is outside the %dx%d board", ErrInvalidMove, row, col, b.rows, b.cols)
	}
	if b.At(row, col) != Empty {
		return fmt.Errorf("%w: cell (%d, %d) is occupied", ErrInvalidMove, row, col)
	}
	b.cells[row*b.cols+col] = piece
	return nil
}

// Drop places piece in the lowest open row of col and returns that row.
func (b *Board) Drop(col int, piece Piece) (int, error) {
	row, ok := b.NextOpenRow(col)
	if !ok {
		return -1, fmt.Errorf("%w: column %d is full or out of range", ErrInvalidMove, col)
	}
	if err := b.Place(row, col, piece); err != nil {
		return -1, err
	}
	return row, nil
}

// Clone returns a deep copy sharing no storage with b.
func (b *Board) Clone() *Board {
	cellsCopy := make([]Piece, len(b.cells))
	copy(cellsCopy, b.cells)

	return &Board{
		rows:  b.rows,
		cols:  b.cols,
		k:     b.k,
		cells: cellsCopy,
	}
}

// Swapped returns a copy of b with PlayerPiece and AIPiece exchanged.
func (b *Board) Swapped() *Board {
	swapped := b.Clone()
	for i, p := range swapped.cells {
		swapped.cells[i] = p.Opponent()
	}
	return swapped
}

// ValidColumns lists the columns accepting a piece, in ascending order.
func (b *Board) ValidColumns() []int {
	cols := make([]int, 0, b.cols)
	for col := 0; col < b.cols; col++ {
		if b.IsValidColumn(col) {
			cols = append(cols, col)
		}
	}
	return cols
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	n := 0
	for _, p := range b.cells {
		if p != Empty {
			n++
		}
	}
	return n
}

func (b *Board) IsFull() bool {
	return len(b.ValidColumns()) == 0
}

var pieceRunes = map[Piece]byte{
	Empty:       '.',
	PlayerPiece: 'X',
	AIPiece:     'O',
}

// String renders the board top row first, one line per row.
func (b *Board) String() string {
	var sb strings.Builder
	for row := b.rows - 1; row >= 0; row-- {
		for col := 0; col < b.cols; col++ {
			sb.WriteByte(pieceRunes[b.At(row, col)])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard builds a board from text rows, top row first, using '.' for
// Empty, 'X' for PlayerPiece and 'O' for AIPiece.
func ParseBoard(k int, rows ...string) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidVariant)
	}
	cols := len(rows[0])
	v := Variant{Rows: len(rows), Cols: cols, K: k}
	if err := v.Validate(); err != nil {
		return nil, err
	}

	b := NewBoard(v.Rows, v.Cols, v.K)
	for i, line := range rows {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidVariant, i, len(line), cols)
		}
		row := v.Rows - 1 - i
		for col := 0; col < cols; col++ {
			var piece Piece
			switch line[col] {
			case '.':
				continue
			case 'X', 'x':
				piece = PlayerPiece
			case 'O', 'o':
				piece = AIPiece
			default:
				return nil, fmt.Errorf("%w: unexpected %q at row %d, column %d", ErrInvalidPiece, line[col], i, col)
			}
			if err := b.Place(row, col, piece); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}
