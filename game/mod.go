package game

// Piece is the occupant of a single board cell.
type Piece uint8

const (
	Empty Piece = iota
	PlayerPiece
	AIPiece
)

func (p Piece) Opponent() Piece {
	switch p {
	case PlayerPiece:
		return AIPiece
	case AIPiece:
		return PlayerPiece
	default:
		return Empty
	}
}

func (p Piece) String() string {
	switch p {
	case PlayerPiece:
		return "player"
	case AIPiece:
		return "ai"
	default:
		return "empty"
	}
}

// Evaluates a non-terminal board to a score indicating how favorable the
// position is for piece (positive) or for its opponent (negative).
type Evaluate func(b *Board, piece Piece) int
