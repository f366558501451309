package chess

// Piece is anything on the board that threatens squares. There are
// exactly two implementations; no other piece kinds exist in this game.
type Piece interface {
	// Attacks reports whether the piece threatens the target square. A
	// piece never attacks the square it stands on.
	Attacks(target Position) bool
}

// Bishop is the stationary piece. It attacks every square on its
// diagonals; the board is treated as clear, so distance is irrelevant.
type Bishop struct {
	Pos Position
}

func (b Bishop) Attacks(target Position) bool {
	df := abs(b.Pos.File - target.File)
	dr := abs(b.Pos.Rank - target.Rank)
	return df == dr && df != 0
}

// Rook is the mobile piece. It attacks every square sharing exactly one
// of file and rank with it; the XOR keeps its own square out.
type Rook struct {
	Pos Position
}

func (r Rook) Attacks(target Position) bool {
	return (r.Pos.File == target.File) != (r.Pos.Rank == target.Rank)
}

// Move returns a new Rook at the wrapped translated position. Pieces
// are values; moving never mutates the receiver.
func (r Rook) Move(d Direction, steps int) Rook {
	return Rook{Pos: r.Pos.StepWrap(d, steps)}
}

// Board holds the one bishop and one rook of a running game.
type Board struct {
	Bishop Bishop
	Rook   Rook
}

func (b *Board) BishopCanCaptureRook() bool {
	return b.Bishop.Attacks(b.Rook.Pos)
}

// RookCanCaptureBishop is the mirror query. The win condition never
// consults it; rook capture does not end the game.
func (b *Board) RookCanCaptureBishop() bool {
	return b.Rook.Attacks(b.Bishop.Pos)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
