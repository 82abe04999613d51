package tetris

// Piece is the currently falling tetromino: its kind, rotation state and
// anchor position on the board. Piece is a value type; movement candidates
// are built with Translated/Rotated and committed only after they pass the
// board collision check.
type Piece struct {
	Kind     Kind
	Rotation int
	X, Y     int
}

// Cells returns the absolute board coordinates occupied by the piece.
func (p Piece) Cells() [cellsPerPiece]Point {
	offsets := Offsets(p.Kind, p.Rotation)
	for i := range offsets {
		offsets[i].X += p.X
		offsets[i].Y += p.Y
	}
	return offsets
}

// Translated returns a copy of the piece moved by (dx, dy).
func (p Piece) Translated(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy of the piece advanced to its next rotation state.
func (p Piece) Rotated() Piece {
	p.Rotation = NextRotation(p.Rotation)
	return p
}
