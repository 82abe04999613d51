package tetris

import "hash/fnv"

// Snapshot captures the complete engine state for determinism testing and
// replay comparison.
type Snapshot struct {
	Score     int32
	Lines     int
	Lost      bool
	HasPiece  bool
	PieceKind Kind
	Rotation  int
	PieceX    int
	PieceY    int
	Occupied  int
	BoardHash uint64
}

// Snapshot returns the current engine snapshot. Two games created with the
// same seed and fed the same action sequence produce identical snapshots.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Score:    g.score,
		Lines:    g.lines,
		Lost:     g.lost,
		Occupied: g.board.OccupiedCount(),
	}
	if g.piece != nil {
		s.HasPiece = true
		s.PieceKind = g.piece.Kind
		s.Rotation = g.piece.Rotation
		s.PieceX = g.piece.X
		s.PieceY = g.piece.Y
	}

	h := fnv.New64a()
	buf := make([]byte, g.cfg.Width*g.cfg.Height)
	g.board.CopyTo(buf)
	h.Write(buf)
	s.BoardHash = h.Sum64()
	return s
}
