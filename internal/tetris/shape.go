// Package tetris implements a deterministic, steppable tetromino simulation.
// The engine is driven one discrete action at a time and queried for a
// row-major byte observation plus a scalar state snapshot after every action.
// It contains no external dependencies to keep the game logic pure and testable.
package tetris

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindT
	KindO
	KindJ
	KindL
	KindS
	KindZ
)

const (
	// NumKinds is the number of tetromino shapes.
	NumKinds = 7
	// NumRotations is the number of rotation states per shape.
	NumRotations = 4
	// cellsPerPiece is the number of occupied cells in every tetromino.
	cellsPerPiece = 4
	// shapeBox is the side length of the box the offsets are defined in.
	shapeBox = 4
)

// Point is a 2D grid coordinate. X grows rightward, Y grows downward.
type Point struct {
	X, Y int
}

// shapeTable holds the cell offsets of every kind in every rotation state,
// relative to the piece anchor. Each rotation is defined inside a 4x4 box so
// the horizontal spawn centering works the same for all kinds.
var shapeTable = [NumKinds][NumRotations][cellsPerPiece]Point{
	KindI: {
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
	},
	KindT: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	KindO: {
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
	},
	KindJ: {
		{{1, 0}, {1, 1}, {1, 2}, {0, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
	},
	KindL: {
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 0}},
	},
	KindS: {
		{{1, 0}, {2, 0}, {1, 1}, {0, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {2, 0}, {1, 1}, {0, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
	},
	KindZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {0, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {0, 1}, {0, 2}},
	},
}

// Offsets returns the cell offsets of the given kind at the given rotation
// state, relative to the piece anchor. Passing an invalid kind or rotation is
// a programming error, not a runtime condition, and panics via the bounds
// check.
func Offsets(k Kind, rotation int) [cellsPerPiece]Point {
	return shapeTable[k][rotation]
}

// NextRotation returns the rotation state that follows r.
func NextRotation(r int) int {
	return (r + 1) % NumRotations
}

// String returns the conventional one-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindT:
		return "T"
	case KindO:
		return "O"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}
