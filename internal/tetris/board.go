package tetris

// Board is the fixed-size occupancy grid. Cells are stored row-major with
// row 0 at the top. The board is owned by a single Game and mutated only by
// Lock, ClearFullRows and Reset.
type Board struct {
	width  int
	height int
	cells  []bool
}

// NewBoard creates an empty board of the given dimensions.
func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// Width returns the board width in cells.
func (b *Board) Width() int {
	return b.width
}

// Height returns the board height in cells.
func (b *Board) Height() int {
	return b.height
}

// IsOccupied reports whether the cell at (x, y) is occupied. Out-of-range
// coordinates count as occupied, so the edges act as implicit walls and
// collision checks need no separate bounds test.
func (b *Board) IsOccupied(x, y int) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return true
	}
	return b.cells[y*b.width+x]
}

// Lock marks the given absolute coordinates as occupied. All coordinates must
// be in range and currently empty; the engine guarantees this by only locking
// pieces whose cells passed the collision check.
func (b *Board) Lock(cells []Point) {
	for _, c := range cells {
		b.cells[c.Y*b.width+c.X] = true
	}
}

// ClearFullRows removes every fully occupied row, shifts the rows above each
// removed row down, and inserts empty rows at the top to keep the height
// fixed. It returns the number of rows cleared. The occupied-cell count drops
// by exactly cleared x width.
func (b *Board) ClearFullRows() int {
	cleared := 0
	write := b.height - 1
	for read := b.height - 1; read >= 0; read-- {
		if b.rowFull(read) {
			cleared++
			continue
		}
		if write != read {
			copy(b.cells[write*b.width:(write+1)*b.width], b.cells[read*b.width:(read+1)*b.width])
		}
		write--
	}
	for ; write >= 0; write-- {
		row := b.cells[write*b.width : (write+1)*b.width]
		for i := range row {
			row[i] = false
		}
	}
	return cleared
}

// rowFull reports whether every cell of row y is occupied.
func (b *Board) rowFull(y int) bool {
	row := b.cells[y*b.width : (y+1)*b.width]
	for _, occupied := range row {
		if !occupied {
			return false
		}
	}
	return true
}

// CopyTo writes the locked cells into buf, row-major, one byte per cell
// (0 = empty, 1 = occupied). buf must hold exactly width x height bytes; the
// Game layers the active piece on top before handing the buffer to a host.
func (b *Board) CopyTo(buf []byte) {
	for i, occupied := range b.cells {
		if occupied {
			buf[i] = 1
		} else {
			buf[i] = 0
		}
	}
}

// Reset sets every cell to empty.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = false
	}
}

// OccupiedCount returns the number of occupied cells.
func (b *Board) OccupiedCount() int {
	n := 0
	for _, occupied := range b.cells {
		if occupied {
			n++
		}
	}
	return n
}
