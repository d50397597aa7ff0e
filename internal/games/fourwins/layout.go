package fourwins

// Cell size of one board slot on screen, including its left/top border.
const (
	blockW = 4
	blockH = 2
)

// Rows reserved around the board: title, status, cursor chip above;
// notice and controls below.
const (
	hudRows    = 3
	footerRows = 3
)

// Layout maps grid coordinates to screen cells.
// A slot's center is origin + index*block + block/2; rows are flipped so
// grid row 0 is drawn at the bottom of the board.
type Layout struct {
	OriginX int // screen column of the board's left border
	OriginY int // screen row of the board's top border
	Cols    int
	Rows    int
}

// NewLayout centers a cols x rows board horizontally below the HUD.
func NewLayout(cols, rows, screenW int) Layout {
	w, _ := boardSize(cols, rows)
	x := (screenW - w) / 2
	if x < 0 {
		x = 0
	}
	return Layout{
		OriginX: x,
		OriginY: hudRows,
		Cols:    cols,
		Rows:    rows,
	}
}

// ColumnCenter returns the screen column at the center of grid column x.
func (l Layout) ColumnCenter(x int) int {
	return l.OriginX + x*blockW + blockW/2
}

// RowCenter returns the screen row at the center of grid row y.
func (l Layout) RowCenter(y int) int {
	return l.OriginY + (l.Rows-1-y)*blockH + blockH/2
}

// CellCenter returns the screen position of grid cell (x, y).
func (l Layout) CellCenter(x, y int) (int, int) {
	return l.ColumnCenter(x), l.RowCenter(y)
}

// Width returns the board width in screen columns, borders included.
func (l Layout) Width() int {
	w, _ := boardSize(l.Cols, l.Rows)
	return w
}

// Height returns the board height in screen rows, borders included.
func (l Layout) Height() int {
	_, h := boardSize(l.Cols, l.Rows)
	return h
}

func boardSize(cols, rows int) (int, int) {
	return cols*blockW + 1, rows*blockH + 1
}

// MinScreenSize returns the smallest terminal that fits the board and HUD.
func MinScreenSize(cols, rows int) (int, int) {
	w, h := boardSize(cols, rows)
	if w < 40 {
		w = 40 // room for the status and control lines
	}
	return w, hudRows + h + footerRows
}
