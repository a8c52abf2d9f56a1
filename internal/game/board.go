package game

// Grid is a square board stored as a single arena of cells in row-major
// order. Row and column views are index computations over the same arena.
type Grid struct {
	Size  int    `json:"size"`
	Cells []Cell `json:"cells"`
}

// View walks a grid as a sequence of lines. Line i, position j resolves to a
// cell in the shared arena.
type View interface {
	Lines() int
	Len(line int) int
	At(line, pos int) *Cell
}

// RowView indexes the grid as [row][col].
type RowView struct{ g *Grid }

// ColumnView indexes the grid as [col][row].
type ColumnView struct{ g *Grid }

func RowMajorIndex(size, row, col int) int { return row*size + col }

func ColMajorIndex(size, col, row int) int { return row*size + col }

// NewGrid builds an empty size x size board with ids row*size+col.
func NewGrid(size int) (*Grid, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	cells := make([]Cell, size*size)
	for i := range cells {
		cells[i] = Cell{ID: i}
	}
	return &Grid{Size: size, Cells: cells}, nil
}

// DeriveTransposedView returns the column-major view of g.
func DeriveTransposedView(g *Grid) ColumnView {
	return ColumnView{g: g}
}

func (g *Grid) RowView() RowView { return RowView{g: g} }

func (g *Grid) At(row, col int) *Cell {
	if !g.in(row, col) {
		return nil
	}
	return &g.Cells[RowMajorIndex(g.Size, row, col)]
}

// Cell looks up a cell by id.
func (g *Grid) Cell(id int) (*Cell, error) {
	if id < 0 || id >= len(g.Cells) {
		return nil, ErrUnknownCell
	}
	return &g.Cells[id], nil
}

// Full reports whether every cell holds a piece.
func (g *Grid) Full() bool {
	for i := range g.Cells {
		if !g.Cells[i].IsFilled {
			return false
		}
	}
	return true
}

func (g *Grid) ClearConnected() {
	for i := range g.Cells {
		g.Cells[i].IsConnected = false
	}
}

// ConnectedIDs lists the ids currently marked as part of a winning run.
func (g *Grid) ConnectedIDs() []int {
	var out []int
	for i := range g.Cells {
		if g.Cells[i].IsConnected {
			out = append(out, g.Cells[i].ID)
		}
	}
	return out
}

func (g *Grid) in(row, col int) bool {
	return row >= 0 && row < g.Size && col >= 0 && col < g.Size
}

func (v RowView) Lines() int { return v.g.Size }
func (v RowView) Len(line int) int { return v.g.Size }
func (v RowView) At(row, col int) *Cell {
	return &v.g.Cells[RowMajorIndex(v.g.Size, row, col)]
}

func (v ColumnView) Lines() int { return v.g.Size }
func (v ColumnView) Len(line int) int { return v.g.Size }
func (v ColumnView) At(col, row int) *Cell {
	return &v.g.Cells[ColMajorIndex(v.g.Size, col, row)]
}

// ColumnOf scans the view for the column holding id.
func (v ColumnView) ColumnOf(id int) (int, bool) {
	for col := 0; col < v.Lines(); col++ {
		for row := 0; row < v.Len(col); row++ {
			if v.At(col, row).ID == id {
				return col, true
			}
		}
	}
	return -1, false
}
