package game

import "fmt"

// ApplyMove drops a piece for turn into the column holding cellID. It returns
// false without touching the board when the column is already full.
func ApplyMove(g *Grid, cols ColumnView, cellID, turn int) bool {
	col := mustColumn(cols, cellID)

	row, ok := lowestEmpty(cols, col)
	if !ok {
		return false
	}
	cols.At(col, row).fill(turn)

	// Keep the preview on the column so the next drop shows without a new hover.
	if row > 0 {
		cols.At(col, row-1).IsHighlighted = true
	}
	return true
}

// TogglePreview flips the next-drop highlight of the column holding cellID.
// Hover enter and leave both call it, so paired calls cancel out.
func TogglePreview(cols ColumnView, cellID int) {
	col := mustColumn(cols, cellID)
	row, ok := lowestEmpty(cols, col)
	if !ok {
		return
	}
	c := cols.At(col, row)
	c.IsHighlighted = !c.IsHighlighted
}

// DropRow reports the row the next piece in col would land in.
func DropRow(cols ColumnView, col int) (int, bool) {
	if col < 0 || col >= cols.Lines() {
		return -1, false
	}
	return lowestEmpty(cols, col)
}

func lowestEmpty(cols ColumnView, col int) (int, bool) {
	for row := cols.Len(col) - 1; row >= 0; row-- {
		if !cols.At(col, row).IsFilled {
			return row, true
		}
	}
	return -1, false
}

// mustColumn resolves a cell id to its column. Ids come from the grid the
// view was derived from, so a miss means the views are out of sync.
func mustColumn(cols ColumnView, cellID int) int {
	col, ok := cols.ColumnOf(cellID)
	if !ok {
		panic(fmt.Sprintf("game: cell %d not present in column view", cellID))
	}
	return col
}
