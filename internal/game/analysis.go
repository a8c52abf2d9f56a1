package game

var lineDirs = [][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// LongestRun is the longest contiguous line player owns in any direction.
func LongestRun(g *Grid, player int, cfg Config) int {
	best := 0
	for row := 0; row < g.Size; row++ {
		for col := 0; col < g.Size; col++ {
			if !g.At(row, col).ownedBy(player, cfg.PlayerCount) {
				continue
			}
			for _, d := range lineDirs {
				// only count from the start of a line
				if prev := g.At(row-d[0], col-d[1]); prev != nil && prev.ownedBy(player, cfg.PlayerCount) {
					continue
				}
				n := 0
				for c := g.At(row, col); c != nil && c.ownedBy(player, cfg.PlayerCount); c = g.At(row+n*d[0], col+n*d[1]) {
					n++
				}
				if n > best {
					best = n
				}
			}
		}
	}
	return best
}

// Pieces counts the cells player owns.
func Pieces(g *Grid, player int, cfg Config) int {
	n := 0
	for i := range g.Cells {
		if g.Cells[i].ownedBy(player, cfg.PlayerCount) {
			n++
		}
	}
	return n
}

// OpenColumns lists the columns that can still take a piece.
func OpenColumns(cols ColumnView) []int {
	out := []int{}
	for col := 0; col < cols.Lines(); col++ {
		if _, ok := lowestEmpty(cols, col); ok {
			out = append(out, col)
		}
	}
	return out
}
