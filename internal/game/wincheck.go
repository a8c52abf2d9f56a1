package game

var diagonals = [][2]int{{1, 1}, {1, -1}}

// CheckWinner reports whether player owns a run of cfg.ConnectCount cells in
// any direction. Cells of the winning run are left with IsConnected set; all
// other marks are cleared.
func CheckWinner(g *Grid, cols ColumnView, player int, cfg Config) bool {
	g.ClearConnected()
	if checkDirection(g, g.RowView(), player, cfg) {
		return true
	}
	if checkDirection(g, cols, player, cfg) {
		return true
	}
	return checkDiagonals(g, player, cfg)
}

// checkDirection scans every line of v for a contiguous run. Scanning stops at
// the first line that reaches the threshold.
func checkDirection(g *Grid, v View, player int, cfg Config) bool {
	for line := 0; line < v.Lines(); line++ {
		run := 0
		n := v.Len(line)
		for pos := 0; pos < n; pos++ {
			c := v.At(line, pos)
			if !c.ownedBy(player, cfg.PlayerCount) {
				unmark(v, line, pos-run, pos)
				run = 0
				continue
			}
			run++
			c.IsConnected = true
			if run >= cfg.ConnectCount {
				return true
			}
		}
		unmark(v, line, n-run, n)
	}
	g.ClearConnected()
	return false
}

// checkDiagonals scans down-right and down-left rays from every owned cell.
// Every diagonal run has a topmost cell, so the two downward rays cover all
// four diagonal directions.
func checkDiagonals(g *Grid, player int, cfg Config) bool {
	for row := 0; row < g.Size; row++ {
		for col := 0; col < g.Size; col++ {
			origin := g.At(row, col)
			if !origin.ownedBy(player, cfg.PlayerCount) {
				continue
			}
			for _, d := range diagonals {
				if scanRay(g, row, col, d, player, cfg) {
					return true
				}
			}
		}
	}
	g.ClearConnected()
	return false
}

func scanRay(g *Grid, row, col int, d [2]int, player int, cfg Config) bool {
	ray := make([]*Cell, 0, cfg.ConnectCount)
	for step := 0; step < cfg.ConnectCount; step++ {
		c := g.At(row+step*d[0], col+step*d[1])
		if c == nil || !c.ownedBy(player, cfg.PlayerCount) {
			break
		}
		c.IsConnected = true
		ray = append(ray, c)
	}
	if len(ray) >= cfg.ConnectCount {
		return true
	}
	for _, c := range ray {
		c.IsConnected = false
	}
	return false
}

func unmark(v View, line, from, to int) {
	for pos := from; pos < to; pos++ {
		v.At(line, pos).IsConnected = false
	}
}
