package world

// TryMove moves pos by (dx, dy) if the destination tile is passable and
// reports whether it moved. The move is all-or-nothing: a wall at the
// destination leaves both axes unchanged. Diagonal moves only check the
// destination cell. The result is clamped into the grid.
func TryMove(g *Grid, pos *Position, dx, dy int) bool {
	destX := pos.X + dx
	destY := pos.Y + dy

	if !g.IsPassable(destX, destY) {
		return false
	}

	*pos = g.Clamp(Position{X: destX, Y: destY})
	return true
}
