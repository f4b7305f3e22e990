package level

// Obstacle is the static content of one grid tile.
type Obstacle int

const (
	ObstacleNone Obstacle = iota // Empty ground
	ObstacleWall                 // Impassable
	ObstacleLava                 // Lethal on contact
)

// String returns a human-readable name for the obstacle.
func (o Obstacle) String() string {
	switch o {
	case ObstacleNone:
		return "none"
	case ObstacleWall:
		return "wall"
	case ObstacleLava:
		return "lava"
	default:
		return "unknown"
	}
}

// Grid is the per-level obstacle table indexed [row][col].
// Rows may have different lengths.
type Grid [][]Obstacle

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// Width returns the length of the longest row, or 0 for an empty grid.
func (g Grid) Width() int {
	w := 0
	for _, row := range g {
		w = max(w, len(row))
	}
	return w
}

// At returns the obstacle at column x, row y. Cells outside the grid,
// including past the end of a short row, are empty.
func (g Grid) At(x, y int) Obstacle {
	if y < 0 || y >= len(g) || x < 0 || x >= len(g[y]) {
		return ObstacleNone
	}
	return g[y][x]
}

// Clone creates a deep copy of the grid.
func (g Grid) Clone() Grid {
	clone := make(Grid, len(g))
	for i, row := range g {
		clone[i] = make([]Obstacle, len(row))
		copy(clone[i], row)
	}
	return clone
}
