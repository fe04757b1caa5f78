package voxel

// LAB is the default letterform layout: an L, an A and a B side by side.
var LAB = []GridCoord{
	// L
	{0, 0, 0}, {1, 0, 0}, {2, 0, 1},
	{0, 0, -1}, {0, 1, -1}, {0, 2, -1}, {0, 3, -1},

	// A
	{4, 0, 0}, {4, 1, 0}, {4, 2, 0}, {4, 3, 0},
	{5, 3, 0},
	{6, 0, 0}, {6, 1, 0}, {6, 2, 0}, {6, 3, 0},
	{5, 1, -1},

	// B
	{8, 0, 0}, {8, 1, 0}, {8, 2, 0}, {8, 3, 0},
	{9, 3, 0},
	{10, 0, 0}, {10, 1, 0}, {10, 3, 0},
	{9, 2, -1}, {9, 0, 0},
}

// CoordsFromTriples converts [x,y,z] triples, as they appear in config files, into coordinates.
func CoordsFromTriples(triples [][3]int) []GridCoord {
	out := make([]GridCoord, len(triples))
	for i, t := range triples {
		out[i] = GridCoord{X: t[0], Y: t[1], Z: t[2]}
	}
	return out
}
