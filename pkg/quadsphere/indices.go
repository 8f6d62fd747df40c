package quadsphere

// linePatterns gives, per face, the quad corner each of a cell's four line
// indices copies. Drawn as GL_LINES the pair selects two of the quad's edges;
// the patterns are chosen so each of the 12 cube edges is drawn by exactly
// one of the two faces sharing it.
var linePatterns = [6][4]int{
	Front:  {0, 1, 0, 3}, // left, top
	Top:    {0, 1, 0, 3},
	Left:   {0, 1, 2, 1}, // left, bottom
	Back:   {0, 1, 2, 1},
	Bottom: {0, 3, 2, 3}, // top, right
	Right:  {0, 1, 0, 3},
}

// buildQuads emits the front face's quads then repeats them for the other
// faces offset by one face of points.
//
//	0  3
//	1  2
func buildQuads(g grid) []uint32 {
	quads := make([]uint32, 0, g.indexCount())
	for r := 0; r < g.divs; r++ {
		k := uint32(r * g.row)
		for c := uint32(0); c < uint32(g.divs); c++ {
			quads = append(quads,
				k+c,
				k+uint32(g.row)+c,
				k+uint32(g.row)+c+1,
				k+c+1,
			)
		}
	}

	faceWords := len(quads)
	for f := 1; f < 6; f++ {
		offset := uint32(f * g.perFace)
		for _, idx := range quads[:faceWords] {
			quads = append(quads, idx+offset)
		}
	}
	return quads
}

// buildLines derives the wireframe from the (unrepaired) quads.
func buildLines(g grid, quads []uint32) []uint32 {
	lines := make([]uint32, len(quads))
	for q := 0; q < len(quads)/4; q++ {
		pattern := linePatterns[q/g.quadsPerFace]
		for j, corner := range pattern {
			lines[4*q+j] = quads[4*q+corner]
		}
	}
	return lines
}
