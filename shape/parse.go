package shape

import "strings"

// ParseASCII builds a ShapeSet from a textual drawing of one orientation,
// generating all four rotations and deduplicating orientations that
// coincide (e.g. the square tetromino has only one distinct orientation).
//
// Non-space runes mark occupied cells; line indentation is stripped the
// same way as Python's textwrap.dedent: the common leading whitespace
// across all non-empty lines is removed before parsing. This is a direct
// port of original_source/shapes.py's parse_shape.
func ParseASCII(art string) ShapeSet {
	rows := strings.Split(dedent(strings.Trim(art, "\n")), "\n")

	var points []Point
	for i, row := range rows {
		for j, cell := range row {
			if cell != ' ' {
				points = append(points, Point{Row: i, Col: j})
			}
		}
	}

	seen := make(map[string]Shape)
	cur := points
	for i := 0; i < 4; i++ {
		n := normalize(cur)
		seen[shapeKey(n)] = n
		cur = rotate90(cur)
	}

	out := make(ShapeSet, 0, len(seen))
	for _, s := range seen {
		out = append(out, s)
	}
	sortShapes(out)
	return out
}

// ParseShapes builds a list of ShapeSets from a blob of shape drawings
// separated by blank lines, mirroring original_source/shapes.py's
// define_shapes.
func ParseShapes(blob string) []ShapeSet {
	parts := strings.Split(blob, "\n\n")
	out := make([]ShapeSet, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		out = append(out, ParseASCII(p))
	}
	return out
}

// rotate90 maps (i, j) -> (-j, i), the same transform used by
// parse_shape's `points = set((-j, i) for i, j in points)`.
func rotate90(points []Point) []Point {
	out := make([]Point, len(points))
	for k, p := range points {
		out[k] = Point{Row: -p.Col, Col: p.Row}
	}
	return out
}

func shapeKey(s Shape) string {
	var b strings.Builder
	for _, p := range s {
		b.WriteByte(byte(p.Row))
		b.WriteByte(',')
		b.WriteByte(byte(p.Col))
		b.WriteByte(';')
	}
	return b.String()
}

func sortShapes(ss ShapeSet) {
	for i := 1; i < len(ss); i++ {
		for j := i; j > 0 && lessShape(ss[j], ss[j-1]); j-- {
			ss[j], ss[j-1] = ss[j-1], ss[j]
		}
	}
}

func lessShape(a, b Shape) bool {
	for k := 0; k < len(a) && k < len(b); k++ {
		if a[k].Row != b[k].Row {
			return a[k].Row < b[k].Row
		}
		if a[k].Col != b[k].Col {
			return a[k].Col < b[k].Col
		}
	}
	return len(a) < len(b)
}

// dedent removes the common leading whitespace shared by every non-blank
// line, matching the subset of textwrap.dedent's behavior that
// original_source/shapes.py relies on.
func dedent(s string) string {
	lines := strings.Split(s, "\n")
	prefix := ""
	found := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if !found {
			prefix = indent
			found = true
			continue
		}
		prefix = commonPrefix(prefix, indent)
	}
	if prefix == "" {
		return s
	}
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, prefix)
	}
	return strings.Join(lines, "\n")
}

func commonPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}
