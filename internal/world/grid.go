package world

import (
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/zyedidia/generic/mapset"
)

// Grid is the dense width x height cell container. Storage is row-major:
// kinds[y][x], matching every adjacency helper in this package. Feature
// tags are kept in a sparse per-coordinate map because the overwhelming
// majority of cells never carry one.
type Grid struct {
	Width  int
	Height int
	kinds  [][]Kind
	tags   map[Point]mapset.Set[string]
}

// NewGrid creates a grid filled with cave.
func NewGrid(width, height int) *Grid {
	kinds := make([][]Kind, height)
	for y := range kinds {
		kinds[y] = make([]Kind, width)
	}
	return &Grid{
		Width:  width,
		Height: height,
		kinds:  kinds,
		tags:   make(map[Point]mapset.Set[string]),
	}
}

// InBounds returns true if the position is inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// KindAt returns the cell kind at the position. Out-of-bounds positions
// read as wall so neighbor scans never need their own bounds checks.
func (g *Grid) KindAt(x, y int) Kind {
	if !g.InBounds(x, y) {
		return KindWall
	}
	return g.kinds[y][x]
}

// SetKind overwrites the cell kind at the position. Out-of-bounds writes
// are ignored.
func (g *Grid) SetKind(x, y int, k Kind) {
	if !g.InBounds(x, y) {
		return
	}
	g.kinds[y][x] = k
}

// IsWalkable returns true if the position can be walked on.
func (g *Grid) IsWalkable(x, y int) bool {
	return g.KindAt(x, y).Walkable()
}

// Tag adds a feature tag at the position.
func (g *Grid) Tag(x, y int, feature string) {
	if !g.InBounds(x, y) {
		return
	}
	p := Point{x, y}
	set, ok := g.tags[p]
	if !ok {
		set = mapset.New[string]()
		g.tags[p] = set
	}
	set.Put(feature)
}

// HasFeature returns true if the position carries the given tag.
func (g *Grid) HasFeature(x, y int, feature string) bool {
	set, ok := g.tags[Point{x, y}]
	return ok && set.Has(feature)
}

// FeaturesAt returns the feature tags at the position, sorted so output
// is stable. Returns nil for untagged or out-of-bounds positions.
func (g *Grid) FeaturesAt(x, y int) []string {
	set, ok := g.tags[Point{x, y}]
	if !ok {
		return nil
	}
	features := make([]string, 0, set.Size())
	set.Each(func(tag string) {
		features = append(features, tag)
	})
	sort.Strings(features)
	return features
}

// CountOrthogonal returns how many orthogonal neighbors of the position
// satisfy the predicate.
func (g *Grid) CountOrthogonal(x, y int, match func(Kind) bool) int {
	count := 0
	for _, d := range cardinal {
		if match(g.KindAt(x+d.X, y+d.Y)) {
			count++
		}
	}
	return count
}

// CountDiagonal returns how many diagonal neighbors of the position
// satisfy the predicate.
func (g *Grid) CountDiagonal(x, y int, match func(Kind) bool) int {
	count := 0
	for _, d := range diagonal {
		if match(g.KindAt(x+d.X, y+d.Y)) {
			count++
		}
	}
	return count
}

// Checksum returns a deterministic 64-bit digest of every cell kind.
// Two grids with identical layouts always produce the same checksum,
// which is what the determinism tests and the snapshot rely on.
func (g *Grid) Checksum() uint64 {
	h := xxhash.New()
	row := make([]byte, g.Width)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			row[x] = byte(g.kinds[y][x])
		}
		_, _ = h.Write(row)
	}
	return h.Sum64()
}
