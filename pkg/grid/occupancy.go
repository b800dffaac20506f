package grid

import (
	"github.com/cbodonnell/snaky/pkg/game/types"
	"github.com/solarlune/resolv"
)

const (
	TagSnake    string = "snake"
	TagObstacle string = "obstacle"
	TagFood     string = "food"
)

// cellSize is the width of one grid cell in resolv world units. Markers
// are half a cell wide so each one registers in exactly one resolv cell.
const cellSize = 2

// Occupancy indexes which grid cells are taken, and by what.
// It is built for a single placement pass and then discarded.
type Occupancy struct {
	grid  Grid
	space *resolv.Space
}

// NewOccupancy returns an empty index over g.
func (g Grid) NewOccupancy() *Occupancy {
	return &Occupancy{
		grid:  g,
		space: resolv.NewSpace(g.size*cellSize, g.size*cellSize, cellSize, cellSize),
	}
}

// Mark records that p holds something tagged with tag.
// Positions off the grid are ignored.
func (o *Occupancy) Mark(p types.Position, tag string) {
	if !o.grid.InBounds(p) {
		return
	}
	marker := resolv.NewObject(float64(p.X*cellSize), float64(p.Y*cellSize), cellSize/2, cellSize/2, tag)
	o.space.Add(marker)
}

// MarkAll records every position in ps under tag.
func (o *Occupancy) MarkAll(ps []types.Position, tag string) {
	for _, p := range ps {
		o.Mark(p, tag)
	}
}

// Occupied reports whether p holds anything carrying one of tags.
// With no tags it reports whether p holds anything at all.
func (o *Occupancy) Occupied(p types.Position, tags ...string) bool {
	if !o.grid.InBounds(p) {
		return false
	}
	cell := o.space.Cell(p.X, p.Y)
	if cell == nil {
		return false
	}
	if len(tags) == 0 {
		return cell.Occupied()
	}
	for _, tag := range tags {
		if cell.ContainsTags(tag) {
			return true
		}
	}
	return false
}

// Free reports whether p is on the grid and holds nothing.
func (o *Occupancy) Free(p types.Position) bool {
	return o.grid.InBounds(p) && !o.Occupied(p)
}
