package generator

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"citygrid/pkg/engine/world"
)

// Defaults for the city block policy
const (
	DefaultTreeProbability = 0.3
	DefaultRoadMin         = 3 // Road columns lie strictly between RoadMin and RoadMax
	DefaultRoadMax         = 6
)

// CityBlockGenerator lays a vertical road corridor through the map and fills
// the rest with houses and trees. Houses receive a tree whenever more houses
// than trees have been placed so far in the run.
type CityBlockGenerator struct {
	TreeProbability float64
	RoadMin         int
	RoadMax         int

	rng *rand.Rand
}

// NewCityBlockGenerator creates a generator with default parameters drawing from rng
func NewCityBlockGenerator(rng *rand.Rand) *CityBlockGenerator {
	return &CityBlockGenerator{
		TreeProbability: DefaultTreeProbability,
		RoadMin:         DefaultRoadMin,
		RoadMax:         DefaultRoadMax,
		rng:             rng,
	}
}

// Name returns the name of this generator
func (g *CityBlockGenerator) Name() string {
	return "City Blocks"
}

// roadColumns returns the columns of cols that belong to the road corridor
func (g *CityBlockGenerator) roadColumns(cols int) mapset.Set[int] {
	roads := mapset.New[int]()
	for col := g.RoadMin + 1; col < g.RoadMax && col < cols; col++ {
		if col >= 0 {
			roads.Put(col)
		}
	}
	return roads
}

func (g *CityBlockGenerator) validate() error {
	if g.rng == nil {
		return ErrNoRandomSource
	}
	if math.IsNaN(g.TreeProbability) || g.TreeProbability < 0 || g.TreeProbability > 1 {
		return fmt.Errorf("%w: tree probability %v", ErrInvalidProbability, g.TreeProbability)
	}
	if g.RoadMax < g.RoadMin {
		return fmt.Errorf("%w: %d..%d", ErrInvalidCorridor, g.RoadMin, g.RoadMax)
	}
	return nil
}

// Generate creates a fully populated grid in row-major order
func (g *CityBlockGenerator) Generate(rows, cols int) (*world.Grid, Tally, error) {
	var tally Tally

	if err := g.validate(); err != nil {
		return nil, tally, err
	}

	grid, err := world.NewGrid(rows, cols, world.Road)
	if err != nil {
		return nil, tally, err
	}

	roads := g.roadColumns(cols)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if roads.Has(col) {
				grid.SetCell(world.NewCell(row, col, world.Road))
				continue
			}
			grid.SetCell(g.placeBlock(row, col, &tally))
		}
	}

	if msg := grid.Validate(); msg != "" {
		panic("Generated invalid grid: " + msg)
	}

	return grid, tally, nil
}

// placeBlock draws the category for a non-road position and places its items
func (g *CityBlockGenerator) placeBlock(row, col int, tally *Tally) *world.Cell {
	if g.rng.Float64() > g.TreeProbability {
		cell := world.NewCell(row, col, world.House)
		if tally.Houses > tally.Trees {
			cell.AddItem(world.NewTreeItem())
			tally.Trees++
		}
		tally.Houses++
		return cell
	}

	cell := world.NewCell(row, col, world.Tree)
	cell.AddItem(world.NewTreeItem())
	tally.Trees++
	return cell
}
