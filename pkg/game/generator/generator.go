// Package generator populates city grids. Each policy is a GridGenerator; the
// random source is always injected so runs can be reproduced from a seed.
package generator

import (
	"errors"
	"math/rand"

	"citygrid/pkg/engine/world"
)

// Errors returned by generators
var (
	ErrNoRandomSource     = errors.New("no random source")
	ErrInvalidProbability = errors.New("probability out of range")
	ErrInvalidCorridor    = errors.New("invalid road corridor")
	ErrUnknownGlyph       = errors.New("unknown layout glyph")
	ErrLayoutShape        = errors.New("layout shape mismatch")
)

// GridGenerator is an interface for population policies
type GridGenerator interface {
	Generate(rows, cols int) (*world.Grid, Tally, error)
	Name() string
}

// Tally counts what a single population run placed. It is created fresh for
// every Generate call.
type Tally struct {
	Houses int // House cells placed
	Trees  int // Tree items placed, on tree cells and houses alike
}

// CreateMap populates a rows x cols grid using the city block policy with its
// default parameters
func CreateMap(rows, cols int, rng *rand.Rand) (*world.Grid, error) {
	grid, _, err := NewCityBlockGenerator(rng).Generate(rows, cols)
	return grid, err
}
