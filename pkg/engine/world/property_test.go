package world

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestCellAggregateInvariants checks the aggregate rules for arbitrary item placements
func TestCellAggregateInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("aggregate thermal is the item mean or the default", prop.ForAll(
		func(thermals []float64) bool {
			c := NewCell(0, 0, House)
			sum := 0.0
			for _, v := range thermals {
				c.AddItem(NewItem("x", RGB{}, v))
				sum += v
			}
			if len(thermals) == 0 {
				return c.AggregateThermal() == DefaultThermal
			}
			return math.Abs(c.AggregateThermal()-sum/float64(len(thermals))) < 1e-9
		},
		gen.SliceOf(gen.Float64Range(-60, 60)),
	))

	properties.Property("aggregate color stays within the unit cube", prop.ForAll(
		func(reds []uint8, green, blue uint8) bool {
			c := NewCell(0, 0, Tree)
			for _, r := range reds {
				c.AddItem(NewItem("x", RGB{r, green, blue}, 0))
			}
			got := c.AggregateColor()
			for _, ch := range []float64{got.R, got.G, got.B} {
				if ch < 0 || ch > 1+1e-12 {
					return false
				}
			}
			if len(reds) == 0 {
				return got == BackgroundOther.Normalized()
			}
			// green and blue are shared by every item, so their mean is exact
			return math.Abs(got.G-float64(green)/255) < 1e-12 && math.Abs(got.B-float64(blue)/255) < 1e-12
		},
		gen.SliceOf(gen.UInt8()),
		gen.UInt8(),
		gen.UInt8(),
	))

	properties.Property("nearest name of an item's own color is an item with that color", prop.ForAll(
		func(channels []uint8) bool {
			c := NewCell(0, 0, House)
			for i, ch := range channels {
				c.AddItem(NewItem(string(rune('a'+i%26)), RGB{ch, ch, ch}, 0))
			}
			if c.IsEmpty() {
				return c.NearestName(Color{1, 1, 1}) == "house"
			}
			for _, item := range c.Items() {
				name := c.NearestName(item.Normalized())
				found := false
				for _, other := range c.Items() {
					if other.Name() == name && other.Color() == item.Color() {
						found = true
						break
					}
				}
				if !found {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.TestingRun(t)
}
