package mandel

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrInvalidRegion is returned for regions whose bounds are inverted,
	// empty or not finite.
	ErrInvalidRegion = errors.New("invalid region")
	// ErrInvalidSize is returned for non-positive pixel grid dimensions.
	ErrInvalidSize = errors.New("invalid size")
)

// Region within the complex plane
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// DefaultRegion shows the whole set.
var DefaultRegion = Region{
	Xmin: -2.00,
	Xmax: 0.47,
	Ymin: -1.12,
	Ymax: 1.12,
}

// Width is the real-axis span of r.
func (r Region) Width() float64 {
	return math.Abs(r.Xmax - r.Xmin)
}

// Height is the imaginary-axis span of r.
func (r Region) Height() float64 {
	return math.Abs(r.Ymax - r.Ymin)
}

// Validate reports whether r can be mapped onto a pixel grid.
func (r Region) Validate() error {
	for _, v := range []float64{r.Xmin, r.Xmax, r.Ymin, r.Ymax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite bound in %s", ErrInvalidRegion, r)
		}
	}
	if !(r.Xmax > r.Xmin) {
		return fmt.Errorf("%w: x_max %g <= x_min %g", ErrInvalidRegion, r.Xmax, r.Xmin)
	}
	if !(r.Ymax > r.Ymin) {
		return fmt.Errorf("%w: y_max %g <= y_min %g", ErrInvalidRegion, r.Ymax, r.Ymin)
	}
	return nil
}

func (r Region) String() string {
	return fmt.Sprintf("x[%g, %g] y[%g, %g]", r.Xmin, r.Xmax, r.Ymin, r.Ymax)
}

// Landmark is a named region worth jumping to.
type Landmark struct {
	Name        string
	Description string
	Region      Region
}

// Plane regions reachable with the digit keys. Coordinates are the corners
// of each window, chosen so the feature fills most of the frame.
var (
	SeahorseValley       = Region{Xmin: -0.8, Xmax: -0.7, Ymin: 0.05, Ymax: 0.15}
	ElephantValley       = Region{Xmin: -1.85, Xmax: -1.75, Ymin: -0.10, Ymax: -0.02}
	SpiralMinibrot       = Region{Xmin: -0.7435, Xmax: -0.7420, Ymin: 0.1310, Ymax: 0.1325}
	TripleSpiral         = Region{Xmin: -0.7480, Xmax: -0.7450, Ymin: 0.0950, Ymax: 0.0980}
	ValleyOfTheDragon    = Region{Xmin: -0.7400, Xmax: -0.7350, Ymin: 0.1800, Ymax: 0.1850}
	MinibrotInMiniSpiral = Region{Xmin: -1.7390, Xmax: -1.7375, Ymin: -0.0235, Ymax: -0.0220}
)

// Landmarks is ordered; the controller binds digit keys 1..6 to it.
var Landmarks = []Landmark{
	{Name: "seahorse", Description: "curled filaments between the cardioid and the period-2 bulb", Region: SeahorseValley},
	{Name: "elephant", Description: "trunk-shaped tendrils on the far left of the real axis", Region: ElephantValley},
	{Name: "spiral", Description: "a small copy of the set wrapped in spiral arms", Region: SpiralMinibrot},
	{Name: "triple", Description: "three interleaved spirals", Region: TripleSpiral},
	{Name: "dragon", Description: "deep spiral filaments above seahorse valley", Region: ValleyOfTheDragon},
	{Name: "minispiral", Description: "a small copy of the set inside a spiral arm", Region: MinibrotInMiniSpiral},
}

// LookupLandmark finds a landmark by case-insensitive name.
// "default" and "full" name DefaultRegion.
func LookupLandmark(name string) (Region, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "default" || name == "full" {
		return DefaultRegion, true
	}
	for _, l := range Landmarks {
		if l.Name == name {
			return l.Region, true
		}
	}
	return Region{}, false
}
