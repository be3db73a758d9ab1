package floor

import (
	"math/rand"
)

// scatter fills every open cell except the start with exactly one item.
// One roll per cell: [0, tissue) gives a tissue, the next allergen-wide
// range gives an allergen, the rest are dots.
func (f *Floor) scatter(odds Odds, rng *rand.Rand) {
	for _, p := range f.Grid.OpenCells() {
		if p == f.Start {
			continue
		}
		item := Dot
		switch r := rng.Float64(); {
		case r < odds.Tissue:
			item = Tissue
		case r < odds.Tissue+odds.Allergen:
			item = Allergen
		}
		f.Put(item, p)
	}
}
