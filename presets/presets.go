// SPDX-License-Identifier: MIT

// Package presets ships ready-made assignment instances for demos, docs and
// the CLI's --preset flag.
//
// Sizes 3, 4 and 5 are available; any other size resolves to the 4×4 preset.
// Every accessor returns a fresh deep copy, so callers may mutate the result.
package presets

// DefaultSize is the preset used when the requested size has none.
const DefaultSize = 4

// Preset is one example instance.
type Preset struct {
	Size        int         `json:"size"`
	Description string      `json:"description"`
	Rows        [][]float64 `json:"matrix"`
}

var catalog = map[int]Preset{
	3: {
		Size:        3,
		Description: "three resources, three tasks (classroom example, optimum 117)",
		Rows: [][]float64{
			{82, 83, 69},
			{77, 37, 49},
			{11, 69, 5},
		},
	},
	4: {
		Size:        4,
		Description: "the 3×3 example extended with a fourth resource and task (optimum 140)",
		Rows: [][]float64{
			{82, 83, 69, 92},
			{77, 37, 49, 92},
			{11, 69, 5, 86},
			{8, 9, 98, 23},
		},
	},
	5: {
		Size:        5,
		Description: "five resources with close costs (optimum 59)",
		Rows: [][]float64{
			{12, 15, 13, 20, 18},
			{14, 10, 16, 19, 12},
			{16, 18, 11, 15, 17},
			{18, 12, 14, 16, 13},
			{11, 17, 19, 13, 15},
		},
	},
}

// Sizes lists the sizes with a dedicated preset, ascending.
func Sizes() []int { return []int{3, 4, 5} }

// For returns the preset for size n, or the DefaultSize preset when n has
// none. Check the returned Size to see which one was picked.
func For(n int) Preset {
	p, ok := catalog[n]
	if !ok {
		p = catalog[DefaultSize]
	}

	return p.clone()
}

// All returns every preset in ascending size order.
func All() []Preset {
	out := make([]Preset, 0, len(catalog))
	for _, n := range Sizes() {
		out = append(out, catalog[n].clone())
	}

	return out
}

// Zeros returns an n×n matrix of zeros, the blank grid a new instance starts
// from. n <= 0 yields nil.
func Zeros(n int) [][]float64 {
	if n <= 0 {
		return nil
	}
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}

	return rows
}

func (p Preset) clone() Preset {
	rows := make([][]float64, len(p.Rows))
	for i, r := range p.Rows {
		rows[i] = append([]float64(nil), r...)
	}
	p.Rows = rows

	return p
}
