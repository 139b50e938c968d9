package variants

import (
	"fmt"

	"github.com/eftil/variant-sudoku/lib"
)

var (
	whisperLow  = lib.NewDigitSet(1, 2, 3, 4)
	whisperHigh = lib.NewDigitSet(6, 7, 8, 9)
)

// GermanWhisper enforces |x-y| >= 5 between every adjacent pair on
// the line (and last-first if IsCircular).
type GermanWhisper struct {
	Base
	IsCircular bool
}

// NewGermanWhisper validates and builds a German Whisper line.
func NewGermanWhisper(cells []lib.Coord, circular bool) (*GermanWhisper, error) {
	if len(cells) < 2 {
		return nil, fmt.Errorf("german whisper line must have at least 2 cells")
	}
	if circular && len(cells) == 2 {
		return nil, fmt.Errorf("a circular german whisper line of length 2 is malformed")
	}
	return &GermanWhisper{
		Base:       Base{Cells: cells, Name: fmt.Sprintf("german-whisper(%d)", len(cells))},
		IsCircular: circular,
	}, nil
}

func (w *GermanWhisper) neighbors(idx int) []int {
	n := len(w.Cells)
	var out []int
	if idx > 0 {
		out = append(out, idx-1)
	}
	if idx < n-1 {
		out = append(out, idx+1)
	}
	if w.IsCircular {
		if idx == 0 {
			out = append(out, n-1)
		}
		if idx == n-1 {
			out = append(out, 0)
		}
	}
	return out
}

func diffOK(a, b int) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d >= 5
}

func (w *GermanWhisper) LocalIsValid(g *lib.Grid, r, c, v int) bool {
	cell := lib.Coord{Row: r, Col: c}
	idx := -1
	for i, cc := range w.Cells {
		if cc == cell {
			idx = i
			break
		}
	}
	if idx == -1 {
		return true
	}
	for _, n := range w.neighbors(idx) {
		neighborVal := g.Get(w.Cells[n].Row, w.Cells[n].Col)
		if neighborVal != 0 && !diffOK(v, neighborVal) {
			return false
		}
	}
	return true
}

func (w *GermanWhisper) ValidateSolution(g *lib.Grid) bool {
	values, empties := assignedValues(g, w.Cells)
	if empties > 0 {
		return false
	}
	for i := range values {
		for _, n := range w.neighbors(i) {
			if n > i && !diffOK(values[i], values[n]) {
				return false
			}
		}
	}
	return true
}

func (w *GermanWhisper) Candidates(g *lib.Grid) (map[lib.Coord]lib.DigitSet, error) {
	values, _ := assignedValues(g, w.Cells)

	// Determine which band each index belongs to, if any assignment
	// fixes it: index parity alternates low/high across the whole line.
	var lowParity int = -1 // 0 if even indices are low, 1 if odd indices are low
	for i, v := range values {
		if v == 0 {
			continue
		}
		var band int
		if whisperLow.Has(v) {
			band = 0
		} else if whisperHigh.Has(v) {
			band = 1
		} else {
			return nil, lib.InconsistentErr(w.Tag(), "digit 5 cannot appear on a german whisper line")
		}
		parity := i % 2
		want := parity
		if band == 1 {
			want = 1 - parity
		}
		if lowParity == -1 {
			lowParity = want
		} else if lowParity != want {
			return nil, lib.InconsistentErr(w.Tag(), "conflicting band assignment on german whisper line")
		}
	}

	out := make(map[lib.Coord]lib.DigitSet, len(w.Cells))
	for i, cell := range w.Cells {
		if values[i] != 0 {
			continue
		}
		var band lib.DigitSet
		switch {
		case lowParity == -1:
			band = whisperLow.Union(whisperHigh)
		case i%2 == lowParity:
			band = whisperLow
		default:
			band = whisperHigh
		}

		for _, n := range w.neighbors(i) {
			neighborVal := values[n]
			if neighborVal == 0 {
				continue
			}
			var allowed lib.DigitSet
			for d := 1; d <= 9; d++ {
				if diffOK(d, neighborVal) {
					allowed = allowed.Add(d)
				}
			}
			band = band.Intersect(allowed)
		}

		if band.IsEmpty() {
			return nil, lib.NoPossibilitiesErr(cell, w.Tag(), "no digit satisfies the whisper gap at this cell")
		}
		out[cell] = band
	}
	return out, nil
}
