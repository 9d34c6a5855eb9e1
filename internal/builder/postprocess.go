package builder

import (
	"math"
	"strconv"
	"strings"
)

const coordinatePrecision = 1e6

// roundCoord rounds the lon/lat components of a coordinate to 6 decimal
// places (~0.1m); a third (depth) component, if present, passes through
// unrounded — rounding is defined over lon/lat only (spec.md §8).
func roundCoord(c []float64) []float64 {
	if len(c) < 2 {
		return c
	}
	out := make([]float64, len(c))
	out[0] = math.Round(c[0]*coordinatePrecision) / coordinatePrecision
	out[1] = math.Round(c[1]*coordinatePrecision) / coordinatePrecision
	for i := 2; i < len(c); i++ {
		out[i] = c[i]
	}
	return out
}

// RoundCoordinates is post-processing step 1: round every coordinate in
// the geometry to 6 decimal places. Must run after geometry assembly so
// it operates on fully resolved vertex sequences, never introducing edge
// discontinuities mid-assembly (DESIGN NOTES).
func RoundCoordinates(g Geometry) Geometry {
	out := g
	if len(g.Points) > 0 {
		out.Points = make([][]float64, len(g.Points))
		for i, p := range g.Points {
			out.Points[i] = roundCoord(p)
		}
	}
	if len(g.Line) > 0 {
		out.Line = make([][]float64, len(g.Line))
		for i, p := range g.Line {
			out.Line[i] = roundCoord(p)
		}
	}
	if len(g.Rings) > 0 {
		out.Rings = make([][][]float64, len(g.Rings))
		for i, ring := range g.Rings {
			r := make([][]float64, len(ring))
			for j, p := range ring {
				r[j] = roundCoord(p)
			}
			out.Rings[i] = r
		}
	}
	return out
}

// NormalizeColour is post-processing step 2: COLOUR may be a
// comma/colon-separated list and may be bracketed (e.g. "(3)", "1,4").
// Strip brackets, split on "," and ":", parse the first token as an
// integer, and replace the string value with that int. An empty or
// unparseable value drops the attribute entirely.
func NormalizeColour(attrs map[string]interface{}) {
	raw, ok := attrs["COLOUR"]
	if !ok {
		return
	}
	s, ok := raw.(string)
	if !ok {
		return
	}

	s = strings.Trim(s, "()[]{}")
	s = strings.TrimSpace(s)
	if s == "" {
		delete(attrs, "COLOUR")
		return
	}

	first := s
	if idx := strings.IndexAny(s, ",:"); idx >= 0 {
		first = s[:idx]
	}
	first = strings.TrimSpace(first)

	n, err := strconv.Atoi(first)
	if err != nil {
		delete(attrs, "COLOUR")
		return
	}
	attrs["COLOUR"] = n
}
