package spatial

import "github.com/encharts/s57decode/internal/s57rec"

// edgeCoordinates assembles one edge's full coordinate sequence: start
// node + interior shape points + end node, reversed if orientation is 2
// (reverse). Per S-57 §4.7.3, FSPT/edge orientation governs vertex order
// at assembly time, not storage time.
func (g *Graph) edgeCoordinates(e *Edge, orientation int) [][]float64 {
	var coords [][]float64

	if e.StartNodeID != 0 {
		if n, ok := g.Node(e.StartNodeID); ok {
			coords = append(coords, n.Point())
		}
	}
	coords = append(coords, e.Points...)
	if e.EndNodeID != 0 {
		if n, ok := g.Node(e.EndNodeID); ok {
			coords = append(coords, n.Point())
		}
	}

	if orientation == 2 {
		reversed := make([][]float64, len(coords))
		for i, c := range coords {
			reversed[len(coords)-1-i] = c
		}
		return reversed
	}
	return coords
}

// ResolveLine walks an ordered list of FSPT edge references and
// concatenates their coordinates into a single LineString, deduplicating
// the coincident vertex at each edge seam. Missing edges are recoverable:
// they're skipped and reported via the returned error slice rather than
// aborting the whole feature.
func (g *Graph) ResolveLine(refs []s57rec.SpatialRef, featureID int64) ([][]float64, []error) {
	var coords [][]float64
	var errs []error

	for _, ref := range refs {
		e, ok := g.Edge(ref.RCID)
		if !ok {
			errs = append(errs, &MissingSpatialRecordError{FeatureID: featureID, SpatialID: ref.RCID})
			continue
		}
		for _, nodeID := range []int64{e.StartNodeID, e.EndNodeID} {
			if _, ok := g.Node(nodeID); nodeID != 0 && !ok {
				errs = append(errs, &MissingSpatialRecordError{FeatureID: featureID, SpatialID: nodeID})
			}
		}
		seg := g.edgeCoordinates(e, ref.Orientation)
		if len(coords) > 0 && len(seg) > 0 {
			if sameCoord(coords[len(coords)-1], seg[0]) {
				seg = seg[1:]
			} else {
				errs = append(errs, &DiscontinuousLineError{FeatureID: featureID})
			}
		}
		coords = append(coords, seg...)
	}

	return coords, errs
}

// ResolveRing builds a single closed ring from an ordered list of edge
// references, exactly as ResolveLine does, then ensures closure (the
// first and last coordinate must coincide, per the Polygon construction
// invariant).
func (g *Graph) ResolveRing(refs []s57rec.SpatialRef, featureID int64) ([][]float64, []error) {
	coords, errs := g.ResolveLine(refs, featureID)
	if len(coords) == 0 {
		return coords, errs
	}
	if !ringClosed(coords) {
		coords = append(coords, coords[0])
	}
	return coords, errs
}

func ringClosed(ring [][]float64) bool {
	if len(ring) < 3 {
		return false
	}
	return sameCoord(ring[0], ring[len(ring)-1])
}

func sameCoord(a, b []float64) bool {
	if len(a) < 2 || len(b) < 2 {
		return false
	}
	return a[0] == b[0] && a[1] == b[1]
}
