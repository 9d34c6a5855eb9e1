package spatial

import (
	"testing"

	"github.com/encharts/s57decode/internal/s57rec"
)

func buildTestGraph() *Graph {
	records := []*s57rec.SpatialRecord{
		{RCID: 1, RecordType: s57rec.SpatialConnectedNode, Coordinates: [][]float64{{0, 0}}},
		{RCID: 2, RecordType: s57rec.SpatialConnectedNode, Coordinates: [][]float64{{1, 0}}},
		{RCID: 3, RecordType: s57rec.SpatialConnectedNode, Coordinates: [][]float64{{1, 1}}},
		{RCID: 4, RecordType: s57rec.SpatialConnectedNode, Coordinates: [][]float64{{0, 1}}},
		{
			RCID: 10, RecordType: s57rec.SpatialEdge,
			VectorPointers: []s57rec.VectorPointer{
				{TargetRCNM: int(s57rec.SpatialConnectedNode), TargetRCID: 1},
				{TargetRCNM: int(s57rec.SpatialConnectedNode), TargetRCID: 2},
			},
		},
		{
			RCID: 11, RecordType: s57rec.SpatialEdge,
			VectorPointers: []s57rec.VectorPointer{
				{TargetRCNM: int(s57rec.SpatialConnectedNode), TargetRCID: 2},
				{TargetRCNM: int(s57rec.SpatialConnectedNode), TargetRCID: 3},
			},
		},
		{
			RCID: 12, RecordType: s57rec.SpatialEdge,
			VectorPointers: []s57rec.VectorPointer{
				{TargetRCNM: int(s57rec.SpatialConnectedNode), TargetRCID: 3},
				{TargetRCNM: int(s57rec.SpatialConnectedNode), TargetRCID: 4},
			},
		},
		{
			RCID: 13, RecordType: s57rec.SpatialEdge,
			VectorPointers: []s57rec.VectorPointer{
				{TargetRCNM: int(s57rec.SpatialConnectedNode), TargetRCID: 4},
				{TargetRCNM: int(s57rec.SpatialConnectedNode), TargetRCID: 1},
			},
		},
	}
	return BuildGraph(records)
}

func TestResolveRingClosesSquare(t *testing.T) {
	g := buildTestGraph()
	refs := []s57rec.SpatialRef{
		{RCID: 10, Orientation: 1},
		{RCID: 11, Orientation: 1},
		{RCID: 12, Orientation: 1},
		{RCID: 13, Orientation: 1},
	}

	ring, errs := g.ResolveRing(refs, 1)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if !ringClosed(ring) {
		t.Fatalf("ring not closed: %v", ring)
	}
	// 4 distinct vertices + seam dedup + closure = 5 points
	if len(ring) != 5 {
		t.Errorf("len(ring) = %d, want 5", len(ring))
	}
}

func TestResolveLineReportsMissingEdge(t *testing.T) {
	g := buildTestGraph()
	refs := []s57rec.SpatialRef{
		{RCID: 10, Orientation: 1},
		{RCID: 999, Orientation: 1},
	}

	_, errs := g.ResolveLine(refs, 42)
	if len(errs) != 1 {
		t.Fatalf("errs = %v, want exactly one missing-spatial-record error", errs)
	}
	var missing *MissingSpatialRecordError
	if me, ok := errs[0].(*MissingSpatialRecordError); !ok {
		t.Fatalf("error type = %T, want *MissingSpatialRecordError", errs[0])
	} else {
		missing = me
	}
	if missing.SpatialID != 999 || missing.FeatureID != 42 {
		t.Errorf("error = %+v", missing)
	}
}

func TestResolveLineReportsDiscontinuityWithoutRepairing(t *testing.T) {
	g := buildTestGraph()
	// Edge 10 reversed gives [B(1,0), A(0,0)]; edge 12 forward starts at
	// node 3 (1,1), which does not meet the reversed edge 10's endpoint.
	// spec.md §8 scenario 3: must surface the seam, not repair it.
	refs := []s57rec.SpatialRef{
		{RCID: 10, Orientation: 2},
		{RCID: 12, Orientation: 1},
	}

	coords, errs := g.ResolveLine(refs, 7)
	if len(errs) != 1 {
		t.Fatalf("errs = %v, want exactly one discontinuity error", errs)
	}
	if _, ok := errs[0].(*DiscontinuousLineError); !ok {
		t.Fatalf("error type = %T, want *DiscontinuousLineError", errs[0])
	}
	// Both segments fully present, nothing deduped or dropped.
	if len(coords) != 4 {
		t.Fatalf("len(coords) = %d, want 4 (no repair attempted): %v", len(coords), coords)
	}
}

func TestResolveLineReversesOnOrientation2(t *testing.T) {
	g := buildTestGraph()
	refs := []s57rec.SpatialRef{{RCID: 10, Orientation: 2}}

	coords, errs := g.ResolveLine(refs, 1)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(coords) != 2 {
		t.Fatalf("len(coords) = %d, want 2", len(coords))
	}
	if coords[0][0] != 1 || coords[1][0] != 0 {
		t.Errorf("coords = %v, want reversed order", coords)
	}
}
