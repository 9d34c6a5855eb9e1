// Package builder assembles S-57 feature records into normalized
// geometries and applies the S-52-aware post-processing pipeline
// (coordinate rounding, COLOUR normalization, sounding explosion, light
// sector orientation).
package builder

import (
	"github.com/encharts/s57decode/internal/s57rec"
	"github.com/encharts/s57decode/internal/spatial"
)

// GeometryKind distinguishes the four shapes a feature can carry. None
// covers FRID primitive 4 ("no geometry"), e.g. meta-objects like M_QUAL.
type GeometryKind int

const (
	GeometryNone GeometryKind = iota
	GeometryPoint
	GeometryLineString
	GeometryPolygon
	GeometryMultiPoint
)

// Geometry is the builder's working representation: coordinates may still
// carry a third (depth) component here. For SOUNDG features the
// sounding-explosion post-processing step moves it into a DEPTH attribute;
// on any other feature it stays on the coordinate. Kept deliberately distinct from any GeoJSON library type so the
// pipeline can freely carry 3D points before that step runs.
type Geometry struct {
	Kind   GeometryKind
	Points [][]float64   // Point (len 1) or MultiPoint (len N)
	Line   [][]float64   // LineString
	Rings  [][][]float64 // Polygon: index 0 is the exterior ring
}

const (
	primitivePoint = 1
	primitiveLine  = 2
	primitiveArea  = 3
	primitiveNone  = 4
)

// BuildGeometry walks a feature's FSPT references against the resolved
// spatial graph and assembles its geometry per spec §4.4. Errors returned
// are all Recoverable (missing spatial record, discontinuous line seam) —
// the caller decides whether to still emit a best-effort geometry. A ring
// whose last vertex differs from its first is closed by repeating the
// first vertex; no error is returned for it.
func BuildGeometry(f *s57rec.Feature, graph *spatial.Graph) (Geometry, []error) {
	switch f.GeomPrim {
	case primitivePoint:
		return buildPoint(f, graph)
	case primitiveLine:
		return buildLine(f, graph)
	case primitiveArea:
		return buildArea(f, graph)
	default:
		return Geometry{Kind: GeometryNone}, nil
	}
}

func buildPoint(f *s57rec.Feature, graph *spatial.Graph) (Geometry, []error) {
	if len(f.SpatialRefs) == 0 {
		return Geometry{Kind: GeometryNone}, nil
	}
	ref := f.SpatialRefs[0]
	node, ok := graph.Node(ref.RCID)
	if !ok {
		return Geometry{Kind: GeometryNone}, []error{&spatial.MissingSpatialRecordError{FeatureID: f.RCID, SpatialID: ref.RCID}}
	}
	if len(node.Points) == 0 {
		return Geometry{Kind: GeometryNone}, nil
	}
	if len(node.Points) > 1 || len(node.Points[0]) >= 3 {
		// A VRID carrying an SG3D coordinate array: SOUNDG (or any other
		// depth-bearing point feature) is built as a MultiPoint of every
		// (lon, lat, depth) triple the node carries, so the
		// sounding-explosion post-processing step can fan each one out
		// into its own feature (spec.md §8 scenario 5).
		pts := make([][]float64, len(node.Points))
		copy(pts, node.Points)
		return Geometry{Kind: GeometryMultiPoint, Points: pts}, nil
	}
	return Geometry{Kind: GeometryPoint, Points: [][]float64{node.Points[0]}}, nil
}

func buildLine(f *s57rec.Feature, graph *spatial.Graph) (Geometry, []error) {
	coords, errs := graph.ResolveLine(f.SpatialRefs, f.RCID)
	return Geometry{Kind: GeometryLineString, Line: coords}, errs
}

func buildArea(f *s57rec.Feature, graph *spatial.Graph) (Geometry, []error) {
	var exterior []s57rec.SpatialRef
	var interiorGroups [][]s57rec.SpatialRef
	var currentInterior []s57rec.SpatialRef

	for _, ref := range f.SpatialRefs {
		if ref.Usage == 2 { // interior
			currentInterior = append(currentInterior, ref)
			continue
		}
		if len(currentInterior) > 0 {
			interiorGroups = append(interiorGroups, currentInterior)
			currentInterior = nil
		}
		exterior = append(exterior, ref)
	}
	if len(currentInterior) > 0 {
		interiorGroups = append(interiorGroups, currentInterior)
	}

	var allErrs []error
	ring, errs := graph.ResolveRing(exterior, f.RCID)
	allErrs = append(allErrs, errs...)

	rings := [][][]float64{ring}
	for _, group := range interiorGroups {
		r, errs := graph.ResolveRing(group, f.RCID)
		allErrs = append(allErrs, errs...)
		rings = append(rings, r)
	}

	return Geometry{Kind: GeometryPolygon, Rings: rings}, allErrs
}
